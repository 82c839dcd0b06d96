package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tradução Predicate -> fragmento WHERE parametrizado
// ──────────────────────────────────────────────────────────────────────────────

func TestTranslatePredicate_Contains(t *testing.T) {
	frag, args, err := translatePredicate(search.Contains{Field: search.FieldName, Value: "toner"})
	require.NoError(t, err)

	assert.Equal(t, `p.name ILIKE '%' || $1 || '%' ESCAPE '\'`, frag,
		"Contains vira ILIKE por substring com o valor parametrizado")
	assert.Equal(t, []any{"toner"}, args)
}

func TestTranslatePredicate_Contains_EscapaCuringas(t *testing.T) {
	frag, args, err := translatePredicate(search.Contains{Field: search.FieldName, Value: `Tinta 100%_Original\`})
	require.NoError(t, err)

	assert.Equal(t, `p.name ILIKE '%' || $1 || '%' ESCAPE '\'`, frag)
	// %, _ e \ do usuário casam como caracteres literais, igual a
	// search.Matches: "100%" não pode virar um prefixo-coringa.
	assert.Equal(t, []any{`Tinta 100\%\_Original\\`}, args)
}

func TestTranslatePredicate_In(t *testing.T) {
	frag, args, err := translatePredicate(search.In{Field: search.FieldType, Values: []string{"TONER", "TINTA_REFIL"}})
	require.NoError(t, err)

	assert.Equal(t, "p.type = ANY($1)", frag)
	require.Len(t, args, 1)
	assert.Equal(t, []string{"TONER", "TINTA_REFIL"}, args[0], "os valores vão num único parâmetro array")
}

func TestTranslatePredicate_InVazioEhFalse(t *testing.T) {
	frag, args, err := translatePredicate(search.In{Field: search.FieldID})
	require.NoError(t, err)

	assert.Equal(t, "FALSE", frag, "In vazio não casa com nada, igual a search.Matches")
	assert.Empty(t, args)
}

func TestTranslatePredicate_AndVazioEhTrue(t *testing.T) {
	frag, args, err := translatePredicate(search.And{})
	require.NoError(t, err)

	assert.Equal(t, "TRUE", frag, "And vazio = catálogo inteiro")
	assert.Empty(t, args)
}

func TestTranslatePredicate_ComposicaoNumeraPlaceholdersEmOrdem(t *testing.T) {
	pred := search.And{Preds: []search.Predicate{
		search.Or{Preds: []search.Predicate{
			search.Contains{Field: search.FieldName, Value: "l3250"},
			search.Contains{Field: search.FieldDescription, Value: "l3250"},
		}},
		search.In{Field: search.FieldBrandName, Values: []string{"Epson"}},
	}}

	frag, args, err := translatePredicate(pred)
	require.NoError(t, err)

	assert.Equal(t,
		`((p.name ILIKE '%' || $1 || '%' ESCAPE '\' OR p.description ILIKE '%' || $2 || '%' ESCAPE '\') AND b.name = ANY($3))`,
		frag)
	require.Len(t, args, 3)
	assert.Equal(t, "l3250", args[0])
	assert.Equal(t, "l3250", args[1])
	assert.Equal(t, []string{"Epson"}, args[2])
}

func TestTranslatePredicate_RelationAnyViraExists(t *testing.T) {
	pred := search.RelationAny{
		Relation: search.RelationPrinters,
		Pred:     search.Contains{Field: search.FieldPrinterModel, Value: "L3250"},
	}

	frag, args, err := translatePredicate(pred)
	require.NoError(t, err)

	assert.Equal(t,
		`EXISTS (SELECT 1 FROM printer_compatibilities pc JOIN printers pr ON pr.id = pc.printer_id WHERE pc.cartridge_id = p.id AND pr.model_name ILIKE '%' || $1 || '%' ESCAPE '\')`,
		frag)
	assert.Equal(t, []any{"L3250"}, args)
}

func TestTranslatePredicate_CampoDesconhecido(t *testing.T) {
	_, _, err := translatePredicate(search.Contains{Field: search.Field("preco"), Value: "10"})
	assert.Error(t, err, "campo fora do mapa de colunas deve falhar a tradução")
}

func TestTranslatePredicate_RelacaoDesconhecida(t *testing.T) {
	_, _, err := translatePredicate(search.RelationAny{
		Relation: search.Relation("fornecedores"),
		Pred:     search.Contains{Field: search.FieldPrinterModel, Value: "x"},
	})
	assert.Error(t, err)
}

func TestTranslatePredicate_GrupoComUmElementoNaoParenteia(t *testing.T) {
	frag, _, err := translatePredicate(search.And{Preds: []search.Predicate{
		search.Contains{Field: search.FieldName, Value: "hp"},
	}})
	require.NoError(t, err)
	assert.Equal(t, `p.name ILIKE '%' || $1 || '%' ESCAPE '\'`, frag)
}
