package postgres

import (
	"fmt"
	"strings"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/search"
)

// Tradução do predicado componível para um fragmento WHERE parametrizado.
// A consulta base de produtos usa os aliases p (products), b (brands) e
// c (categories); pr (printers) só existe dentro do EXISTS de RelationAny.
// A semântica de referência é search.Matches: Contains vira ILIKE por
// substring (com os curingas do valor escapados, para casar literal),
// In vira = ANY, RelationAny vira EXISTS no join de compatibilidade.

var predicateColumns = map[search.Field]string{
	search.FieldID:           "p.id",
	search.FieldName:         "p.name",
	search.FieldDescription:  "p.description",
	search.FieldType:         "p.type",
	search.FieldBrandName:    "b.name",
	search.FieldCategorySlug: "c.slug",
	search.FieldPrinterModel: "pr.model_name",
}

type predicateBuilder struct {
	args []any
}

// bind registra um argumento e devolve o placeholder ($1, $2, ...).
func (b *predicateBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *predicateBuilder) build(p search.Predicate) (string, error) {
	switch t := p.(type) {
	case search.Contains:
		col, ok := predicateColumns[t.Field]
		if !ok {
			return "", fmt.Errorf("predicado: campo desconhecido %q", t.Field)
		}
		return fmt.Sprintf(`%s ILIKE '%%' || %s || '%%' ESCAPE '\'`, col, b.bind(escapeLike(t.Value))), nil
	case search.In:
		col, ok := predicateColumns[t.Field]
		if !ok {
			return "", fmt.Errorf("predicado: campo desconhecido %q", t.Field)
		}
		if len(t.Values) == 0 {
			return "FALSE", nil
		}
		return fmt.Sprintf("%s = ANY(%s)", col, b.bind(t.Values)), nil
	case search.And:
		return b.buildGroup(t.Preds, " AND ", "TRUE")
	case search.Or:
		return b.buildGroup(t.Preds, " OR ", "FALSE")
	case search.RelationAny:
		if t.Relation != search.RelationPrinters {
			return "", fmt.Errorf("predicado: relação desconhecida %q", t.Relation)
		}
		inner, err := b.build(t.Pred)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"EXISTS (SELECT 1 FROM printer_compatibilities pc JOIN printers pr ON pr.id = pc.printer_id WHERE pc.cartridge_id = p.id AND %s)",
			inner,
		), nil
	default:
		return "", fmt.Errorf("predicado: nó desconhecido %T", p)
	}
}

func (b *predicateBuilder) buildGroup(preds []search.Predicate, sep, empty string) (string, error) {
	if len(preds) == 0 {
		return empty, nil
	}
	parts := make([]string, 0, len(preds))
	for _, p := range preds {
		frag, err := b.build(p)
		if err != nil {
			return "", err
		}
		parts = append(parts, frag)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

// translatePredicate converte um Predicate no fragmento WHERE e seus
// argumentos posicionais.
func translatePredicate(p search.Predicate) (string, []any, error) {
	b := &predicateBuilder{}
	frag, err := b.build(p)
	if err != nil {
		return "", nil, err
	}
	return frag, b.args, nil
}
