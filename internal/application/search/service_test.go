package search_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	appsearch "github.com/ArthurS357/capcom-suprimentos-api/internal/application/search"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	dsearch "github.com/ArthurS357/capcom-suprimentos-api/internal/domain/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
//
// O fake de produtos avalia os predicados com search.Matches, a semântica de
// referência que o adaptador PostgreSQL deve reproduzir. Assim os tests do
// serviço exercitam exatamente os predicados que iriam para o banco.
// ──────────────────────────────────────────────────────────────────────────────

type catalogo struct {
	brands   []*entity.Brand
	printers []*entity.Printer
	products []*entity.ProductListing
	links    []entity.Compatibility
}

func (c *catalogo) modelsDoProduto(productID string) []string {
	var models []string
	for _, l := range c.links {
		if l.CartridgeID != productID {
			continue
		}
		for _, p := range c.printers {
			if p.ID == l.PrinterID {
				models = append(models, p.ModelName)
			}
		}
	}
	return models
}

type fakeProductRepo struct{ cat *catalogo }

func (f *fakeProductRepo) Create(*entity.Product) error            { return nil }
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error            { return nil }
func (f *fakeProductRepo) Delete(string) error                     { return nil }
func (f *fakeProductRepo) GetBySlug(string) (*entity.ProductListing, error) {
	return nil, nil
}

func (f *fakeProductRepo) Search(pred dsearch.Predicate) ([]*entity.ProductListing, error) {
	var out []*entity.ProductListing
	for _, p := range f.cat.products {
		view := dsearch.ProductView{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Type:          p.Type,
			BrandName:     p.BrandName,
			CategorySlug:  p.CategorySlug,
			PrinterModels: f.cat.modelsDoProduto(p.ID),
		}
		if dsearch.Matches(pred, view) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProductRepo) DistinctTypes() ([]string, error) {
	seen := map[string]bool{}
	var types []string
	for _, p := range f.cat.products {
		if !seen[p.Type] {
			seen[p.Type] = true
			types = append(types, p.Type)
		}
	}
	sort.Strings(types)
	return types, nil
}

type fakePrinterRepo struct{ cat *catalogo }

func (f *fakePrinterRepo) Create(*entity.Printer) error            { return nil }
func (f *fakePrinterRepo) GetByID(string) (*entity.Printer, error) { return nil, nil }
func (f *fakePrinterRepo) List() ([]*entity.Printer, error)        { return f.cat.printers, nil }
func (f *fakePrinterRepo) Delete(string) error                     { return nil }

func (f *fakePrinterRepo) FindByModelNameContains(substr string) ([]*entity.Printer, error) {
	var out []*entity.Printer
	for _, p := range f.cat.printers {
		if strings.Contains(strings.ToLower(p.ModelName), strings.ToLower(substr)) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCompatRepo struct{ cat *catalogo }

func (f *fakeCompatRepo) Link(string, string) error   { return nil }
func (f *fakeCompatRepo) Unlink(string, string) error { return nil }
func (f *fakeCompatRepo) ListPrintersByCartridge(string) ([]*entity.Printer, error) {
	return nil, nil
}
func (f *fakeCompatRepo) DeleteByCartridge(string) error { return nil }
func (f *fakeCompatRepo) DeleteByPrinter(string) error   { return nil }

func (f *fakeCompatRepo) ListCartridgeIDsByPrinterIDs(printerIDs []string) ([]string, error) {
	want := map[string]bool{}
	for _, id := range printerIDs {
		want[id] = true
	}
	seen := map[string]bool{}
	var out []string
	for _, l := range f.cat.links {
		if want[l.PrinterID] && !seen[l.CartridgeID] {
			seen[l.CartridgeID] = true
			out = append(out, l.CartridgeID)
		}
	}
	return out, nil
}

type fakeBrandRepo struct{ cat *catalogo }

func (f *fakeBrandRepo) Create(*entity.Brand) error              { return nil }
func (f *fakeBrandRepo) GetByID(string) (*entity.Brand, error)   { return nil, nil }
func (f *fakeBrandRepo) GetBySlug(string) (*entity.Brand, error) { return nil, nil }
func (f *fakeBrandRepo) Update(*entity.Brand) error              { return nil }
func (f *fakeBrandRepo) Delete(string) error                     { return nil }

func (f *fakeBrandRepo) ListOrderedByName() ([]*entity.Brand, error) {
	out := append([]*entity.Brand(nil), f.cat.brands...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: catálogo pequeno mas com os casos interessantes
// ──────────────────────────────────────────────────────────────────────────────

func produto(id, name, typ, brandName string) *entity.ProductListing {
	return &entity.ProductListing{
		Product: entity.Product{
			ID:   id,
			Name: name,
			Slug: strings.ToLower(strings.ReplaceAll(name, " ", "-")),
			Type: typ,
		},
		BrandName: brandName,
	}
}

func novoCatalogo() *catalogo {
	return &catalogo{
		brands: []*entity.Brand{
			{ID: "b-hp", Name: "HP", Slug: "hp"},
			{ID: "b-epson", Name: "Epson", Slug: "epson"},
			{ID: "b-canon", Name: "Canon", Slug: "canon"},
		},
		printers: []*entity.Printer{
			{ID: "pr-l3250", ModelName: "Epson EcoTank L3250", BrandID: "b-epson"},
			{ID: "pr-m1132", ModelName: "HP LaserJet Pro M1132", BrandID: "b-hp"},
		},
		products: []*entity.ProductListing{
			// Só aparece na busca por "L3250" via expansão de compatibilidade.
			produto("p-tinta", "Tinta Epson T544 Preta", entity.TypeTintaRefil, "Epson"),
			// Casa pelo nome E pela compatibilidade: não pode duplicar.
			produto("p-kit", "Kit Tinta EcoTank L3250", entity.TypeTintaRefil, "Epson"),
			produto("p-toner", "Toner HP 85A", entity.TypeToner, "HP"),
			// A impressora à venda casa só pelo nome (não tem vínculos).
			produto("p-imp", "Impressora Epson EcoTank L3250", entity.TypeImpressora, "Epson"),
		},
		links: []entity.Compatibility{
			{CartridgeID: "p-tinta", PrinterID: "pr-l3250"},
			{CartridgeID: "p-kit", PrinterID: "pr-l3250"},
			{CartridgeID: "p-toner", PrinterID: "pr-m1132"},
		},
	}
}

func novoServico(cat *catalogo) *appsearch.Service {
	return appsearch.NewService(
		&fakeProductRepo{cat: cat},
		&fakePrinterRepo{cat: cat},
		&fakeCompatRepo{cat: cat},
		&fakeBrandRepo{cat: cat},
	)
}

func nomes(items []dto.ProductListingResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolução de compatibilidade
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveCompatibleProductIDs_ExpandePorSubstring(t *testing.T) {
	svc := novoServico(novoCatalogo())

	ids, err := svc.ResolveCompatibleProductIDs("l3250")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"p-tinta", "p-kit"}, ids,
		"a busca por modelo deve devolver os suprimentos ligados às impressoras casadas")
}

func TestResolveCompatibleProductIDs_ConsultaVaziaNaoTocaOBanco(t *testing.T) {
	svc := novoServico(novoCatalogo())

	ids, err := svc.ResolveCompatibleProductIDs("   ")
	require.NoError(t, err)
	assert.Empty(t, ids, "consulta em branco devolve conjunto vazio")
}

func TestResolveCompatibleProductIDs_SemImpressoraCasada(t *testing.T) {
	svc := novoServico(novoCatalogo())

	ids, err := svc.ResolveCompatibleProductIDs("xp-241")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestResolveCompatibleProductIDs_Deduplica(t *testing.T) {
	cat := novoCatalogo()
	// Mesmo cartucho ligado a duas impressoras que casam com a mesma consulta.
	cat.printers = append(cat.printers, &entity.Printer{ID: "pr-l3250b", ModelName: "Epson EcoTank L3250 Plus", BrandID: "b-epson"})
	cat.links = append(cat.links, entity.Compatibility{CartridgeID: "p-tinta", PrinterID: "pr-l3250b"})
	svc := novoServico(cat)

	ids, err := svc.ResolveCompatibleProductIDs("L3250")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p-tinta", "p-kit"}, ids,
		"id ligado por duas impressoras deve aparecer uma única vez")
}

// ──────────────────────────────────────────────────────────────────────────────
// Busca composta
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_SemCriteriosDevolveCatalogoOrdenado(t *testing.T) {
	svc := novoServico(novoCatalogo())

	items, err := svc.Search(dto.SearchRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Impressora Epson EcoTank L3250",
		"Kit Tinta EcoTank L3250",
		"Tinta Epson T544 Preta",
		"Toner HP 85A",
	}, nomes(items), "sem critério algum, o catálogo inteiro vem ordenado por nome")
}

func TestSearch_PorModeloIncluiCompativeisSemDuplicar(t *testing.T) {
	svc := novoServico(novoCatalogo())

	items, err := svc.Search(dto.SearchRequest{Query: "L3250"})
	require.NoError(t, err)

	// p-tinta entra só pela compatibilidade; p-kit casa pelo nome E pela
	// compatibilidade mas aparece uma vez; p-imp casa só pelo nome.
	assert.Equal(t, []string{
		"Impressora Epson EcoTank L3250",
		"Kit Tinta EcoTank L3250",
		"Tinta Epson T544 Preta",
	}, nomes(items))
}

func TestSearch_PorNomeDeMarca(t *testing.T) {
	svc := novoServico(novoCatalogo())

	items, err := svc.Search(dto.SearchRequest{Query: "epson"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Impressora Epson EcoTank L3250",
		"Kit Tinta EcoTank L3250",
		"Tinta Epson T544 Preta",
	}, nomes(items), "o grupo OR de texto também casa pelo nome da marca")
}

func TestSearch_FiltroDeMarcaEhExato(t *testing.T) {
	svc := novoServico(novoCatalogo())

	items, err := svc.Search(dto.SearchRequest{Brands: []string{"HP"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Toner HP 85A"}, nomes(items))

	// Diferente do texto livre, o filtro não é case-insensitive.
	items, err = svc.Search(dto.SearchRequest{Brands: []string{"hp"}})
	require.NoError(t, err)
	assert.Empty(t, items, "filtro exato não casa com caixa diferente")
}

func TestSearch_FiltroDeTipo(t *testing.T) {
	svc := novoServico(novoCatalogo())

	items, err := svc.Search(dto.SearchRequest{Types: []string{entity.TypeTintaRefil}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Kit Tinta EcoTank L3250", "Tinta Epson T544 Preta"}, nomes(items))
}

func TestSearch_TextoEFiltrosCombinamPorAnd(t *testing.T) {
	svc := novoServico(novoCatalogo())

	items, err := svc.Search(dto.SearchRequest{
		Query: "L3250",
		Types: []string{entity.TypeTintaRefil},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Kit Tinta EcoTank L3250", "Tinta Epson T544 Preta"}, nomes(items),
		"o filtro de tipo restringe o resultado do grupo de texto")
}

func TestSearch_TipoDesconhecidoNaoEhErro(t *testing.T) {
	svc := novoServico(novoCatalogo())

	items, err := svc.Search(dto.SearchRequest{Types: []string{"PAPEL_SULFITE"}})
	require.NoError(t, err, "valor desconhecido no filtro só produz resultado vazio")
	assert.Empty(t, items)
}

func TestSearch_FiltroComEntradaEmBranco(t *testing.T) {
	svc := novoServico(novoCatalogo())

	_, err := svc.Search(dto.SearchRequest{Brands: []string{"HP", "  "}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"entrada em branco num filtro exato é rejeitada antes de montar o predicado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Produtos compatíveis via RelationAny
// ──────────────────────────────────────────────────────────────────────────────

func TestCompatibleProducts_AtravessaARelacao(t *testing.T) {
	svc := novoServico(novoCatalogo())

	items, err := svc.CompatibleProducts("L3250")
	require.NoError(t, err)

	assert.Equal(t, []string{"Kit Tinta EcoTank L3250", "Tinta Epson T544 Preta"}, nomes(items),
		"só os produtos vinculados entram; a impressora à venda não tem vínculos")
}

func TestCompatibleProducts_EquivaleAoResolver(t *testing.T) {
	svc := novoServico(novoCatalogo())

	ids, err := svc.ResolveCompatibleProductIDs("L3250")
	require.NoError(t, err)

	items, err := svc.CompatibleProducts("L3250")
	require.NoError(t, err)

	got := make([]string, 0, len(items))
	for _, it := range items {
		got = append(got, it.ID)
	}
	assert.ElementsMatch(t, ids, got,
		"RelationAny e a expansão por ids devem produzir o mesmo conjunto")
}

func TestCompatibleProducts_ModeloEmBranco(t *testing.T) {
	svc := novoServico(novoCatalogo())

	_, err := svc.CompatibleProducts("  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestFilters_MarcasOrdenadasETiposDistintos(t *testing.T) {
	svc := novoServico(novoCatalogo())

	out, err := svc.Filters()
	require.NoError(t, err)

	marcas := make([]string, 0, len(out.Brands))
	for _, b := range out.Brands {
		marcas = append(marcas, b.Name)
	}
	assert.Equal(t, []string{"Canon", "Epson", "HP"}, marcas, "marcas em ordem alfabética")
	assert.Equal(t, []string{entity.TypeImpressora, entity.TypeTintaRefil, entity.TypeToner}, out.Types,
		"só os tipos presentes no catálogo, sem repetição")
}
