package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/usecase"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func novoFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProductRepo) GetBySlug(slug string) (*entity.ProductListing, error) {
	for _, p := range f.byID {
		if p.Slug == slug {
			return &entity.ProductListing{Product: *p}, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeProductRepo) Search(search.Predicate) ([]*entity.ProductListing, error) {
	return nil, nil
}

func (f *fakeProductRepo) DistinctTypes() ([]string, error) { return nil, nil }

type fakeBrandRepo struct {
	byID map[string]*entity.Brand
}

func (f *fakeBrandRepo) Create(*entity.Brand) error { return nil }
func (f *fakeBrandRepo) GetByID(id string) (*entity.Brand, error) {
	return f.byID[id], nil
}
func (f *fakeBrandRepo) GetBySlug(string) (*entity.Brand, error)     { return nil, nil }
func (f *fakeBrandRepo) ListOrderedByName() ([]*entity.Brand, error) { return nil, nil }
func (f *fakeBrandRepo) Update(*entity.Brand) error                  { return nil }
func (f *fakeBrandRepo) Delete(string) error                         { return nil }

type fakePrinterRepo struct{}

func (fakePrinterRepo) Create(*entity.Printer) error            { return nil }
func (fakePrinterRepo) GetByID(string) (*entity.Printer, error) { return nil, nil }
func (fakePrinterRepo) List() ([]*entity.Printer, error)        { return nil, nil }
func (fakePrinterRepo) FindByModelNameContains(string) ([]*entity.Printer, error) {
	return nil, nil
}
func (fakePrinterRepo) Delete(string) error { return nil }

type fakeCompatRepo struct {
	deletedCartridges []string
}

func (f *fakeCompatRepo) Link(string, string) error   { return nil }
func (f *fakeCompatRepo) Unlink(string, string) error { return nil }
func (f *fakeCompatRepo) ListCartridgeIDsByPrinterIDs([]string) ([]string, error) {
	return nil, nil
}
func (f *fakeCompatRepo) ListPrintersByCartridge(string) ([]*entity.Printer, error) {
	return nil, nil
}
func (f *fakeCompatRepo) DeleteByCartridge(id string) error {
	f.deletedCartridges = append(f.deletedCartridges, id)
	return nil
}
func (f *fakeCompatRepo) DeleteByPrinter(string) error { return nil }

// fakeTxRunner executa o callback direto sobre os fakes, sem transação real.
type fakeTxRunner struct {
	products *fakeProductRepo
	compat   *fakeCompatRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	printers repository.PrinterRepository,
	compat repository.CompatibilityRepository,
) error) error {
	return fn(f.products, fakePrinterRepo{}, f.compat)
}

type productFixture struct {
	uc       *usecase.ProductUseCase
	products *fakeProductRepo
	compat   *fakeCompatRepo
}

func novoProductFixture() *productFixture {
	products := novoFakeProductRepo()
	compat := &fakeCompatRepo{}
	brands := &fakeBrandRepo{byID: map[string]*entity.Brand{
		"b-hp": {ID: "b-hp", Name: "HP", Slug: "hp"},
	}}
	categories := novoFakeCategoryRepo(
		&entity.Category{ID: "c-ton", Name: "Toners", Slug: "toners"},
	)
	uc := usecase.NewProductUseCase(products, brands, categories, compat, &fakeTxRunner{
		products: products,
		compat:   compat,
	})
	return &productFixture{uc: uc, products: products, compat: compat}
}

func precoPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Criação
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_DerivaSlugDoNome(t *testing.T) {
	fx := novoProductFixture()

	out, err := fx.uc.Create(dto.CreateProductRequest{
		Name:       "Toner HP 85A Original",
		Type:       entity.TypeToner,
		Price:      precoPtr("189.90"),
		BrandID:    "b-hp",
		CategoryID: "c-ton",
	})
	require.NoError(t, err)

	assert.Equal(t, "toner-hp-85a-original", out.Slug)
	require.NotNil(t, out.Price)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("189.90")))
}

func TestProductCreate_PrecoOpcional(t *testing.T) {
	fx := novoProductFixture()

	out, err := fx.uc.Create(dto.CreateProductRequest{
		Name:       "Recarga sob consulta",
		Type:       entity.TypeRecarga,
		BrandID:    "b-hp",
		CategoryID: "c-ton",
	})
	require.NoError(t, err)
	assert.Nil(t, out.Price, "produto sem preço anunciado é válido")
}

func TestProductCreate_PrecoNegativo(t *testing.T) {
	fx := novoProductFixture()

	_, err := fx.uc.Create(dto.CreateProductRequest{
		Name:       "Toner HP 85A",
		Type:       entity.TypeToner,
		Price:      precoPtr("-1"),
		BrandID:    "b-hp",
		CategoryID: "c-ton",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_TipoDesconhecido(t *testing.T) {
	fx := novoProductFixture()

	_, err := fx.uc.Create(dto.CreateProductRequest{
		Name:       "Papel Sulfite A4",
		Type:       "PAPEL",
		BrandID:    "b-hp",
		CategoryID: "c-ton",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo fora do enum deve ser rejeitado")
}

func TestProductCreate_MarcaInexistente(t *testing.T) {
	fx := novoProductFixture()

	_, err := fx.uc.Create(dto.CreateProductRequest{
		Name:       "Toner HP 85A",
		Type:       entity.TypeToner,
		BrandID:    "b-nao-existe",
		CategoryID: "c-ton",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_SlugDuplicado(t *testing.T) {
	fx := novoProductFixture()

	criar := func() error {
		_, err := fx.uc.Create(dto.CreateProductRequest{
			Name:       "Toner HP 85A",
			Type:       entity.TypeToner,
			BrandID:    "b-hp",
			CategoryID: "c-ton",
		})
		return err
	}
	require.NoError(t, criar())
	assert.ErrorIs(t, criar(), domain.ErrDuplicate, "dois produtos não podem dividir o mesmo slug")
}

// ──────────────────────────────────────────────────────────────────────────────
// Atualização
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_RenomearRecalculaSlug(t *testing.T) {
	fx := novoProductFixture()

	created, err := fx.uc.Create(dto.CreateProductRequest{
		Name:       "Toner HP 85A",
		Type:       entity.TypeToner,
		BrandID:    "b-hp",
		CategoryID: "c-ton",
	})
	require.NoError(t, err)

	novoNome := "Toner HP 85A Promoção"
	out, err := fx.uc.Update(created.ID, dto.UpdateProductRequest{Name: &novoNome})
	require.NoError(t, err)

	assert.Equal(t, "toner-hp-85a-promocao", out.Slug,
		"renomear recalcula o slug com a normalização de acentos")
}

func TestProductUpdate_ProdutoInexistente(t *testing.T) {
	fx := novoProductFixture()

	nome := "Qualquer"
	out, err := fx.uc.Update("p-nao-existe", dto.UpdateProductRequest{Name: &nome})
	require.NoError(t, err)
	assert.Nil(t, out, "produto inexistente devolve nil para o handler mapear em 404")
}

// ──────────────────────────────────────────────────────────────────────────────
// Exclusão
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_LimpaCompatibilidades(t *testing.T) {
	fx := novoProductFixture()

	created, err := fx.uc.Create(dto.CreateProductRequest{
		Name:       "Toner HP 85A",
		Type:       entity.TypeToner,
		BrandID:    "b-hp",
		CategoryID: "c-ton",
	})
	require.NoError(t, err)

	require.NoError(t, fx.uc.Delete(created.ID))

	assert.Equal(t, []string{created.ID}, fx.compat.deletedCartridges,
		"a exclusão remove primeiro os vínculos de compatibilidade")
	got, _ := fx.products.GetByID(created.ID)
	assert.Nil(t, got)
}
