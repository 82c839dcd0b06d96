package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/search"
	"github.com/ArthurS357/capcom-suprimentos-api/pkg/slug"
)

// ProductUseCase casos de uso CRUD para produtos do catálogo. O slug é
// derivado do nome e recalculado ao renomear; a exclusão limpa a relação de
// compatibilidade na mesma transação.
type ProductUseCase struct {
	repo       repository.ProductRepository
	brands     repository.BrandRepository
	categories repository.CategoryRepository
	compat     repository.CompatibilityRepository
	tx         TxRunner
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	brands repository.BrandRepository,
	categories repository.CategoryRepository,
	compat repository.CompatibilityRepository,
	tx TxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, brands: brands, categories: categories, compat: compat, tx: tx}
}

// Create cria um produto. Valida tipo, preço >= 0 e a existência de marca e
// categoria.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	s := slug.Make(name)
	if s == "" || !entity.ValidProductType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	brand, err := uc.brands.GetByID(in.BrandID)
	if err != nil {
		return nil, err
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if brand == nil || category == nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        s,
		Description: in.Description,
		Price:       toNullDecimal(in.Price),
		Type:        in.Type,
		BrandID:     in.BrandID,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID (visão admin).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetBySlug obtém a página pública do produto: projeção com marca e
// categoria mais as impressoras compatíveis.
func (uc *ProductUseCase) GetBySlug(s string) (*dto.ProductDetailResponse, error) {
	listing, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, nil
	}
	printers, err := uc.compat.ListPrintersByCartridge(listing.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductDetailResponse{
		ProductListingResponse: toProductListingResponse(listing),
		CompatiblePrinters:     make([]dto.PrinterResponse, 0, len(printers)),
	}
	for _, p := range printers {
		out.CompatiblePrinters = append(out.CompatiblePrinters, dto.PrinterResponse{
			ID: p.ID, ModelName: p.ModelName, BrandID: p.BrandID,
		})
	}
	return out, nil
}

// List lista o catálogo inteiro ordenado por nome (visão admin). Executa a
// busca com predicado vazio, que não restringe nada.
func (uc *ProductUseCase) List() ([]dto.ProductListingResponse, error) {
	list, err := uc.repo.Search(search.And{})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListingResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductListingResponse(p))
	}
	return items, nil
}

// Update atualiza um produto; renomear recalcula o slug.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		s := slug.Make(name)
		if s == "" {
			return nil, domain.ErrInvalidInput
		}
		if s != product.Slug {
			existing, err := uc.repo.GetBySlug(s)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		product.Name = name
		product.Slug = s
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = decimal.NullDecimal{Decimal: *in.Price, Valid: true}
	}
	if in.Type != nil {
		if !entity.ValidProductType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		product.Type = *in.Type
	}
	if in.BrandID != nil {
		brand, err := uc.brands.GetByID(*in.BrandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return nil, domain.ErrInvalidInput
		}
		product.BrandID = *in.BrandID
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = *in.CategoryID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete exclui um produto, removendo antes as linhas de compatibilidade na
// mesma transação (integridade referencial).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.tx.Run(context.Background(), func(
		products repository.ProductRepository,
		_ repository.PrinterRepository,
		compat repository.CompatibilityRepository,
	) error {
		if err := compat.DeleteByCartridge(id); err != nil {
			return err
		}
		return products.Delete(id)
	})
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	out := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Type:        p.Type,
		BrandID:     p.BrandID,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
	if p.Price.Valid {
		v := p.Price.Decimal
		out.Price = &v
	}
	return out
}

func toProductListingResponse(p *entity.ProductListing) dto.ProductListingResponse {
	out := dto.ProductListingResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Type:         p.Type,
		BrandName:    p.BrandName,
		CategoryName: p.CategoryName,
		CategorySlug: p.CategorySlug,
		ImageURL:     p.ImageURL,
	}
	if p.Price.Valid {
		v := p.Price.Decimal
		out.Price = &v
	}
	return out
}
