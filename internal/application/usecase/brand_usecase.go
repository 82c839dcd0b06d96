package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
	"github.com/ArthurS357/capcom-suprimentos-api/pkg/slug"
)

// BrandUseCase casos de uso CRUD para marcas. O slug é sempre derivado do
// nome e recalculado quando o nome muda.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase constrói o caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create cria uma marca. Nome que produz slug vazio é entrada inválida.
func (uc *BrandUseCase) Create(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	name := strings.TrimSpace(in.Name)
	s := slug.Make(name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	brand := &entity.Brand{ID: uuid.New().String(), Name: name, Slug: s}
	if err := uc.repo.Create(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// List lista as marcas ordenadas por nome.
func (uc *BrandUseCase) List() ([]dto.BrandResponse, error) {
	brands, err := uc.repo.ListOrderedByName()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		items = append(items, *toBrandResponse(b))
	}
	return items, nil
}

// GetBySlug obtém uma marca pelo slug.
func (uc *BrandUseCase) GetBySlug(s string) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	return toBrandResponse(brand), nil
}

// Update atualiza uma marca; renomear recalcula o slug.
func (uc *BrandUseCase) Update(id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		s := slug.Make(name)
		if s == "" {
			return nil, domain.ErrInvalidInput
		}
		if s != brand.Slug {
			existing, err := uc.repo.GetBySlug(s)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		brand.Name = name
		brand.Slug = s
	}
	if err := uc.repo.Update(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// Delete exclui uma marca. Marca com produtos ou impressoras vira ErrConflict
// (FK no banco).
func (uc *BrandUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{ID: b.ID, Name: b.Name, Slug: b.Slug}
}
