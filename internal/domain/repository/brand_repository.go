package repository

import "github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"

// BrandRepository define o porto de persistência para Brand (DIP).
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	GetBySlug(slug string) (*entity.Brand, error)
	ListOrderedByName() ([]*entity.Brand, error)
	Update(brand *entity.Brand) error
	Delete(id string) error
}
