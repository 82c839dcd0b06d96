package repository

import "github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"

// CategoryRepository define o porto de persistência para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetBySlug(slug string) (*entity.Category, error)
	ListRoots() ([]*entity.Category, error)
	ListByParent(parentID string) ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
