package repository

import (
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/search"
)

// ProductRepository define o porto de persistência para Product (DIP).
// Search executa um predicado componível e devolve a projeção com marca e
// categoria resolvidas, ordenada por nome ascendente e sem ids duplicados.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.ProductListing, error)
	Update(product *entity.Product) error
	Delete(id string) error
	Search(pred search.Predicate) ([]*entity.ProductListing, error)
	DistinctTypes() ([]string, error)
}
