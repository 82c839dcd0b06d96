package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementação do porto BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste uma nova marca.
func (r *BrandRepo) Create(brand *entity.Brand) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO brands (id, name, slug) VALUES ($1, $2, $3)`,
		brand.ID, brand.Name, brand.Slug,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtém uma marca por ID.
func (r *BrandRepo) GetByID(id string) (*entity.Brand, error) {
	return r.getBy("id", id)
}

// GetBySlug obtém uma marca pelo slug.
func (r *BrandRepo) GetBySlug(slug string) (*entity.Brand, error) {
	return r.getBy("slug", slug)
}

func (r *BrandRepo) getBy(column, value string) (*entity.Brand, error) {
	query := fmt.Sprintf(`SELECT id, name, slug FROM brands WHERE %s = $1`, column)
	var b entity.Brand
	err := r.q.QueryRow(context.Background(), query, value).Scan(&b.ID, &b.Name, &b.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// ListOrderedByName lista todas as marcas por nome ascendente.
func (r *BrandRepo) ListOrderedByName() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, slug FROM brands ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update atualiza nome e slug de uma marca.
func (r *BrandRepo) Update(brand *entity.Brand) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE brands SET name = $2, slug = $3 WHERE id = $1`,
		brand.ID, brand.Name, brand.Slug,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}

// Delete exclui uma marca. Marca referenciada por produtos ou impressoras
// vira ErrConflict.
func (r *BrandRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
