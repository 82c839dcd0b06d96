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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementação do porto CategoryRepository sobre PostgreSQL.
// parent_id é NULL no banco quando a categoria é raiz; na entidade, vazio.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste uma nova categoria.
func (r *CategoryRepo) Create(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (id, name, slug, image_url, parent_id)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))`,
		category.ID, category.Name, category.Slug, category.ImageURL, category.ParentID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.getBy("id", id)
}

// GetBySlug obtém uma categoria pelo slug.
func (r *CategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	return r.getBy("slug", slug)
}

func (r *CategoryRepo) getBy(column, value string) (*entity.Category, error) {
	query := fmt.Sprintf(
		`SELECT id, name, slug, COALESCE(image_url, ''), COALESCE(parent_id, '')
		 FROM categories WHERE %s = $1`, column)
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, value).
		Scan(&c.ID, &c.Name, &c.Slug, &c.ImageURL, &c.ParentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListRoots lista as categorias sem pai, por nome.
func (r *CategoryRepo) ListRoots() ([]*entity.Category, error) {
	return r.list(`SELECT id, name, slug, COALESCE(image_url, ''), COALESCE(parent_id, '')
		FROM categories WHERE parent_id IS NULL ORDER BY name ASC`)
}

// ListByParent lista as filhas diretas de uma categoria, por nome.
func (r *CategoryRepo) ListByParent(parentID string) ([]*entity.Category, error) {
	return r.list(`SELECT id, name, slug, COALESCE(image_url, ''), COALESCE(parent_id, '')
		FROM categories WHERE parent_id = $1 ORDER BY name ASC`, parentID)
}

func (r *CategoryRepo) list(query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ImageURL, &c.ParentID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza uma categoria (nome, slug, imagem e pai).
func (r *CategoryRepo) Update(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2, slug = $3, image_url = $4, parent_id = NULLIF($5, '')
		 WHERE id = $1`,
		category.ID, category.Name, category.Slug, category.ImageURL, category.ParentID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete exclui uma categoria. Categoria com produtos ou filhas vira ErrConflict.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
