package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/search"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, slug, COALESCE(description, ''), price, type, brand_id, category_id, COALESCE(image_url, ''), created_at`

// Create persiste um novo produto.
func (r *ProductRepo) Create(product *entity.Product) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO products (id, name, slug, description, price, type, brand_id, category_id, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.Name, product.Slug, product.Description, product.Price,
		product.Type, product.BrandID, product.CategoryID, product.ImageURL, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price,
		&p.Type, &p.BrandID, &p.CategoryID, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetBySlug obtém a projeção pública de um produto pelo slug.
func (r *ProductRepo) GetBySlug(slug string) (*entity.ProductListing, error) {
	query := listingSelect + ` WHERE p.slug = $1`
	var p entity.ProductListing
	err := r.q.QueryRow(context.Background(), query, slug).Scan(listingFields(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return &p, nil
}

// Update atualiza um produto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET name = $2, slug = $3, description = $4, price = $5, type = $6,
		        brand_id = $7, category_id = $8, image_url = $9
		 WHERE id = $1`,
		product.ID, product.Name, product.Slug, product.Description, product.Price,
		product.Type, product.BrandID, product.CategoryID, product.ImageURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete exclui um produto por ID. As linhas de compatibilidade devem ter
// sido removidas antes, na mesma transação (ver TxRunner).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// listingSelect é a consulta base da busca: produto com marca e categoria
// resolvidas. DISTINCT garante ausência de duplicatas quando um produto casa
// por mais de um ramo do OR.
const listingSelect = `
	SELECT DISTINCT p.id, p.name, p.slug, COALESCE(p.description, ''), p.price, p.type,
	       p.brand_id, p.category_id, COALESCE(p.image_url, ''), p.created_at,
	       b.name, c.name, c.slug
	FROM products p
	JOIN brands b ON b.id = p.brand_id
	JOIN categories c ON c.id = p.category_id`

func listingFields(p *entity.ProductListing) []any {
	return []any{
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Type,
		&p.BrandID, &p.CategoryID, &p.ImageURL, &p.CreatedAt,
		&p.BrandName, &p.CategoryName, &p.CategorySlug,
	}
}

// Search traduz o predicado componível para WHERE e executa a consulta,
// ordenada por nome ascendente. Predicado inválido vira ErrInvalidInput
// antes de tocar o banco.
func (r *ProductRepo) Search(pred search.Predicate) ([]*entity.ProductListing, error) {
	where, args, err := translatePredicate(pred)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	query := listingSelect + ` WHERE ` + where + ` ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductListing
	for rows.Next() {
		var p entity.ProductListing
		if err := rows.Scan(listingFields(&p)...); err != nil {
			return nil, fmt.Errorf("scan product listing: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DistinctTypes devolve o conjunto distinto de tipos presentes, ascendente.
func (r *ProductRepo) DistinctTypes() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT type FROM products ORDER BY type ASC`)
	if err != nil {
		return nil, fmt.Errorf("distinct product types: %w", err)
	}
	defer rows.Close()
	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
