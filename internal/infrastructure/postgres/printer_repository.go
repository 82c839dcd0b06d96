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

var _ repository.PrinterRepository = (*PrinterRepo)(nil)

// PrinterRepo implementação do porto PrinterRepository sobre PostgreSQL.
type PrinterRepo struct {
	q Querier
}

// NewPrinterRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewPrinterRepository(q Querier) *PrinterRepo {
	return &PrinterRepo{q: q}
}

// Create persiste um novo modelo de impressora.
func (r *PrinterRepo) Create(printer *entity.Printer) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO printers (id, model_name, brand_id) VALUES ($1, $2, $3)`,
		printer.ID, printer.ModelName, printer.BrandID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert printer: %w", err)
	}
	return nil
}

// GetByID obtém uma impressora por ID.
func (r *PrinterRepo) GetByID(id string) (*entity.Printer, error) {
	var p entity.Printer
	err := r.q.QueryRow(context.Background(),
		`SELECT id, model_name, brand_id FROM printers WHERE id = $1`, id).
		Scan(&p.ID, &p.ModelName, &p.BrandID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get printer: %w", err)
	}
	return &p, nil
}

// List lista todos os modelos por nome ascendente.
func (r *PrinterRepo) List() ([]*entity.Printer, error) {
	return r.query(`SELECT id, model_name, brand_id FROM printers ORDER BY model_name ASC`)
}

// FindByModelNameContains busca modelos por substring literal,
// case-insensitive; os curingas de ILIKE no texto são escapados.
func (r *PrinterRepo) FindByModelNameContains(substr string) ([]*entity.Printer, error) {
	return r.query(
		`SELECT id, model_name, brand_id FROM printers
		 WHERE model_name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY model_name ASC`, escapeLike(substr))
}

func (r *PrinterRepo) query(query string, args ...any) ([]*entity.Printer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list printers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Printer
	for rows.Next() {
		var p entity.Printer
		if err := rows.Scan(&p.ID, &p.ModelName, &p.BrandID); err != nil {
			return nil, fmt.Errorf("scan printer: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete exclui uma impressora por ID. As linhas de compatibilidade devem
// ter sido removidas antes, na mesma transação (ver TxRunner).
func (r *PrinterRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM printers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete printer: %w", err)
	}
	return nil
}
