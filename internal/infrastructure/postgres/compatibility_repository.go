package postgres

import (
	"context"
	"fmt"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
)

var _ repository.CompatibilityRepository = (*CompatibilityRepo)(nil)

// CompatibilityRepo implementação do porto da relação N:N sobre PostgreSQL.
// Chave composta (cartridge_id, printer_id).
type CompatibilityRepo struct {
	q Querier
}

// NewCompatibilityRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewCompatibilityRepository(q Querier) *CompatibilityRepo {
	return &CompatibilityRepo{q: q}
}

// Link cria o vínculo produto <-> impressora.
func (r *CompatibilityRepo) Link(cartridgeID, printerID string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO printer_compatibilities (cartridge_id, printer_id) VALUES ($1, $2)`,
		cartridgeID, printerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert compatibility: %w", err)
	}
	return nil
}

// Unlink remove o vínculo produto <-> impressora.
func (r *CompatibilityRepo) Unlink(cartridgeID, printerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM printer_compatibilities WHERE cartridge_id = $1 AND printer_id = $2`,
		cartridgeID, printerID,
	)
	if err != nil {
		return fmt.Errorf("delete compatibility: %w", err)
	}
	return nil
}

// ListCartridgeIDsByPrinterIDs devolve, sem duplicatas, os ids de produto
// ligados a qualquer uma das impressoras.
func (r *CompatibilityRepo) ListCartridgeIDsByPrinterIDs(printerIDs []string) ([]string, error) {
	if len(printerIDs) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT cartridge_id FROM printer_compatibilities WHERE printer_id = ANY($1)`,
		printerIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list compatible cartridges: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan cartridge id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListPrintersByCartridge lista as impressoras compatíveis com um produto.
func (r *CompatibilityRepo) ListPrintersByCartridge(cartridgeID string) ([]*entity.Printer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT pr.id, pr.model_name, pr.brand_id
		 FROM printer_compatibilities pc
		 JOIN printers pr ON pr.id = pc.printer_id
		 WHERE pc.cartridge_id = $1
		 ORDER BY pr.model_name ASC`,
		cartridgeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list printers by cartridge: %w", err)
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

// DeleteByCartridge remove todos os vínculos de um produto.
func (r *CompatibilityRepo) DeleteByCartridge(cartridgeID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM printer_compatibilities WHERE cartridge_id = $1`, cartridgeID)
	if err != nil {
		return fmt.Errorf("delete compatibilities by cartridge: %w", err)
	}
	return nil
}

// DeleteByPrinter remove todos os vínculos de uma impressora.
func (r *CompatibilityRepo) DeleteByPrinter(printerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM printer_compatibilities WHERE printer_id = $1`, printerID)
	if err != nil {
		return fmt.Errorf("delete compatibilities by printer: %w", err)
	}
	return nil
}
