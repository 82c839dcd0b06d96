package repository

import "github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"

// CompatibilityRepository define o porto da relação N:N produto <-> impressora.
type CompatibilityRepository interface {
	Link(cartridgeID, printerID string) error
	Unlink(cartridgeID, printerID string) error
	// ListCartridgeIDsByPrinterIDs devolve os ids de produto ligados a
	// qualquer uma das impressoras, já sem duplicatas.
	ListCartridgeIDsByPrinterIDs(printerIDs []string) ([]string, error)
	ListPrintersByCartridge(cartridgeID string) ([]*entity.Printer, error)
	DeleteByCartridge(cartridgeID string) error
	DeleteByPrinter(printerID string) error
}
