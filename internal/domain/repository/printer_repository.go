package repository

import "github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"

// PrinterRepository define o porto de persistência para Printer (DIP).
type PrinterRepository interface {
	Create(printer *entity.Printer) error
	GetByID(id string) (*entity.Printer, error)
	List() ([]*entity.Printer, error)
	// FindByModelNameContains busca por substring no modelo, sem
	// diferenciar maiúsculas/minúsculas.
	FindByModelNameContains(substr string) ([]*entity.Printer, error)
	Delete(id string) error
}
