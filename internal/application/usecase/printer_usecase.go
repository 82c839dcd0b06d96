package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/application/dto"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/entity"
	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
)

// PrinterUseCase casos de uso para modelos de impressora e seus vínculos de
// compatibilidade com produtos.
type PrinterUseCase struct {
	repo     repository.PrinterRepository
	brands   repository.BrandRepository
	products repository.ProductRepository
	compat   repository.CompatibilityRepository
	tx       TxRunner
}

// NewPrinterUseCase constrói o caso de uso.
func NewPrinterUseCase(
	repo repository.PrinterRepository,
	brands repository.BrandRepository,
	products repository.ProductRepository,
	compat repository.CompatibilityRepository,
	tx TxRunner,
) *PrinterUseCase {
	return &PrinterUseCase{repo: repo, brands: brands, products: products, compat: compat, tx: tx}
}

// Create cadastra um modelo de impressora. ModelName é único.
func (uc *PrinterUseCase) Create(in dto.CreatePrinterRequest) (*dto.PrinterResponse, error) {
	model := strings.TrimSpace(in.ModelName)
	if model == "" {
		return nil, domain.ErrInvalidInput
	}
	brand, err := uc.brands.GetByID(in.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrInvalidInput
	}
	printer := &entity.Printer{ID: uuid.New().String(), ModelName: model, BrandID: in.BrandID}
	if err := uc.repo.Create(printer); err != nil {
		return nil, err
	}
	return toPrinterResponse(printer), nil
}

// List lista todos os modelos cadastrados.
func (uc *PrinterUseCase) List() ([]dto.PrinterResponse, error) {
	printers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PrinterResponse, 0, len(printers))
	for _, p := range printers {
		items = append(items, *toPrinterResponse(p))
	}
	return items, nil
}

// Link vincula um produto (cartucho/toner) a uma impressora. Ambos devem
// existir; vínculo repetido vira ErrDuplicate.
func (uc *PrinterUseCase) Link(printerID, cartridgeID string) error {
	printer, err := uc.repo.GetByID(printerID)
	if err != nil {
		return err
	}
	product, err := uc.products.GetByID(cartridgeID)
	if err != nil {
		return err
	}
	if printer == nil || product == nil {
		return domain.ErrNotFound
	}
	return uc.compat.Link(cartridgeID, printerID)
}

// Unlink remove o vínculo produto <-> impressora.
func (uc *PrinterUseCase) Unlink(printerID, cartridgeID string) error {
	return uc.compat.Unlink(cartridgeID, printerID)
}

// Delete exclui uma impressora, removendo antes as linhas de compatibilidade
// na mesma transação (integridade referencial).
func (uc *PrinterUseCase) Delete(id string) error {
	return uc.tx.Run(context.Background(), func(
		_ repository.ProductRepository,
		printers repository.PrinterRepository,
		compat repository.CompatibilityRepository,
	) error {
		if err := compat.DeleteByPrinter(id); err != nil {
			return err
		}
		return printers.Delete(id)
	})
}

func toPrinterResponse(p *entity.Printer) *dto.PrinterResponse {
	return &dto.PrinterResponse{ID: p.ID, ModelName: p.ModelName, BrandID: p.BrandID}
}
