package usecase

import (
	"context"

	"github.com/ArthurS357/capcom-suprimentos-api/internal/domain/repository"
)

// TxRunner executa fn com repositórios atados à mesma transação. Usado nas
// exclusões que precisam limpar a relação de compatibilidade primeiro.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		printers repository.PrinterRepository,
		compat repository.CompatibilityRepository,
	) error) error
}
