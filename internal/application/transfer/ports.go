package transfer

import (
	"context"

	"github.com/smartstock/stockops-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la deducción en la hoja origen
// y el abono en la tienda destino sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		rows repository.ProductRowRepository,
		store repository.StoreRowRepository,
	) error) error
}
