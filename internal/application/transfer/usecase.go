package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

// Valores de siembra cuando la tienda destino no conoce el producto y la fila
// origen no aporta el dato.
const (
	defaultExpiryDays = 20
)

var (
	defaultCostPrice    = decimal.NewFromInt(500)
	defaultSellingPrice = decimal.NewFromInt(1500)
)

// InsufficientStockError se produce cuando la cantidad solicitada supera el
// stock vivo de la bodega origen. Available viaja en el mensaje porque el
// contrato lo expone verbatim al usuario.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock. Available: %d", e.Available)
}

// Is permite errors.Is(err, domain.ErrInsufficientStock).
func (e *InsufficientStockError) Is(target error) bool {
	return target == domain.ErrInsufficientStock
}

// UseCase ejecuta el traslado bodega → tienda destino de forma transaccional:
// bloquea la fila origen (SELECT FOR UPDATE), valida stock vivo, deduce y
// abona en la tienda dedicada de la bodega, todo con Commit o Rollback.
// El servidor es el árbitro final: la validación del cliente es solo asesora
// porque su snapshot puede estar obsoleto.
type UseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository) *UseCase {
	return &UseCase{txRunner: txRunner, warehouseRepo: warehouseRepo}
}

// Transfer aplica una TransferRequest y devuelve el resultado autoritativo.
// Errores: domain.ErrInvalidInput (campos faltantes o cantidad no positiva),
// domain.ErrWarehouseNotFound, domain.ErrProductNotFound,
// *InsufficientStockError (stock vivo insuficiente).
func (uc *UseCase) Transfer(ctx context.Context, in entity.TransferRequest) (*entity.TransferResult, error) {
	if in.WarehouseID == "" || in.ProductName == "" || in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	warehouse, err := uc.warehouseRepo.GetByName(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}

	now := time.Now()
	var newStock int

	err = uc.txRunner.Run(ctx, func(
		rows repository.ProductRowRepository,
		store repository.StoreRowRepository,
	) error {
		// Bloquea la fila origen: serializa deducciones de clientes concurrentes.
		source, err := rows.GetForUpdate(ctx, warehouse.Name, in.ProductName)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrProductNotFound
		}
		if source.Stock < in.Quantity {
			return &InsufficientStockError{Available: source.Stock}
		}

		newStock = source.Stock - in.Quantity
		if err := rows.UpdateStock(ctx, warehouse.Name, source.Name, newStock); err != nil {
			return err
		}

		// Abono en la tienda destino: suma si la fila existe, siembra si no.
		target, err := store.GetForUpdate(ctx, warehouse.TargetStore, in.ProductName)
		if err != nil {
			return err
		}
		if target != nil {
			target.Stock += in.Quantity
			target.LastUpdated = now
			return store.Update(ctx, target)
		}
		return store.Insert(ctx, seedStoreRow(warehouse.TargetStore, source, in.Quantity, now))
	})
	if err != nil {
		return nil, err
	}

	return &entity.TransferResult{
		Success:     true,
		Message:     fmt.Sprintf("Transferred %d units of %s from %s", in.Quantity, in.ProductName, in.WarehouseID),
		NewStock:    newStock,
		TargetStore: warehouse.TargetStore,
	}, nil
}

// seedStoreRow construye la fila nueva de la tienda a partir de la fila origen,
// con defaults cuando el origen no trae el dato.
func seedStoreRow(store string, source *entity.ProductRow, quantity int, now time.Time) *entity.StoreRow {
	row := &entity.StoreRow{
		Store:        store,
		Name:         entity.NormalizeProductName(source.Name),
		Stock:        quantity,
		ExpiryDays:   source.ExpiryDays,
		CostPrice:    source.CostPrice,
		SellingPrice: source.SellingPrice,
		LastUpdated:  now,
	}
	if row.ExpiryDays == 0 {
		row.ExpiryDays = defaultExpiryDays
	}
	if row.CostPrice.IsZero() {
		row.CostPrice = defaultCostPrice
	}
	if row.SellingPrice.IsZero() {
		row.SellingPrice = defaultSellingPrice
	}
	return row
}
