package repository

import (
	"context"

	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// ProductRowRepository puerto de persistencia para las filas de producto de
// las hojas de origen (una por bodega).
// GetForUpdate se usa dentro de una transacción: bloquea la fila (SELECT FOR UPDATE)
// para serializar deducciones concurrentes; devuelve (nil, nil) si no hay match.
// El match por nombre es insensible a mayúsculas y espacios (entity.NormalizeProductName).
type ProductRowRepository interface {
	ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.ProductRow, error)
	GetForUpdate(ctx context.Context, warehouseID, productName string) (*entity.ProductRow, error)
	UpdateStock(ctx context.Context, warehouseID, productName string, newStock int) error
}

// StoreRowRepository puerto de persistencia para las filas de la tienda destino.
type StoreRowRepository interface {
	GetForUpdate(ctx context.Context, store, productName string) (*entity.StoreRow, error)
	Update(ctx context.Context, row *entity.StoreRow) error
	Insert(ctx context.Context, row *entity.StoreRow) error
}
