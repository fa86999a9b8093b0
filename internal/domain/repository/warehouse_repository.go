package repository

import (
	"context"

	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// WarehouseRepository puerto de persistencia para bodegas.
// GetByName devuelve (nil, nil) si la bodega no existe.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByName(ctx context.Context, name string) (*entity.Warehouse, error)
	List(ctx context.Context) ([]*entity.Warehouse, error)
}
