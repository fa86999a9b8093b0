package usecase

import (
	"context"

	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

// CatalogUseCase listados de bodegas y de productos por bodega.
// Son las dos fuentes de datos que la consola refresca de forma independiente.
type CatalogUseCase struct {
	warehouseRepo repository.WarehouseRepository
	rowRepo       repository.ProductRowRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(warehouseRepo repository.WarehouseRepository, rowRepo repository.ProductRowRepository) *CatalogUseCase {
	return &CatalogUseCase{warehouseRepo: warehouseRepo, rowRepo: rowRepo}
}

// ListWarehouses devuelve los nombres de bodega en el orden del backend.
func (uc *CatalogUseCase) ListWarehouses(ctx context.Context) (*dto.WarehousesResponse, error) {
	list, err := uc.warehouseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, w := range list {
		names = append(names, w.Name)
	}
	return &dto.WarehousesResponse{Warehouses: names}, nil
}

// ListProducts devuelve las filas de una bodega con los nombres de columna
// externos. El orden es el del backend; el cliente no asume estabilidad.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, warehouseID string) ([]dto.ProductRowDTO, error) {
	warehouse, err := uc.warehouseRepo.GetByName(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrWarehouseNotFound
	}
	rows, err := uc.rowRepo.ListByWarehouse(ctx, warehouse.Name)
	if err != nil {
		return nil, err
	}
	return dto.FromProductRows(rows), nil
}
