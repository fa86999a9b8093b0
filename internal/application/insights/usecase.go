package insights

import (
	"context"

	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/application/ports"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

// UseCase insights de demanda/stock y estimación de tiempos de viaje.
// Ambos delegan en proveedores externos detrás de puertos; el caso de uso solo
// arma el payload y valida la entrada.
type UseCase struct {
	warehouseRepo repository.WarehouseRepository
	rowRepo       repository.ProductRowRepository
	analyzer      ports.StockAnalyzer
	travel        ports.TravelEstimator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	warehouseRepo repository.WarehouseRepository,
	rowRepo repository.ProductRowRepository,
	analyzer ports.StockAnalyzer,
	travel ports.TravelEstimator,
) *UseCase {
	return &UseCase{warehouseRepo: warehouseRepo, rowRepo: rowRepo, analyzer: analyzer, travel: travel}
}

// StockInsights clasifica los productos de una bodega en alta-demanda/stock-bajo
// y baja-demanda/stock-alto.
func (uc *UseCase) StockInsights(ctx context.Context, warehouseID string) (*dto.StockInsightsResponse, error) {
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
	return uc.analyzer.AnalyzeStock(ctx, rows)
}

// TravelTime estima los minutos de viaje entre origen y destino.
func (uc *UseCase) TravelTime(ctx context.Context, origin, destination string) (int, error) {
	if origin == "" || destination == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.travel.EstimateTravelTime(ctx, origin, destination)
}
