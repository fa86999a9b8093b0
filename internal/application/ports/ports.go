package ports

import (
	"context"

	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// StockAnalyzer clasifica productos por demanda/stock usando un proveedor LLM.
type StockAnalyzer interface {
	AnalyzeStock(ctx context.Context, rows []*entity.ProductRow) (*dto.StockInsightsResponse, error)
}

// TravelEstimator estima minutos de viaje por carretera entre dos direcciones.
// El proveedor de ruteo queda fuera del sistema; aquí solo se fija la frontera.
type TravelEstimator interface {
	EstimateTravelTime(ctx context.Context, origin, destination string) (int, error)
}

// Notifier envía alertas operativas a un canal externo (Telegram, etc.).
type Notifier interface {
	Send(ctx context.Context, text string) error
}
