package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

const expiringSoonWindowDays = 7

// DashboardUseCase agregados de inventario para el panel: umbrales, vencimientos,
// valor total, cobertura en días y márgenes. Aritmética pura sobre las filas de
// una bodega.
type DashboardUseCase struct {
	warehouseRepo repository.WarehouseRepository
	rowRepo       repository.ProductRowRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(warehouseRepo repository.WarehouseRepository, rowRepo repository.ProductRowRepository) *DashboardUseCase {
	return &DashboardUseCase{warehouseRepo: warehouseRepo, rowRepo: rowRepo}
}

// Metrics calcula los agregados del panel para una bodega.
func (uc *DashboardUseCase) Metrics(ctx context.Context, warehouseID string) (*dto.DashboardMetricsResponse, error) {
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
	return ComputeMetrics(rows), nil
}

// ComputeMetrics agrega las filas (tras agrupar duplicados) en las métricas del panel.
func ComputeMetrics(rows []*entity.ProductRow) *dto.DashboardMetricsResponse {
	grouped := GroupDuplicates(rows)

	out := &dto.DashboardMetricsResponse{
		LowStock:         []dto.ProductRowDTO{},
		OverStock:        []dto.ProductRowDTO{},
		ExpiringSoon:     []dto.ProductRowDTO{},
		TotalValue:       decimal.Zero,
		PotentialRevenue: decimal.Zero,
		PotentialProfit:  decimal.Zero,
		DaysOfSupply:     []dto.DaysOfSupplyDTO{},
		ProfitMargins:    []dto.ProfitMarginDTO{},
	}

	for _, r := range grouped {
		stock := decimal.NewFromInt(int64(r.Stock))

		if r.Stock < r.LowThreshold {
			out.LowStock = append(out.LowStock, dto.FromProductRow(r))
		}
		if r.HighThreshold > 0 && r.Stock > r.HighThreshold {
			out.OverStock = append(out.OverStock, dto.FromProductRow(r))
		}
		if r.ExpiryDays >= 0 && r.ExpiryDays <= expiringSoonWindowDays {
			out.ExpiringSoon = append(out.ExpiringSoon, dto.FromProductRow(r))
		}

		out.TotalValue = out.TotalValue.Add(stock.Mul(r.CostPrice))
		out.PotentialRevenue = out.PotentialRevenue.Add(stock.Mul(r.SellingPrice))

		out.DaysOfSupply = append(out.DaysOfSupply, daysOfSupply(r))

		if r.SellingPrice.IsPositive() {
			margin := r.SellingPrice.Sub(r.CostPrice).
				Div(r.SellingPrice).
				Mul(decimal.NewFromInt(100)).
				Round(1)
			out.ProfitMargins = append(out.ProfitMargins, dto.ProfitMarginDTO{
				Product: r.Name,
				Margin:  margin,
			})
		}
	}

	out.PotentialProfit = out.PotentialRevenue.Sub(out.TotalValue)
	sortDaysOfSupply(out.DaysOfSupply)
	return out
}

// GroupDuplicates combina filas con el mismo nombre normalizado: suma stock y
// ventas, conserva los demás campos de la primera aparición. La hoja de origen
// puede traer el mismo producto repetido en varias filas.
func GroupDuplicates(rows []*entity.ProductRow) []*entity.ProductRow {
	index := make(map[string]*entity.ProductRow)
	var order []string

	for _, r := range rows {
		key := entity.NormalizeProductName(r.Name)
		if existing, ok := index[key]; ok {
			existing.Stock += r.Stock
			existing.SalesQuantity += r.SalesQuantity
			existing.Profit = existing.Profit.Add(r.Profit)
			continue
		}
		clone := *r
		index[key] = &clone
		order = append(order, key)
	}

	out := make([]*entity.ProductRow, 0, len(order))
	for _, key := range order {
		out = append(out, index[key])
	}
	return out
}

// daysOfSupply calcula la cobertura en días al ritmo de venta mensual.
// Sin ventas la cobertura es infinita; esos productos se ordenan al final.
func daysOfSupply(r *entity.ProductRow) dto.DaysOfSupplyDTO {
	if r.SalesQuantity <= 0 {
		return dto.DaysOfSupplyDTO{Product: r.Name, Infinite: true}
	}
	days := r.Stock * 30 / r.SalesQuantity
	return dto.DaysOfSupplyDTO{Product: r.Name, Days: days}
}

func sortDaysOfSupply(list []dto.DaysOfSupplyDTO) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Infinite != list[j].Infinite {
			return !list[i].Infinite
		}
		return list[i].Days < list[j].Days
	})
}
