package dto

import "github.com/shopspring/decimal"

// DashboardMetricsResponse agregados de inventario para el panel de una bodega.
// Los agregados se calculan del lado del servidor, no en el cliente.
type DashboardMetricsResponse struct {
	LowStock         []ProductRowDTO   `json:"low_stock"`
	OverStock        []ProductRowDTO   `json:"over_stock"`
	ExpiringSoon     []ProductRowDTO   `json:"expiring_soon"`
	TotalValue       decimal.Decimal   `json:"total_inventory_value"`
	PotentialRevenue decimal.Decimal   `json:"potential_revenue"`
	PotentialProfit  decimal.Decimal   `json:"potential_profit"`
	DaysOfSupply     []DaysOfSupplyDTO `json:"days_of_supply"`
	ProfitMargins    []ProfitMarginDTO `json:"profit_margins"`
}

// DaysOfSupplyDTO días de cobertura de stock por producto según ritmo de venta.
// Infinite marca productos sin ventas (cobertura ilimitada); van al final del listado.
type DaysOfSupplyDTO struct {
	Product  string `json:"product"`
	Days     int    `json:"days"`
	Infinite bool   `json:"infinite"`
}

// ProfitMarginDTO margen porcentual por producto.
type ProfitMarginDTO struct {
	Product string          `json:"product"`
	Margin  decimal.Decimal `json:"margin_pct"`
}

// StockInsightsResponse clasificación demanda/stock generada por el proveedor de IA.
type StockInsightsResponse struct {
	HighDemandLowStock []string `json:"high_demand_low_stock"`
	LowDemandHighStock []string `json:"low_demand_high_stock"`
}
