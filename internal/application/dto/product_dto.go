package dto

import (
	"github.com/shopspring/decimal"
	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// WarehousesResponse respuesta de GET /api/warehouses.
type WarehousesResponse struct {
	Warehouses []string `json:"warehouses"`
}

// ProductRowDTO fila de producto con los nombres de columna de la hoja de
// cálculo de origen. Son nombres externos fijados por el contrato: se preservan
// verbatim en la frontera HTTP, no se rediseñan.
type ProductRowDTO struct {
	Products      string          `json:"Products"`
	Stock         int             `json:"Stock"`
	ExpiryDays    int             `json:"Expiry Days"`
	CostPrice     decimal.Decimal `json:"Cost Price"`
	SellingPrice  decimal.Decimal `json:"Selling Price"`
	SalesQuantity int             `json:"Sales Quantity"`
	LowThreshold  int             `json:"Low Threshold"`
	HighThreshold int             `json:"High Threshold"`
	Profit        decimal.Decimal `json:"Profit"`
	LastUpdated   string          `json:"Last Updated,omitempty"`
}

// FromProductRow convierte la entidad a la forma externa de la hoja.
func FromProductRow(r *entity.ProductRow) ProductRowDTO {
	dto := ProductRowDTO{
		Products:      r.Name,
		Stock:         r.Stock,
		ExpiryDays:    r.ExpiryDays,
		CostPrice:     r.CostPrice,
		SellingPrice:  r.SellingPrice,
		SalesQuantity: r.SalesQuantity,
		LowThreshold:  r.LowThreshold,
		HighThreshold: r.HighThreshold,
		Profit:        r.Profit,
	}
	if !r.LastUpdated.IsZero() {
		dto.LastUpdated = r.LastUpdated.Format("01-02-2006") // formato de fecha de la hoja de origen
	}
	return dto
}

// FromProductRows convierte una lista de filas manteniendo el orden del backend.
func FromProductRows(rows []*entity.ProductRow) []ProductRowDTO {
	out := make([]ProductRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromProductRow(r))
	}
	return out
}
