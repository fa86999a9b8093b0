package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductRow representa una fila de producto tal como vive en la hoja de origen
// de una bodega. Los nombres de columna de la hoja ("Products", "Stock", ...)
// se preservan en la frontera HTTP; aquí se modelan con nombres Go.
// El stock del cliente es solo un snapshot: el valor autoritativo vive en el backend.
type ProductRow struct {
	WarehouseID   string
	Name          string // columna "Products": clave natural dentro de la bodega
	Stock         int    // no negativo
	ExpiryDays    int
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	SalesQuantity int
	LowThreshold  int
	HighThreshold int
	Profit        decimal.Decimal
	LastUpdated   time.Time
}

// StoreRow representa una fila en la hoja de la tienda destino de una bodega.
type StoreRow struct {
	Store        string
	Name         string
	Stock        int
	ExpiryDays   int
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	LastUpdated  time.Time
}

// NormalizeProductName normaliza un nombre de producto para comparación:
// minúsculas y sin espacios en los extremos. Todo match de nombres del sistema
// pasa por aquí.
func NormalizeProductName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameProduct indica si dos nombres refieren al mismo producto bajo la
// normalización del contrato.
func SameProduct(a, b string) bool {
	return NormalizeProductName(a) == NormalizeProductName(b)
}
