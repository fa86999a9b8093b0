package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/stockops-api/internal/application/analytics"
	"github.com/smartstock/stockops-api/internal/domain/entity"
)

func row(name string, stock, sales, low, high, expiry int, cost, sell int64) *entity.ProductRow {
	return &entity.ProductRow{
		WarehouseID:   "warehouse1",
		Name:          name,
		Stock:         stock,
		SalesQuantity: sales,
		LowThreshold:  low,
		HighThreshold: high,
		ExpiryDays:    expiry,
		CostPrice:     decimal.NewFromInt(cost),
		SellingPrice:  decimal.NewFromInt(sell),
	}
}

func TestGroupDuplicates_SumaStockYVentas(t *testing.T) {
	rows := []*entity.ProductRow{
		row("Fairy Lights", 50, 200, 100, 5000, 30, 100, 150),
		row("fairy lights ", 30, 100, 100, 5000, 30, 100, 150), // duplicado con otra grafía
		row("Chocolate", 8000, 600, 10, 10000, 30, 500, 1500),
	}

	grouped := analytics.GroupDuplicates(rows)
	require.Len(t, grouped, 2, "las grafías del mismo producto deben agruparse")

	assert.Equal(t, 80, grouped[0].Stock)
	assert.Equal(t, 300, grouped[0].SalesQuantity)
	assert.Equal(t, "Fairy Lights", grouped[0].Name, "se conserva la primera grafía")
	assert.Equal(t, 8000, grouped[1].Stock)
}

func TestGroupDuplicates_NoMutaLasFilasOriginales(t *testing.T) {
	a := row("Chocolate", 10, 5, 1, 100, 30, 500, 1500)
	b := row("chocolate", 7, 2, 1, 100, 30, 500, 1500)

	analytics.GroupDuplicates([]*entity.ProductRow{a, b})

	assert.Equal(t, 10, a.Stock, "la entrada no debe mutarse")
	assert.Equal(t, 7, b.Stock)
}

func TestComputeMetrics_Umbrales(t *testing.T) {
	rows := []*entity.ProductRow{
		row("Fairy Lights", 50, 200, 100, 5000, 30, 100, 150), // bajo umbral
		row("Protein Shake", 5000, 50, 20, 4000, 30, 300, 450), // sobre umbral
		row("Facewash", 600, 30, 50, 1000, 30, 200, 350),       // dentro de rango
	}

	m := analytics.ComputeMetrics(rows)

	require.Len(t, m.LowStock, 1)
	assert.Equal(t, "Fairy Lights", m.LowStock[0].Products)
	require.Len(t, m.OverStock, 1)
	assert.Equal(t, "Protein Shake", m.OverStock[0].Products)
}

func TestComputeMetrics_VencimientoProximo(t *testing.T) {
	rows := []*entity.ProductRow{
		row("Leche", 10, 1, 1, 100, 3, 100, 150),  // vence en 3 días
		row("Arroz", 10, 1, 1, 100, 90, 100, 150), // lejos del vencimiento
	}

	m := analytics.ComputeMetrics(rows)

	require.Len(t, m.ExpiringSoon, 1)
	assert.Equal(t, "Leche", m.ExpiringSoon[0].Products)
}

func TestComputeMetrics_ValoresYGanancia(t *testing.T) {
	rows := []*entity.ProductRow{
		row("A", 10, 1, 1, 100, 30, 100, 150), // valor 1000, revenue 1500
		row("B", 5, 1, 1, 100, 30, 200, 500),  // valor 1000, revenue 2500
	}

	m := analytics.ComputeMetrics(rows)

	assert.True(t, m.TotalValue.Equal(decimal.NewFromInt(2000)), "valor total: %s", m.TotalValue)
	assert.True(t, m.PotentialRevenue.Equal(decimal.NewFromInt(4000)))
	assert.True(t, m.PotentialProfit.Equal(decimal.NewFromInt(2000)))
}

func TestComputeMetrics_DiasDeCobertura(t *testing.T) {
	rows := []*entity.ProductRow{
		row("Electric car", 100, 0, 1, 30000, 365, 10000, 30000), // sin ventas → infinito
		row("Chocolate", 8000, 600, 10, 10000, 30, 500, 1500),    // 8000*30/600 = 400
		row("Fairy Lights", 50, 200, 100, 5000, 30, 100, 150),    // 50*30/200 = 7
	}

	m := analytics.ComputeMetrics(rows)
	require.Len(t, m.DaysOfSupply, 3)

	// Orden ascendente por días, infinitos al final.
	assert.Equal(t, "Fairy Lights", m.DaysOfSupply[0].Product)
	assert.Equal(t, 7, m.DaysOfSupply[0].Days)
	assert.Equal(t, "Chocolate", m.DaysOfSupply[1].Product)
	assert.Equal(t, 400, m.DaysOfSupply[1].Days)
	assert.True(t, m.DaysOfSupply[2].Infinite)
	assert.Equal(t, "Electric car", m.DaysOfSupply[2].Product)
}

func TestComputeMetrics_Margenes(t *testing.T) {
	rows := []*entity.ProductRow{
		row("A", 10, 1, 1, 100, 30, 100, 150),
		row("Regalo", 10, 1, 1, 100, 30, 0, 0), // precio de venta 0: sin margen calculable
	}

	m := analytics.ComputeMetrics(rows)

	require.Len(t, m.ProfitMargins, 1)
	assert.Equal(t, "A", m.ProfitMargins[0].Product)
	assert.True(t, m.ProfitMargins[0].Margin.Equal(decimal.NewFromFloat(33.3)),
		"margen (150-100)/150*100 redondeado a un decimal, fue %s", m.ProfitMargins[0].Margin)
}

func TestComputeMetrics_ListaVacia(t *testing.T) {
	m := analytics.ComputeMetrics(nil)

	assert.Empty(t, m.LowStock)
	assert.Empty(t, m.DaysOfSupply)
	assert.True(t, m.TotalValue.IsZero())
	assert.True(t, m.PotentialProfit.IsZero())
}
