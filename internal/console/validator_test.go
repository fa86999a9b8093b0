package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartstock/stockops-api/internal/console"
)

func readySnapshot(warehouse string, products ...console.Product) *console.Snapshot {
	snap := console.NewSnapshot()
	snap.SelectWarehouse(warehouse)
	snap.StartLoading()
	snap.SetProducts(products)
	return snap
}

func TestValidateTransfer_ClampDeCantidadesNoPositivas(t *testing.T) {
	snap := readySnapshot("warehouse1", console.Product{Name: "Chocolate", Stock: 50})

	// Toda entrada no positiva viaja como 1, nunca como el valor original.
	for _, q := range []int{0, -1, -50} {
		verdict := console.ValidateTransfer(snap, q)
		assert.True(t, verdict.Admissible, "cantidad %d", q)
		assert.Equal(t, 1, verdict.Quantity, "cantidad %d debe forzarse a 1", q)
	}
}

func TestValidateTransfer_RechazaSobreStock(t *testing.T) {
	snap := readySnapshot("warehouse1", console.Product{Name: "Chocolate", Stock: 50})

	verdict := console.ValidateTransfer(snap, 200)
	assert.False(t, verdict.Admissible)
	assert.Equal(t, "exceeds available stock", verdict.Reason)
}

func TestValidateTransfer_LimiteExactoEsAdmisible(t *testing.T) {
	snap := readySnapshot("warehouse1", console.Product{Name: "Chocolate", Stock: 50})

	verdict := console.ValidateTransfer(snap, 50)
	assert.True(t, verdict.Admissible)
	assert.Equal(t, 50, verdict.Quantity)
}

func TestValidateTransfer_SinBodega(t *testing.T) {
	verdict := console.ValidateTransfer(console.NewSnapshot(), 5)
	assert.False(t, verdict.Admissible)
	assert.Equal(t, "no warehouse selected", verdict.Reason)
}

func TestValidateTransfer_SinProducto(t *testing.T) {
	// Bodega seleccionada pero fetch aún sin resolver: no hay producto.
	snap := console.NewSnapshot()
	snap.SelectWarehouse("warehouse1")
	snap.StartLoading()

	verdict := console.ValidateTransfer(snap, 5)
	assert.False(t, verdict.Admissible)
	assert.Equal(t, "no product selected", verdict.Reason)
}

func TestValidateTransfer_ListaVaciaDeshabilitaEnvio(t *testing.T) {
	snap := readySnapshot("warehouse1")

	verdict := console.ValidateTransfer(snap, 1)
	assert.False(t, verdict.Admissible)
	assert.Equal(t, "no product selected", verdict.Reason)
}
