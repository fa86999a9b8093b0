package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/stockops-api/internal/console"
)

func TestSnapshot_SeleccionPorDefectoEsLaPrimeraFila(t *testing.T) {
	snap := readySnapshot("warehouse1",
		console.Product{Name: "Chocolate", Stock: 50},
		console.Product{Name: "Fairy Lights", Stock: 80},
	)

	require.Equal(t, console.StateReady, snap.State())
	selected, ok := snap.Selected()
	require.True(t, ok)
	assert.Equal(t, "Chocolate", selected.Name)
	assert.True(t, snap.CanSubmit())
}

func TestSnapshot_ListaVaciaSinSeleccion(t *testing.T) {
	snap := readySnapshot("warehouse1")

	_, ok := snap.Selected()
	assert.False(t, ok)
	assert.False(t, snap.CanSubmit())
}

func TestSnapshot_CambioDeBodegaReseteaSeleccion(t *testing.T) {
	snap := readySnapshot("warehouseA", console.Product{Name: "Chocolate", Stock: 50})
	require.True(t, snap.CanSubmit())

	// Bodega B sin lista cargada: nada seleccionado, envío deshabilitado.
	snap.SelectWarehouse("warehouseB")

	assert.Equal(t, console.StateEmpty, snap.State())
	_, ok := snap.Selected()
	assert.False(t, ok)
	assert.False(t, snap.CanSubmit())
}

func TestSnapshot_SeleccionSoloDesdeReady(t *testing.T) {
	snap := console.NewSnapshot()
	snap.SelectWarehouse("warehouse1")
	assert.False(t, snap.SelectProduct("Chocolate"), "en Empty no se puede seleccionar")

	snap.StartLoading()
	assert.False(t, snap.SelectProduct("Chocolate"), "en Loading no se puede seleccionar")

	snap.SetError("boom")
	assert.Equal(t, console.StateErrored, snap.State())
	assert.False(t, snap.SelectProduct("Chocolate"), "en Errored no se puede seleccionar")
	assert.Equal(t, "boom", snap.ErrorMessage())
}

func TestSnapshot_SeleccionInsensibleAMayusculas(t *testing.T) {
	snap := readySnapshot("warehouse1",
		console.Product{Name: "Chocolate", Stock: 50},
		console.Product{Name: "Fairy Lights", Stock: 80},
	)

	require.True(t, snap.SelectProduct("  fairy lights "))
	selected, _ := snap.Selected()
	assert.Equal(t, "Fairy Lights", selected.Name)
}

func TestSnapshot_ApplyTransferResultParcheaSoloElAfectado(t *testing.T) {
	snap := readySnapshot("warehouse1",
		console.Product{Name: "P1", Stock: 10},
		console.Product{Name: "P2", Stock: 5},
	)

	require.True(t, snap.ApplyTransferResult("P1", 7))

	products := snap.Products()
	assert.Equal(t, 7, products[0].Stock)
	assert.Equal(t, 5, products[1].Stock, "las demás filas no cambian")
}

func TestSnapshot_ApplyTransferResultFueraDeReadyNoHaceNada(t *testing.T) {
	snap := readySnapshot("warehouse1", console.Product{Name: "P1", Stock: 10})

	// El usuario navegó a otra bodega con el request en vuelo: el resultado
	// llega tarde y no encuentra dónde aplicarse.
	snap.SelectWarehouse("warehouse2")
	assert.False(t, snap.ApplyTransferResult("P1", 7))
}

func TestSnapshot_ApplyTransferResultProductoDesconocido(t *testing.T) {
	snap := readySnapshot("warehouse1", console.Product{Name: "P1", Stock: 10})

	assert.False(t, snap.ApplyTransferResult("P9", 7))
	assert.Equal(t, 10, snap.Products()[0].Stock)
}
