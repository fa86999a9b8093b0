package transfer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/stockops-api/internal/application/transfer"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: implementan los puertos de repositorio sin base de datos.
// El TxRunner falso ejecuta el callback directamente; si el callback falla,
// ninguna mutación previa se revierte aquí, así que cada test valida el estado
// final esperado de forma explícita.
// ──────────────────────────────────────────────────────────────────────────────

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (f *fakeWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	f.warehouses[w.Name] = w
	return nil
}
func (f *fakeWarehouseRepo) GetByName(_ context.Context, name string) (*entity.Warehouse, error) {
	return f.warehouses[name], nil
}
func (f *fakeWarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) { return nil, nil }

type fakeRows struct {
	rows []*entity.ProductRow
}

func (f *fakeRows) ListByWarehouse(_ context.Context, warehouseID string) ([]*entity.ProductRow, error) {
	var out []*entity.ProductRow
	for _, r := range f.rows {
		if r.WarehouseID == warehouseID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRows) GetForUpdate(_ context.Context, warehouseID, productName string) (*entity.ProductRow, error) {
	for _, r := range f.rows {
		if r.WarehouseID == warehouseID && entity.SameProduct(r.Name, productName) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRows) UpdateStock(_ context.Context, warehouseID, productName string, newStock int) error {
	for _, r := range f.rows {
		if r.WarehouseID == warehouseID && entity.SameProduct(r.Name, productName) {
			r.Stock = newStock
			return nil
		}
	}
	return domain.ErrProductNotFound
}

type fakeStore struct {
	rows []*entity.StoreRow
}

func (f *fakeStore) GetForUpdate(_ context.Context, store, productName string) (*entity.StoreRow, error) {
	for _, r := range f.rows {
		if r.Store == store && entity.SameProduct(r.Name, productName) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Update(_ context.Context, row *entity.StoreRow) error { return nil }
func (f *fakeStore) Insert(_ context.Context, row *entity.StoreRow) error {
	f.rows = append(f.rows, row)
	return nil
}

type fakeTxRunner struct {
	rows  *fakeRows
	store *fakeStore
	calls int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	rows repository.ProductRowRepository,
	store repository.StoreRowRepository,
) error) error {
	f.calls++
	return fn(f.rows, f.store)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func buildFixture() (*transfer.UseCase, *fakeRows, *fakeStore, *fakeTxRunner) {
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		"warehouse1": {Name: "warehouse1", TargetStore: "warehouse1_store"},
	}}
	rows := &fakeRows{rows: []*entity.ProductRow{
		{
			WarehouseID:  "warehouse1",
			Name:         "Chocolate",
			Stock:        50,
			ExpiryDays:   10,
			CostPrice:    decimal.NewFromInt(800),
			SellingPrice: decimal.NewFromInt(1200),
		},
		{WarehouseID: "warehouse1", Name: "Facewash", Stock: 5},
	}}
	store := &fakeStore{}
	runner := &fakeTxRunner{rows: rows, store: store}
	return transfer.NewUseCase(runner, warehouses), rows, store, runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_ExitoDeduceOrigenYAbonaTienda(t *testing.T) {
	uc, rows, store, _ := buildFixture()

	res, err := uc.Transfer(context.Background(), entity.TransferRequest{
		WarehouseID: "warehouse1",
		ProductName: "Chocolate",
		Quantity:    3,
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 47, res.NewStock, "el resultado debe traer el stock autoritativo post-traslado")
	assert.Equal(t, "warehouse1_store", res.TargetStore)
	assert.Equal(t, "Transferred 3 units of Chocolate from warehouse1", res.Message)

	src, _ := rows.GetForUpdate(context.Background(), "warehouse1", "Chocolate")
	assert.Equal(t, 47, src.Stock, "la fila origen debe quedar deducida")

	dst, _ := store.GetForUpdate(context.Background(), "warehouse1_store", "Chocolate")
	require.NotNil(t, dst, "la tienda destino debe recibir la fila sembrada")
	assert.Equal(t, 3, dst.Stock)
}

func TestTransfer_NoAfectaOtrosProductos(t *testing.T) {
	uc, rows, _, _ := buildFixture()

	_, err := uc.Transfer(context.Background(), entity.TransferRequest{
		WarehouseID: "warehouse1",
		ProductName: "Chocolate",
		Quantity:    10,
	})
	require.NoError(t, err)

	other, _ := rows.GetForUpdate(context.Background(), "warehouse1", "Facewash")
	assert.Equal(t, 5, other.Stock, "las demás filas no deben cambiar")
}

func TestTransfer_StockInsuficiente(t *testing.T) {
	uc, rows, _, _ := buildFixture()

	_, err := uc.Transfer(context.Background(), entity.TransferRequest{
		WarehouseID: "warehouse1",
		ProductName: "Facewash",
		Quantity:    6,
	})
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, "Not enough stock. Available: 5", err.Error(),
		"el mensaje debe exponer el stock disponible tal como lo hace el contrato")

	row, _ := rows.GetForUpdate(context.Background(), "warehouse1", "Facewash")
	assert.Equal(t, 5, row.Stock, "un traslado rechazado no debe mutar la fila")
}

func TestTransfer_MatchInsensibleAMayusculas(t *testing.T) {
	uc, rows, _, _ := buildFixture()

	res, err := uc.Transfer(context.Background(), entity.TransferRequest{
		WarehouseID: "warehouse1",
		ProductName: "  chocolate ",
		Quantity:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 49, res.NewStock)

	row, _ := rows.GetForUpdate(context.Background(), "warehouse1", "Chocolate")
	assert.Equal(t, 49, row.Stock)
}

func TestTransfer_BodegaInexistente(t *testing.T) {
	uc, _, _, runner := buildFixture()

	_, err := uc.Transfer(context.Background(), entity.TransferRequest{
		WarehouseID: "warehouse9",
		ProductName: "Chocolate",
		Quantity:    1,
	})
	assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)
	assert.Zero(t, runner.calls, "no debe abrirse transacción para una bodega desconocida")
}

func TestTransfer_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := buildFixture()

	_, err := uc.Transfer(context.Background(), entity.TransferRequest{
		WarehouseID: "warehouse1",
		ProductName: "Turrón",
		Quantity:    1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestTransfer_EntradaInvalida(t *testing.T) {
	uc, _, _, runner := buildFixture()

	cases := []entity.TransferRequest{
		{WarehouseID: "", ProductName: "Chocolate", Quantity: 1},
		{WarehouseID: "warehouse1", ProductName: "", Quantity: 1},
		{WarehouseID: "warehouse1", ProductName: "Chocolate", Quantity: 0},
		{WarehouseID: "warehouse1", ProductName: "Chocolate", Quantity: -2},
	}
	for _, in := range cases {
		_, err := uc.Transfer(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Zero(t, runner.calls)
}

func TestTransfer_SiembraConDefaultsSiOrigenSinPrecios(t *testing.T) {
	uc, _, store, _ := buildFixture()

	_, err := uc.Transfer(context.Background(), entity.TransferRequest{
		WarehouseID: "warehouse1",
		ProductName: "Facewash", // fila sin precios ni expiry
		Quantity:    2,
	})
	require.NoError(t, err)

	row, _ := store.GetForUpdate(context.Background(), "warehouse1_store", "facewash")
	require.NotNil(t, row)
	assert.Equal(t, 20, row.ExpiryDays)
	assert.True(t, row.CostPrice.Equal(decimal.NewFromInt(500)))
	assert.True(t, row.SellingPrice.Equal(decimal.NewFromInt(1500)))
	assert.WithinDuration(t, time.Now(), row.LastUpdated, time.Minute)
}

func TestTransfer_AcumulaEnFilaExistenteDeTienda(t *testing.T) {
	uc, _, store, _ := buildFixture()
	store.rows = append(store.rows, &entity.StoreRow{
		Store: "warehouse1_store",
		Name:  "chocolate",
		Stock: 7,
	})

	_, err := uc.Transfer(context.Background(), entity.TransferRequest{
		WarehouseID: "warehouse1",
		ProductName: "Chocolate",
		Quantity:    3,
	})
	require.NoError(t, err)

	row, _ := store.GetForUpdate(context.Background(), "warehouse1_store", "Chocolate")
	assert.Equal(t, 10, row.Stock, "la fila existente debe acumular, no duplicarse")
	assert.Len(t, store.rows, 1)
}
