package alerts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/stockops-api/internal/application/alerts"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/pkg/logger"
)

type fakeWarehouses struct{ list []*entity.Warehouse }

func (f *fakeWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	f.list = append(f.list, w)
	return nil
}
func (f *fakeWarehouses) GetByName(_ context.Context, name string) (*entity.Warehouse, error) {
	for _, w := range f.list {
		if w.Name == name {
			return w, nil
		}
	}
	return nil, nil
}
func (f *fakeWarehouses) List(_ context.Context) ([]*entity.Warehouse, error) { return f.list, nil }

type fakeRows struct{ rows []*entity.ProductRow }

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
func (f *fakeRows) UpdateStock(ctx context.Context, warehouseID, productName string, newStock int) error {
	row, _ := f.GetForUpdate(ctx, warehouseID, productName)
	if row != nil {
		row.Stock = newStock
	}
	return nil
}

type fakeNotifier struct{ sent []string }

func (f *fakeNotifier) Send(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	return nil
}

func buildWatcher(rows ...*entity.ProductRow) (*alerts.Watcher, *fakeNotifier, *fakeRows) {
	warehouses := &fakeWarehouses{list: []*entity.Warehouse{{Name: "warehouse_1", TargetStore: "store"}}}
	rowRepo := &fakeRows{rows: rows}
	notifier := &fakeNotifier{}
	w := alerts.NewWatcher(warehouses, rowRepo, notifier, logger.New(logger.Config{Env: "production", Level: "error"}))
	return w, notifier, rowRepo
}

func TestScan_AlertaVencimientoYStockBajo(t *testing.T) {
	w, notifier, _ := buildWatcher(
		&entity.ProductRow{WarehouseID: "warehouse_1", Name: "Chocolate", Stock: 3, ExpiryDays: 5, LowThreshold: 10},
		&entity.ProductRow{WarehouseID: "warehouse_1", Name: "Fairy Lights", Stock: 80, ExpiryDays: 60, LowThreshold: 10},
	)

	w.Scan(context.Background())

	// Chocolate dispara ambas condiciones; Fairy Lights ninguna.
	require.Len(t, notifier.sent, 2)
	assert.Contains(t, notifier.sent[0], "Chocolate")
	assert.Contains(t, notifier.sent[1], "Chocolate")
}

func TestScan_NoRepiteAlertasMientrasPersista(t *testing.T) {
	w, notifier, _ := buildWatcher(
		&entity.ProductRow{WarehouseID: "warehouse_1", Name: "Chocolate", Stock: 3, ExpiryDays: 60, LowThreshold: 10},
	)

	w.Scan(context.Background())
	w.Scan(context.Background())

	assert.Len(t, notifier.sent, 1, "la misma condición no se alerta dos veces seguidas")
}

func TestScan_ReAlertaSiLaCondicionVuelve(t *testing.T) {
	row := &entity.ProductRow{WarehouseID: "warehouse_1", Name: "Chocolate", Stock: 3, ExpiryDays: 60, LowThreshold: 10}
	w, notifier, _ := buildWatcher(row)

	w.Scan(context.Background())
	require.Len(t, notifier.sent, 1)

	// Se repone el stock: la condición desaparece.
	row.Stock = 50
	w.Scan(context.Background())
	require.Len(t, notifier.sent, 1)

	// Vuelve a bajar: se alerta de nuevo.
	row.Stock = 2
	w.Scan(context.Background())
	assert.Len(t, notifier.sent, 2)
}
