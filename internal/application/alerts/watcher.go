package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/smartstock/stockops-api/internal/application/ports"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
	"github.com/smartstock/stockops-api/pkg/logger"
)

const expiryAlertWindowDays = 7

// Watcher vigila el inventario y envía alertas de vencimiento próximo y de
// stock bajo. Cada alerta se envía una sola vez mientras la condición
// persista; si la condición desaparece y vuelve, se alerta de nuevo.
type Watcher struct {
	warehouseRepo repository.WarehouseRepository
	rowRepo       repository.ProductRowRepository
	notifier      ports.Notifier
	log           *logger.Logger

	sent map[string]bool
}

// NewWatcher construye el vigilante de alertas.
func NewWatcher(warehouseRepo repository.WarehouseRepository, rowRepo repository.ProductRowRepository, notifier ports.Notifier, log *logger.Logger) *Watcher {
	return &Watcher{
		warehouseRepo: warehouseRepo,
		rowRepo:       rowRepo,
		notifier:      notifier,
		log:           log,
		sent:          make(map[string]bool),
	}
}

// Run ejecuta un escaneo inmediato y luego uno por intervalo hasta que el
// contexto se cancele. Pensado para correr en su propia goroutine.
func (w *Watcher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.Scan(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Scan(ctx)
		}
	}
}

// Scan recorre todas las bodegas y envía las alertas pendientes.
func (w *Watcher) Scan(ctx context.Context) {
	warehouses, err := w.warehouseRepo.List(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("alertas: no se pudieron listar bodegas")
		return
	}

	active := make(map[string]bool)
	for _, wh := range warehouses {
		rows, err := w.rowRepo.ListByWarehouse(ctx, wh.Name)
		if err != nil {
			w.log.Error().Err(err).Str("warehouse", wh.Name).Msg("alertas: no se pudieron listar productos")
			continue
		}
		for _, row := range rows {
			for _, a := range rowAlerts(wh.Name, row) {
				active[a.key] = true
				if w.sent[a.key] {
					continue
				}
				if err := w.notifier.Send(ctx, a.text); err != nil {
					w.log.Error().Err(err).Str("alert", a.key).Msg("alertas: envío fallido")
					continue
				}
				w.sent[a.key] = true
			}
		}
	}

	// Las condiciones que se resolvieron vuelven a ser alertables.
	for key := range w.sent {
		if !active[key] {
			delete(w.sent, key)
		}
	}
}

type alert struct {
	key  string
	text string
}

func rowAlerts(warehouse string, row *entity.ProductRow) []alert {
	var out []alert
	if row.ExpiryDays <= expiryAlertWindowDays {
		out = append(out, alert{
			key:  fmt.Sprintf("expiry|%s|%s", warehouse, entity.NormalizeProductName(row.Name)),
			text: fmt.Sprintf("⚠️ %s en %s vence en %d días (stock: %d)", row.Name, warehouse, row.ExpiryDays, row.Stock),
		})
	}
	if row.LowThreshold > 0 && row.Stock <= row.LowThreshold {
		out = append(out, alert{
			key:  fmt.Sprintf("lowstock|%s|%s", warehouse, entity.NormalizeProductName(row.Name)),
			text: fmt.Sprintf("📉 Stock bajo de %s en %s: %d unidades (umbral: %d)", row.Name, warehouse, row.Stock, row.LowThreshold),
		})
	}
	return out
}
