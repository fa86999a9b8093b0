package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

var _ repository.StoreRowRepository = (*StoreRowRepo)(nil)

// StoreRowRepo implementación de StoreRowRepository sobre PostgreSQL (usable con pool o tx).
type StoreRowRepo struct {
	q Querier
}

// NewStoreRowRepository construye el adaptador de filas de tienda. Pasar pool o tx (Querier).
func NewStoreRowRepository(q Querier) *StoreRowRepo {
	return &StoreRowRepo{q: q}
}

// GetForUpdate bloquea y devuelve la fila del producto en la tienda destino.
func (r *StoreRowRepo) GetForUpdate(ctx context.Context, store, productName string) (*entity.StoreRow, error) {
	query := `
		SELECT store, name, stock, expiry_days, cost_price, selling_price, last_updated
		FROM store_rows
		WHERE store = $1 AND lower(trim(name)) = lower(trim($2))
		LIMIT 1
		FOR UPDATE`
	var row entity.StoreRow
	err := r.q.QueryRow(ctx, query, store, productName).Scan(
		&row.Store, &row.Name, &row.Stock, &row.ExpiryDays, &row.CostPrice, &row.SellingPrice, &row.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store row for update: %w", err)
	}
	return &row, nil
}

// Update escribe stock y timestamp de una fila existente.
func (r *StoreRowRepo) Update(ctx context.Context, row *entity.StoreRow) error {
	query := `
		UPDATE store_rows SET stock = $3, last_updated = $4
		WHERE store = $1 AND lower(trim(name)) = lower(trim($2))`
	_, err := r.q.Exec(ctx, query, row.Store, row.Name, row.Stock, row.LastUpdated)
	if err != nil {
		return fmt.Errorf("update store row: %w", err)
	}
	return nil
}

// Insert agrega una fila nueva a la tienda.
func (r *StoreRowRepo) Insert(ctx context.Context, row *entity.StoreRow) error {
	query := `
		INSERT INTO store_rows (store, name, stock, expiry_days, cost_price, selling_price, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		row.Store, row.Name, row.Stock, row.ExpiryDays, row.CostPrice, row.SellingPrice, row.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("insert store row: %w", err)
	}
	return nil
}
