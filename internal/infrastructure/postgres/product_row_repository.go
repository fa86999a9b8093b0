package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

var _ repository.ProductRowRepository = (*ProductRowRepo)(nil)

// ProductRowRepo implementación de ProductRowRepository sobre PostgreSQL (usable con pool o tx).
// El match por nombre replica la semántica de la hoja de origen:
// lower(trim()) en ambos lados de la comparación.
type ProductRowRepo struct {
	q Querier
}

// NewProductRowRepository construye el adaptador de filas de producto. Pasar pool o tx (Querier).
func NewProductRowRepository(q Querier) *ProductRowRepo {
	return &ProductRowRepo{q: q}
}

const productRowColumns = `warehouse_id, name, stock, expiry_days, cost_price, selling_price, sales_quantity, low_threshold, high_threshold, profit, last_updated`

// ListByWarehouse lista las filas de una bodega en el orden de la hoja.
func (r *ProductRowRepo) ListByWarehouse(ctx context.Context, warehouseID string) ([]*entity.ProductRow, error) {
	query := `SELECT ` + productRowColumns + ` FROM product_rows WHERE warehouse_id = $1 ORDER BY row_num`
	rows, err := r.q.Query(ctx, query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list product rows: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductRow
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetForUpdate bloquea y devuelve la fila del producto en la bodega.
// Si hay duplicados por nombre gana la primera fila de la hoja.
func (r *ProductRowRepo) GetForUpdate(ctx context.Context, warehouseID, productName string) (*entity.ProductRow, error) {
	query := `
		SELECT ` + productRowColumns + `
		FROM product_rows
		WHERE warehouse_id = $1 AND lower(trim(name)) = lower(trim($2))
		ORDER BY row_num
		LIMIT 1
		FOR UPDATE`
	p, err := scanProductRow(r.q.QueryRow(ctx, query, warehouseID, productName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product row for update: %w", err)
	}
	return p, nil
}

// UpdateStock escribe el nuevo stock y el timestamp de actualización.
func (r *ProductRowRepo) UpdateStock(ctx context.Context, warehouseID, productName string, newStock int) error {
	query := `
		UPDATE product_rows SET stock = $3, last_updated = now()
		WHERE warehouse_id = $1 AND lower(trim(name)) = lower(trim($2))
		AND row_num = (
			SELECT min(row_num) FROM product_rows
			WHERE warehouse_id = $1 AND lower(trim(name)) = lower(trim($2))
		)`
	_, err := r.q.Exec(ctx, query, warehouseID, productName, newStock)
	if err != nil {
		return fmt.Errorf("update product row stock: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProductRow(s rowScanner) (*entity.ProductRow, error) {
	var p entity.ProductRow
	err := s.Scan(
		&p.WarehouseID, &p.Name, &p.Stock, &p.ExpiryDays, &p.CostPrice, &p.SellingPrice,
		&p.SalesQuantity, &p.LowThreshold, &p.HighThreshold, &p.Profit, &p.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product row: %w", err)
	}
	return &p, nil
}
