package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

var _ repository.ListingRepository = (*ListingRepo)(nil)

// ListingRepo implementación de ListingRepository sobre PostgreSQL (usable con pool o tx).
type ListingRepo struct {
	q Querier
}

// NewListingRepository construye el adaptador del marketplace. Pasar pool o tx (Querier).
func NewListingRepository(q Querier) *ListingRepo {
	return &ListingRepo{q: q}
}

// Create publica una oferta.
func (r *ListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO listings (id, seller, product, description, price, quantity, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		listing.ID, listing.Seller, listing.Product, listing.Description,
		listing.Price, listing.Quantity, listing.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID.
func (r *ListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	var l entity.Listing
	err := r.q.QueryRow(ctx,
		`SELECT id, seller, product, description, price, quantity, created_at FROM listings WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.Seller, &l.Product, &l.Description, &l.Price, &l.Quantity, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return &l, nil
}

// List lista las ofertas más recientes primero.
func (r *ListingRepo) List(ctx context.Context) ([]*entity.Listing, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, seller, product, description, price, quantity, created_at FROM listings ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Listing
	for rows.Next() {
		var l entity.Listing
		if err := rows.Scan(&l.ID, &l.Seller, &l.Product, &l.Description, &l.Price, &l.Quantity, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
