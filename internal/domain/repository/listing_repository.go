package repository

import (
	"context"

	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// ListingRepository puerto de persistencia para el marketplace.
type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	List(ctx context.Context) ([]*entity.Listing, error)
}
