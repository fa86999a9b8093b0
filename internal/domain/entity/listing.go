package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing oferta publicada en el marketplace interno.
type Listing struct {
	ID          string
	Seller      string // email del vendedor
	Product     string
	Description string
	Price       decimal.Decimal
	Quantity    int
	CreatedAt   time.Time
}
