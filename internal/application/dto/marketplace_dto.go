package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateListingRequest entrada para publicar una oferta en el marketplace.
type CreateListingRequest struct {
	Product     string          `json:"product"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// ListingResponse salida de una oferta.
type ListingResponse struct {
	ID          string          `json:"id"`
	Seller      string          `json:"seller"`
	Product     string          `json:"product"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ContactSellerResponse resultado de contactar a un vendedor: el chat
// (nuevo o existente) entre comprador y vendedor.
type ContactSellerResponse struct {
	Chat ChatResponse `json:"chat"`
}
