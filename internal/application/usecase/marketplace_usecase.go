package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smartstock/stockops-api/internal/application/chat"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/internal/domain/entity"
	"github.com/smartstock/stockops-api/internal/domain/repository"
)

// MarketplaceUseCase ofertas del marketplace interno y contacto con el vendedor.
// Contactar crea (o reutiliza) un chat comprador-vendedor vía el caso de uso de chat.
type MarketplaceUseCase struct {
	listingRepo repository.ListingRepository
	chatUC      *chat.UseCase
}

// NewMarketplaceUseCase construye el caso de uso.
func NewMarketplaceUseCase(listingRepo repository.ListingRepository, chatUC *chat.UseCase) *MarketplaceUseCase {
	return &MarketplaceUseCase{listingRepo: listingRepo, chatUC: chatUC}
}

// CreateListing publica una oferta.
func (uc *MarketplaceUseCase) CreateListing(ctx context.Context, seller string, in dto.CreateListingRequest) (*dto.ListingResponse, error) {
	if in.Product == "" || in.Quantity <= 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	listing := &entity.Listing{
		ID:          uuid.New().String(),
		Seller:      seller,
		Product:     in.Product,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CreatedAt:   time.Now(),
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return toListingResponse(listing), nil
}

// ListListings lista todas las ofertas publicadas.
func (uc *MarketplaceUseCase) ListListings(ctx context.Context) ([]dto.ListingResponse, error) {
	list, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListingResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toListingResponse(l))
	}
	return out, nil
}

// ContactSeller abre (o reutiliza) el chat entre comprador y vendedor de una oferta.
func (uc *MarketplaceUseCase) ContactSeller(ctx context.Context, buyer, listingID string) (*dto.ContactSellerResponse, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrNotFound
	}
	if listing.Seller == buyer {
		return nil, domain.ErrInvalidInput // no tiene sentido contactarse a uno mismo
	}
	chatOut, err := uc.chatUC.StartChat(ctx, buyer, dto.CreateChatRequest{RecipientEmail: listing.Seller})
	if err != nil {
		return nil, err
	}
	return &dto.ContactSellerResponse{Chat: *chatOut}, nil
}

func toListingResponse(l *entity.Listing) *dto.ListingResponse {
	if l == nil {
		return nil
	}
	return &dto.ListingResponse{
		ID:          l.ID,
		Seller:      l.Seller,
		Product:     l.Product,
		Description: l.Description,
		Price:       l.Price,
		Quantity:    l.Quantity,
		CreatedAt:   l.CreatedAt,
	}
}
