package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/application/usecase"
	"github.com/smartstock/stockops-api/internal/domain"
)

// MarketplaceHandler ofertas del marketplace interno (protegido).
type MarketplaceHandler struct {
	uc *usecase.MarketplaceUseCase
}

// NewMarketplaceHandler construye el handler del marketplace.
func NewMarketplaceHandler(uc *usecase.MarketplaceUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar oferta
// @Tags         marketplace
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateListingRequest  true  "product, description, price, quantity"
// @Success      201   {object}  dto.ListingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/marketplace [post]
func (h *MarketplaceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateListingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateListing(c.Context(), GetUserEmail(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product, price y quantity son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ofertas
// @Tags         marketplace
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ListingResponse
// @Router       /api/marketplace [get]
func (h *MarketplaceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListListings(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ContactSeller godoc
// @Summary      Contactar al vendedor de una oferta
// @Tags         marketplace
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.ContactSellerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/marketplace/{id}/contact [post]
func (h *MarketplaceHandler) ContactSeller(c *fiber.Ctx) error {
	out, err := h.uc.ContactSeller(c.Context(), GetUserEmail(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oferta no encontrada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no puedes contactar tu propia oferta"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
