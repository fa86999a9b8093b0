package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/application/insights"
	"github.com/smartstock/stockops-api/internal/domain"
)

// TravelHandler estimación de tiempos de viaje entre origen y destino.
// Mantiene el envelope {"error": ...} del contrato.
type TravelHandler struct {
	uc *insights.UseCase
}

// NewTravelHandler construye el handler de tiempos de viaje.
func NewTravelHandler(uc *insights.UseCase) *TravelHandler {
	return &TravelHandler{uc: uc}
}

// TravelTime godoc
// @Summary      Estimar minutos de viaje
// @Tags         travel
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TravelTimeRequest  true  "origin, destination"
// @Success      200   {object}  dto.TravelTimeResponse
// @Failure      400   {object}  dto.TransferErrorResponse
// @Router       /api/travel-time [post]
func (h *TravelHandler) TravelTime(c *fiber.Ctx) error {
	var in dto.TravelTimeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.TransferErrorResponse{Error: "Missing origin or destination"})
	}
	minutes, err := h.uc.TravelTime(c.Context(), in.Origin, in.Destination)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.TransferErrorResponse{Error: "Missing origin or destination"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.TransferErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.TravelTimeResponse{TravelTime: minutes})
}
