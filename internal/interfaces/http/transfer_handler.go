package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/application/transfer"
	"github.com/smartstock/stockops-api/internal/domain"
	"github.com/smartstock/stockops-api/internal/domain/entity"
)

// TransferHandler maneja POST /api/transfer.
// Los mensajes de error van en el envelope {"error": ...} con el texto exacto
// que la consola muestra al usuario.
type TransferHandler struct {
	uc *transfer.UseCase
}

// NewTransferHandler construye el handler de transferencias.
func NewTransferHandler(uc *transfer.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Transfer godoc
// @Summary      Transferir producto de bodega a tienda
// @Tags         transfer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "warehouseId, productName, quantity"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.TransferErrorResponse
// @Failure      404   {object}  dto.TransferErrorResponse
// @Router       /api/transfer [post]
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.TransferErrorResponse{Error: "Missing required fields"})
	}

	result, err := h.uc.Transfer(c.Context(), entity.TransferRequest{
		WarehouseID: in.WarehouseID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.TransferErrorResponse{Error: "Missing required fields"})
		case errors.Is(err, domain.ErrWarehouseNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.TransferErrorResponse{Error: "Warehouse not found"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.TransferErrorResponse{Error: "Product not found in warehouse"})
		case errors.Is(err, domain.ErrInsufficientStock):
			// El mensaje ya trae el stock disponible.
			return c.Status(fiber.StatusBadRequest).JSON(dto.TransferErrorResponse{Error: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.TransferErrorResponse{Error: err.Error()})
		}
	}

	return c.JSON(dto.TransferResponse{
		Success:     result.Success,
		Message:     result.Message,
		NewStock:    result.NewStock,
		TargetStore: result.TargetStore,
	})
}
