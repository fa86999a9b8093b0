package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/application/usecase"
	"github.com/smartstock/stockops-api/internal/domain"
)

// CatalogHandler maneja los listados de bodegas y productos del contrato de
// transferencia. Las respuestas de error usan el envelope {"error": ...} que
// la consola parsea tal cual.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListWarehouses godoc
// @Summary      Listar bodegas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.WarehousesResponse
// @Router       /api/warehouses [get]
func (h *CatalogHandler) ListWarehouses(c *fiber.Ctx) error {
	out, err := h.uc.ListWarehouses(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.TransferErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos de una bodega
// @Tags         catalog
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {array}   dto.ProductRowDTO
// @Failure      404  {object}  dto.TransferErrorResponse
// @Router       /api/products/{warehouseId} [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	warehouseID := c.Params("warehouseId")
	out, err := h.uc.ListProducts(c.Context(), warehouseID)
	if err != nil {
		if errors.Is(err, domain.ErrWarehouseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.TransferErrorResponse{Error: "Warehouse not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.TransferErrorResponse{Error: err.Error()})
	}
	if out == nil {
		out = []dto.ProductRowDTO{}
	}
	return c.JSON(out)
}
