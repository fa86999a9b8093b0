package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartstock/stockops-api/internal/application/analytics"
	"github.com/smartstock/stockops-api/internal/application/dto"
	"github.com/smartstock/stockops-api/internal/application/insights"
	"github.com/smartstock/stockops-api/internal/domain"
)

// DashboardHandler métricas agregadas del panel e insights de IA por bodega.
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
	insightsUC  *insights.UseCase
}

// NewDashboardHandler construye el handler del panel.
func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase, insightsUC *insights.UseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, insightsUC: insightsUC}
}

// Metrics godoc
// @Summary      Métricas del panel de una bodega
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.DashboardMetricsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/metrics/{warehouseId} [get]
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	out, err := h.dashboardUC.Metrics(c.Context(), c.Params("warehouseId"))
	if err != nil {
		if errors.Is(err, domain.ErrWarehouseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Insights godoc
// @Summary      Clasificación demanda/stock por IA
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.StockInsightsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/insights/{warehouseId} [get]
func (h *DashboardHandler) Insights(c *fiber.Ctx) error {
	out, err := h.insightsUC.StockInsights(c.Context(), c.Params("warehouseId"))
	if err != nil {
		if errors.Is(err, domain.ErrWarehouseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bodega no encontrada"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}
