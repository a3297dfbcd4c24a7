package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kitchen-stores/internal/application/inventory"
)

// DashboardHandler maneja el resumen del almacén.
type DashboardHandler struct {
	uc *inventory.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *inventory.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve totales, artículos críticos y los movimientos más recientes.
// GET /api/dashboard
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard(c.Context()))
}
