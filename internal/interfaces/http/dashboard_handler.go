package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Francoamora/munifinanzas-sub000/internal/application/finanzas"
)

// DashboardHandler maneja el tablero mensual de gestión.
type DashboardHandler struct {
	uc *finanzas.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *finanzas.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Generar devuelve el tablero del mes. Query: mes (2006-01, vacío = actual).
// GET /api/dashboard
func (h *DashboardHandler) Generar(c *fiber.Ctx) error {
	resp, err := h.uc.Generar(c.Query("mes"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
