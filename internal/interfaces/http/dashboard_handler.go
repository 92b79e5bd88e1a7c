package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/usecase"
)

// DashboardHandler gère les requêtes HTTP du tableau de bord.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, summary)
}
