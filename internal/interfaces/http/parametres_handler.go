package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
)

// ParametresHandler gère les requêtes HTTP de la configuration.
type ParametresHandler struct {
	uc *usecase.ParametresUseCase
}

// NewParametresHandler construit le handler.
func NewParametresHandler(uc *usecase.ParametresUseCase) *ParametresHandler {
	return &ParametresHandler{uc: uc}
}

// Get GET /api/parametres — crée la ligne par défaut au premier accès.
func (h *ParametresHandler) Get(c *fiber.Ctx) error {
	parametres, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, parametres)
}

// Update PUT /api/parametres
func (h *ParametresHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateParametresRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	parametres, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, parametres)
}
