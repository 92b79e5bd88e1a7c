package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
)

// DevisHandler gère les requêtes HTTP des devis.
type DevisHandler struct {
	uc *usecase.DevisUseCase
}

// NewDevisHandler construit le handler.
func NewDevisHandler(uc *usecase.DevisUseCase) *DevisHandler {
	return &DevisHandler{uc: uc}
}

// Create POST /api/devis
func (h *DevisHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDevisRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	devis, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, devis)
}

// List GET /api/devis
func (h *DevisHandler) List(c *fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return respondError(c, &dto.FieldErrors{Messages: []string{"paramètres de pagination invalides"}})
	}
	list, pagination, err := h.uc.List(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, list, pagination)
}

// Stats GET /api/devis/stats
func (h *DevisHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

// GetByID GET /api/devis/:id
func (h *DevisHandler) GetByID(c *fiber.Ctx) error {
	devis, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, devis)
}

// Update PUT /api/devis/:id
func (h *DevisHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDevisRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	devis, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, devis)
}

// UpdateStatut PUT /api/devis/:id/status
func (h *DevisHandler) UpdateStatut(c *fiber.Ctx) error {
	var in dto.UpdateDevisStatutRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	devis, err := h.uc.UpdateStatut(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, devis)
}

// Delete DELETE /api/devis/:id
func (h *DevisHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "devis supprimé")
}
