package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
)

// PrestationHandler gère les requêtes HTTP du catalogue de prestations.
type PrestationHandler struct {
	uc *usecase.PrestationUseCase
}

// NewPrestationHandler construit le handler.
func NewPrestationHandler(uc *usecase.PrestationUseCase) *PrestationHandler {
	return &PrestationHandler{uc: uc}
}

// Create POST /api/prestations
func (h *PrestationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrestationRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	prestation, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, prestation)
}

// List GET /api/prestations
func (h *PrestationHandler) List(c *fiber.Ctx) error {
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

// Stats GET /api/prestations/stats
func (h *PrestationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

// GetByID GET /api/prestations/:id
func (h *PrestationHandler) GetByID(c *fiber.Ctx) error {
	prestation, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, prestation)
}

// Update PUT /api/prestations/:id
func (h *PrestationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePrestationRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	prestation, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, prestation)
}

// Delete DELETE /api/prestations/:id
func (h *PrestationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "prestation supprimée")
}
