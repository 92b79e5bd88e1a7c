package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
)

// ODRHandler gère les requêtes HTTP des ordres de réparation.
type ODRHandler struct {
	uc *usecase.ODRUseCase
}

// NewODRHandler construit le handler.
func NewODRHandler(uc *usecase.ODRUseCase) *ODRHandler {
	return &ODRHandler{uc: uc}
}

// Create POST /api/odr
func (h *ODRHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateODRRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	odr, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, odr)
}

// List GET /api/odr
func (h *ODRHandler) List(c *fiber.Ctx) error {
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

// Stats GET /api/odr/stats
func (h *ODRHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

// GetByID GET /api/odr/:id
func (h *ODRHandler) GetByID(c *fiber.Ctx) error {
	odr, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, odr)
}

// Update PUT /api/odr/:id
func (h *ODRHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateODRRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	odr, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, odr)
}

// UpdateStatut PUT /api/odr/:id/status
func (h *ODRHandler) UpdateStatut(c *fiber.Ctx) error {
	var in dto.UpdateODRStatutRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	odr, err := h.uc.UpdateStatut(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, odr)
}

// Delete DELETE /api/odr/:id
func (h *ODRHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "ordre de réparation supprimé")
}
