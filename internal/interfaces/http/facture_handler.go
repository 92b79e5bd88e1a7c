package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
)

// FactureHandler gère les requêtes HTTP des factures.
type FactureHandler struct {
	uc *usecase.FactureUseCase
}

// NewFactureHandler construit le handler.
func NewFactureHandler(uc *usecase.FactureUseCase) *FactureHandler {
	return &FactureHandler{uc: uc}
}

// Create POST /api/factures
func (h *FactureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFactureRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	facture, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, facture)
}

// List GET /api/factures
func (h *FactureHandler) List(c *fiber.Ctx) error {
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

// Stats GET /api/factures/stats
func (h *FactureHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

// GetByID GET /api/factures/:id
func (h *FactureHandler) GetByID(c *fiber.Ctx) error {
	facture, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, facture)
}

// Update PUT /api/factures/:id
func (h *FactureHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFactureRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	facture, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, facture)
}

// UpdatePaiement PUT /api/factures/:id/payment
func (h *FactureHandler) UpdatePaiement(c *fiber.Ctx) error {
	var in dto.UpdatePaiementRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	facture, err := h.uc.UpdatePaiement(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, facture)
}

// GeneratePDF GET /api/factures/:id/pdf
func (h *FactureHandler) GeneratePDF(c *fiber.Ctx) error {
	doc, err := h.uc.GeneratePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=facture-%s.pdf", c.Params("id")))
	return c.Send(doc)
}

// Delete DELETE /api/factures/:id
func (h *FactureHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "facture supprimée")
}
