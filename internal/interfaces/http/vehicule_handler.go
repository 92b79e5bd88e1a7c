package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
)

// VehiculeHandler gère les requêtes HTTP des véhicules.
type VehiculeHandler struct {
	uc *usecase.VehiculeUseCase
}

// NewVehiculeHandler construit le handler.
func NewVehiculeHandler(uc *usecase.VehiculeUseCase) *VehiculeHandler {
	return &VehiculeHandler{uc: uc}
}

// Create POST /api/vehicules
func (h *VehiculeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehiculeRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	vehicule, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, vehicule)
}

// List GET /api/vehicules
func (h *VehiculeHandler) List(c *fiber.Ctx) error {
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

// ListByClient GET /api/vehicules/client/:clientId
func (h *VehiculeHandler) ListByClient(c *fiber.Ctx) error {
	list, err := h.uc.ListByClient(c.Context(), c.Params("clientId"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, list)
}

// Search GET /api/vehicules/search?q=clio
func (h *VehiculeHandler) Search(c *fiber.Ctx) error {
	var req dto.PageRequest
	if err := c.QueryParser(&req); err != nil {
		return respondError(c, &dto.FieldErrors{Messages: []string{"paramètres de pagination invalides"}})
	}
	list, pagination, err := h.uc.Search(c.Context(), c.Query("q"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondPage(c, list, pagination)
}

// Stats GET /api/vehicules/stats
func (h *VehiculeHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

// GetByID GET /api/vehicules/:id
func (h *VehiculeHandler) GetByID(c *fiber.Ctx) error {
	vehicule, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, vehicule)
}

// Update PUT /api/vehicules/:id
func (h *VehiculeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVehiculeRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	vehicule, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, vehicule)
}

// Delete DELETE /api/vehicules/:id
func (h *VehiculeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "véhicule supprimé")
}
