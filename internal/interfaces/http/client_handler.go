package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/application/usecase"
)

// ClientHandler gère les requêtes HTTP des clients.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construit le handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	client, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, client)
}

// List GET /api/clients?page=1&limit=10&sortBy=nom&sortOrder=ASC
func (h *ClientHandler) List(c *fiber.Ctx) error {
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

// Search GET /api/clients/search?q=dupont
func (h *ClientHandler) Search(c *fiber.Ctx) error {
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

// Stats GET /api/clients/stats
func (h *ClientHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, stats)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	client, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	client, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, "client supprimé")
}
