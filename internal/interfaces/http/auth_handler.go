package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/auth"
	"github.com/lbertrand/garage-api/internal/application/dto"
)

// AuthHandler gère les requêtes HTTP d'authentification.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construit le handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Register POST /api/auth/register — non exposé, répond 501.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	return respondError(c, h.uc.Register(c.Context()))
}

// Refresh POST /api/auth/refresh — non exposé, répond 501.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	return respondError(c, h.uc.Refresh(c.Context()))
}
