package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/lbertrand/garage-api/pkg/jwt"
)

// Clés Locals posées par AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthMiddleware valide le Bearer token JWT et pose l'identité dans c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, fmt.Errorf("en-tête Authorization requis: %w", domain.ErrUnauthorized))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fmt.Errorf("format attendu: Bearer <token>: %w", domain.ErrUnauthorized))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, fmt.Errorf("jeton vide: %w", domain.ErrUnauthorized))
		}
		userID, email, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, fmt.Errorf("jeton invalide ou expiré: %w", domain.ErrUnauthorized))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole n'autorise que les comptes portant le rôle donné. Se place
// après AuthMiddleware.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != role {
			return respondError(c, fmt.Errorf("rôle %s requis: %w", role, domain.ErrForbidden))
		}
		return c.Next()
	}
}

// GetUserID renvoie l'ID utilisateur du contexte (après AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmail renvoie l'email du contexte (après AuthMiddleware).
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetRole renvoie le rôle du contexte (après AuthMiddleware).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
