package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertrand/garage-api/internal/domain/entity"
	apihttp "github.com/lbertrand/garage-api/internal/interfaces/http"
	"github.com/lbertrand/garage-api/pkg/jwt"
)

const (
	testSecret = "secret-de-test-suffisamment-long"
	testIssuer = "garage-api-test"
)

// buildTestApp monte une route protégée et une route réservée aux admins.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apihttp.AuthMiddleware(testSecret))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": apihttp.GetUserID(c),
			"email":  apihttp.GetEmail(c),
			"role":   apihttp.GetRole(c),
		})
	})
	protected.Delete("/admin-only", apihttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := jwt.Generate(testSecret, "user-1", "user@garage.fr", role, testIssuer, 15)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware_SansEnTete(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatInvalide(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_JetonIllisible(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer pas-un-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_JetonExpire(t *testing.T) {
	app := buildTestApp()

	tok, err := jwt.Generate(testSecret, "user-1", "user@garage.fr", entity.RoleEmploye, testIssuer, -1)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_JetonValide(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, entity.RoleEmploye))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_EmployeRefuse(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(fiber.MethodDelete, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, entity.RoleEmploye))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_AdminAutorise(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(fiber.MethodDelete, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestJWT_AllerRetour(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-42", "admin@garage.fr", entity.RoleAdmin, testIssuer, 15)
	require.NoError(t, err)

	userID, email, role, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
	assert.Equal(t, "admin@garage.fr", email)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestJWT_MauvaisSecret(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "user@garage.fr", entity.RoleEmploye, testIssuer, 15)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("un-autre-secret", tok)
	assert.Error(t, err)
}
