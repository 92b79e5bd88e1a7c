package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/domain"
)

// errApp monte une route qui renvoie l'erreur fournie via respondError.
func errApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

func doGet(t *testing.T, app *fiber.App) (int, dto.Response) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	var body dto.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondError_MappeLesSentinelles(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"entrée invalide", fmt.Errorf("champ manquant: %w", domain.ErrInvalidInput), fiber.StatusBadRequest},
		{"introuvable", fmt.Errorf("client: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{"doublon", fmt.Errorf("email déjà utilisé: %w", domain.ErrDuplicate), fiber.StatusConflict},
		{"conflit d'état", fmt.Errorf("devis accepté: %w", domain.ErrConflict), fiber.StatusConflict},
		{"non authentifié", domain.ErrUnauthorized, fiber.StatusUnauthorized},
		{"interdit", domain.ErrForbidden, fiber.StatusForbidden},
		{"non implémenté", domain.ErrUnimplemented, fiber.StatusNotImplemented},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := doGet(t, errApp(tc.err))
			assert.Equal(t, tc.status, status)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespondError_ErreurInconnueEn500SansDetail(t *testing.T) {
	status, body := doGet(t, errApp(errors.New("pq: connection refused")))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "erreur interne", body.Message,
		"le détail technique ne doit pas fuiter vers le client")
}

func TestRespondError_ErreurInterneJournalisee(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	status, _ := doGet(t, errApp(errors.New("pgx: broken pipe")))
	require.Equal(t, fiber.StatusInternalServerError, status)

	// Le détail absent de la réponse doit se retrouver côté serveur.
	assert.Contains(t, buf.String(), "pgx: broken pipe")
	assert.Contains(t, buf.String(), "erreur interne")
}

func TestRespondError_SentinelleNonJournalisee(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	status, _ := doGet(t, errApp(fmt.Errorf("client x: %w", domain.ErrNotFound)))
	require.Equal(t, fiber.StatusNotFound, status)

	assert.Empty(t, buf.String(), "les erreurs métier ne polluent pas les logs")
}

func TestRespondError_FieldErrorsDetailParChamp(t *testing.T) {
	status, body := doGet(t, errApp(&dto.FieldErrors{
		Messages: []string{"Email doit être un email valide", "Nom est requis"},
	}))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "données invalides", body.Message)
	assert.Len(t, body.Errors, 2)
}

func TestRespondData_EnveloppeSucces(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondData(c, fiber.StatusCreated, fiber.Map{"id": "abc"})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body dto.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Message)
}

func TestValidateStruct_FormatsFrancais(t *testing.T) {
	type fiche struct {
		Plaque     string `validate:"plaque"`
		CodePostal string `validate:"codepostal"`
		Telephone  string `validate:"telfr"`
	}

	require.NoError(t, validateStruct(fiche{
		Plaque:     "AB-123-CD",
		CodePostal: "69003",
		Telephone:  "0612345678",
	}))

	err := validateStruct(fiche{
		Plaque:     "AB123CD",
		CodePostal: "6900",
		Telephone:  "06 12 34 56 78",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var fieldErrs *dto.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs.Messages, 3)
}

func TestValidateStruct_TelephoneCommencantParZero(t *testing.T) {
	type fiche struct {
		Telephone string `validate:"telfr"`
	}

	assert.NoError(t, validateStruct(fiche{Telephone: "0112345678"}))
	assert.Error(t, validateStruct(fiche{Telephone: "1612345678"}))
	assert.Error(t, validateStruct(fiche{Telephone: "061234567"}))
}
