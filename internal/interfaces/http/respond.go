package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// respondData réponse de succès enveloppée.
func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.Response{Success: true, Data: data})
}

// respondPage réponse de succès paginée.
func respondPage(c *fiber.Ctx, data interface{}, pagination *dto.Pagination) error {
	return c.JSON(dto.Response{Success: true, Data: data, Pagination: pagination})
}

// respondMessage réponse de succès sans données (suppressions).
func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.Response{Success: true, Message: message})
}

// respondError traduit une erreur métier en statut HTTP. C'est l'unique point
// de l'API où les sentinelles du domaine deviennent des codes : les handlers
// délèguent tous ici.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrUnimplemented):
		status = fiber.StatusNotImplemented
	}

	resp := dto.Response{Success: false, Message: err.Error()}

	var fieldErrs *dto.FieldErrors
	if errors.As(err, &fieldErrs) {
		resp.Message = "données invalides"
		resp.Errors = fieldErrs.Messages
	}
	if status == fiber.StatusInternalServerError {
		// Le détail part dans les logs, jamais au client.
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("erreur interne")
		resp.Message = "erreur interne"
	}
	return c.Status(status).JSON(resp)
}
