package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kitchen-stores/internal/application/dto"
	"github.com/jhoicas/kitchen-stores/internal/domain"
)

// writeError traduce errores de dominio a respuestas HTTP con dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		status, code = fiber.StatusNotFound, "ITEM_NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrFormat):
		status, code = fiber.StatusUnprocessableEntity, "FORMAT_ERROR"
	case errors.Is(err, domain.ErrUnsupportedFile):
		status, code = fiber.StatusUnsupportedMediaType, "UNSUPPORTED_FILE"
	case errors.Is(err, domain.ErrSheetsUnavailable):
		status, code = fiber.StatusServiceUnavailable, "SHEETS_UNAVAILABLE"
	case errors.Is(err, context.DeadlineExceeded):
		status, code = fiber.StatusRequestTimeout, "TIMEOUT"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
