package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/mvduarte/agencyhub/internal/apperrors"
)

// ErrorHandler maps service errors to HTTP responses so handlers never build
// status codes themselves.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
	}

	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": nf.Error(),
		})
	}

	var ia *apperrors.InvalidActionError
	if errors.As(err, &ia) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ia.Error(),
		})
	}

	if errors.Is(err, apperrors.ErrInvalidTenant) || errors.Is(err, apperrors.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var ese *apperrors.ExternalServiceError
	if errors.As(err, &ese) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": ese.Error(),
		})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	slog.Error(err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "something went wrong",
	})
}
