package handlers

import (
	"errors"
	"log/slog"

	"github.com/deboeng/careers-backend/internal/dto"
	"github.com/deboeng/careers-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto the response envelope. Store failures
// are logged and hidden behind a generic message.
func respondError(c *fiber.Ctx, err error) error {
	code := statusForError(err)
	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		message = "Internal server error"
	}
	return c.Status(code).JSON(dto.Fail(message))
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrJobNotOpen),
		errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrAlreadyApplied):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrSuperAdminDelete):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrSelfDelete),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidLevel),
		errors.Is(err, services.ErrInvalidOfferType),
		errors.Is(err, services.ErrInvalidJobType),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrTransitionNotAllowed):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
