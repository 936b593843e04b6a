package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Agent-cat/Expence-Tracker/internal/model"
)

// handleError maps service error kinds to HTTP responses. ErrNotFound and
// ErrUnauthorized deliberately produce the same outward response so that the
// API does not reveal whether another user's expense id exists; the kinds stay
// distinct inside the service layer and in logs.
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrUnauthorized):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "expense not found"})
	case errors.Is(err, model.ErrUserNotFound):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unknown user"})
	case errors.Is(err, model.ErrEmailTaken):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "email already taken"})
	case errors.Is(err, model.ErrInvalidCredentials):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid email or password"})
	default:
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
