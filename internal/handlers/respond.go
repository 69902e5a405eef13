package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ThidgesB/SportsApparel-API/internal/apperrors"
)

// respondError maps a service error onto an HTTP response. Structured detail
// carried by the error (for example the inactive products of a rejected
// purchase) is merged into the response body.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		body := fiber.Map{"message": appErr.Message}
		for key, value := range appErr.Detail {
			body[key] = value
		}
		return c.Status(appErr.HTTPStatus()).JSON(body)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "An unexpected error occurred.",
	})
}
