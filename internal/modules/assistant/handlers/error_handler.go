package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/models"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/modules/assistant/services"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/utils"
)

// ErrorHandler is the fiber application error handler. Client errors raised by
// fiber keep their status and message; anything else, recovered panics
// included, becomes a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
	}

	utils.LogError("❌ Unhandled error", err, map[string]interface{}{
		"request_id": requestID(c),
		"method":     c.Method(),
		"path":       c.Path(),
	})
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: services.MsgInternal})
}
