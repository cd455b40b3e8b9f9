package serverutils

import (
	"petgroom-be/internal/apperror"
	"petgroom-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorHandlerMiddleware turns typed service errors into JSON responses.
// Internal failures are logged with their cause but only a generic message
// leaves the server.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr := apperror.From(err); appErr != nil {
			status := statusForCode(appErr.Code)
			if appErr.Code == apperror.CodeInternal {
				log.Error("http", "request failed", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Unwrap(),
				})
			}
			return ctx.Status(status).JSON(errorBody{
				Success: false,
				Message: appErr.Message,
				Fields:  appErr.Fields,
			})
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(errorBody{
				Success: false,
				Message: fiberErr.Message,
			})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(errorBody{
			Success: false,
			Message: "internal server error",
		})
	}
}

func statusForCode(code apperror.Code) int {
	switch code {
	case apperror.CodeValidation:
		return fiber.StatusBadRequest
	case apperror.CodeNotFound:
		return fiber.StatusNotFound
	case apperror.CodeForbidden:
		return fiber.StatusForbidden
	case apperror.CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
