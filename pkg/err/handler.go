package errprocess

import (
	"net/http"

	"video_platform_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorBody is the failure envelope
type ErrorBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors"`
	Data    interface{} `json:"data"`
	Stack   string      `json:"stack,omitempty"`
}

// NewErrorHandler build the centralized fiber error handler.
// isProduction is evaluated per request so the stack is suppressed once ENV=production.
func NewErrorHandler(isProduction func() bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		apiErr := Wrap(err)

		body := ErrorBody{
			Success: false,
			Message: apiErr.Message,
			Errors:  apiErr.Errors,
			Data:    nil,
		}
		if body.Errors == nil {
			body.Errors = []string{}
		}
		if !isProduction() {
			body.Stack = apiErr.Stack()
		}

		if apiErr.StatusCode >= http.StatusInternalServerError {
			logger.Log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", apiErr.StatusCode),
				zap.String("err", apiErr.Message),
			)
		} else {
			logger.Log.Debug("request rejected",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", apiErr.StatusCode),
				zap.String("err", apiErr.Message),
			)
		}

		return c.Status(apiErr.StatusCode).JSON(body)
	}
}

// RouteNotFound catch-all stage for unmatched routes
func RouteNotFound(c *fiber.Ctx) error {
	return NotFound("Route not found")
}
