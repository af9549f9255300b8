package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// AccessLog writes one log line per request after the response status is known.
// A request id is taken from the X-Request-ID header, or generated, and echoed back.
func AccessLog(c *fiber.Ctx) error {
	requestID := setRequestID(c)

	// Run the error handler here so the logged status matches the response.
	if chainErr := c.Next(); chainErr != nil {
		if err := c.App().ErrorHandler(c, chainErr); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	logAccess(c, requestID)
	return nil
}

// ErrorHandler wraps next so that requests rejected by the server before any
// middleware runs, such as bodies over the limit, still get an access log line.
func ErrorHandler(next fiber.ErrorHandler) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if _, ok := c.Locals(requestIDKey{}).(string); ok {
			return next(c, err)
		}
		requestID := setRequestID(c)
		handlerErr := next(c, err)
		logAccess(c, requestID)
		return handlerErr
	}
}

func setRequestID(c *fiber.Ctx) string {
	requestID := c.Get(fiber.HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Set(fiber.HeaderXRequestID, requestID)
	c.Locals(requestIDKey{}, requestID)
	return requestID
}

func logAccess(c *fiber.Ctx, requestID string) {
	logger := zerolog.Ctx(c.UserContext())
	logger.Info().
		Str("requestId", requestID).
		Str("httpMethod", c.Method()).
		Str("httpPath", c.Path()).
		Int("httpStatusCode", c.Response().StatusCode()).
		Dur("latency", time.Since(c.Context().Time())).
		Msg("Handled request")
}
