// Package accesslog writes one structured log line per handled HTTP request.
package accesslog

import (
	"context"
	"time"

	"givehub-admin/internal/shared/contextkeys"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewZapLogger builds the logger backing the access log. Production gets the
// JSON encoder, everything else the development console encoder.
func NewZapLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "production", "prod":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}

// New returns Fiber middleware that logs method, path, status, duration and
// the request identity. It also promotes the request id from fiber locals
// into the user context so the application logger picks it up downstream.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, _ := c.Locals(string(contextkeys.RequestIDKey)).(string)
		if requestID != "" {
			ctx := context.WithValue(c.UserContext(), contextkeys.RequestIDKey, requestID)
			c.SetUserContext(ctx)
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}
		if userID, ok := c.UserContext().Value(contextkeys.UserIDKey).(string); ok && userID != "" {
			fields = append(fields, zap.String("user_id", userID))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		log.Info("http request", fields...)
		return err
	}
}
