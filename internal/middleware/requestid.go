package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const ctxRequestIDKey = "request_id"

// WithRequestID propaga o X-Request-ID recebido ou gera um novo.
func WithRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals(ctxRequestIDKey, id)
		return c.Next()
	}
}

func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ctxRequestIDKey).(string); ok {
		return id
	}
	return ""
}
