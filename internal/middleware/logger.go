package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger registra cada requisição com método, rota, status e latência.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		logger.Info("http",
			zap.String("metodo", c.Method()),
			zap.String("rota", c.Path()),
			zap.Int("status", status),
			zap.Duration("latencia", time.Since(inicio)),
			zap.String("ip", c.IP()),
			zap.String("request_id", RequestID(c)),
		)

		return err
	}
}
