package middleware

import (
	"time"

	"momovender/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// NewLogger logs every request with latency and status.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		logger := log.GetLogger()
		logger.Info(
			ctx.Method()+" "+ctx.Path(),
			"request completed",
			"http",
			time.Since(start).String(),
		)
		return err
	}
}
