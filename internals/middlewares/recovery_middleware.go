package middlewares

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic; ErrorHandler yang menulis 500
func RecoveryMiddleware(log *slog.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Error("panic recovered",
				"panic", fmt.Sprint(e),
				"reqid", c.Locals("reqid"),
				"method", c.Method(),
				"path", c.Path(),
			)
		},
	})
}
