package middlewares

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"personavix_backend/internals/configs"
	"personavix_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan:
// recover, request context, access log, CORS, compress, etag.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, log *slog.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(RequestContext(log, 5*time.Second))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
