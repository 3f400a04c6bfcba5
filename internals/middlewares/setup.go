package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "realestate_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global yang tidak butuh DB.
// Maintenance gate + activity tracker dipasang di SetupRoutes (butuh koneksi DB).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
