package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "agroferma_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(IdentityMiddleware())
}
