package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agroferma_backend/internals/features/gamification/achievements/controller"
)

func AchievementRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAchievementController(db)

	achievements := api.Group("/achievements")
	achievements.Get("/", ctrl.List)
	achievements.Post("/unlock", ctrl.Unlock)
}
