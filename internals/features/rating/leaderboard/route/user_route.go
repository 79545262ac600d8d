package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agroferma_backend/internals/features/rating/leaderboard/controller"
)

func LeaderboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLeaderboardController(db)
	api.Get("/leaderboard", ctrl.List)
}
