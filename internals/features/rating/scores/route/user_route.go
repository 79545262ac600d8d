package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agroferma_backend/internals/features/rating/scores/controller"
	"agroferma_backend/internals/middlewares"
)

func ScoreRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScoreController(db)

	score := api.Group("/score")
	score.Get("/", ctrl.GetOwn)
	score.Post("/recompute", ctrl.Recompute)
	score.Post("/recompute-all", middlewares.RecomputeRateLimiter(), ctrl.RecomputeAll)
	score.Get("/:farmer_id", ctrl.GetByFarmerID)
}
