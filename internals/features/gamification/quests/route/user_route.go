package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agroferma_backend/internals/features/gamification/quests/controller"
)

func QuestRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestController(db)

	quests := api.Group("/quests")
	quests.Get("/daily", ctrl.GetDaily)
	quests.Post("/complete", ctrl.Complete)
}
