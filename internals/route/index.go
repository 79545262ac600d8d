// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achievementRoute "agroferma_backend/internals/features/gamification/achievements/route"
	questRoute "agroferma_backend/internals/features/gamification/quests/route"
	leaderboardRoute "agroferma_backend/internals/features/rating/leaderboard/route"
	scoreRoute "agroferma_backend/internals/features/rating/scores/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== RATING =====================
	log.Println("[INFO] Setting up ScoreRoutes...")
	scoreRoute.ScoreRoutes(api, db)

	log.Println("[INFO] Setting up LeaderboardRoutes...")
	leaderboardRoute.LeaderboardRoutes(api, db)

	// ===================== GAMIFICATION =====================
	log.Println("[INFO] Setting up QuestRoutes...")
	questRoute.QuestRoutes(api, db)

	log.Println("[INFO] Setting up AchievementRoutes...")
	achievementRoute.AchievementRoutes(api, db)
}
