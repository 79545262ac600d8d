package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agroferma_backend/internals/features/gamification/quests/model"
	scoreService "agroferma_backend/internals/features/rating/scores/service"
	helper "agroferma_backend/internals/helpers"
	"agroferma_backend/internals/observability"
)

type QuestController struct {
	DB       *gorm.DB
	Scores   *scoreService.ScoreService
	Validate *validator.Validate
}

func NewQuestController(db *gorm.DB) *QuestController {
	return &QuestController{
		DB:       db,
		Scores:   scoreService.NewScoreService(db),
		Validate: validator.New(),
	}
}

type questResponse struct {
	ID        uint   `json:"id"`
	QuestType string `json:"quest_type"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
	Completed bool   `json:"completed"`
}

// GET /api/quests/daily?farmer_id=
// Kunjungan pertama hari itu meng-instansiasi 3 quest template; kunjungan
// berikutnya mengembalikan baris yang sama. Idempoten lewat unique index
// (user, date, type) + insert ON CONFLICT DO NOTHING — bukan read-then-insert,
// jadi dua request paralel tidak menggandakan set quest.
func (ctrl *QuestController) GetDaily(c *fiber.Ctx) error {
	farmerID := helper.ResolveFarmerID(c)
	if !farmerID.Valid() {
		return helper.Error(c, fiber.StatusUnauthorized, "Identitas petani tidak ditemukan")
	}

	today := time.Now().Format(model.DateLayout)

	rows := make([]model.DailyQuest, 0, 3)
	for _, tpl := range model.Templates() {
		rows = append(rows, model.DailyQuest{
			DailyQuestUserID: farmerID.String(),
			DailyQuestDate:   today,
			DailyQuestType:   tpl.Type,
			DailyQuestName:   tpl.Name,
			DailyQuestPoints: tpl.Points,
		})
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "daily_quest_user_id"},
			{Name: "daily_quest_date"},
			{Name: "daily_quest_type"},
		},
		DoNothing: true,
	}).Create(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal generate quest harian:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var quests []model.DailyQuest
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("daily_quest_user_id = ? AND daily_quest_date = ?", farmerID.String(), today).
		Order("daily_quest_id ASC").
		Find(&quests).Error; err != nil {
		log.Println("[ERROR] Gagal ambil quest harian:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	out := make([]questResponse, 0, len(quests))
	for _, q := range quests {
		out = append(out, questResponse{
			ID:        q.DailyQuestID,
			QuestType: q.DailyQuestType,
			Name:      q.DailyQuestName,
			Points:    q.DailyQuestPoints,
			Completed: q.DailyQuestCompleted,
		})
	}
	return helper.Success(c, "OK", out)
}

type completeQuestRequest struct {
	QuestID uint `json:"quest_id" validate:"required"`
}

// POST /api/quests/complete {quest_id}
// Update kondisional (WHERE completed = false), di-scope ke identitas
// pemanggil supaya quest petani lain tidak bisa diselesaikan. Nol baris →
// 404, tanpa mutasi apa pun. Sukses → total_score += points (kategori tidak
// disentuh, agregator tidak dijalankan ulang).
func (ctrl *QuestController) Complete(c *fiber.Ctx) error {
	farmerID := helper.ResolveFarmerID(c)
	if !farmerID.Valid() {
		return helper.Error(c, fiber.StatusUnauthorized, "Identitas petani tidak ditemukan")
	}

	var req completeQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var earned int
	err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.DailyQuest{}).
			Where("daily_quest_id = ? AND daily_quest_user_id = ? AND daily_quest_completed = ?",
				req.QuestID, farmerID.String(), false).
			Update("daily_quest_completed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var quest model.DailyQuest
		if err := tx.First(&quest, req.QuestID).Error; err != nil {
			return err
		}
		earned = quest.DailyQuestPoints

		if err := ctrl.Scores.EnsureScoreRow(tx, farmerID.String()); err != nil {
			return err
		}
		return ctrl.Scores.AddPoints(tx, farmerID.String(), earned)
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Quest not found or already completed")
		}
		log.Println("[ERROR] Gagal menyelesaikan quest:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	observability.QuestCompleted.Inc()
	return helper.Success(c, "Quest selesai", fiber.Map{
		"success":       true,
		"points_earned": earned,
	})
}
