package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agroferma_backend/internals/features/gamification/achievements/model"
	scoreModel "agroferma_backend/internals/features/rating/scores/model"
	scoreService "agroferma_backend/internals/features/rating/scores/service"
	helper "agroferma_backend/internals/helpers"
	"agroferma_backend/internals/observability"
)

type AchievementController struct {
	DB       *gorm.DB
	Scores   *scoreService.ScoreService
	Validate *validator.Validate
}

func NewAchievementController(db *gorm.DB) *AchievementController {
	return &AchievementController{
		DB:       db,
		Scores:   scoreService.NewScoreService(db),
		Validate: validator.New(),
	}
}

type achievementResponse struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Earned      bool   `json:"earned"`
}

// GET /api/achievements?farmer_id=
// Katalog penuh + flag earned per petani. Tanpa identitas semua earned=false.
func (ctrl *AchievementController) List(c *fiber.Ctx) error {
	var catalog []model.Achievement
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("achievement_id ASC").
		Find(&catalog).Error; err != nil {
		log.Println("[ERROR] Gagal ambil katalog achievement:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	unlocked := map[int64]bool{}
	if farmerID := helper.ResolveFarmerID(c); farmerID.Valid() {
		var score scoreModel.FarmerScore
		err := ctrl.DB.WithContext(c.UserContext()).
			Where("farmer_score_user_id = ?", farmerID.String()).
			First(&score).Error
		if err == nil {
			for _, id := range score.UnlockedAchievements() {
				unlocked[id] = true
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] Gagal ambil skor petani:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
	}

	out := make([]achievementResponse, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, achievementResponse{
			ID:          a.AchievementID,
			Code:        a.AchievementCode,
			Name:        a.AchievementName,
			Description: a.AchievementDescription,
			Points:      a.AchievementPoints,
			Earned:      unlocked[int64(a.AchievementID)],
		})
	}
	return helper.Success(c, "OK", out)
}

type unlockRequest struct {
	AchievementID uint `json:"achievement_id" validate:"required"`
}

var errAlreadyUnlocked = errors.New("achievement already unlocked")

// POST /api/achievements/unlock {achievement_id}
// Unlock = tambah ID ke set + kredit poin, keduanya tepat satu kali.
// Set disimpan sebagai kolom JSON, jadi penambahannya dijaga dengan
// compare-and-swap pada nilai lama: UPDATE ... WHERE achievements = <old>.
// Nol baris berarti ada penulis lain menang — baca ulang lalu coba lagi.
func (ctrl *AchievementController) Unlock(c *fiber.Ctx) error {
	farmerID := helper.ResolveFarmerID(c)
	if !farmerID.Valid() {
		return helper.Error(c, fiber.StatusUnauthorized, "Identitas petani tidak ditemukan")
	}

	var req unlockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var ach model.Achievement
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&ach, req.AchievementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Achievement not found")
		}
		log.Println("[ERROR] Gagal ambil achievement:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := ctrl.Scores.EnsureScoreRow(ctrl.DB.WithContext(c.UserContext()), farmerID.String()); err != nil {
		log.Println("[ERROR] Gagal siapkan baris skor:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	err := ctrl.unlockOnce(c, farmerID.String(), &ach)
	if err != nil {
		if errors.Is(err, errAlreadyUnlocked) {
			return helper.Error(c, fiber.StatusBadRequest, "Achievement already unlocked")
		}
		log.Println("[ERROR] Gagal unlock achievement:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	observability.AchievementUnlocked.Inc()
	return helper.Success(c, "Achievement terbuka", fiber.Map{
		"success":       true,
		"achievement":   ach.AchievementCode,
		"points_earned": ach.AchievementPoints,
	})
}

func (ctrl *AchievementController) unlockOnce(c *fiber.Ctx, farmerID string, ach *model.Achievement) error {
	db := ctrl.DB.WithContext(c.UserContext())

	for attempt := 0; attempt < 3; attempt++ {
		var score scoreModel.FarmerScore
		if err := db.Where("farmer_score_user_id = ?", farmerID).
			First(&score).Error; err != nil {
			return err
		}

		id := int64(ach.AchievementID)
		if score.HasAchievement(id) {
			return errAlreadyUnlocked
		}

		next := scoreModel.EncodeAchievements(append(score.UnlockedAchievements(), id))
		res := db.Model(&scoreModel.FarmerScore{}).
			Where("farmer_score_user_id = ? AND farmer_score_achievements = ?",
				farmerID, score.FarmerScoreAchievements).
			Updates(map[string]interface{}{
				"farmer_score_achievements": next,
				"farmer_score_total":        gorm.Expr("farmer_score_total + ?", ach.AchievementPoints),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		// kalah balapan dengan unlock lain — ulangi dari baca
	}
	return errors.New("unlock contention")
}
