package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scoreDto "agroferma_backend/internals/features/rating/scores/dto"
	scoreModel "agroferma_backend/internals/features/rating/scores/model"
	"agroferma_backend/internals/features/rating/scores/service"
	helper "agroferma_backend/internals/helpers"
	"agroferma_backend/internals/observability"
)

type ScoreController struct {
	DB       *gorm.DB
	Service  *service.ScoreService
	Validate *validator.Validate
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{
		DB:       db,
		Service:  service.NewScoreService(db),
		Validate: validator.New(),
	}
}

// POST /api/score/recompute
// Dengan farmer_id (body / identitas) → hitung satu petani.
// Tanpa farmer_id → batch seluruh populasi.
func (ctrl *ScoreController) Recompute(c *fiber.Ctx) error {
	var req scoreDto.RecomputeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
		}
		if err := ctrl.Validate.Struct(&req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	farmerID := req.FarmerID
	if !farmerID.Valid() {
		farmerID = helper.ResolveFarmerID(c)
	}

	if !farmerID.Valid() {
		return ctrl.RecomputeAll(c)
	}

	rec, err := ctrl.Service.RecomputeOne(c.UserContext(), farmerID.String())
	if err != nil {
		if errors.Is(err, service.ErrFarmerNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Farmer not found")
		}
		log.Println("[ERROR] Gagal recompute:", err)
		observability.RecomputeFailed.Inc()
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	observability.RecomputeSuccess.Inc()
	return helper.Success(c, "Rating dihitung ulang", fiber.Map{
		"success": true,
		"rating":  scoreDto.FromScoreModel(rec),
	})
}

// POST /api/score/recompute-all
func (ctrl *ScoreController) RecomputeAll(c *fiber.Ctx) error {
	batch, err := ctrl.Service.RecomputeAll(c.UserContext())
	if err != nil {
		log.Println("[ERROR] Gagal recompute batch:", err)
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Rekomputasi massal selesai", fiber.Map{
		"success":       true,
		"total_farmers": batch.TotalFarmers,
		"success_count": batch.SuccessCount,
		"error_count":   batch.ErrorCount,
		"results":       batch.Results,
	})
}

// GET /api/score/:farmer_id — 404 kalau belum pernah dihitung.
func (ctrl *ScoreController) GetByFarmerID(c *fiber.Ctx) error {
	farmerID := helper.ResolveFarmerID(c)
	if !farmerID.Valid() {
		return helper.Error(c, fiber.StatusBadRequest, "farmer_id wajib diisi")
	}

	var rec scoreModel.FarmerScore
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("farmer_score_user_id = ?", farmerID.String()).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Rating belum dihitung")
		}
		log.Println("[ERROR] Gagal ambil rating:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"rating": scoreDto.FromScoreModel(&rec),
	})
}

// GET /api/score — baris kosong dibuat saat sentuhan pertama.
func (ctrl *ScoreController) GetOwn(c *fiber.Ctx) error {
	farmerID := helper.ResolveFarmerID(c)
	if !farmerID.Valid() {
		return helper.Error(c, fiber.StatusUnauthorized, "Identitas petani tidak ditemukan")
	}

	if err := ctrl.Service.EnsureScoreRow(ctrl.DB.WithContext(c.UserContext()), farmerID.String()); err != nil {
		log.Println("[ERROR] Gagal buat baris skor:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var rec scoreModel.FarmerScore
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("farmer_score_user_id = ?", farmerID.String()).
		First(&rec).Error; err != nil {
		log.Println("[ERROR] Gagal ambil rating:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "OK", fiber.Map{
		"rating": scoreDto.FromScoreModel(&rec),
	})
}
