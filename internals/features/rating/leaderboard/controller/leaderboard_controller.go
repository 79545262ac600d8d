package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agroferma_backend/internals/constants"
	"agroferma_backend/internals/features/rating/leaderboard/dto"
	helper "agroferma_backend/internals/helpers"
)

// Whitelist kolom metrik — kategori dari query TIDAK pernah masuk SQL mentah.
var metricColumns = map[string]string{
	"total":              "farmer_score_total",
	"region":             "farmer_score_region",
	"land":               "farmer_score_land",
	"livestock":          "farmer_score_livestock",
	"crop":               "farmer_score_crop",
	"tech":               "farmer_score_tech",
	"staff":              "farmer_score_staff",
	"finance":            "farmer_score_finance",
	"crop_master":        "farmer_score_crop_master",
	"livestock_champion": "farmer_score_livestock_champion",
	"agro_innovator":     "farmer_score_agro_innovator",
}

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

type row struct {
	UserID   string  `gorm:"column:user_id"`
	FarmName string  `gorm:"column:farm_name"`
	Region   string  `gorm:"column:region"`
	Score    float64 `gorm:"column:score"`
	Level    int     `gorm:"column:level"`
}

// GET /api/leaderboard?category=&region=&role=&limit=
// Urutan: skor menurun, tie-break user_id menaik (deterministik).
// Filter region = substring case-insensitive, bukan exact match.
func (ctrl *LeaderboardController) List(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category", "total"))
	column, ok := metricColumns[category]
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Kategori leaderboard tidak dikenal: "+category)
	}

	role := strings.TrimSpace(c.Query("role", constants.RoleFarmer))
	if role != constants.RoleFarmer && role != constants.RoleInvestor {
		return helper.Error(c, fiber.StatusBadRequest, "Role tidak dikenal: "+role)
	}

	limit := helper.ResolveLimit(c, 100, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Table("farmer_profiles AS fp").
		Select("fp.farmer_profile_user_id AS user_id, "+
			"fp.farmer_profile_farm_name AS farm_name, "+
			"fp.farmer_profile_region AS region, "+
			"COALESCE(fs."+column+", 0) AS score, "+
			"COALESCE(fs.farmer_score_level, 1) AS level").
		Joins("LEFT JOIN farmer_scores AS fs ON fs.farmer_score_user_id = fp.farmer_profile_user_id").
		Where("fp.farmer_profile_role = ?", role)

	if region := strings.TrimSpace(c.Query("region")); region != "" {
		q = q.Where("LOWER(fp.farmer_profile_region) LIKE ?", "%"+strings.ToLower(region)+"%")
	}

	var rows []row
	if err := q.Order("score DESC, fp.farmer_profile_user_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal query leaderboard:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	entries := make([]dto.Entry, 0, len(rows))
	for i, r := range rows {
		farmName := r.FarmName
		if strings.TrimSpace(farmName) == "" {
			farmName = "Ферма №" + r.UserID
		}
		region := r.Region
		if strings.TrimSpace(region) == "" {
			region = "Не указан"
		}
		entries = append(entries, dto.Entry{
			UserID:   r.UserID,
			FarmName: farmName,
			Region:   region,
			Score:    r.Score,
			Level:    r.Level,
			Rank:     i + 1,
		})
	}

	return helper.Success(c, "OK", entries)
}
