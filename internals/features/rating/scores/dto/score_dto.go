package dto

import (
	"time"

	helper "agroferma_backend/internals/helpers"

	"agroferma_backend/internals/features/rating/scores/model"
)

type RecomputeRequest struct {
	FarmerID helper.FarmerID `json:"farmer_id" validate:"omitempty,max=64"`
}

// RatingResponse adalah bentuk rating untuk klien.
type RatingResponse struct {
	RegionScore    float64 `json:"region_score"`
	LandScore      float64 `json:"land_score"`
	LivestockScore float64 `json:"livestock_score"`
	CropScore      float64 `json:"crop_score"`
	TechScore      float64 `json:"tech_score"`
	StaffScore     float64 `json:"staff_score"`
	FinanceScore   float64 `json:"finance_score"`

	Nominations map[string]float64 `json:"nominations"`

	TotalScore  float64   `json:"total_score"`
	Level       int       `json:"level"`
	LastUpdated time.Time `json:"last_updated"`
}

func FromScoreModel(m *model.FarmerScore) RatingResponse {
	return RatingResponse{
		RegionScore:    m.FarmerScoreRegion,
		LandScore:      m.FarmerScoreLand,
		LivestockScore: m.FarmerScoreLivestock,
		CropScore:      m.FarmerScoreCrop,
		TechScore:      m.FarmerScoreTech,
		StaffScore:     m.FarmerScoreStaff,
		FinanceScore:   m.FarmerScoreFinance,
		Nominations: map[string]float64{
			"crop_master":        m.FarmerScoreCropMaster,
			"livestock_champion": m.FarmerScoreLivestockChampion,
			"agro_innovator":     m.FarmerScoreAgroInnovator,
		},
		TotalScore:  m.FarmerScoreTotal,
		Level:       m.FarmerScoreLevel,
		LastUpdated: m.FarmerScoreLastUpdated,
	}
}

// FarmerResult adalah status satu petani dalam batch recompute.
type FarmerResult struct {
	FarmerID   string  `json:"farmer_id"`
	Status     string  `json:"status"` // success | error
	Error      string  `json:"error,omitempty"`
	TotalScore float64 `json:"total_score,omitempty"`
	Level      int     `json:"level,omitempty"`
}

type BatchResult struct {
	TotalFarmers int            `json:"total_farmers"`
	SuccessCount int            `json:"success_count"`
	ErrorCount   int            `json:"error_count"`
	Results      []FarmerResult `json:"results"`
}
