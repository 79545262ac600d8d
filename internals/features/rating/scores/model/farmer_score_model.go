package model

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

// FarmerScore adalah satu baris rating per petani (1:1 dengan diagnostics).
// Skor kategori tersimpan di skala ternormalisasi 0–1000. Recompute
// mengganti seluruh field turunan; jalur poin quest/achievement hanya
// menambah farmer_score_total.
type FarmerScore struct {
	FarmerScoreID     uint   `gorm:"column:farmer_score_id;primaryKey" json:"farmer_score_id"`
	FarmerScoreUserID string `gorm:"column:farmer_score_user_id;uniqueIndex;not null" json:"farmer_score_user_id"`

	FarmerScoreRegion    float64 `gorm:"column:farmer_score_region;default:0" json:"farmer_score_region"`
	FarmerScoreLand      float64 `gorm:"column:farmer_score_land;default:0" json:"farmer_score_land"`
	FarmerScoreLivestock float64 `gorm:"column:farmer_score_livestock;default:0" json:"farmer_score_livestock"`
	FarmerScoreCrop      float64 `gorm:"column:farmer_score_crop;default:0" json:"farmer_score_crop"`
	FarmerScoreTech      float64 `gorm:"column:farmer_score_tech;default:0" json:"farmer_score_tech"`
	FarmerScoreStaff     float64 `gorm:"column:farmer_score_staff;default:0" json:"farmer_score_staff"`
	FarmerScoreFinance   float64 `gorm:"column:farmer_score_finance;default:0" json:"farmer_score_finance"`

	FarmerScoreCropMaster        float64 `gorm:"column:farmer_score_crop_master;default:0" json:"farmer_score_crop_master"`
	FarmerScoreLivestockChampion float64 `gorm:"column:farmer_score_livestock_champion;default:0" json:"farmer_score_livestock_champion"`
	FarmerScoreAgroInnovator     float64 `gorm:"column:farmer_score_agro_innovator;default:0" json:"farmer_score_agro_innovator"`

	FarmerScoreTotal float64 `gorm:"column:farmer_score_total;default:0;index" json:"farmer_score_total"`
	FarmerScoreLevel int     `gorm:"column:farmer_score_level;default:1" json:"farmer_score_level"`

	// Set ID achievement yang sudah dibuka, JSON array of int.
	FarmerScoreAchievements datatypes.JSON `gorm:"column:farmer_score_achievements" json:"farmer_score_achievements"`

	FarmerScoreLastUpdated time.Time `gorm:"column:farmer_score_last_updated" json:"farmer_score_last_updated"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FarmerScore) TableName() string {
	return "farmer_scores"
}

// UnlockedAchievements men-decode set achievement. JSON rusak → set kosong.
func (s *FarmerScore) UnlockedAchievements() []int64 {
	raw := []byte(s.FarmerScoreAchievements)
	if len(raw) == 0 {
		return nil
	}
	var ids []int64
	if err := sonic.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	return ids
}

func (s *FarmerScore) HasAchievement(id int64) bool {
	for _, v := range s.UnlockedAchievements() {
		if v == id {
			return true
		}
	}
	return false
}

func EncodeAchievements(ids []int64) datatypes.JSON {
	if ids == nil {
		ids = []int64{}
	}
	raw, _ := sonic.Marshal(ids)
	return datatypes.JSON(raw)
}
