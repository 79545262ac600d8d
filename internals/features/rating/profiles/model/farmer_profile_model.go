package model

import "time"

// FarmerProfile adalah proyeksi minimal profil milik kolaborator eksternal.
// Engine rating membacanya untuk region (koefisien) dan tampilan leaderboard.
type FarmerProfile struct {
	FarmerProfileID       uint      `gorm:"column:farmer_profile_id;primaryKey" json:"farmer_profile_id"`
	FarmerProfileUserID   string    `gorm:"column:farmer_profile_user_id;uniqueIndex;not null" json:"farmer_profile_user_id"`
	FarmerProfileFarmName string    `gorm:"column:farmer_profile_farm_name" json:"farmer_profile_farm_name"`
	FarmerProfileRegion   string    `gorm:"column:farmer_profile_region" json:"farmer_profile_region"`
	FarmerProfileRole     string    `gorm:"column:farmer_profile_role;default:farmer;index" json:"farmer_profile_role"` // farmer | investor
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FarmerProfile) TableName() string {
	return "farmer_profiles"
}
