package model

import "time"

// Achievement adalah entri katalog global. Unlock = keanggotaan set di
// baris skor petani; poin diberikan tepat satu kali per pasangan.
type Achievement struct {
	AchievementID          uint      `gorm:"column:achievement_id;primaryKey" json:"achievement_id"`
	AchievementCode        string    `gorm:"column:achievement_code;uniqueIndex;not null" json:"achievement_code"`
	AchievementName        string    `gorm:"column:achievement_name;not null" json:"achievement_name"`
	AchievementDescription string    `gorm:"column:achievement_description" json:"achievement_description"`
	AchievementPoints      int       `gorm:"column:achievement_points;not null" json:"achievement_points"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}
