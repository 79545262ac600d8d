package seeds

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agroferma_backend/internals/features/gamification/achievements/model"
)

// SeedAchievements mengisi katalog achievement kalau belum ada.
// Idempoten: conflict di code → dilewati.
func SeedAchievements(db *gorm.DB) error {
	catalog := []model.Achievement{
		{AchievementCode: "first_harvest", AchievementName: "Первый урожай", AchievementDescription: "Заполните данные о культурах", AchievementPoints: 50},
		{AchievementCode: "full_diagnostics", AchievementName: "Полная диагностика", AchievementDescription: "Заполните все разделы диагностики хозяйства", AchievementPoints: 100},
		{AchievementCode: "dairy_master", AchievementName: "Молочный мастер", AchievementDescription: "Надой выше 5000 кг на голову", AchievementPoints: 150},
		{AchievementCode: "tech_park", AchievementName: "Технопарк", AchievementDescription: "Добавьте 5 единиц техники", AchievementPoints: 100},
		{AchievementCode: "first_investment", AchievementName: "Первая инвестиция", AchievementDescription: "Получите первую инвестицию через платформу", AchievementPoints: 200},
		{AchievementCode: "regional_leader", AchievementName: "Лидер региона", AchievementDescription: "Войдите в топ-10 своего региона", AchievementPoints: 300},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "achievement_code"}},
		DoNothing: true,
	}).Create(&catalog).Error
}
