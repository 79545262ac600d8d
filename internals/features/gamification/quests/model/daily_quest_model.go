package model

import "time"

// DailyQuest: satu baris per (petani, tanggal, jenis). Status satu arah
// Pending → Completed. Tanggal disimpan "YYYY-MM-DD" supaya unik per hari.
type DailyQuest struct {
	DailyQuestID        uint      `gorm:"column:daily_quest_id;primaryKey" json:"daily_quest_id"`
	DailyQuestUserID    string    `gorm:"column:daily_quest_user_id;not null;uniqueIndex:idx_daily_quest_user_date_type" json:"daily_quest_user_id"`
	DailyQuestDate      string    `gorm:"column:daily_quest_date;not null;uniqueIndex:idx_daily_quest_user_date_type" json:"daily_quest_date"`
	DailyQuestType      string    `gorm:"column:daily_quest_type;not null;uniqueIndex:idx_daily_quest_user_date_type" json:"daily_quest_type"`
	DailyQuestName      string    `gorm:"column:daily_quest_name;not null" json:"daily_quest_name"`
	DailyQuestPoints    int       `gorm:"column:daily_quest_points;not null" json:"daily_quest_points"`
	DailyQuestCompleted bool      `gorm:"column:daily_quest_completed;default:false" json:"daily_quest_completed"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DailyQuest) TableName() string {
	return "daily_quests"
}

const DateLayout = "2006-01-02"

// QuestTemplate adalah cetakan quest harian tetap.
type QuestTemplate struct {
	Type   string
	Name   string
	Points int
}

// Templates: tiga quest yang sama untuk semua petani setiap hari.
func Templates() []QuestTemplate {
	return []QuestTemplate{
		{Type: "update_farm", Name: "Обновите информацию о хозяйстве", Points: 50},
		{Type: "add_proposal", Name: "Создайте новое предложение", Points: 30},
		{Type: "check_equipment", Name: "Проверьте состояние техники", Points: 20},
	}
}
