package dto

// Entry adalah satu baris leaderboard untuk klien.
type Entry struct {
	UserID   string  `json:"user_id"`
	FarmName string  `json:"farm_name"`
	Region   string  `json:"region"`
	Score    float64 `json:"score"`
	Level    int     `json:"level"`
	Rank     int     `json:"rank"`
}
