package service

import (
	"sort"

	coeffModel "agroferma_backend/internals/features/rating/coefficients/model"
	"agroferma_backend/internals/features/rating/diagnostics/dto"
)

// Breakdown adalah hasil lengkap satu kali scoring.
type Breakdown struct {
	Categories  map[string]CategoryResult `json:"categories"`
	Normalized  map[string]float64        `json:"categories_normalized"`
	Overall     float64                   `json:"overall"`
	Nominations map[string]float64        `json:"nominations"`
	Level       int                       `json:"level"`
}

// weightedSum menjumlahkan bobot×normalized dengan urutan key TETAP,
// supaya hasil float bit-identik antar pemanggilan (kontrak determinisme).
func weightedSum(weights map[string]float64, normalized map[string]float64) float64 {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sum := 0.0
	for _, k := range keys {
		sum += weights[k] * normalized[k]
	}
	return sum
}

// Score menjalankan semua scorer kategori lalu agregasi berbobot.
// Murni: diagnostics + tabel + tahun yang sama → hasil bit-identik.
func Score(d *dto.Diagnostics, t *coeffModel.Tables, currentYear int) *Breakdown {
	categories := map[string]CategoryResult{
		coeffModel.CategoryRegion:    RegionScore(d.Region, t),
		coeffModel.CategoryLand:      LandScore(d, t),
		coeffModel.CategoryLivestock: LivestockScore(d, t),
		coeffModel.CategoryCrop:      CropScore(d, t),
		coeffModel.CategoryTech:      EquipmentScore(d, currentYear),
		coeffModel.CategoryStaff:     StaffScore(d),
		coeffModel.CategoryFinance:   FinanceScore(d, t),
	}

	// Normalisasi ke skala 0–1000: (raw × koefisien) / max kategori × 1000.
	normalized := make(map[string]float64, len(categories))
	for cat, res := range categories {
		normalized[cat] = res.Adjusted() / t.NormalizationMaxFor(cat) * 1000
	}

	nominations := make(map[string]float64, len(t.NominationWeights))
	nomKeys := make([]string, 0, len(t.NominationWeights))
	for name := range t.NominationWeights {
		nomKeys = append(nomKeys, name)
	}
	sort.Strings(nomKeys)
	for _, name := range nomKeys {
		nominations[name] = weightedSum(t.NominationWeights[name], normalized)
	}

	overall := weightedSum(t.OverallWeights, normalized)

	return &Breakdown{
		Categories:  categories,
		Normalized:  normalized,
		Overall:     overall,
		Nominations: nominations,
		Level:       LevelFor(overall, t),
	}
}

// LevelFor memetakan skor total ke tier 1–5 lewat ambang tetap.
func LevelFor(total float64, t *coeffModel.Tables) int {
	for _, th := range t.LevelThresholds {
		if total >= th.MinScore {
			return th.Level
		}
	}
	return 1
}
