package model

// Kategori rating. Dipakai sebagai key di tabel bobot & normalisasi.
const (
	CategoryRegion    = "region"
	CategoryLand      = "land"
	CategoryLivestock = "livestock"
	CategoryCrop      = "crop"
	CategoryTech      = "tech"
	CategoryStaff     = "staff"
	CategoryFinance   = "finance"
)

// Nominasi leaderboard tematik.
const (
	NominationCropMaster        = "crop_master"
	NominationLivestockChampion = "livestock_champion"
	NominationAgroInnovator     = "agro_innovator"
)

type LevelThreshold struct {
	MinScore float64 `json:"min_score"`
	Level    int     `json:"level"`
}

// Tables adalah konfigurasi koefisien versi-tertentu, dimuat sekali saat
// start. Mengganti isi tabel meng-invalidasi perbandingan skor historis —
// itu kontrak produk, bukan bug.
type Tables struct {
	Version string `json:"version"`

	// Region → skor dasar kesuburan (fallback 50).
	RegionBaseScores map[string]float64 `json:"region_base_scores"`

	// Kelas kesulitan region (list keanggotaan tetap, bukan hasil hitung).
	NorthernRegions []string `json:"northern_regions"` // koef 1.2
	SiberiaFarEast  []string `json:"siberia_far_east"` // koef 1.15
	MountainRegions []string `json:"mountain_regions"` // koef 1.1

	// Kelas tanah untuk koefisien lahan.
	PoorSoilRegions   []string `json:"poor_soil_regions"`   // koef 1.2
	MediumSoilRegions []string `json:"medium_soil_regions"` // koef 1.1

	// Kelangkaan ras ternak (match substring, case-insensitive).
	RareBreeds     []string `json:"rare_breeds"`     // koef 1.2
	UncommonBreeds []string `json:"uncommon_breeds"` // koef 1.1

	// type → direction → nilai produktivitas dasar; key "base" jadi fallback.
	AnimalProductivity map[string]map[string]float64 `json:"animal_productivity"`

	// Benchmark panen per jenis tanaman (t/ha). Fallback di BenchmarkFallback.
	CropBenchmarks    map[string]float64 `json:"crop_benchmarks"`
	BenchmarkFallback float64            `json:"benchmark_fallback"`

	// Kompleksitas budidaya tanaman.
	ComplexCrops  []string `json:"complex_crops"`  // koef 1.2
	ModerateCrops []string `json:"moderate_crops"` // koef 1.1

	// Harga default untuk estimasi pendapatan (finance).
	DefaultMilkYield float64 `json:"default_milk_yield"`
	DefaultMilkPrice float64 `json:"default_milk_price"`
	DefaultMeatYield float64 `json:"default_meat_yield"`
	DefaultMeatPrice float64 `json:"default_meat_price"`
	DefaultCropPrice float64 `json:"default_crop_price"`

	// Normalisasi: skor kategori (sudah dikali koefisien) dibagi max lalu ×1000.
	NormalizationMax map[string]float64 `json:"normalization_max"`

	// Bobot agregasi. Jumlah bobot overall = 1.0.
	OverallWeights    map[string]float64            `json:"overall_weights"`
	NominationWeights map[string]map[string]float64 `json:"nomination_weights"`

	// Ambang level, urut menurun.
	LevelThresholds []LevelThreshold `json:"level_thresholds"`
}

// Default mengembalikan tabel koefisien kanonik.
func Default() *Tables {
	return &Tables{
		Version: "2024.2",

		RegionBaseScores: map[string]float64{
			"Краснодарский край":    100,
			"Ростовская область":    95,
			"Воронежская область":   90,
			"Ставропольский край":   90,
			"Белгородская область":  85,
			"Тамбовская область":    80,
			"Саратовская область":   75,
			"Волгоградская область": 75,
			"Курская область":       70,
			"Липецкая область":      70,
			"Московская область":    65,
			"Ленинградская область": 60,
			"Алтайский край":        70,
			"Новосибирская область": 65,
			"Омская область":        60,
			"Татарстан":             80,
			"Башкортостан":          75,
		},

		NorthernRegions: []string{
			"Республика Саха (Якутия)", "Магаданская область", "Чукотский автономный округ",
			"Мурманская область", "Ненецкий автономный округ", "Ямало-Ненецкий автономный округ",
		},
		SiberiaFarEast: []string{
			"Красноярский край", "Иркутская область", "Томская область", "Новосибирская область",
			"Омская область", "Кемеровская область", "Хабаровский край", "Приморский край",
			"Амурская область", "Сахалинская область", "Камчатский край",
		},
		MountainRegions: []string{
			"Республика Алтай", "Республика Дагестан", "Кабардино-Балкарская Республика",
			"Карачаево-Черкесская Республика", "Республика Северная Осетия — Алания",
			"Чеченская Республика", "Республика Ингушетия",
		},

		PoorSoilRegions: []string{
			"Архангельская область", "Республика Коми", "Мурманская область",
			"Ненецкий автономный округ", "Ямало-Ненецкий автономный округ",
		},
		MediumSoilRegions: []string{
			"Ленинградская область", "Новгородская область", "Псковская область",
			"Вологодская область", "Костромская область", "Тверская область",
		},

		RareBreeds:     []string{"якутская", "калмыцкая", "казахская белоголовая", "герефорд", "абердин-ангус"},
		UncommonBreeds: []string{"симментальская", "шароле", "лимузин", "голштинская"},

		AnimalProductivity: map[string]map[string]float64{
			"cows":     {"base": 15, "meat": 20, "milk": 25, "mixed": 22},
			"pigs":     {"base": 12, "meat": 18},
			"chickens": {"base": 8, "meat": 10},
			"sheep":    {"base": 10, "meat": 12},
			"goats":    {"base": 10, "milk": 14},
			"horses":   {"base": 20},
			"deer":     {"base": 18},
			"hives":    {"base": 25},
		},

		CropBenchmarks: map[string]float64{
			"beet":     45.0,
			"cabbage":  35.0,
			"rapeseed": 2.5,
			"soy":      2.0,
			"corn":     8.0,
			"garlic":   15.0,
			"wheat":    4.0,
			"barley":   3.5,
		},
		BenchmarkFallback: 3.5,

		ComplexCrops:  []string{"garlic", "rapeseed", "soy"},
		ModerateCrops: []string{"beet", "corn", "cabbage"},

		DefaultMilkYield: 4000,
		DefaultMilkPrice: 35,
		DefaultMeatYield: 250,
		DefaultMeatPrice: 300,
		DefaultCropPrice: 10,

		// Raw cap 100 × koefisien max 1.2 → peternakan kecil di region sulit
		// tetap bisa menyentuh 1000.
		NormalizationMax: map[string]float64{
			CategoryRegion:    120,
			CategoryLand:      120,
			CategoryLivestock: 120,
			CategoryCrop:      120,
			CategoryTech:      120,
			CategoryStaff:     120,
			CategoryFinance:   120,
		},

		OverallWeights: map[string]float64{
			CategoryLand:      0.15,
			CategoryLivestock: 0.25,
			CategoryCrop:      0.25,
			CategoryTech:      0.20,
			CategoryStaff:     0.15,
		},
		NominationWeights: map[string]map[string]float64{
			NominationCropMaster: {
				CategoryCrop: 0.60, CategoryLand: 0.25, CategoryTech: 0.15,
			},
			NominationLivestockChampion: {
				CategoryLivestock: 0.70, CategoryStaff: 0.20, CategoryLand: 0.10,
			},
			NominationAgroInnovator: {
				CategoryTech: 0.50, CategoryCrop: 0.30, CategoryLivestock: 0.20,
			},
		},

		LevelThresholds: []LevelThreshold{
			{MinScore: 1000, Level: 5},
			{MinScore: 500, Level: 4},
			{MinScore: 250, Level: 3},
			{MinScore: 100, Level: 2},
			{MinScore: 0, Level: 1},
		},
	}
}

// NormalizationMaxFor mengembalikan max normalisasi kategori (fallback 120).
func (t *Tables) NormalizationMaxFor(category string) float64 {
	if v, ok := t.NormalizationMax[category]; ok && v > 0 {
		return v
	}
	return 120
}

// BenchmarkFor mengembalikan benchmark panen jenis tanaman.
func (t *Tables) BenchmarkFor(cropType string) float64 {
	if v, ok := t.CropBenchmarks[cropType]; ok && v > 0 {
		return v
	}
	if t.BenchmarkFallback > 0 {
		return t.BenchmarkFallback
	}
	return 3.5
}

// ProductivityFor mengembalikan nilai produktivitas dasar type+direction.
// Type yang tidak ada di tabel → (0, false): hewan itu dilewati scorer.
// Type dikenal tanpa entri direction → fallback ke "base", terakhir 10.
func (t *Tables) ProductivityFor(animalType, direction string) (float64, bool) {
	dirs, ok := t.AnimalProductivity[animalType]
	if !ok {
		return 0, false
	}
	if v, ok := dirs[direction]; ok {
		return v, true
	}
	if v, ok := dirs["base"]; ok {
		return v, true
	}
	return 10, true
}
