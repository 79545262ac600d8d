package service

import (
	"math"
	"testing"

	coeffModel "agroferma_backend/internals/features/rating/coefficients/model"
	"agroferma_backend/internals/features/rating/diagnostics/dto"
)

const testYear = 2024

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRegionScore(t *testing.T) {
	tables := coeffModel.Default()

	tests := []struct {
		name     string
		region   string
		wantRaw  float64
		wantCoef float64
	}{
		{"region subur", "Краснодарский край", 100, 1.0},
		{"region utara pakai fallback base", "Мурманская область", 50, 1.2},
		{"siberia", "Новосибирская область", 65, 1.15},
		{"pegunungan", "Республика Алтай", 50, 1.1},
		{"region kosong", "", 50, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RegionScore(tt.region, tables)
			if got.Raw != tt.wantRaw || got.Coefficient != tt.wantCoef {
				t.Errorf("RegionScore(%q) = {%v %v}, want {%v %v}",
					tt.region, got.Raw, got.Coefficient, tt.wantRaw, tt.wantCoef)
			}
		})
	}
}

func TestLandScore(t *testing.T) {
	tables := coeffModel.Default()

	tests := []struct {
		name     string
		d        dto.Diagnostics
		wantRaw  float64
		wantCoef float64
	}{
		{"tanpa lahan", dto.Diagnostics{}, 0, 1.0},
		{"setengah milik sendiri", dto.Diagnostics{LandArea: 100, LandOwned: 50}, 75, 1.0},
		{"lahan besar kena cap", dto.Diagnostics{LandArea: 400, LandOwned: 400}, 100, 1.0},
		{"tanah miskin", dto.Diagnostics{Region: "Мурманская область", LandArea: 100, LandOwned: 100}, 100, 1.2},
		{"tanah sedang", dto.Diagnostics{Region: "Тверская область", LandArea: 100, LandOwned: 0}, 50, 1.1},
		{"tanpa lahan di region sulit tetap dapat koefisien", dto.Diagnostics{Region: "Республика Коми"}, 0, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LandScore(&tt.d, tables)
			if !almostEqual(got.Raw, tt.wantRaw) || got.Coefficient != tt.wantCoef {
				t.Errorf("LandScore = {%v %v}, want {%v %v}", got.Raw, got.Coefficient, tt.wantRaw, tt.wantCoef)
			}
		})
	}
}

func TestLivestockScore(t *testing.T) {
	tables := coeffModel.Default()

	t.Run("sapi perah dengan bonus nadoi", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "cows", Direction: "milk", Count: 10, MilkYield: 6000},
		}}
		got := LivestockScore(&d, tables)
		// 10/10 × 25 × 1.3
		if !almostEqual(got.Raw, 32.5) || got.Coefficient != 1.0 {
			t.Errorf("got {%v %v}, want {32.5 1.0}", got.Raw, got.Coefficient)
		}
	})

	t.Run("bonus daging", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "pigs", Direction: "meat", Count: 20, MeatYield: 350},
		}}
		got := LivestockScore(&d, tables)
		// 20/10 × 18 × 1.2
		if !almostEqual(got.Raw, 43.2) {
			t.Errorf("got raw %v, want 43.2", got.Raw)
		}
	})

	t.Run("ras match substring case-insensitive", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "cows", Direction: "milk", Count: 5, Breed: "Голштинская черно-пестрая"},
		}}
		if got := LivestockScore(&d, tables); got.Coefficient != 1.1 {
			t.Errorf("coef = %v, want 1.1", got.Coefficient)
		}
	})

	t.Run("ras langka menang atas ras jarang", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "cows", Direction: "meat", Count: 5, Breed: "герефорд"},
			{Type: "cows", Direction: "milk", Count: 5, Breed: "симментальская"},
		}}
		if got := LivestockScore(&d, tables); got.Coefficient != 1.2 {
			t.Errorf("coef = %v, want 1.2", got.Coefficient)
		}
	})

	t.Run("jenis tak dikenal dilewati", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "ostrich", Direction: "meat", Count: 100},
		}}
		if got := LivestockScore(&d, tables); got.Raw != 0 {
			t.Errorf("raw = %v, want 0", got.Raw)
		}
	})

	t.Run("cap 100", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "cows", Direction: "milk", Count: 100, MilkYield: 6000},
		}}
		if got := LivestockScore(&d, tables); got.Raw != 100 {
			t.Errorf("raw = %v, want 100 (cap)", got.Raw)
		}
	})
}

func TestCropScore(t *testing.T) {
	tables := coeffModel.Default()

	t.Run("gandum di benchmark", func(t *testing.T) {
		d := dto.Diagnostics{Crops: []dto.CropRecord{
			{Type: "wheat", Area: 10, Yield: 40},
		}}
		got := CropScore(&d, tables)
		// (40/10)/4 × 10 × (10/10) × 5 = 50, harga default 10
		if !almostEqual(got.Raw, 50) || got.Coefficient != 1.0 {
			t.Errorf("got {%v %v}, want {50 1.0}", got.Raw, got.Coefficient)
		}
	})

	t.Run("faktor harga dibatasi 2.0", func(t *testing.T) {
		d := dto.Diagnostics{Crops: []dto.CropRecord{
			{Type: "garlic", Area: 1, Yield: 15, PricePerKg: 50},
		}}
		got := CropScore(&d, tables)
		// (15/1)/15 × 1 × 2.0 × 5 = 10, garlic kompleks → 1.2
		if !almostEqual(got.Raw, 10) || got.Coefficient != 1.2 {
			t.Errorf("got {%v %v}, want {10 1.2}", got.Raw, got.Coefficient)
		}
	})

	t.Run("luas nol dilewati tapi flag kompleksitas tetap", func(t *testing.T) {
		d := dto.Diagnostics{Crops: []dto.CropRecord{
			{Type: "soy", Area: 0, Yield: 10},
		}}
		got := CropScore(&d, tables)
		if got.Raw != 0 || got.Coefficient != 1.2 {
			t.Errorf("got {%v %v}, want {0 1.2}", got.Raw, got.Coefficient)
		}
	})

	t.Run("tanaman moderat", func(t *testing.T) {
		d := dto.Diagnostics{Crops: []dto.CropRecord{
			{Type: "corn", Area: 5, Yield: 40},
		}}
		if got := CropScore(&d, tables); got.Coefficient != 1.1 {
			t.Errorf("coef = %v, want 1.1", got.Coefficient)
		}
	})
}

func TestEquipmentScore(t *testing.T) {
	t.Run("armada kosong", func(t *testing.T) {
		got := EquipmentScore(&dto.Diagnostics{}, testYear)
		if got.Raw != 0 || got.Coefficient != 1.2 {
			t.Errorf("got {%v %v}, want {0 1.2}", got.Raw, got.Coefficient)
		}
	})

	t.Run("traktor baru dengan navesnoe", func(t *testing.T) {
		d := dto.Diagnostics{Equipment: []dto.EquipmentRecord{
			{Type: "tractor", Year: testYear - 2, Attachments: dto.Attachments{"плуг"}},
		}}
		got := EquipmentScore(&d, testYear)
		if got.Raw != 25 || got.Coefficient != 1.0 {
			t.Errorf("got {%v %v}, want {25 1.0}", got.Raw, got.Coefficient)
		}
	})

	t.Run("tangga umur", func(t *testing.T) {
		tests := []struct {
			year int
			want float64
		}{
			{testYear, 20},
			{testYear - 3, 20},
			{testYear - 4, 15},
			{testYear - 7, 15},
			{testYear - 8, 10},
			{testYear - 15, 10},
			{testYear - 16, 5},
		}
		for _, tt := range tests {
			d := dto.Diagnostics{Equipment: []dto.EquipmentRecord{
				{Type: "tractor", Year: dto.FlexInt(tt.year)},
			}}
			if got := EquipmentScore(&d, testYear); got.Raw != tt.want {
				t.Errorf("year %d: raw = %v, want %v", tt.year, got.Raw, tt.want)
			}
		}
	})

	t.Run("armada tua menaikkan koefisien", func(t *testing.T) {
		d := dto.Diagnostics{Equipment: []dto.EquipmentRecord{
			{Type: "tractor", Year: testYear - 20},
		}}
		if got := EquipmentScore(&d, testYear); got.Coefficient != 1.2 {
			t.Errorf("coef = %v, want 1.2", got.Coefficient)
		}
	})

	t.Run("tahun kosong dianggap baru", func(t *testing.T) {
		d := dto.Diagnostics{Equipment: []dto.EquipmentRecord{
			{Type: "tractor", Year: 0},
		}}
		got := EquipmentScore(&d, testYear)
		if got.Raw != 20 || got.Coefficient != 1.0 {
			t.Errorf("got {%v %v}, want {20 1.0}", got.Raw, got.Coefficient)
		}
	})
}

func TestStaffScore(t *testing.T) {
	tests := []struct {
		name       string
		perm, seas int
		wantRaw    float64
		wantCoef   float64
	}{
		{"tanpa karyawan", 0, 0, 0, 1.2},
		{"usaha kecil", 2, 0, 14, 1.2},
		{"usaha menengah", 5, 0, 35, 1.1},
		{"kedua cap aktif", 12, 20, 100, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := dto.Diagnostics{EmployeesPermanent: tt.perm, EmployeesSeasonal: tt.seas}
			got := StaffScore(&d)
			if got.Raw != tt.wantRaw || got.Coefficient != tt.wantCoef {
				t.Errorf("got {%v %v}, want {%v %v}", got.Raw, got.Coefficient, tt.wantRaw, tt.wantCoef)
			}
		})
	}
}

// Menambah satu item dengan atribut non-negatif tidak boleh menurunkan
// skor mentah kategorinya.
func TestCategoryScoresMonotonicUnderAddition(t *testing.T) {
	tables := coeffModel.Default()

	t.Run("livestock", func(t *testing.T) {
		added := []dto.AnimalRecord{
			{Type: "cows", Direction: "milk", Count: 5, MilkYield: 6000},
			{Type: "pigs", Direction: "meat", Count: 1},
			{Type: "hives", Count: 3},
			{Type: "ostrich", Count: 100}, // tak dikenal → kontribusi nol
			{Type: "cows", Direction: "milk", Count: 0},
		}
		d := richDiagnostics()
		before := LivestockScore(d, tables).Raw
		for _, a := range added {
			d.Animals = append(d.Animals, a)
			after := LivestockScore(d, tables).Raw
			if after < before {
				t.Errorf("tambah %s/%s: raw turun %v → %v", a.Type, a.Direction, before, after)
			}
			before = after
		}
	})

	t.Run("crop", func(t *testing.T) {
		added := []dto.CropRecord{
			{Type: "wheat", Area: 5, Yield: 20, PricePerKg: 12},
			{Type: "garlic", Area: 1, Yield: 15},
			{Type: "soy", Area: 0, Yield: 10}, // luas nol → kontribusi nol
			{Type: "corn", Area: 3, Yield: 0},
		}
		d := richDiagnostics()
		before := CropScore(d, tables).Raw
		for _, cr := range added {
			d.Crops = append(d.Crops, cr)
			after := CropScore(d, tables).Raw
			if after < before {
				t.Errorf("tambah %s: raw turun %v → %v", cr.Type, before, after)
			}
			before = after
		}
	})

	t.Run("equipment", func(t *testing.T) {
		added := []dto.EquipmentRecord{
			{Type: "tractor", Year: testYear},
			{Type: "combine", Year: testYear - 30}, // tua sekalipun tetap ≥ 5
			{Type: "seeder", Year: 0},
			{Type: "plow", Year: testYear - 10, Attachments: dto.Attachments{"борона"}},
		}
		d := richDiagnostics()
		before := EquipmentScore(d, testYear).Raw
		for _, e := range added {
			d.Equipment = append(d.Equipment, e)
			after := EquipmentScore(d, testYear).Raw
			if after < before {
				t.Errorf("tambah %s: raw turun %v → %v", e.Type, before, after)
			}
			before = after
		}
	})
}

func TestFinanceScore(t *testing.T) {
	tables := coeffModel.Default()

	t.Run("tanpa usaha tetap dapat skor dasar", func(t *testing.T) {
		got := FinanceScore(&dto.Diagnostics{}, tables)
		if got.Raw != 10 || got.Coefficient != 1.0 {
			t.Errorf("got {%v %v}, want {10 1.0}", got.Raw, got.Coefficient)
		}
	})

	t.Run("pendapatan susu menengah", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "cows", Direction: "milk", Count: 10, MilkYield: 6000, MilkPrice: 40},
		}}
		got := FinanceScore(&d, tables)
		// 10 × 6000 × 40 / 1000 = 2400 → tangga 70; 40/35 < 1.2 → 1.1
		if got.Raw != 70 || got.Coefficient != 1.1 {
			t.Errorf("got {%v %v}, want {70 1.1}", got.Raw, got.Coefficient)
		}
	})

	t.Run("harga jual rendah menaikkan koefisien", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "cows", Direction: "milk", Count: 10, MilkYield: 6000, MilkPrice: 25},
		}}
		if got := FinanceScore(&d, tables); got.Coefficient != 1.2 {
			t.Errorf("coef = %v, want 1.2", got.Coefficient)
		}
	})

	t.Run("harga kosong pakai default tanpa sampel rasio", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "cows", Direction: "milk", Count: 10, MilkYield: 6000},
		}}
		got := FinanceScore(&d, tables)
		// 10 × 6000 × 35 / 1000 = 2100 → 70; tanpa sampel harga → koef 1.0
		if got.Raw != 70 || got.Coefficient != 1.0 {
			t.Errorf("got {%v %v}, want {70 1.0}", got.Raw, got.Coefficient)
		}
	})

	t.Run("pendapatan besar", func(t *testing.T) {
		d := dto.Diagnostics{Animals: []dto.AnimalRecord{
			{Type: "cows", Direction: "milk", Count: 100, MilkYield: 6000, MilkPrice: 40},
		}}
		if got := FinanceScore(&d, tables); got.Raw != 100 {
			t.Errorf("raw = %v, want 100", got.Raw)
		}
	})
}
