package service

import (
	"strings"

	coeffModel "agroferma_backend/internals/features/rating/coefficients/model"
	"agroferma_backend/internals/features/rating/diagnostics/dto"
)

// CategoryResult adalah hasil satu scorer: skor mentah 0–100 plus koefisien
// kesulitan 1.0–1.2. Koefisien MENAIKKAN bobot untuk kondisi sulit (region
// utara, armada tua, usaha kecil) — kompensasi, bukan penalti.
type CategoryResult struct {
	Raw         float64 `json:"raw"`
	Coefficient float64 `json:"coefficient"`
}

func (r CategoryResult) Adjusted() float64 { return r.Raw * r.Coefficient }

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

// RegionScore: skor dasar kesuburan region + koefisien kelas kesulitan.
// Bobot 0 di konfigurasi kanonik, tapi tetap dihitung dan disimpan.
func RegionScore(region string, t *coeffModel.Tables) CategoryResult {
	base := 50.0
	if v, ok := t.RegionBaseScores[region]; ok {
		base = v
	}

	coef := 1.0
	switch {
	case containsFold(t.NorthernRegions, region):
		coef = 1.2
	case containsFold(t.SiberiaFarEast, region):
		coef = 1.15
	case containsFold(t.MountainRegions, region):
		coef = 1.1
	}
	return CategoryResult{Raw: base, Coefficient: coef}
}

// LandScore: luas (50 poin penuh di 200 ha) + porsi kepemilikan (50 poin).
func LandScore(d *dto.Diagnostics, t *coeffModel.Tables) CategoryResult {
	coef := 1.0
	switch {
	case containsFold(t.PoorSoilRegions, d.Region):
		coef = 1.2
	case containsFold(t.MediumSoilRegions, d.Region):
		coef = 1.1
	}

	if d.LandArea <= 0 {
		return CategoryResult{Raw: 0, Coefficient: coef}
	}

	areaScore := capAt(d.LandArea/100*50, 100)
	ownershipScore := d.LandOwned / d.LandArea * 50

	return CategoryResult{Raw: capAt(areaScore+ownershipScore, 100), Coefficient: coef}
}

func breedMatches(breed string, list []string) bool {
	b := strings.ToLower(breed)
	if b == "" {
		return false
	}
	for _, item := range list {
		if strings.Contains(b, strings.ToLower(item)) {
			return true
		}
	}
	return false
}

// LivestockScore: nilai produktivitas dasar per type/direction × count/10,
// bonus produktivitas untuk hasil susu/daging di atas ambang.
func LivestockScore(d *dto.Diagnostics, t *coeffModel.Tables) CategoryResult {
	total := 0.0
	hasRare := false
	hasUncommon := false

	for _, animal := range d.Animals {
		if breedMatches(animal.Breed, t.RareBreeds) {
			hasRare = true
		} else if breedMatches(animal.Breed, t.UncommonBreeds) {
			hasUncommon = true
		}

		base, known := t.ProductivityFor(animal.Type, animal.Direction)
		if !known {
			continue
		}

		bonus := 1.0
		if animal.Direction == "milk" && float64(animal.MilkYield) > 5000 {
			bonus = 1.3
		} else if animal.Direction == "meat" && float64(animal.MeatYield) > 300 {
			bonus = 1.2
		}

		total += float64(animal.Count) / 10 * base * bonus
	}

	coef := 1.0
	if hasRare {
		coef = 1.2
	} else if hasUncommon {
		coef = 1.1
	}
	return CategoryResult{Raw: capAt(total, 100), Coefficient: coef}
}

// CropScore: rasio panen terhadap benchmark jenis × luas × faktor harga.
func CropScore(d *dto.Diagnostics, t *coeffModel.Tables) CategoryResult {
	total := 0.0
	hasComplex := false
	hasModerate := false

	for _, crop := range d.Crops {
		if containsFold(t.ComplexCrops, crop.Type) {
			hasComplex = true
		} else if containsFold(t.ModerateCrops, crop.Type) {
			hasModerate = true
		}

		area := float64(crop.Area)
		yield := float64(crop.Yield)
		if area <= 0 || yield <= 0 {
			continue
		}

		price := float64(crop.PricePerKg)
		if price <= 0 {
			price = t.DefaultCropPrice
		}

		yieldRatio := (yield / area) / t.BenchmarkFor(crop.Type)
		priceFactor := capAt(price/10, 2.0)
		total += yieldRatio * area * priceFactor * 5
	}

	coef := 1.0
	if hasComplex {
		coef = 1.2
	} else if hasModerate {
		coef = 1.1
	}
	return CategoryResult{Raw: capAt(total, 100), Coefficient: coef}
}

// EquipmentScore: skor umur bertingkat + bonus navesnoe. Koefisien justru
// naik untuk armada tua/kosong — penyesuaian ekuitas.
func EquipmentScore(d *dto.Diagnostics, currentYear int) CategoryResult {
	if len(d.Equipment) == 0 {
		return CategoryResult{Raw: 0, Coefficient: 1.2}
	}

	total := 0.0
	ageSum := 0
	for _, item := range d.Equipment {
		year := int(item.Year)
		if year <= 0 {
			year = currentYear
		}
		age := currentYear - year
		if age < 0 {
			age = 0
		}
		ageSum += age

		var ageScore float64
		switch {
		case age <= 3:
			ageScore = 20
		case age <= 7:
			ageScore = 15
		case age <= 15:
			ageScore = 10
		default:
			ageScore = 5
		}

		if item.Attachments.Present() {
			ageScore += 5
		}
		total += ageScore
	}

	avgAge := float64(ageSum) / float64(len(d.Equipment))
	coef := 1.0
	switch {
	case avgAge > 15:
		coef = 1.2
	case avgAge > 7:
		coef = 1.1
	}
	return CategoryResult{Raw: capAt(total, 100), Coefficient: coef}
}

// StaffScore: 7 poin per karyawan tetap (cap 70), 2 per musiman (cap 30).
func StaffScore(d *dto.Diagnostics) CategoryResult {
	permanentScore := capAt(float64(d.EmployeesPermanent)*7, 70)
	seasonalScore := capAt(float64(d.EmployeesSeasonal)*2, 30)

	coef := 1.0
	switch {
	case d.EmployeesPermanent < 3:
		coef = 1.2
	case d.EmployeesPermanent < 7:
		coef = 1.1
	}
	return CategoryResult{Raw: permanentScore + seasonalScore, Coefficient: coef}
}

// FinanceScore: estimasi potensi pendapatan (ribuan ₽) → tangga skor tetap.
// Koefisien dari level harga jual relatif terhadap harga default.
func FinanceScore(d *dto.Diagnostics, t *coeffModel.Tables) CategoryResult {
	revenue := 0.0
	priceRatioSum := 0.0
	priceSamples := 0

	for _, animal := range d.Animals {
		count := float64(animal.Count)
		switch animal.Direction {
		case "milk":
			yield := float64(animal.MilkYield)
			if yield <= 0 {
				yield = t.DefaultMilkYield
			}
			price := float64(animal.MilkPrice)
			if price <= 0 {
				price = t.DefaultMilkPrice
			} else {
				priceRatioSum += price / t.DefaultMilkPrice
				priceSamples++
			}
			revenue += count * yield * price / 1000
		case "meat":
			yield := float64(animal.MeatYield)
			if yield <= 0 {
				yield = t.DefaultMeatYield
			}
			price := float64(animal.MeatPrice)
			if price <= 0 {
				price = t.DefaultMeatPrice
			} else {
				priceRatioSum += price / t.DefaultMeatPrice
				priceSamples++
			}
			revenue += count * yield * price / 1000
		}
	}

	for _, crop := range d.Crops {
		price := float64(crop.PricePerKg)
		if price <= 0 {
			price = t.DefaultCropPrice
		} else {
			priceRatioSum += price / t.DefaultCropPrice
			priceSamples++
		}
		revenue += float64(crop.Yield) * price / 1000
	}

	var raw float64
	switch {
	case revenue > 10000:
		raw = 100
	case revenue > 5000:
		raw = 85
	case revenue > 1000:
		raw = 70
	case revenue > 500:
		raw = 50
	case revenue > 100:
		raw = 30
	default:
		raw = 10
	}

	coef := 1.0
	if priceSamples > 0 {
		avgRatio := priceRatioSum / float64(priceSamples)
		switch {
		case avgRatio < 0.8:
			coef = 1.2
		case avgRatio < 1.2:
			coef = 1.1
		}
	}
	return CategoryResult{Raw: raw, Coefficient: coef}
}
