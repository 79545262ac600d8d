package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"agroferma_backend/internals/features/rating/diagnostics/model"
)

/* ===============================
   Tipe angka toleran
   Sumber lama menyimpan angka kadang sebagai string ("2015", "12,5").
   Kosong/null → nol; string sampah → error (petani itu gagal dihitung,
   batch jalan terus).
=================================*/

type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(raw []byte) error {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return fmt.Errorf("nilai numerik tidak valid: %q", s)
	}
	*f = FlexFloat(v)
	return nil
}

type FlexInt int

func (i *FlexInt) UnmarshalJSON(raw []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(raw); err != nil {
		return err
	}
	*i = FlexInt(f)
	return nil
}

// Attachments bisa berupa string bebas ("плуг, сеялка") atau list.
type Attachments []string

func (a *Attachments) UnmarshalJSON(raw []byte) error {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		*a = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var list []string
		if err := sonic.Unmarshal(raw, &list); err != nil {
			return fmt.Errorf("attachments tidak valid: %w", err)
		}
		*a = list
		return nil
	}
	var one string
	if err := sonic.Unmarshal(raw, &one); err != nil {
		return fmt.Errorf("attachments tidak valid: %w", err)
	}
	if strings.TrimSpace(one) == "" {
		*a = nil
		return nil
	}
	*a = []string{one}
	return nil
}

func (a Attachments) Present() bool {
	for _, v := range a {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

/* ===============================
   Record varian per jenis
=================================*/

type AnimalRecord struct {
	Type      string    `json:"type"`
	Direction string    `json:"direction"`
	Breed     string    `json:"breed"`
	Count     FlexInt   `json:"count"`
	MilkYield FlexFloat `json:"milkYield"`
	MeatYield FlexFloat `json:"meatYield"`
	MilkPrice FlexFloat `json:"milkPrice"`
	MeatPrice FlexFloat `json:"meatPrice"`
}

type CropRecord struct {
	Type       string    `json:"type"`
	Area       FlexFloat `json:"area"`
	Yield      FlexFloat `json:"yield"`
	PricePerKg FlexFloat `json:"pricePerKg"`
}

type EquipmentRecord struct {
	Type        string      `json:"type"`
	Year        FlexInt     `json:"year"`
	Attachments Attachments `json:"attachments"`
}

// Diagnostics adalah bentuk ter-decode yang dikonsumsi scorer.
type Diagnostics struct {
	Region             string
	LandArea           float64
	LandOwned          float64
	LandRented         float64
	Animals            []AnimalRecord
	Crops              []CropRecord
	Equipment          []EquipmentRecord
	EmployeesPermanent int
	EmployeesSeasonal  int
}

/* ===============================
   Decode dari kolom JSON
=================================*/

func decodeList[T any](raw datatypes.JSON, label string) ([]T, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return nil, nil
	}
	var out []T
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", label, err)
	}
	return out, nil
}

// FromModel men-decode record mentah ke Diagnostics. Field hilang → nol,
// tapi isi yang benar-benar rusak (mis. year = "старый") → error.
func FromModel(m *model.FarmDiagnostics, region string) (*Diagnostics, error) {
	if m == nil {
		return &Diagnostics{Region: region}, nil
	}

	animals, err := decodeList[AnimalRecord](m.FarmDiagnosticsAnimals, "animals")
	if err != nil {
		return nil, err
	}
	crops, err := decodeList[CropRecord](m.FarmDiagnosticsCrops, "crops")
	if err != nil {
		return nil, err
	}
	equipment, err := decodeList[EquipmentRecord](m.FarmDiagnosticsEquipment, "equipment")
	if err != nil {
		return nil, err
	}

	return &Diagnostics{
		Region:             region,
		LandArea:           m.FarmDiagnosticsLandArea,
		LandOwned:          m.FarmDiagnosticsLandOwned,
		LandRented:         m.FarmDiagnosticsLandRented,
		Animals:            animals,
		Crops:              crops,
		Equipment:          equipment,
		EmployeesPermanent: m.FarmDiagnosticsEmployeesPermanent,
		EmployeesSeasonal:  m.FarmDiagnosticsEmployeesSeasonal,
	}, nil
}
