package model

import (
	"time"

	"gorm.io/datatypes"
)

// FarmDiagnostics adalah data operasional mentah milik petani. Diisi oleh
// editor diagnostik (kolaborator eksternal) — engine rating hanya membaca.
type FarmDiagnostics struct {
	FarmDiagnosticsID                 uint           `gorm:"column:farm_diagnostics_id;primaryKey" json:"farm_diagnostics_id"`
	FarmDiagnosticsUserID             string         `gorm:"column:farm_diagnostics_user_id;uniqueIndex;not null" json:"farm_diagnostics_user_id"` // ID petani
	FarmDiagnosticsLandArea           float64        `gorm:"column:farm_diagnostics_land_area;default:0" json:"farm_diagnostics_land_area"`         // hektar
	FarmDiagnosticsLandOwned          float64        `gorm:"column:farm_diagnostics_land_owned;default:0" json:"farm_diagnostics_land_owned"`
	FarmDiagnosticsLandRented         float64        `gorm:"column:farm_diagnostics_land_rented;default:0" json:"farm_diagnostics_land_rented"`
	FarmDiagnosticsAnimals            datatypes.JSON `gorm:"column:farm_diagnostics_animals" json:"farm_diagnostics_animals"`
	FarmDiagnosticsCrops              datatypes.JSON `gorm:"column:farm_diagnostics_crops" json:"farm_diagnostics_crops"`
	FarmDiagnosticsEquipment          datatypes.JSON `gorm:"column:farm_diagnostics_equipment" json:"farm_diagnostics_equipment"`
	FarmDiagnosticsEmployeesPermanent int            `gorm:"column:farm_diagnostics_employees_permanent;default:0" json:"farm_diagnostics_employees_permanent"`
	FarmDiagnosticsEmployeesSeasonal  int            `gorm:"column:farm_diagnostics_employees_seasonal;default:0" json:"farm_diagnostics_employees_seasonal"`
	CreatedAt                         time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                         time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FarmDiagnostics) TableName() string {
	return "farm_diagnostics"
}
