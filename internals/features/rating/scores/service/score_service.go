package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agroferma_backend/internals/configs"
	"agroferma_backend/internals/constants"
	coeffService "agroferma_backend/internals/features/rating/coefficients/service"
	diagnosticsDto "agroferma_backend/internals/features/rating/diagnostics/dto"
	diagnosticsModel "agroferma_backend/internals/features/rating/diagnostics/model"
	profileModel "agroferma_backend/internals/features/rating/profiles/model"
	scoreDto "agroferma_backend/internals/features/rating/scores/dto"
	scoreModel "agroferma_backend/internals/features/rating/scores/model"
	scoring "agroferma_backend/internals/features/rating/scoring/service"
	"agroferma_backend/internals/observability"

	coeffModel "agroferma_backend/internals/features/rating/coefficients/model"
)

// ErrFarmerNotFound: profil petani tidak ada samasekali.
var ErrFarmerNotFound = errors.New("farmer not found")

type ScoreService struct {
	DB *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{DB: db}
}

// LoadDiagnostics mengambil profil + diagnostics dan men-decode-nya.
// Diagnostics yang belum diisi → nilai nol (degradasi, bukan error);
// profil yang tidak ada → ErrFarmerNotFound.
func (s *ScoreService) LoadDiagnostics(ctx context.Context, farmerID string) (*diagnosticsDto.Diagnostics, *profileModel.FarmerProfile, error) {
	var profile profileModel.FarmerProfile
	if err := s.DB.WithContext(ctx).
		Where("farmer_profile_user_id = ?", farmerID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrFarmerNotFound
		}
		return nil, nil, err
	}

	var raw diagnosticsModel.FarmDiagnostics
	err := s.DB.WithContext(ctx).
		Where("farm_diagnostics_user_id = ?", farmerID).
		First(&raw).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		d, derr := diagnosticsDto.FromModel(nil, profile.FarmerProfileRegion)
		return d, &profile, derr
	case err != nil:
		return nil, nil, err
	}

	d, err := diagnosticsDto.FromModel(&raw, profile.FarmerProfileRegion)
	if err != nil {
		return nil, nil, err
	}
	return d, &profile, nil
}

// RecomputeOne menjalankan pipeline penuh untuk satu petani dan
// meng-upsert hasilnya. Idempoten: dua kali jalan → baris identik.
func (s *ScoreService) RecomputeOne(ctx context.Context, farmerID string) (*scoreModel.FarmerScore, error) {
	start := time.Now()

	d, _, err := s.LoadDiagnostics(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	tables := coeffService.Get()
	breakdown := scoring.Score(d, tables, time.Now().Year())

	rec := &scoreModel.FarmerScore{
		FarmerScoreUserID: farmerID,

		FarmerScoreRegion:    breakdown.Normalized[coeffModel.CategoryRegion],
		FarmerScoreLand:      breakdown.Normalized[coeffModel.CategoryLand],
		FarmerScoreLivestock: breakdown.Normalized[coeffModel.CategoryLivestock],
		FarmerScoreCrop:      breakdown.Normalized[coeffModel.CategoryCrop],
		FarmerScoreTech:      breakdown.Normalized[coeffModel.CategoryTech],
		FarmerScoreStaff:     breakdown.Normalized[coeffModel.CategoryStaff],
		FarmerScoreFinance:   breakdown.Normalized[coeffModel.CategoryFinance],

		FarmerScoreCropMaster:        breakdown.Nominations[coeffModel.NominationCropMaster],
		FarmerScoreLivestockChampion: breakdown.Nominations[coeffModel.NominationLivestockChampion],
		FarmerScoreAgroInnovator:     breakdown.Nominations[coeffModel.NominationAgroInnovator],

		FarmerScoreTotal: breakdown.Overall,
		FarmerScoreLevel: breakdown.Level,

		FarmerScoreAchievements: scoreModel.EncodeAchievements(nil),
		FarmerScoreLastUpdated:  time.Now(),
	}

	if err := s.UpsertScore(ctx, rec); err != nil {
		return nil, err
	}

	observability.RecomputeDuration.Observe(time.Since(start).Seconds())
	return rec, nil
}

// UpsertScore: satu statement INSERT ... ON CONFLICT DO UPDATE yang
// mengganti seluruh field turunan. Set achievements TIDAK ikut di-assign
// saat conflict — keanggotaan bukan field turunan.
func (s *ScoreService) UpsertScore(ctx context.Context, rec *scoreModel.FarmerScore) error {
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "farmer_score_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"farmer_score_region",
			"farmer_score_land",
			"farmer_score_livestock",
			"farmer_score_crop",
			"farmer_score_tech",
			"farmer_score_staff",
			"farmer_score_finance",
			"farmer_score_crop_master",
			"farmer_score_livestock_champion",
			"farmer_score_agro_innovator",
			"farmer_score_total",
			"farmer_score_level",
			"farmer_score_last_updated",
		}),
	}).Create(rec).Error
}

// EnsureScoreRow membuat baris skor kosong kalau belum ada (sentuhan
// pertama lewat quest/achievement).
func (s *ScoreService) EnsureScoreRow(tx *gorm.DB, farmerID string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "farmer_score_user_id"}},
		DoNothing: true,
	}).Create(&scoreModel.FarmerScore{
		FarmerScoreUserID:       farmerID,
		FarmerScoreAchievements: scoreModel.EncodeAchievements(nil),
		FarmerScoreLastUpdated:  time.Now(),
	}).Error
}

// AddPoints menambah total_score secara atomik (satu UPDATE, tanpa
// read-modify-write) — jalur bonus quest/achievement.
func (s *ScoreService) AddPoints(tx *gorm.DB, farmerID string, points int) error {
	return tx.Model(&scoreModel.FarmerScore{}).
		Where("farmer_score_user_id = ?", farmerID).
		UpdateColumn("farmer_score_total", gorm.Expr("farmer_score_total + ?", points)).Error
}

// RecomputeAll menjalankan pipeline untuk seluruh petani lewat worker pool
// ber-limit. Kegagalan satu petani diisolasi: dicatat, dihitung, batch
// jalan terus.
func (s *ScoreService) RecomputeAll(ctx context.Context) (*scoreDto.BatchResult, error) {
	var ids []string
	if err := s.DB.WithContext(ctx).
		Model(&profileModel.FarmerProfile{}).
		Where("farmer_profile_role = ?", constants.RoleFarmer).
		Order("farmer_profile_user_id ASC").
		Pluck("farmer_profile_user_id", &ids).Error; err != nil {
		return nil, err
	}

	workers, _ := strconv.Atoi(configs.GetEnv("RECOMPUTE_WORKERS", "8"))
	if workers < 1 {
		workers = 1
	}

	results := make([]scoreDto.FarmerResult, len(ids))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			// timeout per petani: satu record patologis tidak boleh
			// menyandera seluruh batch
			unitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			rec, err := s.RecomputeOne(unitCtx, id)
			if err != nil {
				log.Printf("[ERROR] recompute petani %s: %v", id, err)
				observability.RecomputeFailed.Inc()
				results[i] = scoreDto.FarmerResult{
					FarmerID: id,
					Status:   "error",
					Error:    err.Error(),
				}
				return nil // isolasi: jangan batalkan batch
			}

			observability.RecomputeSuccess.Inc()
			results[i] = scoreDto.FarmerResult{
				FarmerID:   id,
				Status:     "success",
				TotalScore: rec.FarmerScoreTotal,
				Level:      rec.FarmerScoreLevel,
			}
			return nil
		})
	}
	_ = g.Wait()

	out := &scoreDto.BatchResult{
		TotalFarmers: len(ids),
		Results:      results,
	}
	for _, r := range results {
		if r.Status == "success" {
			out.SuccessCount++
		} else {
			out.ErrorCount++
		}
	}
	return out, nil
}
