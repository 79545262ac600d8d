package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	coeffModel "agroferma_backend/internals/features/rating/coefficients/model"
	coeffService "agroferma_backend/internals/features/rating/coefficients/service"
	diagnosticsModel "agroferma_backend/internals/features/rating/diagnostics/model"
	profileModel "agroferma_backend/internals/features/rating/profiles/model"
	scoreDto "agroferma_backend/internals/features/rating/scores/dto"
	scoreModel "agroferma_backend/internals/features/rating/scores/model"
)

func newScoreTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	coeffService.SetForTest(coeffModel.Default())

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&profileModel.FarmerProfile{},
		&diagnosticsModel.FarmDiagnostics{},
		&scoreModel.FarmerScore{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	ctrl := NewScoreController(db)
	app.Get("/api/score", ctrl.GetOwn)
	app.Post("/api/score/recompute", ctrl.Recompute)
	app.Post("/api/score/recompute-all", ctrl.RecomputeAll)
	app.Get("/api/score/:farmer_id", ctrl.GetByFarmerID)
	return app, db
}

func seedScoredFarmer(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	if err := db.Create(&profileModel.FarmerProfile{
		FarmerProfileUserID: userID,
		FarmerProfileRegion: "Краснодарский край",
		FarmerProfileRole:   "farmer",
	}).Error; err != nil {
		t.Fatalf("seed profil: %v", err)
	}
	if err := db.Create(&diagnosticsModel.FarmDiagnostics{
		FarmDiagnosticsUserID:             userID,
		FarmDiagnosticsLandArea:           100,
		FarmDiagnosticsLandOwned:          80,
		FarmDiagnosticsEmployeesPermanent: 8,
		FarmDiagnosticsAnimals:            datatypes.JSON(`[{"type":"cows","direction":"milk","count":10,"milkYield":6000}]`),
		FarmDiagnosticsCrops:              datatypes.JSON(`[{"type":"wheat","area":10,"yield":40}]`),
	}).Error; err != nil {
		t.Fatalf("seed diagnostics: %v", err)
	}
}

func postJSON(t *testing.T, app *fiber.App, path, payload string) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != "" {
		body = bytes.NewBufferString(payload)
	}
	req := httptest.NewRequest(http.MethodPost, path, body)
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("baca body: %v", err)
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := sonic.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode body %s: %v", body, err)
	}
	if err := sonic.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestRecomputeSingleFarmer(t *testing.T) {
	app, db := newScoreTestApp(t)
	seedScoredFarmer(t, db, "f1")

	resp := postJSON(t, app, "/api/score/recompute", `{"farmer_id":"f1"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var data struct {
		Success bool                   `json:"success"`
		Rating  scoreDto.RatingResponse `json:"rating"`
	}
	decodeData(t, resp, &data)
	if !data.Success || data.Rating.TotalScore <= 0 {
		t.Errorf("data = %+v, want success dengan total > 0", data)
	}
	if data.Rating.LivestockScore <= 0 {
		t.Errorf("livestock_score = %v, want > 0", data.Rating.LivestockScore)
	}

	// hasilnya bisa dibaca balik
	req := httptest.NewRequest(http.MethodGet, "/api/score/f1", nil)
	getResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request get: %v", err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Errorf("get status = %d, want 200", getResp.StatusCode)
	}
}

func TestRecomputeRejectsOverlongFarmerID(t *testing.T) {
	app, _ := newScoreTestApp(t)

	long := `{"farmer_id":"` + strings.Repeat("x", 65) + `"}`
	resp := postJSON(t, app, "/api/score/recompute", long)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRecomputeUnknownFarmer(t *testing.T) {
	app, _ := newScoreTestApp(t)

	resp := postJSON(t, app, "/api/score/recompute", `{"farmer_id":"ghost"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRecomputeWithoutFarmerIDRunsBatch(t *testing.T) {
	app, db := newScoreTestApp(t)
	seedScoredFarmer(t, db, "f1")

	resp := postJSON(t, app, "/api/score/recompute", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var data struct {
		Success      bool                   `json:"success"`
		TotalFarmers int                    `json:"total_farmers"`
		SuccessCount int                    `json:"success_count"`
		ErrorCount   int                    `json:"error_count"`
		Results      []scoreDto.FarmerResult `json:"results"`
	}
	decodeData(t, resp, &data)
	if data.TotalFarmers != 1 || data.SuccessCount != 1 || data.ErrorCount != 0 {
		t.Errorf("batch = %+v, want 1/1/0", data)
	}
}

func TestGetScoreNotComputed(t *testing.T) {
	app, _ := newScoreTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/score/f1", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetOwnCreatesEmptyRow(t *testing.T) {
	app, db := newScoreTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/score", nil)
	req.Header.Set("X-User-Id", "9")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var data struct {
		Rating scoreDto.RatingResponse `json:"rating"`
	}
	decodeData(t, resp, &data)
	if data.Rating.TotalScore != 0 || data.Rating.Level != 1 {
		t.Errorf("rating = %+v, want baris kosong", data.Rating)
	}

	var count int64
	db.Model(&scoreModel.FarmerScore{}).Count(&count)
	if count != 1 {
		t.Errorf("baris skor = %d, want 1", count)
	}
}

func TestGetOwnWithoutIdentity(t *testing.T) {
	app, _ := newScoreTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/score", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
