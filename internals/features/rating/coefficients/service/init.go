package service

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/bytedance/sonic"

	"agroferma_backend/internals/features/rating/coefficients/model"
)

var (
	mu     sync.RWMutex
	tables *model.Tables
)

// Init memuat tabel koefisien: default kanonik, lalu overlay dari file JSON
// kalau path diisi. Dipanggil sekali dari main sebelum route naik.
func Init(path string) error {
	t := model.Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("baca tabel koefisien %s: %w", path, err)
		}
		if err := sonic.Unmarshal(raw, t); err != nil {
			return fmt.Errorf("parse tabel koefisien %s: %w", path, err)
		}
		log.Printf("[INFO] Tabel koefisien dimuat dari %s (versi %s)", path, t.Version)
	} else {
		log.Printf("[INFO] Tabel koefisien default dipakai (versi %s)", t.Version)
	}

	mu.Lock()
	tables = t
	mu.Unlock()
	return nil
}

// Get mengembalikan tabel aktif. Panic kalau Init belum dipanggil —
// itu kesalahan urutan boot, bukan kondisi runtime.
func Get() *model.Tables {
	mu.RLock()
	defer mu.RUnlock()
	if tables == nil {
		panic("coefficients: Init belum dipanggil")
	}
	return tables
}

// SetForTest mengganti tabel aktif, hanya untuk test.
func SetForTest(t *model.Tables) {
	mu.Lock()
	tables = t
	mu.Unlock()
}
