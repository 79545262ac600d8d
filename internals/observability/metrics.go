package observability

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecomputeSuccess = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agroferma_recompute_success_total",
		Help: "Jumlah rekomputasi rating petani yang sukses",
	})
	RecomputeFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agroferma_recompute_failed_total",
		Help: "Jumlah rekomputasi rating petani yang gagal",
	})
	QuestCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agroferma_quest_completed_total",
		Help: "Jumlah quest harian yang diselesaikan",
	})
	AchievementUnlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agroferma_achievement_unlocked_total",
		Help: "Jumlah achievement yang dibuka",
	})
	RecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "agroferma_recompute_duration_seconds",
		Help:    "Durasi rekomputasi per petani",
		Buckets: prometheus.DefBuckets,
	})
)

// StartMetricsServer menyajikan /metrics di listener net/http terpisah,
// supaya scrape Prometheus tidak lewat stack Fiber.
func StartMetricsServer(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("📊 Metrics listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[ERROR] metrics server: %v", err)
		}
	}()
}
