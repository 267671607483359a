package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kter/goiryoku-kojo/internal/config"
	"github.com/kter/goiryoku-kojo/internal/gemini"
	"github.com/kter/goiryoku-kojo/internal/handler"
	"github.com/kter/goiryoku-kojo/internal/limiter"
	"github.com/kter/goiryoku-kojo/internal/store"
)

// Prometheus metrics
var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)
)

// metricsMiddleware collects Prometheus metrics for each request
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(duration)
	}
}

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.ProjectID == "" {
		log.Fatal("GCP_PROJECT is required")
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	ctx := context.Background()
	wordStore, err := store.NewWordStore(ctx, cfg.ProjectID, cfg.WordsCollection)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer wordStore.Close()

	aiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	log.Printf("Using Gemini model: %s", cfg.GeminiModel)

	rateLimiter := limiter.New()

	generateHandler := handler.NewGenerateHandler(wordStore, aiClient)
	wordsHandler := handler.NewWordsHandler(wordStore)
	scoreHandler := handler.NewScoreHandler(aiClient, rateLimiter)

	r := handler.NewRouter(generateHandler, wordsHandler, scoreHandler, metricsMiddleware())

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Printf("goiryoku-kojo backend starting on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
