package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kter/goiryoku-kojo/internal/model"
)

// WordStore is the slice of the Firestore store the handlers need.
type WordStore interface {
	WordsByDateRange(ctx context.Context, start, end string) ([]model.Word, error)
	RecentWords(ctx context.Context, days int) ([]model.Word, error)
	ExistingDates(ctx context.Context, start, end string) ([]string, error)
	SaveWords(ctx context.Context, words []model.Word) (int, error)
	WordByDate(ctx context.Context, date string) (*model.Word, error)
}

// NewRouter wires the API routes and the cross-cutting middleware. Extra
// middlewares (metrics collection in the server binary) run between the
// request-ID and CORS layers.
func NewRouter(generate *GenerateHandler, words *WordsHandler, score *ScoreHandler, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(RequestID())
	r.Use(middlewares...)
	r.Use(CORS())

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/generate-words", generate.Generate)
		api.GET("/words", words.List)
		api.GET("/words/:date", words.Get)
		api.POST("/score", score.Score)
	}

	return r
}
