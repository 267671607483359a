package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/kter/goiryoku-kojo/internal/dates"
	"github.com/kter/goiryoku-kojo/internal/gemini"
	"github.com/kter/goiryoku-kojo/internal/model"
)

const (
	// generateWindowDays is how far ahead of today the daily run fills in.
	generateWindowDays = 7
	// recentLookbackDays bounds the recently-used words passed to the model
	// as a duplication hint.
	recentLookbackDays = 10
)

// GenerateHandler fills in vocabulary words for upcoming dates. It is hit by
// the scheduler once a day.
type GenerateHandler struct {
	store WordStore
	ai    gemini.Generator
	now   func() time.Time
}

func NewGenerateHandler(store WordStore, ai gemini.Generator) *GenerateHandler {
	return &GenerateHandler{store: store, ai: ai, now: time.Now}
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	today := h.now()
	windowEnd := today.AddDate(0, 0, generateWindowDays)
	start := today.Format(dates.Layout)
	end := windowEnd.Format(dates.Layout)

	existing, err := h.store.ExistingDates(ctx, start, end)
	if err != nil {
		log.Printf("Failed to list existing dates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	missing := dates.Missing(existing, today, windowEnd)
	if len(missing) == 0 {
		log.Println("No missing dates found, skipping generation")
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "No generation needed", "generated": 0})
		return
	}

	log.Printf("Generating words for %d dates: %v", len(missing), missing)

	recent, err := h.store.RecentWords(ctx, recentLookbackDays)
	if err != nil {
		log.Printf("Failed to fetch recent words: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}
	recentList := lo.Map(recent, func(w model.Word, _ int) string { return w.Word })

	words, err := gemini.GenerateWords(ctx, h.ai, missing, recentList)
	if err != nil {
		log.Printf("Gemini generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "AI generation failed"})
		return
	}
	if len(words) == 0 {
		log.Println("No words generated from Gemini")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "No words generated", "generated": 0})
		return
	}

	saved, err := h.store.SaveWords(ctx, words)
	if err != nil {
		log.Printf("Failed to save words: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	log.Printf("Successfully generated and saved %d words", saved)
	c.JSON(http.StatusOK, gin.H{"success": true, "generated": saved, "dates": missing})
}
