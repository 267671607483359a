package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kter/goiryoku-kojo/internal/dates"
	"github.com/kter/goiryoku-kojo/internal/model"
)

const (
	defaultDays = 30
	maxDays     = 30
)

// WordsHandler serves stored words to the mobile app.
type WordsHandler struct {
	store WordStore
	now   func() time.Time
}

func NewWordsHandler(store WordStore) *WordsHandler {
	return &WordsHandler{store: store, now: time.Now}
}

// List returns the words for [today, today+days-1]. Dates without a stored
// word are simply absent from the list.
func (h *WordsHandler) List(c *gin.Context) {
	days := defaultDays
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}
	if days < 1 {
		days = 1
	}
	if days > maxDays {
		days = maxDays
	}

	today := h.now()
	start := today.Format(dates.Layout)
	end := today.AddDate(0, 0, days-1).Format(dates.Layout)

	words, err := h.store.WordsByDateRange(c.Request.Context(), start, end)
	if err != nil {
		log.Printf("Failed to fetch words: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
			"words":   []model.Word{},
		})
		return
	}
	if words == nil {
		words = []model.Word{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(words),
		"words":      words,
		"date_range": gin.H{"start": start, "end": end},
	})
}

// Get returns the word for a single date.
func (h *WordsHandler) Get(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse(dates.Layout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date must be YYYY-MM-DD"})
		return
	}

	word, err := h.store.WordByDate(c.Request.Context(), date)
	if err != nil {
		log.Printf("Failed to fetch word for %s: %v", date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}
	if word == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "word": word})
}
