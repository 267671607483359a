package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kter/goiryoku-kojo/internal/gemini"
	"github.com/kter/goiryoku-kojo/internal/limiter"
	"github.com/kter/goiryoku-kojo/internal/model"
)

// ScoreHandler grades a round of game answers with the model.
type ScoreHandler struct {
	ai      gemini.Generator
	limiter *limiter.Limiter
}

func NewScoreHandler(ai gemini.Generator, l *limiter.Limiter) *ScoreHandler {
	return &ScoreHandler{ai: ai, limiter: l}
}

type ScoreRequest struct {
	Word     string   `json:"word"`
	Answers  []string `json:"answers"`
	GameType string   `json:"game_type"`
}

// Score validates the request, charges the per-IP rate limit, and returns the
// model's score and feedback. Requests rejected by validation do not consume
// a rate-limit slot.
func (h *ScoreHandler) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Request body is required"})
		return
	}
	if req.Word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "word is required"})
		return
	}
	if !model.ValidGameType(req.GameType) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "game_type must be word_replacement or rhyming"})
		return
	}

	clientIP := c.ClientIP()
	allowed, retryAfter := h.limiter.Check(clientIP)
	if !allowed {
		log.Printf("Rate limit exceeded for IP: %s", clientIP)
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"error":   "リクエスト制限を超えました。しばらくしてから再度お試しください。",
		})
		return
	}

	log.Printf("Scoring answers for word: %s, game_type: %s, answers: %v", req.Word, req.GameType, req.Answers)

	result, err := gemini.ScoreAnswers(c.Request.Context(), h.ai, req.Word, req.Answers, req.GameType)
	if err != nil {
		log.Printf("Gemini scoring failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "AI scoring failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"score":    result.Score,
		"feedback": result.Feedback,
	})
}
