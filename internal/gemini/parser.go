package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/kter/goiryoku-kojo/internal/model"
)

var (
	ErrInvalidJSON     = errors.New("invalid JSON in model response")
	ErrMissingWordsKey = errors.New("model response missing words key")
)

// DefaultScoreFeedback is returned when the model's scoring output cannot be
// parsed. Scoring is best-effort and never fails the request over bad output.
const DefaultScoreFeedback = "採点結果の解析に失敗しました"

// stripCodeFence removes a surrounding markdown code fence, tagged or not,
// from a model response.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseWords extracts word records from a generation response. Entries missing
// a required field are skipped and logged rather than failing the batch;
// partially usable model output should not abort the whole run.
func ParseWords(raw string) ([]model.Word, error) {
	cleaned := stripCodeFence(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	rawWords, ok := top["words"]
	if !ok {
		return nil, ErrMissingWordsKey
	}

	var entries []map[string]any
	if err := json.Unmarshal(rawWords, &entries); err != nil {
		return nil, fmt.Errorf("%w: words is not an array: %v", ErrInvalidJSON, err)
	}

	words := make([]model.Word, 0, len(entries))
	for _, e := range entries {
		date, okDate := e["date"].(string)
		word, okWord := e["word"].(string)
		reading, okReading := e["reading"].(string)
		if !okDate || !okWord || !okReading {
			log.Printf("Skipping invalid word entry: %v", e)
			continue
		}
		w := model.Word{Date: date, Word: word, Reading: reading}
		if en, ok := e["word_en"].(string); ok {
			w.WordEn = en
		}
		words = append(words, w)
	}
	return words, nil
}

// ParseScore reads a scoring response. It never fails: output that is not a
// JSON object degrades to a zero score with a fixed feedback message, and
// missing or mistyped fields degrade per field. The score is passed through
// as the model produced it, without clamping.
func ParseScore(raw string) model.ScoreResult {
	cleaned := stripCodeFence(raw)

	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		log.Printf("Failed to parse score response: %v", err)
		return model.ScoreResult{Score: 0, Feedback: DefaultScoreFeedback}
	}

	return model.ScoreResult{
		Score:    coerceInt(payload["score"]),
		Feedback: coerceString(payload["feedback"]),
	}
}

func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
