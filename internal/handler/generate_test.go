package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kter/goiryoku-kojo/internal/model"
)

// allDates is the fixed eight-day generation window for fixedNow.
var allDates = []string{
	"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04",
	"2025-06-05", "2025-06-06", "2025-06-07", "2025-06-08",
}

func TestGenerateNoMissingDates(t *testing.T) {
	store := &fakeStore{existing: allDates}
	gen := &fakeGen{}
	r := newTestRouter(store, gen)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-words", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["generated"])
	assert.Equal(t, "No generation needed", body["message"])
	assert.Zero(t, gen.calls)
	assert.Empty(t, store.saved)
}

func TestGenerateFillsMissingDates(t *testing.T) {
	store := &fakeStore{
		existing: allDates[2:], // first two days missing
		recent:   []model.Word{{Date: "2025-05-30", Word: "矛盾", Reading: "むじゅん"}},
	}
	gen := &fakeGen{resp: `{
	  "words": [
	    {"date": "2025-06-01", "word": "概念", "reading": "がいねん", "word_en": "concept"},
	    {"date": "2025-06-02", "word": "帰結", "reading": "きけつ", "word_en": "consequence"}
	  ]
	}`}
	r := newTestRouter(store, gen)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-words", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["generated"])
	assert.Equal(t, []any{"2025-06-01", "2025-06-02"}, body["dates"])

	require.Len(t, store.saved, 2)
	assert.Equal(t, "概念", store.saved[0].Word)

	// The duplication hint carries the recent words into the prompt.
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.lastPrompt, "矛盾")
	assert.Contains(t, gen.lastPrompt, "2025-06-01")
}

func TestGenerateSkipsMalformedEntries(t *testing.T) {
	store := &fakeStore{existing: allDates[2:]}
	gen := &fakeGen{resp: `{
	  "words": [
	    {"date": "2025-06-01", "word": "概念", "reading": "がいねん"},
	    {"date": "2025-06-02", "word": "帰結"}
	  ]
	}`}
	r := newTestRouter(store, gen)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-words", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["generated"])
	require.Len(t, store.saved, 1)
	assert.Equal(t, "2025-06-01", store.saved[0].Date)
}

func TestGenerateAIFailure(t *testing.T) {
	store := &fakeStore{existing: nil}
	gen := &fakeGen{err: assert.AnError}
	r := newTestRouter(store, gen)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-words", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "AI generation failed", body["error"])
	assert.Empty(t, store.saved, "nothing is persisted when the AI call fails")
}

func TestGenerateUnparseableResponseIsAIFailure(t *testing.T) {
	store := &fakeStore{existing: nil}
	gen := &fakeGen{resp: "今日は単語を思いつきませんでした"}
	r := newTestRouter(store, gen)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-words", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "AI generation failed", body["error"])
	assert.Empty(t, store.saved)
}

func TestGenerateAllEntriesMalformed(t *testing.T) {
	store := &fakeStore{existing: nil}
	gen := &fakeGen{resp: `{"words": [{"date": "2025-06-01"}]}`}
	r := newTestRouter(store, gen)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-words", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "No words generated", body["error"])
	assert.Empty(t, store.saved)
}

func TestGenerateStoreError(t *testing.T) {
	store := &fakeStore{rangeErr: assert.AnError}
	r := newTestRouter(store, &fakeGen{})

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-words", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["error"])
}

func TestGenerateSaveError(t *testing.T) {
	store := &fakeStore{existing: allDates[1:], saveErr: assert.AnError}
	gen := &fakeGen{resp: `{"words": [{"date": "2025-06-01", "word": "概念", "reading": "がいねん"}]}`}
	r := newTestRouter(store, gen)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-words", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["error"])
}
