package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kter/goiryoku-kojo/internal/limiter"
	"github.com/kter/goiryoku-kojo/internal/model"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeStore implements WordStore in memory.
type fakeStore struct {
	words    []model.Word
	existing []string
	recent   []model.Word
	byDate   map[string]model.Word

	saved []model.Word

	rangeErr error
	saveErr  error

	lastRangeStart string
	lastRangeEnd   string
}

func (f *fakeStore) WordsByDateRange(_ context.Context, start, end string) ([]model.Word, error) {
	f.lastRangeStart, f.lastRangeEnd = start, end
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	return f.words, nil
}

func (f *fakeStore) RecentWords(_ context.Context, _ int) ([]model.Word, error) {
	return f.recent, nil
}

func (f *fakeStore) ExistingDates(_ context.Context, _, _ string) ([]string, error) {
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	return f.existing, nil
}

func (f *fakeStore) SaveWords(_ context.Context, words []model.Word) (int, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.saved = append(f.saved, words...)
	return len(words), nil
}

func (f *fakeStore) WordByDate(_ context.Context, date string) (*model.Word, error) {
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	if w, ok := f.byDate[date]; ok {
		return &w, nil
	}
	return nil, nil
}

// fakeGen implements gemini.Generator with a canned response.
type fakeGen struct {
	resp string
	err  error

	calls      int
	lastSystem string
	lastPrompt string
}

func (f *fakeGen) Generate(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.resp, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
}

func newTestRouter(store *fakeStore, gen *fakeGen) *gin.Engine {
	generate := NewGenerateHandler(store, gen)
	generate.now = fixedNow
	words := NewWordsHandler(store)
	words.now = fixedNow
	score := NewScoreHandler(gen, limiter.New())
	return NewRouter(generate, words, score)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "1.2.3.4:52000"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}
