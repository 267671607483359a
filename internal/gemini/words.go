package gemini

import (
	"context"

	"github.com/kter/goiryoku-kojo/internal/model"
)

// GenerateWords asks the model for one vocabulary word per date, steering it
// away from recentWords, and returns the validated records. An empty date list
// is a no-op.
func GenerateWords(ctx context.Context, g Generator, dates, recentWords []string) ([]model.Word, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	raw, err := g.Generate(ctx, WordSystemPrompt, buildWordsPrompt(dates, recentWords))
	if err != nil {
		return nil, err
	}
	return ParseWords(raw)
}

// ScoreAnswers grades a round of answers against the topic word using the
// rubric for gameType. Transport errors surface; unparseable model output
// degrades inside ParseScore.
func ScoreAnswers(ctx context.Context, g Generator, word string, answers []string, gameType string) (model.ScoreResult, error) {
	raw, err := g.Generate(ctx, ScoreSystemPrompt, buildScorePrompt(word, answers, gameType))
	if err != nil {
		return model.ScoreResult{}, err
	}
	return ParseScore(raw), nil
}
