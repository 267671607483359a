package model

// Game types accepted by the score endpoint.
const (
	GameWordReplacement = "word_replacement"
	GameRhyming         = "rhyming"
)

func ValidGameType(gameType string) bool {
	return gameType == GameWordReplacement || gameType == GameRhyming
}

// ScoreResult is the parsed outcome of an AI scoring call. Score is whatever
// integer the model produced; the 0-100 range is expected but not enforced.
type ScoreResult struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}
