package model

// Word is one day's vocabulary entry. The date string (YYYY-MM-DD) doubles as
// the document ID in the words collection, so there is at most one word per
// date and writes are idempotent upserts.
type Word struct {
	Date    string `json:"date" firestore:"date"`
	Word    string `json:"word" firestore:"word"`
	Reading string `json:"reading" firestore:"reading"`
	WordEn  string `json:"word_en,omitempty" firestore:"word_en,omitempty"`
}
