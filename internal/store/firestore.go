package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/samber/lo"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kter/goiryoku-kojo/internal/dates"
	"github.com/kter/goiryoku-kojo/internal/model"
)

// WordStore reads and writes daily word documents in Firestore. One document
// per calendar date; the date string is the document ID.
type WordStore struct {
	client     *firestore.Client
	collection string
}

func NewWordStore(ctx context.Context, projectID, collection string) (*WordStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &WordStore{client: client, collection: collection}, nil
}

func (s *WordStore) Close() error {
	return s.client.Close()
}

// WordsByDateRange returns the stored words with start <= date <= end
// (inclusive, date strings), ascending. Dates with no document are simply
// absent from the result.
func (s *WordStore) WordsByDateRange(ctx context.Context, start, end string) ([]model.Word, error) {
	iter := s.client.Collection(s.collection).
		Where("date", ">=", start).
		Where("date", "<=", end).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var words []model.Word
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read words: %w", err)
		}
		var w model.Word
		if err := doc.DataTo(&w); err != nil {
			return nil, fmt.Errorf("failed to decode word %s: %w", doc.Ref.ID, err)
		}
		words = append(words, w)
	}
	return words, nil
}

// RecentWords returns the words stored in the trailing lookback window ending
// today.
func (s *WordStore) RecentWords(ctx context.Context, days int) ([]model.Word, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	return s.WordsByDateRange(ctx, start.Format(dates.Layout), end.Format(dates.Layout))
}

// ExistingDates returns the dates in [start, end] that already have a word.
func (s *WordStore) ExistingDates(ctx context.Context, start, end string) ([]string, error) {
	words, err := s.WordsByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return lo.Map(words, func(w model.Word, _ int) string { return w.Date }), nil
}

// SaveWords upserts every record keyed by its date and returns the number
// written. A record for an existing date overwrites it.
func (s *WordStore) SaveWords(ctx context.Context, words []model.Word) (int, error) {
	bw := s.client.BulkWriter(ctx)

	jobs := make([]*firestore.BulkWriterJob, 0, len(words))
	for _, w := range words {
		job, err := bw.Set(s.client.Collection(s.collection).Doc(w.Date), w)
		if err != nil {
			return 0, fmt.Errorf("failed to enqueue word %s: %w", w.Date, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return 0, fmt.Errorf("failed to save word %s: %w", words[i].Date, err)
		}
	}
	return len(words), nil
}

// WordByDate returns the word for a single date, or nil when none is stored.
func (s *WordStore) WordByDate(ctx context.Context, date string) (*model.Word, error) {
	doc, err := s.client.Collection(s.collection).Doc(date).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read word %s: %w", date, err)
	}

	var w model.Word
	if err := doc.DataTo(&w); err != nil {
		return nil, fmt.Errorf("failed to decode word %s: %w", date, err)
	}
	return &w, nil
}
