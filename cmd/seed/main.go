// Command seed generates vocabulary words for the coming days. Use it for
// initial setup or manual backfills.
//
//	go run ./cmd/seed -days 30
//	go run ./cmd/seed -days 7 -dry-run
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/kter/goiryoku-kojo/internal/config"
	"github.com/kter/goiryoku-kojo/internal/dates"
	"github.com/kter/goiryoku-kojo/internal/gemini"
	"github.com/kter/goiryoku-kojo/internal/model"
	"github.com/kter/goiryoku-kojo/internal/store"
)

const recentLookbackDays = 10

func main() {
	days := flag.Int("days", 30, "number of days to generate, starting today")
	dryRun := flag.Bool("dry-run", false, "generate without saving")
	flag.Parse()

	if *days < 1 {
		log.Fatal("days must be >= 1")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.ProjectID == "" {
		log.Fatal("GCP_PROJECT is required")
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	ctx := context.Background()
	wordStore, err := store.NewWordStore(ctx, cfg.ProjectID, cfg.WordsCollection)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer wordStore.Close()

	today := time.Now()
	end := today.AddDate(0, 0, *days-1)

	existing, err := wordStore.ExistingDates(ctx, today.Format(dates.Layout), end.Format(dates.Layout))
	if err != nil {
		log.Fatalf("Failed to list existing dates: %v", err)
	}

	missing := dates.Missing(existing, today, end)
	if len(missing) == 0 {
		log.Println("All dates already have words, nothing to do")
		return
	}
	log.Printf("Generating words for %d dates: %v", len(missing), missing)

	recent, err := wordStore.RecentWords(ctx, recentLookbackDays)
	if err != nil {
		log.Fatalf("Failed to fetch recent words: %v", err)
	}

	aiClient := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	words, err := gemini.GenerateWords(ctx, aiClient, missing,
		lo.Map(recent, func(w model.Word, _ int) string { return w.Word }))
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	for _, w := range words {
		log.Printf("%s  %s (%s)", w.Date, w.Word, w.Reading)
	}

	if *dryRun {
		log.Printf("Dry run, not saving %d words", len(words))
		return
	}

	saved, err := wordStore.SaveWords(ctx, words)
	if err != nil {
		log.Fatalf("Failed to save words: %v", err)
	}
	log.Printf("Saved %d words", saved)
}
