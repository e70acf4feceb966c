package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory inserts a category with a unique name and returns its id.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name, color) VALUES ($1, $2) RETURNING id`,
		"category-"+uniqueSuffix(), "#336699",
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return id
}

// SeedWord inserts a word at the given mastery level and returns its id.
// review_count and correct_count are set so the counter invariants hold.
func SeedWord(t *testing.T, pool *pgxpool.Pool, level int) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO words (en, ja, review_count, correct_count, mastery_level)
		 VALUES ($1, $2, $3, $3, $3) RETURNING id`,
		"word-"+uniqueSuffix(), "単語", level,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}
	return id
}

// SeedReviewedWord inserts a word together with one study_sessions row per
// outcome. The word's counters are derived from the outcomes so they match
// the history: level moves up on correct (max 5) and down on incorrect (min 0).
func SeedReviewedWord(t *testing.T, pool *pgxpool.Pool, outcomes ...domain.ReviewOutcome) int64 {
	t.Helper()

	ctx := context.Background()
	level, correct := 0, 0
	for _, o := range outcomes {
		if o == domain.ReviewOutcomeCorrect {
			correct++
			level = min(level+1, domain.MaxMasteryLevel)
		} else {
			level = max(level-1, domain.MinMasteryLevel)
		}
	}

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO words (en, ja, review_count, correct_count, mastery_level, last_reviewed_at)
		 VALUES ($1, $2, $3, $4, $5, CASE WHEN $3 > 0 THEN now() END) RETURNING id`,
		"reviewed-"+uniqueSuffix(), "復習", len(outcomes), correct, level,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewedWord: %v", err)
	}

	for _, o := range outcomes {
		SeedSession(t, pool, id, o)
	}
	return id
}

// SeedSession inserts a single study_sessions row for wordID.
func SeedSession(t *testing.T, pool *pgxpool.Pool, wordID int64, outcome domain.ReviewOutcome) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO study_sessions (word_id, result) VALUES ($1, $2) RETURNING id`,
		wordID, outcome.String(),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}
	return id
}
