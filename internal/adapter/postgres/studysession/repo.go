// Package studysession implements the append-only review log using PostgreSQL.
package studysession

import (
	"context"
	"fmt"
	"time"

	postgres "github.com/heartmarshall/vocab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// Repo provides study session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new study session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO study_sessions (word_id, result, timestamp)
VALUES ($1, $2, $3)
RETURNING id, word_id, result, timestamp`

const countAllSQL = `SELECT count(*) FROM study_sessions`

const countByWordSQL = `SELECT count(*) FROM study_sessions WHERE word_id = $1`

// Create appends one review record.
// Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) Create(ctx context.Context, wordID int64, result domain.ReviewOutcome, at time.Time) (*domain.StudySession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var (
		s      domain.StudySession
		stored string
	)
	err := querier.QueryRow(ctx, createSQL, wordID, string(result), at).
		Scan(&s.ID, &s.WordID, &stored, &s.Timestamp)
	if err != nil {
		return nil, postgres.MapError(err, "study_session for word", wordID)
	}
	s.Result = domain.ReviewOutcome(stored)

	return &s, nil
}

// CountAll returns the total number of recorded reviews.
func (r *Repo) CountAll(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := querier.QueryRow(ctx, countAllSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count study sessions: %w", err)
	}
	return n, nil
}

// CountByWord returns the number of recorded reviews for one word.
func (r *Repo) CountByWord(ctx context.Context, wordID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := querier.QueryRow(ctx, countByWordSQL, wordID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count study sessions for word %d: %w", wordID, err)
	}
	return n, nil
}
