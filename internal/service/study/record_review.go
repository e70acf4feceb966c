package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// RecordReview applies one review to a word and appends it to the review log
// as a single unit: both writes become durable or neither does.
//
// Concurrent reviews of the same word are serialized through a
// compare-and-swap on review_count; a lost race retries the whole unit.
func (s *Service) RecordReview(ctx context.Context, input RecordReviewInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	outcome := domain.ReviewOutcome(input.Result)

	var (
		updated *domain.Word
		err     error
	)
	for attempt := 1; attempt <= s.attempts; attempt++ {
		updated, err = s.recordOnce(ctx, input.WordID, outcome)
		if !errors.Is(err, errCASLost) {
			break
		}
		if attempt < s.attempts {
			reviewRetries.Inc()
			s.log.DebugContext(ctx, "review lost update race, retrying",
				slog.Int64("word_id", input.WordID), slog.Int("attempt", attempt))
		}
	}

	switch {
	case err == nil:
		reviewsTotal.WithLabelValues(string(outcome)).Inc()
		s.log.InfoContext(ctx, "review recorded",
			slog.Int64("word_id", updated.ID),
			slog.String("result", string(outcome)),
			slog.Int("mastery_level", updated.MasteryLevel),
		)
		return updated, nil

	case errors.Is(err, errCASLost):
		reviewFailures.WithLabelValues("conflict").Inc()
		return nil, fmt.Errorf("record review for word %d: %d attempts: %w", input.WordID, s.attempts, domain.ErrConflict)

	case errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("record review: %w", err)

	case errors.Is(err, domain.ErrCommitUncertain):
		reviewFailures.WithLabelValues("commit_uncertain").Inc()
		s.log.ErrorContext(ctx, "review commit outcome unknown",
			slog.Int64("word_id", input.WordID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("record review for word %d: %w", input.WordID, err)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("record review: %w", err)

	default:
		reviewFailures.WithLabelValues("persistence").Inc()
		return nil, fmt.Errorf("record review for word %d: %w: %w", input.WordID, domain.ErrPersistence, err)
	}
}

// errCASLost marks a counter update that matched no row because the word
// changed after it was read.
var errCASLost = errors.New("review_count changed concurrently")

func (s *Service) recordOnce(ctx context.Context, wordID int64, outcome domain.ReviewOutcome) (*domain.Word, error) {
	var updated *domain.Word

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		word, err := s.words.GetByID(ctx, wordID)
		if err != nil {
			return fmt.Errorf("get word: %w", err)
		}

		now := s.now()
		next := ApplyReview(word.MasteryCounters, outcome, now)

		if err := s.words.UpdateCounters(ctx, wordID, word.ReviewCount, next); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return errCASLost
			}
			return fmt.Errorf("update counters: %w", err)
		}

		if _, err := s.sessions.Create(ctx, wordID, outcome, now); err != nil {
			return fmt.Errorf("append study session: %w", err)
		}

		word.MasteryCounters = next
		updated = word
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
