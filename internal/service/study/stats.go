package study

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// GetStats returns the fleet-wide progress summary.
func (s *Service) GetStats(ctx context.Context) (*domain.Stats, error) {
	hist, err := s.words.MasteryHistogram(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	total, err := s.sessions.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	stats := StatsFromHistogram(hist, total)
	return &stats, nil
}

// RandomWords returns words for a study round in random order.
func (s *Service) RandomWords(ctx context.Context, input RandomWordsInput) ([]domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	words, err := s.words.Random(ctx, input.limit())
	if err != nil {
		return nil, fmt.Errorf("random words: %w", err)
	}

	return words, nil
}
