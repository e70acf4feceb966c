package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// ListWords returns words matching the filter, newest first.
func (s *Service) ListWords(ctx context.Context, input ListWordsInput) ([]domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.WordFilter{
		CategoryID:   input.CategoryID,
		MasteryLevel: input.MasteryLevel,
	}
	if input.Search != nil {
		if q := domain.NormalizeSearch(*input.Search); q != "" {
			filter.Search = &q
		}
	}

	words, err := s.words.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// GetWord returns one word.
func (s *Service) GetWord(ctx context.Context, id int64) (*domain.Word, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	return s.words.GetByID(ctx, id)
}

// CreateWord adds a word. A category_id that does not exist yields ErrNotFound.
func (s *Service) CreateWord(ctx context.Context, input CreateWordInput) (*domain.Word, error) {
	input.trim()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	word, err := s.words.Create(ctx, domain.WordFields{
		En:         input.En,
		Ja:         input.Ja,
		Example:    input.Example,
		Notes:      input.Notes,
		CategoryID: input.CategoryID,
		CreatedAt:  input.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word created", slog.Int64("word_id", word.ID), slog.String("en", word.En))
	return word, nil
}

// UpdateWord applies a partial update.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (*domain.Word, error) {
	input.trim()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	word, err := s.words.Update(ctx, input.ID, input.update())
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}
	return word, nil
}

// DeleteWord removes a word and its review history.
func (s *Service) DeleteWord(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted", slog.Int64("word_id", id))
	return nil
}
