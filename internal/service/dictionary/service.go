package dictionary

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Word, error)
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	Create(ctx context.Context, f domain.WordFields) (*domain.Word, error)
	Update(ctx context.Context, id int64, u domain.WordUpdate) (*domain.Word, error)
	Delete(ctx context.Context, id int64) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements word CRUD and filtered listing.
type Service struct {
	words wordRepo
	log   *slog.Logger
}

// NewService creates a new Dictionary service.
func NewService(log *slog.Logger, words wordRepo) *Service {
	return &Service{
		words: words,
		log:   log.With("service", "dictionary"),
	}
}
