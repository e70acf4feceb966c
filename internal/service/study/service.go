package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Word, error)
	UpdateCounters(ctx context.Context, id int64, expectedReviewCount int, c domain.MasteryCounters) error
	Random(ctx context.Context, limit int) ([]domain.Word, error)
	MasteryHistogram(ctx context.Context) (map[int]int, error)
}

type sessionRepo interface {
	Create(ctx context.Context, wordID int64, result domain.ReviewOutcome, at time.Time) (*domain.StudySession, error)
	CountAll(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// DefaultReviewAttempts bounds how often a review unit is retried after
// losing a concurrent update race.
const DefaultReviewAttempts = 3

// Service implements review recording and progress statistics.
type Service struct {
	words    wordRepo
	sessions sessionRepo
	tx       txManager
	log      *slog.Logger
	attempts int
	now      func() time.Time
}

// NewService creates a new Study service. attempts < 1 falls back to
// DefaultReviewAttempts.
func NewService(
	log *slog.Logger,
	words wordRepo,
	sessions sessionRepo,
	tx txManager,
	attempts int,
) *Service {
	if attempts < 1 {
		attempts = DefaultReviewAttempts
	}
	return &Service{
		words:    words,
		sessions: sessions,
		tx:       tx,
		log:      log.With("service", "study"),
		attempts: attempts,
		now:      time.Now,
	}
}
