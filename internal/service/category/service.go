package category

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, name string, color, description *string) (*domain.Category, error)
	Update(ctx context.Context, id int64, u domain.CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// Service implements category CRUD.
type Service struct {
	categories categoryRepo
	log        *slog.Logger
}

func NewService(log *slog.Logger, categories categoryRepo) *Service {
	return &Service{
		categories: categories,
		log:        log.With("service", "category"),
	}
}
