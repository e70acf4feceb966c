package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}
	return s.categories.GetByID(ctx, id)
}

// CreateCategory creates a category. Names are unique; a duplicate yields
// ErrAlreadyExists.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cat, err := s.categories.Create(ctx, strings.TrimSpace(input.Name), trimOrNil(input.Color), trimOrNil(input.Description))
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created", slog.Int64("category_id", cat.ID), slog.String("name", cat.Name))
	return cat, nil
}

func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cat, err := s.categories.Update(ctx, input.ID, domain.CategoryUpdate{
		Name:        trimPtr(input.Name),
		Color:       trimPtr(input.Color),
		Description: trimPtr(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return cat, nil
}

// DeleteCategory removes a category. Its words stay, uncategorized.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "must be positive")
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.Int64("category_id", id))
	return nil
}
