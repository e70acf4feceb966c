package category

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name        string
	Color       *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	errs = validateOptional(errs, i.Color, i.Description)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCategoryInput holds the parameters for updating a category.
type UpdateCategoryInput struct {
	ID          int64
	Name        *string
	Color       *string // nil = don't change
	Description *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Color == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	errs = validateOptional(errs, i.Color, i.Description)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateOptional(errs []domain.FieldError, color, description *string) []domain.FieldError {
	if color != nil && !colorRe.MatchString(strings.TrimSpace(*color)) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a hex color like #3B82F6"})
	}
	if description != nil && len(strings.TrimSpace(*description)) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}
	return errs
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
