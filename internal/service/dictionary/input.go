package dictionary

import (
	"strings"
	"time"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

const (
	maxWordLen  = 200
	maxTextLen  = 2000
	maxNotesLen = 5000
)

// ---------------------------------------------------------------------------
// ListWordsInput
// ---------------------------------------------------------------------------

// ListWordsInput filters the word list. Nil fields do not filter.
type ListWordsInput struct {
	Search       *string
	CategoryID   *int64
	MasteryLevel *int
}

func (i ListWordsInput) Validate() error {
	var errs []domain.FieldError

	if i.Search != nil && len(*i.Search) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long (max 200)"})
	}
	if i.CategoryID != nil && *i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "must be positive"})
	}
	if i.MasteryLevel != nil && (*i.MasteryLevel < domain.MinMasteryLevel || *i.MasteryLevel > domain.MaxMasteryLevel) {
		errs = append(errs, domain.FieldError{Field: "mastery_level", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CreateWordInput
// ---------------------------------------------------------------------------

// CreateWordInput holds the fields of a new word.
type CreateWordInput struct {
	En         string
	Ja         string
	Example    *string
	Notes      *string
	CategoryID *int64
	CreatedAt  *time.Time
}

func (i *CreateWordInput) trim() {
	i.En = strings.TrimSpace(i.En)
	i.Ja = strings.TrimSpace(i.Ja)
	i.Example = trimOptional(i.Example)
	i.Notes = trimOptional(i.Notes)
}

func (i CreateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.En == "" {
		errs = append(errs, domain.FieldError{Field: "en", Message: "required"})
	} else if len(i.En) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "en", Message: "too long (max 200)"})
	}
	if i.Ja == "" {
		errs = append(errs, domain.FieldError{Field: "ja", Message: "required"})
	} else if len(i.Ja) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "ja", Message: "too long (max 200)"})
	}
	errs = appendOptional(errs, i.Example, i.Notes, i.CategoryID)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// UpdateWordInput
// ---------------------------------------------------------------------------

// UpdateWordInput is a partial update. Nil fields are left untouched.
type UpdateWordInput struct {
	ID         int64
	En         *string
	Ja         *string
	Example    *string
	Notes      *string
	CategoryID *int64
	CreatedAt  *time.Time
}

func (i *UpdateWordInput) trim() {
	if i.En != nil {
		v := strings.TrimSpace(*i.En)
		i.En = &v
	}
	if i.Ja != nil {
		v := strings.TrimSpace(*i.Ja)
		i.Ja = &v
	}
	if i.Example != nil {
		v := strings.TrimSpace(*i.Example)
		i.Example = &v
	}
	if i.Notes != nil {
		v := strings.TrimSpace(*i.Notes)
		i.Notes = &v
	}
}

func (i UpdateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.En != nil && *i.En == "" {
		errs = append(errs, domain.FieldError{Field: "en", Message: "must not be empty"})
	}
	if i.Ja != nil && *i.Ja == "" {
		errs = append(errs, domain.FieldError{Field: "ja", Message: "must not be empty"})
	}
	if i.En != nil && len(*i.En) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "en", Message: "too long (max 200)"})
	}
	if i.Ja != nil && len(*i.Ja) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "ja", Message: "too long (max 200)"})
	}
	errs = appendOptional(errs, i.Example, i.Notes, i.CategoryID)
	if i.update().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "no fields to update"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateWordInput) update() domain.WordUpdate {
	return domain.WordUpdate{
		En:         i.En,
		Ja:         i.Ja,
		Example:    i.Example,
		Notes:      i.Notes,
		CategoryID: i.CategoryID,
		CreatedAt:  i.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// trimOptional trims s and maps a blank value to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func appendOptional(errs []domain.FieldError, example, notes *string, categoryID *int64) []domain.FieldError {
	if example != nil && len(*example) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "example", Message: "too long (max 2000)"})
	}
	if notes != nil && len(*notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long (max 5000)"})
	}
	if categoryID != nil && *categoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "must be positive"})
	}
	return errs
}
