package examples

import (
	"strings"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// GenerateInput names the word to generate examples for. Ja is an optional
// meaning hint.
type GenerateInput struct {
	En string
	Ja *string
}

// Trim normalizes whitespace in place.
func (i *GenerateInput) Trim() {
	i.En = strings.TrimSpace(i.En)
	if i.Ja != nil {
		ja := strings.TrimSpace(*i.Ja)
		if ja == "" {
			i.Ja = nil
		} else {
			i.Ja = &ja
		}
	}
}

// Validate checks all fields and collects all errors.
func (i *GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.En == "" {
		errs = append(errs, domain.FieldError{Field: "en", Message: "required"})
	}
	if len(i.En) > 200 {
		errs = append(errs, domain.FieldError{Field: "en", Message: "too long (max 200)"})
	}
	if i.Ja != nil && len(*i.Ja) > 500 {
		errs = append(errs, domain.FieldError{Field: "ja", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *GenerateInput) key() string {
	if i.Ja == nil {
		return i.En
	}
	return i.En + "\x00" + *i.Ja
}
