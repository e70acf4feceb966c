package study

import (
	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// RecordReviewInput holds the parameters for recording one review.
type RecordReviewInput struct {
	WordID int64
	Result string
}

// Validate checks all fields and collects all errors.
func (i *RecordReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID <= 0 {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if !domain.ReviewOutcome(i.Result).IsValid() {
		errs = append(errs, domain.FieldError{Field: "result", Message: "must be correct or incorrect"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RandomWordsInput holds the parameters for a random study round.
// Count 0 means the default round size.
type RandomWordsInput struct {
	Count int
}

// Validate checks all fields and collects all errors.
func (i *RandomWordsInput) Validate() error {
	if i.Count < 0 || i.Count > domain.MaxStudyCount {
		return domain.NewValidationError("count", "must be between 1 and 100")
	}
	return nil
}

func (i *RandomWordsInput) limit() int {
	if i.Count == 0 {
		return domain.DefaultStudyCount
	}
	return i.Count
}
