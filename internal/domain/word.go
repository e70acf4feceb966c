package domain

import "time"

// Word is a bilingual vocabulary entry together with its review counters.
type Word struct {
	ID         int64
	En         string
	Ja         string
	Example    *string
	Notes      *string
	CategoryID *int64
	MasteryCounters
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MasteryCounters is the mutable review state of a word.
type MasteryCounters struct {
	ReviewCount    int
	CorrectCount   int
	MasteryLevel   int
	LastReviewedAt *time.Time
}

// Mastery level bounds and the thresholds used by stats.
const (
	MinMasteryLevel       = 0
	MaxMasteryLevel       = 5
	MasteredThreshold     = 4
	ReviewNeededThreshold = 3
)

// IsMastered reports whether the level counts as mastered.
func IsMastered(level int) bool { return level >= MasteredThreshold }

// NeedsReview reports whether the level counts as needing review.
func NeedsReview(level int) bool { return level < ReviewNeededThreshold }

// Valid checks the counter invariants.
func (c MasteryCounters) Valid() bool {
	return c.ReviewCount >= 0 &&
		c.CorrectCount >= 0 &&
		c.CorrectCount <= c.ReviewCount &&
		c.MasteryLevel >= MinMasteryLevel &&
		c.MasteryLevel <= MaxMasteryLevel
}

// WordFields holds the user-editable fields of a word.
type WordFields struct {
	En         string
	Ja         string
	Example    *string
	Notes      *string
	CategoryID *int64
	CreatedAt  *time.Time
}

// WordUpdate is a partial update. Nil fields are left untouched.
type WordUpdate struct {
	En         *string
	Ja         *string
	Example    *string
	Notes      *string
	CategoryID *int64
	CreatedAt  *time.Time
}

// IsEmpty reports whether the update carries no field.
func (u WordUpdate) IsEmpty() bool {
	return u.En == nil && u.Ja == nil && u.Example == nil &&
		u.Notes == nil && u.CategoryID == nil && u.CreatedAt == nil
}
