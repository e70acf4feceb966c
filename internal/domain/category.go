package domain

import "time"

// Category groups words.
type Category struct {
	ID          int64
	Name        string
	Color       *string
	Description *string
	CreatedAt   time.Time
}

// CategoryUpdate is a partial update. Nil fields are left untouched.
type CategoryUpdate struct {
	Name        *string
	Color       *string
	Description *string
}

func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Color == nil && u.Description == nil
}
