package domain

// WordFilter contains the filtering parameters for word listings.
type WordFilter struct {
	Search       *string
	CategoryID   *int64
	MasteryLevel *int
}

// Random study round bounds.
const (
	DefaultStudyCount = 10
	MaxStudyCount     = 100
)
