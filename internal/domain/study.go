package domain

import "time"

// StudySession is an append-only record of one review.
type StudySession struct {
	ID        int64
	WordID    int64
	Result    ReviewOutcome
	Timestamp time.Time
}

// Stats is the fleet-wide progress summary.
type Stats struct {
	TotalWords    int
	MasteredWords int
	ReviewNeeded  int
	TotalSessions int
}
