package study

import (
	"time"

	"github.com/heartmarshall/vocab-backend/internal/domain"
)

// ApplyReview returns the counters after one review. It never fails: the
// outcome is already a validated domain value.
//
//	correct:   review+1, correct+1, level+1 (capped at 5)
//	incorrect: review+1,            level-1 (floored at 0)
//
// last_reviewed_at is set to now in both cases.
func ApplyReview(c domain.MasteryCounters, outcome domain.ReviewOutcome, now time.Time) domain.MasteryCounters {
	next := c
	next.ReviewCount++
	next.LastReviewedAt = &now

	if outcome == domain.ReviewOutcomeCorrect {
		next.CorrectCount++
		next.MasteryLevel = min(c.MasteryLevel+1, domain.MaxMasteryLevel)
	} else {
		next.MasteryLevel = max(c.MasteryLevel-1, domain.MinMasteryLevel)
	}

	return next
}

// ComputeStats aggregates word counters into fleet-wide stats.
// Level 3 counts toward neither mastered nor review-needed.
func ComputeStats(words []domain.Word, totalSessions int) domain.Stats {
	hist := make(map[int]int)
	for _, w := range words {
		hist[w.MasteryLevel]++
	}
	return StatsFromHistogram(hist, totalSessions)
}

// StatsFromHistogram derives stats from a word count per mastery level.
func StatsFromHistogram(levels map[int]int, totalSessions int) domain.Stats {
	stats := domain.Stats{TotalSessions: totalSessions}
	for level, n := range levels {
		stats.TotalWords += n
		switch {
		case domain.IsMastered(level):
			stats.MasteredWords += n
		case domain.NeedsReview(level):
			stats.ReviewNeeded += n
		}
	}
	return stats
}
