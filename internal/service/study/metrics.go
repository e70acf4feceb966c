package study

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// reviewsTotal counts recorded reviews by outcome.
	reviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_reviews_total",
		Help: "Total recorded reviews by result",
	}, []string{"result"})

	// reviewRetries counts review units retried after a lost update race.
	reviewRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vocab_review_retries_total",
		Help: "Review units retried after a concurrent counter update",
	})

	// reviewFailures counts failed review units by error kind.
	reviewFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_review_failures_total",
		Help: "Failed review units by kind",
	}, []string{"kind"})
)
