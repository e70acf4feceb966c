package examples

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// generationsTotal counts example generations by outcome.
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vocab_example_generations_total",
		Help: "Example generation requests by outcome",
	}, []string{"outcome"})

	// modelLatency tracks model call latency in seconds.
	modelLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vocab_llm_request_duration_seconds",
		Help:    "Latency of language model calls",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
	})
)
