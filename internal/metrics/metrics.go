// Package metrics defines the Prometheus collectors for the review engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Classification metrics
var (
	// Classifications tracks successful classifications by resulting label.
	Classifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_classifications_total",
			Help: "Total successful sentiment classifications by label",
		},
		[]string{"label"},
	)

	// ClassificationErrors tracks rejected classification inputs.
	ClassificationErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_classification_errors_total",
			Help: "Total classification calls rejected as invalid input",
		},
	)
)

// Review write-path metrics
var (
	ReviewsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "Total reviews created",
		},
	)

	ReviewsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_updated_total",
			Help: "Total review edits persisted",
		},
	)

	// EditConflicts tracks stale-version edits rejected by the store.
	EditConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "review_edit_conflicts_total",
			Help: "Total review edits rejected due to concurrent modification",
		},
	)
)

// Trending query metrics
var (
	TrendingQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trending_queries_total",
			Help: "Total trending queries served",
		},
	)

	trendingQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trending_query_duration_seconds",
			Help:    "Trending query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// TrendingQueryTimer starts a timer against the trending query histogram.
// Callers stop it with ObserveDuration.
func TrendingQueryTimer() *prometheus.Timer {
	return prometheus.NewTimer(trendingQueryDuration)
}
