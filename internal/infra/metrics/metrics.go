// Package metrics holds the process Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fitplan"

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Catalog source labels.
const (
	CatalogSourceCache = "cache"
	CatalogSourceStore = "store"
	CatalogSourceSeed  = "seed"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	workoutWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workouts",
		Name:      "aggregate_writes_total",
		Help:      "Workout aggregate writes by operation and outcome.",
	}, []string{"operation", "outcome"})

	workoutExercisesReplaced = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workouts",
		Name:      "exercises_written_total",
		Help:      "Workout exercise rows written by aggregate writes.",
	})

	catalogReads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "reads_total",
		Help:      "Exercise catalog listings by the source that served them.",
	}, []string{"source"})

	eventsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Workout events handed to the publisher by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(
		httpRequests,
		httpDuration,
		workoutWrites,
		workoutExercisesReplaced,
		catalogReads,
		eventsPublished,
	)
}

// ObserveHTTPRequest records one served request. route is the matched path template.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordWorkoutWrite counts a create, update or delete of a workout aggregate.
func RecordWorkoutWrite(operation string, err error, exercisesWritten int) {
	if err != nil {
		workoutWrites.WithLabelValues(operation, OutcomeFailure).Inc()

		return
	}

	workoutWrites.WithLabelValues(operation, OutcomeSuccess).Inc()
	if exercisesWritten > 0 {
		workoutExercisesReplaced.Add(float64(exercisesWritten))
	}
}

// RecordCatalogRead counts a catalog listing served from source.
func RecordCatalogRead(source string) {
	catalogReads.WithLabelValues(source).Inc()
}

// RecordEventPublished counts a publish attempt.
func RecordEventPublished(err error) {
	if err != nil {
		eventsPublished.WithLabelValues(OutcomeFailure).Inc()

		return
	}

	eventsPublished.WithLabelValues(OutcomeSuccess).Inc()
}
