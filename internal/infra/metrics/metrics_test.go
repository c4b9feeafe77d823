package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTPRequest(t *testing.T) {
	counter := httpRequests.WithLabelValues(http.MethodGet, "/api/workouts/:id", "404")
	before := testutil.ToFloat64(counter)

	ObserveHTTPRequest(http.MethodGet, "/api/workouts/:id", http.StatusNotFound, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordWorkoutWrite(t *testing.T) {
	success := workoutWrites.WithLabelValues("update", OutcomeSuccess)
	failure := workoutWrites.WithLabelValues("update", OutcomeFailure)
	rowsBefore := testutil.ToFloat64(workoutExercisesReplaced)
	successBefore := testutil.ToFloat64(success)
	failureBefore := testutil.ToFloat64(failure)

	RecordWorkoutWrite("update", nil, 3)
	RecordWorkoutWrite("update", errors.New("conflict"), 5)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(success))
	assert.Equal(t, failureBefore+1, testutil.ToFloat64(failure))
	assert.Equal(t, rowsBefore+3, testutil.ToFloat64(workoutExercisesReplaced))
}

func TestRecordCatalogReadAndEvents(t *testing.T) {
	seed := catalogReads.WithLabelValues(CatalogSourceSeed)
	seedBefore := testutil.ToFloat64(seed)
	RecordCatalogRead(CatalogSourceSeed)
	assert.Equal(t, seedBefore+1, testutil.ToFloat64(seed))

	failed := eventsPublished.WithLabelValues(OutcomeFailure)
	failedBefore := testutil.ToFloat64(failed)
	RecordEventPublished(errors.New("broker down"))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}
