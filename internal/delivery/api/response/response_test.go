package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "fitplan/internal/delivery/context"
	domainerrors "fitplan/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleAppError_ValidationDetails(t *testing.T) {
	c, rec := newContext()
	verr := domainerrors.NewValidationError()
	verr.Add("name", "required", "name is required")

	require.NoError(t, HandleAppError(c, errors.Wrap(verr, "create workout")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errInfo["code"])
	details := errInfo["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "name", details[0].(map[string]any)["field"])
	assert.Equal(t, "req-1", body["meta"].(map[string]any)["request_id"])
}

func TestHandleAppError_HidesDetailsForForbidden(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrWorkoutOwnership.WithDetails("owner mismatch"), "update")))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	errInfo := decodeError(t, rec)["error"].(map[string]any)
	assert.Equal(t, "WORKOUT_FORBIDDEN", errInfo["code"])
	assert.NotContains(t, errInfo, "details")
}

func TestHandleAppError_DatabaseErrorIsGeneric(t *testing.T) {
	c, rec := newContext()

	err := domainerrors.NewDatabaseExecuteError(errors.New("pq: relation missing"), "list workouts")
	require.NoError(t, HandleAppError(c, err))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation missing")
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.New("boom"))

	require.Error(t, err)
	assert.False(t, c.Response().Committed)
	assert.Zero(t, rec.Body.Len())
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "w1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"w1"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}
