package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitplan/config"
	deliverycontext "fitplan/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestServer(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(Metrics)

	e.GET("/api/workouts/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	return e
}

func TestRequestID_PropagatesIncomingHeader(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf, false)

	req := httptest.NewRequest(http.MethodGet, "/api/workouts/abc", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", rec.Body.String())
	assert.Empty(t, buf.String(), "successful requests are not logged outside debug mode")
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf, false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/workouts/abc", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLogger_LogsServerErrorsWithRoute(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf, false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"route":"/boom"`)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"request_id"`)
}

func TestLogger_DebugLogsEveryRequest(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf, true)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/workouts/abc", nil))

	assert.Contains(t, buf.String(), `"route":"/api/workouts/:id"`)
}
