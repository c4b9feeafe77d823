package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"fitplan/internal/delivery/api/validator"
	deliverycontext "fitplan/internal/delivery/context"
	domainerrors "fitplan/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

type errorBody struct {
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

// newTestContext builds a request as seen by a handler behind Authenticate.
// An empty userID leaves the caller unauthenticated.
func newTestContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-test")

	if userID != "" {
		deliverycontext.SetUserID(c, userID)
		c.SetRequest(req.WithContext(deliverycontext.WithUserID(req.Context(), userID)))
	}

	return c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func detailFields(t *testing.T, body errorBody) []string {
	t.Helper()

	var details []domainerrors.FieldError
	require.NoError(t, json.Unmarshal(body.Error.Details, &details))

	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}

	return fields
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}
