package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "fitplan/internal/delivery/context"
	"fitplan/internal/domain/service"
	mockSvc "fitplan/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(tokenSvc *mockSvc.MockTokenService)
		wantStatus int
		wantUserID string
	}{
		{
			name:       "missing header",
			setup:      func(*mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			setup:      func(*mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: "user-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantUserID: "user-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tt.setup(tokenSvc)
			m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUserID, gotCtxUserID string
			next := func(c echo.Context) error {
				gotUserID, _ = GetUserID(c)
				gotCtxUserID = deliverycontext.GetUserIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			}

			require.NoError(t, m.Authenticate(next)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
			assert.Equal(t, tt.wantUserID, gotCtxUserID)
		})
	}
}
