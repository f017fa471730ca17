package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) ValidateToken(ctx context.Context, token string) (*models.User, string, bool, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Bool(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.Bool(2), args.Error(3)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestJWTMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		authHeader string
		setupMocks func(auth *AuthServiceMock)
		wantStatus int
		wantUser   string
	}{
		{
			name:       "валидный токен пропускается и наполняет контекст",
			authHeader: "Bearer valid-token",
			setupMocks: func(auth *AuthServiceMock) {
				auth.On("ValidateToken", mock.Anything, "valid-token").Return(&models.User{
					UID: "uid-1", Username: "anaoperator", Role: "user",
				}, "user", true, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "anaoperator",
		},
		{
			name:       "отсутствующий заголовок отклоняется",
			authHeader: "",
			setupMocks: func(_ *AuthServiceMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "заголовок без Bearer отклоняется",
			authHeader: "Basic dXNlcjpwYXNz",
			setupMocks: func(_ *AuthServiceMock) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "невалидный токен отклоняется",
			authHeader: "Bearer expired-token",
			setupMocks: func(auth *AuthServiceMock) {
				auth.On("ValidateToken", mock.Anything, "expired-token").
					Return(nil, "", false, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := new(AuthServiceMock)
			tc.setupMocks(auth)

			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = r.Context().Value(User).(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			JWTMiddleware(auth, testLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantUser != "" {
				assert.Equal(t, tc.wantUser, gotUser)
			}
			auth.AssertExpectations(t)
		})
	}
}
