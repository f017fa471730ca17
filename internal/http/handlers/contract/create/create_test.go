package create

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyContract) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateContractHandler(t *testing.T) {
	validBody := map[string]any{
		"client_id":       1,
		"description":     "Consulting services",
		"value":           100000,
		"periodicity":     "monthly",
		"duration_months": 12,
	}

	cases := []struct {
		name       string
		body       any
		rawBody    string
		setupMocks func(service *MockService)
		wantStatus int
	}{
		{
			name: "успешное создание контракта",
			body: validBody,
			setupMocks: func(service *MockService) {
				service.On("Create", mock.Anything, mock.MatchedBy(func(req models.DummyContract) bool {
					return req.ClientID == 1 && req.Value == 100000
				})).Return(int64(42), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "некорректный JSON",
			rawBody:    "{not json",
			setupMocks: func(_ *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "ошибка валидации тела запроса",
			body: map[string]any{
				"client_id":   1,
				"description": "Consulting services",
				"value":       100000,
				"periodicity": "weekly",
			},
			setupMocks: func(_ *MockService) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "несуществующий клиент",
			body: validBody,
			setupMocks: func(service *MockService) {
				service.On("Create", mock.Anything, mock.Anything).
					Return(int64(0), apperrs.NotFound("client", 1))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "нарушение бизнес-правила",
			body: validBody,
			setupMocks: func(service *MockService) {
				service.On("Create", mock.Anything, mock.Anything).
					Return(int64(0), apperrs.Validation("contract value must be positive"))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := new(MockService)
			tc.setupMocks(service)

			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
			handler := New(logger, service)

			var body []byte
			if tc.rawBody != "" {
				body = []byte(tc.rawBody)
			} else {
				var err error
				body, err = json.Marshal(tc.body)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			service.AssertExpectations(t)
		})
	}
}
