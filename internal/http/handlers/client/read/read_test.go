package read

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id int64) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func TestReadClientHandler(t *testing.T) {
	cases := []struct {
		name       string
		urlID      string
		setupMocks func(service *MockService)
		wantStatus int
		wantName   string
	}{
		{
			name:  "успешное чтение клиента",
			urlID: "1",
			setupMocks: func(service *MockService) {
				service.On("Read", mock.Anything, int64(1)).Return(&models.Client{
					ID: 1, Name: "Ana", Email: "ana@example.com",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantName:   "Ana",
		},
		{
			name:       "некорректный ID в URL",
			urlID:      "abc",
			setupMocks: func(_ *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "клиент не найден",
			urlID: "99",
			setupMocks: func(service *MockService) {
				service.On("Read", mock.Anything, int64(99)).
					Return(nil, apperrs.NotFound("client", 99))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service := new(MockService)
			tc.setupMocks(service)

			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
			handler := New(logger, service)

			r := chi.NewRouter()
			r.Get("/api/v1/clients/{id}", handler.ServeHTTP)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/"+tc.urlID, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantName != "" {
				var envelope struct {
					Data struct {
						Client models.Client `json:"client"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
				assert.Equal(t, tc.wantName, envelope.Data.Client.Name)
			}
			service.AssertExpectations(t)
		})
	}
}
