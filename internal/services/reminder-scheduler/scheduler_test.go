package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) GetPendingReminders(ctx context.Context) ([]*models.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invoice), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestScan(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(source *MockSource)
	}{
		{
			name: "пустая выборка не публикует заданий",
			setupMocks: func(source *MockSource) {
				source.On("GetPendingReminders", mock.Anything).Return([]*models.Invoice{}, nil).Once()
			},
		},
		{
			name: "ошибка выборки только логируется",
			setupMocks: func(source *MockSource) {
				source.On("GetPendingReminders", mock.Anything).
					Return(nil, errors.New("db error")).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := new(MockSource)
			tt.setupMocks(source)

			service := NewSchedulerService(source, time.Minute, newNoopLogger())
			service.scan(context.Background(), nil)

			source.AssertExpectations(t)
		})
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	source := new(MockSource)

	ctx, cancel := context.WithCancel(context.Background())
	service := NewSchedulerService(source, time.Hour, newNoopLogger())

	done := make(chan struct{})
	go func() {
		service.Run(ctx, nil)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
