package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

type MockReminderSender struct {
	mock.Mock
}

func (m *MockReminderSender) SendReminder(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandleMessage(t *testing.T) {
	job := models.ReminderJob{
		InvoiceID: 11,
		DueDate:   time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	body, err := json.Marshal(job)
	require.NoError(t, err)

	t.Run("валидное задание отправляет напоминание", func(t *testing.T) {
		invoices := new(MockReminderSender)
		invoices.On("SendReminder", mock.Anything, int64(11)).Return(nil).Once()

		service := NewSenderService(invoices, newNoopLogger())
		err := service.HandleMessage(context.Background())(body)

		assert.NoError(t, err)
		invoices.AssertExpectations(t)
	})

	t.Run("некорректный JSON возвращает ошибку", func(t *testing.T) {
		invoices := new(MockReminderSender)

		service := NewSenderService(invoices, newNoopLogger())
		err := service.HandleMessage(context.Background())([]byte("{not json"))

		assert.Error(t, err)
		invoices.AssertNotCalled(t, "SendReminder", mock.Anything, mock.Anything)
	})

	t.Run("ошибка отправки пробрасывается для nack", func(t *testing.T) {
		invoices := new(MockReminderSender)
		invoices.On("SendReminder", mock.Anything, int64(11)).
			Return(errors.New("smtp unavailable")).Once()

		service := NewSenderService(invoices, newNoopLogger())
		err := service.HandleMessage(context.Background())(body)

		assert.Error(t, err)
	})
}
