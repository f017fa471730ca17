package notify

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

type EmailSenderMock struct {
	mock.Mock
}

func (m *EmailSenderMock) SendEmail(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

type MessageSenderMock struct {
	mock.Mock
}

func (m *MessageSenderMock) SendSMS(ctx context.Context, to, message string) error {
	args := m.Called(ctx, to, message)
	return args.Error(0)
}

func (m *MessageSenderMock) SendChat(ctx context.Context, to, message string) error {
	args := m.Called(ctx, to, message)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSendReminder(t *testing.T) {
	phone := "+5511999990000"
	dueDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		params       ReminderParams
		setupMocks   func(email *EmailSenderMock, messenger *MessageSenderMock)
		wantChannels []string
		wantOK       []bool
	}{
		{
			name: "без телефона отправляется только email",
			params: ReminderParams{
				ClientName:  "Ana",
				ClientEmail: "ana@example.com",
				Value:       100000,
				DueDate:     dueDate,
				PaymentURL:  "https://pay/1",
			},
			setupMocks: func(email *EmailSenderMock, _ *MessageSenderMock) {
				email.On("SendEmail", "ana@example.com", "Reminder: payment due in 4 days", mock.Anything).
					Return(nil)
			},
			wantChannels: []string{models.ChannelEmail},
			wantOK:       []bool{true},
		},
		{
			name: "с телефоном отправляются email, sms и чат",
			params: ReminderParams{
				ClientName:  "Ana",
				ClientEmail: "ana@example.com",
				ClientPhone: &phone,
				Value:       100000,
				DueDate:     dueDate,
				PaymentURL:  "https://pay/1",
			},
			setupMocks: func(email *EmailSenderMock, messenger *MessageSenderMock) {
				email.On("SendEmail", "ana@example.com", mock.Anything, mock.Anything).Return(nil)
				messenger.On("SendSMS", mock.Anything, phone, mock.Anything).Return(nil)
				messenger.On("SendChat", mock.Anything, phone, mock.Anything).Return(nil)
			},
			wantChannels: []string{models.ChannelEmail, models.ChannelSMS, models.ChannelChat},
			wantOK:       []bool{true, true, true},
		},
		{
			name: "сбой канала отражается в результате и не прерывает рассылку",
			params: ReminderParams{
				ClientName:  "Ana",
				ClientEmail: "ana@example.com",
				ClientPhone: &phone,
				Value:       100000,
				DueDate:     dueDate,
				PaymentURL:  "https://pay/1",
			},
			setupMocks: func(email *EmailSenderMock, messenger *MessageSenderMock) {
				email.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
				messenger.On("SendSMS", mock.Anything, phone, mock.Anything).
					Return(errors.New("provider unavailable"))
				messenger.On("SendChat", mock.Anything, phone, mock.Anything).Return(nil)
			},
			wantChannels: []string{models.ChannelEmail, models.ChannelSMS, models.ChannelChat},
			wantOK:       []bool{true, false, true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email := new(EmailSenderMock)
			messenger := new(MessageSenderMock)
			tc.setupMocks(email, messenger)

			dispatcher := NewDispatcher(email, messenger, discardLogger())
			results := dispatcher.SendReminder(context.Background(), tc.params)

			require.Len(t, results, len(tc.wantChannels))
			for i, res := range results {
				assert.Equal(t, tc.wantChannels[i], res.Channel)
				assert.Equal(t, tc.wantOK[i], res.OK)
				assert.NotEmpty(t, res.Message)
			}
			email.AssertExpectations(t)
			messenger.AssertExpectations(t)
		})
	}
}

func TestSendReminder_MessageContents(t *testing.T) {
	email := new(EmailSenderMock)
	email.On("SendEmail", "ana@example.com", "Reminder: payment due in 4 days", mock.Anything).Return(nil)

	dispatcher := NewDispatcher(email, new(MessageSenderMock), discardLogger())
	results := dispatcher.SendReminder(context.Background(), ReminderParams{
		ClientName:  "Ana",
		ClientEmail: "ana@example.com",
		Value:       100050,
		DueDate:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		PaymentURL:  "https://pay/1",
	})

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, "1000.50")
	assert.Contains(t, results[0].Message, "05-03-2026")
	assert.Contains(t, results[0].Message, "https://pay/1")
}

func TestSendConfirmation(t *testing.T) {
	phone := "+5511999990000"

	t.Run("с телефоном отправляются email и sms", func(t *testing.T) {
		email := new(EmailSenderMock)
		messenger := new(MessageSenderMock)
		email.On("SendEmail", "ana@example.com", "Payment confirmed", mock.Anything).Return(nil)
		messenger.On("SendSMS", mock.Anything, phone, mock.Anything).Return(nil)

		dispatcher := NewDispatcher(email, messenger, discardLogger())
		results := dispatcher.SendConfirmation(context.Background(), ConfirmationParams{
			ClientName:  "Ana",
			ClientEmail: "ana@example.com",
			ClientPhone: &phone,
			Value:       100000,
			PaidAt:      time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		})

		require.Len(t, results, 2)
		assert.Equal(t, models.ChannelEmail, results[0].Channel)
		assert.Equal(t, models.ChannelSMS, results[1].Channel)
		email.AssertExpectations(t)
		messenger.AssertExpectations(t)
	})

	t.Run("пустой телефон пропускает sms", func(t *testing.T) {
		empty := ""
		email := new(EmailSenderMock)
		email.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		dispatcher := NewDispatcher(email, new(MessageSenderMock), discardLogger())
		results := dispatcher.SendConfirmation(context.Background(), ConfirmationParams{
			ClientName:  "Ana",
			ClientEmail: "ana@example.com",
			ClientPhone: &empty,
			Value:       100000,
			PaidAt:      time.Now(),
		})

		require.Len(t, results, 1)
		assert.Equal(t, models.ChannelEmail, results[0].Channel)
	})
}

func TestSendContractSigned(t *testing.T) {
	email := new(EmailSenderMock)
	email.On("SendEmail", "ana@example.com", "Contract signed successfully", mock.Anything).Return(nil)

	dispatcher := NewDispatcher(email, new(MessageSenderMock), discardLogger())
	results := dispatcher.SendContractSigned(context.Background(), ContractSignedParams{
		ClientName:          "Ana",
		ClientEmail:         "ana@example.com",
		ContractDescription: "Consulting services",
		PdfURL:              "https://docs/contract.pdf",
	})

	require.Len(t, results, 1)
	assert.Equal(t, models.ChannelEmail, results[0].Channel)
	assert.True(t, results[0].OK)
	assert.Contains(t, results[0].Message, "Consulting services")
	email.AssertExpectations(t)
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		name  string
		value int64
		want  string
	}{
		{"целая сумма", 100000, "1000.00"},
		{"сумма с копейками", 100050, "1000.50"},
		{"одна копейка дополняется нулём", 101, "1.01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatValue(tc.value))
		})
	}
}
