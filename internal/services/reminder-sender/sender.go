// Package services реализует потребителя очереди напоминаний: на каждое
// задание отправляется напоминание об оплате фактуры.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// ReminderSender описывает отправку напоминания по фактуре.
type ReminderSender interface {
	SendReminder(ctx context.Context, invoiceID int64) error
}

// SenderService обрабатывает сообщения очереди напоминаний.
type SenderService struct {
	invoices ReminderSender
	log      *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(invoices ReminderSender, log *slog.Logger) *SenderService {
	return &SenderService{
		invoices: invoices,
		log:      log,
	}
}

// HandleMessage разбирает задание из очереди и отправляет напоминание.
// Ошибка приводит к nack с повторной постановкой в очередь.
func (s *SenderService) HandleMessage(ctx context.Context) func([]byte) error {
	return func(body []byte) error {
		var job models.ReminderJob
		if err := json.Unmarshal(body, &job); err != nil {
			return fmt.Errorf("error unmarshalling reminder job: %w", err)
		}
		s.log.Info("processing reminder job", slog.Int64("invoice_id", job.InvoiceID))
		return s.invoices.SendReminder(ctx, job.InvoiceID)
	}
}
