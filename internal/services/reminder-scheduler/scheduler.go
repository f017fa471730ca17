// Package services реализует периодический обход фактур: найденные к
// напоминанию фактуры публикуются в очередь для отправителя.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/contract-billing/internal/lib/sl"
	"github.com/magabrotheeeer/contract-billing/internal/models"
	"github.com/magabrotheeeer/contract-billing/internal/rabbitmq"
)

// ReminderSource описывает выборку фактур, ожидающих напоминания.
type ReminderSource interface {
	GetPendingReminders(ctx context.Context) ([]*models.Invoice, error)
}

// SchedulerService периодически сканирует фактуры и публикует задания
// на отправку напоминаний.
type SchedulerService struct {
	source   ReminderSource
	interval time.Duration
	log      *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(source ReminderSource, interval time.Duration, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		source:   source,
		interval: interval,
		log:      log,
	}
}

// Run запускает цикл сканирования до отмены контекста.
func (s *SchedulerService) Run(ctx context.Context, channel *amqp.Channel) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.scan(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) scan(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting scan for invoices awaiting reminder")
	invoices, err := s.source.GetPendingReminders(ctx)
	if err != nil {
		s.log.Error("failed to find invoices awaiting reminder", sl.Err(err))
		return
	}
	for _, invoice := range invoices {
		job := models.ReminderJob{InvoiceID: invoice.ID, DueDate: invoice.DueDate}
		if err := rabbitmq.PublishMessage(channel, rabbitmq.Exchange, rabbitmq.ReminderRoutingKey, job); err != nil {
			s.log.Error("failed to publish reminder job", slog.Int64("invoice_id", invoice.ID), sl.Err(err))
		}
	}
	s.log.Info("scan finished", slog.Int("found", len(invoices)))
}
