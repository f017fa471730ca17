// Package services содержит бизнес-логику работы с фактурами: оплату,
// выборку фактур для напоминаний и отправку напоминаний клиентам.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
	"github.com/magabrotheeeer/contract-billing/internal/billingprovider"
	"github.com/magabrotheeeer/contract-billing/internal/crm"
	"github.com/magabrotheeeer/contract-billing/internal/lib/dates"
	"github.com/magabrotheeeer/contract-billing/internal/lib/sl"
	"github.com/magabrotheeeer/contract-billing/internal/models"
	"github.com/magabrotheeeer/contract-billing/internal/notify"
)

// Напоминание отправляется за четыре дня до срока оплаты.
const reminderDaysBefore = 4

// InvoiceRepository определяет методы хранилища, нужные сервису фактур.
type InvoiceRepository interface {
	ReadInvoice(ctx context.Context, id int64) (*models.Invoice, error)
	ListInvoices(ctx context.Context, filter models.InvoiceFilter) ([]*models.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id int64, paidAt time.Time) (int, error)
	MarkReminderSent(ctx context.Context, id int64) (int, error)

	ReadSubscription(ctx context.Context, id int64) (*models.Subscription, error)
	ReadContract(ctx context.Context, id int64) (*models.Contract, error)
	ReadClient(ctx context.Context, id int64) (*models.Client, error)

	CreateNotification(ctx context.Context, n models.Notification) (int64, error)
}

// BillingProvider описывает получение данных фактуры у биллинг-провайдера.
type BillingProvider interface {
	GetInvoice(ctx context.Context, invoiceID string) (*billingprovider.InvoiceData, error)
}

// Notifier описывает отправку напоминаний и подтверждений оплаты.
type Notifier interface {
	SendReminder(ctx context.Context, p notify.ReminderParams) []notify.ChannelResult
	SendConfirmation(ctx context.Context, p notify.ConfirmationParams) []notify.ChannelResult
}

// CRMForwarder описывает best-effort доставку событий в CRM.
type CRMForwarder interface {
	Forward(ctx context.Context, event string, payload any)
}

// InvoiceService реализует операции над фактурами.
type InvoiceService struct {
	repo     InvoiceRepository
	billing  BillingProvider
	notifier Notifier
	crm      CRMForwarder
	log      *slog.Logger
}

// NewInvoiceService создает новый экземпляр InvoiceService.
func NewInvoiceService(repo InvoiceRepository, billing BillingProvider,
	notifier Notifier, crmf CRMForwarder, log *slog.Logger) *InvoiceService {
	return &InvoiceService{
		repo:     repo,
		billing:  billing,
		notifier: notifier,
		crm:      crmf,
		log:      log,
	}
}

// Read возвращает фактуру по ID.
func (s *InvoiceService) Read(ctx context.Context, id int64) (*models.Invoice, error) {
	return s.repo.ReadInvoice(ctx, id)
}

// List возвращает фактуры по фильтру.
func (s *InvoiceService) List(ctx context.Context, filter models.InvoiceFilter) ([]*models.Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

// MarkAsPaid переводит фактуру в paid, отправляет клиенту подтверждение
// оплаты и передает событие payment_confirmed в CRM.
func (s *InvoiceService) MarkAsPaid(ctx context.Context, id int64) (*models.Invoice, error) {
	invoice, err := s.repo.ReadInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == models.InvoiceStatusPaid {
		return nil, apperrs.Validation("invoice %d is already paid", id)
	}

	paidAt := time.Now().UTC()
	if _, err := s.repo.MarkInvoicePaid(ctx, id, paidAt); err != nil {
		return nil, err
	}
	invoice.Status = models.InvoiceStatusPaid
	invoice.PaidAt = &paidAt

	client, contract, err := s.resolveClient(ctx, invoice)
	if err != nil {
		s.log.Error("failed to resolve client for confirmation", sl.Err(err))
		return invoice, nil
	}

	results := s.notifier.SendConfirmation(ctx, notify.ConfirmationParams{
		ClientName:  client.Name,
		ClientEmail: client.Email,
		ClientPhone: client.Phone,
		Value:       invoice.Value,
		PaidAt:      paidAt,
	})
	s.recordNotifications(ctx, client.ID, &invoice.ID, models.PurposeConfirmation, results)

	s.crm.Forward(ctx, crm.EventPaymentConfirmed, map[string]any{
		"invoice_id":  invoice.ID,
		"contract_id": contract.ID,
		"client_id":   client.ID,
		"value":       invoice.Value,
		"paid_at":     paidAt,
	})

	s.log.Info("invoice marked as paid", slog.Int64("id", id))
	return invoice, nil
}

// GetPendingReminders возвращает неоплаченные фактуры, по которым пора
// отправить напоминание: срок оплаты ровно через четыре дня и напоминание
// еще не отправлялось.
func (s *InvoiceService) GetPendingReminders(ctx context.Context) ([]*models.Invoice, error) {
	status := models.InvoiceStatusPending
	invoices, err := s.repo.ListInvoices(ctx, models.InvoiceFilter{Status: &status})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var pending []*models.Invoice
	for _, invoice := range invoices {
		if invoice.ReminderSent {
			continue
		}
		if dates.DaysUntil(invoice.DueDate, now) == reminderDaysBefore {
			pending = append(pending, invoice)
		}
	}
	return pending, nil
}

// SendReminder отправляет клиенту напоминание об оплате фактуры и помечает
// её как обработанную. Повторный вызов по уже обработанной фактуре ничего
// не отправляет.
func (s *InvoiceService) SendReminder(ctx context.Context, id int64) error {
	invoice, err := s.repo.ReadInvoice(ctx, id)
	if err != nil {
		return err
	}
	if invoice.ReminderSent {
		s.log.Info("reminder already sent, skipping", slog.Int64("invoice_id", id))
		return nil
	}

	// Флаг переключается до отправки: условие reminder_sent = FALSE в
	// запросе отсекает конкурентный дубль.
	count, err := s.repo.MarkReminderSent(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		s.log.Info("reminder already sent by concurrent call, skipping", slog.Int64("invoice_id", id))
		return nil
	}

	client, _, err := s.resolveClient(ctx, invoice)
	if err != nil {
		return err
	}

	paymentURL := ""
	if invoice.ExternalInvoiceID != nil {
		data, err := s.billing.GetInvoice(ctx, *invoice.ExternalInvoiceID)
		if err != nil {
			s.log.Error("failed to fetch payment url", sl.Err(err))
		} else {
			paymentURL = data.PaymentURL
		}
	}

	results := s.notifier.SendReminder(ctx, notify.ReminderParams{
		ClientName:  client.Name,
		ClientEmail: client.Email,
		ClientPhone: client.Phone,
		Value:       invoice.Value,
		DueDate:     invoice.DueDate,
		PaymentURL:  paymentURL,
	})
	s.recordNotifications(ctx, client.ID, &invoice.ID, models.PurposeReminder, results)

	s.log.Info("reminder sent", slog.Int64("invoice_id", id), slog.Int64("client_id", client.ID))
	return nil
}

// resolveClient поднимается по цепочке фактура -> подписка -> контракт -> клиент.
func (s *InvoiceService) resolveClient(ctx context.Context, invoice *models.Invoice) (*models.Client, *models.Contract, error) {
	subscription, err := s.repo.ReadSubscription(ctx, invoice.SubscriptionID)
	if err != nil {
		return nil, nil, err
	}
	contract, err := s.repo.ReadContract(ctx, subscription.ContractID)
	if err != nil {
		return nil, nil, err
	}
	client, err := s.repo.ReadClient(ctx, contract.ClientID)
	if err != nil {
		return nil, nil, err
	}
	return client, contract, nil
}

// recordNotifications фиксирует результат отправки по каждому каналу.
func (s *InvoiceService) recordNotifications(ctx context.Context, clientID int64, invoiceID *int64,
	purpose string, results []notify.ChannelResult) {
	now := time.Now().UTC()
	for _, result := range results {
		status := models.NotificationStatusSent
		var sentAt *time.Time
		if result.OK {
			sentAt = &now
		} else {
			status = models.NotificationStatusFailed
		}
		if _, err := s.repo.CreateNotification(ctx, models.Notification{
			ClientID:  clientID,
			InvoiceID: invoiceID,
			Channel:   result.Channel,
			Purpose:   purpose,
			Status:    status,
			Message:   result.Message,
			SentAt:    sentAt,
		}); err != nil {
			s.log.Error("failed to record notification", sl.Err(err))
		}
	}
}
