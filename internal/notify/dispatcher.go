// Package notify реализует многоканальную отправку уведомлений клиентам:
// email через SMTP, SMS и чат-сообщения через HTTP-провайдера.
//
// Отправка уведомлений — fire-and-forget: сбой любого канала логируется
// и отражается в результате, но никогда не прерывает бизнес-операцию.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/contract-billing/internal/lib/sl"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// EmailSender описывает отправку писем.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// MessageSender описывает отправку SMS и чат-сообщений.
type MessageSender interface {
	SendSMS(ctx context.Context, to, message string) error
	SendChat(ctx context.Context, to, message string) error
}

// ChannelResult результат отправки по одному каналу.
type ChannelResult struct {
	Channel string // email, sms, chat
	OK      bool
	Message string // текст отправленного сообщения
}

// Dispatcher рассылает уведомления по каналам.
type Dispatcher struct {
	email     EmailSender
	messenger MessageSender
	log       *slog.Logger
}

// NewDispatcher создает новый экземпляр Dispatcher.
func NewDispatcher(email EmailSender, messenger MessageSender, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		email:     email,
		messenger: messenger,
		log:       log,
	}
}

// ReminderParams данные для напоминания об оплате.
type ReminderParams struct {
	ClientName  string
	ClientEmail string
	ClientPhone *string
	Value       int64
	DueDate     time.Time
	PaymentURL  string
}

// formatValue форматирует сумму из минимальных единиц в строку вида "1000.00".
func formatValue(value int64) string {
	return fmt.Sprintf("%d.%02d", value/100, value%100)
}

// SendReminder отправляет напоминание об оплате: email всегда,
// SMS и чат — дополнительно при наличии телефона.
func (d *Dispatcher) SendReminder(ctx context.Context, p ReminderParams) []ChannelResult {
	const op = "notify.SendReminder"
	log := d.log.With(slog.String("op", op))

	value := formatValue(p.Value)
	due := p.DueDate.Format("02-01-2006")

	var results []ChannelResult

	emailBody := fmt.Sprintf(
		"Hello, %s!\n\nThis is a reminder that your payment of %s is due on %s.\n\nPay here: %s\n\nThank you!",
		p.ClientName, value, due, p.PaymentURL)
	emailErr := d.email.SendEmail(p.ClientEmail, "Reminder: payment due in 4 days", emailBody)
	if emailErr != nil {
		log.Error("failed to send reminder email", sl.Err(emailErr))
	}
	results = append(results, ChannelResult{Channel: models.ChannelEmail, OK: emailErr == nil, Message: emailBody})

	if p.ClientPhone == nil || *p.ClientPhone == "" {
		return results
	}

	shortMsg := fmt.Sprintf("Reminder: payment of %s due on %s. Pay here: %s", value, due, p.PaymentURL)
	smsErr := d.messenger.SendSMS(ctx, *p.ClientPhone, shortMsg)
	if smsErr != nil {
		log.Error("failed to send reminder sms", sl.Err(smsErr))
	}
	results = append(results, ChannelResult{Channel: models.ChannelSMS, OK: smsErr == nil, Message: shortMsg})

	chatMsg := fmt.Sprintf("Hello, %s! Your payment of %s is due on %s. Pay here: %s",
		p.ClientName, value, due, p.PaymentURL)
	chatErr := d.messenger.SendChat(ctx, *p.ClientPhone, chatMsg)
	if chatErr != nil {
		log.Error("failed to send reminder chat message", sl.Err(chatErr))
	}
	results = append(results, ChannelResult{Channel: models.ChannelChat, OK: chatErr == nil, Message: chatMsg})

	return results
}

// ConfirmationParams данные для подтверждения оплаты.
type ConfirmationParams struct {
	ClientName  string
	ClientEmail string
	ClientPhone *string
	Value       int64
	PaidAt      time.Time
}

// SendConfirmation отправляет подтверждение оплаты: email всегда,
// SMS — дополнительно при наличии телефона.
func (d *Dispatcher) SendConfirmation(ctx context.Context, p ConfirmationParams) []ChannelResult {
	const op = "notify.SendConfirmation"
	log := d.log.With(slog.String("op", op))

	value := formatValue(p.Value)
	paid := p.PaidAt.Format("02-01-2006")

	var results []ChannelResult

	emailBody := fmt.Sprintf(
		"Hello, %s!\n\nWe confirm receipt of your payment of %s on %s.\n\nThank you!",
		p.ClientName, value, paid)
	emailErr := d.email.SendEmail(p.ClientEmail, "Payment confirmed", emailBody)
	if emailErr != nil {
		log.Error("failed to send confirmation email", sl.Err(emailErr))
	}
	results = append(results, ChannelResult{Channel: models.ChannelEmail, OK: emailErr == nil, Message: emailBody})

	if p.ClientPhone == nil || *p.ClientPhone == "" {
		return results
	}

	smsMsg := fmt.Sprintf("Payment of %s confirmed. Thank you!", value)
	smsErr := d.messenger.SendSMS(ctx, *p.ClientPhone, smsMsg)
	if smsErr != nil {
		log.Error("failed to send confirmation sms", sl.Err(smsErr))
	}
	results = append(results, ChannelResult{Channel: models.ChannelSMS, OK: smsErr == nil, Message: smsMsg})

	return results
}

// ContractSignedParams данные для уведомления о подписанном контракте.
type ContractSignedParams struct {
	ClientName          string
	ClientEmail         string
	ContractDescription string
	PdfURL              string
}

// SendContractSigned отправляет уведомление о подписанном контракте. Только email.
func (d *Dispatcher) SendContractSigned(_ context.Context, p ContractSignedParams) []ChannelResult {
	const op = "notify.SendContractSigned"
	log := d.log.With(slog.String("op", op))

	emailBody := fmt.Sprintf(
		"Hello, %s!\n\nYour contract %q has been signed successfully!\n\nDownload the signed contract: %s\n\nThank you!",
		p.ClientName, p.ContractDescription, p.PdfURL)
	emailErr := d.email.SendEmail(p.ClientEmail, "Contract signed successfully", emailBody)
	if emailErr != nil {
		log.Error("failed to send contract signed email", sl.Err(emailErr))
	}
	return []ChannelResult{{Channel: models.ChannelEmail, OK: emailErr == nil, Message: emailBody}}
}
