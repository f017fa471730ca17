package models

import "time"

// Каналы доставки уведомлений.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelChat  = "chat"
)

// Назначения уведомлений.
const (
	PurposeReminder     = "reminder"
	PurposeConfirmation = "confirmation"
	PurposeAlert        = "alert"
)

// Статусы доставки уведомления.
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// Notification — append-only запись аудита отправленных уведомлений.
type Notification struct {
	ID        int64      `json:"id"`
	ClientID  int64      `json:"client_id"`
	InvoiceID *int64     `json:"invoice_id,omitempty"`
	Channel   string     `json:"channel"`
	Purpose   string     `json:"purpose"`
	Status    string     `json:"status"`
	Message   string     `json:"message"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
