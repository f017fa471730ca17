package models

import "time"

// Статусы доставки вебхука в CRM.
const (
	WebhookStatusSuccess = "success"
	WebhookStatusError   = "error"
)

// WebhookLog — append-only запись аудита отправленных в CRM вебхуков.
type WebhookLog struct {
	ID        int64     `json:"id"`
	Event     string    `json:"event"`
	Payload   string    `json:"payload"`
	Status    string    `json:"status"`
	Response  *string   `json:"response,omitempty"`
	Error     *string   `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
