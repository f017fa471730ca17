package models

import "time"

// Статусы фактуры.
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice представляет фактуру по рекуррентной подписке.
// ReminderSent переводится из false в true ровно один раз за платёжный цикл.
type Invoice struct {
	ID                int64      `json:"id"`
	SubscriptionID    int64      `json:"subscription_id"`
	ExternalInvoiceID *string    `json:"external_invoice_id,omitempty"`
	Value             int64      `json:"value"`
	DueDate           time.Time  `json:"due_date"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	Status            string     `json:"status"`
	ReminderSent      bool       `json:"reminder_sent"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// InvoiceFilter параметры выборки фактур.
type InvoiceFilter struct {
	SubscriptionID *int64
	Status         *string
}
