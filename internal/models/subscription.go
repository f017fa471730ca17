package models

import "time"

// Статусы рекуррентной подписки у биллинг-провайдера.
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusSuspended = "suspended"
)

// Subscription представляет рекуррентную подписку, создаваемую у
// биллинг-провайдера при активации контракта. 1:1 с контрактом.
type Subscription struct {
	ID                     int64      `json:"id"`
	ContractID             int64      `json:"contract_id"`
	ExternalSubscriptionID *string    `json:"external_subscription_id,omitempty"`
	ExternalCustomerID     *string    `json:"external_customer_id,omitempty"`
	Status                 string     `json:"status"`
	NextDueDate            *time.Time `json:"next_due_date,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}
