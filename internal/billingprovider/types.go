// Package billingprovider реализует адаптер внешнего сервиса рекуррентного биллинга.
//
// Как и signprovider, адаптер имеет явный режим Live/Simulated: без API-ключа
// возвращаются детерминированные синтетические идентификаторы.
package billingprovider

import "time"

// Mode режим работы адаптера.
type Mode string

const (
	// ModeLive — реальные вызовы API провайдера.
	ModeLive Mode = "live"
	// ModeSimulated — синтетические ответы без сетевых вызовов.
	ModeSimulated Mode = "simulated"
)

// CreateCustomerRequest параметры создания клиента у провайдера.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	TaxID string `json:"tax_id,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CreateCustomerResponse ответ провайдера на создание клиента.
type CreateCustomerResponse struct {
	CustomerID string `json:"customer_id"`
}

// CreateSubscriptionRequest параметры создания рекуррентной подписки.
// Value в минимальных денежных единицах, Cycle — периодичность в формате провайдера.
type CreateSubscriptionRequest struct {
	CustomerID   string    `json:"customer_id" validate:"required"`
	Value        int64     `json:"value" validate:"required,gt=0"`
	Cycle        string    `json:"cycle" validate:"required"`
	Description  string    `json:"description"`
	FirstDueDate time.Time `json:"first_due_date"`
}

// CreateSubscriptionResponse ответ провайдера на создание подписки.
type CreateSubscriptionResponse struct {
	SubscriptionID string    `json:"subscription_id"`
	CustomerID     string    `json:"customer_id"`
	NextDueDate    time.Time `json:"next_due_date"`
}

// InvoiceData данные фактуры у провайдера.
type InvoiceData struct {
	InvoiceID  string    `json:"invoice_id"`
	Value      int64     `json:"value"`
	DueDate    time.Time `json:"due_date"`
	Status     string    `json:"status"` // pending, paid, overdue
	PaymentURL string    `json:"payment_url"`
}

// cycleByPeriodicity переводит периодичность контракта в формат провайдера.
var cycleByPeriodicity = map[string]string{
	"monthly":    "MONTHLY",
	"quarterly":  "QUARTERLY",
	"semiannual": "SEMIANNUALLY",
	"annual":     "YEARLY",
}

// Cycle возвращает периодичность в формате провайдера. Неизвестное значение
// возвращается как есть и будет отклонено провайдером.
func Cycle(periodicity string) string {
	if c, ok := cycleByPeriodicity[periodicity]; ok {
		return c
	}
	return periodicity
}
