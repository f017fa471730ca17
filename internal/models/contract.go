package models

import "time"

// Статусы контракта. Переходы монотонны: draft -> pending_signature -> active,
// из draft/pending_signature/active возможен переход в cancelled,
// active после даты окончания считается expired.
const (
	ContractStatusDraft            = "draft"
	ContractStatusPendingSignature = "pending_signature"
	ContractStatusActive           = "active"
	ContractStatusCancelled        = "cancelled"
	ContractStatusExpired          = "expired"
)

// Периодичность списаний по контракту.
const (
	PeriodicityMonthly    = "monthly"
	PeriodicityQuarterly  = "quarterly"
	PeriodicitySemiannual = "semiannual"
	PeriodicityAnnual     = "annual"
)

// Contract представляет контракт клиента. Value хранится в минимальных
// денежных единицах (центах). EndDate = StartDate + DurationMonths месяцев.
type Contract struct {
	ID             int64     `json:"id"`
	ClientID       int64     `json:"client_id"`
	Description    string    `json:"description"`
	Value          int64     `json:"value"`
	Periodicity    string    `json:"periodicity"`
	DurationMonths int       `json:"duration_months"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
	PdfURL         *string   `json:"pdf_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DummyContract используется для приёма данных контракта из JSON-запроса.
// Дата начала приходит строкой в формате 02-01-2006 и может отсутствовать.
type DummyContract struct {
	ClientID       int64  `json:"client_id" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Value          int64  `json:"value" validate:"required,gt=0"`
	Periodicity    string `json:"periodicity" validate:"required,oneof=monthly quarterly semiannual annual"`
	DurationMonths int    `json:"duration_months" validate:"required,gte=1"`
	StartDate      string `json:"start_date,omitempty" validate:"omitempty"`
}

// DummySendForSignature параметры отправки контракта на подпись.
type DummySendForSignature struct {
	PdfURL string `json:"pdf_url" validate:"required,url"`
}

// ContractFilter параметры выборки контрактов.
type ContractFilter struct {
	Status   *string
	ClientID *int64
}
