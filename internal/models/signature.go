package models

import "time"

// Статусы подписи контракта.
const (
	SignatureStatusPending   = "pending"
	SignatureStatusSigned    = "signed"
	SignatureStatusCancelled = "cancelled"
)

// Signature представляет процесс цифровой подписи контракта.
// Запись создаётся при переходе контракта в pending_signature, 1:1 с контрактом.
type Signature struct {
	ID                 int64      `json:"id"`
	ContractID         int64      `json:"contract_id"`
	ExternalEnvelopeID *string    `json:"external_envelope_id,omitempty"`
	ExternalDocumentID *string    `json:"external_document_id,omitempty"`
	Status             string     `json:"status"`
	SignedAt           *time.Time `json:"signed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
