// Package signprovider реализует адаптер внешнего сервиса цифровой подписи.
//
// Адаптер работает в одном из двух явных режимов: Live — реальные HTTP-вызовы
// провайдера, Simulated — детерминированные синтетические ответы для разработки
// и тестов. Режим выбирается при создании клиента и доступен вызывающему коду,
// чтобы тесты могли проверять, какой путь исполнялся.
package signprovider

import "time"

// Mode режим работы адаптера.
type Mode string

const (
	// ModeLive — реальные вызовы API провайдера.
	ModeLive Mode = "live"
	// ModeSimulated — синтетические ответы без сетевых вызовов.
	ModeSimulated Mode = "simulated"
)

// CreateEnvelopeRequest параметры создания конверта подписи.
type CreateEnvelopeRequest struct {
	PdfLocation string `json:"pdf_location" validate:"required"`
	SignerName  string `json:"signer_name" validate:"required"`
	SignerEmail string `json:"signer_email" validate:"required,email"`
	SignerTaxID string `json:"signer_tax_id,omitempty"`
}

// CreateEnvelopeResponse ответ провайдера на создание конверта.
type CreateEnvelopeResponse struct {
	DocumentID string `json:"document_id"`
	EnvelopeID string `json:"envelope_id"`
	SignURL    string `json:"sign_url"`
}

// EnvelopeStatus статус документа у провайдера.
type EnvelopeStatus struct {
	Status   string     `json:"status"` // pending, signed, cancelled
	SignedAt *time.Time `json:"signed_at,omitempty"`
}
