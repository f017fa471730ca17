// Package models содержит доменные структуры сервиса: клиентов, контракты,
// подписи, подписки, фактуры и записи аудита, а также вспомогательные
// Dummy*-типы для приёма данных из JSON-запросов до их валидации.
package models

import "time"

// Client представляет клиента, с которым заключаются контракты.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	TaxID     *string   `json:"tax_id,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DummyClient используется для приёма данных клиента из JSON-запроса.
type DummyClient struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty"`
	TaxID   string `json:"tax_id,omitempty" validate:"omitempty"`
	Address string `json:"address,omitempty" validate:"omitempty"`
}

// ClientFilter параметры выборки клиентов.
type ClientFilter struct {
	Search string // подстрока по имени или email
}
