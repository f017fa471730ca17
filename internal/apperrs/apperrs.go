// Package apperrs определяет доменные виды ошибок сервиса.
//
// Все операции бизнес-уровня возвращают ошибки, обёрнутые в один из этих видов,
// чтобы HTTP-слой мог выбрать корректный статус ответа, не разбирая текст ошибки.
package apperrs

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок. Сравнивать через errors.Is.
var (
	// ErrValidation — некорректные входные данные (неположительная сумма,
	// нулевая длительность, невалидный email, недопустимый переход статуса).
	ErrValidation = errors.New("validation error")
	// ErrNotFound — запрошенный клиент/контракт/подписка/фатура отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrExternalService — вызов внешнего провайдера завершился ошибкой.
	ErrExternalService = errors.New("external service error")
	// ErrUnavailable — хранилище данных недоступно.
	ErrUnavailable = errors.New("storage unavailable")
)

// Validation оборачивает сообщение в ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound оборачивает имя сущности в ErrNotFound.
func NotFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
}

// External оборачивает ошибку провайдера в ErrExternalService.
func External(provider string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrExternalService, provider, err)
}
