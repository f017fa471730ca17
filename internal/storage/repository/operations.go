package repository

import (
	"context"
	"fmt"
)

// RecordOperationKey сохраняет ключ идемпотентности выполненной операции
// жизненного цикла контракта. Повторная вставка того же ключа нарушает
// уникальный индекс и возвращает ошибку, отсекая дубликаты.
func (s *Storage) RecordOperationKey(ctx context.Context, key, operation string, contractID int64) error {
	const op = "storage.RecordOperationKey"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO operation_keys (key, operation, contract_id)
			  VALUES ($1, $2, $3)`
	if _, err := s.DB.ExecContext(ctx, query, key, operation, contractID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
