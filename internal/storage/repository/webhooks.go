package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// CreateWebhookLog добавляет запись аудита отправленного вебхука. Журнал append-only.
func (s *Storage) CreateWebhookLog(ctx context.Context, l models.WebhookLog) (int64, error) {
	const op = "storage.CreateWebhookLog"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO webhooks_log (event, payload, status, response, error)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		l.Event, l.Payload, l.Status, l.Response, l.Error).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
