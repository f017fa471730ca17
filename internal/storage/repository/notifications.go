package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// CreateNotification добавляет запись аудита уведомления. Журнал append-only.
func (s *Storage) CreateNotification(ctx context.Context, n models.Notification) (int64, error) {
	const op = "storage.CreateNotification"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO notifications (client_id, invoice_id, channel, purpose,
			      status, message, sent_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		n.ClientID, n.InvoiceID, n.Channel, n.Purpose,
		n.Status, n.Message, n.SentAt).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListNotificationsByClient возвращает уведомления клиента, новые первыми.
func (s *Storage) ListNotificationsByClient(ctx context.Context, clientID int64) ([]*models.Notification, error) {
	const op = "storage.ListNotificationsByClient"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, client_id, invoice_id, channel, purpose, status, message,
			      sent_at, created_at
			  FROM notifications
			  WHERE client_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var results []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.ClientID, &n.InvoiceID, &n.Channel, &n.Purpose,
			&n.Status, &n.Message, &n.SentAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		results = append(results, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return results, nil
}
