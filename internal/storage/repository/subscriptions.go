package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// CreateSubscription вставляет новую рекуррентную подписку и возвращает её ID.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (int64, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (contract_id, external_subscription_id,
			      external_customer_id, status, next_due_date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		sub.ContractID, sub.ExternalSubscriptionID, sub.ExternalCustomerID,
		sub.Status, sub.NextDueDate).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadSubscription возвращает подписку по её ID.
func (s *Storage) ReadSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	const op = "storage.ReadSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, contract_id, external_subscription_id, external_customer_id,
			      status, next_due_date, created_at, updated_at
			  FROM subscriptions WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Subscription
	if err := row.Scan(&result.ID, &result.ContractID, &result.ExternalSubscriptionID,
		&result.ExternalCustomerID, &result.Status, &result.NextDueDate,
		&result.CreatedAt, &result.UpdatedAt); err != nil {
		return nil, wrapRowErr(op, "subscription", id, err)
	}
	return &result, nil
}

// FindSubscriptionByContract возвращает подписку контракта или nil, если её ещё нет.
func (s *Storage) FindSubscriptionByContract(ctx context.Context, contractID int64) (*models.Subscription, error) {
	const op = "storage.FindSubscriptionByContract"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, contract_id, external_subscription_id, external_customer_id,
			      status, next_due_date, created_at, updated_at
			  FROM subscriptions WHERE contract_id = $1`
	row := s.DB.QueryRowContext(ctx, query, contractID)

	var result models.Subscription
	err := row.Scan(&result.ID, &result.ContractID, &result.ExternalSubscriptionID,
		&result.ExternalCustomerID, &result.Status, &result.NextDueDate,
		&result.CreatedAt, &result.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateSubscriptionStatus обновляет статус подписки.
func (s *Storage) UpdateSubscriptionStatus(ctx context.Context, id int64, status string) (int, error) {
	const op = "storage.UpdateSubscriptionStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions SET status = $1, updated_at = now() WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteSubscription удаляет запись подписки. Используется только как компенсация
// при неудачной активации контракта, когда запись у провайдера уже отменена.
func (s *Storage) DeleteSubscription(ctx context.Context, id int64) error {
	const op = "storage.DeleteSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
