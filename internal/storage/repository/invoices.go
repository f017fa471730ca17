package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// CreateInvoice вставляет новую фактуру и возвращает её ID.
func (s *Storage) CreateInvoice(ctx context.Context, inv models.Invoice) (int64, error) {
	const op = "storage.CreateInvoice"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO invoices (subscription_id, external_invoice_id, value,
			      due_date, status, reminder_sent)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		inv.SubscriptionID, inv.ExternalInvoiceID, inv.Value,
		inv.DueDate, inv.Status, inv.ReminderSent).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadInvoice возвращает фактуру по её ID.
func (s *Storage) ReadInvoice(ctx context.Context, id int64) (*models.Invoice, error) {
	const op = "storage.ReadInvoice"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, subscription_id, external_invoice_id, value, due_date,
			      paid_at, status, reminder_sent, created_at, updated_at
			  FROM invoices WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Invoice
	if err := row.Scan(&result.ID, &result.SubscriptionID, &result.ExternalInvoiceID,
		&result.Value, &result.DueDate, &result.PaidAt, &result.Status,
		&result.ReminderSent, &result.CreatedAt, &result.UpdatedAt); err != nil {
		return nil, wrapRowErr(op, "invoice", id, err)
	}
	return &result, nil
}

// ListInvoices возвращает фактуры, опционально отфильтрованные по подписке и статусу.
func (s *Storage) ListInvoices(ctx context.Context, filter models.InvoiceFilter) ([]*models.Invoice, error) {
	const op = "storage.ListInvoices"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, subscription_id, external_invoice_id, value, due_date,
			      paid_at, status, reminder_sent, created_at, updated_at
			  FROM invoices
			  WHERE ($1::bigint IS NULL OR subscription_id = $1)
			    AND ($2::text IS NULL OR status = $2)
			  ORDER BY due_date ASC`
	rows, err := s.DB.QueryContext(ctx, query, filter.SubscriptionID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var results []*models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(&inv.ID, &inv.SubscriptionID, &inv.ExternalInvoiceID,
			&inv.Value, &inv.DueDate, &inv.PaidAt, &inv.Status,
			&inv.ReminderSent, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		results = append(results, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return results, nil
}

// MarkInvoicePaid переводит фактуру в paid с сохранением момента оплаты.
func (s *Storage) MarkInvoicePaid(ctx context.Context, id int64, paidAt time.Time) (int, error) {
	const op = "storage.MarkInvoicePaid"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE invoices
			  SET status = $1, paid_at = $2, updated_at = now()
			  WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, models.InvoiceStatusPaid, paidAt, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// MarkReminderSent переводит reminder_sent фактуры из false в true.
// Возвращает 0 изменённых строк, если напоминание уже было отправлено:
// условие в WHERE защищает от двойной отправки при конкурентных вызовах.
func (s *Storage) MarkReminderSent(ctx context.Context, id int64) (int, error) {
	const op = "storage.MarkReminderSent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE invoices
			  SET reminder_sent = TRUE, updated_at = now()
			  WHERE id = $1 AND reminder_sent = FALSE`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
