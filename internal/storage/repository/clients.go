package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// CreateClient вставляет нового клиента и возвращает его ID.
func (s *Storage) CreateClient(ctx context.Context, client models.Client) (int64, error) {
	const op = "storage.CreateClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO clients (name, email, phone, tax_id, address)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		client.Name, client.Email, client.Phone, client.TaxID, client.Address).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadClient возвращает клиента по его ID.
func (s *Storage) ReadClient(ctx context.Context, id int64) (*models.Client, error) {
	const op = "storage.ReadClient"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, phone, tax_id, address, created_at, updated_at
			  FROM clients WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Client
	if err := row.Scan(&result.ID, &result.Name, &result.Email, &result.Phone,
		&result.TaxID, &result.Address, &result.CreatedAt, &result.UpdatedAt); err != nil {
		return nil, wrapRowErr(op, "client", id, err)
	}
	return &result, nil
}

// UpdateClient обновляет данные клиента по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateClient(ctx context.Context, client models.Client, id int64) (int, error) {
	const op = "storage.UpdateClient"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE clients
			  SET name = $1, email = $2, phone = $3, tax_id = $4, address = $5,
			      updated_at = now()
			  WHERE id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		client.Name, client.Email, client.Phone, client.TaxID, client.Address, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListClients возвращает список клиентов, опционально отфильтрованный
// подстрокой по имени или email.
func (s *Storage) ListClients(ctx context.Context, filter models.ClientFilter) ([]*models.Client, error) {
	const op = "storage.ListClients"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, phone, tax_id, address, created_at, updated_at
			  FROM clients
			  WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var results []*models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone,
			&c.TaxID, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		results = append(results, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return results, nil
}
