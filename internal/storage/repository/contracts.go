package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// CreateContract вставляет новый контракт и возвращает его ID.
func (s *Storage) CreateContract(ctx context.Context, contract models.Contract) (int64, error) {
	const op = "storage.CreateContract"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contracts (client_id, description, value, periodicity,
			      duration_months, start_date, end_date, status, pdf_url)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		contract.ClientID, contract.Description, contract.Value, contract.Periodicity,
		contract.DurationMonths, contract.StartDate, contract.EndDate,
		contract.Status, contract.PdfURL).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadContract возвращает контракт по его ID.
func (s *Storage) ReadContract(ctx context.Context, id int64) (*models.Contract, error) {
	const op = "storage.ReadContract"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, client_id, description, value, periodicity, duration_months,
			      start_date, end_date, status, pdf_url, created_at, updated_at
			  FROM contracts WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Contract
	if err := row.Scan(&result.ID, &result.ClientID, &result.Description, &result.Value,
		&result.Periodicity, &result.DurationMonths, &result.StartDate, &result.EndDate,
		&result.Status, &result.PdfURL, &result.CreatedAt, &result.UpdatedAt); err != nil {
		return nil, wrapRowErr(op, "contract", id, err)
	}
	return &result, nil
}

// UpdateContractStatus обновляет статус контракта и возвращает количество изменённых строк.
func (s *Storage) UpdateContractStatus(ctx context.Context, id int64, status string) (int, error) {
	const op = "storage.UpdateContractStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE contracts SET status = $1, updated_at = now() WHERE id = $2`
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

// MarkContractPendingSignature переводит контракт в pending_signature и сохраняет pdf_url.
func (s *Storage) MarkContractPendingSignature(ctx context.Context, id int64, pdfURL string) (int, error) {
	const op = "storage.MarkContractPendingSignature"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE contracts
			  SET status = $1, pdf_url = $2, updated_at = now()
			  WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, models.ContractStatusPendingSignature, pdfURL, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListContracts возвращает контракты, опционально отфильтрованные по статусу и клиенту.
func (s *Storage) ListContracts(ctx context.Context, filter models.ContractFilter) ([]*models.Contract, error) {
	const op = "storage.ListContracts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, client_id, description, value, periodicity, duration_months,
			      start_date, end_date, status, pdf_url, created_at, updated_at
			  FROM contracts
			  WHERE ($1::text IS NULL OR status = $1)
			    AND ($2::bigint IS NULL OR client_id = $2)
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, filter.Status, filter.ClientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var results []*models.Contract
	for rows.Next() {
		var c models.Contract
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Description, &c.Value,
			&c.Periodicity, &c.DurationMonths, &c.StartDate, &c.EndDate,
			&c.Status, &c.PdfURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		results = append(results, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return results, nil
}
