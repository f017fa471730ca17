package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// CreateSignature вставляет новую запись подписи и возвращает её ID.
func (s *Storage) CreateSignature(ctx context.Context, sig models.Signature) (int64, error) {
	const op = "storage.CreateSignature"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO signatures (contract_id, external_envelope_id,
			      external_document_id, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		sig.ContractID, sig.ExternalEnvelopeID, sig.ExternalDocumentID, sig.Status).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// FindSignatureByContract возвращает подпись контракта или nil, если её ещё нет.
func (s *Storage) FindSignatureByContract(ctx context.Context, contractID int64) (*models.Signature, error) {
	const op = "storage.FindSignatureByContract"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, contract_id, external_envelope_id, external_document_id,
			      status, signed_at, created_at, updated_at
			  FROM signatures WHERE contract_id = $1`
	row := s.DB.QueryRowContext(ctx, query, contractID)

	var result models.Signature
	err := row.Scan(&result.ID, &result.ContractID, &result.ExternalEnvelopeID,
		&result.ExternalDocumentID, &result.Status, &result.SignedAt,
		&result.CreatedAt, &result.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// MarkSignatureSigned переводит подпись в signed с сохранением момента подписания.
func (s *Storage) MarkSignatureSigned(ctx context.Context, id int64, signedAt time.Time) (int, error) {
	const op = "storage.MarkSignatureSigned"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE signatures
			  SET status = $1, signed_at = $2, updated_at = now()
			  WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, models.SignatureStatusSigned, signedAt, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateSignatureStatus обновляет статус подписи.
func (s *Storage) UpdateSignatureStatus(ctx context.Context, id int64, status string) (int, error) {
	const op = "storage.UpdateSignatureStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE signatures SET status = $1, updated_at = now() WHERE id = $2`
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
