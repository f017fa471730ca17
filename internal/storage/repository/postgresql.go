// Package repository реализует хранилище данных на основе PostgreSQL
// для клиентов, контрактов, подписей, подписок, фактур и записей аудита.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, apperrs.ErrUnavailable, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	return storage.CheckDatabaseReady(context.Background())
}

// CheckDatabaseReady проверяет, что схема применена и база отвечает.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'contracts'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table contracts missing or query error: %w", err)
	}
	return nil
}

// wrapRowErr переводит ошибки чтения одной строки в доменные виды:
// отсутствие строки — в ErrNotFound, остальное — в ErrUnavailable.
func wrapRowErr(op, entity string, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrs.NotFound(entity, id))
	}
	return fmt.Errorf("%s: %w: %v", op, apperrs.ErrUnavailable, err)
}
