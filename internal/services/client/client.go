// Package services содержит бизнес-логику для управления клиентами и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/contract-billing/internal/models"
)

// ClientRepository определяет методы для работы с клиентами в хранилище.
type ClientRepository interface {
	// CreateClient добавляет нового клиента и возвращает его ID.
	CreateClient(ctx context.Context, client models.Client) (int64, error)
	// ReadClient возвращает клиента по ID.
	ReadClient(ctx context.Context, id int64) (*models.Client, error)
	// UpdateClient обновляет данные клиента по ID.
	UpdateClient(ctx context.Context, client models.Client, id int64) (int, error)
	// ListClients возвращает список клиентов по фильтру.
	ListClients(ctx context.Context, filter models.ClientFilter) ([]*models.Client, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// ClientService реализует бизнес-логику работы с клиентами, включая кеширование.
type ClientService struct {
	repo  ClientRepository
	cache Cache
	log   *slog.Logger
}

// NewClientService создает новый экземпляр ClientService.
func NewClientService(repo ClientRepository, cache Cache, log *slog.Logger) *ClientService {
	return &ClientService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create создает нового клиента и возвращает его ID.
func (s *ClientService) Create(ctx context.Context, req models.DummyClient) (int64, error) {
	client := models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   optional(req.Phone),
		TaxID:   optional(req.TaxID),
		Address: optional(req.Address),
	}

	id, err := s.repo.CreateClient(ctx, client)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new client", slog.Int64("id", id))
	return id, nil
}

// Update обновляет данные клиента по ID и инвалидирует кеш.
func (s *ClientService) Update(ctx context.Context, req models.DummyClient, id int64) (int, error) {
	client := models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   optional(req.Phone),
		TaxID:   optional(req.TaxID),
		Address: optional(req.Address),
	}

	count, err := s.repo.UpdateClient(ctx, client, id)
	if err != nil {
		return 0, err
	}

	cacheKey := fmt.Sprintf("client:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate client cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return count, nil
}

// Read возвращает клиента по ID, используя кеш или репозиторий.
func (s *ClientService) Read(ctx context.Context, id int64) (*models.Client, error) {
	var result *models.Client
	cacheKey := fmt.Sprintf("client:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to get client from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ReadClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache client", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// List возвращает список клиентов с опциональным поиском по имени или email.
func (s *ClientService) List(ctx context.Context, search string) ([]*models.Client, error) {
	return s.repo.ListClients(ctx, models.ClientFilter{Search: search})
}
