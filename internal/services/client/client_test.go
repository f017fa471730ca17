package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/apperrs"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateClient(ctx context.Context, client models.Client) (int64, error) {
	args := m.Called(ctx, client)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) ReadClient(ctx context.Context, id int64) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *RepoMock) UpdateClient(ctx context.Context, client models.Client, id int64) (int, error) {
	args := m.Called(ctx, client, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ListClients(ctx context.Context, filter models.ClientFilter) ([]*models.Client, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Client), args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCreateClient(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateClient", mock.Anything, mock.MatchedBy(func(c models.Client) bool {
		return c.Name == "Ana" && c.Email == "ana@example.com" &&
			c.Phone != nil && *c.Phone == "+5511999990000" && c.TaxID == nil
	})).Return(int64(1), nil)

	svc := NewClientService(repo, new(CacheMock), testLogger())
	id, err := svc.Create(context.Background(), models.DummyClient{
		Name:  "Ana",
		Email: "ana@example.com",
		Phone: "+5511999990000",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	repo.AssertExpectations(t)
}

func TestReadClient(t *testing.T) {
	cases := []struct {
		name       string
		setupMocks func(repo *RepoMock, cache *CacheMock)
		wantErr    bool
	}{
		{
			name: "попадание в кеш не обращается к хранилищу",
			setupMocks: func(_ *RepoMock, cache *CacheMock) {
				cache.On("Get", "client:1", mock.Anything).Return(true, nil)
			},
		},
		{
			name: "промах кеша читает хранилище и кеширует результат",
			setupMocks: func(repo *RepoMock, cache *CacheMock) {
				cache.On("Get", "client:1", mock.Anything).Return(false, nil)
				repo.On("ReadClient", mock.Anything, int64(1)).Return(&models.Client{
					ID: 1, Name: "Ana", Email: "ana@example.com",
				}, nil)
				cache.On("Set", "client:1", mock.Anything, time.Hour).Return(nil)
			},
		},
		{
			name: "несуществующий клиент",
			setupMocks: func(repo *RepoMock, cache *CacheMock) {
				cache.On("Get", "client:1", mock.Anything).Return(false, nil)
				repo.On("ReadClient", mock.Anything, int64(1)).
					Return(nil, apperrs.NotFound("client", 1))
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(CacheMock)
			tc.setupMocks(repo, cache)

			svc := NewClientService(repo, cache, testLogger())
			_, err := svc.Read(context.Background(), 1)

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestUpdateClient_InvalidatesCache(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	repo.On("UpdateClient", mock.Anything, mock.Anything, int64(1)).Return(1, nil)
	cache.On("Invalidate", "client:1").Return(nil)

	svc := NewClientService(repo, cache, testLogger())
	count, err := svc.Update(context.Background(), models.DummyClient{
		Name:  "Ana",
		Email: "ana@example.com",
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	cache.AssertExpectations(t)
}

func TestListClients(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListClients", mock.Anything, models.ClientFilter{Search: "ana"}).
		Return([]*models.Client{{ID: 1, Name: "Ana"}}, nil)

	svc := NewClientService(repo, new(CacheMock), testLogger())
	clients, err := svc.List(context.Background(), "ana")

	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana", clients[0].Name)
}
