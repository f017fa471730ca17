package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contract-billing/internal/config"
	"github.com/magabrotheeeer/contract-billing/internal/models"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
	}
	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache, mr
}

func TestSetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)

	client := &models.Client{ID: 1, Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, cache.Set("client:1", client, time.Hour))

	var got *models.Client
	found, err := cache.Get("client:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestGet_MissingKey(t *testing.T) {
	cache, _ := setupTestCache(t)

	var got *models.Client
	found, err := cache.Get("client:999", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache, _ := setupTestCache(t)

	client := &models.Client{ID: 1, Name: "Ana"}
	require.NoError(t, cache.Set("client:1", client, time.Hour))
	require.NoError(t, cache.Invalidate("client:1"))

	var got *models.Client
	found, err := cache.Get("client:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSet_Expiration(t *testing.T) {
	cache, mr := setupTestCache(t)

	client := &models.Client{ID: 1, Name: "Ana"}
	require.NoError(t, cache.Set("client:1", client, time.Minute))

	mr.FastForward(2 * time.Minute)

	var got *models.Client
	found, err := cache.Get("client:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
