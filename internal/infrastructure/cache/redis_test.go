package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vidtube/vidtube/internal/domain/model"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return client, cleanup
}

func TestRedisStatsCache_Get_CacheHit(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := NewRedisStatsCache(client)
	ctx := context.Background()

	stats := &model.ChannelStats{
		ChannelID:        uuid.New(),
		TotalVideos:      12,
		TotalViews:       3400,
		TotalSubscribers: 250,
		TotalLikes:       89,
	}

	err := cache.Set(ctx, stats, 5*time.Minute)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get(ctx, stats.ChannelID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got == nil {
		t.Fatal("expected stats, got nil")
	}

	if *got != *stats {
		t.Errorf("Get() = %+v, want %+v", got, stats)
	}
}

func TestRedisStatsCache_Get_CacheMiss(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := NewRedisStatsCache(client)
	ctx := context.Background()

	got, err := cache.Get(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got != nil {
		t.Errorf("expected nil for cache miss, got %v", got)
	}
}

func TestRedisStatsCache_Get_Expired(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := NewRedisStatsCache(client)
	ctx := context.Background()

	stats := &model.ChannelStats{ChannelID: uuid.New(), TotalVideos: 1}

	if err := cache.Set(ctx, stats, time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mr.FastForward(2 * time.Second)

	got, err := cache.Get(ctx, stats.ChannelID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after TTL expiry, got %v", got)
	}
}

func TestRedisStatsCache_Delete(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := NewRedisStatsCache(client)
	ctx := context.Background()

	stats := &model.ChannelStats{
		ChannelID:   uuid.New(),
		TotalVideos: 3,
	}

	err := cache.Set(ctx, stats, 5*time.Minute)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	err = cache.Delete(ctx, stats.ChannelID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	got, err := cache.Get(ctx, stats.ChannelID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got != nil {
		t.Errorf("expected nil after delete, got %v", got)
	}
}

func TestRedisStatsCache_Delete_NonExistent(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := NewRedisStatsCache(client)
	ctx := context.Background()

	err := cache.Delete(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Delete failed for non-existent key: %v", err)
	}
}

func TestRedisStatsCache_Get_CorruptPayload(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := NewRedisStatsCache(client)
	ctx := context.Background()

	channelID := uuid.New()
	if err := client.Set(ctx, cache.buildKey(channelID), "not-json", 0).Err(); err != nil {
		t.Fatalf("raw set failed: %v", err)
	}

	if _, err := cache.Get(ctx, channelID); err == nil {
		t.Error("expected error for corrupt payload, got nil")
	}
}

func TestRedisStatsCache_buildKey(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	cache := NewRedisStatsCache(client)
	channelID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	key := cache.buildKey(channelID)
	expected := "channel_stats:550e8400-e29b-41d4-a716-446655440000"

	if key != expected {
		t.Errorf("buildKey() = %v, want %v", key, expected)
	}
}
