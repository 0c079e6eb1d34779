package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/infrastructure/metrics"
)

const statsCacheKeyPrefix = "channel_stats:"

// statsJSON is the JSON representation of ChannelStats for caching.
// Using an explicit struct avoids coupling to domain model JSON tags.
type statsJSON struct {
	ChannelID        string `json:"channel_id"`
	TotalVideos      int64  `json:"total_videos"`
	TotalViews       int64  `json:"total_views"`
	TotalSubscribers int64  `json:"total_subscribers"`
	TotalLikes       int64  `json:"total_likes"`
}

// RedisStatsCache implements StatsCache using Redis as the backing store.
type RedisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache creates a new Redis-backed stats cache.
func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{client: client}
}

// Get retrieves channel stats from Redis.
// Returns nil, nil on cache miss.
func (c *RedisStatsCache) Get(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error) {
	key := c.buildKey(channelID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss).Inc()
			return nil, nil // Cache miss
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	stats, err := c.deserialize(data)
	if err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError).Inc()
		return nil, fmt.Errorf("deserialize stats: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit).Inc()
	return stats, nil
}

// Set stores channel stats in Redis with the specified TTL.
func (c *RedisStatsCache) Set(ctx context.Context, stats *model.ChannelStats, ttl time.Duration) error {
	key := c.buildKey(stats.ChannelID)

	data, err := c.serialize(stats)
	if err != nil {
		return fmt.Errorf("serialize stats: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError).Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess).Inc()
	return nil
}

// Delete removes channel stats from Redis.
func (c *RedisStatsCache) Delete(ctx context.Context, channelID uuid.UUID) error {
	key := c.buildKey(channelID)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusError).Inc()
		return fmt.Errorf("redis del: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusSuccess).Inc()
	return nil
}

func (c *RedisStatsCache) buildKey(channelID uuid.UUID) string {
	return statsCacheKeyPrefix + channelID.String()
}

func (c *RedisStatsCache) serialize(stats *model.ChannelStats) ([]byte, error) {
	s := statsJSON{
		ChannelID:        stats.ChannelID.String(),
		TotalVideos:      stats.TotalVideos,
		TotalViews:       stats.TotalViews,
		TotalSubscribers: stats.TotalSubscribers,
		TotalLikes:       stats.TotalLikes,
	}
	return json.Marshal(s)
}

func (c *RedisStatsCache) deserialize(data []byte) (*model.ChannelStats, error) {
	var s statsJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	channelID, err := uuid.Parse(s.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("parse channel ID: %w", err)
	}

	return &model.ChannelStats{
		ChannelID:        channelID,
		TotalVideos:      s.TotalVideos,
		TotalViews:       s.TotalViews,
		TotalSubscribers: s.TotalSubscribers,
		TotalLikes:       s.TotalLikes,
	}, nil
}

// Compile-time verification that RedisStatsCache implements StatsCache.
var _ StatsCache = (*RedisStatsCache)(nil)
