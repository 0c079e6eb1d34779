package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube/internal/domain/model"
)

// StatsCache defines the interface for caching channel dashboard stats.
// Implementations should handle serialization/deserialization transparently.
type StatsCache interface {
	// Get retrieves stats from cache by channel ID.
	// Returns nil, nil if the channel is not in cache (cache miss).
	Get(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error)

	// Set stores stats in cache with the specified TTL.
	Set(ctx context.Context, stats *model.ChannelStats, ttl time.Duration) error

	// Delete removes stats from cache by channel ID.
	// Returns nil if the channel was not in cache.
	Delete(ctx context.Context, channelID uuid.UUID) error
}
