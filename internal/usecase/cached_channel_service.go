package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/feed"
	"github.com/vidtube/vidtube/internal/infrastructure/cache"
	"github.com/vidtube/vidtube/internal/infrastructure/metrics"
)

// CachedChannelServiceConfig holds configuration for CachedChannelService.
type CachedChannelServiceConfig struct {
	// StatsTTL is the TTL for cached channel stats.
	StatsTTL time.Duration
}

// DefaultCachedChannelServiceConfig returns the default configuration.
func DefaultCachedChannelServiceConfig() CachedChannelServiceConfig {
	return CachedChannelServiceConfig{
		StatsTTL: 2 * time.Minute,
	}
}

// StatsInvalidator drops a channel's cached stats. Write paths that
// change the totals (video publish/delete, subscription toggles, video
// reactions) call this so readers do not wait out the TTL.
type StatsInvalidator interface {
	InvalidateStats(ctx context.Context, channelID uuid.UUID) error
}

// CachedChannelService is a ChannelService whose Stats reads are served
// through an invalidatable cache.
type CachedChannelService interface {
	ChannelService
	StatsInvalidator
}

// cachedChannelService wraps ChannelService with stats caching.
// It implements the decorator pattern to add caching without modifying
// the original service.
type cachedChannelService struct {
	delegate ChannelService
	cache    cache.StatsCache
	sfGroup  singleflight.Group

	statsTTL time.Duration
	logger   *slog.Logger
}

// NewCachedChannelService creates a CachedChannelService wrapping the
// provided ChannelService.
func NewCachedChannelService(
	delegate ChannelService,
	statsCache cache.StatsCache,
	cfg CachedChannelServiceConfig,
	logger *slog.Logger,
) CachedChannelService {
	return &cachedChannelService{
		delegate: delegate,
		cache:    statsCache,
		statsTTL: cfg.StatsTTL,
		logger:   logger,
	}
}

// Stats retrieves channel stats with caching.
// Uses singleflight to prevent cache stampede on concurrent requests for
// the same channel.
func (s *cachedChannelService) Stats(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error) {
	key := channelID.String()
	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.statsWithCache(ctx, channelID)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	return result.(*model.ChannelStats), nil
}

// DashboardVideos delegates to the underlying service. Feed pages are
// viewer-relative and change on every write, so they are not cached.
func (s *cachedChannelService) DashboardVideos(ctx context.Context, channelID uuid.UUID, page feed.Page) (*VideoFeedOutput, error) {
	return s.delegate.DashboardVideos(ctx, channelID, page)
}

// statsWithCache implements the cache-aside pattern.
func (s *cachedChannelService) statsWithCache(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error) {
	stats, err := s.cache.Get(ctx, channelID)
	if err != nil {
		// Log cache error but continue to the store.
		s.logger.Warn("stats cache get failed, falling back to store",
			slog.String("channel_id", channelID.String()),
			slog.String("error", err.Error()),
		)
	}

	if stats != nil {
		return stats, nil // Cache hit
	}

	stats, err = s.delegate.Stats(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, stats, s.statsTTL); err != nil {
		s.logger.Warn("failed to cache channel stats",
			slog.String("channel_id", channelID.String()),
			slog.String("error", err.Error()),
		)
	}

	return stats, nil
}

// InvalidateStats removes a channel's stats from the cache. Called by
// write paths that change the totals.
func (s *cachedChannelService) InvalidateStats(ctx context.Context, channelID uuid.UUID) error {
	return s.cache.Delete(ctx, channelID)
}
