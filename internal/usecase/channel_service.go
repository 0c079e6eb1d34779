package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
	"github.com/vidtube/vidtube/internal/feed"
)

// ChannelService serves the channel owner's dashboard: aggregate stats
// and the channel's own videos with reaction counts.
type ChannelService interface {
	// Stats returns the channel's aggregate totals. The three underlying
	// counts are independent and fetched concurrently.
	Stats(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error)

	// DashboardVideos returns the owner's view of their channel feed: the
	// video feed annotated relative to the owner themselves.
	DashboardVideos(ctx context.Context, channelID uuid.UUID, page feed.Page) (*VideoFeedOutput, error)
}

type channelService struct {
	videos        repository.VideoRepository
	reactions     repository.ReactionRepository
	subscriptions repository.SubscriptionRepository
	users         repository.UserRepository
	feeds         FeedService
	logger        *slog.Logger
}

// NewChannelService creates a new ChannelService instance.
func NewChannelService(
	videos repository.VideoRepository,
	reactions repository.ReactionRepository,
	subscriptions repository.SubscriptionRepository,
	users repository.UserRepository,
	feeds FeedService,
	logger *slog.Logger,
) ChannelService {
	return &channelService{
		videos:        videos,
		reactions:     reactions,
		subscriptions: subscriptions,
		users:         users,
		feeds:         feeds,
		logger:        logger,
	}
}

// Stats computes the channel dashboard totals.
func (s *channelService) Stats(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error) {
	if channelID == uuid.Nil {
		return nil, ErrInvalidScope
	}

	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("check channel: %w", err)
	}
	if !exists {
		return nil, repository.ErrChannelNotFound
	}

	stats := &model.ChannelStats{ChannelID: channelID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		videoStats, err := s.videos.ChannelStats(gctx, channelID)
		if err != nil {
			return fmt.Errorf("video stats: %w", err)
		}
		stats.TotalVideos = videoStats.TotalVideos
		stats.TotalViews = videoStats.TotalViews
		return nil
	})
	g.Go(func() error {
		subs, err := s.subscriptions.CountByChannel(gctx, channelID)
		if err != nil {
			return fmt.Errorf("subscriber count: %w", err)
		}
		stats.TotalSubscribers = subs
		return nil
	})
	g.Go(func() error {
		likes, err := s.reactions.CountVideoLikesByChannel(gctx, channelID)
		if err != nil {
			return fmt.Errorf("channel likes: %w", err)
		}
		stats.TotalLikes = likes
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// DashboardVideos returns the channel feed annotated for the owner.
func (s *channelService) DashboardVideos(ctx context.Context, channelID uuid.UUID, page feed.Page) (*VideoFeedOutput, error) {
	return s.feeds.BuildVideoFeed(ctx, VideoFeedInput{
		ChannelID: channelID,
		ViewerID:  channelID,
		Sort:      feed.SortNewest,
		Page:      page,
	})
}
