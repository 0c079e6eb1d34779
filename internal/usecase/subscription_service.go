package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
	"github.com/vidtube/vidtube/internal/infrastructure/metrics"
)

// ToggleSubscriptionOutput reports the state after a subscription toggle.
type ToggleSubscriptionOutput struct {
	Subscribed       bool
	TotalSubscribers int64
}

// SubscriptionService defines the interface for channel subscriptions.
type SubscriptionService interface {
	// Toggle subscribes or unsubscribes the caller to a channel.
	Toggle(ctx context.Context, channelID, subscriberID uuid.UUID) (*ToggleSubscriptionOutput, error)

	// Subscribers returns the profiles of a channel's subscribers.
	Subscribers(ctx context.Context, channelID uuid.UUID) ([]model.Profile, error)

	// SubscribedChannels returns the profiles of channels a user follows.
	SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]model.Profile, error)
}

type subscriptionService struct {
	subscriptions repository.SubscriptionRepository
	users         repository.UserRepository
	events        repository.EventPublisher
	stats         StatsInvalidator
	logger        *slog.Logger
}

// NewSubscriptionService creates a new SubscriptionService instance.
func NewSubscriptionService(
	subscriptions repository.SubscriptionRepository,
	users repository.UserRepository,
	events repository.EventPublisher,
	stats StatsInvalidator,
	logger *slog.Logger,
) SubscriptionService {
	return &subscriptionService{
		subscriptions: subscriptions,
		users:         users,
		events:        events,
		stats:         stats,
		logger:        logger,
	}
}

// Toggle subscribes or unsubscribes the caller.
func (s *subscriptionService) Toggle(ctx context.Context, channelID, subscriberID uuid.UUID) (*ToggleSubscriptionOutput, error) {
	// Validates the pair, including the self-subscription case.
	if _, err := model.NewSubscription(channelID, subscriberID); err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("check channel: %w", err)
	}
	if !exists {
		return nil, repository.ErrChannelNotFound
	}

	subscribed, err := s.subscriptions.Toggle(ctx, channelID, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("toggle subscription: %w", err)
	}

	total, err := s.subscriptions.CountByChannel(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	event := repository.Event{
		Type:       repository.EventSubscriptionToggled,
		SubjectID:  channelID,
		ActorID:    subscriberID,
		OccurredAt: time.Now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(event.Type, metrics.EventStatusError).Inc()
		s.logger.Warn("failed to publish event",
			slog.String("type", event.Type),
			slog.String("error", err.Error()),
		)
	} else {
		metrics.EventsPublishedTotal.WithLabelValues(event.Type, metrics.EventStatusSuccess).Inc()
	}

	if err := s.stats.InvalidateStats(ctx, channelID); err != nil {
		// Stale stats age out with the cache TTL; the toggle itself succeeded.
		s.logger.Warn("failed to invalidate channel stats",
			slog.String("channel_id", channelID.String()),
			slog.String("error", err.Error()),
		)
	}

	return &ToggleSubscriptionOutput{Subscribed: subscribed, TotalSubscribers: total}, nil
}

// Subscribers returns the profiles of a channel's subscribers.
func (s *subscriptionService) Subscribers(ctx context.Context, channelID uuid.UUID) ([]model.Profile, error) {
	if channelID == uuid.Nil {
		return nil, model.ErrInvalidChannel
	}

	ids, err := s.subscriptions.ListSubscriberIDs(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("list subscriber IDs: %w", err)
	}

	return s.resolveProfiles(ctx, ids)
}

// SubscribedChannels returns the profiles of channels a user follows.
func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]model.Profile, error) {
	if subscriberID == uuid.Nil {
		return nil, model.ErrInvalidSubscriber
	}

	exists, err := s.users.Exists(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("check subscriber: %w", err)
	}
	if !exists {
		return nil, repository.ErrChannelNotFound
	}

	ids, err := s.subscriptions.ListSubscribedChannelIDs(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("list subscribed channel IDs: %w", err)
	}

	return s.resolveProfiles(ctx, ids)
}

// resolveProfiles maps IDs to profiles, dropping and logging the ones
// that no longer resolve to a user record.
func (s *subscriptionService) resolveProfiles(ctx context.Context, ids []uuid.UUID) ([]model.Profile, error) {
	if len(ids) == 0 {
		return []model.Profile{}, nil
	}

	byID, err := s.users.GetProfilesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch profiles: %w", err)
	}

	profiles := make([]model.Profile, 0, len(ids))
	for _, id := range ids {
		profile, ok := byID[id]
		if !ok {
			s.logger.Warn("dropping unresolved profile", slog.String("user_id", id.String()))
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
