package repository

import (
	"context"

	"github.com/google/uuid"
)

// SubscriptionRepository defines the interface for channel subscriptions.
type SubscriptionRepository interface {
	// Toggle subscribes or unsubscribes as a single atomic store-side
	// operation keyed by (channel, subscriber). Returns true if the
	// subscription exists after the call.
	Toggle(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error)

	// CountByChannel returns the channel's subscriber count.
	CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error)

	// ListSubscriberIDs returns the IDs of users subscribed to a channel.
	ListSubscriberIDs(ctx context.Context, channelID uuid.UUID) ([]uuid.UUID, error)

	// ListSubscribedChannelIDs returns the IDs of channels a user follows.
	ListSubscribedChannelIDs(ctx context.Context, subscriberID uuid.UUID) ([]uuid.UUID, error)
}
