package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Subscription records that a user follows a channel. A channel is a
// user in their role as content owner; at most one subscription exists
// per (channel, subscriber) pair.
type Subscription struct {
	ID           uuid.UUID
	ChannelID    uuid.UUID
	SubscriberID uuid.UUID
	CreatedAt    time.Time
}

var (
	ErrInvalidChannel    = errors.New("channel ID cannot be nil")
	ErrInvalidSubscriber = errors.New("subscriber ID cannot be nil")
	ErrSelfSubscription  = errors.New("cannot subscribe to own channel")
)

func NewSubscription(channelID, subscriberID uuid.UUID) (*Subscription, error) {
	if channelID == uuid.Nil {
		return nil, ErrInvalidChannel
	}
	if subscriberID == uuid.Nil {
		return nil, ErrInvalidSubscriber
	}
	if channelID == subscriberID {
		return nil, ErrSelfSubscription
	}

	return &Subscription{
		ID:           uuid.New(),
		ChannelID:    channelID,
		SubscriberID: subscriberID,
		CreatedAt:    time.Now(),
	}, nil
}
