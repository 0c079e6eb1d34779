package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text post on a user's channel page.
type Tweet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var ErrEmptyTweetText = errors.New("tweet text cannot be empty")

func NewTweet(ownerID uuid.UUID, text string) (*Tweet, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if text == "" {
		return nil, ErrEmptyTweetText
	}

	now := time.Now()
	return &Tweet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (t *Tweet) SetText(text string) error {
	if text == "" {
		return ErrEmptyTweetText
	}
	t.Text = text
	t.UpdatedAt = time.Now()
	return nil
}
