package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment on a video.
type Comment struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	VideoID   uuid.UUID
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrEmptyCommentText = errors.New("comment text cannot be empty")
	ErrInvalidVideoRef  = errors.New("video ID cannot be nil")
)

// NewComment creates a Comment on the given video.
func NewComment(ownerID, videoID uuid.UUID, text string) (*Comment, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if videoID == uuid.Nil {
		return nil, ErrInvalidVideoRef
	}
	if text == "" {
		return nil, ErrEmptyCommentText
	}

	now := time.Now()
	return &Comment{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		VideoID:   videoID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetText replaces the comment body.
func (c *Comment) SetText(text string) error {
	if text == "" {
		return ErrEmptyCommentText
	}
	c.Text = text
	c.UpdatedAt = time.Now()
	return nil
}
