package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Video represents a video entity in the domain.
type Video struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Description  string
	VideoKey     string
	ThumbnailKey string
	Duration     float64
	Views        int64
	IsPublished  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var (
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrInvalidOwner = errors.New("owner ID cannot be nil")
	ErrTitleTooLong = errors.New("title exceeds maximum length of 255 characters")
)

const maxTitleLength = 255

// NewVideo creates a new unpublished Video owned by ownerID.
func NewVideo(ownerID uuid.UUID, title, description string) (*Video, error) {
	if ownerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}

	now := time.Now()
	return &Video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// TogglePublished flips the publication flag.
func (v *Video) TogglePublished() {
	v.IsPublished = !v.IsPublished
	v.UpdatedAt = time.Now()
}

// SetMediaKeys records the object storage keys once upload URLs are issued.
func (v *Video) SetMediaKeys(videoKey, thumbnailKey string) {
	v.VideoKey = videoKey
	v.ThumbnailKey = thumbnailKey
	v.UpdatedAt = time.Now()
}
