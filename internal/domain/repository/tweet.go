package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube/internal/domain/model"
)

// TweetRepository defines the interface for tweet persistence.
type TweetRepository interface {
	Create(ctx context.Context, tweet *model.Tweet) error

	// GetByID returns nil and ErrTweetNotFound if the tweet does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error)

	// ListByOwner retrieves a user's tweets, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error)

	Update(ctx context.Context, tweet *model.Tweet) error

	Delete(ctx context.Context, id uuid.UUID) error
}
