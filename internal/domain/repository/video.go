package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/feed"
)

// VideoRepository defines the interface for video persistence operations.
// Implementations should be provided by the infrastructure layer (e.g., PostgreSQL).
type VideoRepository interface {
	// Create persists a new video entity.
	Create(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by its unique identifier.
	// Returns nil and ErrVideoNotFound if the video does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)

	// GetByIDs retrieves videos for the given IDs, preserving input order.
	// Missing IDs are skipped, not errors.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Video, error)

	// ListByChannel retrieves one page of a channel's videos ordered per
	// sort, ties broken by ID ascending. The caller controls the hasMore
	// probe through limit.
	ListByChannel(ctx context.Context, channelID uuid.UUID, sort feed.Sort, offset, limit int) ([]*model.Video, error)

	// Update persists changes to an existing video entity.
	// Returns ErrVideoNotFound if the video does not exist.
	Update(ctx context.Context, video *model.Video) error

	// Delete removes a video. Returns ErrVideoNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the view counter by one.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// ChannelStats returns the total video and view counts for a channel.
	ChannelStats(ctx context.Context, channelID uuid.UUID) (VideoStats, error)
}

// VideoStats aggregates a channel's video totals for the dashboard.
type VideoStats struct {
	TotalVideos int64
	TotalViews  int64
}
