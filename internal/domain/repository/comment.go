package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/feed"
)

// CommentRepository defines the interface for comment persistence operations.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID retrieves a comment by ID.
	// Returns nil and ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListByVideo retrieves one page of a video's comments ordered per
	// sort, ties broken by ID ascending.
	ListByVideo(ctx context.Context, videoID uuid.UUID, sort feed.Sort, offset, limit int) ([]*model.Comment, error)

	// Update persists changes to an existing comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *model.Comment) error

	// Delete removes a comment. Returns ErrCommentNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByVideo removes all comments on a video. Used when the video
	// itself is deleted.
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) error
}
