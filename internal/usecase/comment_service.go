package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
	"github.com/vidtube/vidtube/internal/feed"
	"github.com/vidtube/vidtube/internal/infrastructure/metrics"
)

// ErrNotCommentOwner is returned when a caller tries to modify a comment
// they do not own.
var ErrNotCommentOwner = errors.New("caller does not own this comment")

// CommentService defines the interface for comment business logic.
type CommentService interface {
	// Add creates a comment on a video and returns it annotated for its
	// author, so the client can render it without a feed round trip.
	Add(ctx context.Context, videoID, authorID uuid.UUID, text string) (*feed.CommentItem, error)

	// Update replaces the comment text. Only the owner may update.
	Update(ctx context.Context, commentID, callerID uuid.UUID, text string) (*model.Comment, error)

	// Delete removes a comment and its reactions. Only the owner may delete.
	Delete(ctx context.Context, commentID, callerID uuid.UUID) error
}

type commentService struct {
	comments  repository.CommentRepository
	videos    repository.VideoRepository
	reactions repository.ReactionRepository
	users     repository.UserRepository
	events    repository.EventPublisher
	logger    *slog.Logger
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(
	comments repository.CommentRepository,
	videos repository.VideoRepository,
	reactions repository.ReactionRepository,
	users repository.UserRepository,
	events repository.EventPublisher,
	logger *slog.Logger,
) CommentService {
	return &commentService{
		comments:  comments,
		videos:    videos,
		reactions: reactions,
		users:     users,
		events:    events,
		logger:    logger,
	}
}

// Add creates a comment on a video.
func (s *commentService) Add(ctx context.Context, videoID, authorID uuid.UUID, text string) (*feed.CommentItem, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	comment, err := model.NewComment(authorID, videoID, text)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.GetProfile(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("fetch author profile: %w", err)
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.publishEvent(ctx, repository.EventCommentAdded, comment.ID, authorID)

	// A fresh comment has no reactions yet and the author is the viewer.
	return &feed.CommentItem{
		Comment: comment,
		Owner:   owner,
		Reaction: feed.ReactionFields{
			IsOwner: true,
		},
	}, nil
}

// Update replaces the comment text.
func (s *commentService) Update(ctx context.Context, commentID, callerID uuid.UUID, text string) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.OwnerID != callerID {
		return nil, ErrNotCommentOwner
	}

	if err := comment.SetText(text); err != nil {
		return nil, err
	}

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	return comment, nil
}

// Delete removes a comment and its reactions.
func (s *commentService) Delete(ctx context.Context, commentID, callerID uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.OwnerID != callerID {
		return ErrNotCommentOwner
	}

	if err := s.reactions.DeleteBySubject(ctx, model.Subject{Kind: model.SubjectComment, ID: commentID}); err != nil {
		return fmt.Errorf("delete comment reactions: %w", err)
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}

func (s *commentService) publishEvent(ctx context.Context, eventType string, subjectID, actorID uuid.UUID) {
	event := repository.Event{
		Type:       eventType,
		SubjectID:  subjectID,
		ActorID:    actorID,
		OccurredAt: time.Now(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(eventType, metrics.EventStatusError).Inc()
		s.logger.Warn("failed to publish event",
			slog.String("type", eventType),
			slog.String("error", err.Error()),
		)
		return
	}
	metrics.EventsPublishedTotal.WithLabelValues(eventType, metrics.EventStatusSuccess).Inc()
}
