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

// ToggleReactionOutput reports the state after a toggle.
type ToggleReactionOutput struct {
	// Reacted is true if the actor's reaction exists after the call.
	Reacted bool
	// TotalLikes is the subject's like count after the call.
	TotalLikes int64
}

// ReactionService defines the interface for like/dislike operations.
// The toggle itself is atomic at the store boundary; this layer only
// verifies the subject exists and reports the resulting counts.
type ReactionService interface {
	// ToggleVideoReaction toggles the actor's reaction on a video.
	ToggleVideoReaction(ctx context.Context, videoID, actorID uuid.UUID, liked bool) (*ToggleReactionOutput, error)

	// ToggleCommentReaction toggles the actor's reaction on a comment.
	ToggleCommentReaction(ctx context.Context, commentID, actorID uuid.UUID, liked bool) (*ToggleReactionOutput, error)

	// ToggleTweetReaction toggles the actor's reaction on a tweet.
	ToggleTweetReaction(ctx context.Context, tweetID, actorID uuid.UUID, liked bool) (*ToggleReactionOutput, error)

	// ListLikedVideos returns the videos the actor has liked, most recent
	// reaction first.
	ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]*model.Video, error)
}

type reactionService struct {
	reactions repository.ReactionRepository
	videos    repository.VideoRepository
	comments  repository.CommentRepository
	tweets    repository.TweetRepository
	events    repository.EventPublisher
	stats     StatsInvalidator
	logger    *slog.Logger
}

// NewReactionService creates a new ReactionService instance.
func NewReactionService(
	reactions repository.ReactionRepository,
	videos repository.VideoRepository,
	comments repository.CommentRepository,
	tweets repository.TweetRepository,
	events repository.EventPublisher,
	stats StatsInvalidator,
	logger *slog.Logger,
) ReactionService {
	return &reactionService{
		reactions: reactions,
		videos:    videos,
		comments:  comments,
		tweets:    tweets,
		events:    events,
		stats:     stats,
		logger:    logger,
	}
}

func (s *reactionService) ToggleVideoReaction(ctx context.Context, videoID, actorID uuid.UUID, liked bool) (*ToggleReactionOutput, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	out, err := s.toggle(ctx, model.Subject{Kind: model.SubjectVideo, ID: videoID}, actorID, liked)
	if err != nil {
		return nil, err
	}

	// Video likes feed the owner's channel totals. Comment and tweet
	// reactions do not, so only this toggle drops the cached stats.
	if err := s.stats.InvalidateStats(ctx, video.OwnerID); err != nil {
		s.logger.Warn("failed to invalidate channel stats",
			slog.String("channel_id", video.OwnerID.String()),
			slog.String("error", err.Error()),
		)
	}

	return out, nil
}

func (s *reactionService) ToggleCommentReaction(ctx context.Context, commentID, actorID uuid.UUID, liked bool) (*ToggleReactionOutput, error) {
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return nil, err
	}
	return s.toggle(ctx, model.Subject{Kind: model.SubjectComment, ID: commentID}, actorID, liked)
}

func (s *reactionService) ToggleTweetReaction(ctx context.Context, tweetID, actorID uuid.UUID, liked bool) (*ToggleReactionOutput, error) {
	if _, err := s.tweets.GetByID(ctx, tweetID); err != nil {
		return nil, err
	}
	return s.toggle(ctx, model.Subject{Kind: model.SubjectTweet, ID: tweetID}, actorID, liked)
}

// ListLikedVideos returns the videos the actor liked.
func (s *reactionService) ListLikedVideos(ctx context.Context, actorID uuid.UUID) ([]*model.Video, error) {
	if actorID == uuid.Nil {
		return nil, model.ErrInvalidActor
	}

	ids, err := s.reactions.ListLikedVideoIDs(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list liked video IDs: %w", err)
	}
	if len(ids) == 0 {
		return []*model.Video{}, nil
	}

	videos, err := s.videos.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch liked videos: %w", err)
	}
	return videos, nil
}

func (s *reactionService) toggle(ctx context.Context, subject model.Subject, actorID uuid.UUID, liked bool) (*ToggleReactionOutput, error) {
	if actorID == uuid.Nil {
		return nil, model.ErrInvalidActor
	}

	reacted, err := s.reactions.Toggle(ctx, subject, actorID, liked)
	if err != nil {
		return nil, fmt.Errorf("toggle reaction: %w", err)
	}

	total, err := s.reactions.CountLikes(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	event := repository.Event{
		Type:       repository.EventReactionToggled,
		SubjectID:  subject.ID,
		ActorID:    actorID,
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

	return &ToggleReactionOutput{Reacted: reacted, TotalLikes: total}, nil
}
