package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
	"github.com/vidtube/vidtube/internal/infrastructure/metrics"
)

var (
	// ErrNotVideoOwner is returned when a caller tries to modify a video
	// they do not own.
	ErrNotVideoOwner = errors.New("caller does not own this video")
)

// PublishVideoInput contains the input parameters for publishing a video.
type PublishVideoInput struct {
	OwnerID       uuid.UUID
	Title         string
	Description   string
	VideoFileName string
	ThumbnailName string
}

// PublishVideoOutput contains the created video and the presigned URLs
// the client uploads the media to.
type PublishVideoOutput struct {
	Video              *model.Video
	VideoUploadURL     string
	ThumbnailUploadURL string
}

// UpdateVideoInput contains the editable video fields. Empty strings
// leave the current value untouched.
type UpdateVideoInput struct {
	VideoID     uuid.UUID
	CallerID    uuid.UUID
	Title       string
	Description string
}

// VideoService defines the interface for video business logic operations.
type VideoService interface {
	// Publish creates video metadata and returns presigned upload URLs
	// for the video file and thumbnail.
	Publish(ctx context.Context, input PublishVideoInput) (*PublishVideoOutput, error)

	// Get retrieves a video and bumps its view counter.
	Get(ctx context.Context, videoID uuid.UUID) (*model.Video, error)

	// Update edits title and description. Only the owner may update.
	Update(ctx context.Context, input UpdateVideoInput) (*model.Video, error)

	// Delete removes a video along with its comments, reactions and
	// stored media. Only the owner may delete.
	Delete(ctx context.Context, videoID, callerID uuid.UUID) error

	// TogglePublish flips the publication flag. Only the owner may toggle.
	TogglePublish(ctx context.Context, videoID, callerID uuid.UUID) (*model.Video, error)
}

// VideoServiceConfig holds configuration for VideoService.
type VideoServiceConfig struct {
	UploadURLExpiry time.Duration
}

// DefaultVideoServiceConfig returns the default configuration.
func DefaultVideoServiceConfig() VideoServiceConfig {
	return VideoServiceConfig{
		UploadURLExpiry: 15 * time.Minute,
	}
}

type videoService struct {
	videos    repository.VideoRepository
	comments  repository.CommentRepository
	reactions repository.ReactionRepository
	storage   repository.ObjectStorage
	events    repository.EventPublisher
	stats     StatsInvalidator

	uploadURLExpiry time.Duration
	logger          *slog.Logger
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(
	videos repository.VideoRepository,
	comments repository.CommentRepository,
	reactions repository.ReactionRepository,
	storage repository.ObjectStorage,
	events repository.EventPublisher,
	stats StatsInvalidator,
	cfg VideoServiceConfig,
	logger *slog.Logger,
) VideoService {
	return &videoService{
		videos:          videos,
		comments:        comments,
		reactions:       reactions,
		storage:         storage,
		events:          events,
		stats:           stats,
		uploadURLExpiry: cfg.UploadURLExpiry,
		logger:          logger,
	}
}

// Publish creates video metadata and generates presigned upload URLs.
func (s *videoService) Publish(ctx context.Context, input PublishVideoInput) (*PublishVideoOutput, error) {
	video, err := model.NewVideo(input.OwnerID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	videoKey := path.Join("videos", video.ID.String(), input.VideoFileName)
	thumbKey := path.Join("thumbnails", video.ID.String(), input.ThumbnailName)

	videoURL, err := s.storage.GeneratePresignedUploadURL(ctx, videoKey, s.uploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate video upload URL: %w", err)
	}

	thumbURL, err := s.storage.GeneratePresignedUploadURL(ctx, thumbKey, s.uploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("generate thumbnail upload URL: %w", err)
	}

	video.SetMediaKeys(videoKey, thumbKey)

	if err := s.videos.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}

	s.publishEvent(ctx, repository.EventVideoPublished, video.ID, input.OwnerID)
	s.invalidateStats(ctx, input.OwnerID)

	return &PublishVideoOutput{
		Video:              video,
		VideoUploadURL:     videoURL,
		ThumbnailUploadURL: thumbURL,
	}, nil
}

// Get retrieves a video and bumps its view counter.
func (s *videoService) Get(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.videos.IncrementViews(ctx, videoID); err != nil {
		// A lost view increment never fails the read.
		s.logger.Warn("failed to increment views",
			slog.String("video_id", videoID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		video.Views++
	}

	return video, nil
}

// Update edits title and description.
func (s *videoService) Update(ctx context.Context, input UpdateVideoInput) (*model.Video, error) {
	video, err := s.videos.GetByID(ctx, input.VideoID)
	if err != nil {
		return nil, err
	}

	if video.OwnerID != input.CallerID {
		return nil, ErrNotVideoOwner
	}

	if input.Title != "" {
		if len(input.Title) > 255 {
			return nil, model.ErrTitleTooLong
		}
		video.Title = input.Title
	}
	if input.Description != "" {
		video.Description = input.Description
	}
	video.UpdatedAt = time.Now()

	if err := s.videos.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}

	return video, nil
}

// Delete removes a video and everything hanging off it.
func (s *videoService) Delete(ctx context.Context, videoID, callerID uuid.UUID) error {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}

	if video.OwnerID != callerID {
		return ErrNotVideoOwner
	}

	if err := s.reactions.DeleteBySubject(ctx, model.Subject{Kind: model.SubjectVideo, ID: videoID}); err != nil {
		return fmt.Errorf("delete video reactions: %w", err)
	}

	if err := s.comments.DeleteByVideo(ctx, videoID); err != nil {
		return fmt.Errorf("delete video comments: %w", err)
	}

	if err := s.videos.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}

	for _, key := range []string{video.VideoKey, video.ThumbnailKey} {
		if key == "" {
			continue
		}
		if err := s.storage.Delete(ctx, key); err != nil {
			// Orphaned objects are reclaimed by a storage-side lifecycle
			// rule; the delete itself already succeeded.
			s.logger.Warn("failed to delete media object",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	s.publishEvent(ctx, repository.EventVideoDeleted, videoID, callerID)
	s.invalidateStats(ctx, video.OwnerID)

	return nil
}

// TogglePublish flips the publication flag.
func (s *videoService) TogglePublish(ctx context.Context, videoID, callerID uuid.UUID) (*model.Video, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if video.OwnerID != callerID {
		return nil, ErrNotVideoOwner
	}

	video.TogglePublished()

	if err := s.videos.Update(ctx, video); err != nil {
		return nil, fmt.Errorf("update publish flag: %w", err)
	}

	return video, nil
}

func (s *videoService) publishEvent(ctx context.Context, eventType string, subjectID, actorID uuid.UUID) {
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

func (s *videoService) invalidateStats(ctx context.Context, channelID uuid.UUID) {
	if err := s.stats.InvalidateStats(ctx, channelID); err != nil {
		// Stale stats age out with the cache TTL; the write itself succeeded.
		s.logger.Warn("failed to invalidate channel stats",
			slog.String("channel_id", channelID.String()),
			slog.String("error", err.Error()),
		)
	}
}
