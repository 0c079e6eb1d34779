package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
	"github.com/vidtube/vidtube/internal/feed"
	"github.com/vidtube/vidtube/internal/infrastructure/metrics"
)

var (
	// ErrInvalidScope is returned when a feed request carries no scope ID.
	ErrInvalidScope = errors.New("feed scope ID is required")

	// ErrInvalidSort is returned when the requested ordering does not
	// apply to the content kind.
	ErrInvalidSort = errors.New("invalid sort for this feed")
)

// VideoFeedInput describes one video feed request. ViewerID is
// uuid.Nil for anonymous viewers; identity resolution happens upstream
// and the viewer is always passed explicitly, never read from ambient
// request state.
type VideoFeedInput struct {
	ChannelID uuid.UUID
	ViewerID  uuid.UUID
	Sort      feed.Sort
	Page      feed.Page
}

// CommentFeedInput describes one comment feed request.
type CommentFeedInput struct {
	VideoID  uuid.UUID
	ViewerID uuid.UUID
	Sort     feed.Sort
	Page     feed.Page
}

// VideoFeedOutput is one page of annotated videos.
type VideoFeedOutput struct {
	Items   []feed.VideoItem
	HasMore bool
	Page    feed.Page
}

// CommentFeedOutput is one page of annotated comments.
type CommentFeedOutput struct {
	Items   []feed.CommentItem
	HasMore bool
	Page    feed.Page
}

// FeedService builds paginated, viewer-relative feeds. It only reads;
// content, reactions and users are never mutated here.
type FeedService interface {
	// BuildVideoFeed returns one page of a channel's videos annotated for
	// the viewer. The channel must exist; a channel with no videos is a
	// valid empty feed, not an error.
	BuildVideoFeed(ctx context.Context, input VideoFeedInput) (*VideoFeedOutput, error)

	// BuildCommentFeed returns one page of a video's comments annotated
	// for the viewer. The video must exist.
	BuildCommentFeed(ctx context.Context, input CommentFeedInput) (*CommentFeedOutput, error)
}

// FeedServiceConfig holds configuration for FeedService.
type FeedServiceConfig struct {
	// FetchTimeout bounds each store fetch so a slow upstream surfaces as
	// a retryable error instead of hanging the request.
	FetchTimeout time.Duration
}

// DefaultFeedServiceConfig returns the default configuration.
func DefaultFeedServiceConfig() FeedServiceConfig {
	return FeedServiceConfig{
		FetchTimeout: 3 * time.Second,
	}
}

type feedService struct {
	videos    repository.VideoRepository
	comments  repository.CommentRepository
	reactions repository.ReactionRepository
	users     repository.UserRepository

	fetchTimeout time.Duration
	logger       *slog.Logger
}

// NewFeedService creates a new FeedService instance.
func NewFeedService(
	videos repository.VideoRepository,
	comments repository.CommentRepository,
	reactions repository.ReactionRepository,
	users repository.UserRepository,
	cfg FeedServiceConfig,
	logger *slog.Logger,
) FeedService {
	return &feedService{
		videos:       videos,
		comments:     comments,
		reactions:    reactions,
		users:        users,
		fetchTimeout: cfg.FetchTimeout,
		logger:       logger,
	}
}

// BuildVideoFeed assembles one page of a channel's videos.
func (s *feedService) BuildVideoFeed(ctx context.Context, input VideoFeedInput) (*VideoFeedOutput, error) {
	if input.ChannelID == uuid.Nil {
		return nil, ErrInvalidScope
	}

	sort := input.Sort
	if sort == "" {
		sort = feed.SortNewest
	}
	if !sort.IsValid() {
		return nil, ErrInvalidSort
	}

	page := input.Page.Clamp()

	exists, err := s.withTimeoutExists(ctx, input.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("check channel: %w", err)
	}
	if !exists {
		return nil, repository.ErrChannelNotFound
	}

	// One extra row probes for a following page.
	videos, err := s.listVideos(ctx, input.ChannelID, sort, page)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	hasMore := len(videos) > page.Size
	if hasMore {
		videos = videos[:page.Size]
	}

	if len(videos) == 0 {
		return &VideoFeedOutput{Items: []feed.VideoItem{}, HasMore: false, Page: page}, nil
	}

	subjectIDs := make([]uuid.UUID, len(videos))
	ownerIDs := make([]uuid.UUID, 0, len(videos))
	seenOwners := make(map[uuid.UUID]struct{}, len(videos))
	for i, v := range videos {
		subjectIDs[i] = v.ID
		if _, ok := seenOwners[v.OwnerID]; !ok {
			seenOwners[v.OwnerID] = struct{}{}
			ownerIDs = append(ownerIDs, v.OwnerID)
		}
	}

	summaries, owners, err := s.fetchAnnotations(ctx, model.SubjectVideo, subjectIDs, ownerIDs)
	if err != nil {
		return nil, err
	}

	items := make([]feed.VideoItem, 0, len(videos))
	for _, v := range videos {
		owner, ok := owners[v.OwnerID]
		if !ok {
			// Fail closed: a feed item never renders with null owner fields.
			s.logger.Warn("dropping video with unresolved owner",
				slog.String("video_id", v.ID.String()),
				slog.String("owner_id", v.OwnerID.String()),
			)
			metrics.FeedItemsDropped.WithLabelValues(metrics.FeedKindVideo).Inc()
			continue
		}

		items = append(items, feed.VideoItem{
			Video:    v,
			Owner:    owner,
			Reaction: feed.Annotate(summaries[v.ID], v.OwnerID, input.ViewerID),
		})
	}

	metrics.FeedBuildsTotal.WithLabelValues(metrics.FeedKindVideo).Inc()
	metrics.FeedItemsReturned.WithLabelValues(metrics.FeedKindVideo).Observe(float64(len(items)))

	return &VideoFeedOutput{Items: items, HasMore: hasMore, Page: page}, nil
}

// BuildCommentFeed assembles one page of a video's comments.
func (s *feedService) BuildCommentFeed(ctx context.Context, input CommentFeedInput) (*CommentFeedOutput, error) {
	if input.VideoID == uuid.Nil {
		return nil, ErrInvalidScope
	}

	sort := input.Sort
	if sort == "" {
		sort = feed.SortNewest
	}
	if sort != feed.SortNewest && sort != feed.SortOldest {
		return nil, ErrInvalidSort
	}

	page := input.Page.Clamp()

	if _, err := s.getVideo(ctx, input.VideoID); err != nil {
		return nil, fmt.Errorf("check video: %w", err)
	}

	comments, err := s.listComments(ctx, input.VideoID, sort, page)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	hasMore := len(comments) > page.Size
	if hasMore {
		comments = comments[:page.Size]
	}

	if len(comments) == 0 {
		return &CommentFeedOutput{Items: []feed.CommentItem{}, HasMore: false, Page: page}, nil
	}

	subjectIDs := make([]uuid.UUID, len(comments))
	ownerIDs := make([]uuid.UUID, 0, len(comments))
	seenOwners := make(map[uuid.UUID]struct{}, len(comments))
	for i, c := range comments {
		subjectIDs[i] = c.ID
		if _, ok := seenOwners[c.OwnerID]; !ok {
			seenOwners[c.OwnerID] = struct{}{}
			ownerIDs = append(ownerIDs, c.OwnerID)
		}
	}

	summaries, owners, err := s.fetchAnnotations(ctx, model.SubjectComment, subjectIDs, ownerIDs)
	if err != nil {
		return nil, err
	}

	items := make([]feed.CommentItem, 0, len(comments))
	for _, c := range comments {
		owner, ok := owners[c.OwnerID]
		if !ok {
			s.logger.Warn("dropping comment with unresolved owner",
				slog.String("comment_id", c.ID.String()),
				slog.String("owner_id", c.OwnerID.String()),
			)
			metrics.FeedItemsDropped.WithLabelValues(metrics.FeedKindComment).Inc()
			continue
		}

		items = append(items, feed.CommentItem{
			Comment:  c,
			Owner:    owner,
			Reaction: feed.Annotate(summaries[c.ID], c.OwnerID, input.ViewerID),
		})
	}

	metrics.FeedBuildsTotal.WithLabelValues(metrics.FeedKindComment).Inc()
	metrics.FeedItemsReturned.WithLabelValues(metrics.FeedKindComment).Observe(float64(len(items)))

	return &CommentFeedOutput{Items: items, HasMore: hasMore, Page: page}, nil
}

// fetchAnnotations overlaps the reaction and owner fetches behind a join
// point; both depend only on the already-fetched content page.
func (s *feedService) fetchAnnotations(
	ctx context.Context,
	kind model.SubjectKind,
	subjectIDs, ownerIDs []uuid.UUID,
) (map[uuid.UUID]feed.Summary, map[uuid.UUID]model.Profile, error) {
	var (
		reactions []*model.Reaction
		owners    map[uuid.UUID]model.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.fetchTimeout)
		defer cancel()
		var err error
		reactions, err = s.reactions.ListBySubjects(fctx, kind, subjectIDs)
		if err != nil {
			return fmt.Errorf("list reactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.fetchTimeout)
		defer cancel()
		var err error
		owners, err = s.users.GetProfilesByIDs(fctx, ownerIDs)
		if err != nil {
			return fmt.Errorf("fetch owner profiles: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	summaries, violations := feed.Aggregate(subjectIDs, reactions)
	for _, v := range violations {
		// Data-integrity defect: the uniqueness constraint should prevent
		// this. First-seen reaction wins and the feed still renders.
		s.logger.Error("duplicate reaction for subject/actor pair",
			slog.String("subject_kind", kind.String()),
			slog.String("subject_id", v.SubjectID.String()),
			slog.String("actor_id", v.ActorID.String()),
		)
		metrics.ReactionInvariantViolations.Inc()
	}

	return summaries, owners, nil
}

func (s *feedService) withTimeoutExists(ctx context.Context, channelID uuid.UUID) (bool, error) {
	fctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()
	return s.users.Exists(fctx, channelID)
}

func (s *feedService) getVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	fctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()
	return s.videos.GetByID(fctx, videoID)
}

func (s *feedService) listVideos(ctx context.Context, channelID uuid.UUID, sort feed.Sort, page feed.Page) ([]*model.Video, error) {
	fctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()
	return s.videos.ListByChannel(fctx, channelID, sort, page.Offset(), page.Size+1)
}

func (s *feedService) listComments(ctx context.Context, videoID uuid.UUID, sort feed.Sort, page feed.Page) ([]*model.Comment, error) {
	fctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()
	return s.comments.ListByVideo(fctx, videoID, sort, page.Offset(), page.Size+1)
}
