package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
	"github.com/vidtube/vidtube/internal/feed"
)

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	createFn         func(ctx context.Context, video *model.Video) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*model.Video, error)
	getByIDsFn       func(ctx context.Context, ids []uuid.UUID) ([]*model.Video, error)
	listByChannelFn  func(ctx context.Context, channelID uuid.UUID, sort feed.Sort, offset, limit int) ([]*model.Video, error)
	updateFn         func(ctx context.Context, video *model.Video) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
	incrementViewsFn func(ctx context.Context, id uuid.UUID) error
	channelStatsFn   func(ctx context.Context, channelID uuid.UUID) (repository.VideoStats, error)
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrVideoNotFound
}

func (m *mockVideoRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Video, error) {
	if m.getByIDsFn != nil {
		return m.getByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockVideoRepository) ListByChannel(ctx context.Context, channelID uuid.UUID, sort feed.Sort, offset, limit int) ([]*model.Video, error) {
	if m.listByChannelFn != nil {
		return m.listByChannelFn(ctx, channelID, sort, offset, limit)
	}
	return nil, nil
}

func (m *mockVideoRepository) Update(ctx context.Context, video *model.Video) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockVideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if m.incrementViewsFn != nil {
		return m.incrementViewsFn(ctx, id)
	}
	return nil
}

func (m *mockVideoRepository) ChannelStats(ctx context.Context, channelID uuid.UUID) (repository.VideoStats, error) {
	if m.channelStatsFn != nil {
		return m.channelStatsFn(ctx, channelID)
	}
	return repository.VideoStats{}, nil
}

// mockCommentRepository provides a configurable mock for CommentRepository.
type mockCommentRepository struct {
	createFn        func(ctx context.Context, comment *model.Comment) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	listByVideoFn   func(ctx context.Context, videoID uuid.UUID, sort feed.Sort, offset, limit int) ([]*model.Comment, error)
	updateFn        func(ctx context.Context, comment *model.Comment) error
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	deleteByVideoFn func(ctx context.Context, videoID uuid.UUID) error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrCommentNotFound
}

func (m *mockCommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, sort feed.Sort, offset, limit int) ([]*model.Comment, error) {
	if m.listByVideoFn != nil {
		return m.listByVideoFn(ctx, videoID, sort, offset, limit)
	}
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if m.deleteByVideoFn != nil {
		return m.deleteByVideoFn(ctx, videoID)
	}
	return nil
}

// mockReactionRepository provides a configurable mock for ReactionRepository.
type mockReactionRepository struct {
	listBySubjectsFn           func(ctx context.Context, kind model.SubjectKind, subjectIDs []uuid.UUID) ([]*model.Reaction, error)
	toggleFn                   func(ctx context.Context, subject model.Subject, actorID uuid.UUID, liked bool) (bool, error)
	countLikesFn               func(ctx context.Context, subject model.Subject) (int64, error)
	listLikedVideoIDsFn        func(ctx context.Context, actorID uuid.UUID) ([]uuid.UUID, error)
	countVideoLikesByChannelFn func(ctx context.Context, channelID uuid.UUID) (int64, error)
	deleteBySubjectFn          func(ctx context.Context, subject model.Subject) error
}

func (m *mockReactionRepository) ListBySubjects(ctx context.Context, kind model.SubjectKind, subjectIDs []uuid.UUID) ([]*model.Reaction, error) {
	if m.listBySubjectsFn != nil {
		return m.listBySubjectsFn(ctx, kind, subjectIDs)
	}
	return nil, nil
}

func (m *mockReactionRepository) Toggle(ctx context.Context, subject model.Subject, actorID uuid.UUID, liked bool) (bool, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, subject, actorID, liked)
	}
	return false, nil
}

func (m *mockReactionRepository) CountLikes(ctx context.Context, subject model.Subject) (int64, error) {
	if m.countLikesFn != nil {
		return m.countLikesFn(ctx, subject)
	}
	return 0, nil
}

func (m *mockReactionRepository) ListLikedVideoIDs(ctx context.Context, actorID uuid.UUID) ([]uuid.UUID, error) {
	if m.listLikedVideoIDsFn != nil {
		return m.listLikedVideoIDsFn(ctx, actorID)
	}
	return nil, nil
}

func (m *mockReactionRepository) CountVideoLikesByChannel(ctx context.Context, channelID uuid.UUID) (int64, error) {
	if m.countVideoLikesByChannelFn != nil {
		return m.countVideoLikesByChannelFn(ctx, channelID)
	}
	return 0, nil
}

func (m *mockReactionRepository) DeleteBySubject(ctx context.Context, subject model.Subject) error {
	if m.deleteBySubjectFn != nil {
		return m.deleteBySubjectFn(ctx, subject)
	}
	return nil
}

// mockUserRepository provides a configurable mock for UserRepository.
type mockUserRepository struct {
	getProfileFn       func(ctx context.Context, id uuid.UUID) (model.Profile, error)
	getProfilesByIDsFn func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Profile, error)
	existsFn           func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockUserRepository) GetProfile(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, id)
	}
	return model.Profile{}, repository.ErrChannelNotFound
}

func (m *mockUserRepository) GetProfilesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Profile, error) {
	if m.getProfilesByIDsFn != nil {
		return m.getProfilesByIDsFn(ctx, ids)
	}
	return map[uuid.UUID]model.Profile{}, nil
}

func (m *mockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}

// mockSubscriptionRepository provides a configurable mock for SubscriptionRepository.
type mockSubscriptionRepository struct {
	toggleFn                   func(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error)
	countByChannelFn           func(ctx context.Context, channelID uuid.UUID) (int64, error)
	listSubscriberIDsFn        func(ctx context.Context, channelID uuid.UUID) ([]uuid.UUID, error)
	listSubscribedChannelIDsFn func(ctx context.Context, subscriberID uuid.UUID) ([]uuid.UUID, error)
}

func (m *mockSubscriptionRepository) Toggle(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, channelID, subscriberID)
	}
	return false, nil
}

func (m *mockSubscriptionRepository) CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error) {
	if m.countByChannelFn != nil {
		return m.countByChannelFn(ctx, channelID)
	}
	return 0, nil
}

func (m *mockSubscriptionRepository) ListSubscriberIDs(ctx context.Context, channelID uuid.UUID) ([]uuid.UUID, error) {
	if m.listSubscriberIDsFn != nil {
		return m.listSubscriberIDsFn(ctx, channelID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListSubscribedChannelIDs(ctx context.Context, subscriberID uuid.UUID) ([]uuid.UUID, error) {
	if m.listSubscribedChannelIDsFn != nil {
		return m.listSubscribedChannelIDsFn(ctx, subscriberID)
	}
	return nil, nil
}

// mockPlaylistRepository provides a configurable mock for PlaylistRepository.
type mockPlaylistRepository struct {
	createFn      func(ctx context.Context, playlist *model.Playlist) error
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*model.Playlist, error)
	listByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error)
	updateFn      func(ctx context.Context, playlist *model.Playlist) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	if m.createFn != nil {
		return m.createFn(ctx, playlist)
	}
	return nil
}

func (m *mockPlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrPlaylistNotFound
}

func (m *mockPlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, playlist)
	}
	return nil
}

func (m *mockPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockTweetRepository provides a configurable mock for TweetRepository.
type mockTweetRepository struct {
	createFn      func(ctx context.Context, tweet *model.Tweet) error
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*model.Tweet, error)
	listByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error)
	updateFn      func(ctx context.Context, tweet *model.Tweet) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	if m.createFn != nil {
		return m.createFn(ctx, tweet)
	}
	return nil
}

func (m *mockTweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repository.ErrTweetNotFound
}

func (m *mockTweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTweetRepository) Update(ctx context.Context, tweet *model.Tweet) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, tweet)
	}
	return nil
}

func (m *mockTweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockObjectStorage provides a configurable mock for ObjectStorage.
type mockObjectStorage struct {
	generatePresignedUploadURLFn   func(ctx context.Context, key string, expiry time.Duration) (string, error)
	generatePresignedDownloadURLFn func(ctx context.Context, key string, expiry time.Duration) (string, error)
	deleteFn                       func(ctx context.Context, key string) error
}

func (m *mockObjectStorage) GeneratePresignedUploadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.generatePresignedUploadURLFn != nil {
		return m.generatePresignedUploadURLFn(ctx, key, expiry)
	}
	return "http://example.com/upload", nil
}

func (m *mockObjectStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.generatePresignedDownloadURLFn != nil {
		return m.generatePresignedDownloadURLFn(ctx, key, expiry)
	}
	return "http://example.com/download", nil
}

func (m *mockObjectStorage) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

// mockEventPublisher provides a configurable mock for EventPublisher.
type mockEventPublisher struct {
	publishFn func(ctx context.Context, event repository.Event) error
	published []repository.Event
}

func (m *mockEventPublisher) Publish(ctx context.Context, event repository.Event) error {
	m.published = append(m.published, event)
	if m.publishFn != nil {
		return m.publishFn(ctx, event)
	}
	return nil
}

func (m *mockEventPublisher) Close() error {
	return nil
}

// mockStatsCache provides a configurable mock for cache.StatsCache.
type mockStatsCache struct {
	getFn    func(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error)
	setFn    func(ctx context.Context, stats *model.ChannelStats, ttl time.Duration) error
	deleteFn func(ctx context.Context, channelID uuid.UUID) error
}

func (m *mockStatsCache) Get(ctx context.Context, channelID uuid.UUID) (*model.ChannelStats, error) {
	if m.getFn != nil {
		return m.getFn(ctx, channelID)
	}
	return nil, nil
}

func (m *mockStatsCache) Set(ctx context.Context, stats *model.ChannelStats, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, stats, ttl)
	}
	return nil
}

func (m *mockStatsCache) Delete(ctx context.Context, channelID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, channelID)
	}
	return nil
}

// mockStatsInvalidator records which channels had their cached stats
// dropped.
type mockStatsInvalidator struct {
	invalidateFn func(ctx context.Context, channelID uuid.UUID) error
	invalidated  []uuid.UUID
}

func (m *mockStatsInvalidator) InvalidateStats(ctx context.Context, channelID uuid.UUID) error {
	m.invalidated = append(m.invalidated, channelID)
	if m.invalidateFn != nil {
		return m.invalidateFn(ctx, channelID)
	}
	return nil
}
