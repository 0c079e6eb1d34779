package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
)

// ErrNotPlaylistOwner is returned when a caller tries to modify a
// playlist they do not own.
var ErrNotPlaylistOwner = errors.New("caller does not own this playlist")

// PlaylistService defines the interface for playlist operations.
type PlaylistService interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*model.Playlist, error)
	Get(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) (*model.Playlist, error)
	Delete(ctx context.Context, playlistID, callerID uuid.UUID) error
}

type playlistService struct {
	playlists repository.PlaylistRepository
	videos    repository.VideoRepository
}

// NewPlaylistService creates a new PlaylistService instance.
func NewPlaylistService(playlists repository.PlaylistRepository, videos repository.VideoRepository) PlaylistService {
	return &playlistService{playlists: playlists, videos: videos}
}

func (s *playlistService) Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*model.Playlist, error) {
	playlist, err := model.NewPlaylist(ownerID, name, description)
	if err != nil {
		return nil, err
	}

	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}
	return playlist, nil
}

func (s *playlistService) Get(ctx context.Context, playlistID uuid.UUID) (*model.Playlist, error) {
	return s.playlists.GetByID(ctx, playlistID)
}

func (s *playlistService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error) {
	if ownerID == uuid.Nil {
		return nil, model.ErrInvalidOwner
	}
	return s.playlists.ListByOwner(ctx, ownerID)
}

func (s *playlistService) AddVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) (*model.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, playlistID, callerID)
	if err != nil {
		return nil, err
	}

	// The video must exist before it can be listed.
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	if err := playlist.AddVideo(videoID); err != nil {
		return nil, err
	}

	if err := s.playlists.Update(ctx, playlist); err != nil {
		return nil, fmt.Errorf("update playlist: %w", err)
	}
	return playlist, nil
}

func (s *playlistService) RemoveVideo(ctx context.Context, playlistID, videoID, callerID uuid.UUID) (*model.Playlist, error) {
	playlist, err := s.ownedPlaylist(ctx, playlistID, callerID)
	if err != nil {
		return nil, err
	}

	if err := playlist.RemoveVideo(videoID); err != nil {
		return nil, err
	}

	if err := s.playlists.Update(ctx, playlist); err != nil {
		return nil, fmt.Errorf("update playlist: %w", err)
	}
	return playlist, nil
}

func (s *playlistService) Delete(ctx context.Context, playlistID, callerID uuid.UUID) error {
	if _, err := s.ownedPlaylist(ctx, playlistID, callerID); err != nil {
		return err
	}
	return s.playlists.Delete(ctx, playlistID)
}

func (s *playlistService) ownedPlaylist(ctx context.Context, playlistID, callerID uuid.UUID) (*model.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID != callerID {
		return nil, ErrNotPlaylistOwner
	}
	return playlist, nil
}
