package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube/internal/domain/model"
)

// PlaylistRepository defines the interface for playlist persistence.
type PlaylistRepository interface {
	// Create persists a new playlist.
	Create(ctx context.Context, playlist *model.Playlist) error

	// GetByID retrieves a playlist with its video IDs in order.
	// Returns nil and ErrPlaylistNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error)

	// ListByOwner retrieves all playlists owned by a user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error)

	// Update persists name, description and the full video set.
	// Returns ErrPlaylistNotFound if the playlist does not exist.
	Update(ctx context.Context, playlist *model.Playlist) error

	// Delete removes a playlist. Returns ErrPlaylistNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
