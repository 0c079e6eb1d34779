package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
)

// PlaylistRepository implements repository.PlaylistRepository using
// PostgreSQL. Playlist membership lives in a playlist_videos join table
// ordered by position.
type PlaylistRepository struct {
	db TxDB
}

// NewPlaylistRepository creates a new PlaylistRepository instance.
func NewPlaylistRepository(db TxDB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create persists a new playlist.
func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	const query = `
		INSERT INTO playlists (id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		playlist.ID,
		playlist.OwnerID,
		playlist.Name,
		playlist.Description,
		playlist.CreatedAt,
		playlist.UpdatedAt,
	)
	if err != nil {
		return storeErr("create playlist", err)
	}

	return nil
}

// GetByID retrieves a playlist with its video IDs in order.
func (r *PlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Playlist, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists
		WHERE id = $1
	`

	playlist, err := scanPlaylist(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrPlaylistNotFound
		}
		return nil, storeErr("get playlist by ID", err)
	}

	videoIDs, err := r.listVideoIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	playlist.VideoIDs = videoIDs

	return playlist, nil
}

// ListByOwner retrieves all playlists owned by a user, newest first.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Playlist, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, storeErr("query playlists by owner", err)
	}
	defer rows.Close()

	playlists := make([]*model.Playlist, 0)
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate playlists", err)
	}

	for _, p := range playlists {
		videoIDs, err := r.listVideoIDs(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.VideoIDs = videoIDs
	}

	return playlists, nil
}

// Update persists name, description and the full video set in one
// transaction.
func (r *PlaylistRepository) Update(ctx context.Context, playlist *model.Playlist) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storeErr("begin playlist update", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	const query = `
		UPDATE playlists
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	playlist.UpdatedAt = time.Now()

	tag, err := tx.Exec(ctx, query, playlist.ID, playlist.Name, playlist.Description, playlist.UpdatedAt)
	if err != nil {
		return storeErr("update playlist", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrPlaylistNotFound
	}

	if _, err := tx.Exec(ctx, "DELETE FROM playlist_videos WHERE playlist_id = $1", playlist.ID); err != nil {
		return storeErr("clear playlist videos", err)
	}

	const insertQuery = `
		INSERT INTO playlist_videos (playlist_id, video_id, position)
		VALUES ($1, $2, $3)
	`

	for i, videoID := range playlist.VideoIDs {
		if _, err := tx.Exec(ctx, insertQuery, playlist.ID, videoID, i); err != nil {
			return storeErr("insert playlist video", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit playlist update", err)
	}

	return nil
}

// Delete removes a playlist and its membership rows.
func (r *PlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storeErr("begin playlist delete", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, "DELETE FROM playlist_videos WHERE playlist_id = $1", id); err != nil {
		return storeErr("delete playlist videos", err)
	}

	tag, err := tx.Exec(ctx, "DELETE FROM playlists WHERE id = $1", id)
	if err != nil {
		return storeErr("delete playlist", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrPlaylistNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit playlist delete", err)
	}

	return nil
}

func (r *PlaylistRepository) listVideoIDs(ctx context.Context, playlistID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT video_id
		FROM playlist_videos
		WHERE playlist_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, storeErr("query playlist videos", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan playlist video ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate playlist videos", err)
	}

	return ids, nil
}

// scanPlaylist scans a single row into a Playlist model.
func scanPlaylist(row pgx.Row) (*model.Playlist, error) {
	var playlist model.Playlist

	err := row.Scan(
		&playlist.ID,
		&playlist.OwnerID,
		&playlist.Name,
		&playlist.Description,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &playlist, nil
}

// Compile-time verification that PlaylistRepository implements repository.PlaylistRepository.
var _ repository.PlaylistRepository = (*PlaylistRepository)(nil)
