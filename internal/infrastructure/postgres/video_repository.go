package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
	"github.com/vidtube/vidtube/internal/feed"
)

// DBTX is an interface that abstracts pgxpool.Pool and pgx.Tx for testability.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const videoColumns = "id, owner_id, title, description, video_key, thumbnail_key, duration, views, is_published, created_at, updated_at"

// VideoRepository implements repository.VideoRepository using PostgreSQL.
type VideoRepository struct {
	db DBTX
}

// NewVideoRepository creates a new VideoRepository instance.
func NewVideoRepository(db DBTX) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create persists a new video entity.
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	const query = `
		INSERT INTO videos (id, owner_id, title, description, video_key, thumbnail_key, duration, views, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		video.ID,
		video.OwnerID,
		video.Title,
		video.Description,
		nullString(video.VideoKey),
		nullString(video.ThumbnailKey),
		video.Duration,
		video.Views,
		video.IsPublished,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrDuplicateVideo
		}
		return storeErr("create video", err)
	}

	return nil
}

// GetByID retrieves a video by its unique identifier.
func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	query := fmt.Sprintf("SELECT %s FROM videos WHERE id = $1", videoColumns)

	video, err := scanVideo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, storeErr("get video by ID", err)
	}

	return video, nil
}

// GetByIDs retrieves videos for the given IDs, preserving input order.
func (r *VideoRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Video, error) {
	if len(ids) == 0 {
		return []*model.Video{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM videos WHERE id = ANY($1)", videoColumns)

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, storeErr("query videos by IDs", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*model.Video, len(ids))
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		byID[video.ID] = video
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate videos", err)
	}

	videos := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

// ListByChannel retrieves one page of a channel's videos.
func (r *VideoRepository) ListByChannel(ctx context.Context, channelID uuid.UUID, sort feed.Sort, offset, limit int) ([]*model.Video, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM videos WHERE owner_id = $1 ORDER BY %s OFFSET $2 LIMIT $3",
		videoColumns, orderBy(sort),
	)

	rows, err := r.db.Query(ctx, query, channelID, offset, limit)
	if err != nil {
		return nil, storeErr("query videos by channel", err)
	}
	defer rows.Close()

	videos := make([]*model.Video, 0)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate videos", err)
	}

	return videos, nil
}

// Update persists changes to an existing video entity.
func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	const query = `
		UPDATE videos
		SET title = $2, description = $3, video_key = $4, thumbnail_key = $5, is_published = $6, updated_at = $7
		WHERE id = $1
	`

	video.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query,
		video.ID,
		video.Title,
		video.Description,
		nullString(video.VideoKey),
		nullString(video.ThumbnailKey),
		video.IsPublished,
		video.UpdatedAt,
	)
	if err != nil {
		return storeErr("update video", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// Delete removes a video.
func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM videos WHERE id = $1", id)
	if err != nil {
		return storeErr("delete video", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// IncrementViews bumps the view counter by one.
func (r *VideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "UPDATE videos SET views = views + 1 WHERE id = $1", id)
	if err != nil {
		return storeErr("increment views", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// ChannelStats returns the total video and view counts for a channel.
func (r *VideoRepository) ChannelStats(ctx context.Context, channelID uuid.UUID) (repository.VideoStats, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(views), 0)
		FROM videos
		WHERE owner_id = $1
	`

	var stats repository.VideoStats
	if err := r.db.QueryRow(ctx, query, channelID).Scan(&stats.TotalVideos, &stats.TotalViews); err != nil {
		return repository.VideoStats{}, storeErr("channel video stats", err)
	}

	return stats, nil
}

// scanVideo scans a single row into a Video model.
func scanVideo(row pgx.Row) (*model.Video, error) {
	var (
		video        model.Video
		videoKey     *string
		thumbnailKey *string
	)

	err := row.Scan(
		&video.ID,
		&video.OwnerID,
		&video.Title,
		&video.Description,
		&videoKey,
		&thumbnailKey,
		&video.Duration,
		&video.Views,
		&video.IsPublished,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if videoKey != nil {
		video.VideoKey = *videoKey
	}
	if thumbnailKey != nil {
		video.ThumbnailKey = *thumbnailKey
	}

	return &video, nil
}

// nullString returns nil for empty strings, otherwise returns a pointer to the string.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Compile-time verification that VideoRepository implements repository.VideoRepository.
var _ repository.VideoRepository = (*VideoRepository)(nil)
