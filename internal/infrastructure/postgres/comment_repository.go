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
	"github.com/vidtube/vidtube/internal/feed"
)

const commentColumns = "id, owner_id, video_id, text, created_at, updated_at"

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DBTX
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create persists a new comment.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	const query = `
		INSERT INTO comments (id, owner_id, video_id, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.OwnerID,
		comment.VideoID,
		comment.Text,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return storeErr("create comment", err)
	}

	return nil
}

// GetByID retrieves a comment by ID.
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := fmt.Sprintf("SELECT %s FROM comments WHERE id = $1", commentColumns)

	comment, err := scanComment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, storeErr("get comment by ID", err)
	}

	return comment, nil
}

// ListByVideo retrieves one page of a video's comments.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, sort feed.Sort, offset, limit int) ([]*model.Comment, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM comments WHERE video_id = $1 ORDER BY %s OFFSET $2 LIMIT $3",
		commentColumns, orderBy(sort),
	)

	rows, err := r.db.Query(ctx, query, videoID, offset, limit)
	if err != nil {
		return nil, storeErr("query comments by video", err)
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate comments", err)
	}

	return comments, nil
}

// Update persists changes to an existing comment.
func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	const query = `
		UPDATE comments
		SET text = $2, updated_at = $3
		WHERE id = $1
	`

	comment.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query, comment.ID, comment.Text, comment.UpdatedAt)
	if err != nil {
		return storeErr("update comment", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return storeErr("delete comment", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteByVideo removes all comments on a video.
func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM comments WHERE video_id = $1", videoID); err != nil {
		return storeErr("delete comments by video", err)
	}
	return nil
}

// scanComment scans a single row into a Comment model.
func scanComment(row pgx.Row) (*model.Comment, error) {
	var comment model.Comment

	err := row.Scan(
		&comment.ID,
		&comment.OwnerID,
		&comment.VideoID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Compile-time verification that CommentRepository implements repository.CommentRepository.
var _ repository.CommentRepository = (*CommentRepository)(nil)
