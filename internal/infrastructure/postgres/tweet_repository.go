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

// TweetRepository implements repository.TweetRepository using PostgreSQL.
type TweetRepository struct {
	db DBTX
}

// NewTweetRepository creates a new TweetRepository instance.
func NewTweetRepository(db DBTX) *TweetRepository {
	return &TweetRepository{db: db}
}

// Create persists a new tweet.
func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	const query = `
		INSERT INTO tweets (id, owner_id, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		tweet.ID,
		tweet.OwnerID,
		tweet.Text,
		tweet.CreatedAt,
		tweet.UpdatedAt,
	)
	if err != nil {
		return storeErr("create tweet", err)
	}

	return nil
}

// GetByID retrieves a tweet by ID.
func (r *TweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	const query = `
		SELECT id, owner_id, text, created_at, updated_at
		FROM tweets
		WHERE id = $1
	`

	tweet, err := scanTweet(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrTweetNotFound
		}
		return nil, storeErr("get tweet by ID", err)
	}

	return tweet, nil
}

// ListByOwner retrieves a user's tweets, newest first.
func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Tweet, error) {
	const query = `
		SELECT id, owner_id, text, created_at, updated_at
		FROM tweets
		WHERE owner_id = $1
		ORDER BY created_at DESC, id ASC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, storeErr("query tweets by owner", err)
	}
	defer rows.Close()

	tweets := make([]*model.Tweet, 0)
	for rows.Next() {
		tweet, err := scanTweet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tweet: %w", err)
		}
		tweets = append(tweets, tweet)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate tweets", err)
	}

	return tweets, nil
}

// Update persists changes to an existing tweet.
func (r *TweetRepository) Update(ctx context.Context, tweet *model.Tweet) error {
	const query = `
		UPDATE tweets
		SET text = $2, updated_at = $3
		WHERE id = $1
	`

	tweet.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query, tweet.ID, tweet.Text, tweet.UpdatedAt)
	if err != nil {
		return storeErr("update tweet", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// Delete removes a tweet.
func (r *TweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM tweets WHERE id = $1", id)
	if err != nil {
		return storeErr("delete tweet", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// scanTweet scans a single row into a Tweet model.
func scanTweet(row pgx.Row) (*model.Tweet, error) {
	var tweet model.Tweet

	err := row.Scan(
		&tweet.ID,
		&tweet.OwnerID,
		&tweet.Text,
		&tweet.CreatedAt,
		&tweet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &tweet, nil
}

// Compile-time verification that TweetRepository implements repository.TweetRepository.
var _ repository.TweetRepository = (*TweetRepository)(nil)
