package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vidtube/vidtube/internal/domain/repository"
)

// SubscriptionRepository implements repository.SubscriptionRepository
// using PostgreSQL. The subscriptions table carries a uniqueness
// constraint on (channel_id, subscriber_id).
type SubscriptionRepository struct {
	db TxDB
}

// NewSubscriptionRepository creates a new SubscriptionRepository instance.
func NewSubscriptionRepository(db TxDB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Toggle subscribes or unsubscribes atomically for the (channel,
// subscriber) key.
func (r *SubscriptionRepository) Toggle(ctx context.Context, channelID, subscriberID uuid.UUID) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, storeErr("begin subscription toggle", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	const deleteQuery = `
		DELETE FROM subscriptions
		WHERE channel_id = $1 AND subscriber_id = $2
	`

	tag, err := tx.Exec(ctx, deleteQuery, channelID, subscriberID)
	if err != nil {
		return false, storeErr("delete subscription", err)
	}

	subscribed := false
	if tag.RowsAffected() == 0 {
		const insertQuery = `
			INSERT INTO subscriptions (id, channel_id, subscriber_id, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (channel_id, subscriber_id) DO NOTHING
		`

		if _, err := tx.Exec(ctx, insertQuery, uuid.New(), channelID, subscriberID, time.Now()); err != nil {
			return false, storeErr("insert subscription", err)
		}
		subscribed = true
	}

	if err := tx.Commit(ctx); err != nil {
		return false, storeErr("commit subscription toggle", err)
	}

	return subscribed, nil
}

// CountByChannel returns the channel's subscriber count.
func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channelID uuid.UUID) (int64, error) {
	const query = "SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1"

	var count int64
	if err := r.db.QueryRow(ctx, query, channelID).Scan(&count); err != nil {
		return 0, storeErr("count subscribers", err)
	}

	return count, nil
}

// ListSubscriberIDs returns the IDs of users subscribed to a channel.
func (r *SubscriptionRepository) ListSubscriberIDs(ctx context.Context, channelID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT subscriber_id
		FROM subscriptions
		WHERE channel_id = $1
		ORDER BY created_at DESC
	`

	return r.listIDs(ctx, query, channelID)
}

// ListSubscribedChannelIDs returns the IDs of channels a user follows.
func (r *SubscriptionRepository) ListSubscribedChannelIDs(ctx context.Context, subscriberID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT channel_id
		FROM subscriptions
		WHERE subscriber_id = $1
		ORDER BY created_at DESC
	`

	return r.listIDs(ctx, query, subscriberID)
}

func (r *SubscriptionRepository) listIDs(ctx context.Context, query string, arg any) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, storeErr("query subscriptions", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan subscription ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate subscriptions", err)
	}

	return ids, nil
}

// Compile-time verification that SubscriptionRepository implements repository.SubscriptionRepository.
var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
