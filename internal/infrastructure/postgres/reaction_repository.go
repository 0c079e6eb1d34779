package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
)

// TxDB extends DBTX with transaction support. pgxpool.Pool satisfies it.
type TxDB interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ReactionRepository implements repository.ReactionRepository using PostgreSQL.
// The reactions table carries a uniqueness constraint on
// (subject_kind, subject_id, actor_id); every query here filters on the
// kind tag so video and comment reactions never mix.
type ReactionRepository struct {
	db TxDB
}

// NewReactionRepository creates a new ReactionRepository instance.
func NewReactionRepository(db TxDB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// ListBySubjects returns all reactions on the given subjects in one query.
func (r *ReactionRepository) ListBySubjects(ctx context.Context, kind model.SubjectKind, subjectIDs []uuid.UUID) ([]*model.Reaction, error) {
	if len(subjectIDs) == 0 {
		return []*model.Reaction{}, nil
	}

	const query = `
		SELECT id, subject_kind, subject_id, actor_id, liked, created_at
		FROM reactions
		WHERE subject_kind = $1 AND subject_id = ANY($2)
	`

	rows, err := r.db.Query(ctx, query, kind.String(), subjectIDs)
	if err != nil {
		return nil, storeErr("query reactions by subjects", err)
	}
	defer rows.Close()

	reactions := make([]*model.Reaction, 0)
	for rows.Next() {
		reaction, err := scanReaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reaction: %w", err)
		}
		reactions = append(reactions, reaction)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate reactions", err)
	}

	return reactions, nil
}

// Toggle performs the delete-or-upsert for the (subject, actor) key
// inside one transaction, so concurrent toggles for the same pair can
// never leave two reaction rows behind.
func (r *ReactionRepository) Toggle(ctx context.Context, subject model.Subject, actorID uuid.UUID, liked bool) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, storeErr("begin toggle", err)
	}
	// Rollback is a no-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	const deleteQuery = `
		DELETE FROM reactions
		WHERE subject_kind = $1 AND subject_id = $2 AND actor_id = $3 AND liked = $4
	`

	tag, err := tx.Exec(ctx, deleteQuery, subject.Kind.String(), subject.ID, actorID, liked)
	if err != nil {
		return false, storeErr("delete reaction", err)
	}

	reacted := false
	if tag.RowsAffected() == 0 {
		// No same-polarity reaction existed: create one, flipping the
		// polarity of an opposite-polarity row if present.
		reaction, err := model.NewReaction(subject, actorID, liked)
		if err != nil {
			return false, err
		}

		const upsertQuery = `
			INSERT INTO reactions (id, subject_kind, subject_id, actor_id, liked, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (subject_kind, subject_id, actor_id) DO UPDATE SET liked = EXCLUDED.liked
		`

		if _, err := tx.Exec(ctx, upsertQuery,
			reaction.ID,
			reaction.Subject.Kind.String(),
			reaction.Subject.ID,
			reaction.ActorID,
			reaction.Liked,
			reaction.CreatedAt,
		); err != nil {
			return false, storeErr("upsert reaction", err)
		}
		reacted = true
	}

	if err := tx.Commit(ctx); err != nil {
		return false, storeErr("commit toggle", err)
	}

	return reacted, nil
}

// CountLikes returns the number of liked=true reactions on a subject.
func (r *ReactionRepository) CountLikes(ctx context.Context, subject model.Subject) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM reactions
		WHERE subject_kind = $1 AND subject_id = $2 AND liked = TRUE
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, subject.Kind.String(), subject.ID).Scan(&count); err != nil {
		return 0, storeErr("count likes", err)
	}

	return count, nil
}

// ListLikedVideoIDs returns the IDs of videos the actor has liked.
func (r *ReactionRepository) ListLikedVideoIDs(ctx context.Context, actorID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT subject_id
		FROM reactions
		WHERE subject_kind = 'video' AND actor_id = $1 AND liked = TRUE
		ORDER BY created_at DESC, subject_id ASC
	`

	rows, err := r.db.Query(ctx, query, actorID)
	if err != nil {
		return nil, storeErr("query liked videos", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liked video ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate liked videos", err)
	}

	return ids, nil
}

// CountVideoLikesByChannel returns liked=true reactions across all
// videos owned by the channel.
func (r *ReactionRepository) CountVideoLikesByChannel(ctx context.Context, channelID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM reactions r
		JOIN videos v ON v.id = r.subject_id
		WHERE r.subject_kind = 'video' AND r.liked = TRUE AND v.owner_id = $1
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, channelID).Scan(&count); err != nil {
		return 0, storeErr("count channel likes", err)
	}

	return count, nil
}

// DeleteBySubject removes all reactions on a subject.
func (r *ReactionRepository) DeleteBySubject(ctx context.Context, subject model.Subject) error {
	const query = `
		DELETE FROM reactions
		WHERE subject_kind = $1 AND subject_id = $2
	`

	if _, err := r.db.Exec(ctx, query, subject.Kind.String(), subject.ID); err != nil {
		return storeErr("delete reactions by subject", err)
	}
	return nil
}

// scanReaction scans a single row into a Reaction model.
func scanReaction(row pgx.Row) (*model.Reaction, error) {
	var (
		reaction model.Reaction
		kind     string
	)

	err := row.Scan(
		&reaction.ID,
		&kind,
		&reaction.Subject.ID,
		&reaction.ActorID,
		&reaction.Liked,
		&reaction.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	reaction.Subject.Kind = model.SubjectKind(kind)
	return &reaction, nil
}

// Compile-time verification that ReactionRepository implements repository.ReactionRepository.
var _ repository.ReactionRepository = (*ReactionRepository)(nil)
