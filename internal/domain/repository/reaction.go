package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube/internal/domain/model"
)

// ReactionRepository defines the interface for reaction persistence.
// Every query filters on the subject kind tag together with subject IDs
// so reactions on one content type never bleed into another's totals.
type ReactionRepository interface {
	// ListBySubjects returns all reactions whose subject matches the kind
	// and one of the given IDs. One query, one pass; cost proportional to
	// the number of matching rows.
	ListBySubjects(ctx context.Context, kind model.SubjectKind, subjectIDs []uuid.UUID) ([]*model.Reaction, error)

	// Toggle records or removes the actor's reaction on a subject as a
	// single atomic store-side operation keyed by (kind, subject, actor):
	// same polarity deletes, opposite polarity flips, absence creates.
	// Returns true if a reaction exists for the pair after the call.
	Toggle(ctx context.Context, subject model.Subject, actorID uuid.UUID, liked bool) (bool, error)

	// CountLikes returns the number of liked=true reactions on a subject.
	CountLikes(ctx context.Context, subject model.Subject) (int64, error)

	// ListLikedVideoIDs returns the IDs of videos the actor has liked,
	// most recent reaction first.
	ListLikedVideoIDs(ctx context.Context, actorID uuid.UUID) ([]uuid.UUID, error)

	// CountVideoLikesByChannel returns how many liked=true reactions exist
	// across all videos owned by the channel. Used for dashboard stats.
	CountVideoLikesByChannel(ctx context.Context, channelID uuid.UUID) (int64, error)

	// DeleteBySubject removes all reactions on a subject. Used when the
	// subject itself is deleted.
	DeleteBySubject(ctx context.Context, subject model.Subject) error
}
