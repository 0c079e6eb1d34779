package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidtube/vidtube/internal/domain/model"
)

// UserRepository exposes the public profile projection of user records.
// Full user records (credentials, tokens) belong to the identity service
// and are never read by this application.
type UserRepository interface {
	// GetProfile retrieves one profile.
	// Returns ErrChannelNotFound if the user does not exist.
	GetProfile(ctx context.Context, id uuid.UUID) (model.Profile, error)

	// GetProfilesByIDs retrieves profiles for the given IDs in one query.
	// IDs that resolve to no user are simply absent from the result map;
	// the caller decides how to handle the omission.
	GetProfilesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Profile, error)

	// Exists reports whether a user record exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
