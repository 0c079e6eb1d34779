package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vidtube/vidtube/internal/domain/model"
	"github.com/vidtube/vidtube/internal/domain/repository"
)

// UserRepository implements repository.UserRepository using PostgreSQL.
// Only the public profile columns are ever selected; credential columns
// belong to the identity service and stay out of this application.
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const profileColumns = "id, display_name, handle, avatar_key"

// GetProfile retrieves one profile.
func (r *UserRepository) GetProfile(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", profileColumns)

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, repository.ErrChannelNotFound
		}
		return model.Profile{}, storeErr("get profile", err)
	}

	return profile, nil
}

// GetProfilesByIDs retrieves profiles for the given IDs in one query.
// Missing IDs are absent from the map, not errors.
func (r *UserRepository) GetProfilesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Profile, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]model.Profile{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ANY($1)", profileColumns)

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, storeErr("query profiles", err)
	}
	defer rows.Close()

	profiles := make(map[uuid.UUID]model.Profile, len(ids))
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles[profile.ID] = profile
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate profiles", err)
	}

	return profiles, nil
}

// Exists reports whether a user record exists.
func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)"

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, storeErr("check user exists", err)
	}

	return exists, nil
}

// scanProfile scans a single row into a Profile.
func scanProfile(row pgx.Row) (model.Profile, error) {
	var (
		profile   model.Profile
		avatarKey *string
	)

	err := row.Scan(
		&profile.ID,
		&profile.DisplayName,
		&profile.Handle,
		&avatarKey,
	)
	if err != nil {
		return model.Profile{}, err
	}

	if avatarKey != nil {
		profile.AvatarKey = *avatarKey
	}

	return profile, nil
}

// Compile-time verification that UserRepository implements repository.UserRepository.
var _ repository.UserRepository = (*UserRepository)(nil)
