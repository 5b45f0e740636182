package readstore

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

const userSelect = `
	SELECT u.id, u.email, u.role, u.is_active, g.id, u.last_login_at, u.created_at
	FROM users u
	LEFT JOIN guests g ON g.user_id = u.id`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, userSelect+" WHERE u.id = $1", id).Scan(
		&v.ID, &v.Email, &v.Role, &v.IsActive, &v.GuestID, &v.LastLoginAt, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT u.id, u.email, u.role, u.is_active, g.id, u.last_login_at, u.created_at, u.password_hash
		FROM users u
		LEFT JOIN guests g ON g.user_id = u.id
		WHERE u.email = $1`

	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(
		&v.ID, &v.Email, &v.Role, &v.IsActive, &v.GuestID, &v.LastLoginAt, &v.CreatedAt, &hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
