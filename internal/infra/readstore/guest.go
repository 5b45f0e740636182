package readstore

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

const guestSelect = `
	SELECT id, first_name, last_name, email, phone, document_kind, document_number, user_id, created_at, updated_at
	FROM guests`

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(dbtx db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: dbtx}
}

func (r *GuestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	var v queries.GuestView
	err := r.db.QueryRow(ctx, guestSelect+" WHERE id = $1", id).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone,
		&v.DocumentKind, &v.DocumentNumber, &v.UserID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find guest by ID", err)
	}
	return &v, nil
}

func (r *GuestReadStore) Search(ctx context.Context, term string, limit int32) ([]*queries.GuestView, error) {
	query := guestSelect + `
	WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%'
	    OR last_name ILIKE '%' || $1 || '%'
	    OR email ILIKE '%' || $1 || '%'
	    OR document_number ILIKE '%' || $1 || '%')
	ORDER BY last_name, first_name
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, term, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search guests", err)
	}
	defer rows.Close()

	views := []*queries.GuestView{}
	for rows.Next() {
		var v queries.GuestView
		if err := rows.Scan(
			&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone,
			&v.DocumentKind, &v.DocumentNumber, &v.UserID, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan guest row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read guest rows", err)
	}
	return views, nil
}
