package repository

import (
	"context"

	"hotelier/internal/domain/guest"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type GuestRepository struct{}

func NewGuestRepository() shared.GuestRepository {
	return &GuestRepository{}
}

func (r *GuestRepository) Create(ctx context.Context, tx db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	const query = `
		INSERT INTO guests (first_name, last_name, email, phone, document_kind, document_number, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		g.FirstName(),
		g.LastName(),
		g.Email(),
		g.Phone(),
		string(g.Document().Kind()),
		g.Document().Number(),
		g.UserID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create guest", err)
	}
	return id, nil
}

func (r *GuestRepository) Update(ctx context.Context, tx db.DBTX, g *guest.Guest) error {
	const query = `
		UPDATE guests
		SET first_name = $2, last_name = $3, email = $4, phone = $5, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, g.ID(), g.FirstName(), g.LastName(), g.Email(), g.Phone())
	if err != nil {
		return infra.WrapRepoErr("failed to update guest", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("guest not found")
	}
	return nil
}

// UpsertByDocument keys on the document pair so repeat bookings reuse the
// guest record, refreshing its contact fields.
func (r *GuestRepository) UpsertByDocument(ctx context.Context, tx db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	const query = `
		INSERT INTO guests (first_name, last_name, email, phone, document_kind, document_number, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (document_kind, document_number) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    email = EXCLUDED.email,
		    phone = EXCLUDED.phone,
		    user_id = COALESCE(guests.user_id, EXCLUDED.user_id),
		    updated_at = now()
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		g.FirstName(),
		g.LastName(),
		g.Email(),
		g.Phone(),
		string(g.Document().Kind()),
		g.Document().Number(),
		g.UserID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert guest", err)
	}
	return id, nil
}
