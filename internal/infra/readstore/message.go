package readstore

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const messageSelect = `
	SELECT m.id, m.guest_id, g.first_name || ' ' || g.last_name, m.subject, m.body, m.status,
	       m.reply, m.replied_by, m.replied_at, m.created_at
	FROM messages m
	JOIN guests g ON g.id = m.guest_id`

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

func (r *MessageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MessageView, error) {
	var v queries.MessageView
	err := r.db.QueryRow(ctx, messageSelect+" WHERE m.id = $1", id).Scan(
		&v.ID, &v.GuestID, &v.GuestName, &v.Subject, &v.Body, &v.Status,
		&v.Reply, &v.RepliedBy, &v.RepliedAt, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find message by ID", err)
	}
	return &v, nil
}

func (r *MessageReadStore) Find(ctx context.Context, status string, limit int32) ([]*queries.MessageView, error) {
	query := messageSelect + `
	WHERE ($1 = '' OR m.status = $1)
	ORDER BY m.created_at DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	defer rows.Close()

	return scanMessageViews(rows)
}

func (r *MessageReadStore) FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.MessageView, error) {
	query := messageSelect + `
	WHERE m.guest_id = $1
	ORDER BY m.created_at DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, guestID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest messages", err)
	}
	defer rows.Close()

	return scanMessageViews(rows)
}

func scanMessageViews(rows pgx.Rows) ([]*queries.MessageView, error) {
	views := []*queries.MessageView{}
	for rows.Next() {
		var v queries.MessageView
		if err := rows.Scan(
			&v.ID, &v.GuestID, &v.GuestName, &v.Subject, &v.Body, &v.Status,
			&v.Reply, &v.RepliedBy, &v.RepliedAt, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read message rows", err)
	}
	return views, nil
}
