package repository

import (
	"context"

	"hotelier/internal/domain/message"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessageRepository struct{}

func NewMessageRepository() shared.MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(ctx context.Context, tx db.DBTX, m *message.Message) (uuid.UUID, error) {
	const query = `
		INSERT INTO messages (guest_id, subject, body, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, m.GuestID(), m.Subject(), m.Body(), m.Status().String()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create message", err)
	}
	return id, nil
}

func (r *MessageRepository) SaveReply(ctx context.Context, tx db.DBTX, m *message.Message) error {
	const query = `
		UPDATE messages
		SET reply = $2, replied_by = $3, replied_at = $4, status = $5, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, m.ID(), m.Reply(), m.RepliedBy(), m.RepliedAt(), m.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to save message reply", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("message not found")
	}
	return nil
}

func (r *MessageRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status message.Status) error {
	const query = `
		UPDATE messages
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update message status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("message not found")
	}
	return nil
}
