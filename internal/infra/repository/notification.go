package repository

import (
	"context"
	"time"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/shared"
)

type NotificationRepository struct{}

func NewNotificationRepository() shared.NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues an outbox row in the caller's transaction, so the job
// becomes visible only if the surrounding command commits.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := tx.Exec(ctx, query, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
