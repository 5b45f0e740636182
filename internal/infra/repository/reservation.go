package repository

import (
	"context"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() shared.ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const insertReservation = `
		INSERT INTO reservations (code, guest_id, room_id, check_in, check_out, headcount, status, stay_price_cents, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertReservation,
		res.Code(),
		res.GuestID(),
		res.RoomID(),
		res.Stay().CheckIn(),
		res.Stay().CheckOut(),
		res.Headcount(),
		res.Status().String(),
		res.Price().Cents(),
		res.CreatedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	const insertLine = `
		INSERT INTO reservation_services (reservation_id, service_id, quantity, unit_price_cents)
		VALUES ($1, $2, $3, $4)`

	for _, line := range res.Lines() {
		if _, err := tx.Exec(ctx, insertLine, id, line.ServiceID(), line.Quantity(), line.UnitPriceCents()); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create reservation service line", err)
		}
	}

	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("reservation not found")
	}
	return nil
}
