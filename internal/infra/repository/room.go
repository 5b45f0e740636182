package repository

import (
	"context"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomRepository struct{}

func NewRoomRepository() shared.RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error) {
	const query = `
		INSERT INTO rooms (number, floor, room_type_id, status, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rm.Number(),
		rm.Floor(),
		rm.RoomTypeID(),
		rm.Status().String(),
		rm.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx db.DBTX, rm *room.Room) error {
	const query = `
		UPDATE rooms
		SET number = $2, floor = $3, room_type_id = $4, status = $5, is_active = $6, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		rm.ID(),
		rm.Number(),
		rm.Floor(),
		rm.RoomTypeID(),
		rm.Status().String(),
		rm.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("room not found")
	}
	return nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, tx db.DBTX, roomID uuid.UUID, status room.Status) error {
	const query = `
		UPDATE rooms
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, roomID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("room not found")
	}
	return nil
}

func (r *RoomRepository) CreateType(ctx context.Context, tx db.DBTX, t *room.RoomType) (uuid.UUID, error) {
	const query = `
		INSERT INTO room_types (name, nightly_price_cents, capacity, bed_config, amenities)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		t.Name(),
		t.NightlyPriceCents(),
		t.Capacity(),
		t.BedConfig(),
		t.Amenities(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room type", err)
	}
	return id, nil
}

func (r *RoomRepository) UpdateType(ctx context.Context, tx db.DBTX, t *room.RoomType) error {
	const query = `
		UPDATE room_types
		SET name = $2, nightly_price_cents = $3, capacity = $4, bed_config = $5, amenities = $6, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		t.ID(),
		t.Name(),
		t.NightlyPriceCents(),
		t.Capacity(),
		t.BedConfig(),
		t.Amenities(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("room type not found")
	}
	return nil
}
