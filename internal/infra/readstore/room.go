package readstore

import (
	"context"
	"time"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomSelect = `
	SELECT r.id, r.number, r.floor, r.status, r.is_active,
	       rt.id, rt.name, rt.nightly_price_cents, rt.capacity,
	       r.created_at, r.updated_at
	FROM rooms r
	JOIN room_types rt ON rt.id = r.room_type_id`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, roomSelect+" WHERE r.id = $1", id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	defer rows.Close()

	views, err := scanRoomViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.NotFoundErr("room not found")
	}
	return views[0], nil
}

func (r *RoomReadStore) Find(ctx context.Context, status string, floor *int) ([]*queries.RoomView, error) {
	query := roomSelect + " WHERE ($1 = '' OR r.status = $1) AND ($2::int IS NULL OR r.floor = $2) ORDER BY r.number"

	rows, err := r.db.Query(ctx, query, status, floor)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return scanRoomViews(rows)
}

// FindAvailable excludes rooms out of service and rooms with a confirmed or
// in-house reservation overlapping the half-open requested range.
func (r *RoomReadStore) FindAvailable(ctx context.Context, checkIn, checkOut time.Time, headcount int) ([]*queries.RoomView, error) {
	query := roomSelect + `
	WHERE r.is_active
	  AND r.status <> 'maintenance'
	  AND rt.capacity >= $3
	  AND NOT EXISTS (
		SELECT 1 FROM reservations res
		WHERE res.room_id = r.id
		  AND res.status IN ('confirmed', 'checked_in')
		  AND res.check_in < $2
		  AND res.check_out > $1
	  )
	ORDER BY rt.nightly_price_cents, r.number`

	rows, err := r.db.Query(ctx, query, checkIn, checkOut, headcount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	defer rows.Close()

	return scanRoomViews(rows)
}

func (r *RoomReadStore) FindTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	const query = `
		SELECT id, name, nightly_price_cents, capacity, bed_config, amenities, created_at, updated_at
		FROM room_types
		ORDER BY nightly_price_cents`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	views := []*queries.RoomTypeView{}
	for rows.Next() {
		var v queries.RoomTypeView
		if err := rows.Scan(&v.ID, &v.Name, &v.NightlyPriceCents, &v.Capacity, &v.BedConfig, &v.Amenities, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room type rows", err)
	}
	return views, nil
}

func (r *RoomReadStore) TypeByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	const query = `
		SELECT id, name, nightly_price_cents, capacity, bed_config, amenities, created_at, updated_at
		FROM room_types
		WHERE id = $1`

	var v queries.RoomTypeView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.NightlyPriceCents, &v.Capacity, &v.BedConfig, &v.Amenities, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	return &v, nil
}

func scanRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	views := []*queries.RoomView{}
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(
			&v.ID, &v.Number, &v.Floor, &v.Status, &v.IsActive,
			&v.RoomTypeID, &v.RoomTypeName, &v.NightlyPriceCents, &v.Capacity,
			&v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return views, nil
}
