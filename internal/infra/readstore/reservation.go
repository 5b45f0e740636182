package readstore

import (
	"context"
	"strconv"
	"time"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationListSelect = `
	SELECT r.id, r.code, g.first_name || ' ' || g.last_name, rm.number,
	       r.check_in, r.check_out, r.status, r.stay_price_cents, r.created_at
	FROM reservations r
	JOIN guests g ON g.id = r.guest_id
	JOIN rooms rm ON rm.id = r.room_id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.code, r.guest_id, g.first_name || ' ' || g.last_name, g.email,
		       r.room_id, rm.number, rt.name,
		       r.check_in, r.check_out, r.headcount, r.status, r.stay_price_cents,
		       r.created_at, r.updated_at
		FROM reservations r
		JOIN guests g ON g.id = r.guest_id
		JOIN rooms rm ON rm.id = r.room_id
		JOIN room_types rt ON rt.id = rm.room_type_id
		WHERE r.id = $1`

	var view queries.ReservationView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Code, &view.GuestID, &view.GuestName, &view.GuestEmail,
		&view.RoomID, &view.RoomNumber, &view.RoomTypeName,
		&view.CheckIn, &view.CheckOut, &view.Headcount, &view.Status, &view.StayPriceCents,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	services, err := r.findServices(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Services = services
	for _, s := range services {
		view.ServicesCents += s.TotalCents
	}
	view.Nights = int(view.CheckOut.Sub(view.CheckIn).Hours() / 24)
	view.TotalCents = view.StayPriceCents + view.ServicesCents

	return &view, nil
}

func (r *ReservationReadStore) findServices(ctx context.Context, reservationID uuid.UUID) ([]queries.ReservationService, error) {
	const query = `
		SELECT rs.id, rs.service_id, s.name, rs.quantity, rs.unit_price_cents
		FROM reservation_services rs
		JOIN services s ON s.id = rs.service_id
		WHERE rs.reservation_id = $1
		ORDER BY rs.created_at`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation services", err)
	}
	defer rows.Close()

	services := []queries.ReservationService{}
	for rows.Next() {
		var s queries.ReservationService
		if err := rows.Scan(&s.ID, &s.ServiceID, &s.ServiceName, &s.Quantity, &s.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation service", err)
		}
		s.TotalCents = s.UnitPriceCents * int64(s.Quantity)
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation services", err)
	}

	return services, nil
}

func (r *ReservationReadStore) FindPage(ctx context.Context, filter queries.ReservationFilter, limit int32) ([]*queries.ReservationListItem, error) {
	query, args := buildReservationListQuery(filter, nil, nil, limit)
	return r.list(ctx, query, args)
}

func (r *ReservationReadStore) FindPageAfter(ctx context.Context, filter queries.ReservationFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	query, args := buildReservationListQuery(filter, &lastCreatedAt, &lastID, limit)
	return r.list(ctx, query, args)
}

func (r *ReservationReadStore) FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	query := reservationListSelect + `
	WHERE r.guest_id = $1
	ORDER BY r.created_at DESC, r.id DESC
	LIMIT $2`
	return r.list(ctx, query, []any{guestID, limit})
}

func (r *ReservationReadStore) list(ctx context.Context, query string, args []any) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	items, err := scanReservationListItems(rows)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func scanReservationListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	items := []*queries.ReservationListItem{}
	for rows.Next() {
		var it queries.ReservationListItem
		if err := rows.Scan(
			&it.ID, &it.Code, &it.GuestName, &it.RoomNumber,
			&it.CheckIn, &it.CheckOut, &it.Status, &it.StayPriceCents, &it.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return items, nil
}

// buildReservationListQuery assembles the filtered keyset query. Argument
// numbering follows append order so filters stay composable.
func buildReservationListQuery(filter queries.ReservationFilter, lastCreatedAt *time.Time, lastID *uuid.UUID, limit int32) (string, []any) {
	query := reservationListSelect
	args := []any{}
	where := ""

	and := func(cond string) {
		if where == "" {
			where = "\n\tWHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Status != "" {
		and("r.status = " + arg(filter.Status))
	}
	if filter.RoomID != nil {
		and("r.room_id = " + arg(*filter.RoomID))
	}
	if filter.GuestID != nil {
		and("r.guest_id = " + arg(*filter.GuestID))
	}
	if filter.From != nil {
		and("r.check_out > " + arg(*filter.From))
	}
	if filter.To != nil {
		and("r.check_in < " + arg(*filter.To))
	}
	if lastCreatedAt != nil && lastID != nil {
		and("(r.created_at, r.id) < (" + arg(*lastCreatedAt) + ", " + arg(*lastID) + ")")
	}

	query += where + "\n\tORDER BY r.created_at DESC, r.id DESC\n\tLIMIT " + arg(limit)
	return query, args
}
