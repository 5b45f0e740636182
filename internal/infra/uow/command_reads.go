package uow

import (
	"context"
	"time"

	"hotelier/internal/domain/billing"
	"hotelier/internal/domain/catalog"
	dmessage "hotelier/internal/domain/message"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads runs write-path lookups on whatever connection it was built
// with. Inside a transaction the locking reads hold until commit.
type commandReads struct {
	dbtx db.DBTX
}

const roomSnapshotSelect = `
	SELECT r.id, r.number, r.floor, r.status, r.is_active,
	       rt.id, rt.nightly_price_cents, rt.capacity
	FROM rooms r
	JOIN room_types rt ON rt.id = r.room_type_id
	WHERE r.id = $1`

func (r *commandReads) RoomForBooking(ctx context.Context, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	// FOR UPDATE OF r serializes competing bookings on the same room row.
	return r.roomSnapshot(ctx, roomSnapshotSelect+" FOR UPDATE OF r", roomID)
}

func (r *commandReads) RoomByID(ctx context.Context, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	return r.roomSnapshot(ctx, roomSnapshotSelect, roomID)
}

func (r *commandReads) roomSnapshot(ctx context.Context, query string, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	var (
		snap   shared.RoomSnapshot
		status string
	)
	err := r.dbtx.QueryRow(ctx, query, roomID).Scan(
		&snap.ID, &snap.Number, &snap.Floor, &status, &snap.IsActive,
		&snap.RoomTypeID, &snap.NightlyPriceCents, &snap.Capacity,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err)
		}
		return nil, infra.WrapRepoErr("failed to load room", err)
	}
	snap.Status = room.Status(status)
	return &snap, nil
}

func (r *commandReads) HasOverlap(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE room_id = $1
			  AND status IN ('confirmed', 'checked_in')
			  AND check_in < $3
			  AND check_out > $2
			  AND ($4::uuid IS NULL OR id <> $4)
		)`

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, roomID, checkIn, checkOut, exclude).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

func (r *commandReads) NextReservationSeq(ctx context.Context, yearMonth string) (int, error) {
	return r.nextSeq(ctx, "reservation_code", yearMonth, "failed to allocate reservation sequence")
}

func (r *commandReads) NextInvoiceSeq(ctx context.Context, yearMonth string) (int, error) {
	return r.nextSeq(ctx, "invoice_number", yearMonth, "failed to allocate invoice sequence")
}

// nextSeq bumps the per-month counter row. The row lock taken by the upsert is
// held until the surrounding transaction commits, so two transactions can
// never allocate the same value; a rolled-back transaction leaves a gap.
func (r *commandReads) nextSeq(ctx context.Context, scope, yearMonth, msg string) (int, error) {
	const query = `
		INSERT INTO sequence_counters (scope, period, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (scope, period) DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value`

	var seq int
	if err := r.dbtx.QueryRow(ctx, query, scope, yearMonth).Scan(&seq); err != nil {
		return 0, infra.WrapRepoErr(msg, err)
	}
	return seq, nil
}

const guestSnapshotSelect = `
	SELECT id, first_name, last_name, email, phone, user_id
	FROM guests`

func (r *commandReads) GuestByUserID(ctx context.Context, userID uuid.UUID) (*shared.GuestSnapshot, error) {
	return r.guestSnapshot(ctx, guestSnapshotSelect+" WHERE user_id = $1", userID)
}

func (r *commandReads) GuestByID(ctx context.Context, id uuid.UUID) (*shared.GuestSnapshot, error) {
	return r.guestSnapshot(ctx, guestSnapshotSelect+" WHERE id = $1", id)
}

func (r *commandReads) guestSnapshot(ctx context.Context, query string, args ...any) (*shared.GuestSnapshot, error) {
	var snap shared.GuestSnapshot
	err := r.dbtx.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.FirstName, &snap.LastName, &snap.Email, &snap.Phone, &snap.UserID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err)
		}
		return nil, infra.WrapRepoErr("failed to load guest", err)
	}
	return &snap, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT r.id, r.code, r.guest_id, g.user_id, g.email, r.room_id, r.status,
		       r.check_in, r.check_out, r.headcount, r.stay_price_cents
		FROM reservations r
		JOIN guests g ON g.id = r.guest_id
		WHERE r.id = $1`

	var (
		snap   shared.ReservationSnapshot
		status string
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Code, &snap.GuestID, &snap.GuestUserID, &snap.GuestEmail, &snap.RoomID, &status,
		&snap.CheckIn, &snap.CheckOut, &snap.Headcount, &snap.PriceCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err)
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}
	snap.Status = reservation.Status(status)
	return &snap, nil
}

func (r *commandReads) ServicesTotal(ctx context.Context, reservationID uuid.UUID) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(quantity * unit_price_cents), 0)
		FROM reservation_services
		WHERE reservation_id = $1`

	var total int64
	if err := r.dbtx.QueryRow(ctx, query, reservationID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum reservation services", err)
	}
	return total, nil
}

func (r *commandReads) InvoiceForPayment(ctx context.Context, invoiceID uuid.UUID) (*billing.Invoice, error) {
	const query = `
		SELECT id, number, reservation_id, subtotal_cents, tax_cents, discount_cents, total_cents,
		       status, issued_at, created_at, updated_at
		FROM invoices
		WHERE id = $1
		FOR UPDATE`

	var (
		id, reservationID                                   uuid.UUID
		number, status                                      string
		subtotalCents, taxCents, discountCents, totalCents  int64
		issuedAt, createdAt, updatedAt                      time.Time
	)
	err := r.dbtx.QueryRow(ctx, query, invoiceID).Scan(
		&id, &number, &reservationID, &subtotalCents, &taxCents, &discountCents, &totalCents,
		&status, &issuedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err)
		}
		return nil, infra.WrapRepoErr("failed to load invoice", err)
	}

	return billing.ReconstructInvoice(
		id, number, reservationID,
		subtotalCents, taxCents, discountCents, totalCents,
		billing.InvoiceStatus(status),
		issuedAt, createdAt, updatedAt,
	), nil
}

func (r *commandReads) InvoiceExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM invoices WHERE reservation_id = $1 AND status <> 'voided')`

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, reservationID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check invoice existence", err)
	}
	return exists, nil
}

func (r *commandReads) PaymentsTotal(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	const query = `SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE invoice_id = $1`

	var total int64
	if err := r.dbtx.QueryRow(ctx, query, invoiceID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum payments", err)
	}
	return total, nil
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	const query = `SELECT id, name, price_cents, is_active FROM services WHERE id = $1`

	var snap shared.ServiceSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.PriceCents, &snap.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err)
		}
		return nil, infra.WrapRepoErr("failed to load service", err)
	}
	return &snap, nil
}

func (r *commandReads) ContractByID(ctx context.Context, id uuid.UUID) (*shared.ContractSnapshot, error) {
	const query = `
		SELECT c.id, c.guest_id, g.user_id, g.email, c.status, c.service_date,
		       COALESCE((SELECT SUM(l.quantity * l.unit_price_cents)
		                 FROM service_contract_lines l WHERE l.contract_id = c.id), 0)
		FROM service_contracts c
		JOIN guests g ON g.id = c.guest_id
		WHERE c.id = $1`

	var (
		snap   shared.ContractSnapshot
		status string
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.GuestID, &snap.GuestUserID, &snap.GuestEmail, &status, &snap.ServiceDate, &snap.TotalCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service contract not found", err)
		}
		return nil, infra.WrapRepoErr("failed to load service contract", err)
	}
	snap.Status = catalog.ContractStatus(status)
	return &snap, nil
}

func (r *commandReads) MessageByID(ctx context.Context, id uuid.UUID) (*dmessage.Message, error) {
	const query = `
		SELECT id, guest_id, subject, body, reply, replied_by, replied_at, status, created_at, updated_at
		FROM messages
		WHERE id = $1`

	var (
		msgID, guestID       uuid.UUID
		subject, body        string
		reply                *string
		repliedBy            *uuid.UUID
		repliedAt            *time.Time
		status               string
		createdAt, updatedAt time.Time
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&msgID, &guestID, &subject, &body, &reply, &repliedBy, &repliedAt, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err)
		}
		return nil, infra.WrapRepoErr("failed to load message", err)
	}

	return dmessage.ReconstructMessage(
		msgID, guestID, subject, body, reply, repliedBy, repliedAt,
		dmessage.Status(status), createdAt, updatedAt,
	), nil
}

func (r *commandReads) TaxRatePercent(ctx context.Context) (float64, error) {
	const query = `SELECT value::float8 FROM settings WHERE key = 'tax_rate_percent'`

	var rate float64
	err := r.dbtx.QueryRow(ctx, query).Scan(&rate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("tax rate setting missing", err)
		}
		return 0, infra.WrapRepoErr("failed to load tax rate", err)
	}
	return rate, nil
}
