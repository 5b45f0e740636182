package commands

import (
	"context"
	"encoding/json"
	"time"

	"hotelier/internal/domain/guest"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/domain/user"
	"hotelier/internal/infra"
	"hotelier/internal/notification"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound         = errs.New("room not found")
	ErrRoomUnavailable      = errs.New("room unavailable for the requested period")
	ErrRoomNotBookable      = errs.New("room not bookable")
	ErrServiceNotFound      = errs.New("service not found")
	ErrServiceInactive      = errs.New("service inactive")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrIllegalTransition    = errs.New("illegal reservation transition")
	ErrTransitionNotAllowed = errs.New("transition not allowed for this caller")
	ErrDomainValidation     = errs.New("domain validation error")
)

type GuestInput struct {
	FirstName      string
	LastName       string
	DocumentKind   string
	DocumentNumber string
	Email          string
	Phone          string
}

type ServiceLineInput struct {
	ServiceID uuid.UUID
	Quantity  int
}

type CreateReservationInput struct {
	RoomID    uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	Headcount int
	Guest     GuestInput
	Services  []ServiceLineInput
}

type ReservationCommands interface {
	Create(ctx context.Context, actor queries.Actor, input CreateReservationInput) (*queries.ReservationView, error)
	Transition(ctx context.Context, actor queries.Actor, id uuid.UUID, to reservation.Status) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.ReservationReadStore
	clock     clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, readStore queries.ReservationReadStore, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clk,
	}
}

// Create books a room in one transaction. The room row is locked first, so
// two competing bookings for the same room serialize and the loser sees the
// winner's reservation in the overlap check.
func (c *reservationCommandsImpl) Create(ctx context.Context, actor queries.Actor, input CreateReservationInput) (*queries.ReservationView, error) {
	stay, err := reservation.NewStayPeriod(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	document, err := guest.NewDocument(input.Guest.DocumentKind, input.Guest.DocumentNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var linkedUser *uuid.UUID
	if actor.Role == user.RoleGuest {
		linkedUser = &actor.UserID
	}
	guestEntity, err := guest.NewGuest(
		input.Guest.FirstName, input.Guest.LastName, document,
		input.Guest.Email, input.Guest.Phone, linkedUser,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	now := c.clock.Now()
	var reservationID uuid.UUID

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		roomSnap, err := reads.RoomForBooking(ctx, input.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		spec := roomSnap.Spec()
		if !spec.Bookable {
			return ErrRoomNotBookable
		}

		overlap, err := reads.HasOverlap(ctx, input.RoomID, stay.CheckIn(), stay.CheckOut(), nil)
		if err != nil {
			return err
		}
		if overlap {
			return ErrRoomUnavailable
		}

		lines, err := c.resolveServiceLines(ctx, reads, input.Services)
		if err != nil {
			return err
		}

		guestID, err := tx.Guests().UpsertByDocument(ctx, tx.DB(), guestEntity)
		if err != nil {
			return err
		}

		seq, err := reads.NextReservationSeq(ctx, now.Format("0601"))
		if err != nil {
			return err
		}
		code := reservation.FormatCode(now, seq)

		res, err := reservation.NewReservation(code, guestID, spec, stay, input.Headcount, lines, &actor.UserID)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			return err
		}
		reservationID = id

		if err := tx.Rooms().UpdateStatus(ctx, tx.DB(), input.RoomID, room.StatusOnBooking); err != nil {
			return err
		}

		return c.enqueueConfirmation(ctx, tx, guestEntity, res, roomSnap.Number, now)
	})
	if err != nil {
		return nil, err
	}

	return c.readStore.FindByID(ctx, reservationID)
}

func (c *reservationCommandsImpl) resolveServiceLines(ctx context.Context, reads shared.CommandReads, inputs []ServiceLineInput) ([]reservation.ServiceLine, error) {
	lines := make([]reservation.ServiceLine, 0, len(inputs))
	for _, in := range inputs {
		snap, err := reads.ServiceByID(ctx, in.ServiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, err
		}
		if !snap.IsActive {
			return nil, ErrServiceInactive
		}

		line, err := reservation.NewServiceLine(snap.ID, in.Quantity, snap.PriceCents)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (c *reservationCommandsImpl) enqueueConfirmation(ctx context.Context, tx shared.Tx, g *guest.Guest, res *reservation.Reservation, roomNumber string, now time.Time) error {
	if g.Email() == "" {
		return nil
	}

	payload, err := json.Marshal(notification.ReservationConfirmedPayload{
		To:              g.Email(),
		GuestName:       g.FullName(),
		ReservationCode: res.Code(),
		RoomNumber:      roomNumber,
		CheckIn:         res.Stay().CheckIn().Format("2006-01-02"),
		CheckOut:        res.Stay().CheckOut().Format("2006-01-02"),
		TotalCents:      res.Price().Cents() + res.ServicesTotalCents(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal confirmation payload")
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), notification.KindEmail, notification.TopicReservationConfirmed, payload, now)
}

// Transition applies one step of the reservation lifecycle and keeps the room
// state in sync. Guests may only cancel their own reservation, and only
// before check-in; the state machine bounds the rest.
func (c *reservationCommandsImpl) Transition(ctx context.Context, actor queries.Actor, id uuid.UUID, to reservation.Status) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if !actor.IsStaff() {
			owns := snap.GuestUserID != nil && *snap.GuestUserID == actor.UserID
			if !owns || to != reservation.StatusCancelled {
				return ErrTransitionNotAllowed
			}
		}

		if !snap.Status.CanTransition(to) {
			return ErrIllegalTransition
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, to); err != nil {
			return err
		}

		return c.syncRoomStatus(ctx, tx, snap, to)
	})
}

func (c *reservationCommandsImpl) syncRoomStatus(ctx context.Context, tx shared.Tx, snap *shared.ReservationSnapshot, to reservation.Status) error {
	var next room.Status
	switch to {
	case reservation.StatusConfirmed:
		next = room.StatusOnBooking
	case reservation.StatusCheckedIn:
		next = room.StatusOnCheckIn
	case reservation.StatusCheckedOut:
		next = room.StatusOnCheckOut
	case reservation.StatusCancelled:
		// A pending reservation never held the room.
		if !snap.Status.BlocksRoom() {
			return nil
		}
		next = room.StatusOnCancel
	default:
		return nil
	}
	return tx.Rooms().UpdateStatus(ctx, tx.DB(), snap.RoomID, next)
}
