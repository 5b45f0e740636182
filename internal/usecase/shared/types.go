package shared

import (
	"time"

	"hotelier/internal/domain/catalog"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"

	"github.com/google/uuid"
)

// RoomSnapshot is the command-side view of a room, joined with its type.
type RoomSnapshot struct {
	ID                uuid.UUID
	Number            string
	Floor             int
	Status            room.Status
	IsActive          bool
	RoomTypeID        uuid.UUID
	NightlyPriceCents int64
	Capacity          int
}

func (s *RoomSnapshot) Spec() reservation.RoomSpec {
	return reservation.RoomSpec{
		ID:                s.ID,
		NightlyPriceCents: s.NightlyPriceCents,
		Capacity:          s.Capacity,
		Bookable:          s.IsActive && s.Status != room.StatusMaintenance,
	}
}

type GuestSnapshot struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	UserID    *uuid.UUID
}

type ReservationSnapshot struct {
	ID          uuid.UUID
	Code        string
	GuestID     uuid.UUID
	GuestUserID *uuid.UUID
	GuestEmail  string
	RoomID      uuid.UUID
	Status      reservation.Status
	CheckIn     time.Time
	CheckOut    time.Time
	Headcount   int
	PriceCents  int64
}

type ServiceSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	IsActive   bool
}

type ContractSnapshot struct {
	ID          uuid.UUID
	GuestID     uuid.UUID
	GuestUserID *uuid.UUID
	GuestEmail  string
	Status      catalog.ContractStatus
	ServiceDate time.Time
	TotalCents  int64
}
