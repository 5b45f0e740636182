package reservation

import (
	"time"

	"github.com/google/uuid"
)

// RoomSpec carries the room attributes the booking rules need, decoupled from
// the room aggregate.
type RoomSpec struct {
	ID                uuid.UUID
	NightlyPriceCents int64
	Capacity          int
	Bookable          bool
}

// ServiceLine is a priced, quantified ancillary service attached to a stay.
// The unit price is captured at attach time and never follows later catalog
// price changes.
type ServiceLine struct {
	id             uuid.UUID
	serviceID      uuid.UUID
	quantity       int
	unitPriceCents int64
}

func NewServiceLine(serviceID uuid.UUID, quantity int, unitPriceCents int64) (ServiceLine, error) {
	if quantity <= 0 {
		return ServiceLine{}, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return ServiceLine{}, ErrNegativePrice
	}
	return ServiceLine{
		id:             uuid.New(),
		serviceID:      serviceID,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
	}, nil
}

func ReconstructServiceLine(id, serviceID uuid.UUID, quantity int, unitPriceCents int64) ServiceLine {
	return ServiceLine{id: id, serviceID: serviceID, quantity: quantity, unitPriceCents: unitPriceCents}
}

func (l ServiceLine) ID() uuid.UUID         { return l.id }
func (l ServiceLine) ServiceID() uuid.UUID  { return l.serviceID }
func (l ServiceLine) Quantity() int         { return l.quantity }
func (l ServiceLine) UnitPriceCents() int64 { return l.unitPriceCents }

func (l ServiceLine) TotalCents() int64 {
	return l.unitPriceCents * int64(l.quantity)
}

type Reservation struct {
	id        uuid.UUID
	code      string
	guestID   uuid.UUID
	roomID    uuid.UUID
	stay      StayPeriod
	headcount int
	price     Money
	status    Status
	lines     []ServiceLine
	createdBy *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds a confirmed reservation for a bookable room. The price
// is nightly rate times nights; service lines are priced separately.
func NewReservation(
	code string,
	guestID uuid.UUID,
	room RoomSpec,
	stay StayPeriod,
	headcount int,
	lines []ServiceLine,
	createdBy *uuid.UUID,
) (*Reservation, error) {
	if !room.Bookable {
		return nil, ErrRoomNotBookable
	}
	if headcount <= 0 {
		return nil, ErrInvalidHeadcount
	}
	if headcount > room.Capacity {
		return nil, ErrHeadcountExceedsRoom
	}

	nightly, err := NewMoney(room.NightlyPriceCents)
	if err != nil {
		return nil, err
	}
	price := nightly.MultiplyBy(int64(stay.Nights()))

	return &Reservation{
		id:        uuid.New(),
		code:      code,
		guestID:   guestID,
		roomID:    room.ID,
		stay:      stay,
		headcount: headcount,
		price:     price,
		status:    StatusConfirmed,
		lines:     lines,
		createdBy: createdBy,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	code string,
	guestID, roomID uuid.UUID,
	stay StayPeriod,
	headcount int,
	price Money,
	status Status,
	lines []ServiceLine,
	createdBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		code:      code,
		guestID:   guestID,
		roomID:    roomID,
		stay:      stay,
		headcount: headcount,
		price:     price,
		status:    status,
		lines:     lines,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Code() string         { return r.code }
func (r *Reservation) GuestID() uuid.UUID   { return r.guestID }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) Stay() StayPeriod     { return r.stay }
func (r *Reservation) Headcount() int       { return r.headcount }
func (r *Reservation) Price() Money         { return r.price }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Lines() []ServiceLine { return r.lines }
func (r *Reservation) CreatedBy() *uuid.UUID { return r.createdBy }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// ServicesTotalCents sums the attached line totals.
func (r *Reservation) ServicesTotalCents() int64 {
	var total int64
	for _, l := range r.lines {
		total += l.TotalCents()
	}
	return total
}

// Transition moves the reservation along the lifecycle state machine.
func (r *Reservation) Transition(to Status) error {
	if !r.status.CanTransition(to) {
		return ErrInvalidTransition
	}
	r.status = to
	return nil
}
