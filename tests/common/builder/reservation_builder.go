//go:build unit || e2e

package builder

import (
	"time"

	"hotelier/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Code              string
	GuestID           uuid.UUID
	RoomID            uuid.UUID
	NightlyPriceCents int64
	Capacity          int
	Bookable          bool
	CheckIn           time.Time
	CheckOut          time.Time
	Headcount         int
	Lines             []reservation.ServiceLine
	CreatedBy         *uuid.UUID
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Code:              "RES26080001",
		GuestID:           uuid.New(),
		RoomID:            uuid.New(),
		NightlyPriceCents: 12000,
		Capacity:          2,
		Bookable:          true,
		CheckIn:           time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:          time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
		Headcount:         2,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithHeadcount(n int) *ReservationBuilder {
	b.Headcount = n
	return b
}

func (b *ReservationBuilder) WithLine(serviceID uuid.UUID, quantity int, unitPriceCents int64) *ReservationBuilder {
	line, err := reservation.NewServiceLine(serviceID, quantity, unitPriceCents)
	if err != nil {
		panic(err)
	}
	b.Lines = append(b.Lines, line)
	return b
}

func (b *ReservationBuilder) BuildStay() (reservation.StayPeriod, error) {
	return reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := reservation.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}

	room := reservation.RoomSpec{
		ID:                b.RoomID,
		NightlyPriceCents: b.NightlyPriceCents,
		Capacity:          b.Capacity,
		Bookable:          b.Bookable,
	}

	return reservation.NewReservation(b.Code, b.GuestID, room, stay, b.Headcount, b.Lines, b.CreatedBy)
}
