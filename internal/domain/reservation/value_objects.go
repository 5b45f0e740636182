package reservation

import (
	"fmt"
	"time"
)

// StayPeriod is a half-open [check-in, check-out) date interval.
// Same-day checkout/check-in on adjacent reservations does not overlap.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyBy(n int64) Money {
	return Money{cents: m.cents * n}
}

// FormatCode renders the human-readable reservation code: RES + yymm + 4-digit
// monthly sequence, e.g. RES24060042.
func FormatCode(now time.Time, seq int) string {
	return fmt.Sprintf("RES%s%04d", now.Format("0601"), seq)
}
