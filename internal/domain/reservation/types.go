package reservation

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrInvalidTransition    = errors.New("invalid reservation status transition")
	ErrInvalidStayPeriod    = errors.New("invalid stay period")
	ErrInvalidHeadcount     = errors.New("invalid headcount")
	ErrHeadcountExceedsRoom = errors.New("headcount exceeds room capacity")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrRoomNotBookable      = errors.New("room is not bookable")
	ErrInvalidQuantity      = errors.New("service quantity must be positive")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// BlocksRoom reports whether a reservation in this status occupies the room's
// calendar. Only these statuses participate in the overlap check.
func (s Status) BlocksRoom() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition is the authoritative state machine for the reservation lifecycle.
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
