package room

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid room status")
	ErrInvalidRoomNumber = errors.New("invalid room number")
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrInvalidPrice      = errors.New("nightly price cannot be negative")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusOccupied    Status = "occupied"
	StatusCleaning    Status = "cleaning"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusCleaning, StatusMaintenance:
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

// The single authoritative mapping from reservation lifecycle events to room status.
// Staff overrides go through the same enum but bypass this table.
const (
	StatusOnBooking  = StatusReserved
	StatusOnCheckIn  = StatusOccupied
	StatusOnCheckOut = StatusCleaning
	StatusOnCancel   = StatusAvailable
)
