package queries

import (
	"hotelier/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as seen by the read side. Guests carry
// their linked guest record so ownership checks stay cheap.
type Actor struct {
	UserID  uuid.UUID
	Role    user.Role
	GuestID *uuid.UUID
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

func (a Actor) OwnsGuest(guestID uuid.UUID) bool {
	return a.GuestID != nil && *a.GuestID == guestID
}
