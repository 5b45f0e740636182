package request

import (
	"time"

	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type GuestPayload struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	DocumentKind   string `json:"document_kind" binding:"required"`
	DocumentNumber string `json:"document_number" binding:"required"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

type ServiceLinePayload struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

type CreateReservationRequest struct {
	RoomID    uuid.UUID            `json:"room_id" binding:"required"`
	CheckIn   time.Time            `json:"check_in" binding:"required"`
	CheckOut  time.Time            `json:"check_out" binding:"required"`
	Headcount int                  `json:"headcount" binding:"required,min=1"`
	Guest     GuestPayload         `json:"guest" binding:"required"`
	Services  []ServiceLinePayload `json:"services,omitempty"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	lines := make([]commands.ServiceLineInput, len(r.Services))
	for i, s := range r.Services {
		lines[i] = commands.ServiceLineInput{
			ServiceID: s.ServiceID,
			Quantity:  s.Quantity,
		}
	}

	return commands.CreateReservationInput{
		RoomID:    r.RoomID,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Headcount: r.Headcount,
		Guest: commands.GuestInput{
			FirstName:      r.Guest.FirstName,
			LastName:       r.Guest.LastName,
			DocumentKind:   r.Guest.DocumentKind,
			DocumentNumber: r.Guest.DocumentNumber,
			Email:          r.Guest.Email,
			Phone:          r.Guest.Phone,
		},
		Services: lines,
	}
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}
