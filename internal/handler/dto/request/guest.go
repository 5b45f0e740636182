package request

import (
	"hotelier/internal/usecase/commands"
)

type CreateGuestRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	DocumentKind   string `json:"document_kind" binding:"required"`
	DocumentNumber string `json:"document_number" binding:"required"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

func (r CreateGuestRequest) ToInput() commands.GuestInput {
	return commands.GuestInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		DocumentKind:   r.DocumentKind,
		DocumentNumber: r.DocumentNumber,
		Email:          r.Email,
		Phone:          r.Phone,
	}
}

type UpdateGuestRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func (r UpdateGuestRequest) ToInput() commands.UpdateGuestInput {
	return commands.UpdateGuestInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}
