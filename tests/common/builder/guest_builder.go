//go:build unit || e2e

package builder

import (
	"hotelier/internal/domain/guest"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	FirstName      string
	LastName       string
	DocumentKind   string
	DocumentNumber string
	Email          string
	Phone          string
	UserID         *uuid.UUID
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		FirstName:      "Ana",
		LastName:       "Silva",
		DocumentKind:   "passport",
		DocumentNumber: "X1234567",
		Email:          "ana@example.com",
		Phone:          "+351 900 000 000",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) BuildDomain() (*guest.Guest, error) {
	doc, err := guest.NewDocument(b.DocumentKind, b.DocumentNumber)
	if err != nil {
		return nil, err
	}
	return guest.NewGuest(b.FirstName, b.LastName, doc, b.Email, b.Phone, b.UserID)
}
