package guest

import (
	"time"

	"github.com/google/uuid"
)

type Guest struct {
	id        uuid.UUID
	firstName string
	lastName  string
	document  Document
	email     string
	phone     string
	userID    *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewGuest(firstName, lastName string, document Document, email, phone string, userID *uuid.UUID) (*Guest, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}
	return &Guest{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
		document:  document,
		email:     email,
		phone:     phone,
		userID:    userID,
	}, nil
}

func ReconstructGuest(
	id uuid.UUID,
	firstName, lastName string,
	document Document,
	email, phone string,
	userID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Guest {
	return &Guest{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		document:  document,
		email:     email,
		phone:     phone,
		userID:    userID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (g *Guest) ID() uuid.UUID        { return g.id }
func (g *Guest) FirstName() string    { return g.firstName }
func (g *Guest) LastName() string     { return g.lastName }
func (g *Guest) Document() Document   { return g.document }
func (g *Guest) Email() string        { return g.email }
func (g *Guest) Phone() string        { return g.phone }
func (g *Guest) UserID() *uuid.UUID   { return g.userID }
func (g *Guest) CreatedAt() time.Time { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time { return g.updatedAt }

func (g *Guest) FullName() string {
	return g.firstName + " " + g.lastName
}
