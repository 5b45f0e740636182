//go:build unit || e2e

package builder

import (
	"time"

	"hotelier/internal/domain/user"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	Role         string
	GuestID      *uuid.UUID
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "manager",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        uuid.New(),
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		GuestID:   u.GuestID,
		CreatedAt: time.Now(),
	}
}

func (u *UserBuilder) BuildActor() queries.Actor {
	role, err := user.NewRole(u.Role)
	if err != nil {
		panic(err)
	}
	return queries.Actor{
		UserID:  uuid.New(),
		Role:    role,
		GuestID: u.GuestID,
	}
}
