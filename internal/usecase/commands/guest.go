package commands

import (
	"context"
	"time"

	"hotelier/internal/domain/guest"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/pkg/patch"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrGuestNotFound = errs.New("guest not found")
	ErrDocumentTaken = errs.New("identity document already registered")
)

type UpdateGuestInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

type GuestCommands interface {
	CreateGuest(ctx context.Context, input GuestInput) (*queries.GuestView, error)
	UpdateGuest(ctx context.Context, id uuid.UUID, input UpdateGuestInput) (*queries.GuestView, error)
}

type guestCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.GuestReadStore
}

func NewGuestCommands(uow shared.UnitOfWork, readStore queries.GuestReadStore) GuestCommands {
	return &guestCommandsImpl{uow: uow, readStore: readStore}
}

func (c *guestCommandsImpl) CreateGuest(ctx context.Context, input GuestInput) (*queries.GuestView, error) {
	document, err := guest.NewDocument(input.DocumentKind, input.DocumentNumber)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := guest.NewGuest(input.FirstName, input.LastName, document, input.Email, input.Phone, nil)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var guestID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Guests().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		guestID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDocumentTaken
		}
		return nil, err
	}

	return c.readStore.FindByID(ctx, guestID)
}

func (c *guestCommandsImpl) UpdateGuest(ctx context.Context, id uuid.UUID, input UpdateGuestInput) (*queries.GuestView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().GuestByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrGuestNotFound
			}
			return err
		}

		// The document pair is the guest's permanent identity; updates touch
		// contact fields only.
		entity := guest.ReconstructGuest(
			snap.ID,
			patch.Coalesce(input.FirstName, snap.FirstName),
			patch.Coalesce(input.LastName, snap.LastName),
			guest.Document{},
			patch.Coalesce(input.Email, snap.Email),
			patch.Coalesce(input.Phone, snap.Phone),
			snap.UserID,
			time.Time{}, time.Time{},
		)

		return tx.Guests().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	return c.readStore.FindByID(ctx, id)
}

// resolveActorGuest loads the guest profile for a guest-role actor. The token
// carries the link resolved at login; when it predates the profile (the guest
// booked or was registered after logging in) the account link is authoritative.
func resolveActorGuest(ctx context.Context, reads shared.CommandReads, actor queries.Actor) (*shared.GuestSnapshot, error) {
	var (
		snap *shared.GuestSnapshot
		err  error
	)
	if actor.GuestID != nil {
		snap, err = reads.GuestByID(ctx, *actor.GuestID)
	} else {
		snap, err = reads.GuestByUserID(ctx, actor.UserID)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return snap, nil
}
