package commands

import (
	"context"
	"time"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/pkg/patch"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNumberTaken   = errs.New("room number already in use")
	ErrRoomTypeNotFound  = errs.New("room type not found")
	ErrRoomTypeNameTaken = errs.New("room type name already in use")
	ErrInvalidRoomStatus = errs.New("invalid room status")
)

type CreateRoomInput struct {
	Number     string
	Floor      int
	RoomTypeID uuid.UUID
}

type UpdateRoomInput struct {
	Number     *string
	Floor      *int
	RoomTypeID *uuid.UUID
	IsActive   *bool
}

type RoomTypeInput struct {
	Name              string
	NightlyPriceCents int64
	Capacity          int
	BedConfig         string
	Amenities         []string
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, input CreateRoomInput) (*queries.RoomView, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, input UpdateRoomInput) (*queries.RoomView, error)
	OverrideStatus(ctx context.Context, id uuid.UUID, status string) error
	CreateRoomType(ctx context.Context, input RoomTypeInput) (uuid.UUID, error)
	UpdateRoomType(ctx context.Context, id uuid.UUID, input RoomTypeInput) error
}

type roomCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.RoomReadStore
}

func NewRoomCommands(uow shared.UnitOfWork, readStore queries.RoomReadStore) RoomCommands {
	return &roomCommandsImpl{uow: uow, readStore: readStore}
}

func (c *roomCommandsImpl) CreateRoom(ctx context.Context, input CreateRoomInput) (*queries.RoomView, error) {
	entity, err := room.NewRoom(input.Number, input.Floor, input.RoomTypeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var roomID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Rooms().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		roomID = id
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrRoomNumberTaken
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}

	return c.readStore.FindByID(ctx, roomID)
}

func (c *roomCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, input UpdateRoomInput) (*queries.RoomView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RoomByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		// Timestamps are storage-maintained; zero values are never written back.
		entity := room.ReconstructRoom(
			snap.ID,
			patch.Coalesce(input.Number, snap.Number),
			patch.Coalesce(input.Floor, snap.Floor),
			patch.Coalesce(input.RoomTypeID, snap.RoomTypeID),
			snap.Status,
			patch.Coalesce(input.IsActive, snap.IsActive),
			time.Time{}, time.Time{},
		)

		return tx.Rooms().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrRoomNumberTaken
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}

	return c.readStore.FindByID(ctx, id)
}

// OverrideStatus is the staff escape hatch outside the reservation-driven
// transitions, e.g. flipping a room to maintenance.
func (c *roomCommandsImpl) OverrideStatus(ctx context.Context, id uuid.UUID, status string) error {
	next := room.Status(status)
	if !next.IsValid() {
		return ErrInvalidRoomStatus
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().UpdateStatus(ctx, tx.DB(), id, next)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrRoomNotFound
	}
	return err
}

func (c *roomCommandsImpl) CreateRoomType(ctx context.Context, input RoomTypeInput) (uuid.UUID, error) {
	entity, err := room.NewRoomType(input.Name, input.NightlyPriceCents, input.Capacity, input.BedConfig, input.Amenities)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var typeID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Rooms().CreateType(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		typeID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrRoomTypeNameTaken
		}
		return uuid.Nil, err
	}

	return typeID, nil
}

func (c *roomCommandsImpl) UpdateRoomType(ctx context.Context, id uuid.UUID, input RoomTypeInput) error {
	if _, err := room.NewRoomType(input.Name, input.NightlyPriceCents, input.Capacity, input.BedConfig, input.Amenities); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	entity := room.ReconstructRoomType(
		id, input.Name, input.NightlyPriceCents, input.Capacity,
		input.BedConfig, input.Amenities, true,
		time.Time{}, time.Time{},
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().UpdateType(ctx, tx.DB(), entity)
	})
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrRoomTypeNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrRoomTypeNameTaken
	}
	return err
}
