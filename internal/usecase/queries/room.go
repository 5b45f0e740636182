package queries

import (
	"context"
	"time"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, status string, floor *int) ([]*RoomView, error)
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time, headcount int) ([]*RoomView, error)
	ListTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	Find(ctx context.Context, status string, floor *int) ([]*RoomView, error)
	// FindAvailable returns active rooms with no blocking reservation
	// overlapping [checkIn, checkOut) and capacity for the party.
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time, headcount int) ([]*RoomView, error)
	FindTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, status string, floor *int) ([]*RoomView, error) {
	return q.readStore.Find(ctx, status, floor)
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context, checkIn, checkOut time.Time, headcount int) ([]*RoomView, error) {
	if !checkOut.After(checkIn) {
		return nil, errs.New("check-out must be after check-in")
	}
	if headcount < 1 {
		headcount = 1
	}
	return q.readStore.FindAvailable(ctx, checkIn, checkOut, headcount)
}

func (q *roomQueriesImpl) ListTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return q.readStore.FindTypes(ctx)
}
