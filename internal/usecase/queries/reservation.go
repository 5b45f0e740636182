package queries

import (
	"context"
	"time"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, limit int32, afterCursor string) ([]*ReservationListItem, string, error)
	ListOwn(ctx context.Context, actor Actor, limit int32) ([]*ReservationListItem, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindPage(ctx context.Context, filter ReservationFilter, limit int32) ([]*ReservationListItem, error)
	FindPageAfter(ctx context.Context, filter ReservationFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if !actor.IsStaff() && !actor.OwnsGuest(view.GuestID) {
		return nil, ErrReservationAccess
	}

	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter, limit int32, afterCursor string) ([]*ReservationListItem, string, error) {
	limit = ClampLimit(limit)

	var (
		items []*ReservationListItem
		err   error
	)
	if afterCursor == "" {
		items, err = q.readStore.FindPage(ctx, filter, limit+1)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(afterCursor)
		if decodeErr != nil {
			return nil, "", errs.Wrap(decodeErr, "invalid cursor")
		}
		items, err = q.readStore.FindPageAfter(ctx, filter, lastCreatedAt, lastID, limit+1)
	}
	if err != nil {
		return nil, "", err
	}

	next := ""
	if len(items) > int(limit) {
		items = items[:limit]
		last := items[len(items)-1]
		next = EncodeAfterCursor(last.CreatedAt, last.ID)
	}

	return items, next, nil
}

func (q *reservationQueriesImpl) ListOwn(ctx context.Context, actor Actor, limit int32) ([]*ReservationListItem, error) {
	if actor.GuestID == nil {
		return []*ReservationListItem{}, nil
	}
	return q.readStore.FindByGuestID(ctx, *actor.GuestID, ClampLimit(limit))
}
