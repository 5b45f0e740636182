package queries

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGuestNotFound = errs.New("guest not found")
	ErrGuestAccess   = errs.New("guest access denied")
)

type GuestQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*GuestView, error)
	Search(ctx context.Context, term string, limit int32) ([]*GuestView, error)
}

type GuestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GuestView, error)
	// Search matches name, email and document number, case-insensitively.
	Search(ctx context.Context, term string, limit int32) ([]*GuestView, error)
}

type guestQueriesImpl struct {
	readStore GuestReadStore
}

func NewGuestQueries(readStore GuestReadStore) GuestQueries {
	return &guestQueriesImpl{readStore: readStore}
}

func (q *guestQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*GuestView, error) {
	if !actor.IsStaff() && !actor.OwnsGuest(id) {
		return nil, ErrGuestAccess
	}

	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *guestQueriesImpl) Search(ctx context.Context, term string, limit int32) ([]*GuestView, error) {
	return q.readStore.Search(ctx, term, ClampLimit(limit))
}
