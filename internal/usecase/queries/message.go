package queries

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMessageNotFound = errs.New("message not found")
	ErrMessageAccess   = errs.New("message access denied")
)

type MessageQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*MessageView, error)
	List(ctx context.Context, status string, limit int32) ([]*MessageView, error)
	ListOwn(ctx context.Context, actor Actor, limit int32) ([]*MessageView, error)
}

type MessageReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MessageView, error)
	Find(ctx context.Context, status string, limit int32) ([]*MessageView, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*MessageView, error)
}

type messageQueriesImpl struct {
	readStore MessageReadStore
}

func NewMessageQueries(readStore MessageReadStore) MessageQueries {
	return &messageQueriesImpl{readStore: readStore}
}

func (q *messageQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*MessageView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	if !actor.IsStaff() && !actor.OwnsGuest(view.GuestID) {
		return nil, ErrMessageAccess
	}

	return view, nil
}

func (q *messageQueriesImpl) List(ctx context.Context, status string, limit int32) ([]*MessageView, error) {
	return q.readStore.Find(ctx, status, ClampLimit(limit))
}

func (q *messageQueriesImpl) ListOwn(ctx context.Context, actor Actor, limit int32) ([]*MessageView, error) {
	if actor.GuestID == nil {
		return []*MessageView{}, nil
	}
	return q.readStore.FindByGuestID(ctx, *actor.GuestID, ClampLimit(limit))
}
