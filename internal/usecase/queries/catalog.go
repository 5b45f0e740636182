package queries

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound  = errs.New("service not found")
	ErrContractNotFound = errs.New("service contract not found")
	ErrContractAccess   = errs.New("service contract access denied")
)

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, activeOnly bool) ([]*ServiceView, error)
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	Find(ctx context.Context, activeOnly bool) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *serviceQueriesImpl) List(ctx context.Context, activeOnly bool) ([]*ServiceView, error) {
	return q.readStore.Find(ctx, activeOnly)
}

type ContractQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*ContractView, error)
	List(ctx context.Context, status string, limit int32) ([]*ContractView, error)
	ListOwn(ctx context.Context, actor Actor, limit int32) ([]*ContractView, error)
}

type ContractReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ContractView, error)
	Find(ctx context.Context, status string, limit int32) ([]*ContractView, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*ContractView, error)
}

type contractQueriesImpl struct {
	readStore ContractReadStore
}

func NewContractQueries(readStore ContractReadStore) ContractQueries {
	return &contractQueriesImpl{readStore: readStore}
}

func (q *contractQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*ContractView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	if !actor.IsStaff() && !actor.OwnsGuest(view.GuestID) {
		return nil, ErrContractAccess
	}

	return view, nil
}

func (q *contractQueriesImpl) List(ctx context.Context, status string, limit int32) ([]*ContractView, error) {
	return q.readStore.Find(ctx, status, ClampLimit(limit))
}

func (q *contractQueriesImpl) ListOwn(ctx context.Context, actor Actor, limit int32) ([]*ContractView, error) {
	if actor.GuestID == nil {
		return []*ContractView{}, nil
	}
	return q.readStore.FindByGuestID(ctx, *actor.GuestID, ClampLimit(limit))
}
