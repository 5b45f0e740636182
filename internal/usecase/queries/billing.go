package queries

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound = errs.New("invoice not found")
	ErrInvoiceAccess   = errs.New("invoice access denied")
)

type InvoiceQueries interface {
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, status string, limit int32) ([]*InvoiceView, error)
}

type InvoiceReadStore interface {
	// FindByID loads the invoice with its payments and the owning guest.
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, uuid.UUID, error)
	Find(ctx context.Context, status string, limit int32) ([]*InvoiceView, error)
}

type invoiceQueriesImpl struct {
	readStore InvoiceReadStore
}

func NewInvoiceQueries(readStore InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{readStore: readStore}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*InvoiceView, error) {
	view, guestID, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	if !actor.IsStaff() && !actor.OwnsGuest(guestID) {
		return nil, ErrInvoiceAccess
	}

	return view, nil
}

func (q *invoiceQueriesImpl) List(ctx context.Context, status string, limit int32) ([]*InvoiceView, error) {
	return q.readStore.Find(ctx, status, ClampLimit(limit))
}
