package readstore

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/pkg/pgconv"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

const invoiceSelect = `
	SELECT i.id, i.number, i.reservation_id, r.code, g.first_name || ' ' || g.last_name, g.id,
	       i.subtotal_cents, i.tax_cents, i.discount_cents, i.total_cents, i.status, i.issued_at,
	       COALESCE((SELECT SUM(p.amount_cents) FROM payments p WHERE p.invoice_id = i.id), 0)
	FROM invoices i
	JOIN reservations r ON r.id = i.reservation_id
	JOIN guests g ON g.id = r.guest_id`

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(dbtx db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: dbtx}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, uuid.UUID, error) {
	var (
		v       queries.InvoiceView
		guestID uuid.UUID
	)
	err := r.db.QueryRow(ctx, invoiceSelect+" WHERE i.id = $1", id).Scan(
		&v.ID, &v.Number, &v.ReservationID, &v.ReservationCode, &v.GuestName, &guestID,
		&v.SubtotalCents, &v.TaxCents, &v.DiscountCents, &v.TotalCents, &v.Status, &v.IssuedAt,
		&v.PaidCents,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, uuid.Nil, infra.WrapRepoErr("invoice not found", err)
		}
		return nil, uuid.Nil, infra.WrapRepoErr("failed to find invoice by ID", err)
	}
	v.BalanceCents = v.TotalCents - v.PaidCents

	payments, err := r.findPayments(ctx, id)
	if err != nil {
		return nil, uuid.Nil, err
	}
	v.Payments = payments

	return &v, guestID, nil
}

func (r *InvoiceReadStore) Find(ctx context.Context, status string, limit int32) ([]*queries.InvoiceView, error) {
	query := invoiceSelect + `
	WHERE ($1 = '' OR i.status = $1)
	ORDER BY i.issued_at DESC
	LIMIT $2`

	rows, err := r.db.Query(ctx, query, status, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	defer rows.Close()

	views := []*queries.InvoiceView{}
	for rows.Next() {
		var (
			v       queries.InvoiceView
			guestID uuid.UUID
		)
		if err := rows.Scan(
			&v.ID, &v.Number, &v.ReservationID, &v.ReservationCode, &v.GuestName, &guestID,
			&v.SubtotalCents, &v.TaxCents, &v.DiscountCents, &v.TotalCents, &v.Status, &v.IssuedAt,
			&v.PaidCents,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice row", err)
		}
		v.BalanceCents = v.TotalCents - v.PaidCents
		v.Payments = []queries.PaymentView{}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read invoice rows", err)
	}
	return views, nil
}

func (r *InvoiceReadStore) findPayments(ctx context.Context, invoiceID uuid.UUID) ([]queries.PaymentView, error) {
	const query = `
		SELECT id, invoice_id, amount_cents, method, reference, received_at
		FROM payments
		WHERE invoice_id = $1
		ORDER BY received_at`

	rows, err := r.db.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	payments := []queries.PaymentView{}
	for rows.Next() {
		var p queries.PaymentView
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.AmountCents, &p.Method, &p.Reference, &p.ReceivedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payment rows", err)
	}
	return payments, nil
}
