package repository

import (
	"context"

	"hotelier/internal/domain/billing"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceRepository struct{}

func NewInvoiceRepository() shared.InvoiceRepository {
	return &InvoiceRepository{}
}

func (r *InvoiceRepository) Create(ctx context.Context, tx db.DBTX, inv *billing.Invoice) (uuid.UUID, error) {
	const query = `
		INSERT INTO invoices (number, reservation_id, subtotal_cents, tax_cents, discount_cents, total_cents, status, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		inv.Number(),
		inv.ReservationID(),
		inv.SubtotalCents(),
		inv.TaxCents(),
		inv.DiscountCents(),
		inv.TotalCents(),
		inv.Status().String(),
		inv.IssuedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create invoice", err)
	}
	return id, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status billing.InvoiceStatus) error {
	const query = `
		UPDATE invoices
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("invoice not found")
	}
	return nil
}

type PaymentRepository struct{}

func NewPaymentRepository() shared.PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *billing.Payment) (uuid.UUID, error) {
	const query = `
		INSERT INTO payments (invoice_id, amount_cents, method, reference, received_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		p.InvoiceID(),
		p.AmountCents(),
		p.Method().String(),
		p.Reference(),
		p.PaidAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, nil
}
