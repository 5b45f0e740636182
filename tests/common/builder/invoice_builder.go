//go:build unit || e2e

package builder

import (
	"time"

	"hotelier/internal/domain/billing"

	"github.com/google/uuid"
)

type InvoiceBuilder struct {
	Number         string
	ReservationID  uuid.UUID
	StayPriceCents int64
	ServicesCents  int64
	TaxRatePercent float64
	DiscountCents  int64
	IssuedAt       time.Time
}

func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{
		Number:         "INV26080001",
		ReservationID:  uuid.New(),
		StayPriceCents: 36000,
		ServicesCents:  4000,
		TaxRatePercent: 10,
		DiscountCents:  0,
		IssuedAt:       time.Date(2026, 8, 13, 12, 0, 0, 0, time.UTC),
	}
}

func (b *InvoiceBuilder) With(mutate func(*InvoiceBuilder)) *InvoiceBuilder {
	mutate(b)
	return b
}

func (b *InvoiceBuilder) BuildDomain() (*billing.Invoice, error) {
	return billing.NewInvoice(
		b.Number,
		b.ReservationID,
		b.StayPriceCents,
		b.ServicesCents,
		b.TaxRatePercent,
		b.DiscountCents,
		b.IssuedAt,
	)
}
