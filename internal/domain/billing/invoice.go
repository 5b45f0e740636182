package billing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
	ErrInvoiceNotPayable    = errors.New("invoice is not payable")
	ErrInvalidTaxRate       = errors.New("tax rate must be between 0 and 100")
	ErrInvalidDiscount      = errors.New("discount cannot be negative or exceed subtotal plus tax")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrOverpayment          = errors.New("payment would exceed invoice total")
	ErrAlreadySettled       = errors.New("invoice is already paid")
	ErrVoided               = errors.New("invoice is voided")
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusVoided  InvoiceStatus = "voided"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusVoided:
		return true
	default:
		return false
	}
}

// FormatInvoiceNumber renders INV + yymm + 4-digit monthly sequence.
func FormatInvoiceNumber(now time.Time, seq int) string {
	return fmt.Sprintf("INV%s%04d", now.Format("0601"), seq)
}

type Invoice struct {
	id            uuid.UUID
	number        string
	reservationID uuid.UUID
	subtotalCents int64
	taxCents      int64
	discountCents int64
	totalCents    int64
	status        InvoiceStatus
	issuedAt      time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewInvoice computes the billing breakdown from a reservation's stored price
// plus its service line totals. Tax is rounded half-up at the cent.
func NewInvoice(
	number string,
	reservationID uuid.UUID,
	stayPriceCents, servicesCents int64,
	taxRatePercent float64,
	discountCents int64,
	issuedAt time.Time,
) (*Invoice, error) {
	if taxRatePercent < 0 || taxRatePercent > 100 {
		return nil, ErrInvalidTaxRate
	}
	subtotal := stayPriceCents + servicesCents
	// convert the rate to basis points before the integer math; truncating
	// here would lower rates like 4.35 by a basis point
	basisPoints := int64(math.Round(taxRatePercent * 100))
	tax := (subtotal*basisPoints + 5000) / 10000
	if discountCents < 0 || discountCents > subtotal+tax {
		return nil, ErrInvalidDiscount
	}
	total := subtotal + tax - discountCents

	return &Invoice{
		id:            uuid.New(),
		number:        number,
		reservationID: reservationID,
		subtotalCents: subtotal,
		taxCents:      tax,
		discountCents: discountCents,
		totalCents:    total,
		status:        InvoiceStatusPending,
		issuedAt:      issuedAt,
	}, nil
}

func ReconstructInvoice(
	id uuid.UUID,
	number string,
	reservationID uuid.UUID,
	subtotalCents, taxCents, discountCents, totalCents int64,
	status InvoiceStatus,
	issuedAt, createdAt, updatedAt time.Time,
) *Invoice {
	return &Invoice{
		id:            id,
		number:        number,
		reservationID: reservationID,
		subtotalCents: subtotalCents,
		taxCents:      taxCents,
		discountCents: discountCents,
		totalCents:    totalCents,
		status:        status,
		issuedAt:      issuedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (i *Invoice) ID() uuid.UUID            { return i.id }
func (i *Invoice) Number() string           { return i.number }
func (i *Invoice) ReservationID() uuid.UUID { return i.reservationID }
func (i *Invoice) SubtotalCents() int64     { return i.subtotalCents }
func (i *Invoice) TaxCents() int64          { return i.taxCents }
func (i *Invoice) DiscountCents() int64     { return i.discountCents }
func (i *Invoice) TotalCents() int64        { return i.totalCents }
func (i *Invoice) Status() InvoiceStatus    { return i.status }
func (i *Invoice) IssuedAt() time.Time      { return i.issuedAt }
func (i *Invoice) CreatedAt() time.Time     { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time     { return i.updatedAt }

// ValidatePayment checks whether a payment of amountCents can be accepted
// given the sum already collected.
func (i *Invoice) ValidatePayment(amountCents, alreadyPaidCents int64) error {
	switch i.status {
	case InvoiceStatusPaid:
		return ErrAlreadySettled
	case InvoiceStatusVoided:
		return ErrVoided
	}
	if amountCents <= 0 {
		return ErrInvalidAmount
	}
	if alreadyPaidCents+amountCents > i.totalCents {
		return ErrOverpayment
	}
	return nil
}

// SettledBy reports whether cumulative payments cover the total.
func (i *Invoice) SettledBy(cumulativeCents int64) bool {
	return cumulativeCents >= i.totalCents
}

func (i *Invoice) Void() error {
	if i.status != InvoiceStatusPending {
		return ErrInvoiceNotPayable
	}
	i.status = InvoiceStatusVoided
	return nil
}
