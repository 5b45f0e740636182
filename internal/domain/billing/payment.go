package billing

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod      = errors.New("invalid payment method")
	ErrInvalidCardDetails = errors.New("invalid card details")
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer:
		return true
	default:
		return false
	}
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}

var cardNumberRegex = regexp.MustCompile(`^\d{13,19}$`)

// CardDetails is shape-validated only. Numbers are never charged; there is no
// payment gateway behind this.
type CardDetails struct {
	Number     string
	HolderName string
	ExpiryMM   int
	ExpiryYY   int
	CVV        string
}

func (c CardDetails) Validate() error {
	if !cardNumberRegex.MatchString(strings.ReplaceAll(c.Number, " ", "")) {
		return ErrInvalidCardDetails
	}
	if strings.TrimSpace(c.HolderName) == "" {
		return ErrInvalidCardDetails
	}
	if c.ExpiryMM < 1 || c.ExpiryMM > 12 {
		return ErrInvalidCardDetails
	}
	if c.ExpiryYY < 0 || c.ExpiryYY > 99 {
		return ErrInvalidCardDetails
	}
	if len(c.CVV) < 3 || len(c.CVV) > 4 {
		return ErrInvalidCardDetails
	}
	return nil
}

// Payment rows are append-only; corrections happen by voiding the invoice.
type Payment struct {
	id          uuid.UUID
	invoiceID   uuid.UUID
	amountCents int64
	method      PaymentMethod
	reference   string
	paidAt      time.Time
}

func NewPayment(invoiceID uuid.UUID, amountCents int64, method PaymentMethod, reference string, paidAt time.Time) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	return &Payment{
		id:          uuid.New(),
		invoiceID:   invoiceID,
		amountCents: amountCents,
		method:      method,
		reference:   reference,
		paidAt:      paidAt,
	}, nil
}

func ReconstructPayment(id, invoiceID uuid.UUID, amountCents int64, method PaymentMethod, reference string, paidAt time.Time) *Payment {
	return &Payment{
		id:          id,
		invoiceID:   invoiceID,
		amountCents: amountCents,
		method:      method,
		reference:   reference,
		paidAt:      paidAt,
	}
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) InvoiceID() uuid.UUID  { return p.invoiceID }
func (p *Payment) AmountCents() int64    { return p.amountCents }
func (p *Payment) Method() PaymentMethod { return p.method }
func (p *Payment) Reference() string     { return p.reference }
func (p *Payment) PaidAt() time.Time     { return p.paidAt }
