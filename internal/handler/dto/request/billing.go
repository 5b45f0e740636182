package request

import (
	"hotelier/internal/domain/billing"
	"hotelier/internal/usecase/commands"

	"github.com/google/uuid"
)

type IssueInvoiceRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	DiscountCents int64     `json:"discount_cents" binding:"min=0"`
}

type CardPayload struct {
	Number     string `json:"number" binding:"required"`
	HolderName string `json:"holder_name" binding:"required"`
	ExpiryMM   int    `json:"expiry_mm" binding:"required"`
	ExpiryYY   int    `json:"expiry_yy" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

type RecordPaymentRequest struct {
	AmountCents int64        `json:"amount_cents" binding:"required,min=1"`
	Method      string       `json:"method" binding:"required"`
	Reference   string       `json:"reference,omitempty"`
	Card        *CardPayload `json:"card,omitempty"`
}

func (r RecordPaymentRequest) ToInput(invoiceID uuid.UUID) commands.RecordPaymentInput {
	input := commands.RecordPaymentInput{
		InvoiceID:   invoiceID,
		AmountCents: r.AmountCents,
		Method:      r.Method,
		Reference:   r.Reference,
	}
	if r.Card != nil {
		input.Card = &billing.CardDetails{
			Number:     r.Card.Number,
			HolderName: r.Card.HolderName,
			ExpiryMM:   r.Card.ExpiryMM,
			ExpiryYY:   r.Card.ExpiryYY,
			CVV:        r.Card.CVV,
		}
	}
	return input
}
