package commands

import (
	"context"
	"errors"

	"hotelier/internal/domain/billing"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errs.New("invoice not found")
	ErrReservationNotBilled = errs.New("reservation has not checked out")
	ErrDuplicateInvoice     = errs.New("invoice already issued for reservation")
	ErrInvoiceNotPayable    = errs.New("invoice does not accept payments")
	ErrOverpayment          = errs.New("payment exceeds invoice balance")
	ErrInvalidPayment       = errs.New("invalid payment")
	ErrInvoiceNotVoidable   = errs.New("only pending invoices can be voided")
)

type RecordPaymentInput struct {
	InvoiceID   uuid.UUID
	AmountCents int64
	Method      string
	Reference   string
	Card        *billing.CardDetails
}

type BillingCommands interface {
	IssueInvoice(ctx context.Context, reservationID uuid.UUID, discountCents int64) (*queries.InvoiceView, error)
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*queries.InvoiceView, error)
	VoidInvoice(ctx context.Context, invoiceID uuid.UUID) error
}

type billingCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.InvoiceReadStore
	clock     clock.Clock
}

func NewBillingCommands(uow shared.UnitOfWork, readStore queries.InvoiceReadStore, clk clock.Clock) BillingCommands {
	return &billingCommandsImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clk,
	}
}

// IssueInvoice bills a checked-out reservation exactly once. The unique
// constraint on reservation_id backs the duplicate check under concurrency.
func (b *billingCommandsImpl) IssueInvoice(ctx context.Context, reservationID uuid.UUID, discountCents int64) (*queries.InvoiceView, error) {
	now := b.clock.Now()
	var invoiceID uuid.UUID

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		snap, err := reads.ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if snap.Status != reservation.StatusCheckedOut {
			return ErrReservationNotBilled
		}

		exists, err := reads.InvoiceExistsForReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateInvoice
		}

		servicesCents, err := reads.ServicesTotal(ctx, reservationID)
		if err != nil {
			return err
		}

		taxRate, err := reads.TaxRatePercent(ctx)
		if err != nil {
			return err
		}

		seq, err := reads.NextInvoiceSeq(ctx, now.Format("0601"))
		if err != nil {
			return err
		}
		number := billing.FormatInvoiceNumber(now, seq)

		invoice, err := billing.NewInvoice(number, reservationID, snap.PriceCents, servicesCents, taxRate, discountCents, now)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Invoices().Create(ctx, tx.DB(), invoice)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateInvoice
			}
			return err
		}
		invoiceID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, _, err := b.readStore.FindByID(ctx, invoiceID)
	return view, err
}

// RecordPayment appends a payment with the invoice row locked, so concurrent
// payments serialize and the overpayment check holds.
func (b *billingCommandsImpl) RecordPayment(ctx context.Context, input RecordPaymentInput) (*queries.InvoiceView, error) {
	method, err := billing.NewPaymentMethod(input.Method)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPayment)
	}
	if method == billing.MethodCard {
		if input.Card == nil {
			return nil, ErrInvalidPayment
		}
		if err := input.Card.Validate(); err != nil {
			return nil, errs.Mark(err, ErrInvalidPayment)
		}
	}

	now := b.clock.Now()

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		invoice, err := reads.InvoiceForPayment(ctx, input.InvoiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}

		alreadyPaid, err := reads.PaymentsTotal(ctx, input.InvoiceID)
		if err != nil {
			return err
		}

		if err := invoice.ValidatePayment(input.AmountCents, alreadyPaid); err != nil {
			return mapPaymentErr(err)
		}

		payment, err := billing.NewPayment(input.InvoiceID, input.AmountCents, method, input.Reference, now)
		if err != nil {
			return errs.Mark(err, ErrInvalidPayment)
		}

		if _, err := tx.Payments().Create(ctx, tx.DB(), payment); err != nil {
			return err
		}

		if invoice.SettledBy(alreadyPaid + input.AmountCents) {
			return tx.Invoices().UpdateStatus(ctx, tx.DB(), input.InvoiceID, billing.InvoiceStatusPaid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, _, err := b.readStore.FindByID(ctx, input.InvoiceID)
	return view, err
}

func (b *billingCommandsImpl) VoidInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		invoice, err := tx.Reads().InvoiceForPayment(ctx, invoiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}

		if err := invoice.Void(); err != nil {
			return ErrInvoiceNotVoidable
		}

		return tx.Invoices().UpdateStatus(ctx, tx.DB(), invoiceID, billing.InvoiceStatusVoided)
	})
}

func mapPaymentErr(err error) error {
	switch {
	case errors.Is(err, billing.ErrOverpayment):
		return ErrOverpayment
	case errors.Is(err, billing.ErrAlreadySettled), errors.Is(err, billing.ErrVoided):
		return ErrInvoiceNotPayable
	default:
		return errs.Mark(err, ErrInvalidPayment)
	}
}
