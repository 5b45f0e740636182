package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotelier/internal/domain/catalog"
	"hotelier/internal/infra"
	"hotelier/internal/notification"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceNameTaken          = errs.New("service name already in use")
	ErrContractNotFound          = errs.New("service contract not found")
	ErrContractNoGuest           = errs.New("no guest profile linked to account")
	ErrIllegalContractTransition = errs.New("illegal contract transition")
)

type ServiceInput struct {
	Name       string
	Category   string
	PriceCents int64
	IsActive   *bool
}

type ContractLineInput struct {
	ServiceID uuid.UUID
	Quantity  int
}

type CreateContractInput struct {
	ServiceDate time.Time
	Lines       []ContractLineInput
}

type CatalogCommands interface {
	CreateService(ctx context.Context, input ServiceInput) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, id uuid.UUID, input ServiceInput) (*queries.ServiceView, error)
	CreateContract(ctx context.Context, actor queries.Actor, input CreateContractInput) (*queries.ContractView, error)
	TransitionContract(ctx context.Context, id uuid.UUID, to catalog.ContractStatus) error
}

type catalogCommandsImpl struct {
	uow           shared.UnitOfWork
	serviceStore  queries.ServiceReadStore
	contractStore queries.ContractReadStore
	clock         clock.Clock
}

func NewCatalogCommands(
	uow shared.UnitOfWork,
	serviceStore queries.ServiceReadStore,
	contractStore queries.ContractReadStore,
	clk clock.Clock,
) CatalogCommands {
	return &catalogCommandsImpl{
		uow:           uow,
		serviceStore:  serviceStore,
		contractStore: contractStore,
		clock:         clk,
	}
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, input ServiceInput) (*queries.ServiceView, error) {
	entity, err := catalog.NewService(input.Name, input.Category, input.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var serviceID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Services().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		serviceID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrServiceNameTaken
		}
		return nil, err
	}

	return c.serviceStore.FindByID(ctx, serviceID)
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, id uuid.UUID, input ServiceInput) (*queries.ServiceView, error) {
	if _, err := catalog.NewService(input.Name, input.Category, input.PriceCents); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	entity := catalog.ReconstructService(
		id, input.Name, input.Category, input.PriceCents, isActive,
		time.Time{}, time.Time{},
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrServiceNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrServiceNameTaken
		}
		return nil, err
	}

	return c.serviceStore.FindByID(ctx, id)
}

// CreateContract books ancillary services for the authenticated guest. Line
// prices are captured from the catalog at creation time.
func (c *catalogCommandsImpl) CreateContract(ctx context.Context, actor queries.Actor, input CreateContractInput) (*queries.ContractView, error) {
	now := c.clock.Now()
	var contractID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		guestSnap, err := resolveActorGuest(ctx, reads, actor)
		if err != nil {
			if errors.Is(err, ErrGuestNotFound) {
				return ErrContractNoGuest
			}
			return err
		}

		lines := make([]catalog.ContractLine, 0, len(input.Lines))
		var total int64
		for _, in := range input.Lines {
			snap, err := reads.ServiceByID(ctx, in.ServiceID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrServiceNotFound
				}
				return err
			}
			if !snap.IsActive {
				return ErrServiceInactive
			}

			line, err := catalog.NewContractLine(snap.ID, in.Quantity, snap.PriceCents)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			lines = append(lines, line)
			total += line.TotalCents()
		}

		contract, err := catalog.NewContract(guestSnap.ID, input.ServiceDate, lines)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Contracts().Create(ctx, tx.DB(), contract)
		if err != nil {
			return err
		}
		contractID = id

		return c.enqueueContractMail(ctx, tx, notification.TopicContractSubmitted, guestSnap, input.ServiceDate, total, now)
	})
	if err != nil {
		return nil, err
	}

	return c.contractStore.FindByID(ctx, contractID)
}

func (c *catalogCommandsImpl) TransitionContract(ctx context.Context, id uuid.UUID, to catalog.ContractStatus) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ContractByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrContractNotFound
			}
			return err
		}

		if !snap.Status.CanTransition(to) {
			return ErrIllegalContractTransition
		}

		if err := tx.Contracts().UpdateStatus(ctx, tx.DB(), id, to); err != nil {
			return err
		}

		if to == catalog.ContractConfirmed && snap.GuestEmail != "" {
			guestSnap, err := tx.Reads().GuestByID(ctx, snap.GuestID)
			if err != nil {
				return err
			}
			return c.enqueueContractMail(ctx, tx, notification.TopicContractConfirmed, guestSnap, snap.ServiceDate, snap.TotalCents, now)
		}
		return nil
	})
}

func (c *catalogCommandsImpl) enqueueContractMail(ctx context.Context, tx shared.Tx, topic string, g *shared.GuestSnapshot, serviceDate time.Time, totalCents int64, now time.Time) error {
	if g.Email == "" {
		return nil
	}

	payload, err := json.Marshal(notification.ContractPayload{
		To:          g.Email,
		GuestName:   g.FirstName + " " + g.LastName,
		ServiceDate: serviceDate.Format("2006-01-02"),
		TotalCents:  totalCents,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal contract payload")
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), notification.KindEmail, topic, payload, now)
}
