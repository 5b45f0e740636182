package commands

import (
	"context"
	"encoding/json"
	"errors"

	"hotelier/internal/domain/message"
	"hotelier/internal/infra"
	"hotelier/internal/notification"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMessageNotFound = errs.New("message not found")
	ErrMessageNoGuest  = errs.New("no guest profile linked to account")
	ErrMessageClosed   = errs.New("message is closed")
)

type MessageCommands interface {
	Create(ctx context.Context, actor queries.Actor, subject, body string) (*queries.MessageView, error)
	Reply(ctx context.Context, staffID uuid.UUID, id uuid.UUID, reply string) (*queries.MessageView, error)
	Close(ctx context.Context, id uuid.UUID) error
}

type messageCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.MessageReadStore
	clock     clock.Clock
}

func NewMessageCommands(uow shared.UnitOfWork, readStore queries.MessageReadStore, clk clock.Clock) MessageCommands {
	return &messageCommandsImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clk,
	}
}

func (c *messageCommandsImpl) Create(ctx context.Context, actor queries.Actor, subject, body string) (*queries.MessageView, error) {
	var messageID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		guestSnap, err := resolveActorGuest(ctx, tx.Reads(), actor)
		if err != nil {
			if errors.Is(err, ErrGuestNotFound) {
				return ErrMessageNoGuest
			}
			return err
		}

		entity, err := message.NewMessage(guestSnap.ID, subject, body)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Messages().Create(ctx, tx.DB(), entity)
		if err != nil {
			return err
		}
		messageID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readStore.FindByID(ctx, messageID)
}

// Reply overwrites any previous staff reply and notifies the guest.
func (c *messageCommandsImpl) Reply(ctx context.Context, staffID uuid.UUID, id uuid.UUID, reply string) (*queries.MessageView, error) {
	now := c.clock.Now()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		msg, err := reads.MessageByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMessageNotFound
			}
			return err
		}

		if err := msg.Answer(staffID, reply, now); err != nil {
			if errors.Is(err, message.ErrClosed) {
				return ErrMessageClosed
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Messages().SaveReply(ctx, tx.DB(), msg); err != nil {
			return err
		}

		guestSnap, err := reads.GuestByID(ctx, msg.GuestID())
		if err != nil {
			return err
		}
		if guestSnap.Email == "" {
			return nil
		}

		payload, err := json.Marshal(notification.MessageRepliedPayload{
			To:       guestSnap.Email,
			Subject:  msg.Subject(),
			Original: msg.Body(),
			Reply:    reply,
		})
		if err != nil {
			return errs.Wrap(err, "failed to marshal reply payload")
		}

		return tx.Notifications().CreateJob(ctx, tx.DB(), notification.KindEmail, notification.TopicMessageReplied, payload, now)
	})
	if err != nil {
		return nil, err
	}

	return c.readStore.FindByID(ctx, id)
}

func (c *messageCommandsImpl) Close(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		msg, err := tx.Reads().MessageByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMessageNotFound
			}
			return err
		}

		if err := msg.Close(); err != nil {
			return ErrMessageClosed
		}

		return tx.Messages().UpdateStatus(ctx, tx.DB(), id, msg.Status())
	})
}
