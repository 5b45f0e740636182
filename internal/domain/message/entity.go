package message

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus  = errors.New("invalid message status")
	ErrMissingSubject = errors.New("message subject is required")
	ErrMissingBody    = errors.New("message body is required")
	ErrEmptyReply     = errors.New("reply body is required")
	ErrClosed         = errors.New("message is closed")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAnswered Status = "answered"
	StatusClosed   Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAnswered, StatusClosed:
		return true
	default:
		return false
	}
}

// Message is a guest-to-staff inquiry with at most one staff reply.
// Replying again overwrites the previous reply.
type Message struct {
	id        uuid.UUID
	guestID   uuid.UUID
	subject   string
	body      string
	reply     *string
	repliedBy *uuid.UUID
	repliedAt *time.Time
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewMessage(guestID uuid.UUID, subject, body string) (*Message, error) {
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)
	if subject == "" {
		return nil, ErrMissingSubject
	}
	if body == "" {
		return nil, ErrMissingBody
	}
	return &Message{
		id:      uuid.New(),
		guestID: guestID,
		subject: subject,
		body:    body,
		status:  StatusPending,
	}, nil
}

func ReconstructMessage(
	id, guestID uuid.UUID,
	subject, body string,
	reply *string,
	repliedBy *uuid.UUID,
	repliedAt *time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Message {
	return &Message{
		id:        id,
		guestID:   guestID,
		subject:   subject,
		body:      body,
		reply:     reply,
		repliedBy: repliedBy,
		repliedAt: repliedAt,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (m *Message) ID() uuid.UUID         { return m.id }
func (m *Message) GuestID() uuid.UUID    { return m.guestID }
func (m *Message) Subject() string       { return m.subject }
func (m *Message) Body() string          { return m.body }
func (m *Message) Reply() *string        { return m.reply }
func (m *Message) RepliedBy() *uuid.UUID { return m.repliedBy }
func (m *Message) RepliedAt() *time.Time { return m.repliedAt }
func (m *Message) Status() Status        { return m.status }
func (m *Message) CreatedAt() time.Time  { return m.createdAt }
func (m *Message) UpdatedAt() time.Time  { return m.updatedAt }

func (m *Message) Answer(staffID uuid.UUID, reply string, at time.Time) error {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return ErrEmptyReply
	}
	if m.status == StatusClosed {
		return ErrClosed
	}
	m.reply = &reply
	m.repliedBy = &staffID
	m.repliedAt = &at
	m.status = StatusAnswered
	return nil
}

func (m *Message) Close() error {
	if m.status == StatusClosed {
		return ErrClosed
	}
	m.status = StatusClosed
	return nil
}
