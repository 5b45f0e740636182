//go:build unit

package message_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/message"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := message.NewMessage(uuid.New(), "  Late checkout  ", "Can I leave at 14:00?")
		require.NoError(t, err)

		assert.Equal(t, "Late checkout", actual.Subject())
		assert.Equal(t, message.StatusPending, actual.Status())
		assert.Nil(t, actual.Reply())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := message.NewMessage(uuid.New(), "  ", "body")
		require.ErrorIs(t, err, message.ErrMissingSubject)

		_, err = message.NewMessage(uuid.New(), "subject", "")
		require.ErrorIs(t, err, message.ErrMissingBody)
	})
}

func TestAnswer(t *testing.T) {
	staffID := uuid.New()
	repliedAt := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)

	newMessage := func(t *testing.T) *message.Message {
		t.Helper()
		m, err := message.NewMessage(uuid.New(), "Late checkout", "Can I leave at 14:00?")
		require.NoError(t, err)
		return m
	}

	t.Run("records reply and answers the message", func(t *testing.T) {
		m := newMessage(t)

		require.NoError(t, m.Answer(staffID, "Sure, 14:00 is fine.", repliedAt))

		assert.Equal(t, message.StatusAnswered, m.Status())
		require.NotNil(t, m.Reply())
		assert.Equal(t, "Sure, 14:00 is fine.", *m.Reply())
		assert.Equal(t, staffID, *m.RepliedBy())
		assert.Equal(t, repliedAt, *m.RepliedAt())
	})

	t.Run("second reply overwrites the first", func(t *testing.T) {
		m := newMessage(t)
		otherStaff := uuid.New()
		later := repliedAt.Add(time.Hour)

		require.NoError(t, m.Answer(staffID, "Checking with housekeeping.", repliedAt))
		require.NoError(t, m.Answer(otherStaff, "Confirmed, 14:00 works.", later))

		assert.Equal(t, "Confirmed, 14:00 works.", *m.Reply())
		assert.Equal(t, otherStaff, *m.RepliedBy())
		assert.Equal(t, later, *m.RepliedAt())
		assert.Equal(t, message.StatusAnswered, m.Status())
	})

	t.Run("rejects a blank reply", func(t *testing.T) {
		m := newMessage(t)

		require.ErrorIs(t, m.Answer(staffID, "   ", repliedAt), message.ErrEmptyReply)
		assert.Equal(t, message.StatusPending, m.Status())
	})

	t.Run("rejects a reply on a closed message", func(t *testing.T) {
		m := newMessage(t)
		require.NoError(t, m.Close())

		require.ErrorIs(t, m.Answer(staffID, "Too late.", repliedAt), message.ErrClosed)
	})
}

func TestClose(t *testing.T) {
	m, err := message.NewMessage(uuid.New(), "Late checkout", "Can I leave at 14:00?")
	require.NoError(t, err)

	require.NoError(t, m.Close())
	assert.Equal(t, message.StatusClosed, m.Status())

	require.ErrorIs(t, m.Close(), message.ErrClosed)
}
