//go:build unit

package notification_test

import (
	"encoding/json"
	"testing"

	"hotelier/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("reservation confirmation", func(t *testing.T) {
		payload, err := json.Marshal(notification.ReservationConfirmedPayload{
			To:              "ana@example.com",
			GuestName:       "Ana Silva",
			ReservationCode: "RES26090001",
			RoomNumber:      "101",
			CheckIn:         "2026-09-10",
			CheckOut:        "2026-09-13",
			TotalCents:      40000,
		})
		require.NoError(t, err)

		to, subject, body, err := notification.Render(notification.TopicReservationConfirmed, payload)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", to)
		assert.Equal(t, "Reservation RES26090001 confirmed", subject)
		assert.Contains(t, body, "Room 101")
		assert.Contains(t, body, "400.00")
	})

	t.Run("message reply quotes the original", func(t *testing.T) {
		payload, err := json.Marshal(notification.MessageRepliedPayload{
			To:       "ana@example.com",
			Subject:  "Late checkout",
			Original: "Could we check out at 2pm?",
			Reply:    "Of course, 2pm is fine.",
		})
		require.NoError(t, err)

		to, subject, body, err := notification.Render(notification.TopicMessageReplied, payload)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", to)
		assert.Equal(t, "Re: Late checkout", subject)
		assert.Contains(t, body, "Of course, 2pm is fine.")
		assert.Contains(t, body, "> Could we check out at 2pm?")
	})

	t.Run("unknown topic is a permanent failure", func(t *testing.T) {
		_, _, _, err := notification.Render("pigeon_post", []byte(`{}`))
		require.Error(t, err)
	})
}
