//go:build unit

package room_test

import (
	"testing"

	"hotelier/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		typeID := uuid.New()
		actual, err := room.NewRoom("204", 2, typeID)
		require.NoError(t, err)

		assert.Equal(t, "204", actual.Number())
		assert.Equal(t, 2, actual.Floor())
		assert.Equal(t, typeID, actual.RoomTypeID())
		assert.Equal(t, room.StatusAvailable, actual.Status())
		assert.True(t, actual.IsActive())
	})

	t.Run("number is required", func(t *testing.T) {
		_, err := room.NewRoom("", 2, uuid.New())
		require.ErrorIs(t, err, room.ErrInvalidRoomNumber)

		_, err = room.NewRoom("   ", 2, uuid.New())
		require.ErrorIs(t, err, room.ErrInvalidRoomNumber)
	})
}

func TestNewRoomType(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := room.NewRoomType("Deluxe Twin", 15000, 2, "2 twin beds", []string{"wifi", "minibar"})
		require.NoError(t, err)

		assert.Equal(t, "Deluxe Twin", actual.Name())
		assert.Equal(t, int64(15000), actual.NightlyPriceCents())
		assert.Equal(t, 2, actual.Capacity())
		assert.True(t, actual.IsActive())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := room.NewRoomType("Deluxe", -1, 2, "", nil)
		require.ErrorIs(t, err, room.ErrInvalidPrice)

		_, err = room.NewRoomType("Deluxe", 15000, 0, "", nil)
		require.ErrorIs(t, err, room.ErrInvalidCapacity)
	})
}

func TestRoomStatus(t *testing.T) {
	for _, valid := range []string{"available", "reserved", "occupied", "cleaning", "maintenance"} {
		_, err := room.NewStatus(valid)
		require.NoError(t, err, valid)
	}

	_, err := room.NewStatus("closed")
	require.ErrorIs(t, err, room.ErrInvalidStatus)
}

func TestLifecycleMapping(t *testing.T) {
	assert.Equal(t, room.StatusReserved, room.StatusOnBooking)
	assert.Equal(t, room.StatusOccupied, room.StatusOnCheckIn)
	assert.Equal(t, room.StatusCleaning, room.StatusOnCheckOut)
	assert.Equal(t, room.StatusAvailable, room.StatusOnCancel)
}

func TestIsBookable(t *testing.T) {
	r, err := room.NewRoom("101", 1, uuid.New())
	require.NoError(t, err)
	assert.True(t, r.IsBookable())
}
