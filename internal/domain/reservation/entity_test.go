//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/reservation"
	"hotelier/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewReservationBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "RES26080001", actual.Code())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.Equal(t, 3, actual.Stay().Nights())
		assert.Equal(t, int64(36000), actual.Price().Cents())
	})

	t.Run("stay period validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "one night",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithStay(
						time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
						time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC),
					)
				},
			},
			{
				name: "checkout equals checkin",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithStay(
						time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
						time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
					)
				},
				errIs: reservation.ErrInvalidStayPeriod,
			},
			{
				name: "checkout before checkin",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithStay(
						time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
						time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
					)
				},
				errIs: reservation.ErrInvalidStayPeriod,
			},
			{
				name: "times of day are dropped before comparing",
				mutate: func(b *builder.ReservationBuilder) {
					b.WithStay(
						time.Date(2026, 8, 10, 23, 0, 0, 0, time.UTC),
						time.Date(2026, 8, 10, 1, 0, 0, 0, time.UTC),
					)
				},
				errIs: reservation.ErrInvalidStayPeriod,
			},
		})
	})

	t.Run("headcount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero headcount",
				mutate: func(b *builder.ReservationBuilder) { b.WithHeadcount(0) },
				errIs:  reservation.ErrInvalidHeadcount,
			},
			{
				name:   "negative headcount",
				mutate: func(b *builder.ReservationBuilder) { b.WithHeadcount(-1) },
				errIs:  reservation.ErrInvalidHeadcount,
			},
			{
				name:   "headcount at capacity",
				mutate: func(b *builder.ReservationBuilder) { b.WithHeadcount(2) },
			},
			{
				name:   "headcount exceeds capacity",
				mutate: func(b *builder.ReservationBuilder) { b.WithHeadcount(3) },
				errIs:  reservation.ErrHeadcountExceedsRoom,
			},
		})
	})

	t.Run("room must be bookable", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unbookable room rejected",
				mutate: func(b *builder.ReservationBuilder) { b.Bookable = false },
				errIs:  reservation.ErrRoomNotBookable,
			},
		})
	})

	t.Run("price is nightly rate times nights", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		b.NightlyPriceCents = 9900
		b.WithStay(
			time.Date(2026, 8, 1, 15, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 5, 11, 0, 0, 0, time.UTC),
		)

		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 4, actual.Stay().Nights())
		assert.Equal(t, int64(39600), actual.Price().Cents())
	})
}

func TestServiceLines(t *testing.T) {
	t.Run("line totals sum", func(t *testing.T) {
		svcA := uuid.New()
		svcB := uuid.New()

		actual, err := builder.NewReservationBuilder().
			WithLine(svcA, 2, 1500).
			WithLine(svcB, 1, 5000).
			BuildDomain()
		require.NoError(t, err)

		assert.Len(t, actual.Lines(), 2)
		assert.Equal(t, int64(8000), actual.ServicesTotalCents())
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		_, err := reservation.NewServiceLine(uuid.New(), 0, 1000)
		require.ErrorIs(t, err, reservation.ErrInvalidQuantity)
	})

	t.Run("unit price cannot be negative", func(t *testing.T) {
		_, err := reservation.NewServiceLine(uuid.New(), 1, -1)
		require.ErrorIs(t, err, reservation.ErrNegativePrice)
	})
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending:   {reservation.StatusConfirmed, reservation.StatusCancelled},
		reservation.StatusConfirmed: {reservation.StatusCheckedIn, reservation.StatusCancelled},
		reservation.StatusCheckedIn: {reservation.StatusCheckedOut},
	}
	all := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusCheckedIn,
		reservation.StatusCheckedOut,
		reservation.StatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}

	t.Run("entity rejects illegal transition", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, actual.Transition(reservation.StatusCheckedOut), reservation.ErrInvalidTransition)
		require.NoError(t, actual.Transition(reservation.StatusCheckedIn))
		require.NoError(t, actual.Transition(reservation.StatusCheckedOut))
		assert.Equal(t, reservation.StatusCheckedOut, actual.Status())
	})
}

func TestBlocksRoom(t *testing.T) {
	assert.True(t, reservation.StatusConfirmed.BlocksRoom())
	assert.True(t, reservation.StatusCheckedIn.BlocksRoom())
	assert.False(t, reservation.StatusPending.BlocksRoom())
	assert.False(t, reservation.StatusCheckedOut.BlocksRoom())
	assert.False(t, reservation.StatusCancelled.BlocksRoom())
}

func TestStayPeriodOverlaps(t *testing.T) {
	mustStay := func(in, out time.Time) reservation.StayPeriod {
		stay, err := reservation.NewStayPeriod(in, out)
		require.NoError(t, err)
		return stay
	}

	d := func(day int) time.Time {
		return time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC)
	}

	base := mustStay(d(10), d(13))

	assert.True(t, base.Overlaps(mustStay(d(12), d(14))))
	assert.True(t, base.Overlaps(mustStay(d(9), d(11))))
	assert.True(t, base.Overlaps(mustStay(d(11), d(12))))

	// Half-open interval: back-to-back stays share a day without overlapping.
	assert.False(t, base.Overlaps(mustStay(d(13), d(15))))
	assert.False(t, base.Overlaps(mustStay(d(8), d(10))))
}

func TestFormatCode(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "RES26080042", reservation.FormatCode(now, 42))
	assert.Equal(t, "RES26081234", reservation.FormatCode(now, 1234))
}
