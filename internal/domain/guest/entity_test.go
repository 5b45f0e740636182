//go:build unit

package guest_test

import (
	"testing"

	"hotelier/internal/domain/guest"
	"hotelier/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Ana Silva", actual.FullName())
		assert.Equal(t, guest.DocumentPassport, actual.Document().Kind())
		assert.Nil(t, actual.UserID())
	})

	t.Run("requires both names", func(t *testing.T) {
		_, err := builder.NewGuestBuilder().
			With(func(b *builder.GuestBuilder) { b.FirstName = "" }).
			BuildDomain()
		require.ErrorIs(t, err, guest.ErrMissingName)

		_, err = builder.NewGuestBuilder().
			With(func(b *builder.GuestBuilder) { b.LastName = "" }).
			BuildDomain()
		require.ErrorIs(t, err, guest.ErrMissingName)
	})
}

func TestNewDocument(t *testing.T) {
	t.Run("accepts the known kinds", func(t *testing.T) {
		for _, kind := range []string{"passport", "national_id", "driver_license"} {
			doc, err := guest.NewDocument(kind, "AB123456")
			require.NoError(t, err, kind)
			assert.Equal(t, guest.DocumentKind(kind), doc.Kind())
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		_, err := guest.NewDocument("library_card", "AB123456")
		require.ErrorIs(t, err, guest.ErrInvalidDocumentKind)
	})

	t.Run("rejects a blank number", func(t *testing.T) {
		_, err := guest.NewDocument("passport", "  ")
		require.ErrorIs(t, err, guest.ErrInvalidDocument)
	})
}
