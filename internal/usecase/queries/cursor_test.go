//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2026, 8, 10, 14, 30, 45, 123456000, time.UTC)

	cursor := queries.EncodeAfterCursor(createdAt, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(cursor)
	require.NoError(t, err)

	assert.True(t, gotTime.Equal(createdAt))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursorRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "!!not-base64!!"},
		{"wrong version", base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString()))},
		{"missing separator", base64.URLEncoding.EncodeToString([]byte("v1:123456"))},
		{"bad timestamp", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"bad uuid", base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			require.Error(t, err)
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, int32(50), queries.ClampLimit(0))
	assert.Equal(t, int32(50), queries.ClampLimit(-5))
	assert.Equal(t, int32(25), queries.ClampLimit(25))
	assert.Equal(t, int32(200), queries.ClampLimit(200))
	assert.Equal(t, int32(200), queries.ClampLimit(1000))
}
