//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"fleet-reservations/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 9, 15, 42, 123456000, time.UTC)
	id := uuid.New()

	encoded := queries.EncodeAfterCursor(createdAt, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.Equal(t, id, gotID)
	assert.True(t, gotTime.Equal(createdAt), "expected %s, got %s", createdAt, gotTime)
}

func TestAfterCursorTruncatesToMicroseconds(t *testing.T) {
	createdAt := time.Date(2026, 3, 10, 9, 15, 42, 123456789, time.UTC)
	id := uuid.New()

	gotTime, _, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(createdAt, id))
	require.NoError(t, err)
	assert.True(t, gotTime.Equal(createdAt.Truncate(time.Microsecond)))
}

func TestDecodeAfterCursorErrors(t *testing.T) {
	raw := func(payload string) string {
		return base64.URLEncoding.EncodeToString([]byte(payload))
	}

	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty cursor", cursor: ""},
		{name: "not base64", cursor: "%%%not-base64%%%"},
		{name: "wrong version", cursor: raw("v2:12345-" + uuid.New().String())},
		{name: "missing separator", cursor: raw("v1:12345")},
		{name: "bad timestamp", cursor: raw("v1:notanumber-" + uuid.New().String())},
		{name: "bad uuid", cursor: raw("v1:12345-not-a-uuid")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultLimit, queries.ValidateLimit(-10))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
