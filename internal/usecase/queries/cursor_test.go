//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"loyalty-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("round trip keeps microseconds and the key", func(t *testing.T) {
		at := time.Date(2024, time.January, 1, 10, 0, 0, 123456789, time.UTC)
		id := uuid.New()

		gotAt, key, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id.String()))

		require.NoError(t, err)
		assert.True(t, at.Truncate(time.Microsecond).Equal(gotAt))
		assert.Equal(t, id.String(), key)
	})

	t.Run("numeric keys survive", func(t *testing.T) {
		_, key, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(monday, "42"))

		require.NoError(t, err)
		assert.Equal(t, "42", key)
	})

	invalid := map[string]string{
		"empty":           "",
		"not base64":      "***",
		"unknown version": base64.URLEncoding.EncodeToString([]byte("v0:1-abc")),
		"missing key":     base64.URLEncoding.EncodeToString([]byte("v1:1-")),
		"bad timestamp":   base64.URLEncoding.EncodeToString([]byte("v1:soon-abc")),
	}
	for name, cursor := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
