package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("digest differs from input", func(t *testing.T) {
		h, err := HashPassword("mySecurePassword123")
		require.NoError(t, err)
		assert.False(t, h.IsZero())
		assert.NotEqual(t, "mySecurePassword123", h.String())
	})

	t.Run("salted", func(t *testing.T) {
		h1, _ := HashPassword("samePassword")
		h2, _ := HashPassword("samePassword")
		assert.NotEqual(t, h1.String(), h2.String())
	})

	t.Run("empty rejected", func(t *testing.T) {
		h, err := HashPassword("")
		assert.ErrorIs(t, err, ErrEmptyPassword)
		assert.True(t, h.IsZero())
	})
}

func TestHashedPassword_Matches(t *testing.T) {
	h, err := HashPassword("correctPassword")
	require.NoError(t, err)

	assert.True(t, h.Matches("correctPassword"))
	assert.False(t, h.Matches("wrongPassword"))
	assert.False(t, h.Matches(""))
}

func TestStoredPassword_RoundTrip(t *testing.T) {
	h, err := HashPassword("pw")
	require.NoError(t, err)

	stored := StoredPassword(h.String())
	assert.True(t, stored.Matches("pw"))
	assert.False(t, HashedPassword{}.Matches("pw"))
}
