package inkpress_test

import (
	"testing"

	"github.com/inkpress/inkpress"
	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("hashes a password", func(t *testing.T) {
		hash, err := inkpress.HashPassword("some-secret-password")

		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "some-secret-password", hash)
	})

	t.Run("rejects empty passwords", func(t *testing.T) {
		hash, err := inkpress.HashPassword("")

		assert.Empty(t, hash)
		assert.ErrorIs(t, err, inkpress.ErrNoEmptyString)
	})

	t.Run("produces distinct hashes for the same input", func(t *testing.T) {
		first, err := inkpress.HashPassword("some-secret-password")
		assert.NoError(t, err)

		second, err := inkpress.HashPassword("some-secret-password")
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestComparePasswordAndHash(t *testing.T) {
	hash, err := inkpress.HashPassword("some-secret-password")
	assert.NoError(t, err)

	t.Run("accepts the matching password", func(t *testing.T) {
		assert.NoError(t, inkpress.ComparePasswordAndHash("some-secret-password", hash))
	})

	t.Run("rejects a different password", func(t *testing.T) {
		err := inkpress.ComparePasswordAndHash("other-password", hash)
		assert.ErrorIs(t, err, inkpress.ErrMismatchedHashAndPassword)
	})

	t.Run("rejects garbage hashes", func(t *testing.T) {
		err := inkpress.ComparePasswordAndHash("some-secret-password", "not-a-hash")
		assert.Error(t, err)
	})
}
