package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash, "Hash should not equal the plaintext")

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret-pass"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	h1, err := HashPassword("same-password")
	assert.NoError(t, err)
	h2, err := HashPassword("same-password")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2, "bcrypt salts should make hashes differ")
}
