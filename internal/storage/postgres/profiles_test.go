package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestHashPassphrase(t *testing.T) {
	hash, err := HashPassphrase("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)
}

func TestCheckPassphrase_Correct(t *testing.T) {
	hash, err := HashPassphrase("winter-journey")
	assert.NoError(t, err)
	assert.True(t, CheckPassphrase("winter-journey", hash))
}

func TestCheckPassphrase_Wrong(t *testing.T) {
	hash, err := HashPassphrase("winter-journey")
	assert.NoError(t, err)
	assert.False(t, CheckPassphrase("summer-journey", hash))
}

// Property: HashPassphrase always produces a hash that CheckPassphrase verifies.
func TestPropertyHashAndCheck(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// bcrypt has a max input length of 72 bytes
		passphrase := rapid.StringMatching(`[a-zA-Z0-9!@#$%^&*]{1,64}`).Draw(t, "passphrase")
		hash, err := HashPassphrase(passphrase)
		if err != nil {
			t.Fatalf("HashPassphrase failed: %v", err)
		}
		if !CheckPassphrase(passphrase, hash) {
			t.Fatalf("CheckPassphrase failed for passphrase %q", passphrase)
		}
	})
}
