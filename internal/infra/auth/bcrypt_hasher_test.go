package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("4821")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "4821", hash)

	assert.True(t, hasher.Check("4821", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("4821")
	require.NoError(t, err)
	second, err := hasher.Hash("4821")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("4821", first))
	assert.True(t, hasher.Check("4821", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("4821")
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		hash   string
	}{
		{"Wrong secret", "1234", hash},
		{"Empty secret", "", hash},
		{"Empty hash", "4821", ""},
		{"Malformed hash", "4821", "not-a-bcrypt-hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Check(tt.secret, tt.hash))
		})
	}
}
