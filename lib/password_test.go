package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery", DefaultArgonParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	ok, err := VerifyPassword("correct horse battery", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("same password", DefaultArgonParams)
	require.NoError(t, err)
	second, err := HashPassword("same password", DefaultArgonParams)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = VerifyPassword("anything", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestDecodeArgon2Hash(t *testing.T) {
	hash, err := HashPassword("secret", DefaultArgonParams)
	require.NoError(t, err)

	parts, err := DecodeArgon2Hash(hash)
	require.NoError(t, err)
	assert.Equal(t, DefaultArgonParams.Memory, parts.Memory)
	assert.Equal(t, DefaultArgonParams.Time, parts.Time)
	assert.Equal(t, DefaultArgonParams.Threads, parts.Threads)
	assert.Len(t, parts.Salt, int(DefaultArgonParams.SaltLen))
	assert.Len(t, parts.Hash, int(DefaultArgonParams.KeyLen))
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare([]byte("abc"), []byte("abc")))
	assert.False(t, SecureCompare([]byte("abc"), []byte("abd")))
	assert.False(t, SecureCompare([]byte("abc"), []byte("abcd")))
}
