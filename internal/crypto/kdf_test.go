package crypto_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megolmkeys/internal/crypto"
)

func TestDeriveSubKeys_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x42}, 16)

	aesKey1, hmacKey1, err := crypto.DeriveSubKeys("correct horse", salt, 1000)
	require.NoError(t, err)
	aesKey2, hmacKey2, err := crypto.DeriveSubKeys("correct horse", salt, 1000)
	require.NoError(t, err)

	assert.Equal(t, aesKey1, aesKey2)
	assert.Equal(t, hmacKey1, hmacKey2)
	assert.Len(t, aesKey1, 32)
	assert.Len(t, hmacKey1, 32)
	assert.NotEqual(t, aesKey1, hmacKey1)
}

func TestDeriveSubKeys_DifferentPassphrasesDiffer(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, 16)

	aesKey1, _, err := crypto.DeriveSubKeys("passphrase one", salt, 1000)
	require.NoError(t, err)
	aesKey2, _, err := crypto.DeriveSubKeys("passphrase two", salt, 1000)
	require.NoError(t, err)

	assert.NotEqual(t, aesKey1, aesKey2)
}

func TestDeriveSubKeys_RejectsBadRounds(t *testing.T) {
	_, _, err := crypto.DeriveSubKeys("x", []byte("salt"), 0)
	assert.ErrorIs(t, err, crypto.ErrBadInput)

	_, _, err = crypto.DeriveSubKeys("x", []byte("salt"), -1)
	assert.ErrorIs(t, err, crypto.ErrBadInput)
}
