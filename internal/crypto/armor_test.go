package crypto_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megolmkeys/internal/crypto"
)

func TestWrapUnwrapArmor_RoundTrip(t *testing.T) {
	binary := bytes.Repeat([]byte{0x01, 0x02, 0x03}, 40) // forces multiple wrapped lines

	armored := crypto.WrapArmor(binary)
	assert.True(t, strings.HasPrefix(string(armored), "-----BEGIN MEGOLM SESSION DATA-----\n"))
	assert.True(t, strings.HasSuffix(string(armored), "-----END MEGOLM SESSION DATA-----\n"))

	decoded, err := crypto.UnwrapArmor(armored)
	require.NoError(t, err)
	assert.Equal(t, binary, decoded)
}

func TestWrapArmor_WrapsAt76Columns(t *testing.T) {
	binary := bytes.Repeat([]byte{0xFF}, 200)
	armored := crypto.WrapArmor(binary)

	lines := strings.Split(strings.TrimSuffix(string(armored), "\n"), "\n")
	body := lines[1 : len(lines)-1]
	for i, line := range body[:len(body)-1] {
		assert.Lenf(t, line, 76, "line %d should be 76 chars", i)
	}
	assert.LessOrEqual(t, len(body[len(body)-1]), 76)
}

func TestUnwrapArmor_ToleratesCRLFAndBlankLines(t *testing.T) {
	binary := []byte("hello megolm")
	armored := crypto.WrapArmor(binary)
	crlf := strings.ReplaceAll(string(armored), "\n", "\r\n")
	crlf = "\r\n" + crlf + "\r\n\r\n"

	decoded, err := crypto.UnwrapArmor([]byte(crlf))
	require.NoError(t, err)
	assert.Equal(t, binary, decoded)
}

func TestUnwrapArmor_RejectsMissingHeader(t *testing.T) {
	_, err := crypto.UnwrapArmor([]byte("not an export\n-----END MEGOLM SESSION DATA-----\n"))
	assert.ErrorIs(t, err, crypto.ErrMalformedArmor)
}

func TestUnwrapArmor_RejectsMissingFooter(t *testing.T) {
	_, err := crypto.UnwrapArmor([]byte("-----BEGIN MEGOLM SESSION DATA-----\nAAAA\n"))
	assert.ErrorIs(t, err, crypto.ErrMalformedArmor)
}

func TestUnwrapArmor_RejectsBadBase64(t *testing.T) {
	text := "-----BEGIN MEGOLM SESSION DATA-----\nnot valid base64!!\n-----END MEGOLM SESSION DATA-----\n"
	_, err := crypto.UnwrapArmor([]byte(text))
	assert.ErrorIs(t, err, crypto.ErrMalformedArmor)
}

func TestUnwrapArmor_RejectsNoBodyLines(t *testing.T) {
	text := "-----BEGIN MEGOLM SESSION DATA-----\n-----END MEGOLM SESSION DATA-----\n"
	_, err := crypto.UnwrapArmor([]byte(text))
	assert.ErrorIs(t, err, crypto.ErrMalformedArmor)
}

func TestUnwrapArmor_RejectsInvalidUTF8(t *testing.T) {
	_, err := crypto.UnwrapArmor([]byte{0xff, 0xfe, 0xfd})
	assert.ErrorIs(t, err, crypto.ErrMalformedArmor)
}
