package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
)

const (
	// ExportVersion1 is the only envelope version this codec understands.
	ExportVersion1 byte = 0x01

	saltLength = 16
	ivLength   = 16
	macLength  = 32

	// headerLength is version (1) + salt (16) + iv (16) + rounds (4).
	headerLength = 1 + saltLength + ivLength + 4

	// MinEnvelopeLength is the smallest a structurally valid envelope can
	// be: header plus a trailing MAC and no ciphertext.
	MinEnvelopeLength = headerLength + macLength
)

// Envelope is the parsed form of the key export binary layout.
//
//	offset 0:  version (1 byte), must be ExportVersion1
//	offset 1:  salt (16 bytes)
//	offset 17: iv (16 bytes), the initial AES-CTR counter block
//	offset 33: rounds (4 bytes, big-endian uint32)
//	offset 37: ciphertext (n bytes)
//	offset 37+n: mac (32 bytes), HMAC-SHA-256 over bytes [0, 37+n)
type Envelope struct {
	Version    byte
	Salt       []byte
	IV         []byte
	Rounds     uint32
	Ciphertext []byte
	MAC        []byte

	// MACInput is the exact byte range the MAC was computed over -
	// everything before the trailing MAC itself. Exposed so callers verify
	// before decrypting (encrypt-then-MAC, verify-then-decrypt).
	MACInput []byte
}

// BuildEnvelope concatenates the fixed-layout fields and appends an
// HMAC-SHA-256 tag computed with hmacKey over everything preceding it.
func BuildEnvelope(salt, iv []byte, rounds uint32, ciphertext, hmacKey []byte) []byte {
	out := make([]byte, headerLength+len(ciphertext)+macLength)
	out[0] = ExportVersion1
	copy(out[1:1+saltLength], salt)
	copy(out[1+saltLength:headerLength], iv)
	binary.BigEndian.PutUint32(out[33:headerLength], rounds)
	copy(out[headerLength:headerLength+len(ciphertext)], ciphertext)

	macInput := out[:headerLength+len(ciphertext)]
	mac := hmac.New(sha256.New, hmacKey)
	mac.Write(macInput)
	copy(out[headerLength+len(ciphertext):], mac.Sum(nil))
	return out
}

// ParseEnvelope splits raw envelope bytes into their fields without
// verifying the MAC or decrypting anything.
func ParseEnvelope(raw []byte) (Envelope, error) {
	if len(raw) < MinEnvelopeLength {
		return Envelope{}, ErrMalformedEnvelope
	}
	version := raw[0]
	if version != ExportVersion1 {
		return Envelope{}, UnsupportedVersionError{Version: version}
	}

	dataEnd := len(raw) - macLength
	return Envelope{
		Version:    version,
		Salt:       raw[1 : 1+saltLength],
		IV:         raw[1+saltLength : 1+saltLength+ivLength],
		Rounds:     binary.BigEndian.Uint32(raw[33:headerLength]),
		Ciphertext: raw[headerLength:dataEnd],
		MAC:        raw[dataEnd:],
		MACInput:   raw[:dataEnd],
	}, nil
}

// VerifyMAC recomputes HMAC-SHA-256 over macInput with hmacKey and compares
// it against stored in constant time. A length mismatch is also rejected,
// though both inputs are fixed at 32 bytes in practice.
func VerifyMAC(hmacKey, macInput, stored []byte) bool {
	mac := hmac.New(sha256.New, hmacKey)
	mac.Write(macInput)
	computed := mac.Sum(nil)
	if len(computed) != len(stored) {
		return false
	}
	return subtle.ConstantTimeCompare(computed, stored) == 1
}
