package crypto

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// derivedKeyLength is the total number of bytes PBKDF2 must produce: 32
// bytes for the AES-256 key plus 32 bytes for the HMAC-SHA-256 key.
const derivedKeyLength = 64

// subKeyLength is the length of each of the two sub-keys split out of the
// derived key material.
const subKeyLength = 32

// DeriveSubKeys runs PBKDF2-HMAC-SHA-512 over passphrase and salt for the
// given number of rounds, producing 64 bytes of key material, and splits it
// into an AES-256 key (bytes [0,32)) and an HMAC-SHA-256 key (bytes
// [32,64)). The two sub-keys are independent; callers must never swap them.
//
// golang.org/x/crypto/pbkdf2 already implements the RFC 2898 block
// concatenation (T_i = U_1 xor ... xor U_rounds, one block per 64 bytes of
// SHA-512 output) for arbitrary output lengths, so this calls it directly
// rather than re-deriving the loop by hand.
func DeriveSubKeys(passphrase string, salt []byte, rounds int) (aesKey, hmacKey []byte, err error) {
	key, err := deriveKeyMaterial(passphrase, salt, rounds, derivedKeyLength)
	if err != nil {
		return nil, nil, err
	}
	return key[:subKeyLength], key[subKeyLength:], nil
}

// deriveKeyMaterial returns length bytes of PBKDF2-HMAC-SHA-512 output.
func deriveKeyMaterial(passphrase string, salt []byte, rounds, length int) ([]byte, error) {
	if rounds < 1 || length < 1 {
		return nil, ErrBadInput
	}
	pw := []byte(passphrase)
	defer Wipe(pw)
	return pbkdf2.Key(pw, salt, rounds, length, sha512.New), nil
}
