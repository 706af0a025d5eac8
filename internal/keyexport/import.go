package keyexport

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"

	"megolmkeys/internal/crypto"
	"megolmkeys/internal/domain"
)

// Import unwraps armored export data, verifies and decrypts it with
// passphrase, and hands every resulting session record to store. It returns
// the number of records the store accepted.
func Import(ctx context.Context, store domain.KeyExportStore, passphrase string, data []byte) (uint, error) {
	raw, err := crypto.UnwrapArmor(data)
	if err != nil {
		return 0, err
	}

	envelope, err := crypto.ParseEnvelope(raw)
	if err != nil {
		return 0, err
	}

	aesKey, hmacKey, err := crypto.DeriveSubKeys(passphrase, envelope.Salt, int(envelope.Rounds))
	if err != nil {
		return 0, err
	}
	defer crypto.Wipe(aesKey)
	defer crypto.Wipe(hmacKey)

	if !crypto.VerifyMAC(hmacKey, envelope.MACInput, envelope.MAC) {
		return 0, ErrAuthFailure
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return 0, err
	}
	plaintext := make([]byte, len(envelope.Ciphertext))
	cipher.NewCTR(block, envelope.IV).XORKeyStream(plaintext, envelope.Ciphertext)

	// An empty ciphertext (the minimum 69-byte envelope) decrypts to zero
	// bytes of plaintext, which is not itself valid JSON. Treat it as
	// equivalent to an empty array rather than a parse failure, special-
	// cased here instead of being fed to the JSON decoder.
	var records []domain.SessionRecord
	if len(plaintext) > 0 {
		if err := json.Unmarshal(plaintext, &records); err != nil {
			// Deliberately indistinguishable from a MAC mismatch: see ErrAuthFailure.
			return 0, ErrAuthFailure
		}
	}

	enabled, err := store.EncryptionEnabled(ctx)
	if err != nil {
		return 0, err
	}
	if !enabled {
		return 0, ErrEncryptionDisabled
	}

	var count uint
	for _, rec := range records {
		if rec.SenderClaimedKeys == nil {
			rec.SenderClaimedKeys = map[string]string{}
		}
		if err := store.SetInboundGroupSession(ctx, rec, true); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
