package keyexport

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"log"

	"megolmkeys/internal/crypto"
	"megolmkeys/internal/domain"
)

// exportRounds is the fixed PBKDF2 iteration count written on export. Import
// accepts whatever rounds value an envelope carries, for forward
// compatibility with files produced at other counts.
const exportRounds = 500_000

// Export collects every reconstructible inbound group session from store,
// encrypts them under passphrase, and returns an armored, UTF-8 encoded key
// export file.
func Export(ctx context.Context, store domain.KeyExportStore, passphrase string) ([]byte, error) {
	records, err := collectRecords(ctx, store)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyExport
	}

	plaintext, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	iv := make([]byte, 16)
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}

	aesKey, hmacKey, err := crypto.DeriveSubKeys(passphrase, salt, exportRounds)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(aesKey)
	defer crypto.Wipe(hmacKey)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, err
	}
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)

	envelope := crypto.BuildEnvelope(salt, iv, exportRounds, ciphertext, hmacKey)
	return crypto.WrapArmor(envelope), nil
}

// collectRecords walks every session the store knows about, skipping (with
// a warning) any that fail to reconstruct or turn out invalid.
func collectRecords(ctx context.Context, store domain.KeyExportStore) ([]domain.SessionRecord, error) {
	userID, err := store.UserID(ctx)
	if err != nil {
		return nil, err
	}

	handles, err := store.ListInboundSessions(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SessionRecord, 0, len(handles))
	for _, handle := range handles {
		view, err := store.Reconstruct(ctx, handle, userID)
		if err != nil {
			log.Printf("keyexport: skipping session, failed to reconstruct: %v", err)
			continue
		}
		if !view.Valid() {
			log.Printf("keyexport: skipping session marked invalid")
			continue
		}

		sessionKey, err := view.ExportAtFirstKnownIndex()
		if err != nil {
			log.Printf("keyexport: skipping session, failed to export session key: %v", err)
			continue
		}

		claimed := view.SenderClaimedKeys()
		if claimed == nil {
			claimed = map[string]string{}
		}
		chain := view.ForwardingChain()
		if chain == nil {
			chain = []string{}
		}

		records = append(records, domain.SessionRecord{
			Algorithm:                    "m.megolm.v1.aes-sha2",
			RoomID:                       view.RoomID(),
			SessionID:                    view.SessionID(),
			SenderKey:                    view.SenderKey(),
			SenderClaimedKeys:            claimed,
			ForwardingCurve25519KeyChain: chain,
			SessionKey:                   sessionKey,
		})
	}
	return records, nil
}
