package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"megolmkeys/internal/domain"
)

const keyExportFilename = "megolm_sessions.enc"

// keyExportFileData is the plaintext shape stored (encrypted) on disk.
type keyExportFileData struct {
	UserID            string                          `json:"user_id"`
	EncryptionEnabled bool                             `json:"encryption_enabled"`
	Sessions          map[string]domain.SessionRecord `json:"sessions"`
}

// FileKeyExportStore is a domain.KeyExportStore backed by a single JSON
// file, encrypted at rest with the scrypt + chacha20poly1305 envelope in
// crypto_envelope.go. This is a separate encryption layer from the Megolm
// export envelope itself: the at-rest passphrase protects the store's file
// on this machine, while the codec's passphrase protects the portable
// export file.
type FileKeyExportStore struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewFileKeyExportStore returns a FileKeyExportStore rooted at dir, whose
// on-disk file is encrypted with atRestPassphrase.
func NewFileKeyExportStore(dir, atRestPassphrase string) *FileKeyExportStore {
	return &FileKeyExportStore{dir: dir, passphrase: atRestPassphrase}
}

// SetUserID records the identifier used as the pickle key on export, and
// creates the store file if it does not yet exist.
func (s *FileKeyExportStore) SetUserID(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data.UserID = userID
	return s.save(data)
}

// SetEncryptionEnabled flips whether the store currently accepts new group
// sessions.
func (s *FileKeyExportStore) SetEncryptionEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data.EncryptionEnabled = enabled
	return s.save(data)
}

// Put inserts or replaces a session directly, for seeding a store ahead of
// export (most often used in tests).
func (s *FileKeyExportStore) Put(rec domain.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data.Sessions[rec.SessionID] = rec
	return s.save(data)
}

func (s *FileKeyExportStore) ListInboundSessions(_ context.Context) ([]domain.SessionHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	handles := make([]domain.SessionHandle, 0, len(data.Sessions))
	for id := range data.Sessions {
		handles = append(handles, id)
	}
	return handles, nil
}

func (s *FileKeyExportStore) Reconstruct(
	_ context.Context,
	handle domain.SessionHandle,
	_ string,
) (domain.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := handle.(string)
	if !ok {
		return nil, fmt.Errorf("keyexport store: unrecognized session handle %v", handle)
	}

	data, err := s.load()
	if err != nil {
		return nil, err
	}
	rec, ok := data.Sessions[id]
	if !ok {
		return nil, fmt.Errorf("keyexport store: no session with id %q", id)
	}
	return recordView{rec: rec, valid: true}, nil
}

func (s *FileKeyExportStore) SetInboundGroupSession(
	_ context.Context,
	rec domain.SessionRecord,
	_ bool,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data.Sessions[rec.SessionID] = rec
	return s.save(data)
}

func (s *FileKeyExportStore) EncryptionEnabled(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return false, err
	}
	return data.EncryptionEnabled, nil
}

func (s *FileKeyExportStore) UserID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return "", err
	}
	return data.UserID, nil
}

func (s *FileKeyExportStore) path() string {
	return filepath.Join(s.dir, keyExportFilename)
}

// load reads and decrypts the store file. A missing file is not an error: it
// yields a fresh, encryption-enabled store, matching the "missing file"
// convention in readFile.
func (s *FileKeyExportStore) load() (keyExportFileData, error) {
	blob, err := readFile(s.path())
	if err != nil {
		return keyExportFileData{}, err
	}
	if blob == nil {
		return keyExportFileData{
			EncryptionEnabled: true,
			Sessions:          map[string]domain.SessionRecord{},
		}, nil
	}

	raw, err := decrypt(s.passphrase, blob)
	if err != nil {
		return keyExportFileData{}, err
	}
	var data keyExportFileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return keyExportFileData{}, err
	}
	if data.Sessions == nil {
		data.Sessions = map[string]domain.SessionRecord{}
	}
	return data, nil
}

func (s *FileKeyExportStore) save(data keyExportFileData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	blob, err := encrypt(s.passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(s.path(), blob, 0o600)
}

// Compile-time assertion that FileKeyExportStore implements domain.KeyExportStore.
var _ domain.KeyExportStore = (*FileKeyExportStore)(nil)
