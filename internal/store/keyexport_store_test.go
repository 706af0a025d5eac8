package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megolmkeys/internal/domain"
	"megolmkeys/internal/store"
)

func TestFileKeyExportStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1 := store.NewFileKeyExportStore(dir, "at-rest-secret")
	require.NoError(t, s1.SetUserID("@alice:example.org"))
	require.NoError(t, s1.Put(domain.SessionRecord{
		SessionID:  "session-1",
		RoomID:     "!room:example.org",
		SessionKey: "sessionkeybase64",
	}))

	s2 := store.NewFileKeyExportStore(dir, "at-rest-secret")
	userID, err := s2.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "@alice:example.org", userID)

	handles, err := s2.ListInboundSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, handles, 1)

	view, err := s2.Reconstruct(ctx, "session-1", userID)
	require.NoError(t, err)
	assert.True(t, view.Valid())
	key, err := view.ExportAtFirstKnownIndex()
	require.NoError(t, err)
	assert.Equal(t, "sessionkeybase64", key)
}

func TestFileKeyExportStore_WrongAtRestSecretFails(t *testing.T) {
	dir := t.TempDir()

	s1 := store.NewFileKeyExportStore(dir, "correct secret")
	require.NoError(t, s1.SetUserID("@alice:example.org"))

	s2 := store.NewFileKeyExportStore(dir, "wrong secret")
	_, err := s2.UserID(context.Background())
	assert.Error(t, err)
}

func TestFileKeyExportStore_DefaultsToEncryptionEnabled(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileKeyExportStore(dir, "secret")

	enabled, err := s.EncryptionEnabled(context.Background())
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestMemoryKeyExportStore_SetInboundGroupSession(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryKeyExportStore("@alice:example.org")

	rec := domain.SessionRecord{SessionID: "session-1", SessionKey: "keybase64"}
	require.NoError(t, s.SetInboundGroupSession(ctx, rec, true))
	assert.Equal(t, 1, s.Len())

	view, err := s.Reconstruct(ctx, "session-1", "@alice:example.org")
	require.NoError(t, err)
	key, err := view.ExportAtFirstKnownIndex()
	require.NoError(t, err)
	assert.Equal(t, "keybase64", key)
}

func TestMemoryKeyExportStore_ReconstructUnknownHandleFails(t *testing.T) {
	s := store.NewMemoryKeyExportStore("@alice:example.org")
	_, err := s.Reconstruct(context.Background(), "missing", "@alice:example.org")
	assert.Error(t, err)
}
