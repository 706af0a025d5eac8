package interfaces

import (
	"context"

	domaintypes "megolmkeys/internal/domain/types"
)

// SessionView is what a store hands back after reconstructing one of its
// inbound group sessions. ExportAtFirstKnownIndex may do real ratchet work,
// so this is an interface rather than a plain struct.
type SessionView interface {
	// Valid reports whether the session is usable; an invalid view is
	// skipped by the export pipeline rather than surfaced as an error.
	Valid() bool
	RoomID() string
	SessionID() string
	SenderKey() string
	SenderClaimedKeys() map[string]string
	ForwardingChain() []string
	// ExportAtFirstKnownIndex returns the session key at the earliest
	// ratchet position this holder can still decrypt, maximizing the
	// recipient's usable message history.
	ExportAtFirstKnownIndex() (string, error)
}

// KeyExportStore is the dependency-injected collaborator the key export
// codec reads from and writes to. It is the only shared resource the
// codec touches.
type KeyExportStore interface {
	// ListInboundSessions returns every session the codec may attempt to
	// export.
	ListInboundSessions(ctx context.Context) ([]domaintypes.SessionHandle, error)

	// Reconstruct builds a SessionView for handle, unlocking it with
	// pickleKey. It may fail for an individual session without aborting
	// the whole export.
	Reconstruct(
		ctx context.Context,
		handle domaintypes.SessionHandle,
		pickleKey string,
	) (SessionView, error)

	// SetInboundGroupSession hands a decrypted, imported record to the
	// store. forwarded is always true for records arriving through this
	// codec, since they were relayed through a key export rather than
	// established directly.
	SetInboundGroupSession(
		ctx context.Context,
		rec domaintypes.SessionRecord,
		forwarded bool,
	) error

	// EncryptionEnabled reports whether the store currently accepts new
	// group sessions at all.
	EncryptionEnabled(ctx context.Context) (bool, error)

	// UserID returns the identifier used as the pickle key when
	// reconstructing sessions for export.
	UserID(ctx context.Context) (string, error)
}
