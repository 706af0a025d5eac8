package store

import "megolmkeys/internal/domain"

// recordView adapts a stored domain.SessionRecord back into a
// domain.SessionView, so FileKeyExportStore and MemoryKeyExportStore can
// satisfy Reconstruct without a second type per implementation.
type recordView struct {
	rec   domain.SessionRecord
	valid bool
}

func (v recordView) Valid() bool { return v.valid }

func (v recordView) RoomID() string    { return v.rec.RoomID }
func (v recordView) SessionID() string { return v.rec.SessionID }
func (v recordView) SenderKey() string { return v.rec.SenderKey }

func (v recordView) SenderClaimedKeys() map[string]string { return v.rec.SenderClaimedKeys }
func (v recordView) ForwardingChain() []string            { return v.rec.ForwardingCurve25519KeyChain }

func (v recordView) ExportAtFirstKnownIndex() (string, error) {
	return v.rec.SessionKey, nil
}

var _ domain.SessionView = recordView{}
