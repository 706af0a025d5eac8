package types

// SessionRecord is the JSON-serializable representation of one exported
// Megolm inbound group session.
type SessionRecord struct {
	Algorithm                    string            `json:"algorithm"`
	RoomID                       string            `json:"room_id"`
	SessionID                    string            `json:"session_id"`
	SenderKey                    string            `json:"sender_key"`
	SenderClaimedKeys            map[string]string `json:"sender_claimed_keys"`
	ForwardingCurve25519KeyChain []string          `json:"forwarding_curve25519_key_chain"`
	SessionKey                   string            `json:"session_key"`
}

// SessionHandle is an opaque reference to one of the store's inbound group
// sessions, returned by ListInboundSessions and passed back into
// Reconstruct. Callers must not assume anything about its shape.
type SessionHandle any
