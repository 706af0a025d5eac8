// Package keyexport implements the Megolm room key export codec: exporting
// a KeyExportStore's inbound group sessions to a passphrase-protected,
// armored file, and importing such a file back into a store.
//
// The codec is a pure function of its inputs plus the store and a source of
// randomness on export: no package-level state, no retries. All binary
// framing, key derivation, and MAC verification live in
// megolmkeys/internal/crypto; this package only orchestrates them against the
// store.
package keyexport
