// Package crypto implements the Megolm key export envelope.
//
// Contents
//
//   - PBKDF2-HMAC-SHA-512 key derivation, splitting 64 bytes of output into
//     an AES-256 key and an HMAC-SHA-256 key (DeriveSubKeys)
//   - Binary envelope framing and parsing (BuildEnvelope, ParseEnvelope) and
//     constant-time MAC verification (VerifyMAC)
//   - PEM-style armor wrapping/unwrapping (WrapArmor, UnwrapArmor)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Callers should treat derived keys and passphrase copies as sensitive and
// call Wipe on them once finished.
package crypto
