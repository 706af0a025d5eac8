package keyexport

import "errors"

// ErrAuthFailure covers both a MAC mismatch and a JSON parse failure after a
// successful decryption. The two are deliberately indistinguishable: a
// malleable CTR ciphertext cannot reach the JSON parser without first
// passing the MAC, so collapsing the two outcomes costs nothing in practice
// and avoids giving an attacker a format oracle.
var ErrAuthFailure = errors.New("wrong passphrase or corrupted file")

// ErrEncryptionDisabled is returned when the store reports it is not
// currently willing to accept new group sessions.
var ErrEncryptionDisabled = errors.New("encryption is not enabled")

// ErrEmptyExport is returned when no session survived reconstruction and
// there is nothing to export.
var ErrEmptyExport = errors.New("no session keys to export")
