// Package store provides persistence for key export sessions.
//
// It contains concrete implementations of domain.KeyExportStore, serialising
// data as JSON. FileKeyExportStore encrypts its file at rest and is
// concurrency-safe via internal locking; MemoryKeyExportStore is an
// in-process equivalent used by tests.
package store
