// Package kv defines the byte-oriented storage port that bindings operate
// against, the backend lifecycle interface, the Config type, and standard
// errors.
package kv

import "errors"

// ReadStore is the read side of the storage port. Load operations need
// nothing more.
type ReadStore interface {
	// Get returns the value stored at key. ok is false when no value is
	// stored there; that is a normal result, not an error. err reports
	// backend failures only.
	Get(key []byte) (value []byte, ok bool, err error)
}

// Store is the full storage port: shared reads plus exclusive writes.
// This layer adds nothing on top — no buffering, no caching, no ordering
// guarantees between concurrent callers. Each call is one synchronous
// operation against the backend.
type Store interface {
	ReadStore

	// Set stores value at key, overwriting any previous value.
	Set(key, value []byte) error

	// Clear removes the value at key. Clearing an absent key succeeds.
	Clear(key []byte) error
}

// Backend is a store with a lifecycle. Callers attach with a Config, operate
// through the Store contract, and detach when done. Backends may offer more
// than the port (listing, identity); bindings consume only Store.
type Backend interface {
	Store

	// Attach connects the backend described by config. Creates the data
	// directory if it does not exist. Returns ErrAlreadyAttached if
	// called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, store operations return ErrDetached.
	Detach() error

	// StoreID returns the stable identity stamped into the store when it
	// was first created.
	StoreID() (string, error)

	// Keys returns all stored keys with the given prefix, in
	// lexicographic order. An empty prefix returns every key.
	Keys(prefix []byte) ([][]byte, error)
}

// Backend lifecycle errors.
var (
	ErrDetached        = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
