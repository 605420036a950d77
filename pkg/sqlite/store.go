// Package sqlite provides the public API for the SQLite bindkv backend.
// This package exposes the factory function for creating SQLite stores
// while keeping implementation details internal.
package sqlite

import (
	"github.com/v26-solutions/bindkv/internal/sqlite"
	"github.com/v26-solutions/bindkv/pkg/kv"
)

// NewStore creates a new SQLite store instance. The store is not attached;
// call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(kv.Config{
//	    Backend: kv.BackendSQLite,
//	    DataDir: ".bindkv-db",
//	})
//	defer store.Detach()
func NewStore() kv.Backend {
	return sqlite.NewStore()
}
