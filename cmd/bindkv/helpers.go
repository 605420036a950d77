// Shared helpers for bindkv CLI commands.
package main

import (
	"fmt"

	"github.com/v26-solutions/bindkv/pkg/kv"
	"github.com/v26-solutions/bindkv/pkg/sqlite"
)

// attachStore resolves the data directory, creates a SQLite store, and
// attaches it. The caller must defer store.Detach().
func attachStore() (kv.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := kv.Config{
		Backend: kv.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}

// entry is the JSON shape emitted by get and list when --json is set.
type entry struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}
