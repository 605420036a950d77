// Package integration provides shared test helpers for integration tests.
package integration

import (
	"testing"

	"github.com/v26-solutions/bindkv/pkg/kv"
	"github.com/v26-solutions/bindkv/pkg/sqlite"
)

// setupStore creates a SQLite store attached to an isolated temp directory.
// Each test case gets its own store instance for isolation.
func setupStore(t *testing.T) (kv.Backend, string) {
	t.Helper()
	dir := t.TempDir()
	s := sqlite.NewStore()
	if err := s.Attach(kv.Config{Backend: kv.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { s.Detach() })
	return s, dir
}
