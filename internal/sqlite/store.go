// Package sqlite implements the SQLite storage backend for bindkv. It maps
// the byte-oriented storage port onto a single slots table and stamps each
// store with a stable identity on first attach.
package sqlite

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/v26-solutions/bindkv/pkg/kv"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "bindkv.db"

// Store implements kv.Backend over a SQLite database. Values persist across
// Detach and re-Attach of the same data directory.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   kv.Config
	db       *sql.DB
	storeID  string
}

// NewStore creates a new SQLite store instance. The store is not attached;
// call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration. Creates
// DataDir if it does not exist, opens or creates the database, applies the
// schema, and stamps a store identity on first creation.
// Returns kv.ErrAlreadyAttached if already attached.
func (s *Store) Attach(config kv.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return kv.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	storeID, err := ensureStoreID(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("stamp store identity: %w", err)
	}

	s.db = db
	s.config = config
	s.storeID = storeID
	s.attached = true

	return nil
}

// Detach releases the database connection. After Detach, store operations
// return kv.ErrDetached. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil // idempotent
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.attached = false
	s.storeID = ""

	return nil
}

// StoreID returns the identity stamped into the store on first creation.
// The ID is stable across Detach and re-Attach.
func (s *Store) StoreID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return "", kv.ErrDetached
	}
	return s.storeID, nil
}

// Get returns the value stored at key, or ok false when absent.
func (s *Store) Get(key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, false, kv.ErrDetached
	}

	var value []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get slot: %w", err)
	}
	return value, true, nil
}

// Set stores value at key, overwriting any previous value.
func (s *Store) Set(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return kv.ErrDetached
	}

	_, err := s.db.Exec(
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set slot: %w", err)
	}
	return nil
}

// Clear removes the value at key. Clearing an absent key succeeds.
func (s *Store) Clear(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return kv.ErrDetached
	}

	if _, err := s.db.Exec(`DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clear slot: %w", err)
	}
	return nil
}

// Keys returns all stored keys with the given prefix in lexicographic order.
func (s *Store) Keys(prefix []byte) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, kv.ErrDetached
	}

	rows, err := s.db.Query(`SELECT key FROM slots ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var key []byte
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan slot key: %w", err)
		}
		if bytes.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return out, nil
}

// ensureStoreID writes a freshly generated store identity on first creation
// and returns the stored one either way.
func ensureStoreID(db *sql.DB) (string, error) {
	_, err := db.Exec(
		`INSERT OR IGNORE INTO store_meta (meta_key, meta_value) VALUES ('store_id', ?)`,
		generateUUID(),
	)
	if err != nil {
		return "", err
	}

	var id string
	err = db.QueryRow(`SELECT meta_value FROM store_meta WHERE meta_key = 'store_id'`).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// generateUUID generates a UUID v7 for the store identity.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
