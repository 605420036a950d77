package kv

import (
	"bytes"
	"sort"
	"sync"
)

// MemStore is an in-memory Store for tests and ephemeral use. The zero
// value is not usable; call NewMemStore.
type MemStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string][]byte)}
}

// Get returns the value stored at key, or ok false when absent.
func (s *MemStore) Get(key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.slots[string(key)]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set stores value at key, overwriting any previous value.
func (s *MemStore) Set(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.slots[string(key)] = v
	return nil
}

// Clear removes the value at key. Clearing an absent key succeeds.
func (s *MemStore) Clear(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, string(key))
	return nil
}

// Keys returns all stored keys with the given prefix in lexicographic order.
func (s *MemStore) Keys(prefix []byte) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out [][]byte
	for k := range s.slots {
		if bytes.HasPrefix([]byte(k), prefix) {
			out = append(out, []byte(k))
		}
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i], out[j]) < 0 })
	return out, nil
}

// Len returns the number of stored keys.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.slots)
}
