package sqlite

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/v26-solutions/bindkv/pkg/kv"
)

// attachTemp creates a store attached to an isolated temp directory.
func attachTemp(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewStore()
	if err := s.Attach(kv.Config{Backend: kv.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { s.Detach() })
	return s, dir
}

func TestAttachLifecycle(t *testing.T) {
	t.Run("attach creates the database file", func(t *testing.T) {
		s, dir := attachTemp(t)
		if _, _, err := s.Get([]byte("k")); err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(filepath.Join(dir, DBFileName)); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("double attach fails", func(t *testing.T) {
		s, dir := attachTemp(t)
		err := s.Attach(kv.Config{Backend: kv.BackendSQLite, DataDir: dir})
		if !errors.Is(err, kv.ErrAlreadyAttached) {
			t.Fatalf("expected ErrAlreadyAttached, got %v", err)
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		s := NewStore()
		err := s.Attach(kv.Config{Backend: "postgres"})
		if !errors.Is(err, kv.ErrBackendUnknown) {
			t.Fatalf("expected ErrBackendUnknown, got %v", err)
		}
	})

	t.Run("detach is idempotent", func(t *testing.T) {
		s, _ := attachTemp(t)
		if err := s.Detach(); err != nil {
			t.Fatal(err)
		}
		if err := s.Detach(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("operations after detach fail", func(t *testing.T) {
		s, _ := attachTemp(t)
		_ = s.Detach()

		if _, _, err := s.Get([]byte("k")); !errors.Is(err, kv.ErrDetached) {
			t.Fatalf("Get: expected ErrDetached, got %v", err)
		}
		if err := s.Set([]byte("k"), []byte("v")); !errors.Is(err, kv.ErrDetached) {
			t.Fatalf("Set: expected ErrDetached, got %v", err)
		}
		if err := s.Clear([]byte("k")); !errors.Is(err, kv.ErrDetached) {
			t.Fatalf("Clear: expected ErrDetached, got %v", err)
		}
		if _, err := s.Keys(nil); !errors.Is(err, kv.ErrDetached) {
			t.Fatalf("Keys: expected ErrDetached, got %v", err)
		}
		if _, err := s.StoreID(); !errors.Is(err, kv.ErrDetached) {
			t.Fatalf("StoreID: expected ErrDetached, got %v", err)
		}
	})
}

func TestGetSetClear(t *testing.T) {
	s, _ := attachTemp(t)

	t.Run("absent key", func(t *testing.T) {
		_, ok, err := s.Get([]byte("missing"))
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("expected ok false for absent key")
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := s.Set([]byte("k"), []byte{0, 0, 0, 19}); err != nil {
			t.Fatal(err)
		}
		v, ok, err := s.Get([]byte("k"))
		if err != nil {
			t.Fatal(err)
		}
		if !ok || !bytes.Equal(v, []byte{0, 0, 0, 19}) {
			t.Fatalf("got %x ok=%v", v, ok)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := s.Set([]byte("k"), []byte("new")); err != nil {
			t.Fatal(err)
		}
		v, _, _ := s.Get([]byte("k"))
		if !bytes.Equal(v, []byte("new")) {
			t.Fatalf("expected overwrite, got %q", v)
		}
	})

	t.Run("clear then clear again", func(t *testing.T) {
		if err := s.Clear([]byte("k")); err != nil {
			t.Fatal(err)
		}
		if _, ok, _ := s.Get([]byte("k")); ok {
			t.Fatal("expected absence after clear")
		}
		if err := s.Clear([]byte("k")); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("empty value round trips", func(t *testing.T) {
		if err := s.Set([]byte("empty"), []byte{}); err != nil {
			t.Fatal(err)
		}
		v, ok, err := s.Get([]byte("empty"))
		if err != nil {
			t.Fatal(err)
		}
		if !ok || len(v) != 0 {
			t.Fatalf("expected present empty value, got %x ok=%v", v, ok)
		}
	})
}

func TestKeys(t *testing.T) {
	s, _ := attachTemp(t)

	for _, k := range []string{"app::b", "app::a", "other::c"} {
		if err := s.Set([]byte(k), []byte("v")); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Keys([]byte("app::"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || string(got[0]) != "app::a" || string(got[1]) != "app::b" {
		t.Fatalf("expected sorted [app::a app::b], got %q", got)
	}
}

func TestPersistenceAcrossAttach(t *testing.T) {
	dir := t.TempDir()

	s := NewStore()
	if err := s.Attach(kv.Config{Backend: kv.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatal(err)
	}
	if err := s.Set([]byte("k"), []byte("v")); err != nil {
		t.Fatal(err)
	}
	firstID, err := s.StoreID()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Detach(); err != nil {
		t.Fatal(err)
	}

	again := NewStore()
	if err := again.Attach(kv.Config{Backend: kv.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatal(err)
	}
	defer again.Detach()

	v, ok, err := again.Get([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || !bytes.Equal(v, []byte("v")) {
		t.Fatalf("expected value to survive re-attach, got %q ok=%v", v, ok)
	}

	secondID, err := again.StoreID()
	if err != nil {
		t.Fatal(err)
	}
	if firstID == "" || firstID != secondID {
		t.Fatalf("expected stable store identity, got %q then %q", firstID, secondID)
	}
}
