package bind

import (
	"errors"
	"testing"

	"github.com/v26-solutions/bindkv/pkg/codec"
	"github.com/v26-solutions/bindkv/pkg/keys"
	"github.com/v26-solutions/bindkv/pkg/kv"
)

type (
	baz       uint16
	slot      uint32
	barString string
	fooString string
)

// barKey is the composite Key Value for barString entries: a slot number
// and a baz, rendered in declared order.
type barKey struct {
	Slot slot
	Baz  baz
}

func (k barKey) AppendKey(dst []byte) []byte {
	return keys.Tuple(keys.Uint(k.Slot), keys.Uint(k.Baz)).AppendKey(dst)
}

func TestNewMapValidation(t *testing.T) {
	_, err := NewMap[barString, barKey]("it", "bar_string", codec.String[barString](),
		WithClear(), WithAlwaysPresent())
	if !errors.Is(err, ErrCapabilityConflict) {
		t.Fatalf("expected ErrCapabilityConflict, got %v", err)
	}
}

func TestMapStringClearable(t *testing.T) {
	store := kv.NewMemStore()

	binding, err := NewMap[barString, barKey]("it", "bar_string", codec.String[barString](), WithClear())
	if err != nil {
		t.Fatal(err)
	}

	at := barKey{Slot: 0, Baz: 1}

	if string(binding.KeyAt(at)) != "it::bar_string_string::0:1" {
		t.Fatalf("key = %q, want %q", binding.KeyAt(at), "it::bar_string_string::0:1")
	}

	if err := binding.SaveAt(store, at, "hello"); err != nil {
		t.Fatal(err)
	}

	got, ok, err := binding.LoadAt(store, at)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != "hello" {
		t.Fatalf("LoadAt = %q ok=%v, want hello true", got, ok)
	}

	t.Run("different key value is absent", func(t *testing.T) {
		if _, ok, _ := binding.LoadAt(store, barKey{Slot: 1, Baz: 1}); ok {
			t.Fatal("expected absence under a different Key Value")
		}
	})

	t.Run("clear removes only the addressed slot", func(t *testing.T) {
		other := barKey{Slot: 2, Baz: 1}
		if err := binding.SaveAt(store, other, "kept"); err != nil {
			t.Fatal(err)
		}

		if err := binding.ClearAt(store, at); err != nil {
			t.Fatal(err)
		}
		if _, ok, _ := binding.LoadAt(store, at); ok {
			t.Fatal("expected absence after ClearAt")
		}
		if got, ok, _ := binding.LoadAt(store, other); !ok || got != "kept" {
			t.Fatalf("expected other slot untouched, got %q ok=%v", got, ok)
		}
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		if err := binding.ClearAt(store, at); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("load-always not granted", func(t *testing.T) {
		if _, err := binding.LoadAlwaysAt(store, at); !errors.Is(err, ErrNotAlwaysPresent) {
			t.Fatalf("expected ErrNotAlwaysPresent, got %v", err)
		}
	})
}

func TestMapStringAlwaysPresent(t *testing.T) {
	store := kv.NewMemStore()

	binding, err := NewMap[fooString, keys.Component]("it", "foo_string", codec.String[fooString](), WithAlwaysPresent())
	if err != nil {
		t.Fatal(err)
	}

	at := keys.String("address")

	if err := binding.SaveAt(store, at, "world"); err != nil {
		t.Fatal(err)
	}

	got, err := binding.LoadAlwaysAt(store, at)
	if err != nil {
		t.Fatal(err)
	}
	if got != "world" {
		t.Fatalf("LoadAlwaysAt = %q, want world", got)
	}

	t.Run("absence panics", func(t *testing.T) {
		mustPanicCorruption(t, func() {
			_, _ = binding.LoadAlwaysAt(store, keys.String("elsewhere"))
		})
	})

	t.Run("clear not granted", func(t *testing.T) {
		if err := binding.ClearAt(store, at); !errors.Is(err, ErrNotClearable) {
			t.Fatalf("expected ErrNotClearable, got %v", err)
		}
	})
}

func TestMapSharedPrefix(t *testing.T) {
	binding, err := NewMap[barString, barKey]("it", "bar_string", codec.String[barString]())
	if err != nil {
		t.Fatal(err)
	}

	if string(binding.Prefix()) != "it::bar_string_string" {
		t.Fatalf("prefix = %q", binding.Prefix())
	}

	t.Run("determinism", func(t *testing.T) {
		k1 := binding.KeyAt(barKey{Slot: 3, Baz: 9})
		k2 := binding.KeyAt(barKey{Slot: 3, Baz: 9})
		if string(k1) != string(k2) {
			t.Fatalf("same Key Value derived %q and %q", k1, k2)
		}
	})
}

func TestMapCorruptBytes(t *testing.T) {
	store := kv.NewMemStore()

	binding, err := NewMap[barString, barKey]("it", "bar_string", codec.String[barString]())
	if err != nil {
		t.Fatal(err)
	}

	at := barKey{Slot: 0, Baz: 1}
	_ = store.Set(binding.KeyAt(at), []byte{0xff, 0xfe})

	mustPanicCorruption(t, func() {
		_, _, _ = binding.LoadAt(store, at)
	})
}
