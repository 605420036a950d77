package bind

import (
	"github.com/v26-solutions/bindkv/pkg/codec"
	"github.com/v26-solutions/bindkv/pkg/keys"
	"github.com/v26-solutions/bindkv/pkg/kv"
)

// Singleton binds a newtype to one fixed storage slot. Every instance of the
// type shares the key; the key depends only on the declared identity.
type Singleton[T any] struct {
	key   []byte
	codec codec.Codec[T]
	cap   Capability
}

// NewSingleton declares a singleton binding for the newtype T. The
// namespace and name form the key together with the codec's kind; they must
// be stable across runs, since they address the stored bytes.
func NewSingleton[T any](namespace, name string, c codec.Codec[T], opts ...Option) (*Singleton[T], error) {
	capability, err := resolve(namespace, name, opts)
	if err != nil {
		return nil, err
	}
	return &Singleton[T]{
		key:   keys.Prefix(namespace, name, c.Kind()),
		codec: c,
		cap:   capability,
	}, nil
}

// Key returns a copy of the binding's storage key.
func (b *Singleton[T]) Key() []byte {
	out := make([]byte, len(b.key))
	copy(out, b.key)
	return out
}

// Capability returns the binding's declared capability variant.
func (b *Singleton[T]) Capability() Capability {
	return b.cap
}

// Load reads the bound value. ok is false when nothing is stored; err
// reports backend failures. Corrupt stored bytes panic with
// *CorruptionError.
func (b *Singleton[T]) Load(s kv.ReadStore) (T, bool, error) {
	var zero T
	raw, ok, err := s.Get(b.key)
	if err != nil || !ok {
		return zero, false, err
	}
	return mustDecode(b.codec, b.key, raw), true, nil
}

// Save writes v to the bound slot, overwriting any previous value.
func (b *Singleton[T]) Save(s kv.Store, v T) error {
	return s.Set(b.key, b.codec.Encode(v))
}

// LoadAlways reads the bound value of an always-present binding. Absence
// panics with *CorruptionError; once written, the value can never
// legitimately disappear. Returns ErrNotAlwaysPresent if the binding was
// declared without WithAlwaysPresent.
func (b *Singleton[T]) LoadAlways(s kv.ReadStore) (T, error) {
	var zero T
	if b.cap != CapAlwaysPresent {
		return zero, ErrNotAlwaysPresent
	}
	v, ok, err := b.Load(s)
	if err != nil {
		return zero, err
	}
	if !ok {
		panic(&CorruptionError{Key: b.Key(), Err: ErrValueMissing})
	}
	return v, nil
}

// Clear removes the bound value. Clearing an absent value succeeds; clearing
// twice leaves the same state as clearing once. Returns ErrNotClearable if
// the binding was declared without WithClear.
func (b *Singleton[T]) Clear(s kv.Store) error {
	if b.cap != CapClear {
		return ErrNotClearable
	}
	return s.Clear(b.key)
}

// mustDecode decodes raw bytes loaded from key, panicking with
// *CorruptionError on failure. Bytes written by this layer always decode;
// anything else means the store broke underneath us.
func mustDecode[T any](c codec.Codec[T], key, raw []byte) T {
	v, err := c.Decode(raw)
	if err != nil {
		k := make([]byte, len(key))
		copy(k, key)
		panic(&CorruptionError{Key: k, Err: err})
	}
	return v
}
