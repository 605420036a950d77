package bind

import (
	"github.com/v26-solutions/bindkv/pkg/codec"
	"github.com/v26-solutions/bindkv/pkg/keys"
	"github.com/v26-solutions/bindkv/pkg/kv"
)

// Map binds a newtype to a family of storage slots keyed by a Key Value of
// type K. K is any scalar or tuple with a canonical textual rendering: a
// keys adapter, a keys.Tuple, or a caller-defined type implementing
// keys.Component.
type Map[T any, K keys.Component] struct {
	prefix []byte
	codec  codec.Codec[T]
	cap    Capability
}

// NewMap declares a map binding for the newtype T keyed by K.
func NewMap[T any, K keys.Component](namespace, name string, c codec.Codec[T], opts ...Option) (*Map[T, K], error) {
	capability, err := resolve(namespace, name, opts)
	if err != nil {
		return nil, err
	}
	return &Map[T, K]{
		prefix: keys.Prefix(namespace, name, c.Kind()),
		codec:  c,
		cap:    capability,
	}, nil
}

// Prefix returns a copy of the binding's key prefix, shared by every slot of
// the map.
func (b *Map[T, K]) Prefix() []byte {
	out := make([]byte, len(b.prefix))
	copy(out, b.prefix)
	return out
}

// Capability returns the binding's declared capability variant.
func (b *Map[T, K]) Capability() Capability {
	return b.cap
}

// KeyAt returns the storage key for the Key Value k.
func (b *Map[T, K]) KeyAt(k K) []byte {
	return keys.Derive(b.prefix, k)
}

// LoadAt reads the value stored under k. ok is false when nothing is stored;
// err reports backend failures. Corrupt stored bytes panic with
// *CorruptionError.
func (b *Map[T, K]) LoadAt(s kv.ReadStore, k K) (T, bool, error) {
	var zero T
	key := b.KeyAt(k)
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return zero, false, err
	}
	return mustDecode(b.codec, key, raw), true, nil
}

// SaveAt writes v under k, overwriting any previous value.
func (b *Map[T, K]) SaveAt(s kv.Store, k K, v T) error {
	return s.Set(b.KeyAt(k), b.codec.Encode(v))
}

// LoadAlwaysAt reads the value of an always-present binding under k.
// Absence panics with *CorruptionError. Returns ErrNotAlwaysPresent if the
// binding was declared without WithAlwaysPresent.
func (b *Map[T, K]) LoadAlwaysAt(s kv.ReadStore, k K) (T, error) {
	var zero T
	if b.cap != CapAlwaysPresent {
		return zero, ErrNotAlwaysPresent
	}
	v, ok, err := b.LoadAt(s, k)
	if err != nil {
		return zero, err
	}
	if !ok {
		panic(&CorruptionError{Key: b.KeyAt(k), Err: ErrValueMissing})
	}
	return v, nil
}

// ClearAt removes the value stored under k. Clearing an absent slot
// succeeds. Returns ErrNotClearable if the binding was declared without
// WithClear.
func (b *Map[T, K]) ClearAt(s kv.Store, k K) error {
	if b.cap != CapClear {
		return ErrNotClearable
	}
	return s.Clear(b.KeyAt(k))
}
