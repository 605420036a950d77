// Package keys derives storage keys for declared bindings.
//
// Every binding owns a prefix built from its namespace, type name, and
// primitive kind:
//
//	{namespace}::{type_name}_{kind}
//
// A singleton binding uses the prefix itself as its one key. A map binding
// appends "::" and the canonical text of a Key Value, so the same declared
// type with two different Key Values occupies two different slots:
//
//	app::bar_string_string::0:1
//
// Derivation is deterministic: the same (prefix, Key Value) always produces
// the same bytes, and two bindings never collide because the prefix embeds
// the full static identity.
package keys

import (
	"strconv"

	"github.com/v26-solutions/bindkv/pkg/codec"
	"github.com/v26-solutions/bindkv/pkg/newtype"
)

// Separators in derived keys. PrefixSep joins the identity segments and the
// Key Value suffix; TupleSep joins the components of a tuple Key Value.
const (
	PrefixSep = "::"
	TupleSep  = ":"
)

// Component is one scalar of a map binding's Key Value, rendered in its
// canonical textual form.
//
// A component's rendering must not itself contain TupleSep in a way that
// collides with another tuple's rendering: ("a:b") and ("a", "b") derive the
// same key. The integer adapters can never produce the separator; string
// components are the caller's responsibility. This constraint is documented,
// not runtime-checked.
type Component interface {
	// AppendKey appends the component's canonical text to dst.
	AppendKey(dst []byte) []byte
}

// Prefix returns the key prefix for a binding's static identity.
func Prefix(namespace, typeName string, kind codec.Kind) []byte {
	out := make([]byte, 0, len(namespace)+len(PrefixSep)+len(typeName)+1+len(kind.String()))
	out = append(out, namespace...)
	out = append(out, PrefixSep...)
	out = append(out, typeName...)
	out = append(out, '_')
	out = append(out, kind.String()...)
	return out
}

// Derive returns the full key for a map binding: prefix, PrefixSep, then the
// Key Value's canonical text.
func Derive(prefix []byte, kv Component) []byte {
	out := make([]byte, 0, len(prefix)+len(PrefixSep)+16)
	out = append(out, prefix...)
	out = append(out, PrefixSep...)
	return kv.AppendKey(out)
}

type uintComponent uint64

func (c uintComponent) AppendKey(dst []byte) []byte {
	return strconv.AppendUint(dst, uint64(c), 10)
}

// Uint renders an unsigned newtype as a decimal component.
func Uint[T newtype.Unsigned](v T) Component {
	return uintComponent(v)
}

type u128Component newtype.U128

func (c u128Component) AppendKey(dst []byte) []byte {
	return append(dst, newtype.U128(c).String()...)
}

// U128 renders a 128-bit newtype as a decimal component.
func U128[T newtype.Unsigned128](v T) Component {
	return u128Component(v)
}

type stringComponent string

func (c stringComponent) AppendKey(dst []byte) []byte {
	return append(dst, c...)
}

// String renders a string newtype as a component, verbatim.
func String[T newtype.String](v T) Component {
	return stringComponent(v)
}

type tuple []Component

func (t tuple) AppendKey(dst []byte) []byte {
	for i, c := range t {
		if i > 0 {
			dst = append(dst, TupleSep...)
		}
		dst = c.AppendKey(dst)
	}
	return dst
}

// Tuple composes components into an ordered tuple Key Value. Components are
// rendered in declared order, joined by TupleSep.
func Tuple(parts ...Component) Component {
	return tuple(parts)
}
