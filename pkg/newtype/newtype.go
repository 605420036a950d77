// Package newtype defines the primitive value kinds that user-declared
// newtypes wrap: fixed-width unsigned integers (including 128-bit), their
// non-zero refinements, and UTF-8 strings.
//
// A newtype is an ordinary Go defined type whose underlying type is one of
// the supported primitives, for example:
//
//	type UserID uint64
//	type Balance newtype.U128
//	type Region string
//
// The generic constraints in this package let the codec, key, and binding
// layers operate on any such type without reflection at call sites.
package newtype

// Unsigned matches any defined type whose underlying type is a fixed-width
// unsigned integer up to 64 bits. The platform-dependent uint and uintptr
// are deliberately excluded; encoded widths must be stable across builds.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Unsigned128 matches any defined type whose underlying type is the U128
// struct layout.
type Unsigned128 interface {
	~struct {
		Hi, Lo uint64
	}
}

// String matches any defined type whose underlying type is string.
//
// Go strings are immutable and share their backing array when copied, so
// string newtypes are cheap to pass and duplicate regardless of length.
type String interface {
	~string
}

// NonZero returns v unchanged with ok true, or ok false when v is zero.
// It is the checked constructor for non-zero integer newtypes.
func NonZero[T Unsigned](v T) (T, bool) {
	if v == 0 {
		var zero T
		return zero, false
	}
	return v, true
}

// NonZero128 is NonZero for 128-bit newtypes.
func NonZero128[T Unsigned128](v T) (T, bool) {
	if U128(v).IsZero() {
		var zero T
		return zero, false
	}
	return v, true
}

// Compare orders two unsigned newtypes of possibly different declared types
// by their unwrapped numeric values. It returns -1, 0, or 1.
//
// Cross-type comparison is always this explicit call; distinct newtypes never
// compare equal implicitly.
func Compare[A, B Unsigned](a A, b B) int {
	x, y := uint64(a), uint64(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two unsigned newtypes of possibly different declared
// types wrap the same numeric value.
func Equal[A, B Unsigned](a A, b B) bool {
	return uint64(a) == uint64(b)
}
