package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/v26-solutions/bindkv/pkg/newtype"
)

// Decode errors. Any of these surfacing from bytes that this layer itself
// wrote means the store is corrupt or the storage port broke its contract.
var (
	ErrLength      = errors.New("encoded value has wrong length")
	ErrZeroValue   = errors.New("non-zero kind decoded to zero")
	ErrInvalidUTF8 = errors.New("stored bytes are not valid UTF-8")
)

// Codec encodes and decodes one newtype's wrapped primitive. Both directions
// are pure; neither touches storage.
type Codec[T any] interface {
	// Kind identifies the primitive kind this codec handles.
	Kind() Kind

	// Encode returns the canonical byte representation of v.
	Encode(v T) []byte

	// Decode parses b back into a value. It fails only on input this
	// codec could not have produced.
	Decode(b []byte) (T, error)
}

// Uint returns the codec for a plain unsigned integer newtype. The encoded
// width follows the bit width of T's underlying type.
func Uint[T newtype.Unsigned]() Codec[T] {
	return uintCodec[T]{kind: uintKind[T](false)}
}

// NonZeroUint returns the codec for a non-zero unsigned integer newtype.
// Decoding a zero fails; Encode trusts the caller, since non-zero newtypes
// are built through checked constructors.
func NonZeroUint[T newtype.Unsigned]() Codec[T] {
	return uintCodec[T]{kind: uintKind[T](true)}
}

// Uint128 returns the codec for a 128-bit unsigned integer newtype.
func Uint128[T newtype.Unsigned128]() Codec[T] {
	return u128Codec[T]{kind: KindUint128}
}

// NonZeroUint128 returns the codec for a non-zero 128-bit newtype.
func NonZeroUint128[T newtype.Unsigned128]() Codec[T] {
	return u128Codec[T]{kind: KindNonZeroUint128}
}

// String returns the codec for a string newtype.
func String[T newtype.String]() Codec[T] {
	return stringCodec[T]{}
}

// uintKind maps T's underlying integer width to the matching Kind.
func uintKind[T newtype.Unsigned](nonZero bool) Kind {
	var zero T
	var k Kind
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Uint8:
		k = KindUint8
	case reflect.Uint16:
		k = KindUint16
	case reflect.Uint32:
		k = KindUint32
	case reflect.Uint64:
		k = KindUint64
	default:
		// Unreachable: the Unsigned constraint admits no other kinds.
		panic(fmt.Sprintf("codec: unsupported integer type %T", zero))
	}
	if nonZero {
		k += KindNonZeroUint8 - KindUint8
	}
	return k
}

type uintCodec[T newtype.Unsigned] struct {
	kind Kind
}

func (c uintCodec[T]) Kind() Kind { return c.kind }

func (c uintCodec[T]) Encode(v T) []byte {
	var full [8]byte
	binary.BigEndian.PutUint64(full[:], uint64(v))
	out := make([]byte, c.kind.Width())
	copy(out, full[8-c.kind.Width():])
	return out
}

func (c uintCodec[T]) Decode(b []byte) (T, error) {
	var zero T
	if len(b) != c.kind.Width() {
		return zero, fmt.Errorf("%w: %s wants %d bytes, got %d", ErrLength, c.kind, c.kind.Width(), len(b))
	}
	var full [8]byte
	copy(full[8-len(b):], b)
	u := binary.BigEndian.Uint64(full[:])
	if c.kind.NonZero() && u == 0 {
		return zero, fmt.Errorf("%w: %s", ErrZeroValue, c.kind)
	}
	return T(u), nil
}

type u128Codec[T newtype.Unsigned128] struct {
	kind Kind
}

func (c u128Codec[T]) Kind() Kind { return c.kind }

func (c u128Codec[T]) Encode(v T) []byte {
	u := newtype.U128(v)
	out := make([]byte, 16)
	binary.BigEndian.PutUint64(out[:8], u.Hi)
	binary.BigEndian.PutUint64(out[8:], u.Lo)
	return out
}

func (c u128Codec[T]) Decode(b []byte) (T, error) {
	var zero T
	if len(b) != 16 {
		return zero, fmt.Errorf("%w: %s wants 16 bytes, got %d", ErrLength, c.kind, len(b))
	}
	u := newtype.U128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
	if c.kind.NonZero() && u.IsZero() {
		return zero, fmt.Errorf("%w: %s", ErrZeroValue, c.kind)
	}
	return T(u), nil
}

type stringCodec[T newtype.String] struct{}

func (stringCodec[T]) Kind() Kind { return KindString }

func (stringCodec[T]) Encode(v T) []byte {
	return []byte(v)
}

func (stringCodec[T]) Decode(b []byte) (T, error) {
	if !utf8.Valid(b) {
		var zero T
		return zero, ErrInvalidUTF8
	}
	return T(b), nil
}
