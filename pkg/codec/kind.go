// Package codec converts primitive newtype values to and from their
// canonical byte representation.
//
// Unsigned integers encode as fixed-width big-endian bytes, with the width
// fixed by the bit width of the wrapped primitive (1, 2, 4, 8, or 16 bytes).
// Strings encode as their raw UTF-8 bytes with no length prefix; the stored
// byte extent is the value. Decoding is strict: a length mismatch, a zero
// value for a non-zero kind, or invalid UTF-8 is an error, because bytes
// this layer wrote can never decode that way.
package codec

// Kind identifies a primitive kind. Its name participates in storage key
// prefixes, so the names are part of the persisted layout and must not
// change.
type Kind uint8

const (
	KindUint8 Kind = iota
	KindUint16
	KindUint32
	KindUint64
	KindUint128
	KindNonZeroUint8
	KindNonZeroUint16
	KindNonZeroUint32
	KindNonZeroUint64
	KindNonZeroUint128
	KindString
)

var kindNames = [...]string{
	KindUint8:          "u8",
	KindUint16:         "u16",
	KindUint32:         "u32",
	KindUint64:         "u64",
	KindUint128:        "u128",
	KindNonZeroUint8:   "non_zero_u8",
	KindNonZeroUint16:  "non_zero_u16",
	KindNonZeroUint32:  "non_zero_u32",
	KindNonZeroUint64:  "non_zero_u64",
	KindNonZeroUint128: "non_zero_u128",
	KindString:         "string",
}

var kindWidths = [...]int{
	KindUint8:          1,
	KindUint16:         2,
	KindUint32:         4,
	KindUint64:         8,
	KindUint128:        16,
	KindNonZeroUint8:   1,
	KindNonZeroUint16:  2,
	KindNonZeroUint32:  4,
	KindNonZeroUint64:  8,
	KindNonZeroUint128: 16,
	KindString:         0,
}

// String returns the kind name as it appears in storage key prefixes.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Width returns the encoded byte width for integer kinds, or 0 for
// KindString, whose encoded length is the string's own byte length.
func (k Kind) Width() int {
	if int(k) < len(kindWidths) {
		return kindWidths[k]
	}
	return 0
}

// NonZero reports whether k carries the non-zero refinement.
func (k Kind) NonZero() bool {
	return k >= KindNonZeroUint8 && k <= KindNonZeroUint128
}
