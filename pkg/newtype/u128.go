package newtype

import (
	"math/bits"
	"strconv"
)

// U128 is a 128-bit unsigned integer stored as two 64-bit halves,
// most-significant half first. It is the wrapped primitive for 128-bit
// newtypes; Go has no native uint128.
type U128 struct {
	Hi, Lo uint64
}

// U128From64 widens a 64-bit value to 128 bits.
func U128From64(v uint64) U128 {
	return U128{Lo: v}
}

// IsZero reports whether u is zero.
func (u U128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp compares u and v numerically, returning -1, 0, or 1.
func (u U128) Cmp(v U128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// String returns the canonical decimal rendering of u. This is also the
// textual form used when a 128-bit newtype participates in a map key.
func (u U128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	// Peel off decimal digits least-significant first. 2^128-1 has 39 digits.
	var buf [39]byte
	i := len(buf)
	for !u.IsZero() {
		var digit uint64
		u, digit = u.divmod10()
		i--
		buf[i] = byte('0' + digit)
	}
	return string(buf[i:])
}

// divmod10 returns u/10 and u%10.
func (u U128) divmod10() (U128, uint64) {
	hiQ := u.Hi / 10
	hiR := u.Hi % 10
	loQ, loR := bits.Div64(hiR, u.Lo, 10)
	return U128{Hi: hiQ, Lo: loQ}, loR
}
