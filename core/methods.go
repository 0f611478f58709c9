// Package core: WideTime accessors, ordering, and calendar bridging.
//
// All methods are pure: they read the receiver's bits and return a new value
// or a derived representation. The only fallible operations are the two
// narrowing accessors, Millis and Time.

package core

import (
	"fmt"
	"math"
	"math/big"
	"time"

	"lukechampine.com/uint128"
)

// Millis narrows the count to a 64-bit signed millisecond value.
// Returns ErrRange when the count lies outside the int64 domain.
// Complexity: O(1).
func (t WideTime) Millis() (int64, error) {
	switch t.bits.Hi {
	case 0:
		// Non-negative values fit iff the high limb is clear and the low
		// limb stays below 2^63.
		if t.bits.Lo <= math.MaxInt64 {
			return int64(t.bits.Lo), nil
		}
	case ^uint64(0):
		// Negative values fit iff the high limb is all ones and the low
		// limb carries the sign bit (i.e. the value is >= -2^63).
		if t.bits.Lo >= 1<<63 {
			return int64(t.bits.Lo), nil
		}
	}

	return 0, ErrRange
}

// Time converts the count to a UTC calendar instant at millisecond
// precision. The count is first narrowed via Millis (ErrRange on failure),
// then split with floor division so that pre-epoch values still yield a
// non-negative sub-second component. Returns ErrConversion if the calendar
// layer cannot reproduce the count exactly.
// Complexity: O(1).
func (t WideTime) Time() (time.Time, error) {
	ms, err := t.Millis()
	if err != nil {
		return time.Time{}, err
	}

	// Floor division: -1ms must become (-1s, 999ms), not (0s, -1ms).
	sec, rem := ms/1000, ms%1000
	if rem < 0 {
		sec--
		rem += 1000
	}

	inst := time.Unix(sec, rem*int64(time.Millisecond)).UTC()
	if inst.UnixMilli() != ms {
		return time.Time{}, ErrConversion
	}

	return inst, nil
}

// Compare orders two counts as signed 128-bit integers, returning -1, 0,
// or +1. Relocating the sign bit turns two's-complement order into the
// unsigned limb order uint128 compares by.
// Complexity: O(1).
func (t WideTime) Compare(o WideTime) int {
	return t.bits.Xor(signBit).Cmp(o.bits.Xor(signBit))
}

// Before reports whether t is strictly earlier than o.
func (t WideTime) Before(o WideTime) bool { return t.Compare(o) < 0 }

// After reports whether t is strictly later than o.
func (t WideTime) After(o WideTime) bool { return t.Compare(o) > 0 }

// Sign returns -1 for pre-epoch counts, 0 for the epoch, +1 otherwise.
func (t WideTime) Sign() int {
	switch {
	case t.bits.Hi&(1<<63) != 0:
		return -1
	case t.bits.IsZero():
		return 0
	default:
		return 1
	}
}

// Bits returns the two's-complement halves of the count (hi carries the
// sign bit). This is the seam the lexical codecs are built on.
func (t WideTime) Bits() (hi, lo uint64) {
	return t.bits.Hi, t.bits.Lo
}

// Big returns the exact signed millisecond count as a fresh big.Int.
func (t WideTime) Big() *big.Int {
	v := t.bits.Big()
	if t.bits.Hi&(1<<63) != 0 {
		v.Sub(v, wrapModulus)
	}

	return v
}

// Float64 returns the signed millisecond count as a float64 approximation.
// Exact up to 2^53; beyond that the nearest representable float is returned.
func (t WideTime) Float64() float64 {
	u := t.bits
	neg := u.Hi&(1<<63) != 0
	if neg {
		// Two's-complement negate; the minimum value maps onto itself,
		// whose magnitude 2^127 is still exact in float64.
		u = uint128.Zero.SubWrap(u)
	}

	f := float64(u.Hi)*0x1p64 + float64(u.Lo)
	if neg {
		f = -f
	}

	return f
}

// String renders the count in its debug form, e.g. "WideTime(-100)".
func (t WideTime) String() string {
	return fmt.Sprintf("WideTime(%s)", t.Big())
}
