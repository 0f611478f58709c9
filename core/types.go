// SPDX-License-Identifier: MIT
// Package core defines WideTime, an immutable 128-bit signed timestamp
// counting milliseconds relative to the Unix epoch (1970-01-01T00:00:00 UTC).
//
// The full signed 128-bit range is legal: no constructor rejects a value.
// A WideTime is a plain comparable value — equality, ordering, and hashing
// are structural over the millisecond count, and values may be shared across
// goroutines without synchronization.
//
// This file declares WideTime, its sentinel errors, the package constants,
// and the constructors. Accessors and ordering live in methods.go.
//
// Errors:
//
//	ErrRange      - the value does not fit a 64-bit signed millisecond count.
//	ErrConversion - a 64-bit millisecond count could not be turned into a
//	                calendar instant.
package core

import (
	"errors"
	"math/big"
	"time"

	"lukechampine.com/uint128"
)

// Sentinel errors for WideTime narrowing and calendar bridging.
var (
	// ErrRange indicates a value outside the representable range of the
	// requested narrower type.
	ErrRange = errors.New("core: value outside representable range")

	// ErrConversion indicates a millisecond count the calendar layer could
	// not turn into a valid instant.
	ErrConversion = errors.New("core: millisecond value not representable as a calendar instant")
)

// signBit is the two's-complement sign position of the 128-bit count.
var signBit = uint128.New(0, 1<<63)

// wrapModulus is 2^128, the bridge between the unsigned bit pattern held in
// a uint128 and the signed value it denotes.
var wrapModulus = new(big.Int).Lsh(big.NewInt(1), 128)

// minBig and maxBig bound the signed 128-bit domain for FromBig.
var (
	minBig = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxBig = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// WideTime is a millisecond offset from the Unix epoch, held as a signed
// 128-bit count in two's-complement form.
//
// The zero value is the epoch itself. WideTime is comparable: == and map
// keys behave structurally over the count.
type WideTime struct {
	// bits holds the two's-complement millisecond count.
	bits uint128.Uint128
}

// Min and Max are the extremes of the signed 128-bit millisecond domain.
var (
	Min = WideTime{bits: uint128.New(0, 1<<63)}
	Max = WideTime{bits: uint128.New(^uint64(0), 1<<63-1)}
)

// FromMillis widens a 64-bit signed millisecond count with sign extension.
// Always succeeds; 32-bit callers convert at the call site.
func FromMillis(n int64) WideTime {
	var hi uint64
	if n < 0 {
		hi = ^uint64(0)
	}

	return WideTime{bits: uint128.New(uint64(n), hi)}
}

// FromBits wraps an exact signed 128-bit pattern given as two's-complement
// halves (hi carries the sign bit). Always succeeds.
func FromBits(hi, lo uint64) WideTime {
	return WideTime{bits: uint128.New(lo, hi)}
}

// FromBig converts an arbitrary-precision millisecond count.
// Returns ErrRange when v lies outside the signed 128-bit domain.
func FromBig(v *big.Int) (WideTime, error) {
	if v.Cmp(minBig) < 0 || v.Cmp(maxBig) > 0 {
		return WideTime{}, ErrRange
	}
	// Reduce into [0, 2^128) to obtain the two's-complement pattern.
	u := new(big.Int).Mod(v, wrapModulus)

	return WideTime{bits: uint128.FromBig(u)}, nil
}

// FromTime projects a calendar instant onto its millisecond count.
// Sub-millisecond precision is floored away, never rounded. Always succeeds:
// any instant time.Time can count in int64 milliseconds fits with room to
// spare in 128 bits.
func FromTime(t time.Time) WideTime {
	return FromMillis(t.UnixMilli())
}

// Now captures the current UTC instant at millisecond precision.
func Now() WideTime {
	return FromTime(time.Now())
}
