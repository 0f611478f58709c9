// SPDX-License-Identifier: MIT
// Package lexical implements order-preserving textual encodings of
// core.WideTime values.
//
// Every encoding shares one transform: the signed 128-bit millisecond count
// is XOR-ed with 1<<127 (relocating the sign bit so that two's-complement
// order becomes unsigned order), serialized as exactly 16 big-endian bytes,
// and mapped through an alphabet whose symbol order matches its sort order.
// The result is a fixed-width string for which
//
//	a.Compare(b) < 0  ⇔  Encode(a) < Encode(b)
//
// under plain byte-wise string comparison. The transform is self-inverse, so
// Decode(Encode(t)) == t across the full signed 128-bit domain.
//
// The alphabets are wire formats: their symbol tables, including the exact
// symbol order, must never change. Decode accepts exactly the image of
// Encode — any other input, including non-canonical spellings of a valid
// payload, fails with ErrDecode.
//
// Errors:
//
//	ErrDecode - the input is not a canonical fixed-width encoding:
//	            foreign symbol, truncated input, or wrong payload length.
package lexical

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/katalvlaran/widetime/core"
)

// ErrDecode indicates input that is not a canonical encoding of a 16-byte
// payload in the chosen alphabet. It is never recovered from silently: a
// partially decoded or zero-filled value would break the round-trip and
// ordering contracts.
var ErrDecode = errors.New("lexical: malformed encoding")

// payloadLen is the serialized width of the sign-flipped count: 16 bytes,
// most significant first, regardless of magnitude. Variable-length forms are
// forbidden because a shorter string would sort before a longer one
// irrespective of value.
const payloadLen = 16

// Symbol tables. Each is ordered so that the symbol's byte value ranks
// exactly like the group of bits it encodes.
const (
	hexSymbols       = "0123456789abcdef"
	base32HexSymbols = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	geohashSymbols   = "0123456789bcdefghjkmnpqrstuvwxyz"
	lexical64Symbols = "0123456789=ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"
)

// symbolCoder is the per-alphabet byte<->string mapping. The stdlib RFC 4648
// encoders and the hex adapter below all satisfy it.
type symbolCoder interface {
	EncodeToString(src []byte) string
	DecodeString(s string) ([]byte, error)
}

// hexCoder adapts package hex, which exposes functions rather than methods.
type hexCoder struct{}

func (hexCoder) EncodeToString(src []byte) string      { return hex.EncodeToString(src) }
func (hexCoder) DecodeString(s string) ([]byte, error) { return hex.DecodeString(s) }

// Alphabet describes one lexical encoding: a name, the ordered symbol table,
// the fixed encoded width, and the coder that packs bits into symbols.
// All four instances share Encode/Decode; only the table differs.
type Alphabet struct {
	name       string
	symbols    string
	encodedLen int
	coder      symbolCoder
}

// The four wire formats. The bespoke tables (Geohash, Lexical64) are
// reproduced verbatim; permuting a single symbol is a format break.
var (
	// Hex encodes 4 bits per symbol; ASCII digit/letter order already
	// matches nibble order.
	Hex = &Alphabet{name: "hex", symbols: hexSymbols, encodedLen: 32, coder: hexCoder{}}

	// Base32Hex is RFC 4648 base32hex without padding. The "hex" variant is
	// required because its alphabet (0-9 then A-V) is numerically ordered;
	// the standard base32 alphabet is not. Padding is never emitted: the
	// payload width is constant, so the unpadded length is too.
	Base32Hex = &Alphabet{
		name:       "base32hex",
		symbols:    base32HexSymbols,
		encodedLen: 26,
		coder:      base32.HexEncoding.WithPadding(base32.NoPadding),
	}

	// Geohash packs 5 bits per symbol through the geohash table: digits,
	// then lowercase letters skipping a, i, l, o.
	Geohash = &Alphabet{
		name:       "geohash",
		symbols:    geohashSymbols,
		encodedLen: 26,
		coder:      base32.NewEncoding(geohashSymbols).WithPadding(base32.NoPadding),
	}

	// Lexical64 packs 6 bits per symbol through a 64-symbol table chosen for
	// its byte order: digits, '=', uppercase, '_', lowercase. The '=' and
	// '_' sit precisely in the gaps between the ASCII digit/letter-case
	// groups, which is what keeps symbol rank equal to byte rank.
	Lexical64 = &Alphabet{
		name:       "lexical64",
		symbols:    lexical64Symbols,
		encodedLen: 22,
		coder:      base64.NewEncoding(lexical64Symbols).WithPadding(base64.NoPadding),
	}
)

// Alphabets returns the four wire formats in declaration order.
func Alphabets() []*Alphabet {
	return []*Alphabet{Hex, Base32Hex, Geohash, Lexical64}
}

// Name returns the alphabet's short identifier, e.g. "base32hex".
func (a *Alphabet) Name() string { return a.name }

// Symbols returns the ordered symbol table.
func (a *Alphabet) Symbols() string { return a.symbols }

// EncodedLen returns the fixed width of every encoded string.
func (a *Alphabet) EncodedLen() int { return a.encodedLen }

// Encode renders t as a fixed-width string over the alphabet. The result
// compares byte-wise exactly as the underlying counts compare numerically.
// Complexity: O(1).
func (a *Alphabet) Encode(t core.WideTime) string {
	hi, lo := t.Bits()

	// Relocate the sign bit, then serialize big-endian so byte order
	// follows numeric order.
	var buf [payloadLen]byte
	binary.BigEndian.PutUint64(buf[:8], hi^(1<<63))
	binary.BigEndian.PutUint64(buf[8:], lo)

	return a.coder.EncodeToString(buf[:])
}

// Decode parses a string produced by Encode. It validates the alphabet's
// own rules, requires exactly 16 recovered bytes, and rejects non-canonical
// spellings (decode accepts exactly the image of Encode). Every failure is
// reported through ErrDecode.
// Complexity: O(1).
func (a *Alphabet) Decode(s string) (core.WideTime, error) {
	raw, err := a.coder.DecodeString(s)
	if err != nil {
		return core.WideTime{}, fmt.Errorf("%w: %s: %v", ErrDecode, a.name, err)
	}
	if len(raw) != payloadLen {
		return core.WideTime{}, fmt.Errorf("%w: %s: payload is %d bytes, want %d", ErrDecode, a.name, len(raw), payloadLen)
	}
	// Canonical-form check: catches residual-bit noise and case-folded
	// spellings the underlying coder tolerates on decode.
	if a.coder.EncodeToString(raw) != s {
		return core.WideTime{}, fmt.Errorf("%w: %s: non-canonical form %q", ErrDecode, a.name, s)
	}

	hi := binary.BigEndian.Uint64(raw[:8]) ^ (1 << 63)
	lo := binary.BigEndian.Uint64(raw[8:])

	return core.FromBits(hi, lo), nil
}
