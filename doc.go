// Package widetime is a tiny toolkit for 128-bit timestamps that sort as
// strings — milliseconds since the Unix epoch, wide enough for geological
// and astronomical offsets in either direction.
//
// 🚀 What is widetime?
//
//	A small library that brings together:
//		• WideTime: an immutable 128-bit signed millisecond offset from the epoch
//		• Lexical codecs: hex, base32hex, geohash and a 64-symbol alphabet,
//		  all fixed-width, all order-preserving under plain string comparison
//		• Display fallbacks: calendar rendering that degrades gracefully to
//		  magnitude estimates and finally to the raw value
//
// ✨ Why choose widetime?
//
//   - Sortable keys – every encoding is fixed-width and order-preserving,
//     so encoded timestamps collate correctly in any plain string index
//   - Full range – the entire signed 128-bit domain is legal; nothing is
//     rejected at construction and nothing silently wraps
//   - Pure values – WideTime is comparable, hashable, and freely shareable
//     across goroutines without synchronization
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — the WideTime value type, constructors & calendar bridging
//	lexical/ — the order-preserving textual codecs (the wire formats)
//	display/ — best-effort human rendering with graceful fallback tiers
//
// The subpackages never reach into each other's internals: core owns the
// value, lexical owns the wire form, display owns the human form.
//
// Quick tour:
//
//	ts := core.FromMillis(100)
//	key := lexical.Hex.Encode(ts)       // "80000000000000000000000000000064"
//	back, _ := lexical.Hex.Decode(key)  // back == ts
//	label := display.Format(ts, "%Y-%m-%d")
//
// Dive into each package's docs for the encoding tables, the ordering
// contract, and the display fallback tiers.
//
//	go get github.com/katalvlaran/widetime
package widetime
