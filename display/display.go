// SPDX-License-Identifier: MIT
// Package display renders core.WideTime values for humans.
//
// Format never fails. Display is best-effort by design, so every internal
// failure degrades to a coarser tier instead of propagating:
//
//	Tier 1 — the count fits the calendar: render with the strftime pattern.
//	Tier 2 — too large for the calendar: an approximate year count with a
//	         magnitude suffix, e.g. "299.87 M years from now".
//	Tier 3 — too large even for float arithmetic: the raw debug form,
//	         e.g. "WideTime(-1701…5728) ms ago".
//
// The year estimate divides by a fixed 356-day year. That constant is
// knowingly rough: it labels magnitudes far outside any calendar, where
// order-of-magnitude is all the reader can use.
package display

import (
	"fmt"
	"math"

	timefmt "github.com/itchyny/timefmt-go"

	"github.com/katalvlaran/widetime/core"
)

const (
	// msPerYear is the fixed 356-day year used for the tier-2 estimate.
	msPerYear = 356 * 24 * 60 * 60 * 1000

	// yearCeiling bounds tier 2. At 1e12 years and beyond the float64 path
	// is no longer trusted, so tier 3 reports the raw count instead.
	yearCeiling = 1e12
)

// Sign suffixes for the fallback tiers.
const (
	suffixPast   = "ago"
	suffixFuture = "from now"
)

// Format renders t using a strftime-style pattern ("%Y", "%m", "%d", …)
// when the count is within calendar range, and falls back to a magnitude
// description otherwise. It never returns an error.
func Format(t core.WideTime, pattern string) string {
	if inst, err := t.Time(); err == nil {
		return timefmt.Format(inst, pattern)
	}

	suffix := suffixFuture
	if t.Sign() < 0 {
		suffix = suffixPast
	}

	years := math.Abs(t.Float64() / msPerYear)
	if years < yearCeiling {
		return fmt.Sprintf("%s years %s", scale(years), suffix)
	}

	return fmt.Sprintf("%s ms %s", t, suffix)
}
