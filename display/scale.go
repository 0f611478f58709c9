// Package display: short-scale magnitude formatting for the tier-2
// fallback. Kept local: the SI prefix formatters in the ecosystem emit "G"
// where this wire-visible format requires "B".

package display

import "fmt"

// magnitudes are the short-scale suffixes, largest first.
var magnitudes = []struct {
	factor float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// scale abbreviates a non-negative value with two-decimal precision and a
// short-scale suffix, e.g. 29986509429 -> "29.99 B". Values below one
// thousand are rendered without a suffix.
func scale(v float64) string {
	for _, m := range magnitudes {
		if v >= m.factor {
			return fmt.Sprintf("%.2f %s", v/m.factor, m.suffix)
		}
	}

	return fmt.Sprintf("%.2f", v)
}
