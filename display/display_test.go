// Package display_test locks in the three fallback tiers and their exact
// boundary renderings.
package display_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/widetime/core"
	"github.com/katalvlaran/widetime/display"
)

// fromBig is a test helper for counts wider than int64.
func fromBig(t *testing.T, v *big.Int) core.WideTime {
	t.Helper()
	ts, err := core.FromBig(v)
	require.NoError(t, err)

	return ts
}

func TestFormat_CalendarTier(t *testing.T) {
	require.Equal(t, "1970", display.Format(core.FromMillis(0), "%Y"))
	require.Equal(t, "1969", display.Format(core.FromMillis(-1), "%Y"))
	require.Equal(t, "2001-09-09", display.Format(core.FromMillis(1_000_000_000_000), "%Y-%m-%d"))
	require.Equal(t, "1800-01-01 00:00:00", display.Format(
		core.FromMillis(-5_364_662_400_000), "%Y-%m-%d %H:%M:%S"))
}

func TestFormat_YearEstimateTier(t *testing.T) {
	// 2^63 ms is one past the int64 range: the calendar tier fails and the
	// 356-day-year estimate takes over.
	future := fromBig(t, new(big.Int).Lsh(big.NewInt(1), 63))
	require.Equal(t, "299.87 M years from now", display.Format(future, "%Y"))

	// One past the int64 range on the negative side.
	past := fromBig(t, new(big.Int).Sub(big.NewInt(math.MinInt64), big.NewInt(1)))
	require.Equal(t, "299.87 M years ago", display.Format(past, "%Y"))

	// -(2^63)·100 lands in the billions tier.
	deepPast := fromBig(t, new(big.Int).Mul(big.NewInt(math.MinInt64), big.NewInt(100)))
	require.Equal(t, "29.99 B years ago", display.Format(deepPast, "%Y"))
}

func TestFormat_RawTier(t *testing.T) {
	// At the extremes of the domain the float path is abandoned entirely.
	require.Equal(t,
		"WideTime(-170141183460469231731687303715884105728) ms ago",
		display.Format(core.Min, "%Y"))
	require.Equal(t,
		"WideTime(170141183460469231731687303715884105727) ms from now",
		display.Format(core.Max, "%Y"))
}

func TestFormat_NeverFails(t *testing.T) {
	// Even a pattern-free call on an extreme value yields a usable string.
	for _, ts := range []core.WideTime{core.Min, core.FromMillis(0), core.Max} {
		require.NotEmpty(t, display.Format(ts, "%Y-%m-%d"))
	}
}
