package barchart

import (
	"math"
	"strconv"
)

// minCeiling is the smallest axis ceiling ever used. Non-positive candidates
// are clamped here before any division or logarithm.
const minCeiling = 1e-6

// axisCeiling computes the data value that maps to the full plot height.
//
// Auto mode uses the dataset maximum; an empty or all-non-positive dataset
// yields 1 so a degenerate chart still has a valid scale. Manual mode uses
// the configured maximum. Either result is optionally rounded up to a nice
// number.
func axisCeiling(values []float64, cfg Config) float64 {
	var ceiling float64
	if cfg.AutoScale {
		for _, v := range values {
			if v > ceiling {
				ceiling = v
			}
		}
		if ceiling <= 0 {
			ceiling = 1
		}
	} else {
		ceiling = math.Max(minCeiling, cfg.YAxisMax)
	}
	if cfg.NiceScale {
		ceiling = NiceCeiling(ceiling)
	}
	return ceiling
}

// NiceCeiling rounds x up to a human-friendly axis maximum: the smallest
// value of the form {1, 2, 5, 10} × 10^k that is ≥ x. For example 47 → 50,
// 6 → 10, 130 → 200. Idempotent. Non-positive input is clamped to a tiny
// positive epsilon before the logarithm.
func NiceCeiling(x float64) float64 {
	if x < minCeiling {
		x = minCeiling
	}
	exp := math.Pow(10, math.Floor(math.Log10(x)))
	f := x / exp
	// The epsilon keeps already-nice values on their rung: x/exp for an exact
	// multiple can land a few ulps above it, which would otherwise bump 50 to
	// 100 and break idempotence.
	const eps = 1e-9
	switch {
	case f <= 1+eps:
		f = 1
	case f <= 2+eps:
		f = 2
	case f <= 5+eps:
		f = 5
	default:
		f = 10
	}
	return f * exp
}

// formatTickValue renders a tick's data value with magnitude suffixes:
// millions as "X.XM", thousands as "X.Xk", values ≥ 1 with one decimal,
// smaller values with up to three decimals.
func formatTickValue(v float64) string {
	switch {
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case v >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', 1, 64) + "k"
	case v >= 1:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		s := strconv.FormatFloat(v, 'f', 3, 64)
		// Trim trailing zeros ("0.250" → "0.25", "0.000" → "0").
		for len(s) > 0 && s[len(s)-1] == '0' {
			s = s[:len(s)-1]
		}
		if len(s) > 0 && s[len(s)-1] == '.' {
			s = s[:len(s)-1]
		}
		return s
	}
}
