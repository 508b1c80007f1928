package vmath

// Clamp bounds v to [lo, hi]
// A degenerate range (hi < lo) collapses to lo, so callers computing
// hi as "virtual - visible" never produce a negative result
func Clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpan bounds a window start so [start, start+span) stays inside [0, total)
func ClampSpan(start, span, total int) int {
	return Clamp(start, 0, total-span)
}

// NonNegative returns v, or 0 when v is negative
func NonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
