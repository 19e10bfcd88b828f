package vmath

import "math"

// Tau is a full turn in radians
const Tau = 2 * math.Pi

// NormalizeAngle wraps a into (-π, π]
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, Tau)
	if a <= -math.Pi {
		a += Tau
	} else if a > math.Pi {
		a -= Tau
	}
	return a
}

// WrapHeading wraps a into [0, 2π)
func WrapHeading(a float64) float64 {
	a = math.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	if a >= Tau {
		a = 0
	}
	return a
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Step returns delta toward target sign: +d when target > v, -d otherwise
func Step(v, target, d float64) float64 {
	if target > v {
		return v + d
	}
	return v - d
}
