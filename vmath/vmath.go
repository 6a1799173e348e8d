// Package vmath holds the 2D float geometry shared by every shape transform.
// Vectors are mgl64.Vec2 values; helpers here cover what mgl64 leaves out
// (component-wise ops, 2D cross products, angle wrapping).
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TwoPi is one full turn in radians
const TwoPi = 2 * math.Pi

// Epsilon is the tolerance used for geometric comparisons
const Epsilon = 1e-9

// IsFinite reports whether f is neither NaN nor ±Inf
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsFiniteVec reports whether both components are finite
func IsFiniteVec(v Vec2) bool {
	return IsFinite(v[0]) && IsFinite(v[1])
}

// Clamp limits f to [lo, hi]
func Clamp(f, lo, hi float64) float64 {
	return mgl64.Clamp(f, lo, hi)
}

// SignOf returns 1 for positive or +0, -1 for negative or -0
func SignOf(f float64) float64 {
	return math.Copysign(1, f)
}
