package vmath

import "math"

// NormalizeAngle wraps angle into [0, 2π)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a tiny negative can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleOf returns the direction of v in [0, 2π)
func AngleOf(v Vec2) float64 {
	return NormalizeAngle(math.Atan2(v[1], v[0]))
}

// AngleInSpan reports whether angle lies on the arc from start to end
// All three are wrapped first; start > end denotes a span crossing zero
// Equal endpoints are a full turn, as in ArcSpan
func AngleInSpan(angle, start, end float64) bool {
	a := NormalizeAngle(angle)
	s := NormalizeAngle(start)
	e := NormalizeAngle(end)
	if s == e {
		return true
	}
	if s < e {
		return a >= s && a <= e
	}
	return a >= s || a <= e
}

// ArcSpan returns the counter-clockwise sweep from start to end in (0, 2π]
// Equal endpoints are treated as a full turn
func ArcSpan(start, end float64) float64 {
	span := NormalizeAngle(end) - NormalizeAngle(start)
	if span <= 0 {
		span += TwoPi
	}
	return span
}

// PointOnCircle returns center + radius·(cos a, sin a)
func PointOnCircle(center Vec2, radius, angle float64) Vec2 {
	return center.Add(Vec2{math.Cos(angle), math.Sin(angle)}.Mul(radius))
}
