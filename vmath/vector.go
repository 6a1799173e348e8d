package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a value-type 2D vector used for position, velocity and direction
type Vec2 = mgl64.Vec2

// V2 builds a Vec2 from components
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Rotate rotates v counter-clockwise by angle radians (x toward y)
func Rotate(v Vec2, angle float64) Vec2 {
	return mgl64.Rotate2D(angle).Mul2x1(v)
}

// Sign returns the per-component sign of v, zero components map to +1
func Sign(v Vec2) Vec2 {
	return Vec2{SignOf(v[0]), SignOf(v[1])}
}

// Abs returns the per-component absolute value of v
func Abs(v Vec2) Vec2 {
	return Vec2{math.Abs(v[0]), math.Abs(v[1])}
}

// MulElem multiplies a and b component-wise
func MulElem(a, b Vec2) Vec2 {
	return Vec2{a[0] * b[0], a[1] * b[1]}
}

// Cross returns the z component of the 3D cross product of a and b
func Cross(a, b Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// CrossScalar returns ω × r for a scalar angular velocity, i.e. ω·(-r.y, r.x)
func CrossScalar(omega float64, r Vec2) Vec2 {
	return Vec2{-r[1] * omega, r[0] * omega}
}

// Perpendicular returns v rotated 90° counter-clockwise
func Perpendicular(v Vec2) Vec2 {
	return Vec2{-v[1], v[0]}
}

// FromAngle returns the unit vector at angle radians
func FromAngle(angle float64) Vec2 {
	return Rotate(Vec2{1, 0}, angle)
}
