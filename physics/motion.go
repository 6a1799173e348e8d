package physics

import (
	"math"

	"github.com/lixenwraith/pinball/vmath"
)

// RenderSegments returns the arc's drawing decomposition
// Collision never goes through these
func (c *Curve) RenderSegments() []Rectangle {
	return c.renderSegments
}

func (c *Curve) buildSegments(count int) []Rectangle {
	span := vmath.ArcSpan(c.AngleStart, c.AngleEnd)
	step := span / float64(count)
	// Chord of one step, padded by the width so joints overlap
	chord := 2*c.Radius*math.Sin(step/2) + c.Width/2

	segments := make([]Rectangle, count)
	for i := range segments {
		mid := c.AngleStart + step*(float64(i)+0.5)
		segments[i] = Rectangle{
			Position:   vmath.PointOnCircle(c.Center, c.Radius, mid),
			Rotation:   mid + math.Pi/2,
			Dimensions: vmath.V2(chord, c.Width),
			Color:      c.Color,
		}
	}
	return segments
}

// Position returns the flipper body's world center
func (f *Flipper) Position() vmath.Vec2 {
	return f.Origin.Add(vmath.Rotate(f.Offset, f.CurrentRotation))
}

// Range returns the rotation limits in ascending order
func (f *Flipper) Range() (lo, hi float64) {
	return math.Min(f.RotationMin, f.RotationMax), math.Max(f.RotationMin, f.RotationMax)
}

// Drive sets the angular velocity from the control state
// Held swings toward RotationMax, released swings back toward RotationMin
func (f *Flipper) Drive(held bool) {
	dir := vmath.SignOf(f.RotationMax - f.RotationMin)
	if held {
		f.AngularVelocity = f.Speed * dir
	} else {
		f.AngularVelocity = -f.Speed * dir
	}
}

// Step integrates rotation and clamps it to range
// A step the clamp fully absorbs stalls the flipper (AngularVelocity = 0)
func (f *Flipper) Step(dt float64) {
	lo, hi := f.Range()
	prev := f.CurrentRotation
	f.CurrentRotation = vmath.Clamp(prev+f.AngularVelocity*dt, lo, hi)
	if f.CurrentRotation == prev {
		f.AngularVelocity = 0
	}
}

// Body returns the flipper's current box for drawing
func (f *Flipper) Body() Rectangle {
	return Rectangle{
		Position:   f.Position(),
		Rotation:   f.CurrentRotation,
		Dimensions: f.Dimensions,
		Color:      f.Color,
	}
}

// Step advances the decorative spin and decays AccVelocity linearly toward zero
// Returns the angle swept this step, used for scoring
func (s *Spinner) Step(dt, decayRate float64) float64 {
	swept := math.Abs(s.AccVelocity) * dt
	s.TopDownRotation = vmath.NormalizeAngle(s.TopDownRotation + s.AccVelocity*dt)

	decay := decayRate * dt
	switch {
	case s.AccVelocity > decay:
		s.AccVelocity -= decay
	case s.AccVelocity < -decay:
		s.AccVelocity += decay
	default:
		s.AccVelocity = 0
	}
	return swept
}

// Kick adds angular velocity from a ball striking the paddle face
func (s *Spinner) Kick(normal vmath.Vec2, approachSpeed, factor float64) {
	axis := vmath.FromAngle(s.Rotation)
	s.AccVelocity += factor * approachSpeed * vmath.Cross(axis, normal)
}

// SurfaceVelocity returns the velocity of collider c's surface at the contact
// Flippers move as ω × r about their pivot; kickers push along the normal
func SurfaceVelocity(c Collider, contact Contact) vmath.Vec2 {
	switch c := c.(type) {
	case *Flipper:
		return vmath.CrossScalar(c.AngularVelocity, contact.Point.Sub(c.Origin))
	case *Rectangle:
		return contact.Normal.Mul(c.ImpactForce)
	case *Circle:
		return contact.Normal.Mul(c.ImpactForce)
	case *Curve, *Spinner, Empty:
		return vmath.Vec2{}
	default:
		panic("physics: unknown collider variant")
	}
}

// ImpactForce returns the kick strength of a collider, zero for non-kickers
func ImpactForce(c Collider) float64 {
	switch c := c.(type) {
	case *Rectangle:
		return c.ImpactForce
	case *Circle:
		return c.ImpactForce
	default:
		return 0
	}
}
