package physics

import (
	"math"

	"github.com/lixenwraith/pinball/vmath"
)

// Contact tests a static disc
// A ball exactly on the center reports no contact since the normal is undefined
func (c *Circle) Contact(ball *DynamicBody) (Contact, bool) {
	d := ball.Position.Sub(c.Position)
	reach := c.Radius + ball.Radius
	distSq := d.LenSqr()
	if distSq > reach*reach {
		return Contact{}, false
	}
	if distSq == 0 {
		return Contact{}, false
	}
	dist := math.Sqrt(distSq)
	normal := d.Mul(1 / dist)
	return Contact{
		Point:       c.Position.Add(normal.Mul(c.Radius)),
		Normal:      normal,
		Penetration: reach - dist,
	}, true
}

// Contact tests the oriented box
func (r *Rectangle) Contact(ball *DynamicBody) (Contact, bool) {
	return OrientedBoxContact(r.Position, r.Dimensions, r.Rotation, ball)
}

// Contact tests the flipper at its current rotation
func (f *Flipper) Contact(ball *DynamicBody) (Contact, bool) {
	return OrientedBoxContact(f.Position(), f.Dimensions, f.CurrentRotation, ball)
}

// Contact tests the spinner as a static box; the top-down spin is decorative
func (s *Spinner) Contact(ball *DynamicBody) (Contact, bool) {
	return OrientedBoxContact(s.Position, s.Dimensions, s.Rotation, ball)
}

// Contact never reports a contact
func (Empty) Contact(*DynamicBody) (Contact, bool) {
	return Contact{}, false
}

// Contact tests the arc analytically
// Inside the angular span the arc behaves like its full circle line; outside it
// the nearer endpoint acts as a point cap
func (c *Curve) Contact(ball *DynamicBody) (Contact, bool) {
	d := ball.Position.Sub(c.Center)
	dist := d.Len()
	if dist > c.Radius+ball.Radius || dist < c.Radius-ball.Radius {
		return Contact{}, false
	}
	if dist == 0 {
		return Contact{}, false
	}

	if c.InSpan(vmath.AngleOf(d)) {
		radial := d.Mul(1 / dist)
		point := c.Center.Add(radial.Mul(c.Radius))
		normal := radial
		if dist < c.Radius {
			normal = radial.Mul(-1)
		}
		return Contact{
			Point:       point,
			Normal:      normal,
			Penetration: ball.Radius - math.Abs(dist-c.Radius),
		}, true
	}

	start, end := c.Endpoints()
	nearest := start
	if ball.Position.Sub(end).LenSqr() < ball.Position.Sub(start).LenSqr() {
		nearest = end
	}
	return PointContact(nearest, ball)
}

// InSpan reports whether angle lies on the arc
func (c *Curve) InSpan(angle float64) bool {
	return vmath.AngleInSpan(angle, c.AngleStart, c.AngleEnd)
}

// Endpoints returns the world positions of the arc's start and end
func (c *Curve) Endpoints() (start, end vmath.Vec2) {
	return vmath.PointOnCircle(c.Center, c.Radius, c.AngleStart),
		vmath.PointOnCircle(c.Center, c.Radius, c.AngleEnd)
}

// PointContact tests the ball against a zero-radius point
func PointContact(point vmath.Vec2, ball *DynamicBody) (Contact, bool) {
	d := ball.Position.Sub(point)
	distSq := d.LenSqr()
	if distSq > ball.Radius*ball.Radius || distSq == 0 {
		return Contact{}, false
	}
	dist := math.Sqrt(distSq)
	return Contact{
		Point:       point,
		Normal:      d.Mul(1 / dist),
		Penetration: ball.Radius - dist,
	}, true
}

// OrientedBoxContact tests a box centered at position with the given rotation
// The ball is moved into the box frame, tested, and the result rotated back
func OrientedBoxContact(position, dimensions vmath.Vec2, rotation float64, ball *DynamicBody) (Contact, bool) {
	local := vmath.Rotate(ball.Position.Sub(position), -rotation)
	c, ok := BoxContact(local, dimensions.Mul(0.5), ball.Radius)
	if !ok {
		return Contact{}, false
	}
	return Contact{
		Point:       vmath.Rotate(c.Point, rotation).Add(position),
		Normal:      vmath.Rotate(c.Normal, rotation),
		Penetration: c.Penetration,
	}, true
}

// BoxBranch names which feature of an axis-aligned box a contact resolved against
type BoxBranch uint8

const (
	BranchNone BoxBranch = iota
	BranchCorner
	BranchHorizontalFace // left or right face, normal along x
	BranchVerticalFace   // top or bottom face, normal along y
)

// BoxContact tests a disc at local position against an origin-centered box
// with half extents half, all in the box frame
func BoxContact(local, half vmath.Vec2, radius float64) (Contact, bool) {
	c, branch := boxContact(local, half, radius)
	return c, branch != BranchNone
}

// ClassifyBoxContact reports which branch BoxContact takes
func ClassifyBoxContact(local, half vmath.Vec2, radius float64) BoxBranch {
	_, branch := boxContact(local, half, radius)
	return branch
}

func boxContact(local, half vmath.Vec2, radius float64) (Contact, BoxBranch) {
	outside := vmath.Abs(local).Sub(half)
	if outside[0] > radius && outside[1] > radius {
		return Contact{}, BranchNone
	}
	sign := vmath.Sign(local)

	if outside[0] > 0 && outside[1] > 0 {
		dist := outside.Len()
		if dist > radius {
			return Contact{}, BranchNone
		}
		return Contact{
			Point:       vmath.MulElem(half, sign),
			Normal:      vmath.MulElem(sign, outside.Mul(1/dist)),
			Penetration: radius - dist,
		}, BranchCorner
	}

	if outside[1] < outside[0] {
		// One axis clear of the radius while the other is inside the slab
		if outside[0] > radius {
			return Contact{}, BranchNone
		}
		normal := vmath.Vec2{sign[0], 0}
		return Contact{
			Point:       vmath.Vec2{half[0] * normal[0], local[1]},
			Normal:      normal,
			Penetration: radius - outside[0],
		}, BranchHorizontalFace
	}

	if outside[1] > radius {
		return Contact{}, BranchNone
	}
	normal := vmath.Vec2{0, sign[1]}
	return Contact{
		Point:       vmath.Vec2{local[0], half[1] * normal[1]},
		Normal:      normal,
		Penetration: radius - outside[1],
	}, BranchVerticalFace
}
