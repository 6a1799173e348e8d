// Package physics implements the collision-and-response core: a closed set of
// collider shapes answering contact queries against the ball, and the ball's
// integration and impulse response.
package physics

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pinball/vmath"
)

// ColliderKind identifies a collider variant
type ColliderKind uint8

const (
	KindEmpty ColliderKind = iota
	KindRectangle
	KindCircle
	KindCurve
	KindFlipper
	KindSpinner
)

var kindNames = [...]string{
	KindEmpty:     "empty",
	KindRectangle: "rectangle",
	KindCircle:    "circle",
	KindCurve:     "curve",
	KindFlipper:   "flipper",
	KindSpinner:   "spinner",
}

func (k ColliderKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Contact is the result of a contact query
// Normal is unit length and points from the surface toward the ball; Penetration >= 0
type Contact struct {
	Point       vmath.Vec2
	Normal      vmath.Vec2
	Penetration float64
}

// Collider is the closed variant set of static and semi-dynamic shapes
// Variants: *Rectangle, *Circle, *Curve, *Flipper, *Spinner, Empty
type Collider interface {
	Kind() ColliderKind
	// Contact queries the shape against the ball's current disc
	Contact(ball *DynamicBody) (Contact, bool)
	sealed()
}

// Rectangle is a static oriented box; a positive ImpactForce makes it a kicker
type Rectangle struct {
	Position    vmath.Vec2
	Rotation    float64
	Dimensions  vmath.Vec2
	Color       tcell.Color
	ImpactForce float64
}

// Circle is a static disc; a positive ImpactForce makes it a bumper
type Circle struct {
	Position    vmath.Vec2
	Radius      float64
	Color       tcell.Color
	ImpactForce float64
}

// Curve is a thin circular arc from AngleStart counter-clockwise to AngleEnd
// AngleStart > AngleEnd denotes an arc crossing angle zero
// Collision is analytic; the segment decomposition exists only for drawing
type Curve struct {
	Center     vmath.Vec2
	Radius     float64
	Width      float64
	AngleStart float64
	AngleEnd   float64
	Color      tcell.Color

	// Plain rectangles, not Colliders, so nothing can recurse through them
	renderSegments []Rectangle
}

// Flipper is a player-driven box hinged at Origin
// World center is Origin + rotate(Offset, CurrentRotation)
type Flipper struct {
	Origin          vmath.Vec2
	Offset          vmath.Vec2
	Dimensions      vmath.Vec2
	CurrentRotation float64
	// RotationMin is the rest angle, RotationMax the angle reached while held
	RotationMin     float64
	RotationMax     float64
	AngularVelocity float64
	// Speed is the angular speed magnitude while driven
	Speed float64
	Color tcell.Color
}

// Spinner is a fixed paddle; TopDownRotation is decorative spin fed by AccVelocity
type Spinner struct {
	Position        vmath.Vec2
	Dimensions      vmath.Vec2
	Rotation        float64
	AccVelocity     float64
	TopDownRotation float64
	Color           tcell.Color
}

// Empty is the no-op placeholder collider
type Empty struct{}

func (*Rectangle) Kind() ColliderKind { return KindRectangle }
func (*Circle) Kind() ColliderKind    { return KindCircle }
func (*Curve) Kind() ColliderKind     { return KindCurve }
func (*Flipper) Kind() ColliderKind   { return KindFlipper }
func (*Spinner) Kind() ColliderKind   { return KindSpinner }
func (Empty) Kind() ColliderKind      { return KindEmpty }

func (*Rectangle) sealed() {}
func (*Circle) sealed()    {}
func (*Curve) sealed()     {}
func (*Flipper) sealed()   {}
func (*Spinner) sealed()   {}
func (Empty) sealed()      {}

// NewRectangle builds a rectangle, panicking on degenerate geometry
func NewRectangle(position, dimensions vmath.Vec2, rotation float64, color tcell.Color, impactForce float64) *Rectangle {
	mustPosition("rectangle", position)
	mustDimensions("rectangle", dimensions)
	mustFinite("rectangle rotation", rotation)
	mustFinite("rectangle impact force", impactForce)
	return &Rectangle{
		Position:    position,
		Rotation:    rotation,
		Dimensions:  dimensions,
		Color:       color,
		ImpactForce: impactForce,
	}
}

// NewCircle builds a circle, panicking on degenerate geometry
func NewCircle(position vmath.Vec2, radius float64, color tcell.Color, impactForce float64) *Circle {
	mustPosition("circle", position)
	mustPositive("circle radius", radius)
	mustFinite("circle impact force", impactForce)
	return &Circle{
		Position:    position,
		Radius:      radius,
		Color:       color,
		ImpactForce: impactForce,
	}
}

// NewCurve builds an arc and precomputes its drawing segments
func NewCurve(center vmath.Vec2, radius, width, angleStart, angleEnd float64, segments int, color tcell.Color) *Curve {
	mustPosition("curve", center)
	mustPositive("curve radius", radius)
	mustPositive("curve width", width)
	mustFinite("curve start angle", angleStart)
	mustFinite("curve end angle", angleEnd)
	if segments < 1 {
		panic(fmt.Sprintf("physics: curve needs at least one render segment, got %d", segments))
	}
	c := &Curve{
		Center:     center,
		Radius:     radius,
		Width:      width,
		AngleStart: angleStart,
		AngleEnd:   angleEnd,
		Color:      color,
	}
	c.renderSegments = c.buildSegments(segments)
	return c
}

// NewFlipper builds a flipper resting at rotationMin
func NewFlipper(origin, offset, dimensions vmath.Vec2, rotationMin, rotationMax, speed float64, color tcell.Color) *Flipper {
	mustPosition("flipper origin", origin)
	mustPosition("flipper offset", offset)
	mustDimensions("flipper", dimensions)
	mustFinite("flipper min rotation", rotationMin)
	mustFinite("flipper max rotation", rotationMax)
	mustPositive("flipper speed", speed)
	return &Flipper{
		Origin:          origin,
		Offset:          offset,
		Dimensions:      dimensions,
		CurrentRotation: rotationMin,
		RotationMin:     rotationMin,
		RotationMax:     rotationMax,
		Speed:           speed,
		Color:           color,
	}
}

// NewSpinner builds a spinner at rest
func NewSpinner(position, dimensions vmath.Vec2, rotation float64, color tcell.Color) *Spinner {
	mustPosition("spinner", position)
	mustDimensions("spinner", dimensions)
	mustFinite("spinner rotation", rotation)
	return &Spinner{
		Position:   position,
		Dimensions: dimensions,
		Rotation:   rotation,
		Color:      color,
	}
}

// Validate reports the first degenerate or non-finite field of c
// Colliders built with the New* constructors always pass
func Validate(c Collider) error {
	switch v := c.(type) {
	case *Rectangle:
		return firstError(
			checkPosition("rectangle", v.Position),
			checkDimensions("rectangle", v.Dimensions),
			checkFinite("rectangle rotation", v.Rotation),
			checkFinite("rectangle impact force", v.ImpactForce),
		)
	case *Circle:
		return firstError(
			checkPosition("circle", v.Position),
			checkPositive("circle radius", v.Radius),
			checkFinite("circle impact force", v.ImpactForce),
		)
	case *Curve:
		return firstError(
			checkPosition("curve", v.Center),
			checkPositive("curve radius", v.Radius),
			checkPositive("curve width", v.Width),
			checkFinite("curve start angle", v.AngleStart),
			checkFinite("curve end angle", v.AngleEnd),
		)
	case *Flipper:
		return firstError(
			checkPosition("flipper origin", v.Origin),
			checkPosition("flipper offset", v.Offset),
			checkDimensions("flipper", v.Dimensions),
			checkFinite("flipper rotation", v.CurrentRotation),
			checkFinite("flipper min rotation", v.RotationMin),
			checkFinite("flipper max rotation", v.RotationMax),
			checkFinite("flipper angular velocity", v.AngularVelocity),
			checkPositive("flipper speed", v.Speed),
		)
	case *Spinner:
		return firstError(
			checkPosition("spinner", v.Position),
			checkDimensions("spinner", v.Dimensions),
			checkFinite("spinner rotation", v.Rotation),
			checkFinite("spinner velocity", v.AccVelocity),
			checkFinite("spinner top-down rotation", v.TopDownRotation),
		)
	case Empty:
		return nil
	case nil:
		return fmt.Errorf("physics: nil collider")
	default:
		return fmt.Errorf("physics: unknown collider %T", c)
	}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func checkFinite(what string, f float64) error {
	if !vmath.IsFinite(f) {
		return fmt.Errorf("physics: %s is not finite: %v", what, f)
	}
	return nil
}

func checkPositive(what string, f float64) error {
	if err := checkFinite(what, f); err != nil {
		return err
	}
	if f <= 0 {
		return fmt.Errorf("physics: %s must be positive, got %v", what, f)
	}
	return nil
}

func checkPosition(what string, v vmath.Vec2) error {
	if !vmath.IsFiniteVec(v) {
		return fmt.Errorf("physics: %s position is not finite: %v", what, v)
	}
	return nil
}

func checkDimensions(what string, v vmath.Vec2) error {
	return firstError(checkPositive(what+" width", v[0]), checkPositive(what+" height", v[1]))
}

func must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func mustFinite(what string, f float64)      { must(checkFinite(what, f)) }
func mustPositive(what string, f float64)    { must(checkPositive(what, f)) }
func mustPosition(what string, v vmath.Vec2) { must(checkPosition(what, v)) }
func mustDimensions(what string, v vmath.Vec2) {
	must(checkDimensions(what, v))
}
