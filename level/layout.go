// Package level describes playfield layouts: the hard-coded default table and
// TOML level files that can replace it.
package level

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/physics"
	"github.com/lixenwraith/pinball/vmath"
)

var (
	// ErrInvalidShape marks a shape with non-finite or degenerate geometry
	ErrInvalidShape = errors.New("invalid shape")
	// ErrMissingFlipper marks a layout without both flippers
	ErrMissingFlipper = errors.New("missing flipper")
	// ErrInvalidConfig marks config overrides the engine rejects
	ErrInvalidConfig = errors.New("invalid config")
)

// Vec is a TOML-friendly [x, y] pair
type Vec [2]float64

func (v Vec) vec2() vmath.Vec2 { return vmath.V2(v[0], v[1]) }

// Layout is a complete playfield description
type Layout struct {
	Name       string          `toml:"name"`
	Config     ConfigOverrides `toml:"config"`
	Flippers   FlipperPair     `toml:"flippers"`
	Rectangles []RectangleSpec `toml:"rectangle"`
	Circles    []CircleSpec    `toml:"circle"`
	Curves     []CurveSpec     `toml:"curve"`
	Spinners   []SpinnerSpec   `toml:"spinner"`
}

// RectangleSpec describes a wall or kicker bar
type RectangleSpec struct {
	Position Vec     `toml:"position"`
	Size     Vec     `toml:"size"`
	Rotation float64 `toml:"rotation"`
	Color    string  `toml:"color"`
	Impact   float64 `toml:"impact,omitempty"`
}

// CircleSpec describes a post or bumper
type CircleSpec struct {
	Center Vec     `toml:"center"`
	Radius float64 `toml:"radius"`
	Color  string  `toml:"color"`
	Impact float64 `toml:"impact,omitempty"`
}

// CurveSpec describes a rail arc, angles in radians
type CurveSpec struct {
	Center   Vec     `toml:"center"`
	Radius   float64 `toml:"radius"`
	Width    float64 `toml:"width"`
	Start    float64 `toml:"start"`
	End      float64 `toml:"end"`
	Segments int     `toml:"segments"`
	Color    string  `toml:"color"`
}

// SpinnerSpec describes a spinner paddle
type SpinnerSpec struct {
	Position Vec     `toml:"position"`
	Size     Vec     `toml:"size"`
	Rotation float64 `toml:"rotation"`
	Color    string  `toml:"color"`
}

// FlipperSpec describes one flipper; Rest is the idle angle, Swing the held angle
type FlipperSpec struct {
	Origin Vec     `toml:"origin"`
	Offset Vec     `toml:"offset"`
	Size   Vec     `toml:"size"`
	Rest   float64 `toml:"rest"`
	Swing  float64 `toml:"swing"`
	Speed  float64 `toml:"speed"`
	Color  string  `toml:"color"`
}

// FlipperPair names the two player flippers
type FlipperPair struct {
	Left  *FlipperSpec `toml:"left"`
	Right *FlipperSpec `toml:"right"`
}

// Validate checks every shape and override without building anything
func (l *Layout) Validate() error {
	if l.Flippers.Left == nil {
		return fmt.Errorf("level %q: left: %w", l.Name, ErrMissingFlipper)
	}
	if l.Flippers.Right == nil {
		return fmt.Errorf("level %q: right: %w", l.Name, ErrMissingFlipper)
	}

	var errs []error
	check := func(what string, i int, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("level %q: %s %d: %w", l.Name, what, i, err))
		}
	}

	check("left flipper", 0, l.Flippers.Left.validate())
	check("right flipper", 0, l.Flippers.Right.validate())
	for i := range l.Rectangles {
		check("rectangle", i, l.Rectangles[i].validate())
	}
	for i := range l.Circles {
		check("circle", i, l.Circles[i].validate())
	}
	for i := range l.Curves {
		check("curve", i, l.Curves[i].validate())
	}
	for i := range l.Spinners {
		check("spinner", i, l.Spinners[i].validate())
	}

	cfg := engine.DefaultConfig()
	l.Config.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("level %q: %w: %w", l.Name, ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}

// Build constructs the playfield; flippers come first in the collider list
// Build panics on geometry Validate would reject
func (l *Layout) Build() engine.Playfield {
	if l.Flippers.Left == nil || l.Flippers.Right == nil {
		panic(fmt.Sprintf("level %q: both flippers are required", l.Name))
	}
	left := l.Flippers.Left.build()
	right := l.Flippers.Right.build()

	colliders := make([]physics.Collider, 0, 2+len(l.Rectangles)+len(l.Circles)+len(l.Curves)+len(l.Spinners))
	colliders = append(colliders, left, right)
	for _, r := range l.Rectangles {
		colliders = append(colliders, physics.NewRectangle(r.Position.vec2(), r.Size.vec2(), r.Rotation, color(r.Color), r.Impact))
	}
	for _, c := range l.Circles {
		colliders = append(colliders, physics.NewCircle(c.Center.vec2(), c.Radius, color(c.Color), c.Impact))
	}
	for _, c := range l.Curves {
		colliders = append(colliders, physics.NewCurve(c.Center.vec2(), c.Radius, c.Width, c.Start, c.End, c.Segments, color(c.Color)))
	}
	for _, s := range l.Spinners {
		colliders = append(colliders, physics.NewSpinner(s.Position.vec2(), s.Size.vec2(), s.Rotation, color(s.Color)))
	}

	return engine.Playfield{Colliders: colliders, Left: left, Right: right}
}

// EngineConfig returns the default configuration with this layout's overrides applied
func (l *Layout) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	l.Config.Apply(&cfg)
	return cfg
}

func (f *FlipperSpec) build() *physics.Flipper {
	return physics.NewFlipper(f.Origin.vec2(), f.Offset.vec2(), f.Size.vec2(), f.Rest, f.Swing, f.Speed, color(f.Color))
}

func (f *FlipperSpec) validate() error {
	return firstError(
		finiteVec("origin", f.Origin),
		finiteVec("offset", f.Offset),
		positiveVec("size", f.Size),
		finite("rest", f.Rest),
		finite("swing", f.Swing),
		positive("speed", f.Speed),
		validColor(f.Color),
	)
}

func (r *RectangleSpec) validate() error {
	return firstError(
		finiteVec("position", r.Position),
		positiveVec("size", r.Size),
		finite("rotation", r.Rotation),
		finite("impact", r.Impact),
		validColor(r.Color),
	)
}

func (c *CircleSpec) validate() error {
	return firstError(
		finiteVec("center", c.Center),
		positive("radius", c.Radius),
		finite("impact", c.Impact),
		validColor(c.Color),
	)
}

func (c *CurveSpec) validate() error {
	var segments error
	if c.Segments < 1 {
		segments = fmt.Errorf("segments must be at least 1, got %d: %w", c.Segments, ErrInvalidShape)
	}
	return firstError(
		finiteVec("center", c.Center),
		positive("radius", c.Radius),
		positive("width", c.Width),
		finite("start", c.Start),
		finite("end", c.End),
		segments,
		validColor(c.Color),
	)
}

func (s *SpinnerSpec) validate() error {
	return firstError(
		finiteVec("position", s.Position),
		positiveVec("size", s.Size),
		finite("rotation", s.Rotation),
		validColor(s.Color),
	)
}

func finite(name string, f float64) error {
	if !vmath.IsFinite(f) {
		return fmt.Errorf("%s is not finite: %w", name, ErrInvalidShape)
	}
	return nil
}

func positive(name string, f float64) error {
	if !vmath.IsFinite(f) || f <= 0 {
		return fmt.Errorf("%s must be positive, got %v: %w", name, f, ErrInvalidShape)
	}
	return nil
}

func finiteVec(name string, v Vec) error {
	return firstError(finite(name+".x", v[0]), finite(name+".y", v[1]))
}

func positiveVec(name string, v Vec) error {
	return firstError(positive(name+".x", v[0]), positive(name+".y", v[1]))
}

func validColor(name string) error {
	if name == "" {
		return nil
	}
	if tcell.GetColor(name) == tcell.ColorDefault {
		return fmt.Errorf("unknown color %q: %w", name, ErrInvalidShape)
	}
	return nil
}

// color resolves a color name or #rrggbb; empty means white
func color(name string) tcell.Color {
	if name == "" {
		return tcell.ColorWhite
	}
	return tcell.GetColor(name)
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
