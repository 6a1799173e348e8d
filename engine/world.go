// Package engine owns the playfield simulation: the ball, the collider list,
// the fixed-timestep stepper and the gameplay rules entangled with physics
// state (flippers, spinners, launcher, lives, score).
//
// A World is single-threaded; one loop owns it and calls Tick once per frame.
package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/pinball/physics"
	"github.com/lixenwraith/pinball/status"
	"github.com/lixenwraith/pinball/vmath"
)

// Playfield is a constructed layout with its flipper handles resolved
// Left and Right must also appear in Colliders
type Playfield struct {
	Colliders []physics.Collider
	Left      *physics.Flipper
	Right     *physics.Flipper
}

// World is the simulation state
type World struct {
	cfg    Config
	params physics.Params

	ball      physics.DynamicBody
	colliders []physics.Collider
	left      *physics.Flipper
	right     *physics.Flipper
	spinners  []*physics.Spinner

	physicsAccumulatedTime float64
	launcherAccumulator    float64
	simulatedTime          float64

	score    float64
	lives    int
	gameOver bool

	held        ControlSet
	debugPoints []DebugPoint
	events      []Event

	stats       *status.Registry
	statSteps   *atomic.Int64
	statContact *atomic.Int64
	statTicks   *atomic.Int64
	statLost    *atomic.Int64
	statTickSub *status.Gauge
	statAccum   *status.Gauge
	statSimTime *status.Gauge
	statDebug   *status.Gauge
	statCharge  *status.Gauge
}

// NewWorld builds a World around a playfield
// Invalid configuration, degenerate collider geometry or missing flipper handles
// are construction errors and panic
func NewWorld(cfg Config, field Playfield, stats *status.Registry) *World {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	if field.Left == nil || field.Right == nil {
		panic("engine: playfield must provide left and right flipper handles")
	}
	if !containsCollider(field.Colliders, field.Left) || !containsCollider(field.Colliders, field.Right) {
		panic("engine: flipper handles are not part of the collider list")
	}
	for i, c := range field.Colliders {
		if err := physics.Validate(c); err != nil {
			panic(fmt.Sprintf("engine: collider %d: %v", i, err))
		}
	}
	if stats == nil {
		stats = status.NewRegistry()
	}

	w := &World{
		cfg:         cfg,
		params:      cfg.physicsParams(),
		colliders:   field.Colliders,
		left:        field.Left,
		right:       field.Right,
		lives:       cfg.StartingLives,
		stats:       stats,
		statSteps:   stats.Counter(status.SubSteps),
		statContact: stats.Counter(status.Contacts),
		statTicks:   stats.Counter(status.Ticks),
		statLost:    stats.Counter(status.BallsLost),
		statTickSub: stats.Gauge(status.TickSubSteps),
		statAccum:   stats.Gauge(status.Accumulator),
		statSimTime: stats.Gauge(status.SimulatedTime),
		statDebug:   stats.Gauge(status.DebugPoints),
		statCharge:  stats.Gauge(status.LauncherCharge),
	}
	for _, c := range field.Colliders {
		if s, ok := c.(*physics.Spinner); ok {
			w.spinners = append(w.spinners, s)
		}
	}
	w.respawn()
	return w
}

func containsCollider(list []physics.Collider, f *physics.Flipper) bool {
	for _, c := range list {
		if c == physics.Collider(f) {
			return true
		}
	}
	return false
}

// Ball returns a copy of the ball state
func (w *World) Ball() physics.DynamicBody {
	return w.ball
}

// Colliders returns the ordered collider list; callers must not mutate it
func (w *World) Colliders() []physics.Collider {
	return w.colliders
}

// Flippers returns the left and right flipper handles
func (w *World) Flippers() (left, right *physics.Flipper) {
	return w.left, w.right
}

// Config returns the world configuration
func (w *World) Config() Config {
	return w.cfg
}

// Score returns the current score
func (w *World) Score() float64 {
	return w.score
}

// Lives returns the remaining lives
func (w *World) Lives() int {
	return w.lives
}

// GameOver reports whether the last ball drained with no lives left
func (w *World) GameOver() bool {
	return w.gameOver
}

// LauncherCharge returns the launcher charge as a fraction in [0, 1]
func (w *World) LauncherCharge() float64 {
	return w.launcherAccumulator / w.cfg.MaxChargeTime
}

// Accumulated returns the physics time not yet consumed by sub-steps
func (w *World) Accumulated() float64 {
	return w.physicsAccumulatedTime
}

// SimulatedTime returns the total physics time advanced
func (w *World) SimulatedTime() float64 {
	return w.simulatedTime
}

// Stats returns the metrics registry the world writes to
func (w *World) Stats() *status.Registry {
	return w.stats
}

func (w *World) respawn() {
	w.ball = physics.DynamicBody{
		Position: w.cfg.LaunchPosition,
		Radius:   w.cfg.BallRadius,
	}
}

// contactSink adapts the World to physics.Sink without exposing the methods
type contactSink struct {
	w *World
}

func (s contactSink) AddScore(points float64) {
	s.w.score += points
}

func (s contactSink) AddDebugPoint(p vmath.Vec2) {
	s.w.addDebugPoint(p)
}

func (s contactSink) Impact(c physics.Collider, _ physics.Contact, speed float64) {
	typ := EventWallHit
	if physics.ImpactForce(c) > 0 {
		typ = EventBumperHit
	}
	s.w.emit(Event{Type: typ, Collider: c.Kind(), Value: speed})
}
