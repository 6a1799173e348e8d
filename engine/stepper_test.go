package engine

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pinball/physics"
	"github.com/lixenwraith/pinball/status"
	"github.com/lixenwraith/pinball/vmath"
)

// TestAccumulatorConservesTime verifies every elapsed second is either simulated or still pending
func TestAccumulatorConservesTime(t *testing.T) {
	cfg := DefaultConfig()
	w := newTestWorld(t, cfg)

	frames := []time.Duration{
		7 * time.Millisecond, 16 * time.Millisecond, 3 * time.Millisecond,
		33 * time.Millisecond, 1 * time.Millisecond, 16 * time.Millisecond,
	}

	var total float64
	steps := 0
	for _, d := range frames {
		n := w.Tick(d, InputState{})
		if n > cfg.MaxSubSteps {
			t.Fatalf("Tick ran %d sub-steps, cap is %d", n, cfg.MaxSubSteps)
		}
		steps += n
		total += d.Seconds()

		consumed := float64(steps) * cfg.TargetFrameTime
		if diff := math.Abs(total - consumed - w.Accumulated()); diff > 1e-9 {
			t.Errorf("After %v: elapsed %v != consumed %v + pending %v", d, total, consumed, w.Accumulated())
		}
		if w.Accumulated() < 0 {
			t.Errorf("Accumulator went negative: %v", w.Accumulated())
		}
	}

	if got := w.Stats().Counter(status.SubSteps).Load(); got != int64(steps) {
		t.Errorf("Expected substep counter %d, got %d", steps, got)
	}
	if math.Abs(w.SimulatedTime()-float64(steps)*cfg.TargetFrameTime) > 1e-9 {
		t.Errorf("Expected simulated time %v, got %v", float64(steps)*cfg.TargetFrameTime, w.SimulatedTime())
	}
}

// TestSubStepCapCarriesBacklog verifies a long frame is capped and the remainder carried
func TestSubStepCapCarriesBacklog(t *testing.T) {
	cfg := DefaultConfig()
	w := newTestWorld(t, cfg)

	n := w.Tick(time.Second, InputState{})
	if n != cfg.MaxSubSteps {
		t.Fatalf("Expected %d sub-steps, got %d", cfg.MaxSubSteps, n)
	}
	want := 1 - float64(cfg.MaxSubSteps)*cfg.TargetFrameTime
	if math.Abs(w.Accumulated()-want) > 1e-9 {
		t.Errorf("Expected backlog %v, got %v", want, w.Accumulated())
	}

	// A zero-length frame keeps draining the backlog
	if n := w.Tick(0, InputState{}); n != cfg.MaxSubSteps {
		t.Errorf("Expected backlog to run %d sub-steps, got %d", cfg.MaxSubSteps, n)
	}
	if g := w.Stats().Gauge(status.TickSubSteps).Get(); g != float64(cfg.MaxSubSteps) {
		t.Errorf("Expected tick_substeps gauge %d, got %v", cfg.MaxSubSteps, g)
	}
}

// TestShortFrameRunsNoSubStep verifies time below one sub-step stays pending
func TestShortFrameRunsNoSubStep(t *testing.T) {
	cfg := DefaultConfig()
	w := newTestWorld(t, cfg)
	start := w.Ball()

	if n := w.Tick(time.Millisecond, InputState{}); n != 0 {
		t.Errorf("Expected 0 sub-steps, got %d", n)
	}
	if w.Ball() != start {
		t.Errorf("Ball moved without a sub-step: %+v", w.Ball())
	}
}

// TestSpeedMultiplierScalesTime verifies the multiplier scales simulated time per tick
func TestSpeedMultiplierScalesTime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpeedMultiplier = 2
	w := newTestWorld(t, cfg)

	w.Tick(10*time.Millisecond, InputState{})
	total := w.SimulatedTime() + w.Accumulated()
	if math.Abs(total-0.02) > 1e-9 {
		t.Errorf("Expected 0.02s of physics time, got %v", total)
	}
}

// TestLauncherStrengthScalesWithCharge verifies release velocity is charge/max × strength
func TestLauncherStrengthScalesWithCharge(t *testing.T) {
	tests := []struct {
		name string
		hold float64
		want float64
	}{
		{"half charge", 0.75, -700},
		{"full charge", 1.5, -1400},
		{"overcharge clamps", 3.0, -1400},
	}

	launcher := Controls(ControlLauncher)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, DefaultConfig())

			w.updateLauncher(tt.hold, NextInput(0, launcher))
			w.updateLauncher(0, NextInput(launcher, 0))

			if v := w.Ball().Velocity[1]; v != tt.want {
				t.Errorf("Expected launch velocity %v, got %v", tt.want, v)
			}
			if w.LauncherCharge() != 0 {
				t.Errorf("Expected charge reset after release, got %v", w.LauncherCharge())
			}
		})
	}
}

// TestLauncherChargesAcrossTicks verifies the charge accumulates over held ticks
func TestLauncherChargesAcrossTicks(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	launcher := Controls(ControlLauncher)

	w.updateLauncher(0.25, NextInput(0, launcher))
	w.updateLauncher(0.5, NextInput(launcher, launcher))
	if got := w.LauncherCharge(); got != 0.5 {
		t.Errorf("Expected charge 0.5, got %v", got)
	}
	if w.Ball().Velocity != (vmath.Vec2{}) {
		t.Errorf("Ball should not move while charging, got %v", w.Ball().Velocity)
	}
}

// TestLauncherOutsideCaptureZone verifies release away from the plunger only clears the charge
func TestLauncherOutsideCaptureZone(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	w.ball.Position = vmath.V2(300, 300)
	w.ball.Velocity = vmath.V2(12, 34)
	launcher := Controls(ControlLauncher)

	w.updateLauncher(1.0, NextInput(0, launcher))
	w.updateLauncher(0, NextInput(launcher, 0))

	if w.Ball().Velocity != vmath.V2(12, 34) {
		t.Errorf("Expected velocity unchanged, got %v", w.Ball().Velocity)
	}
	if w.LauncherCharge() != 0 {
		t.Errorf("Expected charge cleared, got %v", w.LauncherCharge())
	}
	if events := w.DrainEvents(); len(events) != 0 {
		t.Errorf("Expected no launch event, got %+v", events)
	}
}

// TestLaunchThroughTick verifies a charged release fires the ball upward within one tick
func TestLaunchThroughTick(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	launcher := Controls(ControlLauncher)

	w.Tick(750*time.Millisecond, NextInput(0, launcher))
	w.DrainEvents()
	w.Tick(0, NextInput(launcher, 0))

	events := w.DrainEvents()
	if len(events) == 0 || events[0].Type != EventLaunch {
		t.Fatalf("Expected launch event, got %+v", events)
	}
	if events[0].Value != -700 {
		t.Errorf("Expected launch velocity -700, got %v", events[0].Value)
	}
	if w.Ball().Velocity[1] >= 0 {
		t.Errorf("Expected ball moving up, got %v", w.Ball().Velocity)
	}
}

// TestBallSettlesOnFloor runs the full loop against a floor and checks it never sinks through
func TestBallSettlesOnFloor(t *testing.T) {
	cfg := DefaultConfig()
	floor := physics.NewRectangle(vmath.V2(568, 975), vmath.V2(100, 20), 0, tcell.ColorWhite, 0)
	w := newTestWorld(t, cfg, floor)

	// Floor top is at 965; a resting ball center sits at 955
	wallHits := 0
	for i := 0; i < 200; i++ {
		w.Tick(16*time.Millisecond, InputState{})
		for _, e := range w.DrainEvents() {
			if e.Type == EventWallHit && e.Collider == physics.KindRectangle {
				wallHits++
			}
		}
		if y := w.Ball().Position[1]; y > 955.5 {
			t.Fatalf("Tick %d: ball sank to y=%v", i, y)
		}
	}

	if wallHits == 0 {
		t.Error("Expected at least one wall hit event")
	}
	if w.Lives() != cfg.StartingLives {
		t.Errorf("Ball should never drain, lives %d", w.Lives())
	}
	if w.Stats().Counter(status.Contacts).Load() == 0 {
		t.Error("Expected contacts counted")
	}
	if len(w.DebugPoints()) == 0 {
		t.Error("Expected debug points from contacts")
	}
}
