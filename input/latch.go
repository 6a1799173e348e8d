package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/parameter"
)

// Latch turns key presses into held controls
// Terminals deliver presses and auto-repeats but no releases, so a control
// counts as held until its last press ages out. The first press gets the
// longer hold window to bridge the keyboard's initial repeat delay.
// Press is called from the event goroutine, Sample from the game loop.
type Latch struct {
	mu       sync.Mutex
	clock    engine.TimeProvider
	hold     time.Duration
	repeat   time.Duration
	deadline [engine.ControlCount]time.Time
	pulses   engine.ControlSet
	prevHeld engine.ControlSet
}

// NewLatch creates a latch with the default hold and repeat windows
func NewLatch(clock engine.TimeProvider) *Latch {
	return NewLatchWindows(clock, parameter.KeyHoldWindow, parameter.KeyRepeatWindow)
}

// NewLatchWindows creates a latch with explicit windows
func NewLatchWindows(clock engine.TimeProvider, hold, repeat time.Duration) *Latch {
	return &Latch{clock: clock, hold: hold, repeat: repeat}
}

// Press records a key press or auto-repeat for c
func (l *Latch) Press(c engine.Control) {
	if c >= engine.ControlCount {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if c.Momentary() {
		l.pulses = l.pulses.With(c)
		return
	}

	now := l.clock.Now()
	window := l.repeat
	if !now.Before(l.deadline[c]) {
		window = l.hold
	}
	if d := now.Add(window); d.After(l.deadline[c]) {
		l.deadline[c] = d
	}
}

// Release drops c immediately, for backends that report key-up
func (l *Latch) Release(c engine.Control) {
	if c >= engine.ControlCount {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deadline[c] = time.Time{}
}

// Sample returns the control state for one tick and advances the edge baseline
// Momentary presses are held for exactly one sample
func (l *Latch) Sample() engine.InputState {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	held := l.pulses
	for c := engine.Control(0); c < engine.ControlCount; c++ {
		if now.Before(l.deadline[c]) {
			held = held.With(c)
		}
	}
	l.pulses = 0

	in := engine.NextInput(l.prevHeld, held)
	l.prevHeld = held &^ engine.MomentaryControls
	return in
}

// Reset forgets all presses
func (l *Latch) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.deadline = [engine.ControlCount]time.Time{}
	l.pulses = 0
	l.prevHeld = 0
}
