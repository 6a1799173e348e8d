package input

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pinball/engine"
)

func newTestLatch() (*Latch, *engine.MockClock) {
	clock := engine.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewLatchWindows(clock, 500*time.Millisecond, 100*time.Millisecond), clock
}

// TestDefaultKeyTableLookup verifies the stock bindings
func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"z", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionLeftFlipper},
		{"slash", tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone), ActionRightFlipper},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionLauncher},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionSoftReset},
		{"R", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), ActionFullReset},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionLeftFlipper},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionLauncher},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
	}
	for _, tt := range tests {
		if got := kt.Lookup(tt.ev); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

// TestActionControls verifies only gameplay actions map to engine controls
func TestActionControls(t *testing.T) {
	if c, ok := ActionLauncher.Control(); !ok || c != engine.ControlLauncher {
		t.Errorf("Expected launcher control, got %v %v", c, ok)
	}
	if _, ok := ActionQuit.Control(); ok {
		t.Error("Quit should not map to a control")
	}
	if ActionToggleDebug.String() != "toggle_debug" {
		t.Errorf("Unexpected name %q", ActionToggleDebug.String())
	}
}

// TestLoadKeyConfigMerge verifies keymap overrides rebind and unbind keys
func TestLoadKeyConfigMerge(t *testing.T) {
	data := []byte(`
[runes]
a = "left_flipper"
z = "none"
space = "full_reset"

[keys]
Enter = "launcher"
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}
	kt := MergeKeyTable(DefaultKeyTable(), override)

	if kt.Runes['a'] != ActionLeftFlipper {
		t.Errorf("Expected a bound to left flipper, got %v", kt.Runes['a'])
	}
	if _, ok := kt.Runes['z']; ok {
		t.Error("Expected z unbound")
	}
	if kt.Runes[' '] != ActionFullReset {
		t.Errorf("Expected space rebound, got %v", kt.Runes[' '])
	}
	if kt.Keys[tcell.KeyEnter] != ActionLauncher {
		t.Errorf("Expected Enter bound to launcher, got %v", kt.Keys[tcell.KeyEnter])
	}
	if DefaultKeyTable().Runes['z'] != ActionLeftFlipper {
		t.Error("Merge must not modify the base table")
	}
}

// TestLoadKeyConfigErrors verifies bad keymaps are rejected
func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown action", "[runes]\na = \"jump\"\n", "unknown action"},
		{"long rune", "[runes]\nab = \"quit\"\n", "invalid rune key"},
		{"unknown key", "[keys]\nHyper = \"quit\"\n", "unknown key name"},
		{"unknown section", "[mouse]\nleft = \"quit\"\n", "unknown section"},
		{"syntax", "[runes\n", "keymap parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

// TestLatchHoldsThroughRepeatDelay verifies a single press stays held for the hold window
func TestLatchHoldsThroughRepeatDelay(t *testing.T) {
	l, clock := newTestLatch()

	l.Press(engine.ControlLeftFlipper)
	in := l.Sample()
	if !in.Pressed.Has(engine.ControlLeftFlipper) || !in.Held.Has(engine.ControlLeftFlipper) {
		t.Fatalf("Expected press edge and held, got %+v", in)
	}

	clock.Advance(400 * time.Millisecond)
	in = l.Sample()
	if !in.Held.Has(engine.ControlLeftFlipper) || in.Pressed != 0 {
		t.Errorf("Expected still held without a new edge, got %+v", in)
	}

	clock.Advance(200 * time.Millisecond)
	in = l.Sample()
	if in.Held.Has(engine.ControlLeftFlipper) || !in.Released.Has(engine.ControlLeftFlipper) {
		t.Errorf("Expected release after the hold window, got %+v", in)
	}
}

// TestLatchRepeatsExtendHold verifies auto-repeats keep the control held
func TestLatchRepeatsExtendHold(t *testing.T) {
	l, clock := newTestLatch()

	l.Press(engine.ControlLauncher)
	l.Sample()
	for i := 0; i < 20; i++ {
		clock.Advance(50 * time.Millisecond)
		l.Press(engine.ControlLauncher)
		if in := l.Sample(); !in.Held.Has(engine.ControlLauncher) {
			t.Fatalf("Repeat %d: expected held", i)
		}
	}

	// Repeats stop: released once the repeat window passes
	clock.Advance(150 * time.Millisecond)
	if in := l.Sample(); !in.Released.Has(engine.ControlLauncher) {
		t.Errorf("Expected release after repeats stop, got %+v", in)
	}
}

// TestLatchMomentaryControls verifies resets last exactly one sample
func TestLatchMomentaryControls(t *testing.T) {
	l, _ := newTestLatch()

	l.Press(engine.ControlSoftReset)
	if in := l.Sample(); !in.Pressed.Has(engine.ControlSoftReset) {
		t.Errorf("Expected soft reset pressed, got %+v", in)
	}
	if in := l.Sample(); in.Held.Has(engine.ControlSoftReset) {
		t.Errorf("Expected soft reset cleared, got %+v", in)
	}
}

// TestLatchConsecutivePulses verifies reset presses on back-to-back samples are both seen
func TestLatchConsecutivePulses(t *testing.T) {
	l, _ := newTestLatch()

	for i := 0; i < 3; i++ {
		l.Press(engine.ControlFullReset)
		if in := l.Sample(); !in.Pressed.Has(engine.ControlFullReset) {
			t.Fatalf("Expected full reset pressed on sample %d, got %+v", i, in)
		}
	}
	if in := l.Sample(); in.Held != 0 || in.Pressed != 0 || in.Released != 0 {
		t.Errorf("Expected idle sample after pulses, got %+v", in)
	}
}

// TestLatchReleaseAndReset verifies explicit release and reset clear held state
func TestLatchReleaseAndReset(t *testing.T) {
	l, _ := newTestLatch()

	l.Press(engine.ControlRightFlipper)
	l.Sample()
	l.Release(engine.ControlRightFlipper)
	if in := l.Sample(); !in.Released.Has(engine.ControlRightFlipper) {
		t.Errorf("Expected release edge, got %+v", in)
	}

	l.Press(engine.ControlRightFlipper)
	l.Reset()
	if in := l.Sample(); in.Held != 0 || in.Pressed != 0 {
		t.Errorf("Expected nothing held after reset, got %+v", in)
	}
}
