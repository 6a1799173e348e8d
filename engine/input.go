package engine

// Control is one player input the simulation reacts to
type Control uint8

const (
	ControlLeftFlipper Control = iota
	ControlRightFlipper
	ControlLauncher
	ControlSoftReset
	ControlFullReset

	ControlCount
)

var controlNames = [ControlCount]string{
	ControlLeftFlipper:  "left_flipper",
	ControlRightFlipper: "right_flipper",
	ControlLauncher:     "launcher",
	ControlSoftReset:    "soft_reset",
	ControlFullReset:    "full_reset",
}

func (c Control) String() string {
	if c < ControlCount {
		return controlNames[c]
	}
	return "unknown"
}

// ControlSet is a bitmask of controls
type ControlSet uint8

// Has reports whether c is in the set
func (s ControlSet) Has(c Control) bool {
	return s&(1<<c) != 0
}

// With returns the set with c added
func (s ControlSet) With(c Control) ControlSet {
	return s | 1<<c
}

// Without returns the set with c removed
func (s ControlSet) Without(c Control) ControlSet {
	return s &^ (1 << c)
}

// Controls builds a set from a list
func Controls(cs ...Control) ControlSet {
	var s ControlSet
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// InputState is the control snapshot sampled at the start of a tick
// Pressed and Released are edges since the previous tick
type InputState struct {
	Held     ControlSet
	Pressed  ControlSet
	Released ControlSet
}

// MomentaryControls act only on their press edge and are held for a single tick
const MomentaryControls = ControlSet(1<<ControlSoftReset | 1<<ControlFullReset)

// Momentary reports whether c is a one-tick pulse
func (c Control) Momentary() bool {
	return MomentaryControls.Has(c)
}

// NextInput derives edges from consecutive held sets
// A momentary control is pressed on every tick it is held, so back-to-back
// pulses each produce their own edge; it never reports a release
func NextInput(prevHeld, held ControlSet) InputState {
	prev := prevHeld &^ MomentaryControls
	return InputState{
		Held:     held,
		Pressed:  held &^ prev,
		Released: prev &^ held,
	}
}
