// Package input maps tcell key events to pinball actions and latches
// auto-repeating terminal key presses into held controls.
package input

import "github.com/lixenwraith/pinball/engine"

// Action is what a key binding does
type Action uint8

const (
	ActionNone Action = iota
	ActionLeftFlipper
	ActionRightFlipper
	ActionLauncher
	ActionSoftReset
	ActionFullReset
	ActionQuit
	ActionToggleDebug
	ActionToggleStats
	ActionToggleMute
)

// actionRegistry maps canonical action names used in keymap files
// "none" unbinds a key when merged over the defaults
var actionRegistry = map[string]Action{
	"none":          ActionNone,
	"left_flipper":  ActionLeftFlipper,
	"right_flipper": ActionRightFlipper,
	"launcher":      ActionLauncher,
	"soft_reset":    ActionSoftReset,
	"full_reset":    ActionFullReset,
	"quit":          ActionQuit,
	"toggle_debug":  ActionToggleDebug,
	"toggle_stats":  ActionToggleStats,
	"toggle_mute":   ActionToggleMute,
}

// ActionByName resolves a keymap action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}

// Control returns the simulation control an action drives, if any
func (a Action) Control() (engine.Control, bool) {
	switch a {
	case ActionLeftFlipper:
		return engine.ControlLeftFlipper, true
	case ActionRightFlipper:
		return engine.ControlRightFlipper, true
	case ActionLauncher:
		return engine.ControlLauncher, true
	case ActionSoftReset:
		return engine.ControlSoftReset, true
	case ActionFullReset:
		return engine.ControlFullReset, true
	default:
		return 0, false
	}
}
