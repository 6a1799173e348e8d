package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Printable keys, case-sensitive
	Runes map[rune]Action
	// Special keys (arrows, Ctrl+*, Escape)
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'z': ActionLeftFlipper,
			'Z': ActionLeftFlipper,
			'/': ActionRightFlipper,
			'm': ActionRightFlipper,
			'M': ActionRightFlipper,
			' ': ActionLauncher,
			'r': ActionSoftReset,
			'R': ActionFullReset,
			'q': ActionQuit,
			'd': ActionToggleDebug,
			's': ActionToggleStats,
			'u': ActionToggleMute,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeftFlipper,
			tcell.KeyRight:  ActionRightFlipper,
			tcell.KeyDown:   ActionLauncher,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Lookup returns the action bound to a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: cloneMap(kt.Runes),
		Keys:  cloneMap(kt.Keys),
	}
}

// MergeKeyTable returns base overridden by every binding in override
// Bindings to ActionNone delete the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.Keys, override.Keys)
	return result
}

func cloneMap[K comparable](m map[K]Action) map[K]Action {
	c := make(map[K]Action, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
