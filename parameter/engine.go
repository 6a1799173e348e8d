package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the presentation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 256
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	// Terminals report no key release, so held state decays after this window
	KeyHoldWindow = 550 * time.Millisecond

	// KeyRepeatWindow is the shorter window used once a key has started auto-repeating
	KeyRepeatWindow = 90 * time.Millisecond
)
