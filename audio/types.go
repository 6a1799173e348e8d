// Package audio synthesizes the table's sound effects with beep and plays
// them for game events. Audio is optional; every call degrades to a no-op
// when no output device is available.
package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundBumper   SoundType = iota // Kicker or pop bumper hit
	SoundWall                      // Hard impact on a passive surface
	SoundFlipper                   // Flipper swing
	SoundLaunch                    // Plunger release
	SoundDrain                     // Ball lost
	SoundGameOver                  // Last ball lost
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundBumper:   "bumper",
	SoundWall:     "wall",
	SoundFlipper:  "flipper",
	SoundLaunch:   "launch",
	SoundDrain:    "drain",
	SoundGameOver: "game_over",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

func soundByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
