package parameter

import "time"

// Sound effect timing
const (
	BumperSoundDuration = 120 * time.Millisecond
	BumperSoundAttack   = 2 * time.Millisecond
	BumperSoundRelease  = 90 * time.Millisecond

	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 1 * time.Millisecond
	WallSoundRelease  = 30 * time.Millisecond

	FlipperSoundDuration = 60 * time.Millisecond
	FlipperSoundAttack   = 1 * time.Millisecond
	FlipperSoundRelease  = 45 * time.Millisecond

	LaunchSoundDuration = 250 * time.Millisecond
	LaunchSoundAttack   = 10 * time.Millisecond
	LaunchSoundRelease  = 180 * time.Millisecond

	DrainSoundNoteDuration = 180 * time.Millisecond
	DrainSoundAttack       = 5 * time.Millisecond
	DrainSoundRelease      = 120 * time.Millisecond

	GameOverSoundNoteDuration = 300 * time.Millisecond
	GameOverSoundAttack       = 10 * time.Millisecond
	GameOverSoundRelease      = 220 * time.Millisecond
)

// WallSoundMinSpeed is the impact speed below which wall contacts stay silent
// Resting contacts would otherwise click every frame
const WallSoundMinSpeed = 60.0
