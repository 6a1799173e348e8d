package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/parameter"
)

// SoundManager plays effects through one shared mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
// Disabled configs succeed without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer keeps the device silent
	sm.initialized = false
}

// SetMuted silences or restores new effects
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether effects are silenced
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Active returns the number of effects still playing
func (sm *SoundManager) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// Play starts one effect
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayBumper plays the bumper pop
func (sm *SoundManager) PlayBumper() { sm.Play(SoundBumper) }

// PlayFlipper plays the flipper clack
func (sm *SoundManager) PlayFlipper() { sm.Play(SoundFlipper) }

// PlayLaunch plays the plunger whoosh
func (sm *SoundManager) PlayLaunch() { sm.Play(SoundLaunch) }

// PlayDrain plays the lost-ball phrase
func (sm *SoundManager) PlayDrain() { sm.Play(SoundDrain) }

// PlayGameOver plays the game-over phrase
func (sm *SoundManager) PlayGameOver() { sm.Play(SoundGameOver) }

// HandleEvents plays the effects for one frame's events
// Each sound starts at most once per call so contact bursts don't stack
func (sm *SoundManager) HandleEvents(events []engine.Event) {
	var played [soundTypeCount]bool
	for _, e := range events {
		s, ok := SoundFor(e)
		if !ok || played[s] {
			continue
		}
		played[s] = true
		sm.Play(s)
	}
}

// SoundFor maps a game event to its effect
func SoundFor(e engine.Event) (SoundType, bool) {
	switch e.Type {
	case engine.EventBumperHit:
		return SoundBumper, true
	case engine.EventWallHit:
		if e.Value < parameter.WallSoundMinSpeed {
			return 0, false
		}
		return SoundWall, true
	case engine.EventFlipperSwing:
		return SoundFlipper, true
	case engine.EventLaunch:
		return SoundLaunch, true
	case engine.EventBallLost:
		return SoundDrain, true
	case engine.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}
