package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/pinball/parameter"
)

// Waveform maps a phase in [0, 1) to a sample in [-1, 1]
type Waveform func(phase float64) float64

func sine(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

func square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func saw(phase float64) float64 { return 2*phase - 1 }

func noise(float64) float64 { return rand.Float64()*2 - 1 }

// note describes one enveloped voice; To differs from From for a pitch glide
type note struct {
	From, To float64
	Wave     Waveform
	Length   time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// voice renders a note sample by sample with a linear attack and release ramp
type voice struct {
	wave    Waveform
	rate    float64
	from    float64
	slope   float64 // Hz per sample
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(n.Length)
	v := &voice{
		wave:    n.Wave,
		rate:    float64(rate),
		from:    n.From,
		total:   total,
		attack:  min(rate.N(n.Attack), total),
		release: min(rate.N(n.Release), total),
	}
	if total > 0 {
		v.slope = (n.To - n.From) / float64(total)
	}
	return v
}

// gain is the envelope level at sample pos
func (v *voice) gain() float64 {
	g := 1.0
	if v.attack > 0 && v.pos < v.attack {
		g = float64(v.pos) / float64(v.attack)
	}
	if left := v.total - v.pos; v.release > 0 && left < v.release {
		g = min(g, float64(left)/float64(v.release))
	}
	return g
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if v.pos >= v.total {
			return i, i > 0
		}
		s := v.wave(v.phase) * v.gain()
		samples[i] = [2]float64{s, s}

		v.phase += (v.from + v.slope*float64(v.pos)) / v.rate
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// layer mixes notes played together, each at its own level
func layer(rate beep.SampleRate, notes []note, levels []float64) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = newVolume(n.streamer(rate), levels[i])
	}
	return beep.Mix(parts...)
}

// phrase plays notes back to back
func phrase(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}
	return beep.Seq(parts...)
}

func level(cfg *AudioConfig, s SoundType) float64 {
	return cfg.EffectVolumes[s] * cfg.MasterVolume
}

// CreateBumperSound generates a bright two-partial pop
func CreateBumperSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := parameter.BumperSoundDuration, parameter.BumperSoundAttack, parameter.BumperSoundRelease

	pop := layer(rate, []note{
		{From: 660, To: 660, Wave: square, Length: d, Attack: a, Release: r},
		{From: 1320, To: 1320, Wave: sine, Length: d, Attack: a, Release: r},
	}, []float64{0.5, 0.3})
	return newVolume(pop, level(cfg, SoundBumper))
}

// CreateWallSound generates a short dull knock
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := parameter.WallSoundDuration, parameter.WallSoundAttack, parameter.WallSoundRelease

	knock := layer(rate, []note{
		{From: 140, To: 110, Wave: sine, Length: d, Attack: a, Release: r},
		{Wave: noise, Length: d, Attack: a, Release: r},
	}, []float64{0.7, 0.15})
	return newVolume(knock, level(cfg, SoundWall))
}

// CreateFlipperSound generates the solenoid clack
func CreateFlipperSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := parameter.FlipperSoundDuration, parameter.FlipperSoundAttack, parameter.FlipperSoundRelease

	clack := layer(rate, []note{
		{Wave: noise, Length: d, Attack: a, Release: r},
		{From: 90, To: 90, Wave: saw, Length: d, Attack: a, Release: r},
	}, []float64{0.4, 0.5})
	return newVolume(clack, level(cfg, SoundFlipper))
}

// CreateLaunchSound generates a rising whoosh
func CreateLaunchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	whoosh := note{
		From: 120, To: 900, Wave: saw,
		Length:  parameter.LaunchSoundDuration,
		Attack:  parameter.LaunchSoundAttack,
		Release: parameter.LaunchSoundRelease,
	}
	return newVolume(whoosh.streamer(rate), 0.4*level(cfg, SoundLaunch))
}

// CreateDrainSound generates a falling two-note phrase
func CreateDrainSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := parameter.DrainSoundNoteDuration, parameter.DrainSoundAttack, parameter.DrainSoundRelease

	fall := phrase(rate,
		note{From: 392.00, To: 392.00, Wave: square, Length: d, Attack: a, Release: r},
		note{From: 261.63, To: 261.63, Wave: square, Length: d, Attack: a, Release: r},
	)
	return newVolume(fall, 0.4*level(cfg, SoundDrain))
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := parameter.GameOverSoundNoteDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease

	fall := phrase(rate,
		note{From: 329.63, To: 329.63, Wave: saw, Length: d, Attack: a, Release: r},
		note{From: 246.94, To: 246.94, Wave: saw, Length: d, Attack: a, Release: r},
		note{From: 164.81, To: 130.81, Wave: saw, Length: 2 * d, Attack: a, Release: 2 * r},
	)
	return newVolume(fall, 0.4*level(cfg, SoundGameOver))
}

// GetSoundEffect returns the streamer for the given type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBumper:
		return CreateBumperSound(cfg)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundFlipper:
		return CreateFlipperSound(cfg)
	case SoundLaunch:
		return CreateLaunchSound(cfg)
	case SoundDrain:
		return CreateDrainSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
