package level

import (
	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/vmath"
)

// ConfigOverrides is the optional [config] table of a level file
// Absent keys keep the engine defaults
type ConfigOverrides struct {
	Gravity            *Vec     `toml:"gravity,omitempty"`
	Bounciness         *float64 `toml:"bounciness,omitempty"`
	TargetFrameTime    *float64 `toml:"target_frame_time,omitempty"`
	MaxSubSteps        *int     `toml:"max_substeps,omitempty"`
	SpeedMultiplier    *float64 `toml:"speed_multiplier,omitempty"`
	BallRadius         *float64 `toml:"ball_radius,omitempty"`
	LaunchPosition     *Vec     `toml:"launch_position,omitempty"`
	CaptureMin         *Vec     `toml:"capture_min,omitempty"`
	CaptureMax         *Vec     `toml:"capture_max,omitempty"`
	MaxChargeTime      *float64 `toml:"max_charge_time,omitempty"`
	MaxLaunchStrength  *float64 `toml:"max_launch_strength,omitempty"`
	SpinnerDecayRate   *float64 `toml:"spinner_decay_rate,omitempty"`
	SpinnerScoreFactor *float64 `toml:"spinner_score_factor,omitempty"`
	SpinnerKickFactor  *float64 `toml:"spinner_kick_factor,omitempty"`
	BumperScore        *float64 `toml:"bumper_score,omitempty"`
	StartingLives      *int     `toml:"starting_lives,omitempty"`
	PlayfieldWidth     *float64 `toml:"playfield_width,omitempty"`
	PlayfieldHeight    *float64 `toml:"playfield_height,omitempty"`
	OutOfBoundsMargin  *float64 `toml:"out_of_bounds_margin,omitempty"`
}

// Apply writes every present override into cfg
func (o *ConfigOverrides) Apply(cfg *engine.Config) {
	setVec(&cfg.Gravity, o.Gravity)
	setVec(&cfg.LaunchPosition, o.LaunchPosition)
	setVec(&cfg.CaptureZone.Min, o.CaptureMin)
	setVec(&cfg.CaptureZone.Max, o.CaptureMax)

	set(&cfg.Bounciness, o.Bounciness)
	set(&cfg.TargetFrameTime, o.TargetFrameTime)
	set(&cfg.MaxSubSteps, o.MaxSubSteps)
	set(&cfg.SpeedMultiplier, o.SpeedMultiplier)
	set(&cfg.BallRadius, o.BallRadius)
	set(&cfg.MaxChargeTime, o.MaxChargeTime)
	set(&cfg.MaxLaunchStrength, o.MaxLaunchStrength)
	set(&cfg.SpinnerDecayRate, o.SpinnerDecayRate)
	set(&cfg.SpinnerScoreFactor, o.SpinnerScoreFactor)
	set(&cfg.SpinnerKickFactor, o.SpinnerKickFactor)
	set(&cfg.BumperScore, o.BumperScore)
	set(&cfg.StartingLives, o.StartingLives)
	set(&cfg.PlayfieldWidth, o.PlayfieldWidth)
	set(&cfg.PlayfieldHeight, o.PlayfieldHeight)
	set(&cfg.OutOfBoundsMargin, o.OutOfBoundsMargin)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setVec(dst *vmath.Vec2, src *Vec) {
	if src != nil {
		*dst = src.vec2()
	}
}
