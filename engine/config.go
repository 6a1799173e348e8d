package engine

import (
	"fmt"

	"github.com/lixenwraith/pinball/parameter"
	"github.com/lixenwraith/pinball/physics"
	"github.com/lixenwraith/pinball/vmath"
)

// Rect is an axis-aligned region given by its min and max corners
type Rect struct {
	Min vmath.Vec2
	Max vmath.Vec2
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p vmath.Vec2) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] && p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

// Config is the runtime configuration of a World
type Config struct {
	Gravity    vmath.Vec2
	Bounciness float64

	// TargetFrameTime is one sub-step in seconds; MaxSubSteps caps sub-steps per tick
	TargetFrameTime float64
	MaxSubSteps     int
	SpeedMultiplier float64

	PlayfieldWidth    float64
	PlayfieldHeight   float64
	OutOfBoundsMargin float64

	BallRadius     float64
	LaunchPosition vmath.Vec2
	CaptureZone    Rect

	MaxChargeTime     float64
	MaxLaunchStrength float64

	SpinnerDecayRate   float64
	SpinnerScoreFactor float64
	SpinnerKickFactor  float64
	BumperScore        float64

	StartingLives  int
	DebugPointTTL  int
	MaxDebugPoints int
}

// DefaultConfig returns the configuration built from parameter defaults
func DefaultConfig() Config {
	return Config{
		Gravity:            vmath.V2(parameter.GravityX, parameter.GravityY),
		Bounciness:         parameter.Bounciness,
		TargetFrameTime:    parameter.TargetFrameTime,
		MaxSubSteps:        parameter.MaxSubSteps,
		SpeedMultiplier:    parameter.SpeedMultiplier,
		PlayfieldWidth:     parameter.PlayfieldWidth,
		PlayfieldHeight:    parameter.PlayfieldHeight,
		OutOfBoundsMargin:  parameter.OutOfBoundsMargin,
		BallRadius:         parameter.BallRadius,
		LaunchPosition:     vmath.V2(parameter.LaunchPositionX, parameter.LaunchPositionY),
		CaptureZone: Rect{
			Min: vmath.V2(parameter.CaptureZoneMinX, parameter.CaptureZoneMinY),
			Max: vmath.V2(parameter.CaptureZoneMaxX, parameter.CaptureZoneMaxY),
		},
		MaxChargeTime:      parameter.MaxChargeTime,
		MaxLaunchStrength:  parameter.MaxLaunchStrength,
		SpinnerDecayRate:   parameter.SpinnerDecayRate,
		SpinnerScoreFactor: parameter.SpinnerScoreFactor,
		SpinnerKickFactor:  parameter.SpinnerKickFactor,
		BumperScore:        parameter.BumperScore,
		StartingLives:      parameter.StartingLives,
		DebugPointTTL:      parameter.DebugPointTTL,
		MaxDebugPoints:     parameter.MaxDebugPoints,
	}
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	finite := []struct {
		name string
		v    float64
	}{
		{"gravity.x", c.Gravity[0]},
		{"gravity.y", c.Gravity[1]},
		{"bounciness", c.Bounciness},
		{"launch_position.x", c.LaunchPosition[0]},
		{"launch_position.y", c.LaunchPosition[1]},
		{"spinner_decay_rate", c.SpinnerDecayRate},
		{"spinner_score_factor", c.SpinnerScoreFactor},
		{"spinner_kick_factor", c.SpinnerKickFactor},
		{"bumper_score", c.BumperScore},
		{"out_of_bounds_margin", c.OutOfBoundsMargin},
	}
	for _, f := range finite {
		if !vmath.IsFinite(f.v) {
			return fmt.Errorf("config %s is not finite", f.name)
		}
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"target_frame_time", c.TargetFrameTime},
		{"speed_multiplier", c.SpeedMultiplier},
		{"playfield_width", c.PlayfieldWidth},
		{"playfield_height", c.PlayfieldHeight},
		{"ball_radius", c.BallRadius},
		{"max_charge_time", c.MaxChargeTime},
		{"max_launch_strength", c.MaxLaunchStrength},
	}
	for _, p := range positive {
		if !vmath.IsFinite(p.v) || p.v <= 0 {
			return fmt.Errorf("config %s must be positive and finite, got %v", p.name, p.v)
		}
	}

	if c.MaxSubSteps < 1 {
		return fmt.Errorf("config max_substeps must be at least 1, got %d", c.MaxSubSteps)
	}
	if c.StartingLives < 0 {
		return fmt.Errorf("config starting_lives must not be negative, got %d", c.StartingLives)
	}
	if c.DebugPointTTL < 0 || c.MaxDebugPoints < 0 {
		return fmt.Errorf("config debug point limits must not be negative")
	}
	if c.CaptureZone.Min[0] > c.CaptureZone.Max[0] || c.CaptureZone.Min[1] > c.CaptureZone.Max[1] {
		return fmt.Errorf("config capture_zone min %v exceeds max %v", c.CaptureZone.Min, c.CaptureZone.Max)
	}
	return nil
}

func (c *Config) physicsParams() physics.Params {
	return physics.Params{
		Gravity:           c.Gravity,
		Bounciness:        c.Bounciness,
		BumperScore:       c.BumperScore,
		SpinnerKickFactor: c.SpinnerKickFactor,
	}
}
