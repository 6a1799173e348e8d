package parameter

// Ball dynamics
const (
	// GravityX is the horizontal gravity component in units/s²
	GravityX = 0.0

	// GravityY is the vertical gravity component in units/s² (screen y grows downward)
	GravityY = 500.0

	// Bounciness is the restitution applied to every contact
	Bounciness = 0.7

	// BallRadius is the radius of the single dynamic disc
	BallRadius = 10.0
)

// Fixed timestep
const (
	// TargetFrameTime is the duration of one physics sub-step in seconds (240 Hz)
	TargetFrameTime = 1.0 / 240.0

	// MaxSubSteps caps sub-steps per tick so a stall cannot snowball
	MaxSubSteps = 12

	// SpeedMultiplier scales wall time before it enters the accumulator
	SpeedMultiplier = 1.0
)

// Flippers
const (
	// FlipperSpeed is the angular speed magnitude of a driven flipper in rad/s
	FlipperSpeed = 18.0

	// FlipperLength is the long side of a flipper body
	FlipperLength = 70.0

	// FlipperThickness is the short side of a flipper body
	FlipperThickness = 14.0

	// FlipperRestAngle is the rest tilt magnitude; held flippers swing to the mirrored angle
	FlipperRestAngle = 0.45
)

// Spinner
const (
	// SpinnerDecayRate is the linear angular deceleration in rad/s²
	SpinnerDecayRate = 8.0

	// SpinnerKickFactor converts approach speed into spinner angular velocity (rad/unit)
	SpinnerKickFactor = 0.05
)

// Bumpers
const (
	// BumperImpactForce is the normal kick speed of round bumpers
	BumperImpactForce = 300.0

	// SlingImpactForce is the normal kick speed of slingshot bars
	SlingImpactForce = 200.0
)
