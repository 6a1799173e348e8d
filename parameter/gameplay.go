package parameter

// Playfield extents in world units
const (
	PlayfieldWidth  = 600.0
	PlayfieldHeight = 1000.0

	// OutOfBoundsMargin is how far below the playfield the ball must fall to be lost
	OutOfBoundsMargin = 50.0
)

// Launch lane
const (
	LaunchPositionX = 568.0
	LaunchPositionY = 950.0

	// Capture zone corners; the launcher only fires while the ball center is inside
	CaptureZoneMinX = 555.0
	CaptureZoneMinY = 880.0
	CaptureZoneMaxX = 580.0
	CaptureZoneMaxY = 965.0

	// MaxChargeTime is the launcher hold time in seconds that yields full strength
	MaxChargeTime = 1.5

	// MaxLaunchStrength is the upward speed imparted at full charge
	MaxLaunchStrength = 1400.0
)

// Lives and scoring
const (
	StartingLives = 3

	// BumperScore is awarded per approaching contact with a kicking collider
	BumperScore = 100.0

	// SpinnerScoreFactor is points per radian of spinner travel
	SpinnerScoreFactor = 10.0
)

// Diagnostics
const (
	// DebugPointTTL is the lifetime of a contact debug point in presentation frames
	DebugPointTTL = 30

	// MaxDebugPoints bounds the debug point list; oldest points are dropped first
	MaxDebugPoints = 256
)
