package render

import "github.com/gdamore/tcell/v2"

// Presentation colors; collider colors come from the level
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBall       = tcell.NewRGBColor(235, 235, 240) // Chrome white
	RgbDebugPoint = tcell.NewRGBColor(255, 60, 200)  // Magenta contact markers
	RgbHudText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbHudDim     = tcell.NewRGBColor(120, 120, 140) // Muted labels
	RgbHudBg      = tcell.NewRGBColor(40, 42, 58)    // Status bar background
	RgbChargeBar  = tcell.NewRGBColor(255, 165, 0)   // Orange launcher charge
	RgbGameOver   = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbStatsText  = tcell.NewRGBColor(144, 238, 144) // Light green overlay
)

// Glyphs per collider kind
const (
	glyphSolid   = '█'
	glyphRail    = '▓'
	glyphSpinner = '▒'
	glyphBall    = '●'
	glyphDebug   = '·'
	glyphCharge  = '■'
	glyphEmpty   = '·'
)
