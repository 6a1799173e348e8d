package level

import (
	"math"

	"github.com/lixenwraith/pinball/parameter"
)

// Palette of the built-in table
const (
	colorWall    = "#5a6c94"
	colorRail    = "#8aa0c8"
	colorFlipper = "#f0c040"
	colorBumper  = "#e0503c"
	colorSling   = "#40c0a0"
	colorSpinner = "#c080f0"
	colorStopper = "#707070"
)

// Default returns the built-in table
func Default() *Layout {
	flipperSize := Vec{parameter.FlipperLength, parameter.FlipperThickness}
	half := parameter.FlipperLength / 2
	rest := parameter.FlipperRestAngle

	return &Layout{
		Name: "default",
		Flippers: FlipperPair{
			Left: &FlipperSpec{
				Origin: Vec{200, 825},
				Offset: Vec{half, 0},
				Size:   flipperSize,
				Rest:   rest,
				Swing:  -rest,
				Speed:  parameter.FlipperSpeed,
				Color:  colorFlipper,
			},
			Right: &FlipperSpec{
				Origin: Vec{350, 825},
				Offset: Vec{-half, 0},
				Size:   flipperSize,
				Rest:   -rest,
				Swing:  rest,
				Speed:  parameter.FlipperSpeed,
				Color:  colorFlipper,
			},
		},
		Rectangles: []RectangleSpec{
			// Outer walls and launch lane
			{Position: Vec{10, 650}, Size: Vec{20, 700}, Color: colorWall},
			{Position: Vec{590, 650}, Size: Vec{20, 700}, Color: colorWall},
			{Position: Vec{550, 650}, Size: Vec{10, 640}, Color: colorWall},
			{Position: Vec{568, 975}, Size: Vec{25, 20}, Color: colorStopper},

			// Inlane slopes feeding the flippers
			{Position: Vec{110, 780}, Size: Vec{200, 16}, Rotation: 0.45, Color: colorWall},
			{Position: Vec{440, 780}, Size: Vec{200, 16}, Rotation: -0.45, Color: colorWall},

			// Slingshots
			{Position: Vec{120, 680}, Size: Vec{12, 90}, Rotation: -0.35, Color: colorSling, Impact: parameter.SlingImpactForce},
			{Position: Vec{430, 680}, Size: Vec{12, 90}, Rotation: 0.35, Color: colorSling, Impact: parameter.SlingImpactForce},
		},
		Circles: []CircleSpec{
			{Center: Vec{200, 400}, Radius: 30, Color: colorBumper, Impact: parameter.BumperImpactForce},
			{Center: Vec{350, 400}, Radius: 30, Color: colorBumper, Impact: parameter.BumperImpactForce},
			{Center: Vec{275, 520}, Radius: 30, Color: colorBumper, Impact: parameter.BumperImpactForce},
		},
		Curves: []CurveSpec{
			// Top arch, screen y grows downward so π..2π is the upper half
			{Center: Vec{300, 300}, Radius: 280, Width: 12, Start: math.Pi, End: 0, Segments: 24, Color: colorRail},
			{Center: Vec{420, 260}, Radius: 80, Width: 10, Start: 5.2, End: 0.6, Segments: 8, Color: colorRail},
		},
		Spinners: []SpinnerSpec{
			{Position: Vec{120, 360}, Size: Vec{40, 6}, Rotation: 0.3, Color: colorSpinner},
		},
	}
}
