package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/physics"
	"github.com/lixenwraith/pinball/status"
	"github.com/lixenwraith/pinball/vmath"
)

var testBumperColor = tcell.NewRGBColor(224, 80, 60)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestWorld() *engine.World {
	dims := vmath.V2(70, 14)
	left := physics.NewFlipper(vmath.V2(200, 825), vmath.V2(35, 0), dims, 0.45, -0.45, 18, tcell.ColorYellow)
	right := physics.NewFlipper(vmath.V2(350, 825), vmath.V2(-35, 0), dims, -0.45, 0.45, 18, tcell.ColorYellow)
	bumper := physics.NewCircle(vmath.V2(300, 400), 30, testBumperColor, 300)
	field := engine.Playfield{
		Colliders: []physics.Collider{left, right, bumper, physics.Empty{}},
		Left:      left,
		Right:     right,
	}
	return engine.NewWorld(engine.DefaultConfig(), field, status.NewRegistry())
}

func rowText(screen tcell.SimulationScreen, y, cols int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

// TestFormatNumber verifies digit grouping
func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1 000"},
		{12345, "12 345"},
		{1234567, "1 234 567"},
		{-9876543, "-9 876 543"},
		{-12, "-12"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("Expected FormatNumber(%d) = %q, got %q", tt.in, tt.want, got)
		}
	}
}

// TestViewportMapping verifies world points land in the cell whose center maps back near them
func TestViewportMapping(t *testing.T) {
	vp := NewViewport(80, 41, 600, 1000)
	if vp.CellH != 25 || vp.CellW != 12.5 {
		t.Fatalf("Expected 12.5×25 cells, got %v×%v", vp.CellW, vp.CellH)
	}
	if vp.X != 16 {
		t.Errorf("Expected playfield centered at column 16, got %d", vp.X)
	}

	p := vmath.V2(568, 950)
	x, y := vp.ToScreen(p)
	if x != 61 || y != 38 {
		t.Errorf("Expected cell (61,38), got (%d,%d)", x, y)
	}
	c := vp.CellCenter(x, y)
	if d := c.Sub(p); d[0] < -vp.CellW/2 || d[0] > vp.CellW/2 || d[1] < -vp.CellH/2 || d[1] > vp.CellH/2 {
		t.Errorf("Cell center %v is not within half a cell of %v", c, p)
	}
}

// TestShapeDistances verifies the painting distance functions
func TestShapeDistances(t *testing.T) {
	if d := circleDistance(vmath.V2(10, 0), vmath.Vec2{}, 4); d != 6 {
		t.Errorf("Expected circle distance 6, got %v", d)
	}
	if d := boxDistance(vmath.V2(0, 0), vmath.Vec2{}, vmath.V2(10, 4), 0); d != -2 {
		t.Errorf("Expected inside distance -2, got %v", d)
	}
	if d := boxDistance(vmath.V2(8, 0), vmath.Vec2{}, vmath.V2(10, 4), 0); d != 3 {
		t.Errorf("Expected face distance 3, got %v", d)
	}
}

// TestDrawPlacesBallAndColliders verifies the ball glyph and a bumper fill land in their cells
func TestDrawPlacesBallAndColliders(t *testing.T) {
	screen := newTestScreen(t, 80, 41)
	w := newTestWorld()
	r := NewRenderer(screen)

	r.Draw(w)

	mainc, _, style, _ := screen.GetContent(61, 38)
	if mainc != glyphBall {
		t.Errorf("Expected ball glyph at (61,38), got %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != RgbBall || bg != RgbBackground {
		t.Errorf("Expected ball colors %v on %v, got %v on %v", RgbBall, RgbBackground, fg, bg)
	}

	mainc, _, style, _ = screen.GetContent(40, 16)
	if mainc != glyphSolid {
		t.Errorf("Expected bumper fill at (40,16), got %q", mainc)
	}
	if fg, _, _ := style.Decompose(); fg != testBumperColor {
		t.Errorf("Expected bumper color %v, got %v", testBumperColor, fg)
	}

	mainc, _, _, _ = screen.GetContent(2, 2)
	if mainc != ' ' {
		t.Errorf("Expected empty background at (2,2), got %q", mainc)
	}
}

// TestStatusBar verifies score, lives and the charge bar are shown
func TestStatusBar(t *testing.T) {
	screen := newTestScreen(t, 80, 41)
	w := newTestWorld()
	r := NewRenderer(screen)
	r.Title = "default"

	r.Draw(w)

	bar := rowText(screen, 40, 80)
	for _, want := range []string{"SCORE 0", "BALLS 3", "default", "["} {
		if !strings.Contains(bar, want) {
			t.Errorf("Status bar %q missing %q", bar, want)
		}
	}
	if strings.ContainsRune(bar, glyphCharge) {
		t.Errorf("Expected empty charge bar, got %q", bar)
	}
}

// TestStatsOverlay verifies the metrics overlay lists registry entries
func TestStatsOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 41)
	w := newTestWorld()
	r := NewRenderer(screen)

	r.Draw(w)
	if strings.Contains(rowText(screen, 0, 80), status.DebugPoints) {
		t.Fatal("Overlay drawn while disabled")
	}

	r.ShowStats = true
	r.Draw(w)
	if row := rowText(screen, 0, 80); !strings.Contains(row, status.DebugPoints) {
		t.Errorf("Expected first overlay row to name %q, got %q", status.DebugPoints, row)
	}
}

// TestDrawTinyScreen verifies drawing into a cramped terminal does not panic
func TestDrawTinyScreen(t *testing.T) {
	screen := newTestScreen(t, 3, 2)
	r := NewRenderer(screen)
	r.ShowStats = true
	r.ShowDebug = true
	r.Draw(newTestWorld())
}
