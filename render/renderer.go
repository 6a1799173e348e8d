// Package render draws the playfield, ball and HUD onto a tcell screen.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pinball/engine"
	"github.com/lixenwraith/pinball/physics"
	"github.com/lixenwraith/pinball/vmath"
)

// Renderer draws a World onto a tcell screen
type Renderer struct {
	screen tcell.Screen

	// ShowDebug draws contact debug points
	ShowDebug bool
	// ShowStats draws the metrics overlay
	ShowStats bool
	// Title is shown in the status bar
	Title string
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the current mapping for the screen size and world
func (r *Renderer) Viewport(w *engine.World) Viewport {
	cols, rows := r.screen.Size()
	cfg := w.Config()
	return NewViewport(cols, rows, cfg.PlayfieldWidth, cfg.PlayfieldHeight)
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(w *engine.World) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)
	cols, rows := r.screen.Size()
	r.fill(0, 0, cols, rows, ' ', base)

	vp := r.Viewport(w)
	for _, c := range w.Colliders() {
		r.drawCollider(vp, c, base)
	}

	if r.ShowDebug {
		style := base.Foreground(RgbDebugPoint)
		for _, p := range w.DebugPoints() {
			x, y := vp.ToScreen(p.Position)
			r.set(x, y, glyphDebug, style)
		}
	}

	ball := w.Ball()
	bx, by := vp.ToScreen(ball.Position)
	r.set(bx, by, glyphBall, base.Foreground(RgbBall))

	r.drawStatusBar(w, cols, rows)
	if r.ShowStats {
		r.drawStats(w, base)
	}
	r.screen.Show()
}

func (r *Renderer) drawCollider(vp Viewport, c physics.Collider, base tcell.Style) {
	switch c := c.(type) {
	case *physics.Rectangle:
		r.drawBox(vp, c.Position, c.Dimensions, c.Rotation, glyphSolid, base.Foreground(c.Color))
	case *physics.Circle:
		r.drawCircle(vp, c.Position, c.Radius, base.Foreground(c.Color))
	case *physics.Curve:
		style := base.Foreground(c.Color)
		for _, seg := range c.RenderSegments() {
			r.drawBox(vp, seg.Position, seg.Dimensions, seg.Rotation, glyphRail, style)
		}
	case *physics.Flipper:
		body := c.Body()
		r.drawBox(vp, body.Position, body.Dimensions, body.Rotation, glyphSolid, base.Foreground(c.Color))
	case *physics.Spinner:
		// The paddle spins about its long axis; its visible length foreshortens
		dims := c.Dimensions
		dims[0] = math.Max(dims[0]*math.Abs(math.Cos(c.TopDownRotation)), dims[1])
		r.drawBox(vp, c.Position, dims, c.Rotation, glyphSpinner, base.Foreground(c.Color))
	case physics.Empty:
	default:
		panic(fmt.Sprintf("render: unknown collider %T", c))
	}
}

func (r *Renderer) drawBox(vp Viewport, center, dims vmath.Vec2, rotation float64, glyph rune, style tcell.Style) {
	extent := dims.Len()/2 + vp.reach()
	r.paint(vp, center, extent, glyph, style, func(p vmath.Vec2) float64 {
		return boxDistance(p, center, dims, rotation)
	})
}

func (r *Renderer) drawCircle(vp Viewport, center vmath.Vec2, radius float64, style tcell.Style) {
	extent := radius + vp.reach()
	r.paint(vp, center, extent, glyphSolid, style, func(p vmath.Vec2) float64 {
		return circleDistance(p, center, radius)
	})
}

// paint fills every cell within extent of center whose center lies within reach of the shape
func (r *Renderer) paint(vp Viewport, center vmath.Vec2, extent float64, glyph rune, style tcell.Style, dist func(vmath.Vec2) float64) {
	x0, y0 := vp.ToScreen(center.Sub(vmath.V2(extent, extent)))
	x1, y1 := vp.ToScreen(center.Add(vmath.V2(extent, extent)))
	reach := vp.reach()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if dist(vp.CellCenter(x, y)) <= reach {
				r.set(x, y, glyph, style)
			}
		}
	}
}

func (r *Renderer) drawStatusBar(w *engine.World, cols, rows int) {
	y := rows - 1
	if y < 0 {
		return
	}
	bar := tcell.StyleDefault.Background(RgbHudBg)
	label := bar.Foreground(RgbHudDim)
	value := bar.Foreground(RgbHudText)
	r.fill(0, y, cols, 1, ' ', bar)

	x := r.text(1, y, "SCORE ", label)
	x = r.text(x, y, FormatNumber(int64(math.Floor(w.Score()))), value)
	x = r.text(x+2, y, "BALLS ", label)
	x = r.text(x, y, fmt.Sprintf("%d", w.Lives()), value)

	if w.GameOver() {
		x = r.text(x+2, y, "GAME OVER  R: new game", bar.Foreground(RgbGameOver).Bold(true))
	} else if r.Title != "" {
		x = r.text(x+2, y, r.Title, label)
	}

	// Launcher charge bar, right-aligned
	const barWidth = 10
	start := cols - barWidth - 3
	if start <= x {
		return
	}
	filled := int(math.Round(w.LauncherCharge() * barWidth))
	r.set(start, y, '[', label)
	for i := 0; i < barWidth; i++ {
		if i < filled {
			r.set(start+1+i, y, glyphCharge, bar.Foreground(RgbChargeBar))
		} else {
			r.set(start+1+i, y, glyphEmpty, label)
		}
	}
	r.set(start+barWidth+1, y, ']', label)
}

func (r *Renderer) drawStats(w *engine.World, base tcell.Style) {
	style := base.Foreground(RgbStatsText)
	for i, s := range w.Stats().Snapshot() {
		r.text(1, i, fmt.Sprintf("%-20s %12s", s.Name, s.Value), style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.set(x, y, ch, style)
		x++
	}
	return x
}

func (r *Renderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			r.set(i, j, ch, style)
		}
	}
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
