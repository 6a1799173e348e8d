package engine

import "github.com/lixenwraith/pinball/vmath"

// DebugPoint is a transient diagnostic marker with a lifetime in frames
type DebugPoint struct {
	Position vmath.Vec2
	TTL      int
}

func (w *World) addDebugPoint(p vmath.Vec2) {
	if w.cfg.MaxDebugPoints == 0 || w.cfg.DebugPointTTL == 0 {
		return
	}
	if len(w.debugPoints) >= w.cfg.MaxDebugPoints {
		drop := len(w.debugPoints) - w.cfg.MaxDebugPoints + 1
		w.debugPoints = append(w.debugPoints[:0], w.debugPoints[drop:]...)
	}
	w.debugPoints = append(w.debugPoints, DebugPoint{Position: p, TTL: w.cfg.DebugPointTTL})
}

// DebugPoints returns the live debug points; callers must not retain the slice
func (w *World) DebugPoints() []DebugPoint {
	return w.debugPoints
}

// AgeDebugPoints decrements every lifetime and drops expired points
// The presentation layer calls this once per drawn frame
func (w *World) AgeDebugPoints() {
	kept := w.debugPoints[:0]
	for _, p := range w.debugPoints {
		p.TTL--
		if p.TTL > 0 {
			kept = append(kept, p)
		}
	}
	w.debugPoints = kept
	w.statDebug.Set(float64(len(kept)))
}
