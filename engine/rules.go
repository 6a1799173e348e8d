package engine

import "math"

// updateLauncher charges while held and fires on release
// The charge always resets on release; the ball only moves if it sits in the capture zone
func (w *World) updateLauncher(dt float64, in InputState) {
	if in.Held.Has(ControlLauncher) {
		w.launcherAccumulator = math.Min(w.launcherAccumulator+dt, w.cfg.MaxChargeTime)
	}
	if !in.Released.Has(ControlLauncher) {
		return
	}
	if w.cfg.CaptureZone.Contains(w.ball.Position) {
		strength := w.launcherAccumulator / w.cfg.MaxChargeTime * w.cfg.MaxLaunchStrength
		w.ball.Velocity[1] = -strength
		w.emit(Event{Type: EventLaunch, Value: w.ball.Velocity[1]})
	}
	w.launcherAccumulator = 0
}

func (w *World) applyResets(in InputState) {
	if in.Pressed.Has(ControlFullReset) {
		w.FullReset()
		return
	}
	if in.Pressed.Has(ControlSoftReset) {
		w.loseBall()
	}
}

func (w *World) checkOutOfBounds() {
	if w.OutOfBounds() {
		w.loseBall()
	}
}

// OutOfBounds reports whether the ball has fallen past the playfield margin
func (w *World) OutOfBounds() bool {
	return w.ball.Position[1] > w.cfg.PlayfieldHeight+w.cfg.OutOfBoundsMargin
}

// loseBall spends a life and respawns, or ends the game when none are left
func (w *World) loseBall() {
	if w.lives > 0 {
		w.lives--
		w.respawn()
		w.statLost.Add(1)
		w.emit(Event{Type: EventBallLost, Value: float64(w.lives)})
		return
	}
	if !w.gameOver && w.OutOfBounds() {
		w.gameOver = true
		w.emit(Event{Type: EventGameOver, Value: w.score})
	}
}

// FullReset restores starting lives, clears score and spinners, and respawns the ball
func (w *World) FullReset() {
	w.lives = w.cfg.StartingLives
	w.score = 0
	w.gameOver = false
	w.launcherAccumulator = 0
	for _, s := range w.spinners {
		s.AccVelocity = 0
	}
	w.respawn()
	w.emit(Event{Type: EventFullReset})
}
