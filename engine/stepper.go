package engine

import "time"

// Tick advances the world by one presentation frame
// elapsed is wall time since the previous tick; input is sampled once for the whole tick
// Returns the number of physics sub-steps executed, never more than MaxSubSteps
func (w *World) Tick(elapsed time.Duration, in InputState) int {
	dt := elapsed.Seconds() * w.cfg.SpeedMultiplier
	w.held = in.Held
	w.statTicks.Add(1)

	w.applyResets(in)
	w.updateLauncher(dt, in)
	w.announceFlippers(in)

	w.physicsAccumulatedTime += dt
	steps := 0
	for w.physicsAccumulatedTime > w.cfg.TargetFrameTime && steps < w.cfg.MaxSubSteps {
		w.Step()
		w.physicsAccumulatedTime -= w.cfg.TargetFrameTime
		steps++
	}

	w.checkOutOfBounds()

	w.statTickSub.Set(float64(steps))
	w.statAccum.Set(w.physicsAccumulatedTime)
	w.statCharge.Set(w.LauncherCharge())
	return steps
}

// Step runs one fixed sub-step: time-varying colliders settle first, then the
// ball integrates and resolves against the settled colliders
func (w *World) Step() {
	dt := w.cfg.TargetFrameTime
	w.updateColliders(dt)

	contacts := w.ball.Update(dt, w.colliders, &w.params, contactSink{w})

	w.simulatedTime += dt
	w.statSteps.Add(1)
	w.statContact.Add(int64(contacts))
	w.statSimTime.Set(w.simulatedTime)
}

func (w *World) updateColliders(dt float64) {
	w.left.Drive(w.held.Has(ControlLeftFlipper))
	w.left.Step(dt)
	w.right.Drive(w.held.Has(ControlRightFlipper))
	w.right.Step(dt)

	for _, s := range w.spinners {
		swept := s.Step(dt, w.cfg.SpinnerDecayRate)
		w.score += swept * w.cfg.SpinnerScoreFactor
	}
}

func (w *World) announceFlippers(in InputState) {
	if in.Pressed.Has(ControlLeftFlipper) {
		w.emit(Event{Type: EventFlipperSwing, Value: -1})
	}
	if in.Pressed.Has(ControlRightFlipper) {
		w.emit(Event{Type: EventFlipperSwing, Value: 1})
	}
}
