package engine

import "github.com/lixenwraith/pinball/physics"

// EventType classifies game events emitted for presentation and audio
type EventType uint8

const (
	EventBumperHit EventType = iota
	EventWallHit
	EventFlipperSwing
	EventLaunch
	EventBallLost
	EventGameOver
	EventFullReset
)

var eventNames = [...]string{
	EventBumperHit:    "bumper_hit",
	EventWallHit:      "wall_hit",
	EventFlipperSwing: "flipper_swing",
	EventLaunch:       "launch",
	EventBallLost:     "ball_lost",
	EventGameOver:     "game_over",
	EventFullReset:    "full_reset",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is one game occurrence
// Value carries the event's magnitude: impact speed, launch velocity, lives left
type Event struct {
	Type     EventType
	Collider physics.ColliderKind
	Value    float64
}

// maxQueuedEvents bounds the queue when nobody drains it
const maxQueuedEvents = 64

func (w *World) emit(e Event) {
	if len(w.events) >= maxQueuedEvents {
		copy(w.events, w.events[1:])
		w.events = w.events[:len(w.events)-1]
	}
	w.events = append(w.events, e)
}

// DrainEvents returns and clears the events queued since the last drain
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := make([]Event, len(w.events))
	copy(out, w.events)
	w.events = w.events[:0]
	return out
}
