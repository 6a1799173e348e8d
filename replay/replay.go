// Package replay records the per-tick elapsed time and held controls of a
// session and plays them back into a fresh World. The simulation is a pure
// function of its inputs, so a replay reproduces the session exactly.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/pinball/engine"
	"github.com/vmihailenco/msgpack/v5"
)

// FormatVersion is written into every header
const FormatVersion = 1

// ErrUnsupportedVersion is returned for replays written by another format version
var ErrUnsupportedVersion = errors.New("unsupported replay version")

// Header identifies a recording
type Header struct {
	Version int       `msgpack:"v"`
	Session string    `msgpack:"id"`
	Level   string    `msgpack:"lvl"`
	Created time.Time `msgpack:"t"`
}

// Frame is one tick's input
// Edges are rebuilt from consecutive Held sets on playback
type Frame struct {
	Elapsed int64             `msgpack:"e"` // nanoseconds
	Held    engine.ControlSet `msgpack:"h"`
}

// Replay is a header and its frames
type Replay struct {
	Header Header  `msgpack:"hdr"`
	Frames []Frame `msgpack:"f"`
}

// Duration returns the recorded wall time
func (r *Replay) Duration() time.Duration {
	var d time.Duration
	for _, f := range r.Frames {
		d += time.Duration(f.Elapsed)
	}
	return d
}

// Save encodes the replay as msgpack
func (r *Replay) Save(w io.Writer) error {
	if err := msgpack.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("replay encode: %w", err)
	}
	return nil
}

// SaveFile writes the replay to path
func (r *Replay) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load decodes a replay and checks its version
func Load(rd io.Reader) (*Replay, error) {
	var r Replay
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("replay decode: %w", err)
	}
	if r.Header.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Header.Version)
	}
	return &r, nil
}

// LoadFile reads a replay from path
func LoadFile(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Recorder accumulates frames as the game loop ticks
type Recorder struct {
	replay Replay
}

// NewRecorder starts a recording for the named level
func NewRecorder(level string) *Recorder {
	return &Recorder{replay: Replay{Header: Header{
		Version: FormatVersion,
		Session: uuid.New().String(),
		Level:   level,
		Created: time.Now().UTC(),
	}}}
}

// Record appends one tick
func (r *Recorder) Record(elapsed time.Duration, in engine.InputState) {
	r.replay.Frames = append(r.replay.Frames, Frame{Elapsed: int64(elapsed), Held: in.Held})
}

// Len returns the number of recorded frames
func (r *Recorder) Len() int {
	return len(r.replay.Frames)
}

// Replay returns the recording so far
func (r *Recorder) Replay() *Replay {
	return &r.replay
}

// Player steps through a replay
type Player struct {
	replay   *Replay
	next     int
	prevHeld engine.ControlSet
}

// NewPlayer starts playback from the first frame
func NewPlayer(r *Replay) *Player {
	return &Player{replay: r}
}

// Next returns the next tick's elapsed time and input, false when finished
func (p *Player) Next() (time.Duration, engine.InputState, bool) {
	if p.next >= len(p.replay.Frames) {
		return 0, engine.InputState{}, false
	}
	f := p.replay.Frames[p.next]
	p.next++
	in := engine.NextInput(p.prevHeld, f.Held)
	p.prevHeld = f.Held
	return time.Duration(f.Elapsed), in, true
}

// Done reports whether every frame has been played
func (p *Player) Done() bool {
	return p.next >= len(p.replay.Frames)
}

// Remaining returns the number of frames left
func (p *Player) Remaining() int {
	return len(p.replay.Frames) - p.next
}

// Apply plays every remaining frame into w and returns the number applied
func (p *Player) Apply(w *engine.World) int {
	n := 0
	for {
		elapsed, in, ok := p.Next()
		if !ok {
			return n
		}
		w.Tick(elapsed, in)
		n++
	}
}
