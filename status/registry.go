// Package status is the metrics registry shared by the simulation and the HUD.
// Writers cache metric pointers once and update atomics on the hot path;
// readers take sorted snapshots.
package status

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Well-known metric names
const (
	SubSteps       = "physics.substeps"
	Contacts       = "physics.contacts"
	Accumulator    = "physics.accumulator"
	SimulatedTime  = "physics.simulated"
	Ticks          = "game.ticks"
	BallsLost      = "game.balls_lost"
	TickSubSteps   = "game.tick_substeps"
	DebugPoints    = "debug.points"
	LauncherCharge = "launcher.charge"
)

// Gauge is an atomic float64; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add adds delta and returns the new value
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Sample is one metric reading
type Sample struct {
	Name  string
	Value string
}

// Registry holds named counters and gauges
// Lookup allocates on first use; returned pointers stay valid for the registry's life
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	gauges   map[string]*Gauge
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*Gauge),
	}
}

// Counter returns the counter for name, creating it if absent
func (r *Registry) Counter(name string) *atomic.Int64 {
	return lookup(&r.mu, r.counters, name)
}

// Gauge returns the gauge for name, creating it if absent
func (r *Registry) Gauge(name string) *Gauge {
	return lookup(&r.mu, r.gauges, name)
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counters) + len(r.gauges)
}

// Snapshot returns every metric formatted, sorted by name
func (r *Registry) Snapshot() []Sample {
	r.mu.RLock()
	samples := make([]Sample, 0, len(r.counters)+len(r.gauges))
	for name, c := range r.counters {
		samples = append(samples, Sample{Name: name, Value: fmt.Sprintf("%d", c.Load())})
	}
	for name, g := range r.gauges {
		samples = append(samples, Sample{Name: name, Value: fmt.Sprintf("%.3f", g.Get())})
	}
	r.mu.RUnlock()

	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples
}

func lookup[T any](mu *sync.RWMutex, items map[string]*T, name string) *T {
	mu.RLock()
	if ptr, ok := items[name]; ok {
		mu.RUnlock()
		return ptr
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	// Another writer may have created it between the locks
	if ptr, ok := items[name]; ok {
		return ptr
	}
	ptr := new(T)
	items[name] = ptr
	return ptr
}
