package status

import (
	"sync"
	"testing"
)

func TestRegistryReturnsStablePointers(t *testing.T) {
	r := NewRegistry()

	c1 := r.Counter(SubSteps)
	c2 := r.Counter(SubSteps)
	if c1 != c2 {
		t.Error("counter lookup returned different pointers for the same name")
	}

	g1 := r.Gauge(Accumulator)
	g2 := r.Gauge(Accumulator)
	if g1 != g2 {
		t.Error("gauge lookup returned different pointers for the same name")
	}

	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestGaugeAdd(t *testing.T) {
	var g Gauge
	if g.Get() != 0 {
		t.Fatalf("zero gauge = %v", g.Get())
	}
	g.Set(1.5)
	if got := g.Add(2.25); got != 3.75 {
		t.Errorf("Add returned %v, want 3.75", got)
	}
	if g.Get() != 3.75 {
		t.Errorf("Expected 3.75, got %v", g.Get())
	}
}

func TestRegistryConcurrentCounters(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Counter(Contacts).Add(1)
				r.Gauge(SimulatedTime).Add(0.5)
			}
		}()
	}
	wg.Wait()

	if got := r.Counter(Contacts).Load(); got != 8000 {
		t.Errorf("counter = %d, want 8000", got)
	}
	if got := r.Gauge(SimulatedTime).Get(); got != 4000 {
		t.Errorf("Expected gauge 4000, got %v", got)
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Counter(Ticks).Store(3)
	r.Gauge(Accumulator).Set(0.25)
	r.Counter(BallsLost).Store(1)

	samples := r.Snapshot()
	want := []Sample{
		{BallsLost, "1"},
		{Ticks, "3"},
		{Accumulator, "0.250"},
	}
	// Sorted by name across kinds
	if len(samples) != len(want) {
		t.Fatalf("Expected %d samples, got %d", len(want), len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if samples[i-1].Name > samples[i].Name {
			t.Fatalf("snapshot not sorted: %v", samples)
		}
	}
	byName := make(map[string]string)
	for _, s := range samples {
		byName[s.Name] = s.Value
	}
	for _, w := range want {
		if byName[w.Name] != w.Value {
			t.Errorf("Expected %s = %q, got %q", w.Name, w.Value, byName[w.Name])
		}
	}
}
