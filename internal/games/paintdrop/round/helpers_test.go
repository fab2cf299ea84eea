package round

import (
	"math/rand"
	"testing"
	"time"
)

// scriptedRand returns the given values in order, cycling when exhausted.
type scriptedRand struct {
	vals []float64
	i    int
}

func (s *scriptedRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func testConfig() Config {
	return Config{
		MinX:         0,
		MaxX:         750,
		Margin:       60,
		MinCadence:   DefaultMinCadence,
		MaxCadence:   DefaultMaxCadence,
		FallDuration: DefaultFallDuration,
	}
}

func newTestController(t *testing.T, rng Rand) *Controller {
	t.Helper()
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	c, err := New(testConfig(), rng)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

// playLevel spawns and catches every drop of the current level.
func playLevel(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < c.Planned(); i++ {
		if _, err := c.NextDrop(); err != nil {
			t.Fatalf("NextDrop() #%d failed: %v", i, err)
		}
	}
	for i := 0; i < c.Planned(); i++ {
		if _, err := c.ReportCollected(); err != nil {
			t.Fatalf("ReportCollected() #%d failed: %v", i, err)
		}
	}
}

func approx(a, b time.Duration) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= time.Microsecond
}
