package road

import (
	"math"
	"testing"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func mustTrack(t *testing.T, segs ...Segment) *Track {
	t.Helper()
	tr, err := NewTrack(DefaultConfig().SegmentLength, segs)
	if err != nil {
		t.Fatalf("NewTrack: %v", err)
	}
	return tr
}

func flatTrack(t *testing.T, n int) *Track {
	t.Helper()
	return mustTrack(t, make([]Segment, n)...)
}

func mustSim(t *testing.T, tr *Track) *Simulation {
	t.Helper()
	s, err := NewSimulation(DefaultConfig(), tr)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return s
}
