package race

import (
	"testing"
	"time"
)

func TestFixedStepAccumulates(t *testing.T) {
	f := &FixedStep{Step: 10 * time.Millisecond}
	steps := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 0},
		{4 * time.Millisecond, 0},
		{6 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{5 * time.Millisecond, 1},
		{-time.Second, 0},
	}
	for i, s := range steps {
		if got := f.Advance(s.elapsed); got != s.want {
			t.Fatalf("step %d: Advance(%v) = %d, want %d", i, s.elapsed, got, s.want)
		}
	}
	if f.Backlog() != 0 {
		t.Fatalf("Backlog = %v, want 0", f.Backlog())
	}
}

func TestFixedStepCap(t *testing.T) {
	keep := &FixedStep{Step: 10 * time.Millisecond, MaxRuns: 3}
	if got := keep.Advance(100 * time.Millisecond); got != 3 {
		t.Fatalf("capped Advance = %d, want 3", got)
	}
	if keep.Backlog() != 70*time.Millisecond {
		t.Fatalf("Backlog = %v, want 70ms kept", keep.Backlog())
	}

	drop := &FixedStep{Step: 10 * time.Millisecond, MaxRuns: 3, DropAfterMax: true}
	if got := drop.Advance(100 * time.Millisecond); got != 3 {
		t.Fatalf("capped Advance = %d, want 3", got)
	}
	if drop.Backlog() != 0 {
		t.Fatalf("Backlog = %v, want dropped", drop.Backlog())
	}
}

func TestNewFixedStep(t *testing.T) {
	f := NewFixedStep(4)
	if f.Step != time.Second/30 {
		t.Fatalf("Step = %v, want 1/30 s", f.Step)
	}
	if got := f.Advance(time.Second); got != 4 {
		t.Fatalf("Advance(1s) = %d, want the cap of 4", got)
	}
	f = NewFixedStep(0)
	if got := f.Advance(time.Second); got < 29 || got > 30 {
		t.Fatalf("uncapped Advance(1s) = %d, want 30 ticks", got)
	}
}
