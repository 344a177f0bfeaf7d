package race

import "time"

// TimeStep is the length of one logical tick in seconds.
const TimeStep = 1.0 / 30

// FixedStep decouples logical ticks from the display rate. Feed it elapsed
// wall-clock time and run as many ticks as it returns.
type FixedStep struct {
	Step time.Duration
	// MaxRuns caps ticks per call. Zero means no cap.
	MaxRuns int
	// DropAfterMax discards the backlog once the cap is hit, so a long
	// stall does not cause a burst of catch-up ticks later.
	DropAfterMax bool

	accum time.Duration
}

// NewFixedStep returns a scheduler for the logical tick rate that runs at
// most maxRuns ticks per frame and drops any backlog beyond that.
func NewFixedStep(maxRuns int) *FixedStep {
	return &FixedStep{
		Step:         time.Second / 30,
		MaxRuns:      maxRuns,
		DropAfterMax: true,
	}
}

// Advance adds elapsed to the backlog and returns how many ticks are due.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		f.accum += elapsed
	}
	runs := 0
	for f.accum >= f.Step {
		if f.MaxRuns > 0 && runs >= f.MaxRuns {
			if f.DropAfterMax {
				f.accum = 0
			}
			break
		}
		f.accum -= f.Step
		runs++
	}
	return runs
}

// Backlog returns the time accumulated towards the next tick.
func (f *FixedStep) Backlog() time.Duration { return f.accum }
