package race

// Input is the state of the controls for one tick.
type Input struct {
	Left  bool
	Right bool
	Accel bool
	Brake bool
	Turbo bool
}

// timer counts down a fixed duration in seconds.
type timer struct {
	duration float64
	elapsed  float64
	repeat   bool
}

func newTimer(seconds float64, repeat bool) timer {
	return timer{duration: seconds, repeat: repeat}
}

// tick advances the timer and reports whether it finished during this call.
func (t *timer) tick(dt float64) bool {
	if !t.repeat && t.elapsed >= t.duration {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}
	if t.repeat {
		t.elapsed -= t.duration
	}
	return true
}

func (t *timer) reset(seconds float64) {
	t.duration = seconds
	t.elapsed = 0
}
