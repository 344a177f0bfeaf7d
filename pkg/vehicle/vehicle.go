package vehicle

// Vehicle is anything that drives along the road.
type Vehicle interface {
	CurrentSpeed() float64
	TopSpeed() float64
	CurrentTurnRate() float64
}

const (
	// MaxSpeed is the fastest any racer can go, in road units per second.
	MaxSpeed = 10.43
	// MaxTurnRate bounds sideways speed in pixels per second.
	MaxTurnRate = 400.0
	// NumTurnLevels is the number of sprite poses between upright and full lean.
	NumTurnLevels = 4
)

// TurningSprite picks the lean pose for a turn rate. Poses run 0 (upright)
// to NumTurnLevels-1; left turns reuse the right-hand poses flipped.
func TurningSprite(turnRate float64) (pose int, flip bool) {
	div := int(turnRate / (MaxTurnRate / NumTurnLevels))
	pose = div
	if pose < 0 {
		pose = -pose
	}
	if pose > NumTurnLevels-1 {
		pose = NumTurnLevels - 1
	}
	return pose, div < 0
}

// PoseOf picks the lean pose for v's current turn rate.
func PoseOf(v Vehicle) (pose int, flip bool) {
	return TurningSprite(v.CurrentTurnRate())
}

// SpeedFraction is v's speed as a fraction of its top speed, clamped to
// [0, 1].
func SpeedFraction(v Vehicle) float64 {
	top := v.TopSpeed()
	if !(top > 0) {
		return 0
	}
	f := v.CurrentSpeed() / top
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// TireCycleSeconds is how long each tire animation frame lasts at speed.
func TireCycleSeconds(speed float64) float64 {
	s := (MaxSpeed / speed) / 16
	if s < 0.02 {
		return 0.02
	}
	if s > 0.5 {
		return 0.5
	}
	return s
}
