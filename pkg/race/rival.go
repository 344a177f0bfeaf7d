package race

import (
	"sort"

	"github.com/golangdaddy/joyride/pkg/road"
	"github.com/golangdaddy/joyride/pkg/vehicle"
)

// lodScales are the sprite scales at which rivals drop to the next detail
// level, nearest first.
var lodScales = [...]float64{0.83, 0.67, 0.55, 0.42, 0.30, 0.22, 0.16}

// NumLODs is the number of rival detail levels.
const NumLODs = len(lodScales) + 1

// LODForScale returns the detail level for a sprite drawn at scale: the
// number of thresholds above it.
func LODForScale(scale float64) int {
	return sort.Search(len(lodScales), func(i int) bool { return lodScales[i] <= scale })
}

// Rival is a computer-driven bike.
type Rival struct {
	vehicle.Racer
	Variant int
}

// Rival speed range. Rivals are slower than the player's cruising speed so
// they are overtaken.
const (
	rivalMinSpeed = 4.5
	rivalMaxSpeed = 7.0
	rivalLane     = 60.0
)

// NewRival returns a rival object at x, z moving at speed.
func NewRival(variant int, x, z, speed float64) *RoadObject {
	return &RoadObject{
		Kind:      KindRival,
		X:         x,
		Z:         z,
		Colliders: []Collider{{Left: -15, Right: 15}},
		Action:    SlidePlayer,
		Rival:     &Rival{Racer: *vehicle.NewRacer(speed), Variant: variant},
	}
}

// update moves the rival along the road and leans it into the curve ahead.
// Rivals lean as hard as a player at cruising speed would.
func (r *Rival) update(o *RoadObject, sim *road.Simulation) {
	o.Z += r.Speed * TimeStep
	r.TurnRate = -sim.LateralPull(o.Z, MaxNormalSpeed)
	r.UpdateTires(TimeStep)
}
