package race

import "github.com/golangdaddy/joyride/pkg/road"

// PlayerCollisionWidth is the width of the player's bike at the camera.
const PlayerCollisionWidth = 30.0

// Collider is a solid span relative to an object's X.
type Collider struct {
	Left  float64
	Right float64
}

// CollisionAction is what hitting an object does to the player.
type CollisionAction int

const (
	SlidePlayer CollisionAction = iota
	CrashPlayer
)

// ObjectKind says how to draw an object.
type ObjectKind int

const (
	KindSigns ObjectKind = iota
	KindRival
)

// RoadObject is something standing on or beside the road, positioned X
// sideways from the road centre and Z ahead of the camera.
type RoadObject struct {
	Kind      ObjectKind
	Side      road.Side
	X         float64
	Z         float64
	Colliders []Collider
	Action    CollisionAction

	// Rival is set for KindRival.
	Rival *Rival
}

// signOffset is how far from the road centre warning signs stand, just
// beyond the rumble strips at the camera.
const signOffset = 230.0

// NewSigns returns a pair of warning signs on side of the road at z.
func NewSigns(side road.Side, z float64) *RoadObject {
	x := -signOffset
	if side == road.SideRight {
		x = signOffset
	}
	return &RoadObject{
		Kind: KindSigns,
		Side: side,
		X:    x,
		Z:    z,
		Colliders: []Collider{
			{Left: -24, Right: -14},
			{Left: 14, Right: 24},
		},
		Action: CrashPlayer,
	}
}

// CollidesWith reports whether any collider overlaps a player at playerX.
func (o *RoadObject) CollidesWith(playerX float64) bool {
	pl := playerX - PlayerCollisionWidth/2
	pr := playerX + PlayerCollisionWidth/2
	for _, c := range o.Colliders {
		if c.Left+o.X <= pr && pl <= c.Right+o.X {
			return true
		}
	}
	return false
}

// SlideDirectionFrom is the way the player is thrown when clipping an
// object: away from it.
func (o *RoadObject) SlideDirectionFrom(playerX float64) SlideDirection {
	if o.X > playerX {
		return SlideLeft
	}
	return SlideRight
}
