package vehicle

// Racer is a motorbike on the road, the player's or a rival's.
type Racer struct {
	Speed    float64
	TurnRate float64
	// LOD is the sprite detail level, 0 being the closest.
	LOD int

	// TireFrame alternates between 0 and 1 as the tires turn.
	TireFrame int
	tireTimer float64
}

// NewRacer returns a racer moving at speed.
func NewRacer(speed float64) *Racer {
	return &Racer{Speed: speed}
}

func (r *Racer) CurrentSpeed() float64    { return r.Speed }
func (r *Racer) TopSpeed() float64        { return MaxSpeed }
func (r *Racer) CurrentTurnRate() float64 { return r.TurnRate }

// Pose returns the lean pose and flip for the current turn rate.
func (r *Racer) Pose() (int, bool) {
	return PoseOf(r)
}

// UpdateTires advances the tire animation by dt seconds. Faster racers cycle
// faster.
func (r *Racer) UpdateTires(dt float64) {
	r.tireTimer += dt
	if r.tireTimer >= TireCycleSeconds(r.Speed) {
		r.tireTimer = 0
		r.TireFrame ^= 1
	}
}
