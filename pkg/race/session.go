package race

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/golangdaddy/joyride/pkg/road"
	"github.com/golangdaddy/joyride/pkg/vehicle"
)

const (
	// RaceSeconds is the time limit of one race.
	RaceSeconds = 100.0

	// Objects this many far clips away are dropped.
	despawnFarClips = 3

	skyboxUphillScroll = 0.3
)

// Sprite is one visible road object, ready to draw.
type Sprite struct {
	Kind    ObjectKind
	Variant int
	Side    road.Side
	Params  road.DrawParams
	// Z is the distance ahead of the camera.
	Z         float64
	LOD       int
	Pose      int
	Flip      bool
	TireFrame int
}

// Session is one race: the road, the player and everything on the road.
type Session struct {
	sim    *road.Simulation
	gen    *road.TrackGenerator
	rng    *rand.Rand
	player *Player

	objects   []*RoadObject
	sprites   []Sprite
	nextSpawn int

	remaining float64
	crashes   int
	finished  bool
}

// NewSession starts a race on sim. When gen is non-nil the track is
// extended ahead of the camera as the race goes on. seed drives rival lanes
// and speeds.
func NewSession(sim *road.Simulation, gen *road.TrackGenerator, seed int64) *Session {
	s := &Session{
		sim:       sim,
		gen:       gen,
		rng:       rand.New(rand.NewSource(seed)),
		player:    NewPlayer(),
		remaining: RaceSeconds,
	}
	s.extendTrack()
	s.spawn()
	return s
}

func (s *Session) Sim() *road.Simulation  { return s.sim }
func (s *Session) Player() *Player        { return s.player }
func (s *Session) Objects() []*RoadObject { return s.objects }
func (s *Session) Remaining() float64     { return s.remaining }
func (s *Session) Finished() bool         { return s.finished }
func (s *Session) Crashes() int           { return s.crashes }
func (s *Session) Distance() float64      { return s.player.Distance() }

// Tick runs one logical step. The order is fixed: the player drives and
// moves the camera, the road is reprojected, then new segments spawn their
// objects and every object moves and is checked against the player.
func (s *Session) Tick(in Input) {
	if s.finished {
		return
	}
	before := s.sim.Position().Distance()
	s.player.Tick(in, s.sim)
	s.sim.Project()
	dz := s.sim.Position().Distance() - before

	s.extendTrack()
	s.spawn()
	s.updateObjects(dz)

	s.remaining -= TimeStep
	if s.remaining <= 0 {
		s.remaining = 0
		s.finished = true
	}
}

func (s *Session) extendTrack() {
	if s.gen == nil {
		return
	}
	t := s.sim.Track()
	ahead := int(s.sim.Depth().Far()/t.SegmentLength()) + 2
	s.gen.Extend(t, s.sim.Position().Segment+ahead)
}

// spawn places the markers of segments that have come within the far clip.
func (s *Session) spawn() {
	t := s.sim.Track()
	length := t.SegmentLength()
	dist := s.sim.Position().Distance()
	near, far := s.sim.Depth().Depth[0], s.sim.Depth().Far()

	for float64(s.nextSpawn)*length < dist+far {
		i := s.nextSpawn
		s.nextSpawn++
		if i >= t.Len() {
			continue
		}
		z := float64(i)*length - dist
		if z < near {
			continue
		}
		spec := t.At(i).Spawn
		switch spec.Kind {
		case road.SpawnSigns:
			s.objects = append(s.objects, NewSigns(spec.Side, z))
		case road.SpawnRival:
			x := rivalLane
			if s.rng.Intn(2) == 0 {
				x = -x
			}
			speed := rivalMinSpeed + s.rng.Float64()*(rivalMaxSpeed-rivalMinSpeed)
			s.objects = append(s.objects, NewRival(spec.Variant, x, z, speed))
		}
	}
}

func (s *Session) updateObjects(dz float64) {
	near := s.sim.Depth().Depth[0]
	limit := s.sim.Depth().Far() * despawnFarClips
	playerX := -s.sim.Position().Lateral

	kept := s.objects[:0]
	for _, o := range s.objects {
		if o.Rival != nil {
			o.Rival.update(o, s.sim)
		}
		o.Z -= dz
		if o.Z < near {
			if o.CollidesWith(playerX) {
				s.collide(o, playerX)
			}
			continue
		}
		if o.Z > limit {
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(s.objects); i++ {
		s.objects[i] = nil
	}
	s.objects = kept
}

func (s *Session) collide(o *RoadObject, playerX float64) {
	switch o.Action {
	case CrashPlayer:
		if !s.player.Crashing() {
			s.crashes++
		}
		s.player.Crash()
	case SlidePlayer:
		s.player.Slide(o.SlideDirectionFrom(playerX))
	}
}

// Sprites returns the visible objects, farthest first. The slice is reused
// by the next call.
func (s *Session) Sprites() []Sprite {
	s.sprites = s.sprites[:0]
	for _, o := range s.objects {
		q, ok := s.sim.Query(o.X, o.Z)
		if !ok {
			continue
		}
		sp := Sprite{Kind: o.Kind, Side: o.Side, Params: q, Z: o.Z}
		if r := o.Rival; r != nil {
			r.LOD = LODForScale(q.Scale)
			sp.Variant = r.Variant
			sp.LOD = r.LOD
			sp.Pose, sp.Flip = vehicle.PoseOf(r)
			sp.TireFrame = r.TireFrame
		}
		s.sprites = append(s.sprites, sp)
	}
	slices.SortFunc(s.sprites, func(a, b Sprite) int { return cmp.Compare(b.Z, a.Z) })
	return s.sprites
}

// SkyboxOffset is the sky's vertical offset in pixels, upwards positive.
// It goes negative as an uphill crest hides road rows so the sky sinks
// behind the hill.
func (s *Session) SkyboxOffset() float64 {
	n := s.sim.Depth().Len()
	dh := s.sim.DrawHeight()
	if dh >= n {
		return 0
	}
	return -float64(n-dh) * skyboxUphillScroll
}
