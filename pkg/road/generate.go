package road

import "math/rand"

// TrackGenerator produces random sections of road.
type TrackGenerator struct {
	rng *rand.Rand

	// MinSection and MaxSection bound the segment count of one section.
	MinSection int
	MaxSection int
	// MaxCurve and MaxHill bound the rates of generated sections.
	MaxCurve float64
	MaxHill  float64
	// RivalChance is the chance that a straight segment carries a rival.
	RivalChance float64
}

// NewTrackGenerator returns a generator seeded with seed. Equal seeds give
// equal tracks.
func NewTrackGenerator(seed int64) *TrackGenerator {
	return &TrackGenerator{
		rng:         rand.New(rand.NewSource(seed)),
		MinSection:  6,
		MaxSection:  18,
		MaxCurve:    0.8,
		MaxHill:     0.025,
		RivalChance: 0.08,
	}
}

// Section returns one straight, curve or hill section.
func (g *TrackGenerator) Section() []Segment {
	n := g.MinSection
	if g.MaxSection > g.MinSection {
		n += g.rng.Intn(g.MaxSection - g.MinSection + 1)
	}
	segs := make([]Segment, n)

	switch g.rng.Intn(3) {
	case 0: // straight
		for i := range segs {
			if g.rng.Float64() < g.RivalChance {
				segs[i].Spawn = SpawnSpec{Kind: SpawnRival, Variant: g.rng.Intn(2)}
			}
		}
	case 1: // curve, with warning signs on the outside before it
		curve := g.MaxCurve * (0.4 + 0.6*g.rng.Float64())
		side := SideLeft
		if g.rng.Intn(2) == 0 {
			curve = -curve
			side = SideRight
		}
		warn := 2
		if warn > n/2 {
			warn = n / 2
		}
		for i := range segs {
			if i < warn {
				segs[i].Spawn = SpawnSpec{Kind: SpawnSigns, Side: side}
				continue
			}
			segs[i].Curve = curve
		}
	default: // hill up then down
		hill := g.MaxHill * (0.3 + 0.7*g.rng.Float64())
		half := n / 2
		for i := range segs {
			if i < half {
				segs[i].Hill = hill
			} else {
				segs[i].Hill = -hill
			}
		}
	}
	return segs
}

// Generate returns a track of at least n segments. It starts with a straight
// run so the race begins on a plain road.
func (g *TrackGenerator) Generate(segmentLength float64, n int) (*Track, error) {
	segs := make([]Segment, 0, n+g.MaxSection)
	for i := 0; i < g.MinSection; i++ {
		segs = append(segs, Segment{})
	}
	for len(segs) < n {
		segs = append(segs, g.Section()...)
	}
	return NewTrack(segmentLength, segs)
}

// Extend appends sections until t holds at least n segments.
func (g *TrackGenerator) Extend(t *Track, n int) {
	added := 0
	for t.Len() < n {
		s := g.Section()
		t.Append(s...)
		added += len(s)
	}
	if added > 0 {
		Logger().Info("track extended", "added", added, "segments", t.Len())
	}
}
