package road

import "math"

// Position is the camera's cursor on the track.
type Position struct {
	Segment int
	Offset  float64 // distance into Segment, 0 <= Offset < segment length
	// Lateral is how far the road centre sits right of the screen centre at
	// the camera. The camera's own world X is -Lateral.
	Lateral float64
	// ColorPhase is the distance travelled modulo two colour stripes.
	ColorPhase float64

	length   float64
	interval float64
}

// NewPosition returns a cursor at the start of a track whose segments are
// segmentLength long and whose colour stripes are colorInterval long.
func NewPosition(segmentLength, colorInterval float64) Position {
	return Position{length: segmentLength, interval: colorInterval}
}

// Advance moves the cursor dz forward. Moving backwards or by an infinite
// distance is not supported and panics.
func (p *Position) Advance(dz float64) {
	if dz < 0 || math.IsNaN(dz) || math.IsInf(dz, 0) {
		panic("road: advance by negative or non-finite distance")
	}
	p.Offset += dz
	if p.Offset >= p.length {
		n := math.Floor(p.Offset / p.length)
		p.Segment += int(n)
		p.Offset -= n * p.length
		// Float rounding can leave Offset a hair outside the segment.
		for p.Offset >= p.length {
			p.Segment++
			p.Offset -= p.length
		}
		if p.Offset < 0 {
			p.Offset = 0
		}
	}
	p.ColorPhase = math.Mod(p.ColorPhase+dz, 2*p.interval)
}

// Current returns the segment index and the offset into it.
func (p Position) Current() (int, float64) {
	return p.Segment, p.Offset
}

// Distance returns the total distance travelled from the start of the track.
func (p Position) Distance() float64 {
	return float64(p.Segment)*p.length + p.Offset
}

// SegmentAhead returns the segment zAhead in front of the camera.
func (p Position) SegmentAhead(t *Track, zAhead float64) Segment {
	return t.SegmentAtDistance(p.Distance() + zAhead)
}
