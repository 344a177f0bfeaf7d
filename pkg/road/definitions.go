package road

import "fmt"

// SpawnKind says what a segment places on the road when it enters view.
type SpawnKind int

const (
	SpawnNone SpawnKind = iota
	SpawnSigns
	SpawnRival
)

// Side of the road a spawn appears on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Rival paint schemes.
const (
	VariantGreen = iota
	VariantRed
)

// SpawnSpec is the marker carried by a segment. The zero value spawns nothing.
type SpawnSpec struct {
	Kind    SpawnKind
	Side    Side
	Variant int
}

// Segment is one fixed-length slice of track. Curve and Hill are rates per
// unit of distance, not absolute positions.
type Segment struct {
	Curve float64
	Hill  float64
	Spawn SpawnSpec
}

// Track is an append-only run of equal-length segments. Lookups past either
// end clamp to the first or last segment, so the last authored segment
// extends indefinitely.
type Track struct {
	segments []Segment
	length   float64
}

// NewTrack returns a track of the given segments, each segmentLength long.
func NewTrack(segmentLength float64, segments []Segment) (*Track, error) {
	if !(segmentLength > 0) {
		return nil, fmt.Errorf("%w: segment length %v", ErrInvalidConfig, segmentLength)
	}
	if len(segments) == 0 {
		return nil, ErrEmptyTrack
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	return &Track{segments: segs, length: segmentLength}, nil
}

// Len returns the number of authored segments.
func (t *Track) Len() int { return len(t.segments) }

// SegmentLength returns the shared segment length.
func (t *Track) SegmentLength() float64 { return t.length }

// At returns segment i, clamped to the authored range.
func (t *Track) At(i int) Segment {
	if len(t.segments) == 0 {
		panic("road: lookup on an empty track")
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.segments) {
		i = len(t.segments) - 1
	}
	return t.segments[i]
}

// SegmentAtDistance returns the segment covering world distance z from the
// start of the track.
func (t *Track) SegmentAtDistance(z float64) Segment {
	return t.At(int(z / t.length))
}

// Append adds segments to the end of the track.
func (t *Track) Append(segments ...Segment) {
	t.segments = append(t.segments, segments...)
}
