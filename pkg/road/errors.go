package road

import "errors"

var (
	// ErrInvalidConfig is wrapped by every configuration error. The road
	// cannot be drawn from a degenerate camera setup, so callers should stop.
	ErrInvalidConfig = errors.New("road: invalid configuration")

	// ErrEmptyTrack is returned when a track would have no segments.
	ErrEmptyTrack = errors.New("road: track has no segments")

	// ErrTrackFormat is wrapped by track file parse errors.
	ErrTrackFormat = errors.New("road: malformed track")
)
