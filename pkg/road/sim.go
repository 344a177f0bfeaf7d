package road

import "fmt"

// Simulation owns one camera on one track and runs the per-tick pipeline:
// Advance, then Project, then Query and Render against the same tables.
// It is not safe for concurrent use; hand Snapshot results to other
// goroutines instead.
type Simulation struct {
	cfg    Config
	table  *DepthTable
	track  *Track
	pos    Position
	proj   *Projection
	raster *Rasterizer
}

// NewSimulation validates cfg, builds the depth table and projects the camera
// at the start of track.
func NewSimulation(cfg Config, track *Track) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if track == nil || track.Len() == 0 {
		return nil, ErrEmptyTrack
	}
	if track.SegmentLength() != cfg.SegmentLength {
		return nil, fmt.Errorf("%w: track segment length %v, config %v", ErrInvalidConfig, track.SegmentLength(), cfg.SegmentLength)
	}
	table, err := BuildDepthTable(cfg.FieldHeight, cfg.CameraHeight, cfg.ConvergeDistance, cfg.NumRows)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:    cfg,
		table:  table,
		track:  track,
		pos:    NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval),
		proj:   NewProjection(table, cfg.FieldWidth, cfg.MaxDrawRows),
		raster: NewRasterizer(cfg),
	}
	s.Project()
	return s, nil
}

// Tick advances the camera dz and reprojects.
func (s *Simulation) Tick(dz float64) {
	s.Advance(dz)
	s.Project()
}

// Advance moves the camera dz forward without reprojecting.
func (s *Simulation) Advance(dz float64) { s.pos.Advance(dz) }

// Project rebuilds the projection from the current position.
func (s *Simulation) Project() { s.proj.Project(s.track, s.pos) }

// Render draws the latest projection and returns the buffer. The buffer is
// reused by the next call.
func (s *Simulation) Render() *PixelBuffer { return s.raster.Render(s.proj) }

// Query places a world point using the latest projection.
func (s *Simulation) Query(worldX, worldZ float64) (DrawParams, bool) {
	return s.proj.Query(worldX, worldZ)
}

// LateralPull returns the sideways drift per second that the curve zAhead of
// the camera applies to something moving at speed. A right-hand curve pulls
// the road centre left.
func (s *Simulation) LateralPull(zAhead, speed float64) float64 {
	return -s.pos.SegmentAhead(s.track, zAhead).Curve * speed * s.cfg.PullStrength
}

// Steer shifts the lateral offset by dx, clamped to MaxLateral. It takes
// effect at the next Project.
func (s *Simulation) Steer(dx float64) { s.SetLateral(s.pos.Lateral + dx) }

// SetLateral sets the lateral offset, clamped to MaxLateral.
func (s *Simulation) SetLateral(x float64) {
	m := s.cfg.MaxLateral
	if x > m {
		x = m
	} else if x < -m {
		x = -m
	}
	s.pos.Lateral = x
}

// IsOffroad reports whether the screen centre at the nearest row lies
// outside the pavement and rumble strips.
func (s *Simulation) IsOffroad() bool {
	center := float64(s.cfg.FieldWidth) / 2
	edge := (s.cfg.PavementWidth + s.cfg.RumbleWidth) * s.table.Scale[0]
	d := center - s.proj.XOffset[0]
	if d < 0 {
		d = -d
	}
	return d > edge
}

// Snapshot returns a copy of the latest projection that later ticks leave
// untouched.
func (s *Simulation) Snapshot() *Projection { return s.proj.Clone() }

// Projection returns the live projection. It changes on every Project.
func (s *Simulation) Projection() *Projection { return s.proj }

// DrawHeight returns the number of scanlines showing road.
func (s *Simulation) DrawHeight() int      { return s.proj.DrawHeight }
func (s *Simulation) Depth() *DepthTable   { return s.table }
func (s *Simulation) Track() *Track        { return s.track }
func (s *Simulation) Position() Position   { return s.pos }
func (s *Simulation) Config() Config       { return s.cfg }
func (s *Simulation) Palette() Palette     { return s.raster.palette }
func (s *Simulation) SetPalette(p Palette) { s.raster.SetPalette(p) }
