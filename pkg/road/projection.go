package road

// NoRow marks a scanline that shows no road.
const NoRow = -1

const advanceFloor = 1e-5

// quadratic holds the coefficients of one integration pass.
type quadratic struct {
	x2 float64 // weight of the integrated rate
	x  float64 // weight of the instantaneous rate
}

var (
	curvePass = quadratic{x2: 1, x: 0}
	hillPass  = quadratic{x2: 0.5, x: 0.5}
)

func segmentCurve(s Segment) float64 { return s.Curve }
func segmentHill(s Segment) float64  { return s.Hill }

// Projection holds the per-tick tables derived from the track and the camera
// position. Query and the rasterizer read it; only Project writes it.
type Projection struct {
	table      *DepthTable
	fieldWidth int

	// XOffset is the screen X of the road centre at each depth row.
	XOffset []float64
	// Advance is how many depth rows one scanline covers at each depth row.
	Advance []float64
	// ScanlineToRow maps a scanline, counted up from the bottom of the road
	// field, to its depth row, or NoRow above DrawHeight.
	ScanlineToRow []int
	// RowToScanline is the first scanline showing a depth row, or NoRow when
	// the row is hidden.
	RowToScanline []int
	DrawHeight    int

	// Camera state the tables were projected with.
	Lateral     float64
	ColorOffset float64
}

// NewProjection allocates the tables for a depth table, a field fieldWidth
// pixels wide and at most maxDrawRows scanlines of road.
func NewProjection(table *DepthTable, fieldWidth, maxDrawRows int) *Projection {
	n := table.Len()
	p := &Projection{
		table:         table,
		fieldWidth:    fieldWidth,
		XOffset:       make([]float64, n),
		Advance:       make([]float64, n),
		ScanlineToRow: make([]int, maxDrawRows),
		RowToScanline: make([]int, n),
	}
	for i := range p.ScanlineToRow {
		p.ScanlineToRow[i] = NoRow
	}
	for i := range p.RowToScanline {
		p.RowToScanline[i] = NoRow
	}
	return p
}

// Table returns the depth table the projection was built on.
func (p *Projection) Table() *DepthTable { return p.table }

// FieldWidth returns the width of the road field in pixels.
func (p *Projection) FieldWidth() int { return p.fieldWidth }

// Project recomputes every table for the camera at pos on track t. It does
// not allocate.
func (p *Projection) Project(t *Track, pos Position) {
	if t == nil || t.Len() == 0 {
		panic("road: project on an empty track")
	}
	p.integrate(t, pos, segmentCurve, float64(p.fieldWidth)/2, curvePass, false, p.XOffset)
	p.integrate(t, pos, segmentHill, 1, hillPass, true, p.Advance)
	p.mapScanlines()

	n := float64(len(p.XOffset))
	for i := range p.XOffset {
		p.XOffset[i] += pos.Lateral * (1 - float64(i)/n)
	}
	p.Lateral = pos.Lateral
	p.ColorOffset = pos.ColorPhase
}

// integrate walks the depth rows from the camera outwards, accumulating the
// per-segment rate chosen by param into out.
func (p *Projection) integrate(t *Track, pos Position, param func(Segment) float64, initial float64, q quadratic, floored bool, out []float64) {
	depth := p.table.Depth
	length := t.SegmentLength()
	seg, off := pos.Segment, pos.Offset

	acc := initial
	deltaAccum := 0.0
	last := depth[0]
	for i, d := range depth {
		dd := d - last
		off += dd
		for off >= length {
			off -= length
			seg++
		}
		rate := param(t.At(seg))
		deltaAccum += rate * q.x2 * dd
		acc += deltaAccum
		v := acc + rate*q.x
		if floored && v < advanceFloor {
			v = advanceFloor
		}
		out[i] = v
		last = d
	}
}

// mapScanlines walks Advance to assign a depth row to each scanline and
// builds the inverse mapping.
func (p *Projection) mapScanlines() {
	n := len(p.Advance)
	idx := 0.0
	s := 0
	for ; s < len(p.ScanlineToRow); s++ {
		if idx >= float64(n) {
			break
		}
		row := int(idx)
		p.ScanlineToRow[s] = row
		idx += p.Advance[row]
	}
	p.DrawHeight = s
	for ; s < len(p.ScanlineToRow); s++ {
		p.ScanlineToRow[s] = NoRow
	}

	next := 0
	for s := 0; s < p.DrawHeight; s++ {
		for ; next <= p.ScanlineToRow[s]; next++ {
			p.RowToScanline[next] = s
		}
	}
	for ; next < n; next++ {
		p.RowToScanline[next] = NoRow
	}
}

// Clone returns a deep copy that later calls to Project do not touch.
func (p *Projection) Clone() *Projection {
	c := NewProjection(p.table, p.fieldWidth, len(p.ScanlineToRow))
	c.CopyFrom(p)
	return c
}

// CopyFrom overwrites p with src. Both must share table sizes.
func (p *Projection) CopyFrom(src *Projection) {
	p.table = src.table
	p.fieldWidth = src.fieldWidth
	copy(p.XOffset, src.XOffset)
	copy(p.Advance, src.Advance)
	copy(p.ScanlineToRow, src.ScanlineToRow)
	copy(p.RowToScanline, src.RowToScanline)
	p.DrawHeight = src.DrawHeight
	p.Lateral = src.Lateral
	p.ColorOffset = src.ColorOffset
}
