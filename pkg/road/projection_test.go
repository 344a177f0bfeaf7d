package road

import (
	"math"
	"testing"
)

func newProjection(t *testing.T) (*Projection, Config) {
	t.Helper()
	cfg := DefaultConfig()
	tbl, err := BuildDepthTable(cfg.FieldHeight, cfg.CameraHeight, cfg.ConvergeDistance, cfg.NumRows)
	if err != nil {
		t.Fatal(err)
	}
	return NewProjection(tbl, cfg.FieldWidth, cfg.MaxDrawRows), cfg
}

func TestProjectFlatRoad(t *testing.T) {
	p, cfg := newProjection(t)
	p.Project(flatTrack(t, 4), NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval))

	if p.DrawHeight != cfg.NumRows {
		t.Fatalf("DrawHeight = %d, want %d", p.DrawHeight, cfg.NumRows)
	}
	for i, x := range p.XOffset {
		if x != 160 {
			t.Fatalf("XOffset[%d] = %v, want 160", i, x)
		}
		if p.Advance[i] != 1 {
			t.Fatalf("Advance[%d] = %v, want 1", i, p.Advance[i])
		}
		if p.RowToScanline[i] != i {
			t.Fatalf("RowToScanline[%d] = %d", i, p.RowToScanline[i])
		}
	}
	for s, row := range p.ScanlineToRow {
		want := s
		if s >= cfg.NumRows {
			want = NoRow
		}
		if row != want {
			t.Fatalf("ScanlineToRow[%d] = %d, want %d", s, row, want)
		}
	}
}

func TestProjectStraightIgnoresHills(t *testing.T) {
	p, cfg := newProjection(t)
	tr := mustTrack(t, Segment{Hill: 0.02}, Segment{Hill: -0.03}, Segment{Hill: 0.01})
	pos := NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval)
	pos.Advance(7)
	pos.Lateral = -35
	p.Project(tr, pos)

	n := float64(cfg.NumRows)
	for i, x := range p.XOffset {
		want := 160 + pos.Lateral*(1-float64(i)/n)
		if !approx(x, want, 1e-9) {
			t.Fatalf("XOffset[%d] = %v, want %v", i, x, want)
		}
	}
}

func TestProjectConvergence(t *testing.T) {
	for _, lateral := range []float64{-250, -40, 0, 40, 499} {
		p, cfg := newProjection(t)
		pos := NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval)
		pos.Lateral = lateral
		p.Project(flatTrack(t, 2), pos)

		center := float64(cfg.FieldWidth) / 2
		if !approx(p.XOffset[0], center+lateral, 1e-9) {
			t.Errorf("L=%v: XOffset[0] = %v, want %v", lateral, p.XOffset[0], center+lateral)
		}
		last := p.XOffset[cfg.NumRows-1]
		if !approx(last, center, math.Abs(lateral)/float64(cfg.NumRows)+1e-9) {
			t.Errorf("L=%v: XOffset[N-1] = %v, want about %v", lateral, last, center)
		}
		if p.Lateral != lateral {
			t.Errorf("L=%v: projection recorded lateral %v", lateral, p.Lateral)
		}
	}
}

func TestProjectCurveBoundaryIsSmooth(t *testing.T) {
	p, cfg := newProjection(t)
	tr := mustTrack(t, Segment{Curve: 0.1}, Segment{Curve: 0})
	depth := p.Table().Depth

	for _, at := range []float64{0, 5, 10, 14.5, 14.99} {
		pos := NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval)
		pos.Advance(at)
		p.Project(tr, pos)
		// X is integrated twice, so the change in slope between rows is
		// bounded by the rate times the row's depth step.
		for i := 1; i < len(p.XOffset)-1; i++ {
			slope0 := p.XOffset[i] - p.XOffset[i-1]
			slope1 := p.XOffset[i+1] - p.XOffset[i]
			if bound := 0.1*(depth[i+1]-depth[i]) + 1e-9; math.Abs(slope1-slope0) > bound {
				t.Fatalf("at %v: slope jumps by %v at row %d, bound %v", at, slope1-slope0, i, bound)
			}
		}
	}

	pos := NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval)
	pos.Advance(15)
	if seg, off := pos.Current(); seg != 1 || off != 0 {
		t.Fatalf("Current = (%d, %v), want (1, 0)", seg, off)
	}
	p.Project(tr, pos)
	for i, x := range p.XOffset {
		if x != 160 {
			t.Fatalf("past the curve XOffset[%d] = %v, want 160", i, x)
		}
	}
}

func TestProjectCrossesSeveralSegmentsPerRow(t *testing.T) {
	cfg := DefaultConfig()
	tbl, err := BuildDepthTable(cfg.FieldHeight, cfg.CameraHeight, cfg.ConvergeDistance, cfg.NumRows)
	if err != nil {
		t.Fatal(err)
	}
	const length = 0.05
	// Straight for the first 2 units ahead of the camera, curved after.
	segs := make([]Segment, 400)
	for i := 40; i < len(segs); i++ {
		segs[i].Curve = 1
	}
	tr, err := NewTrack(length, segs)
	if err != nil {
		t.Fatal(err)
	}
	p := NewProjection(tbl, cfg.FieldWidth, cfg.MaxDrawRows)
	p.Project(tr, NewPosition(length, cfg.ColorSwitchInterval))

	d0 := tbl.Depth[0]
	for i, x := range p.XOffset {
		ahead := tbl.Depth[i] - d0
		switch {
		case ahead < 1.9 && x != 160:
			t.Errorf("row %d (%.2f ahead) bent to %v before the curve", i, ahead, x)
		case ahead > 2.5 && !(x > 160):
			t.Errorf("row %d (%.2f ahead) still straight at %v", i, ahead, x)
		}
	}
}

func TestProjectHillChangesDrawHeight(t *testing.T) {
	p, cfg := newProjection(t)
	pos := NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval)

	p.Project(flatTrack(t, 2), pos)
	flat := p.DrawHeight

	p.Project(mustTrack(t, Segment{Hill: 0.02}, Segment{}), pos)
	if p.DrawHeight >= flat {
		t.Fatalf("uphill DrawHeight = %d, want below flat %d", p.DrawHeight, flat)
	}
	for s := p.DrawHeight; s < len(p.ScanlineToRow); s++ {
		if p.ScanlineToRow[s] != NoRow {
			t.Fatalf("ScanlineToRow[%d] = %d above DrawHeight %d", s, p.ScanlineToRow[s], p.DrawHeight)
		}
	}

	p.Project(mustTrack(t, Segment{Hill: -0.02}, Segment{}), pos)
	if p.DrawHeight <= flat {
		t.Fatalf("downhill DrawHeight = %d, want above flat %d", p.DrawHeight, flat)
	}
}

func TestProjectAdvanceFloor(t *testing.T) {
	p, cfg := newProjection(t)
	for _, hill := range []float64{-0.5, -5, -1e6, 1e6} {
		pos := NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval)
		p.Project(mustTrack(t, Segment{Hill: hill}, Segment{Hill: hill / 2}), pos)
		for i, a := range p.Advance {
			if !(a >= advanceFloor) {
				t.Fatalf("hill %v: Advance[%d] = %v", hill, i, a)
			}
		}
		if p.DrawHeight < 1 || p.DrawHeight > cfg.MaxDrawRows {
			t.Fatalf("hill %v: DrawHeight = %d", hill, p.DrawHeight)
		}
		prev := -1
		for s := 0; s < p.DrawHeight; s++ {
			if row := p.ScanlineToRow[s]; row < prev || row >= cfg.NumRows {
				t.Fatalf("hill %v: ScanlineToRow[%d] = %d after %d", hill, s, row, prev)
			} else {
				prev = row
			}
		}
	}
}

func TestProjectEmptyTrackPanics(t *testing.T) {
	p, cfg := newProjection(t)
	defer func() {
		if recover() == nil {
			t.Fatal("Project on an empty track did not panic")
		}
	}()
	p.Project(&Track{length: cfg.SegmentLength}, NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval))
}

func TestProjectionCloneIsIndependent(t *testing.T) {
	p, cfg := newProjection(t)
	pos := NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval)
	p.Project(flatTrack(t, 2), pos)
	c := p.Clone()

	p.Project(mustTrack(t, Segment{Curve: 0.5, Hill: 0.02}), pos)
	if c.DrawHeight != cfg.NumRows || c.XOffset[cfg.NumRows-1] != 160 {
		t.Fatalf("clone changed with its source: DrawHeight %d, far X %v", c.DrawHeight, c.XOffset[cfg.NumRows-1])
	}
}

func TestProjectDoesNotAllocate(t *testing.T) {
	p, cfg := newProjection(t)
	tr := mustTrack(t, Segment{Curve: 0.3}, Segment{Hill: 0.01}, Segment{Curve: -0.2, Hill: -0.01})
	pos := NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval)
	allocs := testing.AllocsPerRun(50, func() {
		pos.Advance(0.3)
		p.Project(tr, pos)
	})
	if allocs != 0 {
		t.Fatalf("Project allocated %v times per run", allocs)
	}
}

func BenchmarkProject(b *testing.B) {
	cfg := DefaultConfig()
	tbl, _ := BuildDepthTable(cfg.FieldHeight, cfg.CameraHeight, cfg.ConvergeDistance, cfg.NumRows)
	p := NewProjection(tbl, cfg.FieldWidth, cfg.MaxDrawRows)
	tr, _ := NewTrackGenerator(1).Generate(cfg.SegmentLength, 200)
	pos := NewPosition(cfg.SegmentLength, cfg.ColorSwitchInterval)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pos.Advance(0.3)
		p.Project(tr, pos)
	}
}
