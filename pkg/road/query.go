package road

import "sort"

// DrawParams places a sprite on screen.
type DrawParams struct {
	Scale float64
	Row   int     // depth row the sprite stands on
	X     float64 // screen X of the sprite's anchor
	Y     int     // scanline counted up from the bottom of the road field
}

// ImageY converts Y to a top-down row of an image height pixels tall whose
// bottom row is scanline 0.
func (d DrawParams) ImageY(height int) int {
	return height - 1 - d.Y
}

// Query projects a world point, worldX sideways from the road centre and
// worldZ ahead of the camera. It reports false when the point is behind the
// camera, at or past the far clip, or hidden behind a crest.
func (p *Projection) Query(worldX, worldZ float64) (DrawParams, bool) {
	depth := p.table.Depth
	n := len(depth)
	ip := sort.Search(n, func(i int) bool { return depth[i] > worldZ })
	if ip == 0 || ip == n {
		return DrawParams{}, false
	}
	row := ip - 1
	y := p.RowToScanline[row]
	if y == NoRow || y >= p.DrawHeight {
		return DrawParams{}, false
	}
	return DrawParams{
		Scale: p.table.Scale[row],
		Row:   row,
		X:     p.XOffset[row] + worldX*(1-float64(row)/float64(n)),
		Y:     y,
	}, true
}
