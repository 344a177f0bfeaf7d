package road

import (
	"fmt"
	"math"
)

// DepthTable maps a road row (0 nearest the camera) to the world distance it
// shows and the sprite scale at that distance. It is never mutated after
// BuildDepthTable returns.
type DepthTable struct {
	Depth []float64
	Scale []float64
}

// Len returns the number of rows.
func (t *DepthTable) Len() int { return len(t.Depth) }

// Far returns the far clip distance, the depth of the last row.
func (t *DepthTable) Far() float64 { return t.Depth[len(t.Depth)-1] }

// BuildDepthTable reverse-projects numRows screen rows, counted up from the
// bottom of a field fieldHeight pixels tall, onto a flat road seen from
// cameraHeight. Rows converge on the line convergeDistance pixels above the
// bottom of the field.
func BuildDepthTable(fieldHeight int, cameraHeight, convergeDistance float64, numRows int) (*DepthTable, error) {
	switch {
	case numRows < 2:
		return nil, fmt.Errorf("%w: depth table needs at least 2 rows, got %d", ErrInvalidConfig, numRows)
	case !(cameraHeight > 0) || math.IsInf(cameraHeight, 0):
		return nil, fmt.Errorf("%w: camera height %v", ErrInvalidConfig, cameraHeight)
	case !(convergeDistance < float64(fieldHeight)):
		return nil, fmt.Errorf("%w: converge distance %v not below field height %d", ErrInvalidConfig, convergeDistance, fieldHeight)
	}

	horizon := float64(fieldHeight) - convergeDistance
	t := &DepthTable{
		Depth: make([]float64, numRows),
		Scale: make([]float64, numRows),
	}
	for i := 0; i < numRows; i++ {
		screenY := float64(fieldHeight - i)
		denom := screenY - horizon
		if !(denom > 0) {
			return nil, fmt.Errorf("%w: row %d reaches the convergence line", ErrInvalidConfig, i)
		}
		t.Depth[i] = cameraHeight / denom
		t.Scale[i] = 1 / t.Depth[i]
		if i > 0 && !(t.Depth[i] > t.Depth[i-1] && t.Scale[i] < t.Scale[i-1]) {
			return nil, fmt.Errorf("%w: depth table not monotonic at row %d", ErrInvalidConfig, i)
		}
	}
	Logger().Debug("depth table built", "rows", numRows, "near", t.Depth[0], "far", t.Depth[numRows-1])
	return t, nil
}
