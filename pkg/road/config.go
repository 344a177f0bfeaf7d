package road

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Config holds the startup constants of the road renderer. None of them can
// change once a Simulation is built.
type Config struct {
	FieldWidth       int     `json:"field_width"`
	FieldHeight      int     `json:"field_height"`
	CameraHeight     float64 `json:"camera_height"`
	ConvergeDistance float64 `json:"converge_distance"`
	NumRows          int     `json:"num_rows"`
	MaxDrawRows      int     `json:"max_draw_rows"`
	SegmentLength    float64 `json:"segment_length"`

	PavementWidth       float64 `json:"pavement_width"`
	CenterLineWidth     float64 `json:"center_line_width"`
	RumbleWidth         float64 `json:"rumble_width"`
	ColorSwitchInterval float64 `json:"color_switch_interval"`

	// MaxLateral bounds the camera's sideways offset from the road centre.
	MaxLateral float64 `json:"max_lateral"`
	// PullStrength converts curvature and speed into sideways drift per second.
	PullStrength float64 `json:"pull_strength"`

	Palette Palette `json:"palette"`
}

// DefaultConfig returns the configuration of the 320x240 arcade road.
func DefaultConfig() Config {
	return Config{
		FieldWidth:          320,
		FieldHeight:         240,
		CameraHeight:        75,
		ConvergeDistance:    113.4,
		NumRows:             110,
		MaxDrawRows:         170,
		SegmentLength:       15,
		PavementWidth:       125,
		CenterLineWidth:     2,
		RumbleWidth:         20,
		ColorSwitchInterval: 0.5,
		MaxLateral:          500,
		PullStrength:        50,
		Palette:             DefaultPalette(),
	}
}

// Validate reports the first unusable value. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return fmt.Errorf("%w: field %dx%d", ErrInvalidConfig, c.FieldWidth, c.FieldHeight)
	case c.NumRows < 2:
		return fmt.Errorf("%w: num_rows %d, need at least 2", ErrInvalidConfig, c.NumRows)
	case c.MaxDrawRows < 1 || c.MaxDrawRows > c.FieldHeight:
		return fmt.Errorf("%w: max_draw_rows %d outside 1..%d", ErrInvalidConfig, c.MaxDrawRows, c.FieldHeight)
	case !(c.SegmentLength > 0) || math.IsInf(c.SegmentLength, 0):
		return fmt.Errorf("%w: segment_length %v", ErrInvalidConfig, c.SegmentLength)
	case !(c.ColorSwitchInterval > 0):
		return fmt.Errorf("%w: color_switch_interval %v", ErrInvalidConfig, c.ColorSwitchInterval)
	case c.PavementWidth < 0 || c.CenterLineWidth < 0 || c.RumbleWidth < 0:
		return fmt.Errorf("%w: negative road band width", ErrInvalidConfig)
	case c.CenterLineWidth > c.PavementWidth:
		return fmt.Errorf("%w: centre line wider than pavement", ErrInvalidConfig)
	case c.MaxLateral < 0:
		return fmt.Errorf("%w: max_lateral %v", ErrInvalidConfig, c.MaxLateral)
	}
	// The depth table carries the camera checks.
	_, err := BuildDepthTable(c.FieldHeight, c.CameraHeight, c.ConvergeDistance, c.NumRows)
	return err
}

// RequireField reports an error wrapping ErrInvalidConfig unless the field
// is exactly width x height, the size of a fixed display.
func (c Config) RequireField(width, height int) error {
	if c.FieldWidth != width || c.FieldHeight != height {
		return fmt.Errorf("%w: field %dx%d, display is %dx%d", ErrInvalidConfig, c.FieldWidth, c.FieldHeight, width, height)
	}
	return nil
}

// LoadConfig reads a JSON file over DefaultConfig and validates the result.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	Logger().Info("config loaded", "path", path, "rows", cfg.NumRows, "field", fmt.Sprintf("%dx%d", cfg.FieldWidth, cfg.FieldHeight))
	return cfg, nil
}
