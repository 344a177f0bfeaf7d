package road

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.FieldWidth = 0 }},
		{"one row", func(c *Config) { c.NumRows = 1 }},
		{"draw rows above field", func(c *Config) { c.MaxDrawRows = 241 }},
		{"zero segment", func(c *Config) { c.SegmentLength = 0 }},
		{"zero stripe", func(c *Config) { c.ColorSwitchInterval = 0 }},
		{"negative rumble", func(c *Config) { c.RumbleWidth = -1 }},
		{"centre line wider than road", func(c *Config) { c.CenterLineWidth = 200 }},
		{"negative lateral bound", func(c *Config) { c.MaxLateral = -1 }},
		{"converge past field", func(c *Config) { c.ConvergeDistance = 240 }},
		{"flat camera", func(c *Config) { c.CameraHeight = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "road.json")
	data := `{"num_rows": 100, "pull_strength": 12.5, "palette": {"center_line": 4278190335}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.NumRows = 100
	want.PullStrength = 12.5
	if cfg.NumRows != want.NumRows || cfg.PullStrength != want.PullStrength || cfg.FieldWidth != want.FieldWidth {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Palette.CenterLine != 0xFF0000FF {
		t.Fatalf("centre line = %#x", uint32(cfg.Palette.CenterLine))
	}
	if cfg.Palette.Pavement != want.Palette.Pavement {
		t.Fatalf("pavement = %v, want default", cfg.Palette.Pavement)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}

	garbage := filepath.Join(dir, "garbage.json")
	os.WriteFile(garbage, []byte("{num_rows"), 0o644)
	if _, err := LoadConfig(garbage); err == nil {
		t.Error("garbage parsed")
	}

	invalid := filepath.Join(dir, "invalid.json")
	os.WriteFile(invalid, []byte(`{"converge_distance": 500}`), 0o644)
	if _, err := LoadConfig(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values: err = %v", err)
	}
}

func TestConfigRequireField(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.RequireField(320, 240); err != nil {
		t.Fatalf("default field rejected: %v", err)
	}
	cfg.FieldWidth = 400
	if err := cfg.RequireField(320, 240); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("400x240 on 320x240: err = %v", err)
	}
	cfg = DefaultConfig()
	cfg.FieldHeight = 200
	if err := cfg.RequireField(320, 240); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("320x200 on 320x240: err = %v", err)
	}
}
