package road

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTrack = `# warm-up straight
0 0 x3
0 0 rival-green
0 0 signs-left x2
0.5 0   # right-hand bend
0.5 0.01 x2
-0.25 -0.01 signs-right rival-red
`

func TestParseTrack(t *testing.T) {
	tr, err := ParseTrack(strings.NewReader(sampleTrack), 15)
	if err != nil {
		t.Fatal(err)
	}
	want := []Segment{
		{}, {}, {},
		{Spawn: SpawnSpec{Kind: SpawnRival, Variant: VariantGreen}},
		{Spawn: SpawnSpec{Kind: SpawnSigns, Side: SideLeft}},
		{Spawn: SpawnSpec{Kind: SpawnSigns, Side: SideLeft}},
		{Curve: 0.5},
		{Curve: 0.5, Hill: 0.01},
		{Curve: 0.5, Hill: 0.01},
		{Curve: -0.25, Hill: -0.01, Spawn: SpawnSpec{Kind: SpawnRival, Variant: VariantRed}},
	}
	if tr.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", tr.Len(), len(want))
	}
	for i, w := range want {
		if got := tr.At(i); got != w {
			t.Errorf("segment %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestParseTrackErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line string
	}{
		{"one field", "0 0\n0.5\n", "line 2"},
		{"bad curve", "left 0\n", "line 1"},
		{"bad hill", "0 up\n", "line 1"},
		{"bad repeat", "0 0\n\n0 0 x0\n", "line 3"},
		{"unknown spawn", "0 0 cones\n", "line 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseTrack(strings.NewReader(c.in), 15)
			if !errors.Is(err, ErrTrackFormat) {
				t.Fatalf("err = %v, want ErrTrackFormat", err)
			}
			if !strings.Contains(err.Error(), c.line) {
				t.Fatalf("err = %v, want %s", err, c.line)
			}
		})
	}

	if _, err := ParseTrack(strings.NewReader("# nothing\n\n"), 15); !errors.Is(err, ErrEmptyTrack) {
		t.Fatalf("empty track: err = %v", err)
	}
}

func TestLoadTrackFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.track")
	if err := os.WriteFile(path, []byte(sampleTrack), 0o644); err != nil {
		t.Fatal(err)
	}
	tr, err := LoadTrackFile(path, 15)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 10 || tr.SegmentLength() != 15 {
		t.Fatalf("track: %d segments of %v", tr.Len(), tr.SegmentLength())
	}
	if _, err := LoadTrackFile(filepath.Join(t.TempDir(), "none.track"), 15); err == nil {
		t.Fatal("missing file loaded")
	}
}

func TestTrackClampsAndAppends(t *testing.T) {
	if _, err := NewTrack(15, nil); !errors.Is(err, ErrEmptyTrack) {
		t.Fatalf("nil segments: err = %v", err)
	}
	if _, err := NewTrack(0, []Segment{{}}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("zero length: err = %v", err)
	}
	src := []Segment{{Curve: 1}, {Curve: 2}}
	tr := mustTrack(t, src...)
	src[0].Curve = 99
	if tr.At(0).Curve != 1 {
		t.Fatal("track shares the caller's slice")
	}
	if tr.At(-3).Curve != 1 || tr.At(7).Curve != 2 {
		t.Fatal("lookups do not clamp")
	}
	tr.Append(Segment{Curve: 3})
	if tr.Len() != 3 || tr.At(7).Curve != 3 || tr.SegmentAtDistance(31).Curve != 3 {
		t.Fatal("append did not extend the clamp")
	}
}

func TestShippedTracksParse(t *testing.T) {
	files, err := filepath.Glob("../../assets/tracks/*.track")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skip("no shipped tracks")
	}
	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			tr, err := LoadTrackFile(f, 15)
			if err != nil {
				t.Fatal(err)
			}
			if tr.Len() < 10 {
				t.Fatalf("only %d segments", tr.Len())
			}
		})
	}
}

func TestLoadTrackPalette(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "dusk.track")
	base := DefaultPalette()

	if got := TrackPalettePath(track); got != filepath.Join(dir, "dusk.palette.json") {
		t.Fatalf("TrackPalettePath = %q", got)
	}

	pal, err := LoadTrackPalette(track, base)
	if err != nil || pal != base {
		t.Fatalf("no palette file: %+v, %v", pal, err)
	}

	// 4278190335 is opaque red, 0xFF0000FF.
	data := `{"center_line": 4278190335, "offroad": [4278190080, 4278190080]}`
	if err := os.WriteFile(TrackPalettePath(track), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	pal, err = LoadTrackPalette(track, base)
	if err != nil {
		t.Fatal(err)
	}
	if pal.CenterLine != 0xFF0000FF || pal.Offroad != (Band{0xFF000000, 0xFF000000}) {
		t.Fatalf("palette = %+v", pal)
	}
	if pal.Pavement != base.Pavement || pal.Rumble != base.Rumble {
		t.Fatalf("unset bands changed: %+v", pal)
	}

	os.WriteFile(TrackPalettePath(track), []byte("{center_line"), 0o644)
	if _, err := LoadTrackPalette(track, base); err == nil {
		t.Fatal("bad palette accepted")
	}
}

func TestShippedPalettesParse(t *testing.T) {
	files, _ := filepath.Glob("../../assets/tracks/*.palette.json")
	for _, f := range files {
		if _, err := LoadPalette(f, DefaultPalette()); err != nil {
			t.Errorf("%s: %v", f, err)
		}
	}
}
