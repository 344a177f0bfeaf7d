package road

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Spawn tokens accepted in track files.
var spawnTokens = map[string]SpawnSpec{
	"signs-left":  {Kind: SpawnSigns, Side: SideLeft},
	"signs-right": {Kind: SpawnSigns, Side: SideRight},
	"rival-green": {Kind: SpawnRival, Variant: VariantGreen},
	"rival-red":   {Kind: SpawnRival, Variant: VariantRed},
}

// ParseTrack reads a track, one segment per line:
//
//	curve hill [spawn] [xN]
//
// where spawn is one of signs-left, signs-right, rival-green or rival-red and
// xN repeats the segment N times. Blank lines and text after '#' are ignored.
func ParseTrack(r io.Reader, segmentLength float64) (*Track, error) {
	var segments []Segment
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		seg, repeat, err := parseSegment(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrTrackFormat, lineNo, err)
		}
		for ; repeat > 0; repeat-- {
			segments = append(segments, seg)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading track: %w", err)
	}
	return NewTrack(segmentLength, segments)
}

func parseSegment(fields []string) (Segment, int, error) {
	var seg Segment
	if len(fields) < 2 {
		return seg, 0, fmt.Errorf("want curve and hill, got %q", strings.Join(fields, " "))
	}
	curve, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return seg, 0, fmt.Errorf("invalid curve '%s'", fields[0])
	}
	hill, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return seg, 0, fmt.Errorf("invalid hill '%s'", fields[1])
	}
	seg.Curve, seg.Hill = curve, hill

	repeat := 1
	for _, f := range fields[2:] {
		if spec, ok := spawnTokens[f]; ok {
			seg.Spawn = spec
			continue
		}
		if strings.HasPrefix(f, "x") {
			n, err := strconv.Atoi(f[1:])
			if err != nil || n < 1 {
				return seg, 0, fmt.Errorf("invalid repeat '%s'", f)
			}
			repeat = n
			continue
		}
		return seg, 0, fmt.Errorf("unknown token '%s'", f)
	}
	return seg, repeat, nil
}

// LoadTrackFile parses the track file at path.
func LoadTrackFile(path string, segmentLength float64) (*Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open track file: %w", err)
	}
	defer file.Close()

	t, err := ParseTrack(file, segmentLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("track loaded", "path", path, "segments", t.Len())
	return t, nil
}

// TrackPalettePath is where the palette of the track at trackPath lives:
// beside it, with ".palette.json" in place of the extension.
func TrackPalettePath(trackPath string) string {
	return strings.TrimSuffix(trackPath, filepath.Ext(trackPath)) + ".palette.json"
}

// LoadPalette reads a JSON palette over base. Colours missing from the file
// keep their base values.
func LoadPalette(path string, base Palette) (Palette, error) {
	pal := base
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("palette: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &pal); err != nil {
		return base, fmt.Errorf("palette: parse %s: %w", path, err)
	}
	Logger().Info("palette loaded", "path", path)
	return pal, nil
}

// LoadTrackPalette loads the palette beside a track file, or returns base
// when the track has none.
func LoadTrackPalette(trackPath string, base Palette) (Palette, error) {
	pal, err := LoadPalette(TrackPalettePath(trackPath), base)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	return pal, err
}
