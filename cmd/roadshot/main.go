// Command roadshot renders frames of a road without opening a window and
// writes them as WebP or PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/golangdaddy/joyride/pkg/background"
	"github.com/golangdaddy/joyride/pkg/race"
	"github.com/golangdaddy/joyride/pkg/road"
	"golang.org/x/image/draw"
)

type options struct {
	configPath  string
	trackPath   string
	palettePath string
	seed        int64
	segments    int
	frames      int
	every       int
	speed       float64
	lateral     float64
	scale       int
	sky         bool
	out         string
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "road config JSON file")
	flag.StringVar(&o.trackPath, "track", "", "track file, a generated road when empty")
	flag.StringVar(&o.palettePath, "palette", "", "palette JSON file, defaults to the one beside the track")
	flag.Int64Var(&o.seed, "seed", 1, "generator and sky seed")
	flag.IntVar(&o.segments, "segments", 200, "segments to generate when no track is given")
	flag.IntVar(&o.frames, "frames", 60, "ticks to advance before the last shot")
	flag.IntVar(&o.every, "every", 0, "also write a shot every N ticks, 0 for only the last")
	flag.Float64Var(&o.speed, "speed", race.MaxNormalSpeed, "camera speed in road units per second")
	flag.Float64Var(&o.lateral, "lateral", 0, "camera offset from the road centre")
	flag.IntVar(&o.scale, "scale", 4, "nearest-neighbour upscale factor")
	flag.BoolVar(&o.sky, "sky", true, "paint the sky behind the road")
	flag.StringVar(&o.out, "out", "roadshot.webp", "output file, .webp or .png")
	debug := flag.Bool("debug", false, "log road simulation events")
	flag.Parse()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		road.SetLogger(slog.Default())
	}

	if err := run(o); err != nil {
		log.Fatal(err)
	}
}

func run(o options) error {
	if o.scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", o.scale)
	}
	if o.speed < 0 {
		return fmt.Errorf("speed must not be negative, got %v", o.speed)
	}

	cfg := road.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = road.LoadConfig(o.configPath); err != nil {
			return err
		}
	}

	var (
		track *road.Track
		err   error
	)
	if o.trackPath != "" {
		track, err = road.LoadTrackFile(o.trackPath, cfg.SegmentLength)
	} else {
		track, err = road.NewTrackGenerator(o.seed).Generate(cfg.SegmentLength, o.segments)
	}
	if err != nil {
		return err
	}

	sim, err := road.NewSimulation(cfg, track)
	if err != nil {
		return err
	}
	sim.SetLateral(o.lateral)

	pal := cfg.Palette
	switch {
	case o.palettePath != "":
		pal, err = road.LoadPalette(o.palettePath, pal)
	case o.trackPath != "":
		pal, err = road.LoadTrackPalette(o.trackPath, pal)
	}
	if err != nil {
		return err
	}
	sim.SetPalette(pal)

	var sky *image.RGBA
	if o.sky {
		sky = background.NewGenerator(cfg.FieldWidth, cfg.FieldHeight).GenerateSky(o.seed)
	}

	dz := o.speed * race.TimeStep
	for i := 1; i <= o.frames; i++ {
		sim.Tick(dz)
		if o.every > 0 && i%o.every == 0 && i != o.frames {
			if err := shoot(sim, sky, o.scale, numbered(o.out, i)); err != nil {
				return err
			}
		}
	}
	return shoot(sim, sky, o.scale, o.out)
}

func shoot(sim *road.Simulation, sky *image.RGBA, scale int, path string) error {
	frame := compose(sim, sky)
	img := upscale(frame, scale)
	if err := writeImage(path, img); err != nil {
		return err
	}
	log.Printf("Wrote %s (%dx%d, %.1f m)", path, img.Bounds().Dx(), img.Bounds().Dy(), sim.Position().Distance())
	return nil
}

// compose draws the road buffer over the sky into a full field. The sky's
// bottom edge follows the top of the road.
func compose(sim *road.Simulation, sky *image.RGBA) *image.RGBA {
	cfg := sim.Config()
	field := image.NewRGBA(image.Rect(0, 0, cfg.FieldWidth, cfg.FieldHeight))

	if sky != nil {
		horizon := cfg.FieldHeight - sim.DrawHeight()
		dst := image.Rect(0, horizon-sky.Bounds().Dy(), cfg.FieldWidth, horizon)
		draw.Draw(field, dst, sky, image.Point{}, draw.Src)
	}

	buf := sim.Render()
	top := cfg.FieldHeight - buf.Height
	draw.Draw(field, image.Rect(0, top, buf.Width, cfg.FieldHeight), buf.Image(), image.Point{}, draw.Over)
	return field
}

func upscale(img *image.RGBA, scale int) *image.RGBA {
	if scale == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writeImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// numbered inserts a frame number before the extension.
func numbered(path string, frame int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(path, ext), frame, ext)
}
