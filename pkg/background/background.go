package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator paints the sky that sits behind the road
type Generator struct {
	Width  int
	Height int

	Top     color.RGBA
	Horizon color.RGBA
}

// NewGenerator creates a new sky generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:   width,
		Height:  height,
		Top:     color.RGBA{40, 90, 200, 255},
		Horizon: color.RGBA{170, 215, 255, 255},
	}
}

// GenerateSky paints a gradient sky with clouds and a band of distant hills
// along the bottom edge. Equal seeds give equal skies.
func (g *Generator) GenerateSky(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		t := float64(y) / float64(max(g.Height-1, 1))
		c := lerp(g.Top, g.Horizon, t)
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	// Clouds stay in the upper two thirds
	clouds := 3 + rng.Intn(4)
	for i := 0; i < clouds; i++ {
		x := rng.Intn(g.Width)
		y := 10 + rng.Intn(max(g.Height*2/3-10, 1))
		g.drawCloud(img, x, y, rng)
	}

	g.drawHills(img, rng)
	return img
}

// drawCloud draws a cluster of overlapping puffs
func (g *Generator) drawCloud(img *image.RGBA, x, y int, rng *rand.Rand) {
	puffs := 3 + rng.Intn(4)
	shade := uint8(230 + rng.Intn(25))
	c := color.RGBA{shade, shade, shade, 255}

	for p := 0; p < puffs; p++ {
		cx := x + p*8 + rng.Intn(5) - 2
		cy := y + rng.Intn(5) - 2
		radius := 4 + rng.Intn(6)
		for dy := -radius; dy <= radius/2; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy <= radius*radius {
					g.set(img, cx+dx, cy+dy, c)
				}
			}
		}
	}
}

// drawHills fills a wavy ridge along the bottom of the image
func (g *Generator) drawHills(img *image.RGBA, rng *rand.Rand) {
	far := color.RGBA{90, 130, 150, 255}
	near := color.RGBA{50, 110, 70, 255}

	phase1 := rng.Float64() * 2 * math.Pi
	phase2 := rng.Float64() * 2 * math.Pi
	for x := 0; x < g.Width; x++ {
		fx := float64(x)
		back := 22 + 8*math.Sin(fx*0.021+phase1) + 4*math.Sin(fx*0.067+phase2)
		front := 10 + 5*math.Sin(fx*0.043+phase2) + 2*math.Sin(fx*0.13+phase1)
		for y := g.Height - int(back); y < g.Height; y++ {
			g.set(img, x, y, far)
		}
		for y := g.Height - int(front); y < g.Height; y++ {
			g.set(img, x, y, near)
		}
	}
}

func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, c)
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(float64(p) + (float64(q)-float64(p))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
