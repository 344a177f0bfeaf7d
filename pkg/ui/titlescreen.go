package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	bestDistance   float64
	onStartPressed func() // Callback when user presses to start

	rule, dash *ebiten.Image
}

// NewTitleScreen creates a new title screen. bestDistance is shown under
// the title when non-zero.
func NewTitleScreen(bestDistance float64, onStartPressed func()) *TitleScreen {
	rule := ebiten.NewImage(1, 2)
	rule.Fill(color.RGBA{50, 60, 80, 100})
	dash := ebiten.NewImage(8, 2)
	dash.Fill(color.RGBA{200, 40, 40, 255})
	return &TitleScreen{
		startTime:      time.Now(),
		bestDistance:   bestDistance,
		onStartPressed: onStartPressed,
		rule:           rule,
		dash:           dash,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title, 3x to 3.3x
	pulse := 1.0 + 0.1*sinWave(elapsed*2.0)
	brightness := math.Min(1.0+0.2*sinWave(elapsed*1.5), 1.0)
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	drawText(screen, "JOYRIDE", centerX, centerY, fontHeight*3*pulse, titleColor)

	drawText(screen, "Arcade Road Racing", centerX, centerY+36, fontHeight, color.RGBA{180, 180, 200, 255})

	if ts.bestDistance > 0 {
		best := fmt.Sprintf("BEST %.0f m", ts.bestDistance)
		drawText(screen, best, centerX, centerY+56, fontHeight, color.RGBA{120, 220, 120, 255})
	}

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER to Ride", centerX, float64(height)-50, fontHeight, color.RGBA{150, 200, 255, 255})
	}

	ts.drawDecorativeElements(screen, width, height, elapsed)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

// drawDecorativeElements draws a receding road stripe pattern along the
// top and bottom rules
func (ts *TitleScreen) drawDecorativeElements(screen *ebiten.Image, width, height int, elapsed float64) {
	lineY1 := float64(height) / 6
	lineY2 := float64(height) * 5 / 6

	for _, y := range []float64{lineY1, lineY2} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(width), 1)
		op.GeoM.Translate(0, y)
		screen.DrawImage(ts.rule, op)
	}

	// Rumble-strip dashes scroll along the bottom rule
	shift := math.Mod(elapsed*40, 16)
	for x := -16.0 + shift; x < float64(width); x += 16 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, lineY2)
		screen.DrawImage(ts.dash, op)
	}
}
