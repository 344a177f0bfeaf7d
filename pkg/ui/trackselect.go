package ui

import (
	"image/color"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RandomTrack is the option label for a generated road.
const RandomTrack = "Random Road"

const buttonW, buttonH = 180, 20

// TrackSelectScreen lists a generated road followed by the track files
type TrackSelectScreen struct {
	options  []string // option 0 is the generated road
	paths    []string
	selected int
	onSelect func(path string) // empty path means a generated road
	onBack   func()

	button, selectedButton *ebiten.Image
}

// NewTrackSelectScreen creates a menu over the given track files
func NewTrackSelectScreen(paths []string, onSelect func(path string), onBack func()) *TrackSelectScreen {
	ts := &TrackSelectScreen{
		options:  []string{RandomTrack},
		paths:    []string{""},
		onSelect: onSelect,
		onBack:   onBack,

		button:         newButtonImage(buttonW, buttonH, color.RGBA{40, 40, 60, 255}),
		selectedButton: newButtonImage(buttonW, buttonH, color.RGBA{60, 80, 140, 255}),
	}
	for _, p := range paths {
		name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		ts.options = append(ts.options, strings.ToUpper(name))
		ts.paths = append(ts.paths, p)
	}
	return ts
}

// Update handles menu navigation
func (ts *TrackSelectScreen) Update() error {
	n := len(ts.options)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ts.selected = (ts.selected + n - 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ts.selected = (ts.selected + 1) % n
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && ts.onBack != nil {
		ts.onBack()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ts.onSelect != nil {
			ts.onSelect(ts.paths[ts.selected])
		}
	}
	return nil
}

// Draw renders the menu
func (ts *TrackSelectScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	centerX := float64(width) / 2
	drawText(screen, "SELECT ROAD", centerX, 30, fontHeight*2, color.RGBA{255, 200, 50, 255})

	spacing := 26.0
	startY := 60.0

	// Scroll so the selection stays on screen
	visible := int((float64(height) - startY - 30) / spacing)
	first := 0
	if ts.selected >= visible {
		first = ts.selected - visible + 1
	}

	for i := first; i < len(ts.options) && i < first+visible; i++ {
		box := ts.button
		fg := color.RGBA{200, 200, 200, 255}
		if i == ts.selected {
			box = ts.selectedButton
			fg = color.RGBA{255, 255, 255, 255}
		}
		y := startY + float64(i-first)*spacing
		drawButton(screen, box, ts.options[i], centerX-buttonW/2, y, fg)
	}

	drawText(screen, "UP/DOWN choose  ENTER ride  ESC back", centerX, float64(height)-14, fontHeight*0.75, color.RGBA{150, 150, 180, 255})
}
