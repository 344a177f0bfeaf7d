package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RaceResult summarises a finished race.
type RaceResult struct {
	Distance     float64
	BestDistance float64
	NewBest      bool
	Crashes      int
	RacesRun     int
}

// ResultsScreen shows the outcome of a race
type ResultsScreen struct {
	result RaceResult
	onExit func()
}

// NewResultsScreen creates a new results screen
func NewResultsScreen(result RaceResult, onExit func()) *ResultsScreen {
	return &ResultsScreen{result: result, onExit: onExit}
}

// Update waits for the player to continue
func (rs *ResultsScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if rs.onExit != nil {
			rs.onExit()
		}
	}
	return nil
}

// Draw renders the results
func (rs *ResultsScreen) Draw(screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	screen.Fill(color.RGBA{40, 40, 50, 255})

	centerX := float64(width) / 2
	drawText(screen, "TIME UP", centerX, 40, fontHeight*2, color.RGBA{255, 200, 0, 255})

	textColor := color.RGBA{200, 200, 200, 255}
	lineHeight := 20.0
	startX := centerX - 100
	y := 90.0

	drawTextAt(screen, fmt.Sprintf("Distance   %8.0f m", rs.result.Distance), startX, y, fontHeight, textColor)
	y += lineHeight
	drawTextAt(screen, fmt.Sprintf("Best       %8.0f m", rs.result.BestDistance), startX, y, fontHeight, textColor)
	y += lineHeight
	drawTextAt(screen, fmt.Sprintf("Crashes    %8d", rs.result.Crashes), startX, y, fontHeight, textColor)
	y += lineHeight
	drawTextAt(screen, fmt.Sprintf("Races run  %8d", rs.result.RacesRun), startX, y, fontHeight, textColor)
	y += lineHeight * 1.5

	if rs.result.NewBest {
		drawText(screen, "NEW BEST!", centerX, y, fontHeight*1.5, color.RGBA{100, 255, 100, 255})
	}

	drawText(screen, "Press ENTER to continue", centerX, 215, fontHeight, color.RGBA{150, 150, 200, 255})
}
