package game

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/golangdaddy/joyride/pkg/data"
	"github.com/golangdaddy/joyride/pkg/models"
	"github.com/golangdaddy/joyride/pkg/race"
	"github.com/golangdaddy/joyride/pkg/road"
	"github.com/golangdaddy/joyride/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// ScreenWidth and ScreenHeight are the logical screen size.
	ScreenWidth  = 320
	ScreenHeight = 240

	// Segments generated up front for a random road.
	initialSegments = 200

	trackGlob = "assets/tracks/*.track"
)

// Options are the startup choices made on the command line.
type Options struct {
	ConfigPath string // JSON road config, defaults when empty
	TrackPath  string // single track file, otherwise assets/tracks is scanned
	SavePath   string
	Seed       int64
}

// GameLogic holds what outlives a single race.
type GameLogic struct {
	cfg        road.Config
	trackFiles []string
	state      *models.GameState
	savePath   string
	seed       int64
}

func (g *GameLogic) Config() road.Config          { return g.cfg }
func (g *GameLogic) TrackFiles() []string         { return g.trackFiles }
func (g *GameLogic) GameState() *models.GameState { return g.state }

// LoadTracks finds the track files offered on the track menu.
func (g *GameLogic) LoadTracks() error {
	files, err := filepath.Glob(trackGlob)
	if err != nil {
		return err
	}
	g.trackFiles = files
	return nil
}

// NewSession builds a race on the track at path, or on a generated road
// when path is empty. Both are extended by the generator once their end
// comes into view.
func (g *GameLogic) NewSession(path string) (*race.Session, error) {
	g.seed++
	gen := road.NewTrackGenerator(g.seed)

	var (
		track *road.Track
		err   error
	)
	if path == "" {
		track, err = gen.Generate(g.cfg.SegmentLength, initialSegments)
	} else {
		track, err = road.LoadTrackFile(path, g.cfg.SegmentLength)
	}
	if err != nil {
		return nil, err
	}

	sim, err := road.NewSimulation(g.cfg, track)
	if err != nil {
		return nil, err
	}
	if path != "" {
		pal, err := road.LoadTrackPalette(path, g.cfg.Palette)
		if err != nil {
			return nil, err
		}
		sim.SetPalette(pal)
	}
	return race.NewSession(sim, gen, g.seed), nil
}

// FinishRace records the race in the save file.
func (g *GameLogic) FinishRace(s *race.Session) ui.RaceResult {
	newBest := g.state.RecordRace(s.Distance())
	if err := g.state.SaveToFile(g.savePath); err != nil {
		log.Printf("Failed to save game: %v", err)
	}
	return ui.RaceResult{
		Distance:     s.Distance(),
		BestDistance: g.state.BestDistance,
		NewBest:      newBest,
		Crashes:      s.Crashes(),
		RacesRun:     g.state.RacesRun,
	}
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	gameLogic     *GameLogic
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame loads the config, save file and track list and opens the title
// screen.
func NewGame(opts Options) (*Game, error) {
	cfg := road.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = road.LoadConfig(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// The screens and HUD are laid out for a fixed logical screen.
	if err := cfg.RequireField(ScreenWidth, ScreenHeight); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state, err := models.LoadOrCreate(opts.SavePath, data.RiderName(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to load save file: %w", err)
	}

	logic := &GameLogic{cfg: cfg, state: state, savePath: opts.SavePath, seed: seed}
	if opts.TrackPath != "" {
		logic.trackFiles = []string{opts.TrackPath}
	} else if err := logic.LoadTracks(); err != nil {
		log.Printf("Failed to load tracks: %v", err)
	}
	log.Printf("Rider %s, best %.0f m, %d tracks", state.Name, state.BestDistance, len(logic.trackFiles))

	game := &Game{gameLogic: logic}
	game.showTitle()
	return game, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.gameLogic.state.BestDistance, func() {
		g.currentScreen = ui.NewTrackSelectScreen(g.gameLogic.trackFiles, g.startGameplay, g.showTitle)
	})
}

// startGameplay transitions to the actual gameplay
func (g *Game) startGameplay(path string) {
	session, err := g.gameLogic.NewSession(path)
	if err != nil {
		log.Printf("Failed to start race: %v", err)
		g.showTitle()
		return
	}
	log.Printf("Race started on %q", path)

	g.currentScreen = NewGameplayScreen(session, g.gameLogic.seed, func() {
		result := g.gameLogic.FinishRace(session)
		log.Printf("Race finished: %.0f m, %d crashes", result.Distance, result.Crashes)
		g.currentScreen = ui.NewResultsScreen(result, g.showTitle)
	})
}
