package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/joyride/pkg/background"
	"github.com/golangdaddy/joyride/pkg/race"
	"github.com/golangdaddy/joyride/pkg/road"
	"github.com/golangdaddy/joyride/pkg/ui"
	"github.com/golangdaddy/joyride/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// KPHPerUnit converts road units per second to the speedometer reading.
	KPHPerUnit = 20.0

	// skyHeight covers the screen even with the sky sunk behind a crest.
	skyHeight = ScreenHeight + 40

	// Ticks run per frame at most; the rest of a long stall is dropped.
	maxTicksPerFrame = 4
)

var (
	rivalColors = [...]color.RGBA{
		road.VariantGreen: {40, 200, 70, 255},
		road.VariantRed:   {220, 40, 40, 255},
	}
	playerColor = color.RGBA{30, 90, 230, 255}
	tireColor   = color.RGBA{20, 20, 20, 255}
	tireFlash   = color.RGBA{70, 70, 70, 255}
	riderColor  = color.RGBA{240, 240, 240, 255}
	signColor   = color.RGBA{250, 210, 0, 255}
	postColor   = color.RGBA{90, 90, 90, 255}
	sandColor   = color.RGBA{230, 200, 130, 255}
	smokeColor  = color.RGBA{120, 120, 120, 255}
)

// GameplayScreen drives one race and draws it
type GameplayScreen struct {
	session   *race.Session
	clock     *race.FixedStep
	lastTime  time.Time
	frame     int
	ended     bool
	onGameEnd func() // Callback when the race ends

	roadImg *ebiten.Image
	skyImg  *ebiten.Image
	skyTop  color.RGBA
	pixel   *ebiten.Image
}

// NewGameplayScreen creates a new gameplay screen
func NewGameplayScreen(session *race.Session, seed int64, onGameEnd func()) *GameplayScreen {
	cfg := session.Sim().Config()

	sky := background.NewGenerator(cfg.FieldWidth, skyHeight)
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &GameplayScreen{
		session:   session,
		clock:     race.NewFixedStep(maxTicksPerFrame),
		lastTime:  time.Now(),
		onGameEnd: onGameEnd,
		roadImg:   ebiten.NewImage(cfg.FieldWidth, cfg.MaxDrawRows),
		skyImg:    ebiten.NewImageFromImage(sky.GenerateSky(seed)),
		skyTop:    sky.Top,
		pixel:     pixel,
	}
}

// Update runs however many logical ticks the wall clock calls for
func (gs *GameplayScreen) Update() error {
	if gs.ended {
		return nil
	}
	gs.frame++

	now := time.Now()
	runs := gs.clock.Advance(now.Sub(gs.lastTime))
	gs.lastTime = now

	in := readInput()
	for i := 0; i < runs && !gs.session.Finished(); i++ {
		gs.session.Tick(in)
	}

	if gs.session.Finished() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.ended = true
		if gs.onGameEnd != nil {
			gs.onGameEnd()
		}
	}
	return nil
}

func readInput() race.Input {
	return race.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Accel: ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyZ),
		Brake: ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyX),
		Turbo: ebiten.IsKeyPressed(ebiten.KeyC) || ebiten.IsKeyPressed(ebiten.KeyShift),
	}
}

// Draw renders sky, road, sprites far to near, the bike and the HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(gs.skyTop)
	gs.drawSky(screen)
	gs.drawRoad(screen)
	for _, sp := range gs.session.Sprites() {
		gs.drawSprite(screen, sp)
	}
	gs.drawPlayer(screen)
	gs.drawUI(screen)
}

// roadTop is the screen row of the top of the road image.
func (gs *GameplayScreen) roadTop() float64 {
	return float64(ScreenHeight - gs.session.Sim().Config().MaxDrawRows)
}

func (gs *GameplayScreen) drawSky(screen *ebiten.Image) {
	horizon := float64(ScreenHeight - gs.session.Sim().DrawHeight())
	bottom := horizon - gs.session.SkyboxOffset()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, bottom-skyHeight)
	screen.DrawImage(gs.skyImg, op)
}

func (gs *GameplayScreen) drawRoad(screen *ebiten.Image) {
	buf := gs.session.Sim().Render()
	gs.roadImg.WritePixels(buf.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, gs.roadTop())
	screen.DrawImage(gs.roadImg, op)
}

// fillRect draws a solid rectangle by stretching the 1x1 white image
func (gs *GameplayScreen) fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(gs.pixel, op)
}

func (gs *GameplayScreen) drawSprite(screen *ebiten.Image, sp race.Sprite) {
	s := sp.Params.Scale
	x := sp.Params.X
	bottom := gs.roadTop() + float64(sp.Params.ImageY(gs.session.Sim().Config().MaxDrawRows)) + 1

	switch sp.Kind {
	case race.KindSigns:
		for _, px := range [2]float64{-19, 19} {
			gs.fillRect(screen, x+(px-2)*s, bottom-30*s, 4*s, 30*s, postColor)
		}
		gs.fillRect(screen, x-26*s, bottom-44*s, 52*s, 16*s, signColor)
		// Chevron pointing into the bend, away from the signs
		dir := 1.0
		if sp.Side == road.SideRight {
			dir = -1
		}
		for i := -1; i <= 1; i++ {
			cx := x + float64(i)*14*s
			gs.fillRect(screen, cx-3*s+dir*2*s, bottom-42*s, 4*s, 6*s, tireColor)
			gs.fillRect(screen, cx-3*s-dir*2*s, bottom-36*s, 4*s, 6*s, tireColor)
		}
	case race.KindRival:
		body := rivalColors[sp.Variant%len(rivalColors)]
		gs.drawBike(screen, x, bottom, s, sp.Pose, sp.Flip, sp.TireFrame, body)
	}
}

// drawBike draws a bike seen from behind. Each lean pose shifts the rider
// further into the turn.
func (gs *GameplayScreen) drawBike(screen *ebiten.Image, x, bottom, s float64, pose int, flip bool, tireFrame int, body color.Color) {
	lean := float64(pose) * 3 * s
	if flip {
		lean = -lean
	}
	tire := tireColor
	if tireFrame == 1 {
		tire = tireFlash
	}
	gs.fillRect(screen, x-4*s, bottom-12*s, 8*s, 12*s, tire)
	gs.fillRect(screen, x-12*s+lean/2, bottom-24*s, 24*s, 14*s, body)
	gs.fillRect(screen, x-7*s+lean, bottom-36*s, 14*s, 12*s, body)
	gs.fillRect(screen, x-5*s+lean*1.3, bottom-44*s, 10*s, 9*s, riderColor)
}

func (gs *GameplayScreen) drawPlayer(screen *ebiten.Image) {
	p := gs.session.Player()
	if !p.Visible() {
		return
	}
	cfg := gs.session.Sim().Config()
	dx, dy := p.ShakeOffset()
	x := float64(cfg.FieldWidth)/2 + dx
	bottom := float64(ScreenHeight) - 4 + dy
	s := 1.6

	if p.Crashing() {
		// Tumbling: alternate between the bike on its side and upside down
		w, h := 40*s, 14*s
		if p.CrashFrame()%2 == 1 {
			w, h = 14*s, 30*s
		}
		gs.fillRect(screen, x-w/2, bottom-h, w, h, playerColor)
		gs.fillRect(screen, x-5*s, bottom-h-8*s, 10*s, 8*s, riderColor)
		if p.Smoking() {
			gs.drawPuffs(screen, x, bottom-h, s, smokeColor)
		}
		return
	}

	pose, flip := p.Pose()
	gs.drawBike(screen, x, bottom, s, pose, flip, p.TireFrame, playerColor)
	if p.SandBlast() {
		gs.drawPuffs(screen, x, bottom, s, sandColor)
	}
	if p.Braking() {
		gs.fillRect(screen, x-6*s, bottom-20*s, 12*s, 3*s, color.RGBA{255, 0, 0, 255})
	}
	if p.Boosting() && gs.frame%4 < 2 {
		gs.fillRect(screen, x-3*s, bottom-4*s, 6*s, 6*s, color.RGBA{255, 150, 0, 255})
	}
}

// drawPuffs draws a two-frame cloud either side of (x, y): sand thrown up
// by the rear wheel or crash smoke.
func (gs *GameplayScreen) drawPuffs(screen *ebiten.Image, x, y, s float64, c color.Color) {
	spread, size := 10.0, 5.0
	if (gs.frame/4)%2 == 1 {
		spread, size = 14, 7
	}
	for _, side := range [2]float64{-1, 1} {
		px := x + side*spread*s
		gs.fillRect(screen, px-size*s/2, y-size*s, size*s, size*s, c)
		gs.fillRect(screen, px+side*size*s/2-size*s/4, y-size*s*1.6, size*s/2, size*s/2, c)
	}
}

// drawUI draws speed, time left and distance across the top of the screen
func (gs *GameplayScreen) drawUI(screen *ebiten.Image) {
	gs.drawSpeedometer(screen, gs.session.Player())

	remaining := math.Ceil(gs.session.Remaining())
	timeText := fmt.Sprintf("%.0f", remaining)
	timeColor := color.RGBA{255, 255, 255, 255}
	if remaining <= 10 {
		timeColor = color.RGBA{255, 80, 80, 255}
	}
	size := 32.0
	ui.DrawLabel(screen, timeText, float64(ScreenWidth)/2-ui.LabelWidth(timeText, size)/2, 16, size, timeColor)

	distText := fmt.Sprintf("%.0f m", gs.session.Distance())
	ui.DrawLabel(screen, distText, float64(ScreenWidth)-6-ui.LabelWidth(distText, 16), 12, 16, color.RGBA{220, 220, 220, 255})
}

// drawSpeedometer shows the speed of v. The digits flash once it is faster
// than normal top speed.
func (gs *GameplayScreen) drawSpeedometer(screen *ebiten.Image, v vehicle.Vehicle) {
	x, y := 4.0, 4.0
	width, height := 70.0, 30.0

	gs.fillRect(screen, x, y, width, height, color.RGBA{20, 20, 30, 200})

	speed := v.CurrentSpeed()
	speedColor := color.RGBA{100, 255, 100, 255}
	if speed > race.MaxNormalSpeed {
		speedColor = color.RGBA{255, 255, 100, 255}
		if gs.frame%8 < 4 {
			speedColor = color.RGBA{255, 100, 100, 255}
		}
	}
	speedText := fmt.Sprintf("%3.0f", speed*KPHPerUnit)
	ui.DrawLabel(screen, speedText, x+4, y+12, 20, speedColor)
	ui.DrawLabel(screen, "KPH", x+44, y+14, 12, color.RGBA{200, 200, 200, 255})

	// Gauge bar
	gs.fillRect(screen, x+4, y+height-6, width-8, 3, color.RGBA{40, 40, 40, 255})
	gs.fillRect(screen, x+4, y+height-6, (width-8)*vehicle.SpeedFraction(v), 3, speedColor)
}
