package race

import (
	"math"

	"github.com/golangdaddy/joyride/pkg/road"
	"github.com/golangdaddy/joyride/pkg/vehicle"
)

const (
	MinSpeed       = 1.4
	MaxNormalSpeed = 9.0
	MaxTurboSpeed  = vehicle.MaxSpeed

	minAccel   = 0.4
	maxAccel   = 3.0
	turboAccel = 0.75

	coastDrag   = 0.75
	brakeDrag   = 3.6
	offroadDrag = 1.8
	crashDrag   = 3.0

	turnAccel   = 1200.0
	turnFalloff = 1800.0

	crashResetSpeed = 300.0
	crashPreReset   = 1.0
	slideDuration   = 2.0 / 3.0
	slideStrength   = 300.0

	turnBufferSize = 3
)

// Road is the part of the road simulation the player drives on.
type Road interface {
	Advance(dz float64)
	SetLateral(x float64)
	LateralPull(zAhead, speed float64) float64
	IsOffroad() bool
	Position() road.Position
}

// SlideDirection is the way a slide throws the player.
type SlideDirection int

const (
	SlideLeft SlideDirection = iota
	SlideRight
)

type controlLoss int

const (
	inControl controlLoss = iota
	sliding
	crashing
)

type turnInput struct {
	left, right bool
}

var shakeOffsets = [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// Player is the bike under the camera.
type Player struct {
	vehicle.Racer

	// Steering reaches the bike a few ticks after the keys.
	turnBuffer [turnBufferSize]turnInput

	loss       controlLoss
	slideDir   SlideDirection
	slideTimer timer

	crashFrame     int
	crashCycle     timer
	crashCycleSet  bool
	preResetTimer  timer
	resetting      bool
	hiddenForReset bool

	shakeIndex int
	shakeTimer timer

	braking  bool
	turbo    bool
	offroad  bool
	distance float64
}

// NewPlayer returns a player at minimum speed.
func NewPlayer() *Player {
	return &Player{
		Racer:      *vehicle.NewRacer(MinSpeed),
		shakeTimer: newTimer(1.0/15, true),
	}
}

// Crash starts a crash. A crash already under way is left alone.
func (p *Player) Crash() {
	if p.loss == crashing {
		return
	}
	p.loss = crashing
	p.crashFrame = 0
	p.crashCycleSet = false
	p.preResetTimer = newTimer(crashPreReset, false)
	p.resetting = false
}

// Slide throws the player sideways for a moment. Crashes take priority.
func (p *Player) Slide(dir SlideDirection) {
	if p.loss == crashing {
		return
	}
	p.loss = sliding
	p.slideDir = dir
	p.slideTimer = newTimer(slideDuration, false)
}

func (p *Player) Crashing() bool { return p.loss == crashing }
func (p *Player) Sliding() bool  { return p.loss == sliding }

// Visible is false while the bike is being put back on the road after a
// crash.
func (p *Player) Visible() bool { return !p.hiddenForReset }

// CrashFrame is the tumble animation frame, 0 to 3.
func (p *Player) CrashFrame() int { return p.crashFrame }

// Braking reports whether the brake lights are on.
func (p *Player) Braking() bool { return p.braking && p.loss != crashing }

// Boosting reports whether the turbo flare is showing.
func (p *Player) Boosting() bool {
	return p.turbo && !p.offroad && p.Speed > MaxNormalSpeed && p.loss != crashing
}

// SandBlast reports whether sand is thrown up behind the rear wheel.
func (p *Player) SandBlast() bool { return p.offroad && p.loss != crashing }

// Smoking reports whether crash smoke rises from the tumbling bike.
func (p *Player) Smoking() bool { return p.loss == crashing && !p.hiddenForReset }

// Offroad reports whether the last tick ended off the road.
func (p *Player) Offroad() bool { return p.offroad }

// Distance is the total distance driven.
func (p *Player) Distance() float64 { return p.distance }

// ShakeOffset is the sprite jitter while riding off the road.
func (p *Player) ShakeOffset() (float64, float64) {
	if !p.offroad || p.loss == crashing {
		return 0, 0
	}
	o := shakeOffsets[p.shakeIndex]
	return o[0], o[1]
}

// Tick runs one logical step: steering, speed, crash recovery, then moving
// the camera along r. The caller reprojects r afterwards.
func (p *Player) Tick(in Input, r Road) {
	p.offroad = r.IsOffroad()
	p.braking = in.Brake
	p.turbo = in.Turbo

	p.updateTurning(in)
	p.updateSpeed(in)
	p.updateCrash(r)
	p.move(r)
	p.updateVisuals()
}

func (p *Player) resetTurnBuffer() {
	p.turnBuffer = [turnBufferSize]turnInput{}
}

func (p *Player) updateTurning(in Input) {
	next := p.turnBuffer[0]
	copy(p.turnBuffer[:], p.turnBuffer[1:])
	p.turnBuffer[turnBufferSize-1] = turnInput{left: in.Left, right: in.Right}

	accel := turnAccel * TimeStep
	falloff := turnFalloff * TimeStep

	if next.left {
		p.TurnRate = math.Max(-vehicle.MaxTurnRate, p.TurnRate-accel)
	} else if p.TurnRate < 0 {
		p.TurnRate = math.Min(0, p.TurnRate+falloff)
	}
	if next.right {
		p.TurnRate = math.Min(vehicle.MaxTurnRate, p.TurnRate+accel)
	} else if p.TurnRate > 0 {
		p.TurnRate = math.Max(0, p.TurnRate-falloff)
	}

	switch p.loss {
	case sliding:
		p.TurnRate = -slideStrength
		if p.slideDir == SlideLeft {
			p.TurnRate = slideStrength
		}
		if p.slideTimer.tick(TimeStep) {
			p.loss = inControl
			p.TurnRate = 0
			p.resetTurnBuffer()
		}
	case crashing:
		p.TurnRate = 0
	}
}

func (p *Player) updateSpeed(in Input) {
	change := 0.0
	boosting := in.Turbo && p.Speed >= MaxNormalSpeed

	switch {
	case p.loss == crashing:
		change -= crashDrag
	case p.loss == sliding:
		change -= coastDrag
	case in.Brake:
		change -= brakeDrag
	case boosting:
		change += turboAccel
	case p.Speed > MaxNormalSpeed:
		toCap := (p.Speed - MaxNormalSpeed) / TimeStep
		change -= math.Min(coastDrag*2, toCap)
	case in.Accel:
		scale := math.Max(1-p.Speed/MaxNormalSpeed, 0)
		accel := minAccel + (maxAccel-minAccel)*scale
		capped := math.Max((MaxNormalSpeed-p.Speed)/TimeStep, 0)
		change += math.Min(accel, capped)
	default:
		change -= coastDrag
	}
	if p.offroad {
		change -= offroadDrag
	}

	lo := MinSpeed
	if p.loss == crashing {
		lo = 0
	}
	p.Speed = math.Max(lo, math.Min(MaxTurboSpeed, p.Speed+change*TimeStep))
}

func (p *Player) updateCrash(r Road) {
	if p.loss != crashing {
		return
	}
	if p.resetting {
		p.hiddenForReset = true
		lat := r.Position().Lateral
		step := crashResetSpeed * TimeStep
		if math.Abs(lat) <= step {
			r.SetLateral(0)
			p.loss = inControl
			p.resetting = false
			p.hiddenForReset = false
			p.Speed = MinSpeed
			p.resetTurnBuffer()
			return
		}
		r.SetLateral(lat - math.Copysign(step, lat))
		return
	}

	if p.Speed <= 0 {
		p.crashFrame = 2
		if p.preResetTimer.tick(TimeStep) {
			p.resetting = true
		}
		return
	}
	if !p.crashCycleSet {
		p.crashCycle = newTimer(crashCycleSeconds(p.Speed), false)
		p.crashCycleSet = true
	}
	if p.crashCycle.tick(TimeStep) {
		p.crashFrame = (p.crashFrame + 1) % 4
		p.crashCycle.reset(crashCycleSeconds(p.Speed))
	}
}

// crashCycleSeconds is how long each tumble frame shows; the tumble slows
// down with the bike.
func crashCycleSeconds(speed float64) float64 {
	switch {
	case speed > 3:
		return 1.0 / 30
	case speed > 1.2:
		return 2.0 / 30
	default:
		return 4.0 / 30
	}
}

func (p *Player) move(r Road) {
	dz := p.Speed * TimeStep
	r.Advance(dz)
	p.distance += dz

	turn := p.TurnRate
	if p.loss == sliding {
		turn = -turn
	}
	x := r.Position().Lateral
	x -= turn * TimeStep
	x += r.LateralPull(0, p.Speed) * TimeStep
	r.SetLateral(x)
}

func (p *Player) updateVisuals() {
	p.UpdateTires(TimeStep)
	if p.offroad && p.loss != crashing {
		if p.shakeTimer.tick(TimeStep) {
			p.shakeIndex = (p.shakeIndex + 1) % len(shakeOffsets)
		}
	}
}

