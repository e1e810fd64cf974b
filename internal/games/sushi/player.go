package sushi

import (
	"math"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

// ControlMode selects how movement input drives the player.
type ControlMode string

const (
	// ControlDirection moves along the input vector; facing follows movement.
	ControlDirection ControlMode = "direction"
	// ControlSpin turns with left/right and moves along facing with up/down.
	ControlSpin ControlMode = "spin"
)

// ParseControlMode returns the mode for s, defaulting to direction.
func ParseControlMode(s string) ControlMode {
	if ControlMode(s) == ControlSpin {
		return ControlSpin
	}
	return ControlDirection
}

// Toggle returns the other control mode.
func (m ControlMode) Toggle() ControlMode {
	if m == ControlSpin {
		return ControlDirection
	}
	return ControlSpin
}

const facingUp = -math.Pi / 2

// updatePlayer integrates movement, scroll, timers and the throw/swing actions.
func (w *World) updatePlayer(in core.InputFrame) {
	p := &w.Player
	pc := w.cfg.Player

	if !p.Visible {
		p.RespawnTimer--
		if p.RespawnTimer <= 0 {
			w.Player = w.newPlayer()
		}
		return
	}

	if p.Invuln > 0 {
		p.Invuln--
	}
	w.Effects.tick()

	wasOnWater := p.OnWater
	p.OnWater = TerrainAt(w.level, p.Pos.X, w.Camera.ScreenToWorld(p.Pos.Y)) == TerrainWater
	if p.OnWater && !wasOnWater {
		w.emit(core.CueSplash)
		w.burst(p.Pos.X, p.Pos.Y, 6, core.ColorBrightBlue)
	}

	speed := pc.Speed
	if p.OnWater {
		speed = pc.WaterSpeed
	}
	if w.Effects.Speed > 0 {
		speed *= w.cfg.PowerUps.SpeedFactor
	}

	p.Vel = w.movement(in, speed)

	vp := w.cfg.Viewport
	x := core.ClampF(p.Pos.X+p.Vel.X, p.Radius, vp.Width-p.Radius)
	y := p.Pos.Y + p.Vel.Y
	if w.Camera.Locked() {
		y = math.Max(y, p.Radius)
	} else {
		y = w.Camera.Advance(y)
	}
	y = math.Min(y, vp.Height-p.Radius)
	p.Pos = core.Vec2{X: x, Y: y}

	if in.Has(core.ActionThrow) {
		w.throw(in)
	}
	if in.Has(core.ActionSwing) {
		w.swing()
	}
}

// movement turns the intent into a velocity for this frame and updates facing.
// On water lateral movement is disabled and facing is forced up.
func (w *World) movement(in core.InputFrame, speed float64) core.Vec2 {
	p := &w.Player

	var v core.Vec2
	if w.mode == ControlSpin && !in.JoystickActive {
		if !p.OnWater {
			if in.Has(core.ActionLeft) {
				p.Facing -= w.cfg.Player.TurnRate
			}
			if in.Has(core.ActionRight) {
				p.Facing += w.cfg.Player.TurnRate
			}
		}
		dir := 0.0
		if in.Has(core.ActionUp) {
			dir++
		}
		if in.Has(core.ActionDown) {
			dir--
		}
		v = core.FromAngle(p.Facing, dir*speed)
	} else if mv, ok := in.Movement(); ok {
		v = mv.Scale(speed)
		if !p.OnWater {
			p.Facing = math.Atan2(mv.Y, mv.X)
		}
	}

	if p.OnWater {
		v.X = 0
		p.Facing = facingUp
	}
	return v
}

// throw launches one sushi, or three under triple-shot. The cap is checked
// for the whole batch before anything is spawned.
func (w *World) throw(in core.InputFrame) {
	sc := w.cfg.Sushi
	p := &w.Player

	count := 1
	if w.Effects.Triple > 0 {
		count = 3
	}
	if len(w.Sushi)+count > sc.MaxInFlight {
		return
	}

	aim := p.Facing
	if in.Touch && in.AimActive {
		aim = in.Aim
	}

	worldY := w.Camera.ScreenToWorld(p.Pos.Y)
	for i := 0; i < count; i++ {
		a := aim
		if count == 3 {
			a += float64(i-1) * sc.TripleSpread
		}
		v := core.FromAngle(a, sc.Speed)
		w.Sushi = append(w.Sushi, &Projectile{
			Kind:   ProjSushi,
			X:      p.Pos.X,
			WorldY: worldY,
			VX:     v.X,
			VY:     v.Y,
			Life:   sc.Life,
			Radius: sc.Radius,
		})
	}
	w.emit(core.CueThrow)
}

// swing starts a pole swing unless one is already active.
func (w *World) swing() {
	if w.Pole != nil {
		return
	}
	pc := w.cfg.Pole
	w.Pole = &Pole{
		Timer:      pc.Frames,
		Frames:     pc.Frames,
		StartAngle: w.Player.Facing - pc.Sweep/2,
		Sweep:      pc.Sweep,
		Reach:      pc.Reach,
		HitEnemies: make(map[int]bool),
	}
	w.emit(core.CueSwing)
}

// hurtPlayer applies one hit to the player. It returns false when the hit is
// ignored (invisible, invulnerable or shielded).
func (w *World) hurtPlayer() bool {
	p := &w.Player
	if !p.Visible || p.Invuln > 0 || w.Effects.Shield > 0 {
		return false
	}

	w.run.Streak = 0
	w.run.Lives--
	w.emit(core.CuePlayerHit)
	w.burst(p.Pos.X, p.Pos.Y, 20, core.ColorBrightRed)

	p.Visible = false
	p.RespawnTimer = w.cfg.Player.RespawnFrames
	p.Vel = core.Vec2{}
	w.Pole = nil
	w.Effects = Effects{}
	return true
}
