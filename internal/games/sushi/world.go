package sushi

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sushi-bros/internal/config"
	"github.com/vovakirdan/sushi-bros/internal/core"
)

// Run holds the values that survive level changes.
type Run struct {
	Score     int
	Lives     int
	Streak    int
	HighScore int
}

// cursors are the next world Y at which each spawn class emits a batch.
type cursors struct {
	Enemy float64
	Tree  float64
}

// World is the per-level simulation aggregate. It is owned by the Game and
// every subsystem operates on it for the duration of one frame.
type World struct {
	cfg   config.SushiConfig
	level int
	lvl   *LevelConfig
	rng   *rand.Rand
	diff  *config.DifficultyManager
	run   *Run
	mode  ControlMode

	Camera     Camera
	Player     Player
	Pole       *Pole
	Sushi      []*Projectile
	EnemyShots []*Projectile
	BossShots  []*Projectile
	Sweep      *Sweep
	Enemies    []*Enemy
	Particles  []*Particle
	PowerUps   []*PowerUp
	Trees      []*Tree
	Boss       *Boss
	Encounter  Encounter
	Effects    Effects

	spawn    cursors
	nextID   int
	resolved bool // Boss defeat sequence finished this frame
	cues     []core.Cue
}

// newWorld builds a fresh level: new player, empty stores, scroll at zero.
func newWorld(cfg config.SushiConfig, level int, run *Run, rng *rand.Rand, diff *config.DifficultyManager, mode ControlMode) *World {
	w := &World{
		cfg:    cfg,
		level:  level,
		lvl:    &Levels[level],
		rng:    rng,
		diff:   diff,
		run:    run,
		mode:   mode,
		Camera: NewCamera(cfg.Viewport.Height, cfg.Viewport.ScrollTrigger),
		spawn: cursors{
			Enemy: cfg.Spawn.FirstSpawnAt,
			Tree:  cfg.Spawn.FirstSpawnAt * 0.5,
		},
	}
	w.Player = w.newPlayer()
	return w
}

// newPlayer places a visible player near the bottom centre with full invulnerability.
func (w *World) newPlayer() Player {
	vp := w.cfg.Viewport
	return Player{
		Pos:     core.Vec2{X: vp.Width / 2, Y: vp.Height * 0.8},
		Facing:  -math.Pi / 2,
		Radius:  w.cfg.Player.Radius,
		Invuln:  w.cfg.Player.InvulnFrames,
		Visible: true,
	}
}

// emit queues a sound cue for this frame.
func (w *World) emit(c core.Cue) {
	w.cues = append(w.cues, c)
}

// takeCues returns and clears the queued cues.
func (w *World) takeCues() []core.Cue {
	c := w.cues
	w.cues = nil
	return c
}

// Multiplier is the current streak multiplier.
func (w *World) Multiplier() int {
	return multiplier(w.run.Streak, w.cfg.Scoring.HitsPerStep, w.cfg.Scoring.MaxMultiplier)
}

// addScore awards points and raises the high score when passed.
func (w *World) addScore(points int) {
	w.run.Score += points
	if w.run.Score > w.run.HighScore {
		w.run.HighScore = w.run.Score
	}
}

// step runs one frame of the playing state in a fixed order.
func (w *World) step(in core.InputFrame) {
	w.resolved = false
	w.updatePlayer(in)
	w.spawnAhead()
	w.updateEntities()
	w.resolveCollisions()
	w.updateEncounter()
	w.cleanup()
}

// screenPos returns the screen position of a world-anchored point.
func (w *World) screenPos(x, worldY float64) core.Vec2 {
	return core.Vec2{X: x, Y: w.Camera.WorldToScreen(worldY)}
}

// offScreen reports whether a screen point is outside the viewport by more than margin.
func (w *World) offScreen(p core.Vec2, margin float64) bool {
	vp := w.cfg.Viewport
	return p.X < -margin || p.X > vp.Width+margin || p.Y < -margin || p.Y > vp.Height+margin
}

// updateEntities advances every store by one frame.
func (w *World) updateEntities() {
	if w.Pole != nil {
		w.Pole.Timer--
		if w.Pole.Timer <= 0 {
			w.Pole = nil
		}
	}

	for _, s := range w.Sushi {
		s.step()
		if s.Life <= 0 || w.offScreen(w.screenPos(s.X, s.WorldY), 20) {
			s.Dead = true
		}
	}
	for _, s := range w.EnemyShots {
		s.step()
		if s.Life <= 0 || w.offScreen(w.screenPos(s.X, s.WorldY), 20) {
			s.Dead = true
		}
	}
	for _, s := range w.BossShots {
		s.step()
		if s.Life <= 0 || w.offScreen(w.screenPos(s.X, s.WorldY), 40) {
			s.Dead = true
		}
	}
	if w.Sweep != nil {
		w.Sweep.Y += w.Sweep.Speed
		if w.Sweep.Y > w.cfg.Viewport.Height+w.Sweep.Thickness {
			w.Sweep = nil
		}
	}

	for _, e := range w.Enemies {
		w.updateEnemy(e)
	}
	w.updateParticles()
	for _, p := range w.PowerUps {
		p.Life--
	}
}

// updateEnemy applies kind-specific motion and the fisherman's attack.
func (w *World) updateEnemy(e *Enemy) {
	e.Anim += 0.05
	switch e.Kind {
	case EnemyCrab:
		e.X = e.BaseX + math.Sin(e.Anim*2)*e.Drift*30
	case EnemySeagull:
		e.X = e.BaseX + math.Sin(e.Anim)*e.Drift*60
		e.WorldY -= 0.5
	case EnemyFisherman:
		e.X = e.BaseX + math.Sin(e.Anim*0.5)*e.Drift*15
		pos := w.screenPos(e.X, e.WorldY)
		if pos.Y < 0 || pos.Y > w.cfg.Viewport.Height {
			return
		}
		e.ShootTimer--
		if e.ShootTimer > 0 {
			return
		}
		e.ShootTimer = w.randRangeInt(w.lvl.ShootMin, w.lvl.ShootMax)
		if !w.Player.Visible {
			return
		}
		v := core.FromAngle(angleTo(pos, w.Player.Pos), w.lvl.ShotSpeed)
		w.EnemyShots = append(w.EnemyShots, &Projectile{
			Kind:   ProjEnemy,
			X:      e.X,
			WorldY: e.WorldY,
			VX:     v.X,
			VY:     v.Y,
			Life:   240,
			Radius: 5,
		})
	}
}

// cleanup compacts removed entities and culls what scrolled away.
func (w *World) cleanup() {
	vp := w.cfg.Viewport
	sp := w.cfg.Spawn

	w.Sushi = compact(w.Sushi)
	w.EnemyShots = compact(w.EnemyShots)
	w.BossShots = compact(w.BossShots)

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Dead || w.Camera.WorldToScreen(e.WorldY) > vp.Height+sp.CullMargin {
			continue
		}
		enemies = append(enemies, e)
	}
	w.Enemies = enemies

	powerUps := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if p.Life <= 0 || w.Camera.WorldToScreen(p.WorldY) > vp.Height+sp.CullMargin {
			continue
		}
		powerUps = append(powerUps, p)
	}
	w.PowerUps = powerUps

	trees := w.Trees[:0]
	for _, t := range w.Trees {
		if w.Camera.WorldToScreen(t.WorldY) > vp.Height+sp.TreeCullMargin {
			continue
		}
		trees = append(trees, t)
	}
	w.Trees = trees
}

// compact drops dead projectiles in place.
func compact(ps []*Projectile) []*Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if !p.Dead {
			kept = append(kept, p)
		}
	}
	return kept
}

// randRange returns a float in [lo, hi).
func (w *World) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Float64()*(hi-lo)
}

// randRangeInt returns an int in [lo, hi].
func (w *World) randRangeInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}
