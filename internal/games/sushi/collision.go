package sushi

import (
	"math"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

// resolveCollisions runs every pairwise test in fixed precedence so an
// entity destroyed by an earlier pass is skipped by the later ones.
func (w *World) resolveCollisions() {
	w.pushOutOfTrees()
	w.sushiVsEnemies()
	w.sushiVsBoss()
	w.poleVsBoss()
	w.poleVsEnemies()
	w.bossShotsVsPlayer()
	w.sweepVsPlayer()
	w.bossContactVsPlayer()
	w.enemiesVsPlayer()
	w.enemyShotsVsPlayer()
	w.collectPowerUps()
}

// treePushPasses bounds the relaxation over tree clusters.
const treePushPasses = 4

// pushOutOfTrees repeats the per-tree push until the player is clear of
// every tree. A player wedged between trees that the passes cannot free
// slides vertically past the cluster, then is clamped to the viewport.
func (w *World) pushOutOfTrees() {
	if len(w.Trees) == 0 {
		return
	}
	p := &w.Player
	for range treePushPasses {
		if !w.overlapsTree(p.Pos) {
			break
		}
		for _, t := range w.Trees {
			p.Pos = pushOut(p.Pos, w.screenPos(t.X, t.WorldY), t.Radius+p.Radius)
		}
	}
	p.Pos = w.clampToViewport(p.Pos)
	if w.overlapsTree(p.Pos) {
		pos := w.slidePastTrees(p.Pos, 1)
		if w.overlapsTree(pos) {
			pos = w.slidePastTrees(p.Pos, -1)
		}
		p.Pos = pos
	}
}

// overlapsTree reports whether the player circle at pos intersects a tree.
func (w *World) overlapsTree(pos core.Vec2) bool {
	for _, t := range w.Trees {
		if core.Dist(pos, w.screenPos(t.X, t.WorldY)) < t.Radius+w.Player.Radius-1e-6 {
			return true
		}
	}
	return false
}

// slidePastTrees moves pos along Y in dir (+1 down, -1 up) until no tree
// overlaps it, keeping X, and clamps the result to the viewport.
func (w *World) slidePastTrees(pos core.Vec2, dir float64) core.Vec2 {
	pr := w.Player.Radius
	for range len(w.Trees) + 1 {
		moved := false
		for _, t := range w.Trees {
			c := w.screenPos(t.X, t.WorldY)
			r := t.Radius + pr
			dx := pos.X - c.X
			if math.Abs(dx) >= r || core.Dist(pos, c) >= r-1e-6 {
				continue
			}
			pos.Y = c.Y + dir*math.Sqrt(r*r-dx*dx)
			moved = true
		}
		if !moved {
			break
		}
	}
	return w.clampToViewport(pos)
}

func (w *World) clampToViewport(pos core.Vec2) core.Vec2 {
	pr := w.Player.Radius
	vp := w.cfg.Viewport
	return core.Vec2{
		X: core.ClampF(pos.X, pr, vp.Width-pr),
		Y: core.ClampF(pos.Y, pr, vp.Height-pr),
	}
}

func (w *World) sushiVsEnemies() {
	for _, s := range w.Sushi {
		if s.Dead {
			continue
		}
		sp := w.screenPos(s.X, s.WorldY)
		for _, e := range w.Enemies {
			if e.Dead {
				continue
			}
			if core.CirclesOverlap(sp, s.Radius, w.screenPos(e.X, e.WorldY), e.Radius) {
				s.Dead = true
				w.hitEnemy(e, w.cfg.Sushi.Damage)
				break
			}
		}
	}
}

func (w *World) sushiVsBoss() {
	b := w.Boss
	if b == nil || w.Encounter.Stage != StageFighting {
		return
	}
	for _, s := range w.Sushi {
		if s.Dead || b.HP <= 0 {
			continue
		}
		if core.CirclesOverlap(w.screenPos(s.X, s.WorldY), s.Radius, b.Pos, b.Radius) {
			s.Dead = true
			w.damageBoss(w.cfg.Sushi.Damage)
		}
	}
}

func (w *World) poleVsBoss() {
	b := w.Boss
	if w.Pole == nil || w.Pole.HitBoss || b == nil || b.HP <= 0 || w.Encounter.Stage != StageFighting {
		return
	}
	if w.Pole.touches(w.Player.Pos, b.Pos, b.Radius) {
		w.Pole.HitBoss = true
		w.damageBoss(w.cfg.Pole.Damage)
	}
}

func (w *World) poleVsEnemies() {
	if w.Pole == nil || !w.Player.Visible {
		return
	}
	for _, e := range w.Enemies {
		if e.Dead || w.Pole.HitEnemies[e.ID] {
			continue
		}
		if w.Pole.touches(w.Player.Pos, w.screenPos(e.X, e.WorldY), e.Radius) {
			w.Pole.HitEnemies[e.ID] = true
			w.hitEnemy(e, w.cfg.Pole.Damage)
		}
	}
}

// bossShotsVsPlayer consumes plain shots on contact; nets only hurt after
// the player has stayed inside for more than the dwell threshold.
func (w *World) bossShotsVsPlayer() {
	p := &w.Player
	for _, s := range w.BossShots {
		if s.Dead {
			continue
		}
		inside := p.Visible && core.CirclesOverlap(w.screenPos(s.X, s.WorldY), s.Radius, p.Pos, p.Radius)

		if s.Kind == ProjNet {
			if !inside {
				s.Dwell = 0
				continue
			}
			s.Dwell++
			if s.Dwell > w.cfg.Boss.NetDwellFrames {
				s.Dwell = 0
				w.hurtPlayer()
			}
			continue
		}

		if inside {
			s.Dead = true
			w.hurtPlayer()
		}
	}
}

func (w *World) sweepVsPlayer() {
	if w.Sweep == nil || !w.Player.Visible {
		return
	}
	if w.Sweep.hits(w.Player.Pos, w.Player.Radius) {
		w.hurtPlayer()
	}
}

func (w *World) bossContactVsPlayer() {
	b := w.Boss
	if b == nil || b.HP <= 0 || !w.Player.Visible {
		return
	}
	if core.CirclesOverlap(b.Pos, b.Radius, w.Player.Pos, w.Player.Radius) {
		w.hurtPlayer()
	}
}

func (w *World) enemiesVsPlayer() {
	if !w.Player.Visible {
		return
	}
	for _, e := range w.Enemies {
		if e.Dead {
			continue
		}
		if core.CirclesOverlap(w.screenPos(e.X, e.WorldY), e.Radius, w.Player.Pos, w.Player.Radius) {
			w.hurtPlayer()
			return
		}
	}
}

func (w *World) enemyShotsVsPlayer() {
	if !w.Player.Visible {
		return
	}
	for _, s := range w.EnemyShots {
		if s.Dead {
			continue
		}
		if core.CirclesOverlap(w.screenPos(s.X, s.WorldY), s.Radius, w.Player.Pos, w.Player.Radius) {
			s.Dead = true
			w.hurtPlayer()
		}
	}
}

func (w *World) collectPowerUps() {
	if !w.Player.Visible {
		return
	}
	for _, pu := range w.PowerUps {
		if pu.Life <= 0 {
			continue
		}
		if core.CirclesOverlap(w.screenPos(pu.X, pu.WorldY), powerUpRadius, w.Player.Pos, w.Player.Radius) {
			pu.Life = 0
			w.collect(pu)
		}
	}
}

// hitEnemy damages an enemy; a lethal hit removes it at once, awards the
// kill score with the current multiplier and may drop a power-up.
func (w *World) hitEnemy(e *Enemy, dmg int) {
	if e.Dead {
		return
	}
	e.HP -= dmg
	w.run.Streak++
	w.emit(core.CueHit)

	pos := w.screenPos(e.X, e.WorldY)
	if e.HP > 0 {
		w.burst(pos.X, pos.Y, 4, core.ColorWhite)
		return
	}

	e.Dead = true
	w.addScore(enemyTable[e.Kind].Points * w.Multiplier())
	w.burst(pos.X, pos.Y, 12, enemyColor(e.Kind))
	w.maybeDrop(e.X, e.WorldY)
}

// enemyColor is the particle colour for an enemy kind.
func enemyColor(k EnemyKind) core.Color {
	switch k {
	case EnemyCrab:
		return core.ColorRed
	case EnemySeagull:
		return core.ColorBrightWhite
	case EnemyFisherman:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}
