package sushi

import (
	"math"
	"sort"
)

// Snapshot is a read-only deep copy of everything the renderer needs.
// Mutating a snapshot never affects the running game.
type Snapshot struct {
	Tick        int
	State       State
	Timer       int // Intro / level-complete countdown
	Paused      bool
	Level       int
	Score       int
	HighScore   int
	Lives       int
	Streak      int
	Multiplier  int
	ControlMode ControlMode

	Scroll    float64
	Distance  int
	Target    int
	Stage     Stage
	StageTime int

	Player     Player
	Pole       *Pole
	Effects    Effects
	Sushi      []Projectile
	EnemyShots []Projectile
	BossShots  []Projectile
	Sweep      *Sweep
	Enemies    []Enemy
	Particles  []Particle
	PowerUps   []PowerUp
	Trees      []Tree
	Boss       *Boss

	ViewW, ViewH float64
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        g.tick,
		State:       g.state,
		Timer:       g.timer,
		Paused:      g.paused,
		Level:       g.level,
		Score:       g.run.Score,
		HighScore:   g.run.HighScore,
		Lives:       g.run.Lives,
		Streak:      g.run.Streak,
		ControlMode: g.mode,
		Multiplier:  multiplier(g.run.Streak, g.cfg.Scoring.HitsPerStep, g.cfg.Scoring.MaxMultiplier),
		ViewW:       g.cfg.Viewport.Width,
		ViewH:       g.cfg.Viewport.Height,
	}
	if g.level >= 0 && g.level < len(Levels) {
		s.Target = Levels[g.level].TargetDistance
	}

	w := g.world
	if w == nil {
		return s
	}

	s.Scroll = w.Camera.Scroll
	s.Distance = w.Camera.Distance()
	s.Stage = w.Encounter.Stage
	s.StageTime = w.Encounter.Timer
	s.Player = w.Player
	s.Effects = w.Effects

	if w.Pole != nil {
		p := *w.Pole
		p.HitEnemies = make(map[int]bool, len(w.Pole.HitEnemies))
		for id, hit := range w.Pole.HitEnemies {
			p.HitEnemies[id] = hit
		}
		s.Pole = &p
	}
	if w.Sweep != nil {
		sw := *w.Sweep
		s.Sweep = &sw
	}
	if w.Boss != nil {
		b := *w.Boss
		b.Body = w.Boss.Body.clone()
		s.Boss = &b
	}

	s.Sushi = copyProjectiles(w.Sushi)
	s.EnemyShots = copyProjectiles(w.EnemyShots)
	s.BossShots = copyProjectiles(w.BossShots)

	s.Enemies = make([]Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if !e.Dead {
			s.Enemies = append(s.Enemies, *e)
		}
	}
	s.Particles = make([]Particle, len(w.Particles))
	for i, p := range w.Particles {
		s.Particles[i] = *p
	}
	s.PowerUps = make([]PowerUp, 0, len(w.PowerUps))
	for _, p := range w.PowerUps {
		if p.Life > 0 {
			s.PowerUps = append(s.PowerUps, *p)
		}
	}
	s.Trees = make([]Tree, len(w.Trees))
	for i, t := range w.Trees {
		s.Trees[i] = *t
	}
	return s
}

func copyProjectiles(ps []*Projectile) []Projectile {
	out := make([]Projectile, 0, len(ps))
	for _, p := range ps {
		if !p.Dead {
			out = append(out, *p)
		}
	}
	return out
}

// ScreenY converts a world distance to a screen Y using the snapshot's scroll.
func (s *Snapshot) ScreenY(worldY float64) float64 {
	return s.ViewH - (worldY - s.Scroll)
}

// Hash returns a hash of the simulation-relevant state for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixI := func(v int) {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}
	mixF := func(v float64) {
		mix(math.Float64bits(v))
	}

	mixI(s.Tick)
	mixI(int(s.State))
	mixI(s.Timer)
	mixI(s.Level)
	mixI(s.Score)
	mixI(s.Lives)
	mixI(s.Streak)
	mixF(s.Scroll)
	mixI(int(s.Stage))
	mixI(s.StageTime)

	mixF(s.Player.Pos.X)
	mixF(s.Player.Pos.Y)
	mixF(s.Player.Facing)
	mixI(s.Player.Invuln)
	mixI(s.Player.RespawnTimer)
	mixI(s.Effects.Speed)
	mixI(s.Effects.Triple)
	mixI(s.Effects.Shield)

	if s.Pole != nil {
		mixI(s.Pole.Timer)
		ids := make([]int, 0, len(s.Pole.HitEnemies))
		for id := range s.Pole.HitEnemies {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			mixI(id)
		}
	}

	for _, group := range [][]Projectile{s.Sushi, s.EnemyShots, s.BossShots} {
		mixI(len(group))
		for _, p := range group {
			mixI(int(p.Kind))
			mixF(p.X)
			mixF(p.WorldY)
			mixI(p.Life)
			mixI(p.Dwell)
		}
	}

	mixI(len(s.Enemies))
	for _, e := range s.Enemies {
		mixI(e.ID)
		mixI(int(e.Kind))
		mixI(e.HP)
		mixF(e.X)
		mixF(e.WorldY)
	}

	mixI(len(s.PowerUps))
	for _, p := range s.PowerUps {
		mixI(int(p.Kind))
		mixF(p.X)
		mixF(p.WorldY)
		mixI(p.Life)
	}

	mixI(len(s.Trees))
	for _, t := range s.Trees {
		mixF(t.X)
		mixF(t.WorldY)
	}

	mixI(len(s.Particles))

	if s.Boss != nil {
		mixI(int(s.Boss.Kind))
		mixI(s.Boss.HP)
		mixI(s.Boss.Phase)
		mixI(s.Boss.AttackTimer)
		mixF(s.Boss.Pos.X)
		mixF(s.Boss.Pos.Y)
	}

	return h
}
