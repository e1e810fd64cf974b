package sushi

import (
	"math"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

// Player is the sushi chef. Position is in screen space.
type Player struct {
	Pos          core.Vec2
	Vel          core.Vec2
	Facing       float64 // Radians, -Pi/2 points up the screen
	Radius       float64
	Invuln       int  // Frames of invulnerability left
	Visible      bool // False while dead and awaiting respawn
	RespawnTimer int
	OnWater      bool
}

// Enemy is a regular enemy anchored in world space.
type Enemy struct {
	ID         int
	Kind       EnemyKind
	HP         int
	MaxHP      int
	Radius     float64
	X          float64 // Current lateral position
	BaseX      float64 // Lateral anchor the enemy sways around
	WorldY     float64
	Drift      float64 // Sway factor, grows with distance
	ShootTimer int     // Fisherman only
	Anim       float64
	Dead       bool
}

// ProjectileKind distinguishes the owner and behaviour of a projectile.
type ProjectileKind int

const (
	ProjSushi ProjectileKind = iota
	ProjEnemy
	ProjBoss
	ProjNet // Boss net: lingers and damages by dwell time
)

// Projectile is a world-anchored shot. Velocity is in screen terms
// (positive VY moves down the screen).
type Projectile struct {
	Kind   ProjectileKind
	X      float64
	WorldY float64
	VX, VY float64
	Life   int
	Radius float64
	Dwell  int // Consecutive frames the player has spent inside a net
	Dead   bool
}

// step advances the projectile by one frame.
func (p *Projectile) step() {
	p.X += p.VX
	p.WorldY -= p.VY
	if p.Kind == ProjNet {
		p.VX *= 0.95
		p.VY *= 0.95
	}
	p.Life--
}

// Pole is the melee swing, centred on the player in screen space.
type Pole struct {
	Timer      int // Frames left
	Frames     int // Total duration
	StartAngle float64
	Sweep      float64
	Reach      float64
	HitEnemies map[int]bool
	HitBoss    bool
}

// Angle is the current pole angle.
func (p *Pole) Angle() float64 {
	elapsed := float64(p.Frames-p.Timer) / float64(p.Frames)
	return p.StartAngle + p.Sweep*elapsed
}

// touches reports whether the pole shaft at the given origin crosses a circle.
// The shaft is sampled at three points along its length.
func (p *Pole) touches(origin, c core.Vec2, r float64) bool {
	a := p.Angle()
	for i := 1; i <= 3; i++ {
		pt := origin.Add(core.FromAngle(a, p.Reach*float64(i)/3))
		if core.PointInCircle(pt, c, r) {
			return true
		}
	}
	return false
}

// Tree is a static round obstacle in the jungle level.
type Tree struct {
	X      float64
	WorldY float64
	Radius float64
}

// pushOut moves p out of the circle at c with radius r, if overlapping.
func pushOut(p, c core.Vec2, r float64) core.Vec2 {
	d := core.Dist(p, c)
	if d >= r {
		return p
	}
	if d == 0 {
		return core.Vec2{X: c.X, Y: c.Y + r}
	}
	n := p.Sub(c).Scale(1 / d)
	return c.Add(n.Scale(r))
}

// multiplier is the streak multiplier law: min(streak/step + 1, max).
func multiplier(streak, step, maxMult int) int {
	if step <= 0 {
		step = 1
	}
	m := streak/step + 1
	if m > maxMult {
		m = maxMult
	}
	return m
}

// angleTo is the angle from a to b.
func angleTo(a, b core.Vec2) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}
