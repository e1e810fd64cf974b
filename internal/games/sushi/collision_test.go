package sushi

import (
	"testing"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

func TestBasicKill(t *testing.T) {
	w := newTestWorld(t, 0)
	e := placeEnemy(w, EnemySeagull, 200, 300)
	if e.HP != 1 {
		t.Fatalf("seagull HP = %d, want 1", e.HP)
	}
	sushiAt(w, 200, 305)

	w.resolveCollisions()
	w.cleanup()

	if len(w.Enemies) != 0 {
		t.Errorf("seagull should be removed, %d enemies left", len(w.Enemies))
	}
	if w.run.Score != 100 {
		t.Errorf("score = %d, want 100", w.run.Score)
	}
	if len(w.Sushi) != 0 {
		t.Errorf("sushi should be consumed, %d left", len(w.Sushi))
	}
	if len(w.PowerUps) > 1 {
		t.Errorf("at most one power-up may drop, got %d", len(w.PowerUps))
	}
	if !hasCue(w.takeCues(), core.CueHit) {
		t.Error("expected hit cue")
	}
}

func TestDropRate(t *testing.T) {
	w := newTestWorld(t, 0)
	drops := 0
	const kills = 4000
	for i := 0; i < kills; i++ {
		placeEnemy(w, EnemySeagull, 200, 300)
		sushiAt(w, 200, 300)
		w.resolveCollisions()
		drops += len(w.PowerUps)
		w.PowerUps = nil
		w.cleanup()
	}
	rate := float64(drops) / kills
	if rate < 0.09 || rate > 0.15 {
		t.Errorf("drop rate = %.3f, want about 0.12", rate)
	}
}

func TestLethalHitIdempotence(t *testing.T) {
	w := newTestWorld(t, 0)
	placeEnemy(w, EnemySeagull, 200, 300)
	first := sushiAt(w, 200, 300)
	second := sushiAt(w, 202, 300)

	w.resolveCollisions()
	if w.run.Score != 100 {
		t.Fatalf("score = %d, want one award of 100", w.run.Score)
	}
	if !first.Dead || second.Dead {
		t.Errorf("only the first sushi should be consumed (first=%v second=%v)", first.Dead, second.Dead)
	}

	// Later frames cannot hit it either
	w.resolveCollisions()
	w.cleanup()
	w.resolveCollisions()
	if w.run.Score != 100 {
		t.Errorf("score = %d after later frames, want 100", w.run.Score)
	}
	if w.run.Streak != 1 {
		t.Errorf("streak = %d, want 1", w.run.Streak)
	}
}

func TestMultiplierLaw(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 1},
		{2, 1},
		{3, 2},
		{5, 2},
		{6, 3},
		{29, 10},
		{300, 10},
	}

	for _, tt := range tests {
		if got := multiplier(tt.streak, 3, 10); got != tt.want {
			t.Errorf("multiplier(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestDamageResetsStreak(t *testing.T) {
	w := newTestWorld(t, 0)
	w.run.Streak = 29
	if w.Multiplier() != 10 {
		t.Fatalf("multiplier = %d, want 10", w.Multiplier())
	}
	w.hurtPlayer()
	if w.run.Streak != 0 || w.Multiplier() != 1 {
		t.Errorf("streak=%d multiplier=%d, want 0 and 1", w.run.Streak, w.Multiplier())
	}
}

func TestKillScoreUsesMultiplier(t *testing.T) {
	w := newTestWorld(t, 0)
	w.run.Streak = 5 // This hit makes it 6, multiplier 3
	placeEnemy(w, EnemySeagull, 100, 200)
	sushiAt(w, 100, 200)

	w.resolveCollisions()
	if w.run.Score != 300 {
		t.Errorf("score = %d, want 300", w.run.Score)
	}
}

func TestNonLethalHit(t *testing.T) {
	w := newTestWorld(t, 0)
	e := placeEnemy(w, EnemyCrab, 200, 300)
	sushiAt(w, 200, 300)

	w.resolveCollisions()
	w.cleanup()
	if e.HP != 1 || e.Dead {
		t.Errorf("crab HP=%d dead=%v, want 1 and alive", e.HP, e.Dead)
	}
	if w.run.Score != 0 {
		t.Errorf("non-lethal hit scored %d", w.run.Score)
	}
	if w.run.Streak != 1 {
		t.Errorf("streak = %d, want 1", w.run.Streak)
	}
}

func TestEnemyHPScalesWithLevel(t *testing.T) {
	w := newTestWorld(t, 2) // HP multiplier 2.0
	if e := placeEnemy(w, EnemyFisherman, 100, 100); e.HP != 6 {
		t.Errorf("fisherman HP = %d, want 6", e.HP)
	}
	w = newTestWorld(t, 1) // HP multiplier 1.5
	if e := placeEnemy(w, EnemySeagull, 100, 100); e.HP != 2 {
		t.Errorf("seagull HP = %d, want ceil(1.5) = 2", e.HP)
	}
}

func TestPoleHitsOncePerSwing(t *testing.T) {
	w := newTestWorld(t, 2)
	p := w.Player.Pos
	e := placeEnemy(w, EnemyFisherman, p.X, p.Y-30)
	w.Player.Facing = facingUp

	w.swing()
	frames := 0
	for w.Pole != nil {
		w.poleVsEnemies()
		w.Pole.Timer--
		if w.Pole.Timer <= 0 {
			w.Pole = nil
		}
		frames++
	}

	if frames != 20 {
		t.Errorf("swing lasted %d frames, want 20", frames)
	}
	if e.HP != 4 {
		t.Errorf("fisherman HP = %d, want 4 (one pole hit)", e.HP)
	}
	if w.run.Streak != 1 {
		t.Errorf("streak = %d, want 1", w.run.Streak)
	}

	// A new swing may hit again
	w.swing()
	for w.Pole != nil {
		w.poleVsEnemies()
		w.Pole.Timer--
		if w.Pole.Timer <= 0 {
			w.Pole = nil
		}
	}
	if e.HP != 2 {
		t.Errorf("fisherman HP = %d after second swing, want 2", e.HP)
	}
}

func TestNetDwellDamage(t *testing.T) {
	w := newTestWorld(t, 0)
	w.net(w.Player.Pos, core.Vec2{}, 28, 1000)
	w.run.Streak = 4

	for i := 0; i < w.cfg.Boss.NetDwellFrames; i++ {
		w.bossShotsVsPlayer()
	}
	if w.run.Lives != 3 {
		t.Fatalf("net hurt after only %d frames", w.cfg.Boss.NetDwellFrames)
	}

	w.bossShotsVsPlayer()
	if w.run.Lives != 2 {
		t.Errorf("lives = %d, want 2 after dwelling past the threshold", w.run.Lives)
	}
	if w.run.Streak != 0 {
		t.Error("player damage should reset the streak")
	}
	if w.BossShots[0].Dead {
		t.Error("nets are not consumed by contact")
	}
}

func TestNetDwellResetsOnLeaving(t *testing.T) {
	w := newTestWorld(t, 0)
	w.net(w.Player.Pos, core.Vec2{}, 28, 1000)
	net := w.BossShots[0]

	for i := 0; i < 20; i++ {
		w.bossShotsVsPlayer()
	}
	if net.Dwell != 20 {
		t.Fatalf("dwell = %d, want 20", net.Dwell)
	}

	home := w.Player.Pos
	w.Player.Pos.X += 100
	w.bossShotsVsPlayer()
	if net.Dwell != 0 {
		t.Errorf("dwell = %d after leaving, want 0", net.Dwell)
	}

	w.Player.Pos = home
	for i := 0; i < 25; i++ {
		w.bossShotsVsPlayer()
	}
	if w.run.Lives != 3 {
		t.Error("dwell must restart from zero after leaving")
	}
}

func TestBossShotConsumedOnContact(t *testing.T) {
	w := newTestWorld(t, 0)
	w.bossShot(w.Player.Pos, 0, 0, 5)

	w.bossShotsVsPlayer()
	if !w.BossShots[0].Dead {
		t.Error("plain boss shot should be consumed")
	}
	if w.run.Lives != 2 {
		t.Errorf("lives = %d, want 2", w.run.Lives)
	}
}

func TestEnemyContactHurtsPlayer(t *testing.T) {
	w := newTestWorld(t, 0)
	placeEnemy(w, EnemyCrab, w.Player.Pos.X+10, w.Player.Pos.Y)

	w.resolveCollisions()
	if w.run.Lives != 2 || w.Player.Visible {
		t.Errorf("lives=%d visible=%v, want 2 and false", w.run.Lives, w.Player.Visible)
	}
	if !hasCue(w.takeCues(), core.CuePlayerHit) {
		t.Error("expected player-hit cue")
	}
}

func TestEnemyShotHurtsPlayer(t *testing.T) {
	w := newTestWorld(t, 0)
	w.EnemyShots = append(w.EnemyShots, &Projectile{
		Kind:   ProjEnemy,
		X:      w.Player.Pos.X,
		WorldY: w.Camera.ScreenToWorld(w.Player.Pos.Y),
		Life:   10,
		Radius: 5,
	})

	w.resolveCollisions()
	if w.run.Lives != 2 {
		t.Errorf("lives = %d, want 2", w.run.Lives)
	}
	if !w.EnemyShots[0].Dead {
		t.Error("enemy shot should be consumed")
	}
}

func TestPowerUpCollection(t *testing.T) {
	tests := []struct {
		kind  PowerUpKind
		check func(w *World) bool
	}{
		{PowerSpeed, func(w *World) bool { return w.Effects.Speed == 600 }},
		{PowerTriple, func(w *World) bool { return w.Effects.Triple == 600 }},
		{PowerShield, func(w *World) bool { return w.Effects.Shield == 300 }},
		{PowerLife, func(w *World) bool { return w.run.Lives == 4 }},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w := newTestWorld(t, 0)
			w.PowerUps = append(w.PowerUps, &PowerUp{
				Kind:   tt.kind,
				X:      w.Player.Pos.X,
				WorldY: w.Camera.ScreenToWorld(w.Player.Pos.Y),
				Life:   100,
			})
			w.resolveCollisions()
			w.cleanup()
			if !tt.check(w) {
				t.Error("effect not applied")
			}
			if len(w.PowerUps) != 0 {
				t.Error("collected power-up should be removed")
			}
			if !hasCue(w.takeCues(), core.CuePowerUp) {
				t.Error("expected power-up cue")
			}
		})
	}
}

func TestLifePowerUpCapped(t *testing.T) {
	w := newTestWorld(t, 0)
	w.run.Lives = 5
	w.collect(&PowerUp{Kind: PowerLife})
	if w.run.Lives != 5 {
		t.Errorf("lives = %d, want capped at 5", w.run.Lives)
	}
}

func TestTreePushOut(t *testing.T) {
	w := newTestWorld(t, 2)
	p := w.Player.Pos
	tree := &Tree{X: p.X + 10, WorldY: w.Camera.ScreenToWorld(p.Y), Radius: 20}
	w.Trees = append(w.Trees, tree)

	w.resolveCollisions()

	d := core.Dist(w.Player.Pos, core.Vec2{X: tree.X, Y: p.Y})
	want := tree.Radius + w.Player.Radius
	if d < want-1e-9 {
		t.Errorf("player still overlaps tree: distance %v < %v", d, want)
	}
	if w.Player.Pos.X >= p.X {
		t.Error("player should be pushed away from the tree")
	}
}

func TestTreeClusterPushOut(t *testing.T) {
	vp := newTestWorld(t, 2).cfg.Viewport
	tests := []struct {
		name    string
		screenY float64
	}{
		{"mid screen", vp.Height / 2},
		{"bottom edge", vp.Height - 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 2)
			wy := w.Camera.ScreenToWorld(tt.screenY)
			w.Trees = append(w.Trees,
				&Tree{X: 175, WorldY: wy, Radius: 20},
				&Tree{X: 225, WorldY: wy, Radius: 20},
			)
			w.Player.Pos = core.Vec2{X: 195, Y: tt.screenY}

			w.pushOutOfTrees()

			pos := w.Player.Pos
			for i, tree := range w.Trees {
				d := core.Dist(pos, core.Vec2{X: tree.X, Y: tt.screenY})
				if want := tree.Radius + w.Player.Radius; d < want-1e-6 {
					t.Errorf("player overlaps tree %d: distance %.2f < %.2f", i, d, want)
				}
			}
			r := w.Player.Radius
			if pos.X < r || pos.X > vp.Width-r || pos.Y < r || pos.Y > vp.Height-r {
				t.Errorf("player %+v left the viewport", pos)
			}
		})
	}
}
