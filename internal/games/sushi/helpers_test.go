package sushi

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/sushi-bros/internal/config"
	"github.com/vovakirdan/sushi-bros/internal/core"
)

// newTestWorld builds a world for the given level with spawning disabled
// and the player vulnerable, so tests control every entity.
func newTestWorld(t *testing.T, level int) *World {
	t.Helper()
	cfg := config.DefaultSushiConfig()
	run := &Run{Lives: cfg.Player.StartLives}
	w := newWorld(cfg, level, run, rand.New(rand.NewSource(1)), config.NewDifficultyManager(cfg.Difficulty), ControlDirection)
	w.spawn = cursors{Enemy: math.Inf(1), Tree: math.Inf(1)}
	w.Player.Invuln = 0
	return w
}

// placeEnemy adds an enemy at a screen position.
func placeEnemy(w *World, kind EnemyKind, x, screenY float64) *Enemy {
	e := w.addEnemy(kind, x, w.Camera.ScreenToWorld(screenY))
	e.Drift = 0
	return e
}

// sushiAt creates a sushi projectile at a screen position.
func sushiAt(w *World, x, screenY float64) *Projectile {
	p := &Projectile{
		Kind:   ProjSushi,
		X:      x,
		WorldY: w.Camera.ScreenToWorld(screenY),
		Life:   w.cfg.Sushi.Life,
		Radius: w.cfg.Sushi.Radius,
	}
	w.Sushi = append(w.Sushi, p)
	return p
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasCue(cues []core.Cue, c core.Cue) bool {
	for _, x := range cues {
		if x == c {
			return true
		}
	}
	return false
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSushiConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// startPlaying drives a fresh game from the menu through the level intro.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Step(input(core.ActionConfirm))
	for i := 0; i < IntroFrames; i++ {
		g.Step(input())
	}
	if g.RunState() != StatePlaying {
		t.Fatalf("expected playing after intro, got %s", g.RunState())
	}
}

func testConfig() config.SushiConfig {
	return config.DefaultSushiConfig()
}
