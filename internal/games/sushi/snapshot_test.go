package sushi

import (
	"strings"
	"testing"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

func TestSnapshotIsDeepCopy(t *testing.T) {
	g := newTestGame(1)
	startPlaying(t, g)
	w := g.world

	e := placeEnemy(w, EnemyCrab, 100, 100)
	sushiAt(w, 50, 50)
	w.swing()
	w.Pole.HitEnemies[e.ID] = true
	w.Camera.Lock()
	w.Boss = newBoss(BossCrabKing, 400)
	w.Encounter.enter(StageFighting, 0)

	s := g.Snapshot()
	s.Enemies[0].HP = 99
	s.Sushi[0].X = 999
	s.Pole.HitEnemies[12345] = true
	s.Boss.HP = 1
	s.Boss.Body.(*CrabKingBody).Shield = 500

	if e.HP == 99 || w.Sushi[0].X == 999 {
		t.Error("snapshot shares entity storage with the world")
	}
	if w.Pole.HitEnemies[12345] {
		t.Error("snapshot shares the pole hit set")
	}
	if w.Boss.HP == 1 || w.Boss.Shielded() {
		t.Error("snapshot shares the boss")
	}
}

func TestSnapshotOmitsRemovedEntities(t *testing.T) {
	g := newTestGame(1)
	startPlaying(t, g)
	w := g.world

	e := placeEnemy(w, EnemySeagull, 100, 100)
	e.Dead = true
	s := g.Snapshot()
	if len(s.Enemies) != 0 {
		t.Errorf("dead enemy visible in snapshot")
	}
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	g := newTestGame(1)
	startPlaying(t, g)
	a := g.Snapshot()
	g.Step(input(core.ActionUp))
	b := g.Snapshot()
	if a.Hash() == b.Hash() {
		t.Error("hash should change after a step")
	}
}

func TestRenderStates(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), "S U S H I") {
		t.Error("menu should show the title")
	}

	startPlaying(t, g)
	w := g.world
	placeEnemy(w, EnemyFisherman, 100, 300)
	sushiAt(w, 200, 400)
	w.swing()
	w.net(core.Vec2{X: 300, Y: 500}, core.Vec2{}, 28, 100)
	w.Camera.Lock()
	w.Boss = newBoss(BossOctopus, 400)
	w.Encounter.enter(StageFighting, 0)
	w.Sweep = &Sweep{Y: 300, Thickness: 16, GapX: 100, GapW: 90, Speed: 3}
	w.burst(200, 200, 10, core.ColorRed)

	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"SCORE", "Octo Sensei"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.run.Lives = 0
	g.Step(input())
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(10, 4)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Terminal") {
		t.Error("expected too-small message")
	}
}

func TestGlyphHelpers(t *testing.T) {
	if facingGlyph(facingUp) != '^' {
		t.Errorf("up arrow = %q", facingGlyph(facingUp))
	}
	if facingGlyph(0) != '>' {
		t.Errorf("right arrow = %q", facingGlyph(0))
	}
	if poleGlyph(facingUp) != '|' {
		t.Errorf("vertical pole = %q", poleGlyph(facingUp))
	}
	if degrees(-10*3.141592653589793, 360) < 0 {
		t.Error("degrees must wrap negatives")
	}
}

func TestRenderDefeatedBossBar(t *testing.T) {
	g := newTestGame(1)
	startPlaying(t, g)
	w := g.world
	w.Camera.Lock()
	w.Boss = newBoss(BossFisherman, 400)
	w.Boss.HP = -3
	w.Encounter.enter(StageDefeated, 10)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(1), w.Boss.Name) {
		t.Errorf("boss bar missing: %q", scr.Row(1))
	}
	if strings.Contains(scr.Row(1), "█") {
		t.Error("defeated boss bar should be empty")
	}
}
