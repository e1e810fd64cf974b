package sushi

import "math"

// spawnAhead emits enemy batches and tree clusters until both cursors are
// past the lookahead margin above the viewport. Nothing spawns during a
// boss encounter.
func (w *World) spawnAhead() {
	if w.Encounter.Stage != StageNone {
		return
	}
	limit := w.Camera.Scroll + w.cfg.Viewport.Height + w.cfg.Spawn.Lookahead
	distance := float64(w.Camera.Distance())

	for w.spawn.Enemy < limit {
		w.spawnBatch(w.spawn.Enemy)
		gap := w.randRange(w.lvl.SpawnMin, w.lvl.SpawnMax)
		w.spawn.Enemy += math.Max(w.diff.Spacing(gap, distance), 1)
	}

	if !w.lvl.Trees {
		return
	}
	for w.spawn.Tree < limit {
		w.spawnTrees(w.spawn.Tree)
		w.spawn.Tree += math.Max(w.randRange(w.lvl.TreeMin, w.lvl.TreeMax), 1)
	}
}

// spawnBatch places one to three enemies around worldY.
func (w *World) spawnBatch(worldY float64) {
	n := 1 + w.rng.Intn(3)
	weights := w.lvl.EarlyWeights.lerp(w.lvl.LateWeights, w.diff.Level(float64(w.Camera.Distance())))
	width := w.cfg.Viewport.Width

	for i := 0; i < n; i++ {
		kind := w.pickKind(weights)
		x := w.randRange(30, width-30)
		y := worldY + w.randRange(0, 40)

		// Crabs and fishermen cannot stand on water
		if kind != EnemySeagull && TerrainAt(w.level, x, y) == TerrainWater {
			kind = EnemySeagull
		}
		w.addEnemy(kind, x, y)
	}
}

// addEnemy creates an enemy of the given kind with level-scaled hit points.
func (w *World) addEnemy(kind EnemyKind, x, worldY float64) *Enemy {
	st := enemyTable[kind]
	hp := int(math.Ceil(float64(st.HP) * w.lvl.EnemyHPMultiplier))
	w.nextID++
	e := &Enemy{
		ID:     w.nextID,
		Kind:   kind,
		HP:     hp,
		MaxHP:  hp,
		Radius: st.Radius,
		X:      x,
		BaseX:  x,
		WorldY: worldY,
		Drift:  w.diff.Drift(worldY),
		Anim:   w.rng.Float64() * 2 * math.Pi,
	}
	if kind == EnemyFisherman {
		e.ShootTimer = w.randRangeInt(w.lvl.ShootMin, w.lvl.ShootMax)
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

// pickKind draws an enemy kind from the blended weights.
func (w *World) pickKind(wt KindWeights) EnemyKind {
	total := wt.Crab + wt.Seagull + wt.Fisherman
	if total <= 0 {
		return EnemySeagull
	}
	roll := w.rng.Float64() * total
	if roll < wt.Crab {
		return EnemyCrab
	}
	if roll < wt.Crab+wt.Seagull {
		return EnemySeagull
	}
	return EnemyFisherman
}

// spawnTrees places a small cluster of trees on grass near worldY.
func (w *World) spawnTrees(worldY float64) {
	width := w.cfg.Viewport.Width
	cx := w.randRange(40, width-40)
	n := 2 + w.rng.Intn(3)

	for i := 0; i < n; i++ {
		x := cx + w.randRange(-50, 50)
		y := worldY + w.randRange(-30, 30)
		if x < 20 || x > width-20 {
			continue
		}
		if TerrainAt(w.level, x, y) != TerrainGrass {
			continue
		}
		w.Trees = append(w.Trees, &Tree{
			X:      x,
			WorldY: y,
			Radius: w.randRange(16, 24),
		})
	}
}
