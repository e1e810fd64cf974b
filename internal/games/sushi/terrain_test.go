package sushi

import (
	"math"
	"testing"
)

func TestTerrainDeterminism(t *testing.T) {
	xs := []float64{0, 37, 123.5, 200, 399}
	for level := range Levels {
		for y := -50.0; y < 8000; y += 7.3 {
			for _, x := range xs {
				a := TerrainAt(level, x, y)
				b := TerrainAt(level, x, y)
				if a != b {
					t.Fatalf("level %d (%v, %v): %s then %s", level, x, y, a, b)
				}
			}
		}
	}
}

func TestBeachStartsInOpenWater(t *testing.T) {
	for y := 0.0; y < 600; y += 5 {
		for x := 0.0; x <= 400; x += 10 {
			if got := TerrainAt(0, x, y); got != TerrainWater {
				t.Fatalf("TerrainAt(0, %v, %v) = %s, want water", x, y, got)
			}
		}
	}
}

func TestEveryLevelHasLand(t *testing.T) {
	for level := range Levels {
		seen := map[Terrain]bool{}
		for y := 0.0; y < 5000; y += 13 {
			for x := 0.0; x <= 400; x += 25 {
				seen[TerrainAt(level, x, y)] = true
			}
		}
		if len(seen) < 2 {
			t.Errorf("level %d produced only %v", level, seen)
		}
	}
}

func TestTerrainUnknownLevel(t *testing.T) {
	if got := TerrainAt(len(Levels), 10, 1000); got != TerrainWater {
		t.Errorf("unknown level terrain = %s, want water", got)
	}
	if got := TerrainAt(-1, 10, 1000); got != TerrainWater {
		t.Errorf("negative level terrain = %s, want water", got)
	}
}

func TestHash01(t *testing.T) {
	sum := 0.0
	const n = 20000
	for i := -n / 2; i < n/2; i++ {
		v := hash01(i)
		if v < 0 || v >= 1 {
			t.Fatalf("hash01(%d) = %v, out of [0,1)", i, v)
		}
		if v != hash01(i) {
			t.Fatalf("hash01(%d) not stable", i)
		}
		if v == hash01(i+1) {
			t.Fatalf("hash01(%d) == hash01(%d)", i, i+1)
		}
		sum += v
	}
	if mean := sum / n; math.Abs(mean-0.5) > 0.02 {
		t.Errorf("hash01 mean = %v, want about 0.5", mean)
	}
}

func TestPatchyBounds(t *testing.T) {
	if patchy(0.1, 0.2, 0.4, 5, 5) {
		t.Error("below band should be false")
	}
	if !patchy(0.5, 0.2, 0.4, 5, 5) {
		t.Error("above band should be true")
	}
}
