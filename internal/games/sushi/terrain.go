package sushi

import "math"

// Terrain is the ground category under a world position.
type Terrain int

const (
	TerrainWater Terrain = iota
	TerrainSand
	TerrainGrass
)

func (t Terrain) String() string {
	switch t {
	case TerrainWater:
		return "water"
	case TerrainSand:
		return "sand"
	case TerrainGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// TerrainFunc maps a lateral position and a world distance to a terrain category.
// Implementations must be pure: the same input always yields the same output.
type TerrainFunc func(x, worldY float64) Terrain

// TerrainAt returns the terrain of the given level at (x, worldY).
// Unknown level indices fall back to open water.
func TerrainAt(level int, x, worldY float64) Terrain {
	if level < 0 || level >= len(Levels) {
		return TerrainWater
	}
	return Levels[level].Terrain(x, worldY)
}

// hash01 is an avalanche integer hash (splitmix64 finalizer) mapped to [0, 1).
// Neighbouring inputs produce uncorrelated outputs.
func hash01(n int) float64 {
	x := uint64(n) //#nosec G115 -- bit pattern reinterpretation is intended
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	return float64(z>>11) / float64(1<<53)
}

// cellHash quantizes a position to a 16px cell and hashes it.
func cellHash(x, worldY float64) float64 {
	qx := int(math.Floor(x / 16))
	qy := int(math.Floor(worldY / 16))
	return hash01(qy*92821 ^ qx*68917)
}

// patchy resolves a transition band: v below lo is false, above hi is true,
// and in between the cell hash decides with probability proportional to depth.
func patchy(v, lo, hi, x, worldY float64) bool {
	switch {
	case v <= lo:
		return false
	case v >= hi:
		return true
	default:
		return cellHash(x, worldY) < (v-lo)/(hi-lo)
	}
}

// beachTerrain: open sea below the wavy shoreline, then sand with tidal
// inlets and grassy dunes further up the beach.
func beachTerrain(x, worldY float64) Terrain {
	if worldY < 600 {
		return TerrainWater
	}
	shore := 640 + 28*math.Sin(x*0.021) + 14*math.Sin(x*0.053+1.3)
	if worldY < shore {
		return TerrainWater
	}

	if worldY > 1100 {
		inlet := math.Sin(worldY*0.0023+0.7) + 0.45*math.Sin(x*0.031+worldY*0.001)
		if patchy(inlet, 1.05, 1.2, x, worldY) {
			return TerrainWater
		}
	}

	dune := math.Sin(worldY*0.0041) + 0.5*math.Sin(worldY*0.011+x*0.012) + 0.25*math.Sin(x*0.047)
	if patchy(dune, 0.8, 1.05, x, worldY) {
		return TerrainGrass
	}
	return TerrainSand
}

// coveTerrain alternates sand and water bands; more water overall.
func coveTerrain(x, worldY float64) Terrain {
	if worldY < 400 {
		return TerrainWater
	}
	band := math.Sin(worldY*0.006) + 0.6*math.Sin(worldY*0.013+x*0.015) + 0.3*math.Sin(x*0.04+2.1)
	if patchy(band, 0.3, 0.55, x, worldY) {
		return TerrainWater
	}
	if band < -1.25 {
		return TerrainGrass
	}
	return TerrainSand
}

// jungleTerrain is mostly grass cut by meandering river bands lined with sand banks.
func jungleTerrain(x, worldY float64) Terrain {
	if worldY < 200 {
		return TerrainSand
	}
	river := math.Abs(math.Sin(worldY*0.0035 + 0.45*math.Sin(x*0.012) + 0.2*math.Sin(x*0.031+0.5)))
	if river < 0.12 {
		return TerrainWater
	}
	if !patchy(river, 0.12, 0.24, x, worldY) {
		return TerrainSand
	}
	return TerrainGrass
}
