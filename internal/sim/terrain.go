package sim

import (
	"math"
	"math/rand"
)

// terrainConfig holds the tuneable counts and shapes of each generation pass.
type terrainConfig struct {
	// Base fill thresholds on a uniform roll.
	FlowerThreshold    float64 // above this → flower
	DarkGrassThreshold float64 // above this → dark grass

	LakesMin, LakesMax           int
	LakeRadiusMin, LakeRadiusMax int
	LakeWobble                   float64

	RiversMin, RiversMax         int
	RiverHalfMin, RiverHalfMax   int
	RiverStepsMin, RiverStepsMax int
	RiverDriftChance             float64

	FirePatchesMin, FirePatchesMax int
	FireRadiusMin, FireRadiusMax   int
	FireWobble, FireShrink         float64

	RockPatchesMin, RockPatchesMax int
	RockRadiusMin, RockRadiusMax   int
	RockWobble, RockShrink         float64
}

var defaultTerrainConfig = terrainConfig{
	FlowerThreshold:    0.92,
	DarkGrassThreshold: 0.85,

	LakesMin: 2, LakesMax: 4,
	LakeRadiusMin: 3, LakeRadiusMax: 6,
	LakeWobble: 1.5,

	RiversMin: 1, RiversMax: 2,
	RiverHalfMin: 2, RiverHalfMax: 3,
	RiverStepsMin: 15, RiverStepsMax: 34,
	RiverDriftChance: 0.3,

	FirePatchesMin: 3, FirePatchesMax: 6,
	FireRadiusMin: 2, FireRadiusMax: 4,
	FireWobble: 2, FireShrink: 1,

	RockPatchesMin: 2, RockPatchesMax: 4,
	RockRadiusMin: 2, RockRadiusMax: 4,
	RockWobble: 1.5, RockShrink: 0.5,
}

// between returns a uniform int in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// GenerateWorld builds a fully populated level map. Passes run in order over
// one grid: base fill, lakes, rivers, fire, rock. Water is never overwritten,
// and rock never replaces fire.
func GenerateWorld(cols, rows, tileSize int, rng *rand.Rand) *World {
	w := NewWorld(cols, rows, tileSize)
	cfg := defaultTerrainConfig
	fillBase(w, rng, cfg)
	carveLakes(w, rng, cfg)
	carveRivers(w, rng, cfg)
	scatterPatches(w, rng, TileFire,
		between(rng, cfg.FirePatchesMin, cfg.FirePatchesMax),
		cfg.FireRadiusMin, cfg.FireRadiusMax, cfg.FireWobble, cfg.FireShrink)
	scatterPatches(w, rng, TileRock,
		between(rng, cfg.RockPatchesMin, cfg.RockPatchesMax),
		cfg.RockRadiusMin, cfg.RockRadiusMax, cfg.RockWobble, cfg.RockShrink)
	return w
}

func fillBase(w *World, rng *rand.Rand, cfg terrainConfig) {
	for row := 0; row < w.Rows; row++ {
		for col := 0; col < w.Cols; col++ {
			r := rng.Float64()
			switch {
			case r > cfg.FlowerThreshold:
				w.Set(col, row, TileFlower)
			case r > cfg.DarkGrassThreshold:
				w.Set(col, row, TileDarkGrass)
			default:
				w.Set(col, row, TileGrass)
			}
		}
	}
}

func carveLakes(w *World, rng *rand.Rand, cfg terrainConfig) {
	n := between(rng, cfg.LakesMin, cfg.LakesMax)
	for i := 0; i < n; i++ {
		cx := rng.Intn(w.Cols)
		cy := rng.Intn(w.Rows)
		radius := between(rng, cfg.LakeRadiusMin, cfg.LakeRadiusMax)
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				dist := math.Hypot(float64(dx), float64(dy))
				if dist < float64(radius)+rng.Float64()*cfg.LakeWobble {
					w.Set(cx+dx, cy+dy, TileWater)
				}
			}
		}
	}
}

func carveRivers(w *World, rng *rand.Rand, cfg terrainConfig) {
	n := between(rng, cfg.RiversMin, cfg.RiversMax)
	for i := 0; i < n; i++ {
		x := rng.Intn(w.Cols)
		y := rng.Intn(w.Rows)
		horizontal := rng.Float64() < 0.5
		half := between(rng, cfg.RiverHalfMin, cfg.RiverHalfMax)
		steps := between(rng, cfg.RiverStepsMin, cfg.RiverStepsMax)

		for step := 0; step < steps; step++ {
			for o := -half; o <= half; o++ {
				if horizontal {
					w.Set(x, y+o, TileWater)
				} else {
					w.Set(x+o, y, TileWater)
				}
			}
			drift := 0
			if rng.Float64() < cfg.RiverDriftChance {
				drift = 1
				if rng.Float64() < 0.5 {
					drift = -1
				}
			}
			if horizontal {
				x++
				y += drift
			} else {
				y++
				x += drift
			}
		}
	}
}

// scatterPatches paints n roughly circular patches of tile t. A cell is
// painted when its distance is below radius + wobble·rand - shrink, and only
// when the cell currently holds a tile of lower precedence.
func scatterPatches(w *World, rng *rand.Rand, t TileType, n, rMin, rMax int, wobble, shrink float64) {
	for i := 0; i < n; i++ {
		cx := rng.Intn(w.Cols)
		cy := rng.Intn(w.Rows)
		radius := between(rng, rMin, rMax)
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				dist := math.Hypot(float64(dx), float64(dy))
				if dist >= float64(radius)+rng.Float64()*wobble-shrink {
					continue
				}
				col, row := cx+dx, cy+dy
				if !w.inBounds(col, row) {
					continue
				}
				if overrides(t, w.At(col, row)) {
					w.Set(col, row, t)
				}
			}
		}
	}
}

// overrides reports whether painting t over existing keeps the
// Water > Fire > Rock > base precedence.
func overrides(t, existing TileType) bool {
	switch existing {
	case TileWater:
		return false
	case TileFire:
		return t == TileFire
	default:
		return true
	}
}
