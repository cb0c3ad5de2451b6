package sim

import (
	"math"
	"math/rand"
)

// TileType identifies the surface of a single world cell.
type TileType uint8

const (
	TileGrass     TileType = iota // Default open ground
	TileDarkGrass                 // Cosmetic variant of grass
	TileFlower                    // Cosmetic variant of grass
	TileWater                     // Kills everything but blue
	TileFire                      // Kills everything but red
	TileRock                      // Kills everything but purple
	TileTypeCount                 // sentinel
)

// IsHazard reports whether the tile kills followers without the matching immunity.
func (t TileType) IsHazard() bool {
	return t == TileWater || t == TileFire || t == TileRock
}

func (t TileType) String() string {
	switch t {
	case TileGrass:
		return "grass"
	case TileDarkGrass:
		return "dark_grass"
	case TileFlower:
		return "flower"
	case TileWater:
		return "water"
	case TileFire:
		return "fire"
	case TileRock:
		return "rock"
	default:
		return "unknown"
	}
}

// World is the tile grid for one level. Tiles are stored row-major.
type World struct {
	Cols     int
	Rows     int
	TileSize int
	tiles    []TileType
}

// NewWorld returns an all-grass world. Use GenerateWorld for a level map.
func NewWorld(cols, rows, tileSize int) *World {
	return &World{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		tiles:    make([]TileType, cols*rows),
	}
}

func (w *World) inBounds(col, row int) bool {
	return col >= 0 && col < w.Cols && row >= 0 && row < w.Rows
}

// At returns the tile at (col, row). Out-of-bounds cells read as grass.
func (w *World) At(col, row int) TileType {
	if !w.inBounds(col, row) {
		return TileGrass
	}
	return w.tiles[row*w.Cols+col]
}

// Set writes a tile. Out-of-bounds writes are ignored.
func (w *World) Set(col, row int, t TileType) {
	if !w.inBounds(col, row) {
		return
	}
	w.tiles[row*w.Cols+col] = t
}

// TileAt returns the tile under a pixel position.
func (w *World) TileAt(x, y float64) TileType {
	ts := float64(w.TileSize)
	return w.At(int(math.Floor(x/ts)), int(math.Floor(y/ts)))
}

// PixelWidth is the world width in pixels.
func (w *World) PixelWidth() float64 { return float64(w.Cols * w.TileSize) }

// PixelHeight is the world height in pixels.
func (w *World) PixelHeight() float64 { return float64(w.Rows * w.TileSize) }

// CellCenter returns the pixel centre of a cell.
func (w *World) CellCenter(col, row int) (float64, float64) {
	ts := float64(w.TileSize)
	return float64(col)*ts + ts/2, float64(row)*ts + ts/2
}

// CountTiles returns how many cells hold the given tile type.
func (w *World) CountTiles(t TileType) int {
	n := 0
	for _, c := range w.tiles {
		if c == t {
			n++
		}
	}
	return n
}

const spawnAttempts = 100

// FindSafeSpawn picks a random cell whose 5×5 neighbourhood holds no hazard
// and returns its centre. Falls back to the world centre.
func (w *World) FindSafeSpawn(rng *rand.Rand) (float64, float64) {
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		col := rng.Intn(w.Cols)
		row := rng.Intn(w.Rows)
		if w.hazardFree(col, row, 2) {
			return w.CellCenter(col, row)
		}
	}
	return w.PixelWidth() / 2, w.PixelHeight() / 2
}

// hazardFree checks every in-bounds cell within radius r of (col, row).
func (w *World) hazardFree(col, row, r int) bool {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c, rr := col+dx, row+dy
			if w.inBounds(c, rr) && w.At(c, rr).IsHazard() {
				return false
			}
		}
	}
	return true
}

// islandRatio is the fraction of hazard cells in the 7×7 ring around
// (col, row), excluding the inner 3×3 pad. ok is false when no cell was checked.
func (w *World) islandRatio(col, row int) (ratio float64, ok bool) {
	hazards, checked := 0, 0
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
				continue
			}
			c, r := col+dx, row+dy
			if !w.inBounds(c, r) {
				continue
			}
			checked++
			if w.At(c, r).IsHazard() {
				hazards++
			}
		}
	}
	if checked == 0 {
		return 0, false
	}
	return float64(hazards) / float64(checked), true
}

// FindHazardIslandSpawn looks for a safe cell mostly surrounded by hazards.
// When none is found it carves a 2×2 grass pad at least two cells from the
// edge and returns the pad's top-left cell centre. Grids too small to carve
// fall back to FindSafeSpawn.
func (w *World) FindHazardIslandSpawn(rng *rand.Rand) (float64, float64) {
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		col := rng.Intn(w.Cols)
		row := rng.Intn(w.Rows)
		if w.At(col, row).IsHazard() {
			continue
		}
		if ratio, ok := w.islandRatio(col, row); ok && ratio > 0.6 {
			return w.CellCenter(col, row)
		}
	}

	if w.Cols > 4 && w.Rows > 4 {
		col := rng.Intn(w.Cols-4) + 2
		row := rng.Intn(w.Rows-4) + 2
		w.Set(col, row, TileGrass)
		w.Set(col+1, row, TileGrass)
		w.Set(col, row+1, TileGrass)
		w.Set(col+1, row+1, TileGrass)
		return w.CellCenter(col, row)
	}
	return w.FindSafeSpawn(rng)
}
