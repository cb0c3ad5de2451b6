package sim

import (
	"math/rand"
	"testing"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- test determinism
}

func TestWorld_TileAtOutOfBoundsIsGrass(t *testing.T) {
	w := NewWorld(4, 4, 16)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			w.Set(c, r, TileWater)
		}
	}
	cases := [][2]float64{{-1, 10}, {10, -1}, {64, 10}, {10, 64}, {-500, -500}, {1e6, 1e6}}
	for _, p := range cases {
		if got := w.TileAt(p[0], p[1]); got != TileGrass {
			t.Fatalf("TileAt(%v,%v) = %s, want grass", p[0], p[1], got)
		}
	}
	if got := w.TileAt(0, 0); got != TileWater {
		t.Fatalf("TileAt(0,0) = %s, want water", got)
	}
	if got := w.TileAt(63.9, 63.9); got != TileWater {
		t.Fatalf("TileAt(63.9,63.9) = %s, want water", got)
	}
}

func TestWorld_TileAtIsIdempotent(t *testing.T) {
	w := GenerateWorld(50, 50, 16, newRand(7))
	for i := 0; i < 200; i++ {
		x := float64(i*13%800) + 0.5
		y := float64(i*29%800) + 0.5
		if a, b := w.TileAt(x, y), w.TileAt(x, y); a != b {
			t.Fatalf("TileAt(%v,%v) changed between calls: %s then %s", x, y, a, b)
		}
	}
}

func TestGenerateWorld_FullyPopulatedAndDeterministic(t *testing.T) {
	a := GenerateWorld(50, 50, 16, newRand(42))
	b := GenerateWorld(50, 50, 16, newRand(42))
	if a.Cols != 50 || a.Rows != 50 || a.TileSize != 16 {
		t.Fatalf("unexpected dimensions %dx%d@%d", a.Cols, a.Rows, a.TileSize)
	}
	if a.PixelWidth() != 800 || a.PixelHeight() != 800 {
		t.Fatalf("unexpected pixel size %vx%v", a.PixelWidth(), a.PixelHeight())
	}
	for r := 0; r < a.Rows; r++ {
		for c := 0; c < a.Cols; c++ {
			if a.At(c, r) >= TileTypeCount {
				t.Fatalf("cell (%d,%d) holds invalid tile %d", c, r, a.At(c, r))
			}
			if a.At(c, r) != b.At(c, r) {
				t.Fatalf("same seed produced different tile at (%d,%d)", c, r)
			}
		}
	}
	if a.CountTiles(TileWater) == 0 {
		t.Fatal("expected at least one lake or river")
	}
	t.Logf("water=%d fire=%d rock=%d flower=%d",
		a.CountTiles(TileWater), a.CountTiles(TileFire), a.CountTiles(TileRock), a.CountTiles(TileFlower))
}

func TestScatterPatches_RespectPrecedence(t *testing.T) {
	w := NewWorld(10, 10, 16)
	w.Set(5, 5, TileWater)
	w.Set(4, 5, TileFire)
	scatterPatches(w, newRand(1), TileRock, 1, 9, 9, 0, -20)
	if w.At(5, 5) != TileWater {
		t.Fatalf("rock overwrote water: %s", w.At(5, 5))
	}
	if w.At(4, 5) != TileFire {
		t.Fatalf("rock overwrote fire: %s", w.At(4, 5))
	}
	if w.At(0, 0) != TileRock {
		t.Fatalf("expected rock to cover grass, got %s", w.At(0, 0))
	}
	scatterPatches(w, newRand(2), TileFire, 1, 9, 9, 0, -20)
	if w.At(5, 5) != TileWater {
		t.Fatalf("fire overwrote water: %s", w.At(5, 5))
	}
	if w.At(0, 0) != TileFire {
		t.Fatalf("expected fire to cover rock, got %s", w.At(0, 0))
	}
}

// Scenario A: safe spawns land in a hazard-free 5×5 window.
func TestFindSafeSpawn_WindowIsHazardFree(t *testing.T) {
	found := 0
	for seed := int64(1); seed <= 20; seed++ {
		rng := newRand(seed)
		w := GenerateWorld(50, 50, 16, rng)
		x, y := w.FindSafeSpawn(rng)
		col, row := int(x)/16, int(y)/16
		cx, cy := w.CellCenter(col, row)
		if cx != x || cy != y {
			// Fallback to the world centre.
			if x != 400 || y != 400 {
				t.Fatalf("seed %d: spawn (%v,%v) is neither a cell centre nor the fallback", seed, x, y)
			}
			continue
		}
		found++
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				if w.inBounds(col+dx, row+dy) && w.At(col+dx, row+dy).IsHazard() {
					t.Fatalf("seed %d: hazard %s at (%d,%d) near spawn (%d,%d)",
						seed, w.At(col+dx, row+dy), col+dx, row+dy, col, row)
				}
			}
		}
	}
	if found == 0 {
		t.Fatal("no seed produced a searched safe spawn")
	}
}

func TestFindSafeSpawn_FallsBackToCentre(t *testing.T) {
	w := NewWorld(10, 10, 16)
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			w.Set(c, r, TileFire)
		}
	}
	x, y := w.FindSafeSpawn(newRand(3))
	if x != 80 || y != 80 {
		t.Fatalf("expected centre fallback (80,80), got (%v,%v)", x, y)
	}
}

func TestFindHazardIslandSpawn_FindsRealIsland(t *testing.T) {
	w := NewWorld(7, 7, 16)
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			w.Set(c, r, TileWater)
		}
	}
	for r := 2; r <= 4; r++ {
		for c := 2; c <= 4; c++ {
			w.Set(c, r, TileGrass)
		}
	}
	x, y := w.FindHazardIslandSpawn(newRand(5))
	col, row := int(x)/16, int(y)/16
	if w.At(col, row).IsHazard() {
		t.Fatalf("island spawn landed on %s", w.At(col, row))
	}
	if col < 2 || col > 4 || row < 2 || row > 4 {
		t.Fatalf("expected a cell on the grass pad, got (%d,%d)", col, row)
	}
	if cx, cy := w.CellCenter(col, row); cx != x || cy != y {
		t.Fatalf("island spawn (%v,%v) is not a cell centre", x, y)
	}
}

func TestFindHazardIslandSpawn_CarvesPadWhenNoIsland(t *testing.T) {
	w := NewWorld(50, 50, 16)
	for r := 0; r < 50; r++ {
		for c := 0; c < 50; c++ {
			w.Set(c, r, TileRock)
		}
	}
	x, y := w.FindHazardIslandSpawn(newRand(9))
	col, row := int(x)/16, int(y)/16
	if col < 2 || col > 47 || row < 2 || row > 47 {
		t.Fatalf("carved pad at (%d,%d) is too close to the edge", col, row)
	}
	for _, d := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if got := w.At(col+d[0], row+d[1]); got != TileGrass {
			t.Fatalf("pad cell (%d,%d) = %s, want grass", col+d[0], row+d[1], got)
		}
	}
}

func TestFindHazardIslandSpawn_TinyGridUsesSafeSpawn(t *testing.T) {
	w := NewWorld(3, 3, 16)
	x, y := w.FindHazardIslandSpawn(newRand(11))
	col, row := int(x)/16, int(y)/16
	if cx, cy := w.CellCenter(col, row); cx != x || cy != y {
		t.Fatalf("expected a cell centre from safe spawn, got (%v,%v)", x, y)
	}
}

func TestCamera_ClampsToWorld(t *testing.T) {
	c := NewCamera(800, 600)
	c.Follow(0, 0, 1600, 1200)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("origin: got (%v,%v)", c.X, c.Y)
	}
	c.Follow(1600, 1200, 1600, 1200)
	if c.X != 800 || c.Y != 600 {
		t.Fatalf("far corner: got (%v,%v)", c.X, c.Y)
	}
	c.Follow(900, 700, 1600, 1200)
	if c.X != 500 || c.Y != 400 {
		t.Fatalf("middle: got (%v,%v)", c.X, c.Y)
	}
	// World smaller than the view pins to the origin.
	c.Follow(400, 400, 320, 320)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("small world: got (%v,%v)", c.X, c.Y)
	}
}

func TestPlanLevel(t *testing.T) {
	cases := []struct {
		level                       int
		enemies, treasures, islands int
	}{
		{1, 12, 6, 1},
		{2, 14, 7, 2},
		{6, 22, 11, 3},
		{7, 24, 12, 3},
		{9, 25, 12, 3},
	}
	for _, tc := range cases {
		p := PlanLevel(tc.level)
		if p.Enemies != tc.enemies || p.Treasures != tc.treasures || p.IslandTreasures != tc.islands {
			t.Fatalf("level %d: got %+v, want enemies=%d treasures=%d islands=%d",
				tc.level, p, tc.enemies, tc.treasures, tc.islands)
		}
	}
}
