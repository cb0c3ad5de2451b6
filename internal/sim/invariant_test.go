package sim

import "testing"

// checkTickInvariants verifies the per-tick properties every run must hold.
func checkTickInvariants(t *testing.T, ts *TestSim, seen map[*Treasure]bool, hearts map[*Heart]bool) {
	t.Helper()
	g := ts.Game
	p := g.Player
	if p.Health < 0 || p.Health > p.MaxHealth {
		t.Fatalf("T=%d: health %d outside [0,%d]", g.Tick, p.Health, p.MaxHealth)
	}

	maxX := max(0, g.World.PixelWidth()-g.Camera.ViewW)
	maxY := max(0, g.World.PixelHeight()-g.Camera.ViewH)
	if g.Camera.X < 0 || g.Camera.X > maxX || g.Camera.Y < 0 || g.Camera.Y > maxY {
		t.Fatalf("T=%d: camera (%v,%v) outside [0,%v]x[0,%v]", g.Tick, g.Camera.X, g.Camera.Y, maxX, maxY)
	}

	for _, tr := range g.Treasures {
		if seen[tr] && !tr.Collected {
			t.Fatalf("T=%d: treasure %s uncollected after collection", g.Tick, tr.Name)
		}
		if tr.Collected {
			seen[tr] = true
		}
	}
	for _, h := range g.Hearts {
		if hearts[h] && !h.Collected {
			t.Fatalf("T=%d: heart uncollected after collection", g.Tick)
		}
		if h.Collected {
			hearts[h] = true
		}
	}

	if g.State == StatePlaying || g.State == StateLevelTransitioning {
		for _, f := range g.Followers {
			if f.Dead {
				t.Fatalf("T=%d: dead follower survived reaping", g.Tick)
			}
		}
		for _, e := range g.Enemies {
			if e.Dead {
				t.Fatalf("T=%d: dead enemy survived reaping", g.Tick)
			}
		}
		for _, s := range g.Shockwaves {
			if s.Done {
				t.Fatalf("T=%d: finished shockwave survived reaping", g.Tick)
			}
		}
	}
}

func TestInvariants_AutopilotRuns(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		ts := NewTestSim(WithSeed(seed), WithAutopilot())
		seen := map[*Treasure]bool{}
		hearts := map[*Heart]bool{}
		for i := 0; i < 4000 && !ts.Finished(); i++ {
			ts.Step()
			checkTickInvariants(t, ts, seen, hearts)
		}
		r := ts.Game.Report()
		t.Logf("seed=%d %s", seed, r.Summary())
		if ts.Game.State == StateNotStarted {
			t.Fatalf("seed %d: autopilot never began the run", seed)
		}
	}
}

func TestInvariants_SameSeedSameRun(t *testing.T) {
	a := NewTestSim(WithSeed(77), WithAutopilot())
	b := NewTestSim(WithSeed(77), WithAutopilot())
	a.RunTicks(1500)
	b.RunTicks(1500)
	ga, gb := a.Game, b.Game
	if ga.RunID != gb.RunID {
		t.Fatalf("run ids differ: %s vs %s", ga.RunID, gb.RunID)
	}
	if ga.Score != gb.Score || ga.Level != gb.Level || ga.State != gb.State {
		t.Fatalf("runs diverged: %s vs %s", ga.Report().Summary(), gb.Report().Summary())
	}
	if ga.Player.X != gb.Player.X || ga.Player.Y != gb.Player.Y {
		t.Fatal("player positions diverged")
	}
	if NewTestSim(WithSeed(78)).Game.RunID == ga.RunID {
		t.Fatal("different seeds should give different run ids")
	}
}

func TestInvariants_WorldGenNeverLeavesInvalidTiles(t *testing.T) {
	for seed := int64(100); seed < 120; seed++ {
		w := GenerateWorld(50, 50, 16, newRand(seed))
		for r := 0; r < w.Rows; r++ {
			for c := 0; c < w.Cols; c++ {
				if w.At(c, r) >= TileTypeCount {
					t.Fatalf("seed %d: invalid tile at (%d,%d)", seed, c, r)
				}
			}
		}
	}
}
