package sim

import "fmt"

const (
	treasureCallRadius   = 50.0
	treasureCarryRadius  = 25.0
	treasureMessageTicks = 120
	heartPickupRadius    = 20.0
	heartMessageTicks    = 60
)

// updateTreasures assigns the swarm to treasures near the player and
// collects any treasure a follower has reached.
func (g *Game) updateTreasures() {
	for _, t := range g.Treasures {
		if t.Collected {
			t.Animate()
			continue
		}

		if Distance(g.Player.X, g.Player.Y, t.X, t.Y) >= treasureCallRadius {
			g.releaseFrom(t)
			continue
		}

		near := 0
		for _, f := range g.Followers {
			if f.Treasure != t {
				f.Treasure = t
				g.Log.AddVerbose(g.Tick, followerLabel(f), "treasure", "assigned", t.Name, 0)
			}
			if !f.Dead && Distance(f.X, f.Y, t.X, t.Y) < treasureCarryRadius {
				near++
			}
		}
		if near == 0 {
			continue
		}

		t.Collect()
		g.Score += treasureScore
		g.Stats.TreasuresCollected++
		g.setMessage(fmt.Sprintf("Found: %s!", t.Name), treasureMessageTicks)
		g.audio.PlayFollowerCall()
		g.Log.Add(g.Tick, treasureLabel(t), "treasure", "collected", t.Name, float64(g.Score))
		g.spawnRewardFollower(t.X, t.Y)
		for _, f := range g.Followers {
			f.Treasure = nil
		}
	}
}

// releaseFrom frees only the followers assigned to t.
func (g *Game) releaseFrom(t *Treasure) {
	for _, f := range g.Followers {
		if f.Treasure == t {
			f.Treasure = nil
			g.Log.AddVerbose(g.Tick, followerLabel(f), "treasure", "released", t.Name, 0)
		}
	}
}

// updateHearts heals the player from a nearby heart when health is missing
// and advances every heart's animation.
func (g *Game) updateHearts() {
	for _, h := range g.Hearts {
		if !h.Collected &&
			Distance(g.Player.X, g.Player.Y, h.X, h.Y) < heartPickupRadius &&
			g.Player.Health < g.Player.MaxHealth {
			h.Collect()
			g.Player.Heal(1)
			g.Stats.HeartsCollected++
			g.setMessage("Health +1!", heartMessageTicks)
			g.audio.PlayFollowerCall()
			g.Log.Add(g.Tick, heartLabel(h), "heart", "collected",
				fmt.Sprintf("health %d/%d", g.Player.Health, g.Player.MaxHealth), float64(g.Player.Health))
		}
		h.Update()
	}
}
