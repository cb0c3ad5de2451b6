package sim

import (
	"fmt"
	"math"
)

const (
	startingFollowers   = 5
	followerSpawnSpread = 30.0
	followerSpawnDrop   = 40.0
	maxEnemies          = 25
	maxTreasures        = 12
	islandTreasureShare = 0.3
	islandHeartChance   = 0.4
	enemyScore          = 100
	treasureScore       = 500
)

// LevelPlan is the entity budget of a level.
type LevelPlan struct {
	Enemies         int
	Treasures       int
	IslandTreasures int
}

// PlanLevel returns the budget for a level number. Enemies and treasures
// grow with the level up to their caps.
func PlanLevel(level int) LevelPlan {
	treasures := min(5+level, maxTreasures)
	return LevelPlan{
		Enemies:         min(10+level*2, maxEnemies),
		Treasures:       treasures,
		IslandTreasures: int(math.Floor(float64(treasures) * islandTreasureShare)),
	}
}

// initLevel replaces the world and every entity for the current level.
func (g *Game) initLevel() {
	g.DayTimer = 0
	g.Message = Message{}
	g.Camera = NewCamera(g.cfg.ViewWidth, g.cfg.ViewHeight)
	g.World = GenerateWorld(g.cfg.Cols, g.cfg.Rows, g.cfg.TileSize, g.rng)
	g.env = Env{}

	sx, sy := g.World.FindSafeSpawn(g.rng)
	g.Player = NewPlayer(sx, sy)

	g.Followers = make([]*Follower, 0, startingFollowers)
	for i := 0; i < startingFollowers; i++ {
		c := StartingColors[i%len(StartingColors)]
		x := sx + float64(i-2)*followerSpawnSpread
		g.Followers = append(g.Followers, NewFollower(g.newID(), x, sy+followerSpawnDrop, c))
	}
	g.Stats.FollowersSpawned += len(g.Followers)

	plan := PlanLevel(g.Level)
	g.Enemies = make([]*Enemy, 0, plan.Enemies)
	for i := 0; i < plan.Enemies; i++ {
		x, y := g.World.FindSafeSpawn(g.rng)
		g.Enemies = append(g.Enemies, NewEnemy(g.newID(), x, y))
	}

	g.Treasures = make([]*Treasure, 0, plan.Treasures)
	for i := 0; i < plan.Treasures; i++ {
		var x, y float64
		if i < plan.IslandTreasures {
			x, y = g.World.FindHazardIslandSpawn(g.rng)
		} else {
			x, y = g.World.FindSafeSpawn(g.rng)
		}
		g.Treasures = append(g.Treasures, NewTreasure(g.newID(), x, y, g.rng.Intn(len(TreasureNames))))
	}

	hearts := 1 + g.rng.Intn(3)
	g.Hearts = make([]*Heart, 0, hearts)
	for i := 0; i < hearts; i++ {
		var x, y float64
		if g.rng.Float64() < islandHeartChance {
			x, y = g.World.FindHazardIslandSpawn(g.rng)
		} else {
			x, y = g.World.FindSafeSpawn(g.rng)
		}
		g.Hearts = append(g.Hearts, NewHeart(g.newID(), x, y))
	}

	g.Shockwaves = nil
	g.Camera.Follow(g.Player.X, g.Player.Y, g.World.PixelWidth(), g.World.PixelHeight())
	g.Log.Add(g.Tick, "--", "level", "init",
		fmt.Sprintf("level %d enemies=%d treasures=%d hearts=%d", g.Level, len(g.Enemies), len(g.Treasures), len(g.Hearts)),
		float64(g.Level))
}
