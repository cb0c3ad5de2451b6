package sim

import (
	"strings"
	"testing"
)

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// dumpSummary prints the scenario summary block.
func dumpSummary(t *testing.T, ts *TestSim) {
	t.Helper()
	t.Log(ts.SimLog.Summary(ts.Game))
}

// farTreasure keeps a hand-built level from completing on its first tick.
func farTreasure() SimOption { return WithTreasure(300, 300, 0) }

// --- Scenario: Reaping a defeated enemy ---

func TestScenario_EnemyReapedForReward(t *testing.T) {
	ts := NewTestSim(
		WithSeed(3),
		WithEmptyLevel(20, 20),
		WithPlayerAt(160, 160),
		WithFollower(170, 180, ColorRed),
		WithEnemy(20, 20),
		farTreasure(),
		WithPlaying(),
	)
	g := ts.Game
	e := g.Enemies[0]
	e.TakeDamage(0.5, ts.Env())
	e.TakeDamage(0.5, ts.Env())
	e.TakeDamage(0.5, ts.Env())
	e.TakeDamage(1.5, ts.Env())

	ts.Step()
	dumpLog(t, ts)

	if g.Score != 100 {
		t.Fatalf("expected +100, score=%d", g.Score)
	}
	if len(g.Enemies) != 0 {
		t.Fatalf("dead enemy not reaped: %d left", len(g.Enemies))
	}
	if len(g.Followers) != 2 {
		t.Fatalf("expected reward follower, swarm=%d", len(g.Followers))
	}
	reward := g.Followers[1]
	if reward.X != 20 || reward.Y != 20 {
		t.Fatalf("reward follower at (%v,%v), want death position", reward.X, reward.Y)
	}
	if len(g.Shockwaves) != 1 || g.Shockwaves[0].Radius != 2 {
		t.Fatalf("expected one growing shockwave, got %d", len(g.Shockwaves))
	}
	if g.Stats.EnemiesDefeated != 1 || ts.SimLog.CountCategory("enemy", "defeated") != 1 {
		t.Fatal("defeat not recorded")
	}
}

// --- Scenario: Treasure collection leads to the next level ---

func TestScenario_TreasureCollectionAdvancesLevel(t *testing.T) {
	ts := NewTestSim(
		WithSeed(11),
		WithEmptyLevel(20, 20),
		WithPlayerAt(160, 160),
		WithFollower(165, 165, ColorBlue),
		WithTreasure(170, 160, 6),
		WithPlaying(),
	)
	g := ts.Game
	oldWorld := g.World

	ts.Step()
	if g.State != StateLevelTransitioning || g.TransitionTimer != 0 {
		t.Fatalf("state=%s timer=%d", g.State, g.TransitionTimer)
	}
	if g.Score != 500 {
		t.Fatalf("score=%d", g.Score)
	}
	if g.Message.Text != "Found: Lego Brick!" || g.Message.Timer != 119 {
		t.Fatalf("message=%q timer=%d", g.Message.Text, g.Message.Timer)
	}
	if len(g.Followers) != 2 {
		t.Fatalf("expected a reward follower, swarm=%d", len(g.Followers))
	}
	for _, f := range g.Followers {
		if f.Treasure != nil {
			t.Fatal("followers should be released after collection")
		}
	}
	if ts.Audio.Counts["follower_call"] != 1 {
		t.Fatalf("follower call cues=%d", ts.Audio.Counts["follower_call"])
	}

	ts.RunTicks(119)
	if g.Level != 1 || g.State != StateLevelTransitioning {
		t.Fatalf("advanced too early: level=%d state=%s", g.Level, g.State)
	}
	ts.Step()
	dumpSummary(t, ts)

	if g.Level != 2 || g.State != StateLevelStarting {
		t.Fatalf("level=%d state=%s", g.Level, g.State)
	}
	if last, ok := ts.LastOutcome(); !ok || last.Outcome != OutcomeAdvance {
		t.Fatalf("expected advance outcome, got %+v", last)
	}
	if g.World == oldWorld || g.World.Cols != 50 {
		t.Fatal("expected a freshly generated world")
	}
	plan := PlanLevel(2)
	if len(g.Enemies) != plan.Enemies || len(g.Treasures) != plan.Treasures {
		t.Fatalf("enemies=%d treasures=%d, want %+v", len(g.Enemies), len(g.Treasures), plan)
	}
	if len(g.Followers) != 5 {
		t.Fatalf("expected the starting swarm, got %d", len(g.Followers))
	}
	if n := len(g.Hearts); n < 1 || n > 3 {
		t.Fatalf("hearts=%d", n)
	}
	if g.DayTimer != 0 || g.CollectedCount() != 0 {
		t.Fatal("level state not reset")
	}
}

func TestScenario_SkipTransitionOnlyAfterMidpoint(t *testing.T) {
	ts := NewTestSim(
		WithEmptyLevel(20, 20),
		WithPlayerAt(160, 160),
		WithFollower(165, 165, ColorBlue),
		WithTreasure(170, 160, 0),
		WithPlaying(),
	)
	g := ts.Game
	ts.Step()
	ts.RunTicks(60)
	if g.TransitionTimer != 60 {
		t.Fatalf("timer=%d", g.TransitionTimer)
	}
	if out := g.SkipTransition(); out != OutcomeContinue || g.Level != 1 {
		t.Fatalf("skip honoured at the midpoint: %s", out)
	}
	ts.Step()
	if out := g.SkipTransition(); out != OutcomeAdvance || g.Level != 2 {
		t.Fatalf("skip refused past the midpoint: %s level=%d", out, g.Level)
	}
	if g.Stats.TransitionsSkipped != 1 {
		t.Fatal("skip not counted")
	}
}

// --- Scenario: Completing the final level wins ---

func TestScenario_FinalLevelWins(t *testing.T) {
	ts := NewTestSim(
		WithLevel(6),
		WithEmptyLevel(20, 20),
		WithPlayerAt(160, 160),
		WithFollower(165, 165, ColorPink),
		WithTreasure(170, 160, 8),
		WithPlaying(),
	)
	g := ts.Game
	ts.RunTicks(121)

	if g.State != StateWon {
		dumpLog(t, ts)
		t.Fatalf("state=%s", g.State)
	}
	if last, _ := ts.LastOutcome(); last.Outcome != OutcomeWon {
		t.Fatalf("last outcome %s", last.Outcome)
	}
	world := g.World
	level := g.Level
	ts.RunTicks(30)
	if g.World != world || g.Level != level {
		t.Fatal("won state re-initialised the level")
	}
	if g.WonTimer != 30 {
		t.Fatalf("won timer=%d", g.WonTimer)
	}
	if r := g.Report(); r.Outcome != OutcomeWon || !strings.Contains(r.Summary(), "won_all_6_levels") {
		t.Fatalf("report %+v", r)
	}
}

// --- Scenario: Loss conditions ---

func TestScenario_PlayerDownFails(t *testing.T) {
	ts := NewTestSim(
		WithEmptyLevel(20, 20),
		WithFollower(100, 100, ColorRed),
		farTreasure(),
		WithPlayerHealth(0),
		WithPlaying(),
	)
	if out := ts.Step(); out != OutcomeFail {
		t.Fatalf("outcome=%s", out)
	}
	if ts.Game.FailReason != FailPlayerDown || ts.Game.Player.Health != 0 {
		t.Fatalf("reason=%s health=%d", ts.Game.FailReason, ts.Game.Player.Health)
	}
	// Terminal: nothing else happens.
	if out := ts.Step(); out != OutcomeContinue || ts.Game.State != StateFailed {
		t.Fatal("failed state should be terminal")
	}
}

func TestScenario_SwarmLostFails(t *testing.T) {
	ts := NewTestSim(
		WithEmptyLevel(20, 20),
		WithFollower(40, 40, ColorYellow),
		WithTile(2, 2, TileWater),
		farTreasure(),
		WithPlaying(),
	)
	label := followerLabel(ts.Game.Followers[0])
	if out := ts.Step(); out != OutcomeFail || ts.Game.FailReason != FailSwarmLost {
		t.Fatalf("outcome=%s reason=%s", out, ts.Game.FailReason)
	}
	if ts.Game.Stats.LostOn(TileWater) != 1 {
		t.Fatal("hazard death not counted")
	}
	if !ts.SimLog.HasEntry("follower", "hazard_death", "yellow on water") {
		dumpLog(t, ts)
		t.Fatal("hazard death not logged")
	}
	own := ts.SimLog.FilterActor(label)
	if len(own) != 1 || own[0].Key != "hazard_death" {
		dumpLog(t, ts)
		t.Fatalf("entries for %s: %v", label, own)
	}
}

func TestScenario_DayOverFails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DayDuration = 5
	ts := NewTestSim(
		WithConfig(cfg),
		WithEmptyLevel(20, 20),
		WithFollower(150, 150, ColorRed),
		farTreasure(),
		WithPlaying(),
	)
	tick := ts.RunUntil(func(ts *TestSim) bool { return ts.Finished() }, 20)
	if tick != 5 || ts.Game.FailReason != FailDayOver {
		t.Fatalf("tick=%d reason=%s", tick, ts.Game.FailReason)
	}
}

// --- Scenario: Start sequence ---

func TestScenario_StartDelayHoldsEntities(t *testing.T) {
	ts := NewTestSim(WithSeed(5))
	g := ts.Game
	if g.State != StateNotStarted {
		t.Fatalf("state=%s", g.State)
	}
	px, py := g.Player.X, g.Player.Y
	ts.Input = InputState{Right: true}
	ts.RunTicks(10)
	if g.State != StateNotStarted || g.Player.X != px {
		t.Fatal("entities moved before Begin")
	}

	if !g.Begin() || g.Begin() {
		t.Fatal("Begin should succeed exactly once")
	}
	ts.RunTicks(59)
	if g.State != StateLevelStarting || g.Player.X != px || g.Player.Y != py {
		t.Fatalf("banner phase leaked: state=%s", g.State)
	}
	ts.Step()
	if g.State != StatePlaying || g.Player.X != px {
		t.Fatalf("expected playing with no movement yet, state=%s", g.State)
	}
	ts.Step()
	if g.Player.X == px && g.Player.X < g.World.PixelWidth()-6 {
		t.Fatal("player did not move once playing")
	}
}

// --- Scenario: Pickups ---

func TestScenario_HeartHealsOnlyWhenHurt(t *testing.T) {
	ts := NewTestSim(
		WithEmptyLevel(20, 20),
		WithPlayerAt(100, 100),
		WithFollower(100, 150, ColorRed),
		WithHeart(105, 100),
		WithHeart(100, 110),
		farTreasure(),
		WithPlaying(),
	)
	g := ts.Game
	ts.Step()
	if g.Hearts[0].Collected || g.Hearts[1].Collected {
		t.Fatal("heart collected at full health")
	}

	g.Player.Health = 5
	ts.Step()
	if !g.Hearts[0].Collected || g.Hearts[1].Collected {
		t.Fatalf("expected exactly the first heart, got %v %v", g.Hearts[0].Collected, g.Hearts[1].Collected)
	}
	if g.Player.Health != 6 || g.Message.Text != "Health +1!" {
		t.Fatalf("health=%d message=%q", g.Player.Health, g.Message.Text)
	}

	ts.RunTicks(100)
	if !g.Hearts[0].Collected {
		t.Fatal("heart collection reverted")
	}
	if g.Hearts[0].Visible() {
		t.Fatal("collected heart should finish its animation")
	}
}

func TestScenario_TreasureReleasedWhenPlayerLeaves(t *testing.T) {
	ts := NewTestSim(
		WithEmptyLevel(30, 30),
		WithPlayerAt(100, 100),
		WithFollower(100, 200, ColorRed),
		WithFollower(100, 220, ColorBlue),
		WithTreasure(130, 100, 1),
		WithTreasure(400, 400, 2),
		WithPlaying(),
	)
	g := ts.Game
	ts.Step()
	for _, f := range g.Followers {
		if f.Treasure != g.Treasures[0] {
			t.Fatal("player near treasure should assign the whole swarm")
		}
	}

	g.Followers[1].Treasure = g.Treasures[1]
	g.releaseFrom(g.Treasures[0])
	if g.Followers[0].Treasure != nil {
		t.Fatal("follower on the released treasure should be freed")
	}
	if g.Followers[1].Treasure != g.Treasures[1] {
		t.Fatal("follower on another treasure should keep its assignment")
	}

	g.Followers[1].Treasure = g.Treasures[0]
	g.Player.X, g.Player.Y = 300, 300
	ts.Step()
	for _, f := range g.Followers {
		if f.Treasure != nil {
			t.Fatal("walking away should release the swarm")
		}
	}
}

func TestScenario_PlayerSwingHitsEnemyInReach(t *testing.T) {
	ts := NewTestSim(
		WithEmptyLevel(30, 30),
		WithPlayerAt(100, 100),
		WithFollower(300, 300, ColorRed),
		WithEnemy(115, 100),
		WithEnemy(100, 130),
		WithTreasure(400, 400, 0),
		WithPlaying(),
	)
	g := ts.Game
	g.Player.Facing = DirRight
	ts.Input = InputState{Attack: true}
	ts.Step()

	if g.Enemies[0].Health != 2 {
		t.Fatalf("enemy in reach health=%v", g.Enemies[0].Health)
	}
	if g.Enemies[1].Health != 3 {
		t.Fatalf("enemy out of reach health=%v", g.Enemies[1].Health)
	}
	if ts.Audio.Counts["attack"] != 1 {
		t.Fatalf("attack cues=%d", ts.Audio.Counts["attack"])
	}
}

// --- Scenario: Follower chain ---

func TestScenario_FollowerChainReadsBeforeMove(t *testing.T) {
	ts := NewTestSim(
		WithEmptyLevel(20, 20),
		WithPlayerAt(100, 100),
		WithFollower(100, 130, ColorRed),
		WithFollower(100, 149, ColorBlue),
		farTreasure(),
		WithPlaying(),
	)
	g := ts.Game
	ts.Step()
	if g.Followers[0].Y >= 130 {
		t.Fatalf("front follower did not move: y=%v", g.Followers[0].Y)
	}
	if g.Followers[1].Y != 149 {
		t.Fatalf("second follower used the moved position: y=%v", g.Followers[1].Y)
	}
}
