package sim

// TestSim is a headless harness around Game used by tests and the
// headless report. It supports deterministic seeding, hand-built levels,
// scripted or autopilot input and structured logging.
type TestSim struct {
	Game     *Game
	SimLog   *SimLog
	Audio    *CueCounter
	Input    InputState
	Outcomes []TickOutcome

	cfg       Config
	level     int
	verbose   bool
	autopilot *Autopilot
}

// TickOutcome records a non-continue outcome and the tick it happened on.
type TickOutcome struct {
	Tick    int
	Outcome Outcome
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // applied before the game exists
	simOptWorld                       // replace or edit the level map
	simOptEntity                      // place player, followers, enemies, pickups
	simOptState                       // force state-machine phase
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.cfg.Seed = seed
	}}
}

// WithConfig replaces the whole run configuration.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		seed := ts.cfg.Seed
		ts.cfg = cfg
		if cfg.Seed == 0 {
			ts.cfg.Seed = seed
		}
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithLevel starts the run on the given level.
func WithLevel(level int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.level = level
	}}
}

// WithAutopilot lets an Autopilot produce input every tick.
func WithAutopilot() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.autopilot = NewAutopilot()
	}}
}

// WithEmptyLevel swaps in an all-grass map and removes every entity but the
// player, who moves to the map centre.
func WithEmptyLevel(cols, rows int) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		g := ts.Game
		g.World = NewWorld(cols, rows, g.cfg.TileSize)
		g.Player = NewPlayer(g.World.PixelWidth()/2, g.World.PixelHeight()/2)
		g.Followers = nil
		g.Enemies = nil
		g.Treasures = nil
		g.Hearts = nil
		g.Shockwaves = nil
		g.Camera.Follow(g.Player.X, g.Player.Y, g.World.PixelWidth(), g.World.PixelHeight())
	}}
}

// WithTile paints a single cell.
func WithTile(col, row int, t TileType) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.Game.World.Set(col, row, t)
	}}
}

// WithTileRect paints a rectangle of cells.
func WithTileRect(col, row, w, h int, t TileType) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		for r := row; r < row+h; r++ {
			for c := col; c < col+w; c++ {
				ts.Game.World.Set(c, r, t)
			}
		}
	}}
}

// WithPlayerAt moves the player.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Game.Player.X, ts.Game.Player.Y = x, y
	}}
}

// WithPlayerHealth sets the player's current health.
func WithPlayerHealth(h int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.Game.Player.Health = h
	}}
}

// WithFollower appends a follower to the swarm.
func WithFollower(x, y float64, c FollowerColor) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		g := ts.Game
		g.Followers = append(g.Followers, NewFollower(g.newID(), x, y, c))
	}}
}

// WithEnemy adds an enemy.
func WithEnemy(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		g := ts.Game
		g.Enemies = append(g.Enemies, NewEnemy(g.newID(), x, y))
	}}
}

// WithTreasure adds a treasure of the given catalogue type.
func WithTreasure(x, y float64, typ int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		g := ts.Game
		g.Treasures = append(g.Treasures, NewTreasure(g.newID(), x, y, typ))
	}}
}

// WithHeart adds a heart.
func WithHeart(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		g := ts.Game
		g.Hearts = append(g.Hearts, NewHeart(g.newID(), x, y))
	}}
}

// WithPlaying skips the start screen and level banner.
func WithPlaying() SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Game.State = StatePlaying
		ts.Game.StartTimer = 0
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (seed, config, verbose, level)
//  2. Build the Game
//  3. World edits
//  4. Entities
//  5. State
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:   DefaultConfig(),
		level: 1,
		Audio: NewCueCounter(),
	}
	ts.apply(opts, simOptInfra)

	g := New(ts.cfg, ts.Audio)
	g.Log.verbose = ts.verbose
	if ts.level > 1 {
		g.Level = ts.level
		g.initLevel()
	}
	ts.Game = g
	ts.SimLog = g.Log

	ts.apply(opts, simOptWorld)
	ts.apply(opts, simOptEntity)
	ts.apply(opts, simOptState)
	return ts
}

func (ts *TestSim) apply(opts []SimOption, kind simOptionKind) {
	for _, o := range opts {
		if o.kind == kind {
			o.fn(ts)
		}
	}
}

// Env returns the collaborators entities see during a Playing tick.
func (ts *TestSim) Env() *Env {
	g := ts.Game
	g.env.World, g.env.Audio, g.env.Rng = g.World, g.audio, g.rng
	return &g.env
}

// CurrentTick returns the number of ticks run so far.
func (ts *TestSim) CurrentTick() int { return ts.Game.Tick }

// Step runs a single tick and returns its outcome.
func (ts *TestSim) Step() Outcome {
	in := ts.Input
	if ts.autopilot != nil {
		in = ts.autopilot.Drive(ts.Game)
	}
	out := ts.Game.Update(in)
	if out != OutcomeContinue {
		ts.Outcomes = append(ts.Outcomes, TickOutcome{Tick: ts.Game.Tick, Outcome: out})
	}
	return out
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.Game.Tick
		}
	}
	return -1
}

// Finished reports whether the run reached a terminal state.
func (ts *TestSim) Finished() bool {
	return ts.Game.State == StateWon || ts.Game.State == StateFailed
}

// LastOutcome returns the most recent non-continue outcome.
func (ts *TestSim) LastOutcome() (TickOutcome, bool) {
	if len(ts.Outcomes) == 0 {
		return TickOutcome{}, false
	}
	return ts.Outcomes[len(ts.Outcomes)-1], true
}
