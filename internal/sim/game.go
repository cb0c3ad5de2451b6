package sim

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Config holds the tunables of a run. Zero fields take their defaults.
type Config struct {
	Seed            int64
	Cols            int
	Rows            int
	TileSize        int
	ViewWidth       float64
	ViewHeight      float64
	MaxLevel        int
	DayDuration     int // ticks per level before the day ends
	StartDelay      int // ticks of the level banner before play
	TransitionTicks int
}

// DefaultConfig is a 50×50 world of 16px tiles seen through an 800×600 view.
func DefaultConfig() Config {
	return Config{
		Seed:            1,
		Cols:            50,
		Rows:            50,
		TileSize:        16,
		ViewWidth:       800,
		ViewHeight:      600,
		MaxLevel:        6,
		DayDuration:     10800,
		StartDelay:      60,
		TransitionTicks: 120,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Cols <= 0 {
		c.Cols = d.Cols
	}
	if c.Rows <= 0 {
		c.Rows = d.Rows
	}
	if c.TileSize <= 0 {
		c.TileSize = d.TileSize
	}
	if c.ViewWidth <= 0 {
		c.ViewWidth = d.ViewWidth
	}
	if c.ViewHeight <= 0 {
		c.ViewHeight = d.ViewHeight
	}
	if c.MaxLevel <= 0 {
		c.MaxLevel = d.MaxLevel
	}
	if c.DayDuration <= 0 {
		c.DayDuration = d.DayDuration
	}
	if c.StartDelay <= 0 {
		c.StartDelay = d.StartDelay
	}
	if c.TransitionTicks <= 0 {
		c.TransitionTicks = d.TransitionTicks
	}
	return c
}

// State is the phase of the level state machine.
type State int

const (
	StateNotStarted State = iota
	StateLevelStarting
	StatePlaying
	StateLevelTransitioning
	StateWon
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateLevelStarting:
		return "level_starting"
	case StatePlaying:
		return "playing"
	case StateLevelTransitioning:
		return "level_transitioning"
	case StateWon:
		return "won"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Message is a transient centre-screen notice.
type Message struct {
	Text  string
	Timer int
}

// Active reports whether the message is still showing.
func (m Message) Active() bool { return m.Text != "" && m.Timer > 0 }

// Alpha fades the message over its last 30 ticks.
func (m Message) Alpha() float64 { return min(1, float64(m.Timer)/30) }

// Game is the aggregate for one run: the level state machine plus every
// entity of the current level. A restart builds a new Game.
type Game struct {
	cfg   Config
	rng   *rand.Rand
	audio AudioSink
	env   Env

	RunID string
	Tick  int

	State      State
	FailReason FailReason
	Level      int
	Score      int
	Message    Message

	StartTimer      int
	TransitionTimer int
	DayTimer        int
	WonTimer        int

	World      *World
	Camera     *Camera
	Player     *Player
	Followers  []*Follower
	Enemies    []*Enemy
	Treasures  []*Treasure
	Hearts     []*Heart
	Shockwaves []*Shockwave

	Stats Stats
	Log   *SimLog

	nextID int
}

// New builds level 1 and waits in StateNotStarted for Begin.
func New(cfg Config, audio AudioSink) *Game {
	cfg = cfg.withDefaults()
	if audio == nil {
		audio = NopAudio{}
	}
	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)), // #nosec G404 -- gameplay randomness, seeded for replay
		audio: audio,
		RunID: runID(cfg.Seed),
		Level: 1,
		Stats: newStats(),
		Log:   NewSimLog(false),
	}
	g.initLevel()
	return g
}

// runID derives a stable identifier from the seed so replays share it.
func runID(seed int64) string {
	src := rand.New(rand.NewSource(seed ^ 0x5eed)) // #nosec G404 -- identifier only
	id, err := uuid.NewRandomFromReader(src)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Config returns the effective configuration.
func (g *Game) Config() Config { return g.cfg }

// Seed is the seed the run was built from.
func (g *Game) Seed() int64 { return g.cfg.Seed }

// Audio returns the sink cues are sent to.
func (g *Game) Audio() AudioSink { return g.audio }

// Begin leaves the start screen. Returns false when the run already began.
func (g *Game) Begin() bool {
	if g.State != StateNotStarted {
		return false
	}
	g.State = StateLevelStarting
	g.StartTimer = g.cfg.StartDelay
	g.audio.PlayFollowerCall()
	g.Log.Add(g.Tick, "--", "level", "begin", fmt.Sprintf("level %d", g.Level), float64(g.Level))
	return true
}

// Update advances the run by one tick and reports what happened.
func (g *Game) Update(in InputState) Outcome {
	g.Tick++
	switch g.State {
	case StateLevelStarting:
		g.StartTimer--
		if g.StartTimer <= 0 {
			g.StartTimer = 0
			g.State = StatePlaying
			g.Log.Add(g.Tick, "--", "level", "start", fmt.Sprintf("level %d", g.Level), float64(g.Level))
		}
		return OutcomeContinue
	case StateWon:
		g.WonTimer++
		return OutcomeContinue
	case StateLevelTransitioning:
		g.TransitionTimer++
		if g.TransitionTimer >= g.cfg.TransitionTicks {
			return g.advanceLevel()
		}
		return OutcomeContinue
	case StatePlaying:
		return g.playTick(in)
	default:
		return OutcomeContinue
	}
}

// CanSkipTransition reports whether SkipTransition would be honoured.
func (g *Game) CanSkipTransition() bool {
	return g.State == StateLevelTransitioning && g.TransitionTimer > g.cfg.TransitionTicks/2
}

// SkipTransition ends the transition screen early once past its midpoint.
func (g *Game) SkipTransition() Outcome {
	if !g.CanSkipTransition() {
		return OutcomeContinue
	}
	g.Stats.TransitionsSkipped++
	g.Log.Add(g.Tick, "--", "level", "skip", fmt.Sprintf("at %d/%d", g.TransitionTimer, g.cfg.TransitionTicks), float64(g.TransitionTimer))
	return g.advanceLevel()
}

func (g *Game) advanceLevel() Outcome {
	g.Level++
	g.TransitionTimer = 0
	if g.Level > g.cfg.MaxLevel {
		g.State = StateWon
		g.WonTimer = 0
		g.Log.Add(g.Tick, "--", "outcome", "won", fmt.Sprintf("score %d", g.Score), float64(g.Score))
		return OutcomeWon
	}
	g.initLevel()
	g.State = StateLevelStarting
	g.StartTimer = g.cfg.StartDelay
	g.Log.Add(g.Tick, "--", "level", "advance", fmt.Sprintf("level %d", g.Level), float64(g.Level))
	return OutcomeAdvance
}

func (g *Game) fail(reason FailReason) Outcome {
	g.State = StateFailed
	g.FailReason = reason
	g.Log.Add(g.Tick, "--", "outcome", "fail", reason.String(), float64(g.Level))
	return OutcomeFail
}

// playTick runs the full entity update for one Playing tick.
func (g *Game) playTick(in InputState) Outcome {
	env := &g.env
	env.World, env.Audio, env.Rng = g.World, g.audio, g.rng

	g.Player.Update(in, env)
	g.Log.AddVerbose(g.Tick, "P", "move", "position", fmt.Sprintf("(%.1f,%.1f)", g.Player.X, g.Player.Y), 0)
	g.resolvePlayerSwing(env)
	g.Camera.Follow(g.Player.X, g.Player.Y, g.World.PixelWidth(), g.World.PixelHeight())

	g.updateTreasures()
	g.updateHearts()
	g.updateFollowers(env)
	g.updateEnemies()

	g.Shockwaves = append(g.Shockwaves, env.drainShockwaves()...)
	for _, s := range g.Shockwaves {
		s.Update()
	}

	g.reap()

	if g.Message.Timer > 0 {
		g.Message.Timer--
	}

	g.DayTimer++
	if g.DayTimer >= g.cfg.DayDuration {
		return g.fail(FailDayOver)
	}

	if g.CollectedCount() == len(g.Treasures) {
		g.State = StateLevelTransitioning
		g.TransitionTimer = 0
	}

	if !g.Player.Alive() {
		return g.fail(FailPlayerDown)
	}
	if len(g.Followers) == 0 {
		return g.fail(FailSwarmLost)
	}

	if g.State == StateLevelTransitioning {
		g.Stats.LevelsCleared++
		g.Log.Add(g.Tick, "--", "level", "complete", fmt.Sprintf("level %d score %d", g.Level, g.Score), float64(g.Level))
	}
	return OutcomeContinue
}

// updateFollowers snapshots every position before anyone moves, so each
// follower chases where its predecessor stood at the start of the tick.
func (g *Game) updateFollowers(env *Env) {
	leads := make([][2]float64, len(g.Followers))
	for i := range g.Followers {
		if i == 0 {
			leads[i] = [2]float64{g.Player.X, g.Player.Y}
			continue
		}
		prev := g.Followers[i-1]
		leads[i] = [2]float64{prev.X, prev.Y}
	}
	for i, f := range g.Followers {
		wasDead := f.Dead
		f.Update(leads[i][0], leads[i][1], g.Enemies, env)
		if f.Dead && !wasDead {
			g.Stats.FollowersLost[f.DiedOn]++
			g.Log.Add(g.Tick, followerLabel(f), "follower", "hazard_death",
				fmt.Sprintf("%s on %s", f.Color, f.DiedOn), float64(f.DiedOn))
		}
	}
}

func (g *Game) updateEnemies() {
	for _, e := range g.Enemies {
		if e.Update(g.Player, g.audio) {
			g.Stats.DamageTaken++
			g.Log.Add(g.Tick, enemyLabel(e), "player", "damage",
				fmt.Sprintf("health %d/%d", g.Player.Health, g.Player.MaxHealth), float64(g.Player.Health))
		}
	}
}

// reap awards and replaces defeated enemies, then compacts every entity list.
func (g *Game) reap() {
	for _, e := range g.Enemies {
		if !e.Dead {
			continue
		}
		g.Score += enemyScore
		g.Stats.EnemiesDefeated++
		g.Log.Add(g.Tick, enemyLabel(e), "enemy", "defeated", fmt.Sprintf("score %d", g.Score), float64(g.Score))
		g.spawnRewardFollower(e.DeathX, e.DeathY)
	}

	g.Enemies = compact(g.Enemies, func(e *Enemy) bool { return !e.Dead })
	g.Followers = compact(g.Followers, func(f *Follower) bool { return !f.Dead })
	g.Shockwaves = compact(g.Shockwaves, func(s *Shockwave) bool { return !s.Done })
}

// compact returns a fresh slice holding only the kept items.
func compact[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (g *Game) spawnRewardFollower(x, y float64) *Follower {
	c := FollowerColor(g.rng.Intn(int(followerColorCount)))
	f := NewFollower(g.newID(), x, y, c)
	g.Followers = append(g.Followers, f)
	g.Stats.FollowersSpawned++
	g.Log.Add(g.Tick, followerLabel(f), "follower", "spawned", c.String(), float64(len(g.Followers)))
	return f
}

func (g *Game) setMessage(text string, ticks int) {
	g.Message = Message{Text: text, Timer: ticks}
}

func (g *Game) newID() int {
	id := g.nextID
	g.nextID++
	return id
}

// CollectedCount is the number of collected treasures on this level.
func (g *Game) CollectedCount() int {
	n := 0
	for _, t := range g.Treasures {
		if t.Collected {
			n++
		}
	}
	return n
}

// NearestTreasure returns the closest uncollected treasure to the player.
func (g *Game) NearestTreasure() (*Treasure, float64) {
	var best *Treasure
	bestDist := 0.0
	for _, t := range g.Treasures {
		if t.Collected {
			continue
		}
		d := Distance(g.Player.X, g.Player.Y, t.X, t.Y)
		if best == nil || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, bestDist
}

// DayProgress is the fraction of the day already spent, in [0, 1].
func (g *Game) DayProgress() float64 {
	return min(1, float64(g.DayTimer)/float64(g.cfg.DayDuration))
}

// TimeLeft returns the remaining daylight as whole minutes and seconds,
// rounding partial seconds up.
func (g *Game) TimeLeft() (minutes, seconds int) {
	ticks := max(0, g.cfg.DayDuration-g.DayTimer)
	total := (ticks + 59) / 60
	return total / 60, total % 60
}

// TransitionProgress is the fraction of the transition screen elapsed.
func (g *Game) TransitionProgress() float64 {
	return float64(g.TransitionTimer) / float64(g.cfg.TransitionTicks)
}

// StartProgress is the fraction of the level banner elapsed.
func (g *Game) StartProgress() float64 {
	return 1 - float64(g.StartTimer)/float64(g.cfg.StartDelay)
}

// Report summarises the run so far.
func (g *Game) Report() RunReport { return DetermineRunReport(g) }

func followerLabel(f *Follower) string { return fmt.Sprintf("F%d", f.ID) }
func enemyLabel(e *Enemy) string       { return fmt.Sprintf("E%d", e.ID) }
func treasureLabel(t *Treasure) string { return fmt.Sprintf("T%d", t.ID) }
func heartLabel(h *Heart) string       { return fmt.Sprintf("H%d", h.ID) }
