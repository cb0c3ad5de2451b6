package sim

import "fmt"

// Outcome is the signal a tick returns to the host.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeAdvance
	OutcomeFail
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeAdvance:
		return "advance"
	case OutcomeFail:
		return "fail"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// FailReason explains why a run ended without winning.
type FailReason int

const (
	FailNone FailReason = iota
	FailDayOver
	FailPlayerDown
	FailSwarmLost
)

func (r FailReason) String() string {
	switch r {
	case FailNone:
		return "none"
	case FailDayOver:
		return "day_over"
	case FailPlayerDown:
		return "player_down"
	case FailSwarmLost:
		return "swarm_lost"
	default:
		return "unknown"
	}
}

// Headline is the player-facing text for the fail screen.
func (r FailReason) Headline() string {
	switch r {
	case FailDayOver:
		return "The sun has set..."
	case FailPlayerDown:
		return "You collapsed!"
	case FailSwarmLost:
		return "Your Pixmin are gone!"
	default:
		return ""
	}
}

// RunReport describes the state of a run when it is inspected or ends.
type RunReport struct {
	RunID              string
	Seed               int64
	State              State
	Outcome            Outcome
	FailReason         FailReason
	Level              int
	Score              int
	Tick               int
	FollowersAlive     int
	PlayerHealth       int
	TreasuresCollected int
	TreasuresTotal     int
	Stats              Stats
	Description        string
}

// DetermineRunReport summarises the game's current standing.
func DetermineRunReport(g *Game) RunReport {
	r := RunReport{
		RunID:              g.RunID,
		Seed:               g.Seed(),
		State:              g.State,
		FailReason:         g.FailReason,
		Level:              g.Level,
		Score:              g.Score,
		Tick:               g.Tick,
		FollowersAlive:     len(g.Followers),
		TreasuresCollected: g.CollectedCount(),
		TreasuresTotal:     len(g.Treasures),
		Stats:              g.Stats,
	}
	r.Stats.FollowersLost = make(map[TileType]int, len(g.Stats.FollowersLost))
	for t, n := range g.Stats.FollowersLost {
		r.Stats.FollowersLost[t] = n
	}
	if g.Player != nil {
		r.PlayerHealth = g.Player.Health
	}

	switch g.State {
	case StateWon:
		r.Outcome = OutcomeWon
		r.Description = fmt.Sprintf("won_all_%d_levels", g.cfg.MaxLevel)
	case StateFailed:
		r.Outcome = OutcomeFail
		r.Description = fmt.Sprintf("failed_level_%d_%s", g.Level, g.FailReason)
	default:
		r.Outcome = OutcomeContinue
		r.Description = fmt.Sprintf("in_progress_level_%d_%s", g.Level, g.State)
	}
	return r
}

// Summary is a one-line, copyable description of the run.
func (r RunReport) Summary() string {
	return fmt.Sprintf("Pixmin run %s seed=%d result=%s level=%d score=%d pixmin=%d treasure=%d/%d",
		r.RunID, r.Seed, r.Description, r.Level, r.Score, r.FollowersAlive, r.TreasuresCollected, r.TreasuresTotal)
}
