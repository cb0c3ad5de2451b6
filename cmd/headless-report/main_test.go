package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Pixmin/internal/config"
	"github.com/Garsondee/Pixmin/internal/sim"
)

func TestAvg(t *testing.T) {
	assert.Equal(t, 0.0, avg(10, 0))
	assert.Equal(t, 2.5, avg(5, 2))
}

func TestAvgTickString(t *testing.T) {
	assert.Equal(t, "n/a", avgTickString(nil))
	assert.Equal(t, "15.0", avgTickString([]int{10, 20}))
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "timeout", resultLabel(runStats{finished: false}))
	assert.Equal(t, "won", resultLabel(runStats{
		finished: true,
		report:   sim.RunReport{State: sim.StateWon},
	}))
	assert.Equal(t, "failed:swarm_lost", resultLabel(runStats{
		finished: true,
		report:   sim.RunReport{State: sim.StateFailed, FailReason: sim.FailSwarmLost},
	}))
}

func TestJoinLosses_OrdersByTileType(t *testing.T) {
	assert.Equal(t, "none", joinLosses(nil))
	assert.Equal(t, "none", joinLosses(map[sim.TileType]int{sim.TileFire: 0}))
	got := joinLosses(map[sim.TileType]int{sim.TileRock: 1, sim.TileWater: 3})
	assert.Equal(t, "water=3,rock=1", got)
}

func TestJoinResults_Sorted(t *testing.T) {
	got := joinResults(map[string]int{"won": 1, "failed:day_over": 2})
	assert.Equal(t, "failed:day_over=2,won=1", got)
	assert.Equal(t, "none", joinResults(nil))
}

func TestRunAutopilot_ShortDayEndsInFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.DayDuration = 30

	rs := runAutopilot(1, 7, 2000, cfg)
	require.True(t, rs.finished, "run should end well inside the tick cap")
	assert.True(t, strings.HasPrefix(resultLabel(rs), "failed:"), "got %s", resultLabel(rs))
	assert.Equal(t, int64(7), rs.report.Seed)
	assert.GreaterOrEqual(t, rs.endTick, 0)
	assert.NotEmpty(t, rs.report.RunID)
	assert.Contains(t, rs.tail, "outcome")
	assert.Contains(t, rs.tail, rs.report.FailReason.String())
}

func TestRunAutopilot_TimeoutHasNoTail(t *testing.T) {
	rs := runAutopilot(1, 7, 10, config.Default())
	require.False(t, rs.finished)
	assert.Equal(t, "timeout", resultLabel(rs))
	assert.Empty(t, rs.tail)
}
