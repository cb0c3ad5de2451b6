package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/Garsondee/Pixmin/internal/config"
	"github.com/Garsondee/Pixmin/internal/metrics"
	"github.com/Garsondee/Pixmin/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int
	finished bool

	firstLevelStartTick int
	firstTreasureTick   int
	firstHazardTick     int
	firstDefeatTick     int
	firstDamageTick     int
	endTick             int

	levelsCompleted  int
	skips            int
	treasures        int
	hearts           int
	enemiesDefeated  int
	followersSpawned int
	playerHits       int

	lost   map[sim.TileType]int
	report sim.RunReport
	// Log lines leading up to a failure.
	tail string
}

const tailTicks = 120

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var configPath string
	var metricsAddr string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 36000, "tick cap per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address after the runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Pixmin Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d levels=%d day=%d\n\n",
		runs, ticks, seedBase, seedStep, cfg.Rules.MaxLevel, cfg.Rules.DayDuration)

	rec := metrics.NewRecorder()
	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runAutopilot(i+1, seed, ticks, cfg)
		rec.ObserveRun(stats.report)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)

	if metricsAddr != "" {
		fmt.Printf("\nserving metrics on %s/metrics\n", metricsAddr)
		mux := http.NewServeMux()
		mux.Handle("/metrics", rec.Handler())
		if err := http.ListenAndServe(metricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}
}

// runAutopilot plays one seeded run with the autopilot until it ends or the
// tick cap is reached.
func runAutopilot(runIndex int, seed int64, ticks int, cfg *config.Config) runStats {
	ts := sim.NewTestSim(
		sim.WithConfig(cfg.Sim(seed)),
		sim.WithSeed(seed),
		sim.WithAutopilot(),
	)
	ts.RunUntil(func(ts *sim.TestSim) bool { return ts.Finished() }, ticks)

	sl := ts.SimLog
	rs := runStats{
		runIndex: runIndex,
		seed:     seed,
		ticks:    ts.CurrentTick(),
		finished: ts.Finished(),

		firstLevelStartTick: sl.FirstTick("level", "start", ""),
		firstTreasureTick:   sl.FirstTick("treasure", "collected", ""),
		firstHazardTick:     sl.FirstTick("follower", "hazard_death", ""),
		firstDefeatTick:     sl.FirstTick("enemy", "defeated", ""),
		firstDamageTick:     sl.FirstTick("player", "damage", ""),
		endTick:             -1,

		levelsCompleted:  sl.CountCategory("level", "complete"),
		skips:            sl.CountCategory("level", "skip"),
		treasures:        sl.CountCategory("treasure", "collected"),
		hearts:           sl.CountCategory("heart", "collected"),
		enemiesDefeated:  sl.CountCategory("enemy", "defeated"),
		followersSpawned: sl.CountCategory("follower", "spawned"),
		playerHits:       sl.CountCategory("player", "damage"),

		report: ts.Game.Report(),
	}
	if out, ok := ts.LastOutcome(); ok && out.Outcome != sim.OutcomeAdvance {
		rs.endTick = out.Tick
	}
	rs.lost = rs.report.Stats.FollowersLost
	if rs.finished && rs.report.State == sim.StateFailed && rs.endTick >= 0 {
		rs.tail = sl.FormatRange(max(0, rs.endTick-tailTicks), rs.endTick)
	}
	return rs
}

// resultLabel is a short classification of how a run ended.
func resultLabel(rs runStats) string {
	switch {
	case !rs.finished:
		return "timeout"
	case rs.report.State == sim.StateWon:
		return "won"
	default:
		return "failed:" + rs.report.FailReason.String()
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d id=%s) ---\n", rs.runIndex, rs.seed, rs.report.RunID)
	fmt.Printf("result=%s level=%d score=%d ticks=%d end_tick=%d\n",
		resultLabel(rs), rs.report.Level, rs.report.Score, rs.ticks, rs.endTick)
	fmt.Printf("phase_markers: level_start=%d first_treasure=%d first_hazard_death=%d first_defeat=%d first_damage=%d\n",
		rs.firstLevelStartTick, rs.firstTreasureTick, rs.firstHazardTick, rs.firstDefeatTick, rs.firstDamageTick)
	fmt.Printf("event_totals: level_complete=%d skip=%d treasure=%d heart=%d enemy_defeated=%d spawned=%d player_damage=%d\n",
		rs.levelsCompleted, rs.skips, rs.treasures, rs.hearts, rs.enemiesDefeated, rs.followersSpawned, rs.playerHits)
	fmt.Printf("swarm: alive=%d lost=%d [%s] player_health=%d\n",
		rs.report.FollowersAlive, rs.report.Stats.TotalFollowersLost(), joinLosses(rs.lost), rs.report.PlayerHealth)
	if rs.tail != "" {
		fmt.Printf("last_%d_ticks:\n%s", tailTicks, rs.tail)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalLevels := 0
	totalTreasure := 0
	totalHearts := 0
	totalDefeated := 0
	totalSpawned := 0
	totalDamage := 0
	lost := map[sim.TileType]int{}
	results := map[string]int{}

	treasureTicks := make([]int, 0, len(all))
	hazardTicks := make([]int, 0, len(all))
	defeatTicks := make([]int, 0, len(all))
	endTicks := make([]int, 0, len(all))

	for _, rs := range all {
		totalScore += rs.report.Score
		totalLevels += rs.levelsCompleted
		totalTreasure += rs.treasures
		totalHearts += rs.hearts
		totalDefeated += rs.enemiesDefeated
		totalSpawned += rs.followersSpawned
		totalDamage += rs.playerHits
		results[resultLabel(rs)]++
		for t, n := range rs.lost {
			lost[t] += n
		}
		if rs.firstTreasureTick >= 0 {
			treasureTicks = append(treasureTicks, rs.firstTreasureTick)
		}
		if rs.firstHazardTick >= 0 {
			hazardTicks = append(hazardTicks, rs.firstHazardTick)
		}
		if rs.firstDefeatTick >= 0 {
			defeatTicks = append(defeatTicks, rs.firstDefeatTick)
		}
		if rs.endTick >= 0 {
			endTicks = append(endTicks, rs.endTick)
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate Balance Inputs ===")
	fmt.Printf("runs=%d results=[%s]\n", n, joinResults(results))
	fmt.Printf("avg_per_run: score=%.1f levels_completed=%.1f treasure=%.1f heart=%.1f enemy_defeated=%.1f spawned=%.1f player_damage=%.1f\n",
		avg(totalScore, n), avg(totalLevels, n), avg(totalTreasure, n), avg(totalHearts, n),
		avg(totalDefeated, n), avg(totalSpawned, n), avg(totalDamage, n))
	fmt.Printf("avg_losses_per_run: water=%.1f fire=%.1f rock=%.1f\n",
		avg(lost[sim.TileWater], n), avg(lost[sim.TileFire], n), avg(lost[sim.TileRock], n))
	fmt.Printf("phase_marker_avg_ticks: first_treasure=%s first_hazard_death=%s first_defeat=%s end=%s\n",
		avgTickString(treasureTicks), avgTickString(hazardTicks), avgTickString(defeatTicks), avgTickString(endTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinLosses(lost map[sim.TileType]int) string {
	if len(lost) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(lost))
	for t := sim.TileType(0); t < sim.TileTypeCount; t++ {
		if n := lost[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", t, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

func joinResults(results map[string]int) string {
	if len(results) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(results))
	for k := range results {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	parts := make([]string, 0, len(labels))
	for _, k := range labels {
		parts = append(parts, fmt.Sprintf("%s=%d", k, results[k]))
	}
	return strings.Join(parts, ",")
}
