package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Garsondee/Pixmin/internal/sim"
)

const namespace = "pixmin"

// Recorder aggregates finished runs into Prometheus metrics. Each Recorder
// owns its registry so several can coexist in one process.
type Recorder struct {
	registry *prometheus.Registry

	runs          *prometheus.CounterVec
	levelsCleared prometheus.Counter
	treasures     prometheus.Counter
	hearts        prometheus.Counter
	enemies       prometheus.Counter
	spawned       prometheus.Counter
	lost          *prometheus.CounterVec
	damage        prometheus.Counter
	score         prometheus.Histogram
	ticks         prometheus.Histogram
	lastLevel     prometheus.Gauge
}

// NewRecorder creates and registers every metric.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished runs by final state and fail reason.",
		}, []string{"state", "reason"}),
		levelsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "levels_cleared_total",
			Help:      "Levels completed across all runs.",
		}),
		treasures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "treasures_collected_total",
			Help:      "Treasures carried home.",
		}),
		hearts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hearts_collected_total",
			Help:      "Hearts picked up.",
		}),
		enemies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_defeated_total",
			Help:      "Enemies killed by the player or the swarm.",
		}),
		spawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "followers_spawned_total",
			Help:      "Followers created, including level starts and rewards.",
		}),
		lost: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "followers_lost_total",
			Help:      "Followers killed by terrain, by tile.",
		}, []string{"tile"}),
		damage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_damage_total",
			Help:      "Hit points the player lost.",
		}),
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_score",
			Help:      "Final score per run.",
			Buckets:   []float64{0, 500, 1000, 2500, 5000, 10000, 20000, 40000},
		}),
		ticks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_ticks",
			Help:      "Ticks simulated per run.",
			Buckets:   prometheus.ExponentialBuckets(500, 2, 8),
		}),
		lastLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_level",
			Help:      "Level reached by the most recent run.",
		}),
	}

	r.registry.MustRegister(r.runs, r.levelsCleared, r.treasures, r.hearts,
		r.enemies, r.spawned, r.lost, r.damage, r.score, r.ticks, r.lastLevel)
	return r
}

// ObserveRun folds one finished run into the metrics.
func (r *Recorder) ObserveRun(rep sim.RunReport) {
	r.runs.WithLabelValues(rep.State.String(), rep.FailReason.String()).Inc()
	r.levelsCleared.Add(float64(rep.Stats.LevelsCleared))
	r.treasures.Add(float64(rep.Stats.TreasuresCollected))
	r.hearts.Add(float64(rep.Stats.HeartsCollected))
	r.enemies.Add(float64(rep.Stats.EnemiesDefeated))
	r.spawned.Add(float64(rep.Stats.FollowersSpawned))
	for tile, n := range rep.Stats.FollowersLost {
		r.lost.WithLabelValues(tile.String()).Add(float64(n))
	}
	r.damage.Add(float64(rep.Stats.DamageTaken))
	r.score.Observe(float64(rep.Score))
	r.ticks.Observe(float64(rep.Tick))
	r.lastLevel.Set(float64(rep.Level))
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the recorder's metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
