package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Pixmin/internal/sim"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "PIXMIN_CONFIG"

// Config is the root of the YAML configuration file.
type Config struct {
	Seed     int64          `yaml:"seed"`
	World    WorldConfig    `yaml:"world"`
	Viewport ViewportConfig `yaml:"viewport"`
	Rules    RulesConfig    `yaml:"rules"`
	Audio    AudioConfig    `yaml:"audio"`
	Window   WindowConfig   `yaml:"window"`
}

type WorldConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	TileSize int `yaml:"tile_size"`
}

type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type RulesConfig struct {
	MaxLevel        int `yaml:"max_level"`
	DayDuration     int `yaml:"day_duration_ticks"`
	StartDelay      int `yaml:"start_delay_ticks"`
	TransitionTicks int `yaml:"transition_ticks"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	SampleRate   int     `yaml:"sample_rate"`
	Music        bool    `yaml:"music"`
}

type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	d := sim.DefaultConfig()
	return &Config{
		Seed: 0,
		World: WorldConfig{
			Cols:     d.Cols,
			Rows:     d.Rows,
			TileSize: d.TileSize,
		},
		Viewport: ViewportConfig{
			Width:  int(d.ViewWidth),
			Height: int(d.ViewHeight),
		},
		Rules: RulesConfig{
			MaxLevel:        d.MaxLevel,
			DayDuration:     d.DayDuration,
			StartDelay:      d.StartDelay,
			TransitionTicks: d.TransitionTicks,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.3,
			MusicVolume:  0.15,
			SFXVolume:    0.4,
			SampleRate:   44100,
			Music:        true,
		},
		Window: WindowConfig{
			Title: "Pixmin",
			Scale: 1,
		},
	}
}

// Load reads a YAML file over the defaults.
// If path == "" it falls back to $PIXMIN_CONFIG, and to pure defaults when
// that is unset too. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvVar)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects sizes and volumes the game cannot run with.
func (c *Config) Validate() error {
	if c.World.Cols <= 0 || c.World.Rows <= 0 {
		return fmt.Errorf("world must be at least 1x1, got %dx%d", c.World.Cols, c.World.Rows)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", c.World.TileSize)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Rules.MaxLevel <= 0 {
		return fmt.Errorf("max_level must be positive, got %d", c.Rules.MaxLevel)
	}
	if c.Rules.DayDuration <= 0 || c.Rules.StartDelay <= 0 || c.Rules.TransitionTicks <= 0 {
		return fmt.Errorf("rule timers must be positive")
	}
	for name, v := range map[string]float64{
		"master_volume": c.Audio.MasterVolume,
		"music_volume":  c.Audio.MusicVolume,
		"sfx_volume":    c.Audio.SFXVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", name, v)
		}
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Window.Scale <= 0 {
		c.Window.Scale = 1
	}
	return nil
}

// Sim maps the file configuration onto the simulation's tunables.
// A zero seed is replaced by seed.
func (c *Config) Sim(seed int64) sim.Config {
	s := c.Seed
	if s == 0 {
		s = seed
	}
	return sim.Config{
		Seed:            s,
		Cols:            c.World.Cols,
		Rows:            c.World.Rows,
		TileSize:        c.World.TileSize,
		ViewWidth:       float64(c.Viewport.Width),
		ViewHeight:      float64(c.Viewport.Height),
		MaxLevel:        c.Rules.MaxLevel,
		DayDuration:     c.Rules.DayDuration,
		StartDelay:      c.Rules.StartDelay,
		TransitionTicks: c.Rules.TransitionTicks,
	}
}
