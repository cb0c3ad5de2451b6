package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Pixmin/internal/audio"
	"github.com/Garsondee/Pixmin/internal/config"
	"github.com/Garsondee/Pixmin/internal/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (falls back to $"+config.EnvVar+")")
	seed := flag.Int64("seed", 0, "world seed; 0 picks one from the clock")
	mute := flag.Bool("mute", false, "start with audio muted")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	runSeed := *seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}

	sound := audio.NewSoundManager(audio.Settings{
		SampleRate:   cfg.Audio.SampleRate,
		MasterVolume: cfg.Audio.MasterVolume,
		MusicVolume:  cfg.Audio.MusicVolume,
		SFXVolume:    cfg.Audio.SFXVolume,
		Music:        cfg.Audio.Music,
	})
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}
	defer sound.Cleanup()
	sound.SetMuted(*mute)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Viewport.Width*cfg.Window.Scale, cfg.Viewport.Height*cfg.Window.Scale)
	if err := ebiten.RunGame(game.New(cfg.Sim(runSeed), sound)); err != nil {
		log.Fatal(err)
	}
}
