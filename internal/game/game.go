package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Pixmin/internal/audio"
	"github.com/Garsondee/Pixmin/internal/sim"
)

const statusTicks = 120

// Game is the ebiten host: it owns the simulation aggregate, turns keys into
// input snapshots and signals, and renders every state.
type Game struct {
	cfg   sim.Config
	seed  int64
	sim   *sim.Game
	sound *audio.SoundManager

	width  int
	height int

	prevKeys map[ebiten.Key]bool
	frames   int
	restarts int

	text      *textPainter
	shader    *groundShader
	ground    *ebiten.Image
	groundFor *sim.World
	confettiX [confettiPieces]float64

	// Short host notices (mute, clipboard).
	status sim.Message
}

// New creates the host and the first run. sound may be uninitialised, in
// which case every cue is silent.
func New(cfg sim.Config, sound *audio.SoundManager) *Game {
	if sound == nil {
		sound = audio.NewSoundManager(audio.DefaultSettings())
	}
	g := &Game{
		cfg:      cfg,
		seed:     cfg.Seed,
		sound:    sound,
		prevKeys: make(map[ebiten.Key]bool),
		text:     newTextPainter(),
	}
	r := rand.New(rand.NewSource(cfg.Seed))
	for i := range g.confettiX {
		g.confettiX[i] = r.Float64()
	}
	g.newRun()
	return g
}

// newRun builds a fresh aggregate. Each restart advances the seed so a new
// map is generated.
func (g *Game) newRun() {
	cfg := g.cfg
	cfg.Seed = g.seed + int64(g.restarts)
	g.sim = sim.New(cfg, g.sound)
	g.width = int(g.sim.Camera.ViewW)
	g.height = int(g.sim.Camera.ViewH)
	g.shader = newGroundShader(cfg.Seed)
	g.groundFor = nil
	log.Printf("run %s seed=%d", g.sim.RunID, cfg.Seed)
}

func (g *Game) restart() {
	g.restarts++
	g.newRun()
}

func (g *Game) Update() error {
	g.frames++
	g.sound.SetFocused(ebiten.IsFocused())

	in := g.handleInput()

	switch g.sim.Update(in) {
	case sim.OutcomeFail:
		log.Printf("run %s failed on level %d: %s", g.sim.RunID, g.sim.Level, g.sim.FailReason)
	case sim.OutcomeWon:
		log.Printf("run %s won with score %d", g.sim.RunID, g.sim.Score)
	}

	if g.status.Timer > 0 {
		g.status.Timer--
	}
	return nil
}

// pressed reports a key's rising edge and records it for the next frame.
func (g *Game) pressed(cur map[ebiten.Key]bool, k ebiten.Key) bool {
	cur[k] = ebiten.IsKeyPressed(k)
	return cur[k] && !g.prevKeys[k]
}

// handleInput applies the edge-triggered host keys and returns the held
// movement and attack state for this tick.
func (g *Game) handleInput() sim.InputState {
	currentKeys := map[ebiten.Key]bool{}
	defer func() { g.prevKeys = currentKeys }()

	space := g.pressed(currentKeys, ebiten.KeySpace)
	if g.pressed(currentKeys, ebiten.KeyM) {
		if g.sound.ToggleMute() {
			g.setStatus("Sound off")
		} else {
			g.setStatus("Sound on")
		}
	}
	if g.pressed(currentKeys, ebiten.KeyC) {
		g.copySummary()
	}
	if g.pressed(currentKeys, ebiten.KeyR) {
		g.restart()
		return sim.InputState{}
	}

	if space {
		switch g.sim.State {
		case sim.StateNotStarted:
			g.sim.Begin()
			g.sound.StartMusic()
			return sim.InputState{}
		case sim.StateLevelTransitioning:
			if g.sim.CanSkipTransition() {
				g.sim.SkipTransition()
			}
			return sim.InputState{}
		case sim.StateWon, sim.StateFailed:
			g.restart()
			return sim.InputState{}
		}
	}

	return sim.InputState{
		Up:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Attack: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *Game) setStatus(text string) {
	g.status = sim.Message{Text: text, Timer: statusTicks}
}

func (g *Game) copySummary() {
	summary := g.sim.Report().Summary()
	if err := clipboard.WriteAll(summary); err != nil {
		log.Printf("copy run summary: %v", fmt.Errorf("clipboard: %w", err))
		g.setStatus("Clipboard unavailable")
		return
	}
	g.setStatus("Run summary copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.sim.State {
	case sim.StateNotStarted:
		g.drawStartScreen(screen)
		return
	case sim.StateWon:
		g.drawWinScreen(screen)
		return
	case sim.StateFailed:
		g.drawFailScreen(screen)
		return
	case sim.StateLevelTransitioning:
		g.drawTransition(screen)
		return
	}

	screen.Fill(colBlack)
	g.drawWorld(screen)
	g.drawHUD(screen)
	if g.sim.State == sim.StateLevelStarting {
		g.drawLevelBanner(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
