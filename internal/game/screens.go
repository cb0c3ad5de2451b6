package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pixmin/internal/sim"
)

const confettiPieces = 50

// bannerAlpha fades the level banner in over the first half of the delay and
// out over the second. timer counts down from delay to 0.
func bannerAlpha(timer, delay int) float64 {
	if delay <= 0 {
		return 0
	}
	half := float64(delay) / 2
	t := float64(timer)
	if t > half {
		return max(0, min(1, (float64(delay)-t)/half))
	}
	return max(0, min(1, t/half))
}

// pulse is a slow 0..1 blink for prompts.
func pulse(ticks int, rate float64) float64 {
	return math.Sin(float64(ticks)*rate)*0.5 + 0.5
}

func (g *Game) drawStartScreen(screen *ebiten.Image) {
	screen.Fill(colBlack)
	cx := float64(g.width) / 2

	g.text.drawCentered(screen, "PIXMIN", cx, 110, 6, colGreen)
	g.text.drawCentered(screen, "Lead your swarm. Bring the treasure home before sunset.", cx, 210, 1, colGold)

	lineup := []sim.FollowerColor{sim.ColorRed, sim.ColorBlue, sim.ColorYellow, sim.ColorPurple, sim.ColorPink}
	for i, col := range lineup {
		x := cx + float64(i-len(lineup)/2)*40
		drawSprout(newCanvas(screen, x, 290).scaled(2), col, 4)
	}

	help := []string{
		"WASD / arrows  move",
		"SPACE          attack",
		"M  mute   R  restart   C  copy run summary",
		"Red survive fire, blue swim, purple cross rock.",
	}
	for i, line := range help {
		g.text.drawCentered(screen, line, cx, 360+float64(i)*20, 1, colHint)
	}
	g.text.drawCentered(screen, "Press SPACE to start", cx, float64(g.height)-70, 2, fade(colWhite, pulse(g.frames, 0.05)))
}

func (g *Game) drawLevelBanner(screen *ebiten.Image) {
	s := g.sim
	a := bannerAlpha(s.StartTimer, s.Config().StartDelay)
	cx, cy := float64(g.width)/2, float64(g.height)/2
	vector.FillRect(screen, float32(cx-150), float32(cy-40), 300, 80, fade(colPanel, a), false)
	g.text.drawCentered(screen, fmt.Sprintf("LEVEL %d", s.Level), cx, cy-20, 3, fade(colGreen, a))
}

// drawTransition is the between-levels screen: captain and surviving swarm lined up.
func (g *Game) drawTransition(screen *ebiten.Image) {
	s := g.sim
	screen.Fill(colBlack)
	cx, cy := float64(g.width)/2, float64(g.height)/2

	g.text.drawCentered(screen, fmt.Sprintf("LEVEL %d", s.Level+1), cx, 70, 4, colGreen)

	if s.CanSkipTransition() {
		half := s.Config().TransitionTicks / 2
		a := pulse(s.TransitionTimer-half, 0.1)
		g.text.drawCentered(screen, "Press SPACE to continue", cx, float64(g.height)-60, 2, fade(colHint, a))
	}

	startX := cx - float64(len(s.Followers)*25)/2
	drawCaptain(newCanvas(screen, startX-40, cy).scaled(2), sim.DirDown)
	for i, f := range s.Followers {
		drawSprout(newCanvas(screen, startX+float64(i*25), cy).scaled(2), f.Color, f.HeadSize)
	}
}

func (g *Game) drawWinScreen(screen *ebiten.Image) {
	s := g.sim
	screen.Fill(colBlack)
	cx := float64(g.width) / 2

	g.text.drawCentered(screen, "VICTORY!", cx, 110, 6, colGreen)
	g.text.drawCentered(screen, "All Levels Complete!", cx, 190, 2, colGold)
	g.text.drawCentered(screen, fmt.Sprintf("Final Score: %d", s.Score), cx, 240, 2, colWhite)
	g.text.drawCentered(screen, fmt.Sprintf("Pixmin Survived: %d", len(s.Followers)), cx, 272, 2, colWhite)

	drawCaptainCheering(newCanvas(screen, cx, float64(g.height)/2+60).scaled(3))

	for i := 0; i < confettiPieces; i++ {
		x := g.confettiX[i] * float64(g.width)
		y := math.Mod(float64(s.WonTimer*2+i*10), float64(g.height))
		clr := confettiColors[i%len(confettiColors)]
		vector.FillRect(screen, float32(x), float32(y), 4, 4, clr, false)
	}

	a := pulse(s.WonTimer, 0.05)
	g.text.drawCentered(screen, "Press SPACE to play again", cx, float64(g.height)-60, 2, fade(colHint, a))
}

func (g *Game) drawFailScreen(screen *ebiten.Image) {
	s := g.sim
	screen.Fill(colBlack)
	cx := float64(g.width) / 2

	g.text.drawCentered(screen, s.FailReason.Headline(), cx, 150, 4, colRed)
	g.text.drawCentered(screen, fmt.Sprintf("Level %d  Score %d", s.Level, s.Score), cx, 240, 2, colWhite)
	if lost := s.Stats.TotalFollowersLost(); lost > 0 {
		g.text.drawCentered(screen,
			fmt.Sprintf("Lost to water %d, fire %d, rock %d",
				s.Stats.LostOn(sim.TileWater), s.Stats.LostOn(sim.TileFire), s.Stats.LostOn(sim.TileRock)),
			cx, 280, 1, colHint)
	}
	g.text.drawCentered(screen, "Press SPACE to try again", cx, float64(g.height)-60, 2, fade(colHint, pulse(g.frames, 0.05)))
}
