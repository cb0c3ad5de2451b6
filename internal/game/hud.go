package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pixmin/internal/sim"
)

const (
	hudDimAlpha  = 0.3
	dayBarWidth  = 400
	dayBarHeight = 40
	compassR     = 30
)

// hudRegion is a screen box that fades out when something walks under it.
type hudRegion struct {
	x, y, w, h float64
}

func leftPanelRegion() hudRegion { return hudRegion{10, 10, 180, 185} }

func topCenterRegion(viewW float64) hudRegion {
	return hudRegion{viewW/2 - 200, 10, 400, 55}
}

func compassRegion(viewW float64) hudRegion {
	return hudRegion{viewW - 85, 15, 70, 85}
}

// covered reports whether the player or any follower is drawn under r.
func covered(r hudRegion, s *sim.Game) bool {
	cam := s.Camera
	if p := s.Player; p != nil {
		x, y := cam.ToScreen(p.X, p.Y)
		if rectsOverlap(x, y, p.Width, p.Height, r.x, r.y, r.w, r.h) {
			return true
		}
	}
	for _, f := range s.Followers {
		x, y := cam.ToScreen(f.X, f.Y)
		if rectsOverlap(x, y, f.Width, f.Height, r.x, r.y, r.w, r.h) {
			return true
		}
	}
	return false
}

func regionAlpha(r hudRegion, s *sim.Game) float64 {
	if covered(r, s) {
		return hudDimAlpha
	}
	return 1
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.sim
	viewW := float64(g.width)

	g.drawLeftPanel(screen, regionAlpha(leftPanelRegion(), s))

	if m := s.Message; m.Active() {
		a := m.Alpha()
		vector.FillRect(screen, float32(viewW/2-150), 70, 300, 40, fade(colPanel, a), false)
		g.text.drawCentered(screen, m.Text, viewW/2, 84, 1, fade(colGold, a))
	}

	g.drawDayBar(screen, regionAlpha(topCenterRegion(viewW), s))

	if t, d := s.NearestTreasure(); t != nil {
		g.drawCompass(screen, t, d, regionAlpha(compassRegion(viewW), s))
	}

	if g.status.Active() {
		g.text.draw(screen, g.status.Text, 10, float64(g.height)-22, 1, fade(colHint, g.status.Alpha()))
	}
}

func (g *Game) drawLeftPanel(screen *ebiten.Image, a float64) {
	s := g.sim
	p := s.Player

	vector.FillRect(screen, 10, 10, float32(p.MaxHealth*20), 25, fade(colPanel, a), false)
	for i := 0; i < p.MaxHealth; i++ {
		clr := colHeartOff
		if i < p.Health {
			clr = colRed
		}
		c := newCanvas(screen, float64(15+i*20), 15).faded(a)
		c.rect(2, 4, 4, 4, clr)
		c.rect(8, 4, 4, 4, clr)
		c.rect(0, 6, 14, 6, clr)
		c.rect(2, 12, 10, 2, clr)
		c.rect(4, 14, 6, 2, clr)
	}

	rows := []struct {
		y     float32
		w     float32
		label string
		clr   color.RGBA
	}{
		{45, 150, fmt.Sprintf("Score: %d", s.Score), colGreen},
		{85, 150, fmt.Sprintf("Pixmin: %d", len(s.Followers)), colGreen},
		{125, 180, fmt.Sprintf("Treasure: %d/%d", s.CollectedCount(), len(s.Treasures)), colGold},
		{165, 120, fmt.Sprintf("Level: %d", s.Level), colPurple},
	}
	for _, r := range rows {
		vector.FillRect(screen, 10, r.y, r.w, 30, fade(colPanel, a), false)
		g.text.draw(screen, r.label, 20, float64(r.y)+9, 1, fade(r.clr, a))
	}
}

// skyColors returns the top and bottom gradient colours of the day bar:
// blue morning, red midday, dark evening.
func skyColors(progress float64) (top, bottom color.RGBA) {
	progress = max(0, min(1, progress))
	c := func(r, g, b float64) color.RGBA {
		return color.RGBA{R: uint8(max(0, min(255, r))), G: uint8(max(0, min(255, g))), B: uint8(max(0, min(255, b))), A: 255}
	}
	switch {
	case progress < 0.33:
		m := progress / 0.33
		return c(135+m*40, 206-m*40, 235), c(100+m*50, 150-m*20, 220-m*20)
	case progress < 0.66:
		m := (progress - 0.33) / 0.33
		return c(175+m*80, 166-m*66, 235-m*135), c(150+m*105, 130-m*80, 200-m*150)
	default:
		m := (progress - 0.66) / 0.34
		return c(255-m*215, 100-m*75, 100-m*70), c(255-m*235, 50-m*30, 50-m*10)
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

// formatClock renders remaining daylight as m:ss.
func formatClock(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func (g *Game) drawDayBar(screen *ebiten.Image, a float64) {
	s := g.sim
	progress := s.DayProgress()
	x := float64(g.width)/2 - dayBarWidth/2
	y := 10.0

	vector.FillRect(screen, float32(x), float32(y), dayBarWidth, dayBarHeight, fade(colPanel, a), false)
	top, bottom := skyColors(progress)
	inner := dayBarHeight - 4
	for i := 0; i < inner; i++ {
		clr := lerpRGBA(top, bottom, float64(i)/float64(inner-1))
		vector.FillRect(screen, float32(x+2), float32(y+2+float64(i)), dayBarWidth-4, 1, fade(clr, a), false)
	}

	c := newCanvas(screen, x+20+progress*(dayBarWidth-40), y+dayBarHeight/2).faded(a)
	if progress < 0.5 {
		c.circle(0, 0, 12, colGold)
		for i := 0; i < 8; i++ {
			angle := float64(i) / 8 * 2 * math.Pi
			cos, sin := math.Cos(angle), math.Sin(angle)
			c.line(cos*14, sin*14, cos*18, sin*18, 2, colAmber)
		}
	} else {
		c.circle(0, 0, 12, colMoon)
		c.circle(-4, -3, 3, colCrater)
		c.circle(3, 2, 2, colCrater)
	}

	m, sec := s.TimeLeft()
	g.text.drawCentered(screen, formatClock(m, sec), x+dayBarWidth/2, y+dayBarHeight+3, 1, fade(colWhite, a))
}

// tilesAway converts a pixel distance to whole tiles for the compass readout.
func tilesAway(dist float64, tileSize int) int {
	return int(math.Round(dist / float64(tileSize)))
}

func (g *Game) drawCompass(screen *ebiten.Image, t *sim.Treasure, dist, a float64) {
	s := g.sim
	cx, cy := float64(g.width)-50, 50.0
	c := newCanvas(screen, cx, cy).faded(a)

	c.circle(0, 0, compassR+5, colPanel)
	c.ring(0, 0, compassR, 3, rgb(0x4a4a4a))
	c.circle(0, 0, compassR-3, rgb(0x2a2a2a))

	dim := fade(rgb(0x666666), a)
	g.text.drawCentered(screen, "N", cx, cy-compassR+3, 1, dim)
	g.text.drawCentered(screen, "S", cx, cy+compassR-16, 1, dim)
	g.text.drawCentered(screen, "E", cx+compassR-8, cy-7, 1, dim)
	g.text.drawCentered(screen, "W", cx-compassR+8, cy-7, 1, dim)

	angle := math.Atan2(t.Y-s.Player.Y, t.X-s.Player.X)
	cos, sin := math.Cos(angle), math.Sin(angle)
	rot := func(x, y float64) (float64, float64) { return x*cos - y*sin, x*sin + y*cos }
	needle := func(pts [4][2]float64, clr color.RGBA) {
		c.fillPath(func(p *vector.Path, at func(x, y float64) (float32, float32)) {
			for i, pt := range pts {
				px, py := at(rot(pt[0], pt[1]))
				if i == 0 {
					p.MoveTo(px, py)
				} else {
					p.LineTo(px, py)
				}
			}
			p.Close()
		}, clr)
	}
	length := float64(compassR - 8)
	needle([4][2]float64{{length, 0}, {0, -3}, {4, 0}, {0, 3}}, colGold)
	needle([4][2]float64{{-length + 8, 0}, {0, -2}, {4, 0}, {0, 2}}, rgb(0x666666))
	c.circle(0, 0, 3, rgb(0x888888))

	label := fmt.Sprintf("%d", tilesAway(dist, s.World.TileSize))
	g.text.drawCentered(screen, label, cx, cy+compassR+5, 1, fade(colGold, a))
}
