package game

import (
	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pixmin/internal/sim"
)

const (
	noiseScale    = 0.15 // noise-space units per tile
	shadeStrength = 0.18 // max brightness swing from the noise
)

// groundShader gives each tile a stable brightness so flat fills read as terrain.
type groundShader struct {
	noise *perlin.Perlin
}

func newGroundShader(seed int64) *groundShader {
	return &groundShader{noise: perlin.NewPerlin(2.0, 2.0, 3, seed)}
}

// factor maps noise at a cell to a brightness multiplier around 1.
func (gs *groundShader) factor(col, row int) float64 {
	n := gs.noise.Noise2D(float64(col)*noiseScale, float64(row)*noiseScale)
	n01 := max(0, min(1, (n+1)/2))
	return 1 - shadeStrength/2 + n01*shadeStrength
}

// renderGround paints every tile of w into a world-sized image.
func (gs *groundShader) renderGround(w *sim.World) *ebiten.Image {
	img := ebiten.NewImage(int(w.PixelWidth()), int(w.PixelHeight()))
	ts := float64(w.TileSize)
	for row := 0; row < w.Rows; row++ {
		for col := 0; col < w.Cols; col++ {
			t := w.At(col, row)
			x, y := float64(col)*ts, float64(row)*ts
			base := tileColors[t]
			if !t.IsHazard() {
				base = shade(base, gs.factor(col, row))
			}
			vector.FillRect(img, float32(x), float32(y), float32(ts), float32(ts), base, false)
			drawTileDetail(newCanvas(img, x, y).scaled(ts/16), t)
		}
	}
	return img
}

// drawTileDetail adds the small marks that set hazards apart. Offsets assume
// a 16px tile and are scaled by the canvas.
func drawTileDetail(c canvas, t sim.TileType) {
	switch t {
	case sim.TileFlower:
		c.rect(6, 6, 4, 4, rgb(0xfbbf24))
	case sim.TileWater:
		c.rect(4, 4, 8, 2, rgb(0x60a5fa))
		c.rect(2, 10, 8, 2, rgb(0x60a5fa))
	case sim.TileFire:
		c.rect(6, 4, 4, 4, rgb(0xfbbf24))
		c.rect(4, 8, 8, 4, rgb(0xfb923c))
	case sim.TileRock:
		c.rect(3, 3, 4, 4, rgb(0x57534e))
		c.rect(9, 7, 3, 3, rgb(0x57534e))
		c.rect(4, 4, 2, 2, rgb(0xa8a29e))
	}
}

// drawWorld draws the ground and every entity through the camera.
func (g *Game) drawWorld(screen *ebiten.Image) {
	s := g.sim
	if g.groundFor != s.World {
		if g.ground != nil {
			g.ground.Deallocate()
		}
		g.ground = g.shader.renderGround(s.World)
		g.groundFor = s.World
	}

	cam := s.Camera
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cam.X, -cam.Y)
	screen.DrawImage(g.ground, op)

	at := func(x, y float64) canvas {
		sx, sy := cam.ToScreen(x, y)
		return newCanvas(screen, sx, sy)
	}
	for _, t := range s.Treasures {
		drawTreasure(at(t.X, t.Y), t)
	}
	for _, h := range s.Hearts {
		drawHeart(at(h.X, h.Y), h)
	}
	for _, f := range s.Followers {
		if !f.Dead {
			drawSprout(at(f.X, f.Y), f.Color, f.HeadSize)
		}
	}
	for _, e := range s.Enemies {
		if !e.Dead {
			drawGrub(at(e.X, e.Y), e)
		}
	}
	for _, sw := range s.Shockwaves {
		drawShockwave(at(sw.X, sw.Y), sw)
	}
	if p := s.Player; p != nil && !p.Flicker() {
		drawCaptain(at(p.X, p.Y), p.Facing)
	}
}
