package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// canvas draws sprite primitives relative to an origin, at a uniform scale
// and opacity. Sprites are authored in unscaled pixel offsets.
type canvas struct {
	dst   *ebiten.Image
	ox    float64
	oy    float64
	scale float64
	alpha float64
}

func newCanvas(dst *ebiten.Image, x, y float64) canvas {
	return canvas{dst: dst, ox: x, oy: y, scale: 1, alpha: 1}
}

func (c canvas) scaled(s float64) canvas { c.scale *= s; return c }
func (c canvas) faded(a float64) canvas  { c.alpha *= a; return c }

func (c canvas) at(x, y float64) (float32, float32) {
	return float32(c.ox + x*c.scale), float32(c.oy + y*c.scale)
}

func (c canvas) rect(x, y, w, h float64, clr color.RGBA) {
	px, py := c.at(x, y)
	vector.FillRect(c.dst, px, py, float32(w*c.scale), float32(h*c.scale), fade(clr, c.alpha), false)
}

func (c canvas) circle(x, y, r float64, clr color.RGBA) {
	px, py := c.at(x, y)
	vector.FillCircle(c.dst, px, py, float32(r*c.scale), fade(clr, c.alpha), true)
}

func (c canvas) ring(x, y, r, width float64, clr color.RGBA) {
	if r <= 0 {
		return
	}
	px, py := c.at(x, y)
	vector.StrokeCircle(c.dst, px, py, float32(r*c.scale), float32(width*c.scale), fade(clr, c.alpha), true)
}

func (c canvas) line(x1, y1, x2, y2, width float64, clr color.RGBA) {
	ax, ay := c.at(x1, y1)
	bx, by := c.at(x2, y2)
	vector.StrokeLine(c.dst, ax, ay, bx, by, float32(width*c.scale), fade(clr, c.alpha), true)
}

// fillPath fills a closed path built in canvas space.
func (c canvas) fillPath(build func(p *vector.Path, at func(x, y float64) (float32, float32)), clr color.RGBA) {
	var p vector.Path
	build(&p, c.at)
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	n := fade(clr, c.alpha)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(n.R) / 255
		vs[i].ColorG = float32(n.G) / 255
		vs[i].ColorB = float32(n.B) / 255
		vs[i].ColorA = float32(n.A) / 255
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// rectsOverlap is an axis-aligned overlap test on x, y, w, h boxes.
func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax+aw > bx && ax < bx+bw && ay+ah > by && ay < by+bh
}
