package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var face = basicfont.Face7x13

const (
	glyphAscent = 11 // baseline offset of Face7x13
	glyphHeight = 13
)

// textWidth is the unscaled advance of s in pixels.
func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// textPainter draws bitmap text at integer scales. Larger sizes are rendered
// at 1x into a scratch image and blitted scaled, like the HUD buffer.
type textPainter struct {
	scratch *ebiten.Image
}

func newTextPainter() *textPainter {
	return &textPainter{scratch: ebiten.NewImage(512, glyphHeight+3)}
}

// draw renders s with its top-left at (x, y).
func (tp *textPainter) draw(dst *ebiten.Image, s string, x, y float64, scale int, clr color.Color) {
	if scale <= 1 {
		text.Draw(dst, s, face, int(x), int(y)+glyphAscent, clr)
		return
	}
	tp.scratch.Clear()
	text.Draw(tp.scratch, s, face, 0, glyphAscent, clr)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(tp.scratch, op)
}

// drawCentered centres s horizontally on cx.
func (tp *textPainter) drawCentered(dst *ebiten.Image, s string, cx, y float64, scale int, clr color.Color) {
	w := float64(textWidth(s) * max(1, scale))
	tp.draw(dst, s, cx-w/2, y, scale, clr)
}
