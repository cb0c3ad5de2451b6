package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pixmin/internal/sim"
)

// drawCaptain draws the player sprite centred on the canvas origin.
func drawCaptain(c canvas, facing sim.Direction) {
	c.rect(-5, -1, 10, 7, colSuit)
	c.rect(-7, 0, 2, 4, colArms)
	c.rect(5, 0, 2, 4, colArms)
	c.rect(-4, 6, 3, 3, colBoots)
	c.rect(1, 6, 3, 3, colBoots)

	c.ring(0, -5, 5, 1, colHelmet)
	c.faded(0.3).rect(-3, -8, 2, 2, colWhite)
	c.circle(0, -5, 3, colFace)

	switch facing {
	case sim.DirLeft:
		c.rect(-2, -6, 1, 1, colBlack)
	case sim.DirRight:
		c.rect(1, -6, 1, 1, colBlack)
	default:
		c.rect(-2, -6, 1, 1, colBlack)
		c.rect(1, -6, 1, 1, colBlack)
	}
	c.rect(0, -5, 1, 2, colNose)

	c.line(0, -10, 1, -13, 1, colSilver)
	c.circle(1, -13, 1.5, colSilver)
}

// drawCaptainCheering is the win-screen pose with both arms up.
func drawCaptainCheering(c canvas) {
	c.rect(-5, -1, 10, 7, colSuit)
	c.rect(-8, -5, 2, 4, colArms)
	c.rect(6, -5, 2, 4, colArms)
	c.ring(0, -5, 5, 1, colHelmet)
	c.circle(0, -5, 3, colFace)
	c.rect(-1.3, -11, 1, 4, colSilver)
	c.circle(-1, -12, 1.3, colSilver)
}

// drawSprout draws a follower: stem, coloured head, leaf and eyes.
func drawSprout(c canvas, col sim.FollowerColor, headSize float64) {
	s := 1.0
	if col.Large() {
		s = 1.3
	}
	c.rect(-1*s, 2*s, 2*s, 4*s, colStemLow)
	c.circle(0, 0, headSize, followerColor(col))
	c.rect(-1*s, -8*s, 2*s, 5*s, colStemHigh)

	c.fillPath(func(p *vector.Path, at func(x, y float64) (float32, float32)) {
		x, y := at(0, -8*s)
		p.MoveTo(x, y)
		quad(p, at, -4*s, -10*s, -2*s, -13*s)
		quad(p, at, 0, -11*s, 0, -12*s)
		quad(p, at, 0, -11*s, 2*s, -13*s)
		quad(p, at, 4*s, -10*s, 0, -8*s)
		p.Close()
	}, colLeaf)
	c.line(0, -8*s, 0, -12*s, 1, colStemLow)

	c.rect(-2*s, -1*s, 1*s, 1*s, colBlack)
	c.rect(1*s, -1*s, 1*s, 1*s, colBlack)
}

func quad(p *vector.Path, at func(x, y float64) (float32, float32), cx, cy, x, y float64) {
	ax, ay := at(cx, cy)
	bx, by := at(x, y)
	p.QuadTo(ax, ay, bx, by)
}

// drawGrub draws the enemy, with a health bar once it has been hurt.
func drawGrub(c canvas, e *sim.Enemy) {
	c.rect(-9, 3, 18, 6, colEnemyFlesh)
	c.rect(-10, -1, 8, 4, colEnemyFlesh)
	c.rect(-2, -5, 14, 8, colEnemyBack)
	c.rect(0, -4, 4, 3, colEnemySpots)
	c.rect(6, -3, 4, 3, colEnemySpots)
	c.rect(3, 0, 3, 3, colEnemySpots)
	c.rect(-10, -5, 8, 8, colEnemyFlesh)
	c.rect(-8, -8, 3, 4, colEnemyFlesh)
	c.rect(-9, -9, 5, 5, colWhite)
	c.rect(-7, -8, 2, 3, colBlack)
	c.rect(-11, -1, 2, 2, colEnemyMouth)
	c.rect(-9, 1, 5, 1, colEnemyMouth)
	c.rect(-8, 9, 3, 2, colEnemyLegs)
	c.rect(5, 9, 3, 2, colEnemyLegs)
	c.rect(-6, 7, 3, 2, colEnemyLegs)
	c.rect(3, 7, 3, 2, colEnemyLegs)

	if e.Damaged() {
		frac := max(0, e.Health/e.MaxHealth)
		c.rect(-10, -15, 21, 3, colBlack)
		c.rect(-10, -15, frac*21, 3, colHealthBar)
	}
}

// treasureLook is the palette and silhouette of one catalogue entry.
type treasureLook struct {
	body, trim, shine uint32
	w, h              float64
	round             bool
}

var treasureLooks = [len(sim.TreasureNames)]treasureLook{
	{body: 0xdc2626, trim: 0x991b1b, shine: 0xfca5a5, w: 12, h: 12, round: true}, // bottle cap
	{body: 0xd4d4d8, trim: 0x71717a, shine: 0xf4f4f5, w: 12, h: 8},               // pop tab
	{body: 0xa1a1aa, trim: 0x52525b, shine: 0xd4d4d8, w: 4, h: 14},               // screw
	{body: 0xfef3c7, trim: 0x71717a, shine: 0xffffff, w: 10, h: 14, round: true}, // light bulb
	{body: 0xd4d4d8, trim: 0xa1a1aa, shine: 0xf4f4f5, w: 5, h: 16},               // spoon
	{body: 0xef4444, trim: 0x991b1b, shine: 0xfca5a5, w: 10, h: 10, round: true}, // button
	{body: 0xef4444, trim: 0xdc2626, shine: 0xfca5a5, w: 14, h: 9},               // brick
	{body: 0x1e293b, trim: 0x94a3b8, shine: 0xef4444, w: 14, h: 10},              // cartridge
	{body: 0xfbbf24, trim: 0xd97706, shine: 0xfef3c7, w: 12, h: 12, round: true}, // coin
}

func drawTreasureSprite(c canvas, typ int) {
	look := treasureLooks[typ%len(treasureLooks)]
	if look.round {
		r := look.w / 2
		c.circle(0, 0, r+1, rgb(look.trim))
		c.circle(0, 0, r, rgb(look.body))
		c.rect(-r/2, -r/2, 2, 2, rgb(look.shine))
		return
	}
	c.rect(-look.w/2-1, -look.h/2-1, look.w+2, look.h+2, rgb(look.trim))
	c.rect(-look.w/2, -look.h/2, look.w, look.h, rgb(look.body))
	c.rect(-look.w/2+1, -look.h/2+1, 2, 2, rgb(look.shine))
}

// drawTreasure draws a treasure, or its sparkle burst while collecting.
func drawTreasure(c canvas, t *sim.Treasure) {
	if !t.Visible() {
		return
	}
	if !t.Collected {
		drawTreasureSprite(c, t.Type)
		return
	}
	p := t.Progress()
	burst := c.faded(1 - p).scaled(1 + p*2)
	drawTreasureSprite(burst, t.Type)
	for i := 0; i < 8; i++ {
		angle := float64(i)/8*2*math.Pi + p*math.Pi
		dist := p * 20
		burst.rect(math.Cos(angle)*dist-1, math.Sin(angle)*dist-1, 2, 2, colGold)
	}
}

func drawHeartSprite(c canvas) {
	c.rect(-4, -3, 3, 2, colHeartPickup)
	c.rect(1, -3, 3, 2, colHeartPickup)
	c.rect(-5, -1, 10, 5, colHeartPickup)
	c.rect(-4, 4, 8, 2, colHeartPickup)
	c.rect(-3, 6, 6, 2, colHeartPickup)
	c.rect(-2, 8, 4, 1, colHeartPickup)
	c.rect(-1, 9, 2, 1, colHeartPickup)
}

// drawHeart pulses an idle heart and floats a collected one away.
func drawHeart(c canvas, h *sim.Heart) {
	if !h.Visible() {
		return
	}
	if h.Collected {
		p := h.Progress()
		c.oy -= p * 30
		drawHeartSprite(c.faded(1 - p))
		return
	}
	drawHeartSprite(c.scaled(h.Scale()))
}

func drawShockwave(c canvas, s *sim.Shockwave) {
	c.faded(s.Alpha).ring(0, 0, s.Radius, 3, colShockOuter)
	c.faded(s.Alpha*0.6).ring(0, 0, s.Radius-4, 2, colShockInner)
}
