package game

import (
	"image/color"

	"github.com/Garsondee/Pixmin/internal/sim"
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}

// fade scales a colour's opacity by a in [0, 1].
func fade(c color.RGBA, a float64) color.NRGBA {
	a = max(0, min(1, a))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}

// shade multiplies the RGB channels by f, clamped.
func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(max(0, min(255, float64(v)*f))) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

var (
	colPanel    = rgb(0x1a1a1a)
	colGreen    = rgb(0x4ade80)
	colGold     = rgb(0xfbbf24)
	colAmber    = rgb(0xf59e0b)
	colPurple   = rgb(0xa855f7)
	colRed      = rgb(0xdc2626)
	colHeartOff = rgb(0x3f3f3f)
	colWhite    = rgb(0xffffff)
	colHint     = rgb(0xaaaaaa)
	colBlack    = rgb(0x000000)
	colMoon     = rgb(0xe5e7eb)
	colCrater   = rgb(0xd1d5db)

	colStemLow  = rgb(0x16a34a)
	colStemHigh = rgb(0x15803d)
	colLeaf     = rgb(0x4ade80)

	colSuit   = rgb(0xfbbf24)
	colArms   = rgb(0xf59e0b)
	colBoots  = rgb(0x78716c)
	colHelmet = rgb(0xd1d5db)
	colFace   = rgb(0xfda4af)
	colNose   = rgb(0xf87171)
	colSilver = rgb(0xd4d4d8)

	colEnemyFlesh = rgb(0xd4a574)
	colEnemyBack  = rgb(0xdc2626)
	colEnemySpots = rgb(0xfef3c7)
	colEnemyMouth = rgb(0x78350f)
	colEnemyLegs  = rgb(0xa8845a)
	colHealthBar  = rgb(0x22c55e)

	colShockOuter = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	colShockInner = color.RGBA{R: 252, G: 165, B: 165, A: 255}

	colHeartPickup = rgb(0xef4444)
)

var tileColors = [sim.TileTypeCount]color.RGBA{
	sim.TileGrass:     rgb(0x2d5016),
	sim.TileDarkGrass: rgb(0x254012),
	sim.TileFlower:    rgb(0x2d5016),
	sim.TileWater:     rgb(0x3b82f6),
	sim.TileFire:      rgb(0xdc2626),
	sim.TileRock:      rgb(0x78716c),
}

func followerColor(c sim.FollowerColor) color.RGBA {
	switch c {
	case sim.ColorRed:
		return rgb(0xef4444)
	case sim.ColorBlue:
		return rgb(0x3b82f6)
	case sim.ColorYellow:
		return rgb(0xeab308)
	case sim.ColorPurple:
		return rgb(0xa855f7)
	case sim.ColorPink:
		return rgb(0xec4899)
	default:
		return colWhite
	}
}

var confettiColors = [...]color.RGBA{rgb(0xfbbf24), rgb(0x4ade80), rgb(0x3b82f6), rgb(0xec4899)}
