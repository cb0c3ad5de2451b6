package game

import (
	"image/color"
	"testing"

	"github.com/Garsondee/Pixmin/internal/sim"
)

func TestBannerAlpha_FadesInThenOut(t *testing.T) {
	cases := []struct {
		timer int
		want  float64
	}{
		{60, 0},
		{45, 0.5},
		{30, 1},
		{15, 0.5},
		{0, 0},
	}
	for _, tc := range cases {
		if got := bannerAlpha(tc.timer, 60); got != tc.want {
			t.Fatalf("bannerAlpha(%d, 60) = %v, want %v", tc.timer, got, tc.want)
		}
	}
	if got := bannerAlpha(10, 0); got != 0 {
		t.Fatalf("zero delay should never show the banner, got %v", got)
	}
}

func TestSkyColors_Phases(t *testing.T) {
	top, _ := skyColors(0)
	if top != (color.RGBA{R: 135, G: 206, B: 235, A: 255}) {
		t.Fatalf("dawn sky = %v", top)
	}
	noonTop, _ := skyColors(0.65)
	if noonTop.R < 250 || noonTop.B > 110 {
		t.Fatalf("late midday should be red, got %v", noonTop)
	}
	duskTop, duskBottom := skyColors(1)
	if duskTop.R != 40 || duskBottom.R != 20 {
		t.Fatalf("night sky = %v / %v", duskTop, duskBottom)
	}
	if a, b := skyColors(2); a != duskTop || b != duskBottom {
		t.Fatalf("progress past 1 should clamp")
	}
}

func TestFormatClock(t *testing.T) {
	if got := formatClock(3, 0); got != "3:00" {
		t.Fatalf("got %q", got)
	}
	if got := formatClock(0, 7); got != "0:07" {
		t.Fatalf("got %q", got)
	}
}

func TestTilesAway_Rounds(t *testing.T) {
	if got := tilesAway(0, 16); got != 0 {
		t.Fatalf("got %d", got)
	}
	if got := tilesAway(23, 16); got != 1 {
		t.Fatalf("23px should round to 1 tile, got %d", got)
	}
	if got := tilesAway(25, 16); got != 2 {
		t.Fatalf("25px should round to 2 tiles, got %d", got)
	}
}

func TestRectsOverlap_EdgesDoNotTouch(t *testing.T) {
	if !rectsOverlap(0, 0, 10, 10, 5, 5, 10, 10) {
		t.Fatal("overlapping boxes reported apart")
	}
	if rectsOverlap(0, 0, 10, 10, 10, 0, 10, 10) {
		t.Fatal("boxes sharing an edge should not overlap")
	}
}

func TestCovered_PlayerUnderLeftPanel(t *testing.T) {
	g := sim.New(sim.DefaultConfig(), nil)
	g.Followers = nil

	g.Player.X, g.Player.Y = g.Camera.X+50, g.Camera.Y+50
	if !covered(leftPanelRegion(), g) {
		t.Fatal("player inside the left panel should dim it")
	}
	if regionAlpha(leftPanelRegion(), g) != hudDimAlpha {
		t.Fatal("covered region should use the dim alpha")
	}

	g.Player.X, g.Player.Y = g.Camera.X+400, g.Camera.Y+400
	if covered(leftPanelRegion(), g) {
		t.Fatal("player in the middle of the view should not dim the left panel")
	}

	g.Followers = []*sim.Follower{sim.NewFollower(1, g.Camera.X+g.Camera.ViewW-50, g.Camera.Y+40, sim.ColorRed)}
	if !covered(compassRegion(g.Camera.ViewW), g) {
		t.Fatal("follower under the compass should dim it")
	}
}

func TestFadeAndShade(t *testing.T) {
	if got := fade(colGold, 0.5); got.A != 127 || got.R != colGold.R {
		t.Fatalf("fade = %v", got)
	}
	if got := fade(colGold, 3); got.A != 255 {
		t.Fatalf("fade should clamp, got %v", got)
	}
	if got := shade(rgb(0x808080), 10); got.R != 255 {
		t.Fatalf("shade should clamp, got %v", got)
	}
}

func TestPulse_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		if p := pulse(i, 0.05); p < 0 || p > 1 {
			t.Fatalf("pulse(%d) = %v", i, p)
		}
	}
}
