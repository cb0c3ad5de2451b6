package sim

import "math"

const (
	treasureAnimTicks = 60
	heartAnimTicks    = 40
)

// TreasureNames is the catalogue indexed by Treasure.Type.
var TreasureNames = [...]string{
	"Bottle Cap",
	"Pop Tab",
	"Screw",
	"Light Bulb",
	"Spoon",
	"Button",
	"Lego Brick",
	"Switch Cartridge",
	"Coin",
}

// Treasure is a collectible the swarm carries home.
type Treasure struct {
	ID              int
	X, Y            float64
	Type            int
	Name            string
	Collected       bool
	CollectionTimer int
	CollectionMax   int
}

// NewTreasure creates an uncollected treasure of the given catalogue type.
func NewTreasure(id int, x, y float64, typ int) *Treasure {
	typ = ((typ % len(TreasureNames)) + len(TreasureNames)) % len(TreasureNames)
	return &Treasure{
		ID:            id,
		X:             x,
		Y:             y,
		Type:          typ,
		Name:          TreasureNames[typ],
		CollectionMax: treasureAnimTicks,
	}
}

// Collect marks the treasure as found. Collection never reverts.
func (t *Treasure) Collect() { t.Collected = true }

// Animate advances the post-collection animation.
func (t *Treasure) Animate() {
	if t.Collected && t.CollectionTimer < t.CollectionMax {
		t.CollectionTimer++
	}
}

// Progress is the collection animation progress in [0, 1].
func (t *Treasure) Progress() float64 {
	if t.CollectionMax == 0 {
		return 1
	}
	return float64(t.CollectionTimer) / float64(t.CollectionMax)
}

// Visible reports whether the treasure still needs drawing.
func (t *Treasure) Visible() bool {
	return !t.Collected || t.CollectionTimer < t.CollectionMax
}

// Heart restores one point of player health.
type Heart struct {
	ID              int
	X, Y            float64
	Collected       bool
	CollectionTimer int
	CollectionMax   int
	Pulse           int
}

// NewHeart creates an uncollected heart.
func NewHeart(id int, x, y float64) *Heart {
	return &Heart{ID: id, X: x, Y: y, CollectionMax: heartAnimTicks}
}

// Collect marks the heart as taken. Collection never reverts.
func (h *Heart) Collect() { h.Collected = true }

// Update advances the idle pulse or the collection animation.
func (h *Heart) Update() {
	if h.Collected {
		if h.CollectionTimer < h.CollectionMax {
			h.CollectionTimer++
		}
		return
	}
	h.Pulse++
}

// Scale is the idle pulse scale factor.
func (h *Heart) Scale() float64 {
	return 1 + math.Sin(float64(h.Pulse)*0.1)*0.1
}

// Progress is the collection animation progress in [0, 1].
func (h *Heart) Progress() float64 {
	if h.CollectionMax == 0 {
		return 1
	}
	return float64(h.CollectionTimer) / float64(h.CollectionMax)
}

// Visible reports whether the heart still needs drawing.
func (h *Heart) Visible() bool {
	return !h.Collected || h.CollectionTimer < h.CollectionMax
}
