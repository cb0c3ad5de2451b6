package sim

// Stats are cumulative counters for one run.
type Stats struct {
	EnemiesDefeated    int
	FollowersSpawned   int
	FollowersLost      map[TileType]int
	TreasuresCollected int
	HeartsCollected    int
	LevelsCleared      int
	DamageTaken        int
	SwingsThrown       int
	TransitionsSkipped int
}

func newStats() Stats {
	return Stats{FollowersLost: make(map[TileType]int)}
}

// TotalFollowersLost sums hazard deaths over every tile type.
func (s Stats) TotalFollowersLost() int {
	n := 0
	for _, c := range s.FollowersLost {
		n += c
	}
	return n
}

// LostOn returns hazard deaths on a single tile type.
func (s Stats) LostOn(t TileType) int {
	return s.FollowersLost[t]
}
