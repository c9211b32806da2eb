package lawn

// snapshot is a compact comparable view of the authoritative state, used by
// determinism tests.
type snapshot struct {
	Sun     int
	Score   int
	Wave    int
	Plants  int
	Enemies int
	Peas    int
	Suns    int
	Time    float64
}

func (g *Game) snapshot() snapshot {
	return snapshot{
		Sun:     g.sunCount,
		Score:   g.score,
		Wave:    g.director.waveNumber,
		Plants:  len(g.plants),
		Enemies: len(g.enemies),
		Peas:    len(g.peas),
		Suns:    len(g.suns),
		Time:    g.director.time,
	}
}
