package lawn

// director is the timed wave spawner. Difficulty ramps linearly over the
// level duration and biases both spawn pacing and the enemy mix. When the
// clock runs out it releases one saturation wave; clearing that wins.
type director struct {
	time         float64
	difficulty   float64
	spawnTimer   float64
	waveNumber   int
	inWave       int
	maxPerWave   int
	finalSpawned bool
}

func (g *Game) resetDirector() {
	g.director = director{
		spawnTimer: g.cfg.Waves.FirstSpawn,
		waveNumber: 1,
		maxPerWave: g.cfg.Waves.BaseWaveCap,
	}
}

// updateDirector runs one tick of spawn pacing. Wave advancement waits for
// the field to clear, then grants a breather before the next wave.
func (g *Game) updateDirector() {
	d := &g.director
	w := &g.cfg.Waves

	d.time += g.dt
	d.difficulty = d.time / w.Duration
	if d.difficulty > 1 {
		d.difficulty = 1
	}

	if !d.finalSpawned {
		d.spawnTimer -= g.dt
		if d.spawnTimer <= 0 && d.inWave < d.maxPerWave {
			g.spawnWaveEnemy()
			d.inWave++
			d.spawnTimer = w.BaseInterval - w.IntervalScale*d.difficulty
			if d.spawnTimer < w.MinInterval {
				d.spawnTimer = w.MinInterval
			}
		}

		if d.inWave >= d.maxPerWave && !g.anyEnemyAlive() {
			d.waveNumber++
			d.maxPerWave = w.BaseWaveCap + d.waveNumber*w.WaveCapStep
			if d.maxPerWave > w.MaxWaveCap {
				d.maxPerWave = w.MaxWaveCap
			}
			d.inWave = 0
			d.spawnTimer = w.WaveBreather
		}

		if d.time >= w.Duration {
			g.spawnFinalWave()
			d.finalSpawned = true
		}
	}
}

// spawnWaveEnemy rolls the enemy mix for the current difficulty. The walker
// share shrinks as difficulty rises; the rest of the table is fixed.
func (g *Game) spawnWaveEnemy() {
	row := g.rng.Intn(g.cfg.Grid.Rows)
	roll := g.rng.Float64()

	var kind enemyKind
	switch {
	case roll < 0.55-0.35*g.director.difficulty:
		kind = enemyWalker
	case roll < 0.75:
		kind = enemyRunner
	case roll < 0.92:
		kind = enemyBrute
	default:
		kind = enemyShelled
	}
	g.enemies = append(g.enemies, g.newEnemy(kind, row, worldWidth+enemyHalfW))
}

// spawnFinalWave dumps the saturation wave just past the right edge.
func (g *Game) spawnFinalWave() {
	for i := 0; i < g.cfg.Waves.FinalWaveCount; i++ {
		row := g.rng.Intn(g.cfg.Grid.Rows)
		kind := enemyKind(g.rng.Intn(int(enemyKindCount)))
		x := worldWidth + enemyHalfW + float64(g.rng.Intn(61))
		g.enemies = append(g.enemies, g.newEnemy(kind, row, x))
	}
}

func (g *Game) anyEnemyAlive() bool {
	for i := range g.enemies {
		if !g.enemies[i].dead {
			return true
		}
	}
	return false
}
