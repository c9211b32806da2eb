package lawn

const (
	sunLifetime = 10.0
	sunFallMin  = 40.0
	sunFallMax  = 70.0
)

// sun is a collectible token. Falling suns descend to their target cell and
// rest there until collected or expired. The cursor collects a resting sun by
// entering its cell.
type sun struct {
	x, y     float64
	targetY  float64
	row, col int
	falling  bool
	speed    float64
	life     float64
	dead     bool
}

func (g *Game) spawnSun(x, y float64, row, col int, falling bool) {
	s := sun{
		x: x, y: y, targetY: g.rowCenterY(row),
		row: row, col: col,
		falling: falling,
		life:    sunLifetime,
	}
	if falling {
		s.speed = sunFallMin + g.rng.Float64()*(sunFallMax-sunFallMin)
	} else {
		s.y = s.targetY
	}
	g.suns = append(g.suns, s)
}

// spawnSkySun drops a sun from above the lawn onto a random cell.
func (g *Game) spawnSkySun() {
	row := g.rng.Intn(g.cfg.Grid.Rows)
	col := g.rng.Intn(g.cfg.Grid.Cols)
	g.spawnSun(g.cellCenterX(col), lawnTop-20, row, col, true)
}

func (g *Game) updateSuns() {
	for i := range g.suns {
		s := &g.suns[i]
		if s.dead {
			continue
		}
		if s.falling {
			s.y += s.speed * g.dt
			if s.y >= s.targetY {
				s.y = s.targetY
				s.falling = false
			}
			continue
		}
		s.life -= g.dt
		if s.life <= 0 {
			s.dead = true
		}
	}
}

// collectSuns picks up any resting sun in the cursor's cell.
func (g *Game) collectSuns() {
	for i := range g.suns {
		s := &g.suns[i]
		if s.dead || s.falling {
			continue
		}
		if s.row == g.cursorRow && s.col == g.cursorCol {
			s.dead = true
			g.sunCount += g.cfg.Sun.SunValue
		}
	}
}

func (g *Game) pruneSuns() {
	live := g.suns[:0]
	for i := range g.suns {
		if !g.suns[i].dead {
			live = append(live, g.suns[i])
		}
	}
	g.suns = live
}
