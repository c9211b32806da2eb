package lawn

import (
	"github.com/vradchenko/puff-arcade/internal/core"
)

// mower is the one-shot last line of defense for a lane. It sits left of the
// lawn until an enemy crosses the edge, then sweeps the whole row.
type mower struct {
	row    int
	x      float64
	active bool
	gone   bool
}

func (g *Game) resetMowers() {
	g.mowers = g.mowers[:0]
	for r := 0; r < g.cfg.Grid.Rows; r++ {
		g.mowers = append(g.mowers, mower{row: r, x: lawnLeft - 40})
	}
}

func (g *Game) updateMowers() {
	for i := range g.mowers {
		m := &g.mowers[i]
		if m.gone || !m.active {
			continue
		}
		m.x += g.cfg.Mower.Speed * g.dt
		for j := range g.enemies {
			e := &g.enemies[j]
			if e.dead || e.row != m.row {
				continue
			}
			if m.x+30 >= e.x-enemyHalfW && m.x-30 <= e.x+enemyHalfW {
				// Mowers ignore armor: the enemy is simply gone.
				e.dead = true
				g.score += 10
			}
		}
		if m.x > lawnLeft+g.lawnWidth()+40 {
			m.gone = true
		}
	}
}

// checkLeftEdge triggers lane mowers for enemies crossing the lawn edge and
// reports defeat when an enemy leaves the world with no mower left.
func (g *Game) checkLeftEdge() bool {
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.dead {
			continue
		}
		if e.x-enemyHalfW <= lawnLeft-8 {
			m := &g.mowers[e.row]
			if !m.gone && !m.active {
				m.active = true
				g.cue(core.CueBoom)
			} else if e.x+enemyHalfW <= 0 {
				return true
			}
		}
	}
	return false
}
