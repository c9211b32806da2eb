package lawn

// pea is a lane-locked projectile fired by shooter plants. Peas travel right
// and spend themselves on the first enemy overlap in their row.
type pea struct {
	row    int
	x      float64
	damage float64
	speed  float64

	slowFactor   float64
	slowDuration float64
	dead         bool
}

func (g *Game) updatePeas() {
	for i := range g.peas {
		pr := &g.peas[i]
		if pr.dead {
			continue
		}
		pr.x += pr.speed * g.dt
		if pr.x > worldWidth+40 {
			pr.dead = true
		}
	}
}

// resolvePeaHits tests each live pea against enemies in its row. First
// overlap wins; frost peas also apply their slow.
func (g *Game) resolvePeaHits() {
	for i := range g.peas {
		pr := &g.peas[i]
		if pr.dead {
			continue
		}
		for j := range g.enemies {
			e := &g.enemies[j]
			if e.dead || e.row != pr.row {
				continue
			}
			if pr.x >= e.x-enemyHalfW && pr.x <= e.x+enemyHalfW {
				g.damageEnemy(e, pr.damage)
				if pr.slowFactor > 0 {
					e.applySlow(pr.slowFactor, pr.slowDuration)
				}
				pr.dead = true
				break
			}
		}
	}
}

func (g *Game) prunePeas() {
	live := g.peas[:0]
	for i := range g.peas {
		if !g.peas[i].dead {
			live = append(live, g.peas[i])
		}
	}
	g.peas = live
}
