package lawn

import (
	"github.com/vradchenko/puff-arcade/internal/core"
)

// enemyKind discriminates the attackers marching down the lanes.
type enemyKind int

const (
	enemyWalker  enemyKind = iota // Baseline shell
	enemyRunner                   // Fast, fragile
	enemyBrute                    // Slow, heavy hitter
	enemyShelled                  // Armored: armor absorbs damage first
	enemyKindCount
)

// enemyDef is the static stat block for one enemy kind.
type enemyDef struct {
	hp    float64
	speed float64
	dps   float64
	armor float64
	glyph rune
	color core.Color
}

var enemyStats = [enemyKindCount]enemyDef{
	enemyWalker:  {hp: 10, speed: 45, dps: 10, glyph: 'k', color: core.ColorOrange},
	enemyRunner:  {hp: 7, speed: 75, dps: 10, glyph: 'r', color: core.ColorBrightRed},
	enemyBrute:   {hp: 20, speed: 30, dps: 12, glyph: 'H', color: core.ColorBrightMagenta},
	enemyShelled: {hp: 12, speed: 40, dps: 10, armor: 10, glyph: 'S', color: core.ColorGray},
}

const enemyHalfW = 25.0

// enemy is one attacker. Position is the center x in world units; lane row
// never changes after spawn.
type enemy struct {
	kind enemyKind
	row  int
	x    float64

	hp    float64
	armor float64
	dead  bool

	slowTimer  float64
	slowFactor float64
}

func (g *Game) newEnemy(kind enemyKind, row int, x float64) enemy {
	def := enemyStats[kind]
	return enemy{kind: kind, row: row, x: x, hp: def.hp, armor: def.armor}
}

// damageEnemy applies damage through armor first: armor absorbs up to its
// remaining pool and only the overflow reaches hp.
func (g *Game) damageEnemy(e *enemy, amount float64) {
	if e.dead {
		return
	}
	if e.armor > 0 {
		absorbed := amount
		if absorbed > e.armor {
			absorbed = e.armor
		}
		e.armor -= absorbed
		amount -= absorbed
	}
	e.hp -= amount
	if e.hp <= 0 {
		e.hp = 0
		e.dead = true
		g.score += 10
	}
}

// applySlow stacks a slow by keeping the strongest factor and refreshing the
// timer.
func (e *enemy) applySlow(factor, duration float64) {
	if factor > e.slowFactor {
		e.slowFactor = factor
	}
	e.slowTimer = duration
}

// updateEnemies advances every live enemy: chew on a plant blocking the lane,
// otherwise march left.
func (g *Game) updateEnemies() {
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.dead {
			continue
		}

		speed := enemyStats[e.kind].speed
		if e.slowTimer > 0 {
			e.slowTimer -= g.dt
			speed *= 1.0 - e.slowFactor
			if e.slowTimer <= 0 {
				e.slowFactor = 0
			}
		}

		if p := g.plantInFront(e); p != nil {
			g.damagePlant(p, enemyStats[e.kind].dps*g.dt)
			continue
		}
		e.x -= speed * g.dt
	}
}

// plantInFront returns the live plant whose cell the enemy's leading edge
// overlaps, or nil.
func (g *Game) plantInFront(e *enemy) *plant {
	leading := e.x - enemyHalfW
	col := g.colAt(leading)
	if col < 0 || col >= g.cfg.Grid.Cols {
		return nil
	}
	idx := g.grid[e.row][col]
	if idx < 0 {
		return nil
	}
	p := &g.plants[idx]
	if p.dead {
		return nil
	}
	return p
}

// laneHasEnemy reports whether any live enemy is in the row and still on or
// approaching the lawn.
func (g *Game) laneHasEnemy(row int) bool {
	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.dead && e.row == row {
			return true
		}
	}
	return false
}

// pruneEnemies compacts the enemy list at the end of the step.
func (g *Game) pruneEnemies() {
	live := g.enemies[:0]
	for i := range g.enemies {
		if !g.enemies[i].dead {
			live = append(live, g.enemies[i])
		}
	}
	g.enemies = live
}
