package dreamland

import (
	"math"

	"github.com/vradchenko/puff-arcade/internal/core"
)

// enemyKind discriminates the enemy variants. Behavior lives in the
// enemyBehaviors table rather than per-kind types.
type enemyKind int

const (
	enemyWalker enemyKind = iota // Ground patroller, no ability
	enemyFlame                   // Hovering flame, bobs on a sine
	enemyFrost                   // Stationary ice block
	enemySpark                   // Hovering orb with orbiting sparks
	enemyKnight                  // Armored patroller, 2 hp
)

// String returns a short display name for the kind.
func (k enemyKind) String() string {
	switch k {
	case enemyWalker:
		return "walker"
	case enemyFlame:
		return "flame"
	case enemyFrost:
		return "frost"
	case enemySpark:
		return "spark"
	case enemyKnight:
		return "knight"
	default:
		return "unknown"
	}
}

// enemy is a tagged-variant record: shared fields plus kind-specific motion
// parameters (patrol direction, bob phase).
type enemy struct {
	kind    enemyKind
	x, y    float64
	hp      int
	dead    bool
	ability Ability // Tag granted on capture

	dir   float64 // Patrol direction for walkers
	phase float64 // Bob/orbit phase for emitters
}

func (e *enemy) box() core.Box {
	return core.BoxAround(e.x, e.y, 30, 30)
}

// takeDamage decrements hp and marks the enemy dead at zero. Dead enemies are
// excluded from every later collision test and removed at the prune pass.
func (g *Game) damageEnemy(e *enemy, amount int) {
	if e.dead {
		return
	}
	e.hp -= amount
	if e.hp <= 0 {
		e.hp = 0
		e.dead = true
		g.spawnExplosion(e.x, e.y, core.ColorWhite, 8)
	}
}

// newEnemy builds an enemy of the given kind at x, using the game's seeded
// RNG for initial patrol direction and phase offsets.
func (g *Game) newEnemy(kind enemyKind, x float64) enemy {
	floorY := g.cfg.World.FloorY
	e := enemy{kind: kind, x: x, y: floorY, hp: 1, dir: 1}
	switch kind {
	case enemyWalker:
		if g.rng.Intn(2) == 0 {
			e.dir = -1
		}
	case enemyFlame:
		e.y = floorY - 20
		e.ability = AbilityFire
		e.phase = g.rng.Float64() * math.Pi * 2
	case enemyFrost:
		e.ability = AbilityIce
	case enemySpark:
		e.y = floorY - 30
		e.ability = AbilitySpark
	case enemyKnight:
		e.ability = AbilitySword
		e.hp = 2
	}
	return e
}

// enemyBehaviors dispatches per-kind movement. Every behavior runs one fixed
// tick and may emit presentation effects but never mutates other entities.
var enemyBehaviors = map[enemyKind]func(g *Game, e *enemy){
	enemyWalker: func(g *Game, e *enemy) {
		e.x += e.dir * 80 * g.dt
		if e.x < 50 || e.x > g.cfg.World.LevelLength-50 {
			e.dir = -e.dir
		}
	},
	enemyFlame: func(g *Game, e *enemy) {
		e.phase += g.dt * 3
		e.y = g.cfg.World.FloorY - 20 + math.Sin(e.phase)*10
		// Probabilistic ember emission, 0.3 per tick: intentional
		// stochastic pacing, not a timer.
		if g.rng.Float64() < 0.3 {
			g.spawnParticle(particle{
				x:     e.x + float64(g.rng.Intn(21)-10),
				y:     e.y - 10,
				vx:    float64(g.rng.Intn(41) - 20),
				vy:    float64(-20 - g.rng.Intn(31)),
				color: core.ColorOrange,
				life:  0.5,
			})
		}
	},
	enemyFrost: func(g *Game, e *enemy) {},
	enemySpark: func(g *Game, e *enemy) {
		e.phase += g.dt * 2
	},
	enemyKnight: func(g *Game, e *enemy) {
		e.x += e.dir * 60 * g.dt
		if e.x < 100 || e.x > g.cfg.World.LevelLength-100 {
			e.dir = -e.dir
		}
	},
}

// updateEnemies advances every live enemy one tick.
func (g *Game) updateEnemies() {
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.dead {
			continue
		}
		enemyBehaviors[e.kind](g, e)
	}
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
