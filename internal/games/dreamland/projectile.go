package dreamland

import (
	"github.com/vradchenko/puff-arcade/internal/core"
)

const projectileLifetime = 2.0

// projectile is a moving attack entity owned by either the player or a boss.
// Lifetime counts down every tick regardless of collisions; expired, off-floor
// and spent projectiles are pruned at the end of the step.
type projectile struct {
	x, y       float64
	vx, vy     float64
	damage     int
	ability    Ability // Determines color and render style
	fromPlayer bool
	lifetime   float64
	dead       bool
}

func (pr *projectile) box() core.Box {
	return core.BoxAround(pr.x, pr.y, 20, 20)
}

func (pr *projectile) update(dt, floorY float64) {
	pr.x += pr.vx * dt
	pr.y += pr.vy * dt
	pr.lifetime -= dt
	if pr.lifetime <= 0 || pr.y > floorY+50 {
		pr.dead = true
	}
}

// queueProjectile adds a projectile to the pending spawn queue. Spawns are
// applied between the entity update and collision phases, never while a
// projectile scan is in flight.
func (g *Game) queueProjectile(pr projectile) {
	if pr.lifetime == 0 {
		pr.lifetime = projectileLifetime
	}
	g.pendingProjectiles = append(g.pendingProjectiles, pr)
}

// flushProjectiles moves queued spawns into the live collection.
func (g *Game) flushProjectiles() {
	g.projectiles = append(g.projectiles, g.pendingProjectiles...)
	g.pendingProjectiles = g.pendingProjectiles[:0]
}

// pruneProjectiles compacts the live collection, dropping dead entries.
// Runs once at the end of each step.
func (g *Game) pruneProjectiles() {
	live := g.projectiles[:0]
	for i := range g.projectiles {
		if !g.projectiles[i].dead {
			live = append(live, g.projectiles[i])
		}
	}
	g.projectiles = live
}
