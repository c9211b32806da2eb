package dreamland

import (
	"math"

	"github.com/vradchenko/puff-arcade/internal/core"
)

// particle is a transient visual effect. Particles are spawn requests from the
// simulation to the presentation layer: the simulation integrates their motion
// so the renderer stays dumb, but no game logic ever reads particle state back.
type particle struct {
	x, y    float64
	vx, vy  float64
	color   core.Color
	life    float64
	gravity float64
}

func (pt *particle) update(dt float64) bool {
	pt.x += pt.vx * dt
	pt.y += pt.vy * dt
	pt.vy += pt.gravity * dt
	pt.life -= dt
	return pt.life > 0
}

func (g *Game) spawnParticle(pt particle) {
	g.particles = append(g.particles, pt)
}

// spawnExplosion emits a radial burst of debris at (x, y).
func (g *Game) spawnExplosion(x, y float64, color core.Color, count int) {
	for i := 0; i < count; i++ {
		angle := g.rng.Float64() * math.Pi * 2
		speed := 50 + g.rng.Float64()*150
		g.spawnParticle(particle{
			x:       x,
			y:       y,
			vx:      math.Cos(angle) * speed,
			vy:      math.Sin(angle) * speed,
			color:   color,
			life:    0.3 + g.rng.Float64()*0.5,
			gravity: 200,
		})
	}
}

// spawnStars emits the star puff used for captures and ability changes.
func (g *Game) spawnStars(x, y float64) {
	for i := 0; i < 10; i++ {
		angle := g.rng.Float64() * math.Pi * 2
		speed := 100 + g.rng.Float64()*200
		g.spawnParticle(particle{
			x:       x,
			y:       y,
			vx:      math.Cos(angle) * speed,
			vy:      math.Sin(angle)*speed - 100,
			color:   core.ColorBrightYellow,
			life:    0.5,
			gravity: 400,
		})
	}
}

// pruneParticles drops expired particles at the end of the step.
func (g *Game) pruneParticles() {
	live := g.particles[:0]
	for i := range g.particles {
		if g.particles[i].life > 0 {
			live = append(live, g.particles[i])
		}
	}
	g.particles = live
}
