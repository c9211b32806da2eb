package dreamland

import (
	"math"

	"github.com/vradchenko/puff-arcade/internal/core"
)

// Ability is a copy-ability tag. Enemies carry one for capture; the player
// holds at most one active ability at a time.
type Ability int

const (
	AbilityNone Ability = iota
	AbilityFire
	AbilityIce
	AbilitySpark
	AbilityStone
	AbilitySword
	AbilityBeam
	AbilityTornado
)

// String returns the display name of the ability.
func (a Ability) String() string {
	switch a {
	case AbilityFire:
		return "FIRE"
	case AbilityIce:
		return "ICE"
	case AbilitySpark:
		return "SPARK"
	case AbilityStone:
		return "STONE"
	case AbilitySword:
		return "SWORD"
	case AbilityBeam:
		return "BEAM"
	case AbilityTornado:
		return "TORNADO"
	default:
		return "NONE"
	}
}

// Color returns the screen color associated with the ability.
func (a Ability) Color() core.Color {
	switch a {
	case AbilityFire:
		return core.ColorOrange
	case AbilityIce:
		return core.ColorBrightCyan
	case AbilitySpark:
		return core.ColorBrightYellow
	case AbilityStone:
		return core.ColorGray
	case AbilitySword:
		return core.ColorBrightWhite
	case AbilityBeam:
		return core.ColorBrightMagenta
	case AbilityTornado:
		return core.ColorBrightGreen
	default:
		return core.ColorWhite
	}
}

// cue returns the audio cue played when the ability fires.
func (a Ability) cue() core.Cue {
	switch a {
	case AbilityFire:
		return core.CueFire
	case AbilityIce:
		return core.CueIce
	case AbilitySpark:
		return core.CueSpark
	case AbilityStone:
		return core.CueStone
	case AbilitySword:
		return core.CueSword
	case AbilityBeam:
		return core.CueBeam
	case AbilityTornado:
		return core.CueTornado
	default:
		return core.CueHit
	}
}

// useAbility fires the player's current ability. The caller has already
// checked the cooldown gate; this routine only emits the per-ability spawn
// pattern and side effects. Patterns are part of the combat contract:
// projectile counts, damage values, and self-buff effects are what the
// collision and scoring systems depend on.
func (g *Game) useAbility() {
	p := &g.player
	dir := 1.0
	if !p.facingRight {
		dir = -1.0
	}

	g.cue(p.ability.cue())

	switch p.ability {
	case AbilityFire:
		// Three fanned breath shots with seeded jitter.
		for i := 0; i < 3; i++ {
			offset := float64(i-1) * 15
			g.queueProjectile(projectile{
				x:          p.x + dir*40,
				y:          p.y + offset,
				vx:         dir*300 + float64(g.rng.Intn(101)-50),
				vy:         float64(g.rng.Intn(101) - 50),
				damage:     2,
				ability:    AbilityFire,
				fromPlayer: true,
			})
		}
		g.spawnExplosion(p.x+dir*30, p.y, core.ColorOrange, 10)

	case AbilityIce:
		g.queueProjectile(projectile{
			x:          p.x + dir*30,
			y:          p.y,
			vx:         dir * 250,
			vy:         0,
			damage:     2,
			ability:    AbilityIce,
			fromPlayer: true,
		})
		for i := 0; i < 5; i++ {
			g.spawnParticle(particle{
				x:     p.x + dir*30,
				y:     p.y + float64(g.rng.Intn(21)-10),
				vx:    dir*100 + float64(g.rng.Intn(61)-30),
				vy:    float64(g.rng.Intn(61) - 30),
				color: core.ColorBrightCyan,
				life:  0.5,
			})
		}

	case AbilitySpark:
		// Full ring at 30 degree steps.
		for deg := 0; deg < 360; deg += 30 {
			rad := float64(deg) * math.Pi / 180
			g.queueProjectile(projectile{
				x:          p.x + math.Cos(rad)*40,
				y:          p.y + math.Sin(rad)*40,
				vx:         math.Cos(rad) * 200,
				vy:         math.Sin(rad) * 200,
				damage:     1,
				ability:    AbilitySpark,
				fromPlayer: true,
			})
		}
		g.spawnExplosion(p.x, p.y, core.ColorBrightYellow, 15)

	case AbilityStone:
		// Self-buff: no projectile, brief invulnerability plus a slam.
		p.invuln = 1.0
		p.vy = 500
		g.spawnExplosion(p.x, p.y, core.ColorGray, 8)

	case AbilitySword:
		g.queueProjectile(projectile{
			x:          p.x + dir*40,
			y:          p.y,
			vx:         dir * 400,
			vy:         -50,
			damage:     3,
			ability:    AbilitySword,
			fromPlayer: true,
		})

	case AbilityBeam:
		g.queueProjectile(projectile{
			x:          p.x + dir*30,
			y:          p.y,
			vx:         dir * 350,
			vy:         0,
			damage:     2,
			ability:    AbilityBeam,
			fromPlayer: true,
		})
		for i := 0; i < 3; i++ {
			g.spawnParticle(particle{
				x:     p.x + dir*30,
				y:     p.y,
				vx:    dir*150 + float64(g.rng.Intn(41)-20),
				vy:    float64(g.rng.Intn(41) - 20),
				color: core.ColorBrightMagenta,
				life:  0.4,
			})
		}

	case AbilityTornado:
		// Self-buff: burst of horizontal speed in the facing direction.
		p.vx = dir * 400
		for i := 0; i < 8; i++ {
			angle := float64(i) * math.Pi / 4
			g.spawnParticle(particle{
				x:     p.x + math.Cos(angle)*30,
				y:     p.y + math.Sin(angle)*30,
				vx:    math.Cos(angle) * 100,
				vy:    math.Sin(angle) * 100,
				color: core.ColorBrightGreen,
				life:  0.6,
			})
		}
	}
}
