package dreamland

import (
	"math"

	"github.com/vradchenko/puff-arcade/internal/core"
)

// bossKind discriminates the level bosses. Each kind is a small finite state
// machine driven through the bossBehaviors table.
type bossKind int

const (
	bossWoods    bossKind = iota // Stationary tree, timed apple drops
	bossKing                     // Idle -> Jumping -> Slam cycle
	bossKnight                   // Teleporting fencer, sword-wave fans
	bossWizard                   // Floating caster, orb rings
	bossJester                   // Probabilistic teleporter, rotating patterns
	bossDarkEye                  // Two-phase drifting eye
	bossKindCount
)

// String returns the boss display name shown on the HP bar.
func (k bossKind) String() string {
	switch k {
	case bossWoods:
		return "Elder Woods"
	case bossKing:
		return "Hammer King"
	case bossKnight:
		return "Shadow Knight"
	case bossWizard:
		return "Night Wizard"
	case bossJester:
		return "Mad Jester"
	case bossDarkEye:
		return "Dark Eye"
	default:
		return "???"
	}
}

// bossState is the named FSM state of a boss. Not every kind uses every state.
type bossState int

const (
	stateIdle bossState = iota
	stateJumping
	stateSlam
)

// String returns the state tag exposed to the presentation snapshot.
func (s bossState) String() string {
	switch s {
	case stateJumping:
		return "jumping"
	case stateSlam:
		return "slam"
	default:
		return "idle"
	}
}

// boss is the tagged-variant boss record. Per-kind parameters live in the
// generic timer fields; behavior dispatches through bossBehaviors.
type boss struct {
	kind   bossKind
	x, y   float64
	hp     int
	maxHP  int
	state  bossState
	phase  int // 1 or 2; only the dark eye ever reaches 2

	lastHit     float64 // Time since the last accepted hit
	attackTimer float64
	auxTimer    float64 // Second timer: apples, teleports, blood drops
	vy          float64
	drift       float64 // Accumulated angle for float motion
}

func (b *boss) box() core.Box {
	switch b.kind {
	case bossWoods:
		return core.Box{X: b.x - 60, Y: b.y - 180, W: 120, H: 180}
	case bossKing:
		return core.Box{X: b.x - 50, Y: b.y - 80, W: 100, H: 80}
	case bossKnight:
		return core.Box{X: b.x - 25, Y: b.y - 35, W: 50, H: 70}
	case bossWizard:
		return core.BoxAround(b.x, b.y, 80, 80)
	case bossJester:
		return core.BoxAround(b.x, b.y, 70, 70)
	default:
		return core.BoxAround(b.x, b.y, 120, 120)
	}
}

// newBoss spawns the boss for a level near the right end of the world.
func (g *Game) newBoss(kind bossKind) boss {
	x := g.cfg.World.LevelLength - 300
	floorY := g.cfg.World.FloorY
	b := boss{kind: kind, x: x, y: floorY, phase: 1, lastHit: 1.0, state: stateIdle}
	switch kind {
	case bossWoods:
		b.hp = 15
	case bossKing:
		b.hp = 25
	case bossKnight:
		b.hp = 20
		b.y = floorY - 30
	case bossWizard:
		b.hp = 30
		b.y = floorY - 100
	case bossJester:
		b.hp = 35
		b.y = floorY - 80
	case bossDarkEye:
		b.hp = 50
		b.y = floorY - 120
	}
	b.maxHP = b.hp
	return b
}

// damageBoss applies a hit, gated by the last-hit cooldown so contact overlap
// or a projectile volley cannot land more than one hit per window.
func (g *Game) damageBoss(amount int) bool {
	b := g.boss
	if b == nil || b.lastHit <= g.cfg.Combat.BossHitCD {
		return false
	}
	b.hp -= amount
	if b.hp < 0 {
		b.hp = 0
	}
	b.lastHit = 0
	g.cue(core.CueBossHurt)
	g.spawnExplosion(b.x, b.y-50, core.ColorWhite, 15)

	// One-time irreversible phase change at half health.
	if b.kind == bossDarkEye && b.phase == 1 && b.hp <= b.maxHP/2 {
		b.phase = 2
		g.spawnExplosion(b.x, b.y, core.ColorBrightRed, 30)
	}
	return true
}

// bossBehaviors drives one fixed tick of each boss FSM. State-entry side
// effects (shockwave fans, teleport bursts) happen exactly once per
// transition, and attack timers reset on every transition.
var bossBehaviors = [bossKindCount]func(g *Game, b *boss){
	bossWoods: func(g *Game, b *boss) {
		b.auxTimer += g.dt
		if b.auxTimer > 2.0 {
			b.auxTimer = 0
			appleX := b.x + float64(g.rng.Intn(201)-100)
			g.queueProjectile(projectile{
				x: appleX, y: b.y - 200,
				vx: 0, vy: 150,
				damage: 1, ability: AbilityNone,
			})
		}
	},

	bossKing: func(g *Game, b *boss) {
		floorY := g.cfg.World.FloorY
		switch b.state {
		case stateIdle:
			if b.attackTimer > 2.5 {
				b.state = stateJumping
				b.attackTimer = 0
				b.vy = -550
			}
		case stateJumping:
			b.vy += 1600 * g.dt
			b.y += b.vy * g.dt
			if g.player.x > b.x {
				b.x += 250 * g.dt
			} else {
				b.x -= 250 * g.dt
			}
			if b.y >= floorY {
				b.y = floorY
				b.state = stateSlam
				b.attackTimer = 0
				// Shockwave fan on landing.
				for i := -3; i <= 3; i++ {
					g.queueProjectile(projectile{
						x: b.x + float64(i)*30, y: floorY,
						vx: float64(i) * 100, vy: -200,
						damage: 1, ability: AbilityStone,
					})
				}
				g.spawnExplosion(b.x, floorY, core.ColorGray, 20)
			}
		case stateSlam:
			if b.attackTimer > 1.0 {
				b.state = stateIdle
				b.attackTimer = 0
			}
		}
	},

	bossKnight: func(g *Game, b *boss) {
		b.auxTimer += g.dt
		if b.auxTimer > 3.0 {
			b.auxTimer = 0
			oldX := b.x
			side := 150.0
			if g.rng.Intn(2) == 0 {
				side = -150.0
			}
			b.x = core.ClampF(g.player.x+side, 100, g.cfg.World.LevelLength-100)
			g.spawnExplosion(oldX, b.y, core.ColorBrightMagenta, 15)
			g.spawnExplosion(b.x, b.y, core.ColorBrightMagenta, 15)
		}
		if b.attackTimer > 1.5 {
			b.attackTimer = 0
			toward := 1.0
			if g.player.x < b.x {
				toward = -1.0
			}
			for i := 0; i < 3; i++ {
				angle := float64(i*30-30) * math.Pi / 180
				g.queueProjectile(projectile{
					x: b.x, y: b.y,
					vx: math.Cos(angle) * 300 * toward,
					vy: math.Sin(angle) * 150,
					damage: 2, ability: AbilitySword,
				})
			}
		}
	},

	bossWizard: func(g *Game, b *boss) {
		b.drift += g.dt
		b.y = g.cfg.World.FloorY - 100 + math.Sin(b.drift)*30
		if b.attackTimer > 2.0 {
			b.attackTimer = 0
			for i := 0; i < 6; i++ {
				angle := float64(i) * math.Pi / 3
				g.queueProjectile(projectile{
					x: b.x + math.Cos(angle)*50, y: b.y + math.Sin(angle)*50,
					vx: math.Cos(angle) * 200, vy: math.Sin(angle) * 200,
					damage: 2, ability: AbilityBeam,
				})
			}
		}
	},

	bossJester: func(g *Game, b *boss) {
		b.drift += g.dt * 3
		b.y = g.cfg.World.FloorY - 80 + math.Sin(b.drift)*20
		if b.auxTimer > 0 {
			b.auxTimer -= g.dt
		}
		// Probabilistic teleport: a 1% per-tick trigger with a 3s refractory
		// window. Deliberately a probability, not a timer.
		if b.auxTimer <= 0 && g.rng.Float64() < 0.01 {
			b.auxTimer = 3.0
			g.spawnExplosion(b.x, b.y, core.ColorBrightMagenta, 20)
			b.x = 200 + g.rng.Float64()*(g.cfg.World.LevelLength-400)
			g.spawnExplosion(b.x, b.y, core.ColorBrightMagenta, 20)
		}
		if b.attackTimer > 1.5 {
			b.attackTimer = 0
			b.phaseAttackJester(g)
		}
	},

	bossDarkEye: func(g *Game, b *boss) {
		b.drift += g.dt
		b.y = g.cfg.World.FloorY - 120 + math.Sin(b.drift*0.5)*40
		b.x += math.Sin(b.drift*0.3) * 100 * g.dt
		b.x = core.ClampF(b.x, 150, g.cfg.World.LevelLength-150)

		// Phase 2 only: steady blood drops.
		if b.phase == 2 {
			b.auxTimer += g.dt
			if b.auxTimer > 0.5 {
				b.auxTimer = 0
				g.queueProjectile(projectile{
					x: b.x + float64(g.rng.Intn(41)-20), y: b.y + 30,
					vx: float64(g.rng.Intn(101) - 50), vy: 200,
					damage: 3, ability: AbilityNone,
				})
			}
		}

		if b.attackTimer > 2.5 {
			b.attackTimer = 0
			if b.phase == 1 {
				// Symmetric shard ring, rotated by drift.
				for i := 0; i < 8; i++ {
					angle := float64(i)*math.Pi/4 + b.drift
					g.queueProjectile(projectile{
						x: b.x + math.Cos(angle)*60, y: b.y + math.Sin(angle)*60,
						vx: math.Cos(angle) * 250, vy: math.Sin(angle) * 250,
						damage: 2, ability: AbilityIce,
					})
				}
			} else {
				// Chaotic burst: random angles and speeds.
				for i := 0; i < 12; i++ {
					angle := g.rng.Float64() * math.Pi * 2
					speed := 150 + g.rng.Float64()*200
					g.queueProjectile(projectile{
						x: b.x, y: b.y,
						vx: math.Cos(angle) * speed, vy: math.Sin(angle) * speed,
						damage: 3, ability: AbilityBeam,
					})
				}
			}
		}
	},
}

// phaseAttackJester cycles the jester's three attack patterns.
func (b *boss) phaseAttackJester(g *Game) {
	pattern := int(b.drift*1000) % 3 // Varies with flight phase; deterministic per seed
	switch pattern {
	case 0:
		// Downward spread.
		for deg := -60; deg <= 60; deg += 30 {
			rad := float64(deg) * math.Pi / 180
			g.queueProjectile(projectile{
				x: b.x, y: b.y,
				vx: math.Sin(rad) * 250, vy: math.Cos(rad)*250 + 100,
				damage: 2, ability: AbilityBeam,
			})
		}
	case 1:
		// Four vertical lasers.
		for i := 0; i < 4; i++ {
			g.queueProjectile(projectile{
				x: b.x + (float64(i)-1.5)*40, y: b.y,
				vx: 0, vy: 400,
				damage: 3, ability: AbilitySpark,
			})
		}
	default:
		// Two bouncy lobs.
		for i := 0; i < 2; i++ {
			vx := 200.0
			if g.rng.Intn(2) == 0 {
				vx = -200.0
			}
			g.queueProjectile(projectile{
				x: b.x, y: b.y,
				vx: vx, vy: -300,
				damage: 2, ability: AbilityFire,
			})
		}
	}
}

// updateBoss advances the boss FSM one tick. Shared timers tick here so every
// behavior sees consistent values.
func (g *Game) updateBoss() {
	b := g.boss
	if b == nil || b.hp <= 0 {
		return
	}
	b.lastHit += g.dt
	b.attackTimer += g.dt
	bossBehaviors[b.kind](g, b)
}
