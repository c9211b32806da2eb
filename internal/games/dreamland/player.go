package dreamland

import (
	"github.com/vradchenko/puff-arcade/internal/core"
)

// player holds all authoritative state for the pink hero.
type player struct {
	x, y        float64
	vx, vy      float64
	facingRight bool
	grounded    bool

	ability   Ability
	abilityCD float64

	inhaling      bool
	hasEnemy      bool
	storedAbility Ability

	hp     int
	invuln float64
}

func (g *Game) resetPlayer() {
	g.player = player{
		x:           g.cfg.Player.ScreenXOffset,
		y:           g.cfg.World.FloorY,
		facingRight: true,
		grounded:    true,
		hp:          g.cfg.Player.MaxHP,
	}
}

func (p *player) box(halfExtent float64) core.Box {
	return core.BoxAround(p.x, p.y, halfExtent*2, halfExtent*2)
}

// updatePlayer integrates one fixed tick of player movement and handles
// ability and inhale input. Collision outcomes (damage, capture) are applied
// later by the collision resolver, not here.
func (g *Game) updatePlayer(in core.Snapshot) {
	p := &g.player
	ph := g.cfg.Physics
	dt := g.dt

	if p.abilityCD > 0 {
		p.abilityCD -= dt
		if p.abilityCD < 0 {
			p.abilityCD = 0
		}
	}
	if p.invuln > 0 {
		p.invuln -= dt
		if p.invuln < 0 {
			p.invuln = 0
		}
	}

	// Horizontal: accelerate toward the held direction, else decay.
	moveDir := 0.0
	if in.Down(core.ActionMoveRight) {
		moveDir += 1
	}
	if in.Down(core.ActionMoveLeft) {
		moveDir -= 1
	}
	if moveDir != 0 {
		p.vx += moveDir * ph.Accel * dt
		p.facingRight = moveDir > 0
	} else {
		decay := 1.0 - ph.Friction*dt
		if decay < 0 {
			decay = 0
		}
		p.vx *= decay
	}
	p.vx = core.ClampF(p.vx, -ph.MaxSpeed, ph.MaxSpeed)

	// Jump trigger.
	if in.JustPressed(core.ActionJump) && p.grounded {
		p.vy = ph.JumpVelocity
		p.grounded = false
		g.cue(core.CueJump)
	}

	// Asymmetric gravity: snappy falls, variable jump height.
	grav := ph.Gravity
	if p.vy > 0 {
		grav *= ph.FallMultiplier
	} else if p.vy < 0 && !in.Down(core.ActionJump) {
		grav *= ph.RiseMultiplier
	}
	p.vy += grav * dt

	p.x += p.vx * dt
	p.y += p.vy * dt

	// Floor plane.
	if p.y >= g.cfg.World.FloorY {
		p.y = g.cfg.World.FloorY
		p.vy = 0
		p.grounded = true
	} else {
		p.grounded = false
	}

	// Level bounds.
	p.x = core.ClampF(p.x, 25, g.cfg.World.LevelLength-25)

	// Inhale: hold to pull, release to swallow a captured enemy.
	if in.Down(core.ActionInhale) && p.ability == AbilityNone {
		if !p.inhaling {
			g.cue(core.CueInhale)
		}
		p.inhaling = true
	} else {
		if p.inhaling && p.hasEnemy {
			p.ability = p.storedAbility
			p.hasEnemy = false
			p.storedAbility = AbilityNone
			g.cue(core.CueSwallow)
			g.spawnStars(p.x, p.y-20)
		}
		p.inhaling = false
	}

	// Ability use, gated by the per-use cooldown.
	if in.JustPressed(core.ActionAbility) && p.ability != AbilityNone && p.abilityCD <= 0 {
		p.abilityCD = g.cfg.Player.AbilityCD
		g.useAbility()
	}

	// Drop the held ability. No cooldown penalty.
	if in.JustPressed(core.ActionDrop) && p.ability != AbilityNone {
		g.spawnStars(p.x, p.y-20)
		p.ability = AbilityNone
	}
}

// hurtPlayer applies one hit to the player, gated by the invulnerability
// window so overlapping frames land at most one hp decrement.
func (g *Game) hurtPlayer() {
	p := &g.player
	if p.invuln > 0 {
		return
	}
	p.hp--
	if p.hp < 0 {
		p.hp = 0
	}
	p.invuln = g.cfg.Player.HurtInvuln
	g.cue(core.CueHit)
	g.spawnExplosion(p.x, p.y, core.ColorPink, 10)
}
