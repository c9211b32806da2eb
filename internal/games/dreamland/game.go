// Package dreamland implements a side-scrolling copy-ability platformer.
// The simulation is a fixed-timestep entity loop: input, player integration,
// enemy and boss behavior, deferred projectile spawns, collision resolution,
// then a single prune pass. All randomness flows through one seeded source so
// a given seed and input script replays identically.
package dreamland

import (
	"math/rand"

	"github.com/vradchenko/puff-arcade/internal/config"
	"github.com/vradchenko/puff-arcade/internal/core"
	"github.com/vradchenko/puff-arcade/internal/registry"
)

func init() {
	registry.Register("dreamland", func() registry.Game { return New() })
}

// Game is the authoritative Dreamland state. Entity collections are owned by
// the simulation; rendering reads them but never writes.
type Game struct {
	cfg     *config.DreamlandConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	dt      float64

	level    int
	score    int
	lives    int
	paused   bool
	gameOver bool
	won      bool

	player             player
	enemies            []enemy
	boss               *boss
	projectiles        []projectile
	pendingProjectiles []projectile
	particles          []particle

	camX float64
	cues []core.Cue
}

// New creates an unstarted game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "dreamland" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Dreamland" }

var configPath string

// SetConfigPath overrides the embedded defaults with a YAML config file.
// Must be called before the game is created.
func SetConfigPath(path string) {
	configPath = path
}

// Reset implements registry.Game. It loads the game config, seeds the RNG
// from the runtime config, and starts the campaign at the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadDreamland(configPath)
	if err != nil {
		loaded = config.DefaultDreamlandConfig()
	}
	g.cfg = &loaded
	g.runtime = cfg
	g.dt = cfg.Dt()
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.score = 0
	g.lives = g.cfg.Player.Lives
	g.paused = false
	g.gameOver = false
	g.won = false
	g.cues = g.cues[:0]

	g.resetPlayer()
	g.loadLevel(0)
	g.player.ability = AbilityNone
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// cue records an audio cue for this tick's StepResult.
func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Cues: g.cues}
	g.cues = nil
	return res
}

// Step implements registry.Game. One call advances exactly one fixed tick.
//
// Phase order is a contract: entity updates never see partially resolved
// collisions, projectile spawns queued during updates go live before the
// collision scan, and removal happens only in the final prune pass.
func (g *Game) Step(in core.Snapshot) core.StepResult {
	if in.JustPressed(core.ActionRestart) {
		g.Reset(g.runtime)
		return g.result()
	}
	if g.gameOver || g.won {
		return g.result()
	}
	if in.JustPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.updatePlayer(in)
	g.updateEnemies()
	g.resolveInhale()
	g.resolveEnemyContact()
	g.updateBoss()
	g.resolveBossContact()

	g.flushProjectiles()
	g.updateProjectiles()
	g.resolveProjectileHits()

	for i := range g.particles {
		g.particles[i].update(g.dt)
	}

	g.pruneEnemies()
	g.pruneProjectiles()
	g.pruneParticles()

	g.updateCamera()
	g.direct()

	return g.result()
}

// resolveInhale pulls enemies inside the inhale radius toward the player and
// captures any that cross the swallow radius. Capture stores the enemy's
// ability tag for the release-to-swallow step in updatePlayer.
func (g *Game) resolveInhale() {
	p := &g.player
	if !p.inhaling || p.hasEnemy {
		return
	}
	pull := core.BoxAround(p.x, p.y, g.cfg.Player.InhaleRange*2, g.cfg.Player.InhaleRange*2)
	capture := core.BoxAround(p.x, p.y, g.cfg.Player.SwallowRange*2, g.cfg.Player.SwallowRange*2)
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.dead {
			continue
		}
		eb := e.box()
		if !pull.Intersects(eb) {
			continue
		}
		if capture.Intersects(eb) {
			p.hasEnemy = true
			p.storedAbility = e.ability
			e.dead = true
			g.score += g.cfg.Combat.ScoreCapture
			g.spawnStars(e.x, e.y)
			return
		}
		// Pull toward the mouth.
		step := g.cfg.Player.InhalePull * g.dt
		if e.x < p.x {
			e.x += step
		} else {
			e.x -= step
		}
		if e.y < p.y {
			e.y += step * 0.5
		} else {
			e.y -= step * 0.5
		}
	}
}

// resolveEnemyContact applies contact damage from live enemies. Enemies are
// not harmed by touching the player.
func (g *Game) resolveEnemyContact() {
	if g.player.inhaling {
		return
	}
	pb := g.player.box(g.cfg.Player.HalfExtent)
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.dead {
			continue
		}
		if pb.Intersects(e.box()) {
			g.hurtPlayer()
			return
		}
	}
}

// resolveBossContact is a symmetric trade: touching the boss hurts the player
// and chips the boss, both through their respective damage gates.
func (g *Game) resolveBossContact() {
	b := g.boss
	if b == nil || b.hp <= 0 {
		return
	}
	if !g.player.box(g.cfg.Player.HalfExtent).Intersects(b.box()) {
		return
	}
	g.hurtPlayer()
	if g.damageBoss(1) {
		g.score += g.cfg.Combat.ScoreBossTouch
	}
}

func (g *Game) updateProjectiles() {
	for i := range g.projectiles {
		if g.projectiles[i].dead {
			continue
		}
		g.projectiles[i].update(g.dt, g.cfg.World.FloorY)
	}
}

// resolveProjectileHits scans live projectiles against their valid targets.
// Player shots test enemies first, then the boss; a shot spends itself on the
// first overlap. Hostile shots test only the player.
func (g *Game) resolveProjectileHits() {
	pb := g.player.box(g.cfg.Player.HalfExtent)
	for i := range g.projectiles {
		pr := &g.projectiles[i]
		if pr.dead {
			continue
		}
		prb := pr.box()

		if pr.fromPlayer {
			hit := false
			for j := range g.enemies {
				e := &g.enemies[j]
				if e.dead || !prb.Intersects(e.box()) {
					continue
				}
				g.damageEnemy(e, pr.damage)
				if e.dead {
					g.score += g.cfg.Combat.ScoreKill
				}
				hit = true
				break
			}
			if !hit && g.boss != nil && g.boss.hp > 0 && prb.Intersects(g.boss.box()) {
				if g.damageBoss(pr.damage) {
					g.score += g.cfg.Combat.ScoreBossHit
				}
				hit = true
			}
			if hit {
				pr.dead = true
			}
			continue
		}

		if prb.Intersects(pb) {
			g.hurtPlayer()
			pr.dead = true
		}
	}
}

// updateCamera follows the player, clamped so the view never leaves the level.
func (g *Game) updateCamera() {
	viewW := g.viewWorldWidth()
	g.camX = core.ClampF(g.player.x-viewW/2, 0, g.cfg.World.LevelLength-viewW)
}

// direct checks the end conditions: boss defeated advances or wins the
// campaign, player hp reaching zero burns a life or ends the run.
func (g *Game) direct() {
	if b := g.boss; b != nil && b.hp <= 0 {
		g.score += g.cfg.Combat.ScoreBossKill
		g.spawnExplosion(b.x, b.y, core.ColorBrightYellow, 40)
		g.boss = nil
		if g.level+1 < len(levels) {
			g.loadLevel(g.level + 1)
		} else {
			g.won = true
			g.cue(core.CueWin)
		}
		return
	}

	if g.player.hp <= 0 {
		g.lives--
		if g.lives > 0 {
			// resetPlayer also drops the held ability.
			g.resetPlayer()
			g.player.invuln = g.cfg.Player.HurtInvuln
		} else {
			g.gameOver = true
			g.cue(core.CueLose)
		}
	}
}
