package dreamland

import (
	"testing"

	"github.com/vradchenko/puff-arcade/internal/core"
)

func TestBossHitCooldownGatesDamage(t *testing.T) {
	g := newTestGame(t)
	hp := g.boss.hp

	if !g.damageBoss(1) {
		t.Fatal("first hit rejected")
	}
	if g.damageBoss(1) {
		t.Fatal("second hit landed inside the cooldown window")
	}
	if g.boss.hp != hp-1 {
		t.Errorf("boss hp = %d, want %d", g.boss.hp, hp-1)
	}

	// Move past the window and hit again
	g.boss.lastHit = g.cfg.Combat.BossHitCD + g.dt
	if !g.damageBoss(1) {
		t.Error("hit rejected after the cooldown expired")
	}
}

func TestBossContactIsSymmetricTrade(t *testing.T) {
	g := newTestGame(t)
	g.enemies = g.enemies[:0]
	b := g.boss
	g.player.x = b.x
	g.player.y = b.y
	hp := b.hp
	playerHP := g.player.hp

	g.Step(idle())

	if g.player.hp != playerHP-1 {
		t.Errorf("player hp = %d, want %d", g.player.hp, playerHP-1)
	}
	if b.hp != hp-1 {
		t.Errorf("boss hp = %d, want %d", b.hp, hp-1)
	}
	if g.score != g.cfg.Combat.ScoreBossTouch {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Combat.ScoreBossTouch)
	}
}

func TestBossProjectileHitScores(t *testing.T) {
	g := newTestGame(t)
	g.enemies = g.enemies[:0]
	b := g.boss
	g.player.x = b.x - 200
	hp := b.hp

	g.queueProjectile(projectile{
		x: b.x, y: b.y - 20,
		damage: 2, fromPlayer: true,
	})
	g.Step(idle())

	if b.hp != hp-2 {
		t.Errorf("boss hp = %d, want %d", b.hp, hp-2)
	}
	if g.score != g.cfg.Combat.ScoreBossHit {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Combat.ScoreBossHit)
	}
	if len(g.projectiles) != 0 {
		t.Error("projectile should be spent on the hit")
	}
}

func TestBossDefeatAdvancesLevel(t *testing.T) {
	g := newTestGame(t)
	g.enemies = g.enemies[:0]
	g.boss.hp = 1
	g.boss.lastHit = 10
	base := g.score

	g.queueProjectile(projectile{
		x: g.boss.x, y: g.boss.y - 20,
		damage: 1, fromPlayer: true,
	})
	g.player.x = 100
	g.Step(idle())

	if g.level != 1 {
		t.Fatalf("level = %d, want 1", g.level)
	}
	if g.boss == nil || g.boss.kind != levels[1].boss {
		t.Error("next level boss not loaded")
	}
	want := base + g.cfg.Combat.ScoreBossHit + g.cfg.Combat.ScoreBossKill
	if g.score != want {
		t.Errorf("score = %d, want %d", g.score, want)
	}
	if len(g.enemies) != len(levels[1].enemies) {
		t.Errorf("enemies = %d, want %d", len(g.enemies), len(levels[1].enemies))
	}
}

func TestFinalBossDefeatWinsCampaign(t *testing.T) {
	g := newTestGame(t)
	g.loadLevel(len(levels) - 1)
	g.enemies = g.enemies[:0]
	g.boss.hp = 1
	g.boss.lastHit = 10

	g.queueProjectile(projectile{
		x: g.boss.x, y: g.boss.y,
		damage: 1, fromPlayer: true,
	})
	res := g.Step(idle())

	if !res.State.Won {
		t.Fatal("expected campaign win")
	}
	if !hasCue(res, core.CueWin) {
		t.Error("expected win cue")
	}
}

func TestDarkEyePhaseFlipsOnceAtHalfHealth(t *testing.T) {
	g := newTestGame(t)
	g.loadLevel(len(levels) - 1)
	b := g.boss
	if b.kind != bossDarkEye {
		t.Fatalf("final boss kind = %v, want dark eye", b.kind)
	}
	if b.phase != 1 {
		t.Fatalf("phase = %d at spawn, want 1", b.phase)
	}

	// Chip down to exactly half: the flip must fire on the crossing hit
	for b.hp > b.maxHP/2 {
		b.lastHit = 10
		g.damageBoss(1)
	}
	if b.phase != 2 {
		t.Fatalf("phase = %d at half health, want 2", b.phase)
	}

	// Further damage never flips back
	b.lastHit = 10
	g.damageBoss(1)
	if b.phase != 2 {
		t.Error("phase reverted after the one-time flip")
	}
}

func TestKingJumpCycleReturnsToIdle(t *testing.T) {
	g := newTestGame(t)
	g.loadLevel(1)
	g.enemies = g.enemies[:0]
	b := g.boss
	if b.kind != bossKing {
		t.Fatalf("level 1 boss kind = %v, want king", b.kind)
	}
	g.player.invuln = 1e9 // Keep the player alive through slams

	sawJump, sawSlam := false, false
	for i := 0; i < 600; i++ {
		g.Step(idle())
		switch b.state {
		case stateJumping:
			sawJump = true
		case stateSlam:
			sawSlam = true
		}
		if sawJump && sawSlam && b.state == stateIdle {
			return
		}
	}
	t.Errorf("cycle incomplete: jump=%v slam=%v state=%v", sawJump, sawSlam, b.state)
}

func TestWoodsDropsApplesOnTimer(t *testing.T) {
	g := newTestGame(t)
	g.enemies = g.enemies[:0]
	g.player.x = 100 // Stay out of the arena
	b := g.boss
	if b.kind != bossWoods {
		t.Fatalf("level 0 boss kind = %v, want woods", b.kind)
	}

	spawned := 0
	for i := 0; i < 60*5; i++ {
		before := len(g.projectiles)
		g.Step(idle())
		if len(g.projectiles) > before {
			spawned++
		}
	}
	if spawned < 2 {
		t.Errorf("apple drops = %d over 5s, want at least 2", spawned)
	}
}

func TestHostileProjectileHurtsPlayer(t *testing.T) {
	g := newTestGame(t)
	g.enemies = g.enemies[:0]
	hp := g.player.hp

	g.queueProjectile(projectile{
		x: g.player.x, y: g.player.y,
		damage: 1, fromPlayer: false,
	})
	g.Step(idle())

	if g.player.hp != hp-1 {
		t.Errorf("player hp = %d, want %d", g.player.hp, hp-1)
	}
	if len(g.projectiles) != 0 {
		t.Error("hostile projectile should be spent on the hit")
	}
}
