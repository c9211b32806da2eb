package dreamland

import (
	"testing"

	"github.com/vradchenko/puff-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	return g
}

// press builds a snapshot where the action transitions from up to down,
// so JustPressed fires.
func press(actions ...core.Action) core.Snapshot {
	held := make(map[core.Action]bool)
	for _, a := range actions {
		held[a] = true
	}
	return core.NewSnapshot(held, nil)
}

// hold builds a snapshot where the action was already down last tick,
// so only Down fires.
func hold(actions ...core.Action) core.Snapshot {
	held := make(map[core.Action]bool)
	for _, a := range actions {
		held[a] = true
	}
	return core.NewSnapshot(held, held)
}

func idle() core.Snapshot {
	return core.EmptySnapshot()
}

func hasCue(res core.StepResult, want core.Cue) bool {
	for _, c := range res.Cues {
		if c == want {
			return true
		}
	}
	return false
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script should stay identical
	g1 := New()
	g1.Reset(testConfig())
	g2 := New()
	g2.Reset(testConfig())

	for i := 0; i < 600; i++ {
		var in core.Snapshot
		switch {
		case i%120 == 0:
			in = press(core.ActionJump, core.ActionMoveRight)
		case i > 200 && i < 260:
			in = hold(core.ActionInhale)
		default:
			in = hold(core.ActionMoveRight)
		}
		g1.Step(in)
		g2.Step(in)

		if g1.snapshot() != g2.snapshot() {
			t.Fatalf("diverged at tick %d: %+v vs %+v", i, g1.snapshot(), g2.snapshot())
		}
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	g := newTestGame(t)
	g.score = 9000
	g.lives = 1
	g.player.hp = 1
	g.level = 3

	g.Reset(testConfig())

	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
	if g.lives != g.cfg.Player.Lives {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Player.Lives)
	}
	if g.player.hp != g.cfg.Player.MaxHP {
		t.Errorf("hp = %d, want %d", g.player.hp, g.cfg.Player.MaxHP)
	}
	if g.level != 0 {
		t.Errorf("level = %d, want 0", g.level)
	}
	if g.player.ability != AbilityNone {
		t.Errorf("ability = %v, want none", g.player.ability)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	x := g.player.x
	for i := 0; i < 30; i++ {
		g.Step(hold(core.ActionMoveRight))
	}
	if g.player.x != x {
		t.Errorf("player moved while paused: %v -> %v", x, g.player.x)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Fatal("expected unpaused state")
	}
}

func TestRestartFromGameOver(t *testing.T) {
	g := newTestGame(t)
	g.gameOver = true

	res := g.Step(press(core.ActionRestart))
	if res.State.GameOver {
		t.Fatal("restart should clear game over")
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d after restart, want 0", res.State.Score)
	}
}

func TestEnemyContactDamagesPlayerOnce(t *testing.T) {
	g := newTestGame(t)
	g.enemies = g.enemies[:0]
	g.enemies = append(g.enemies, g.newEnemy(enemyWalker, g.player.x))
	g.enemies[0].y = g.player.y

	g.Step(idle())
	if g.player.hp != g.cfg.Player.MaxHP-1 {
		t.Fatalf("hp = %d, want %d", g.player.hp, g.cfg.Player.MaxHP-1)
	}

	// Continued overlap during the invulnerability window costs nothing
	for i := 0; i < 30; i++ {
		g.Step(idle())
	}
	if g.player.hp != g.cfg.Player.MaxHP-1 {
		t.Errorf("hp = %d during invuln, want %d", g.player.hp, g.cfg.Player.MaxHP-1)
	}
}

func TestCaptureAndSwallowGrantsAbility(t *testing.T) {
	g := newTestGame(t)
	g.enemies = g.enemies[:0]
	g.enemies = append(g.enemies, g.newEnemy(enemyFlame, g.player.x+20))
	g.enemies[0].y = g.player.y

	// Hold inhale until the enemy is captured
	for i := 0; i < 60 && !g.player.hasEnemy; i++ {
		g.Step(hold(core.ActionInhale))
	}
	if !g.player.hasEnemy {
		t.Fatal("enemy was never captured")
	}
	if g.score != g.cfg.Combat.ScoreCapture {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Combat.ScoreCapture)
	}

	// Release swallows and grants the enemy's ability
	res := g.Step(idle())
	if g.player.ability != AbilityFire {
		t.Errorf("ability = %v, want fire", g.player.ability)
	}
	if g.player.hasEnemy {
		t.Error("mouth should be empty after swallowing")
	}
	if !hasCue(res, core.CueSwallow) {
		t.Error("expected swallow cue")
	}
}

func TestInhaleDoesNotCaptureSecondEnemy(t *testing.T) {
	g := newTestGame(t)
	g.enemies = g.enemies[:0]
	g.enemies = append(g.enemies, g.newEnemy(enemyFlame, g.player.x+20))
	g.enemies = append(g.enemies, g.newEnemy(enemyFrost, g.player.x+25))
	g.enemies[0].y = g.player.y
	g.enemies[1].y = g.player.y

	g.Step(hold(core.ActionInhale))
	if !g.player.hasEnemy {
		t.Fatal("expected a capture")
	}
	captured := 0
	for i := range g.enemies {
		if g.enemies[i].dead {
			captured++
		}
	}
	if captured != 1 {
		t.Errorf("captured %d enemies in one tick, want 1", captured)
	}
}

func TestProjectileKillScoresAndPrunes(t *testing.T) {
	g := newTestGame(t)
	g.enemies = g.enemies[:0]
	g.enemies = append(g.enemies, g.newEnemy(enemyWalker, g.player.x+100))
	g.boss = nil
	base := g.score

	g.queueProjectile(projectile{
		x: g.player.x + 100, y: g.cfg.World.FloorY,
		vx: 0, vy: 0, damage: 1, fromPlayer: true,
	})
	g.enemies[0].y = g.cfg.World.FloorY

	g.Step(idle())

	if len(g.enemies) != 0 {
		t.Errorf("enemy not pruned, %d left", len(g.enemies))
	}
	if len(g.projectiles) != 0 {
		t.Errorf("spent projectile not pruned, %d left", len(g.projectiles))
	}
	if g.score != base+g.cfg.Combat.ScoreKill {
		t.Errorf("score = %d, want %d", g.score, base+g.cfg.Combat.ScoreKill)
	}
}

func TestGameOverWhenLivesExhausted(t *testing.T) {
	g := newTestGame(t)
	g.lives = 1
	g.player.hp = 1
	g.enemies = g.enemies[:0]
	g.enemies = append(g.enemies, g.newEnemy(enemyWalker, g.player.x))
	g.enemies[0].y = g.player.y

	res := g.Step(idle())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if !hasCue(res, core.CueLose) {
		t.Error("expected lose cue")
	}

	// A dead game ignores everything except restart
	x := g.player.x
	g.Step(hold(core.ActionMoveRight))
	if g.player.x != x {
		t.Error("simulation advanced after game over")
	}
}

func TestDeathBurnsLifeAndRespawns(t *testing.T) {
	g := newTestGame(t)
	g.player.hp = 1
	g.player.ability = AbilitySword
	g.enemies = g.enemies[:0]
	g.enemies = append(g.enemies, g.newEnemy(enemyWalker, g.player.x))
	g.enemies[0].y = g.player.y
	lives := g.lives

	g.Step(idle())

	if g.State().GameOver {
		t.Fatal("should respawn, not game over")
	}
	if g.lives != lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, lives-1)
	}
	if g.player.hp != g.cfg.Player.MaxHP {
		t.Errorf("hp = %d after respawn, want %d", g.player.hp, g.cfg.Player.MaxHP)
	}
	if g.player.ability != AbilityNone {
		t.Error("ability should be lost on death")
	}
	if g.player.invuln <= 0 {
		t.Error("respawn should grant an invulnerability window")
	}
}
