package lawn

import (
	"testing"

	"github.com/vradchenko/puff-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     54321,
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 60,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig())
	return g
}

// quietGame suppresses the wave director and sky suns so tests control the
// field directly.
func quietGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.director.spawnTimer = 1e9
	g.skySunIn = 1e9
	return g
}

func press(actions ...core.Action) core.Snapshot {
	held := make(map[core.Action]bool)
	for _, a := range actions {
		held[a] = true
	}
	return core.NewSnapshot(held, nil)
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

// place puts a plant directly on the grid, bypassing cost and recharge.
func place(g *Game, kind plantKind, row, col int) *plant {
	g.plants = append(g.plants, g.newPlant(kind, row, col))
	g.grid[row][col] = len(g.plants) - 1
	return &g.plants[len(g.plants)-1]
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script should stay identical
	g1 := New()
	g1.Reset(testConfig())
	g2 := New()
	g2.Reset(testConfig())

	for i := 0; i < 900; i++ {
		var in core.Snapshot
		switch {
		case i == 10:
			in = press(core.ActionConfirm)
		case i%90 == 0:
			in = press(core.ActionMoveRight)
		case i%130 == 0:
			in = press(core.ActionCycle)
		default:
			in = idle()
		}
		g1.Step(in)
		g2.Step(in)

		if g1.snapshot() != g2.snapshot() {
			t.Fatalf("diverged at tick %d: %+v vs %+v", i, g1.snapshot(), g2.snapshot())
		}
	}
}

func TestPlacementSpendsSunAndStartsRecharge(t *testing.T) {
	g := quietGame(t)
	g.selected = int(plantSunflower) // Costs exactly the starting sun

	g.Step(press(core.ActionConfirm))

	if len(g.plants) != 1 {
		t.Fatalf("plants = %d, want 1", len(g.plants))
	}
	if g.sunCount != g.cfg.Sun.Starting-plantStats[plantSunflower].cost {
		t.Errorf("sun = %d after placing", g.sunCount)
	}
	if g.cards[g.selected].recharge <= 0 {
		t.Error("card did not start recharging")
	}
}

func TestPlacementRejectedWhenPoorOrOccupied(t *testing.T) {
	g := quietGame(t)
	g.selected = int(plantShooter) // Costs 100, starting sun is 50

	if g.tryPlace(0, 0) {
		t.Error("placed a plant the player cannot afford")
	}

	g.sunCount = 1000
	if !g.tryPlace(0, 0) {
		t.Fatal("placement failed with plenty of sun")
	}
	g.cards[g.selected].recharge = 0
	if g.tryPlace(0, 0) {
		t.Error("placed onto an occupied cell")
	}
}

func TestPlacementRejectedDuringRecharge(t *testing.T) {
	g := quietGame(t)
	g.sunCount = 1000
	g.selected = int(plantWall)

	if !g.tryPlace(0, 0) {
		t.Fatal("first placement failed")
	}
	if g.tryPlace(0, 1) {
		t.Error("placed while the card was recharging")
	}
}

func TestDigUpRemovesPlant(t *testing.T) {
	g := quietGame(t)
	place(g, plantWall, 2, 3)
	g.cursorRow, g.cursorCol = 2, 3

	g.Step(press(core.ActionDrop))

	if len(g.plants) != 0 {
		t.Errorf("plants = %d after digging, want 0", len(g.plants))
	}
	if g.grid[2][3] != -1 {
		t.Error("grid cell still references the dug plant")
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	g := quietGame(t)
	g.cursorRow, g.cursorCol = 0, 0

	g.Step(press(core.ActionUp))
	g.Step(press(core.ActionMoveLeft))
	if g.cursorRow != 0 || g.cursorCol != 0 {
		t.Errorf("cursor escaped to (%d,%d)", g.cursorRow, g.cursorCol)
	}

	for i := 0; i < 20; i++ {
		g.Step(press(core.ActionDown))
		g.Step(press(core.ActionMoveRight))
	}
	if g.cursorRow != g.cfg.Grid.Rows-1 || g.cursorCol != g.cfg.Grid.Cols-1 {
		t.Errorf("cursor = (%d,%d), want bottom-right corner", g.cursorRow, g.cursorCol)
	}
}

func TestCursorCollectsRestingSun(t *testing.T) {
	g := quietGame(t)
	g.spawnSun(g.cellCenterX(4), g.rowCenterY(2), 2, 4, false)
	g.cursorRow, g.cursorCol = 2, 4
	base := g.sunCount

	g.Step(idle())

	if g.sunCount != base+g.cfg.Sun.SunValue {
		t.Errorf("sun = %d, want %d", g.sunCount, base+g.cfg.Sun.SunValue)
	}
	if len(g.suns) != 0 {
		t.Error("collected sun not pruned")
	}
}

func TestSunflowerProducesSun(t *testing.T) {
	g := quietGame(t)
	place(g, plantSunflower, 1, 1)

	// Worst case timer is 8.5s
	for i := 0; i < 60*9; i++ {
		g.Step(idle())
	}
	if len(g.suns) == 0 {
		t.Error("sunflower produced no sun in 9 seconds")
	}
}

func TestSunExpiresUncollected(t *testing.T) {
	g := quietGame(t)
	g.cursorRow, g.cursorCol = 0, 0
	g.spawnSun(g.cellCenterX(8), g.rowCenterY(4), 4, 8, false)

	for i := 0; i < 60*11; i++ {
		g.Step(idle())
	}
	if len(g.suns) != 0 {
		t.Error("sun should expire after its lifetime")
	}
}

func TestShooterFiresOnlyWithLaneTarget(t *testing.T) {
	g := quietGame(t)
	place(g, plantShooter, 2, 0)

	for i := 0; i < 120; i++ {
		g.Step(idle())
	}
	if len(g.peas) != 0 {
		t.Fatalf("fired %d peas at an empty lane", len(g.peas))
	}

	// Enemy in a different lane must not trigger it either
	g.enemies = append(g.enemies, g.newEnemy(enemyWalker, 0, 800))
	for i := 0; i < 120; i++ {
		g.Step(idle())
	}
	if len(g.peas) != 0 {
		t.Fatalf("fired %d peas at a different lane", len(g.peas))
	}

	g.enemies = append(g.enemies, g.newEnemy(enemyWalker, 2, 800))
	for i := 0; i < 120; i++ {
		g.Step(idle())
	}
	if len(g.peas) == 0 {
		t.Error("never fired at a lane target")
	}
}

func TestBombClearsBlastRadius(t *testing.T) {
	g := quietGame(t)
	place(g, plantBomb, 2, 4)
	near := g.cellCenterX(4) + 90 // Inside the blast, outside chewing range
	far := g.cellCenterX(4) + 500
	g.enemies = append(g.enemies, g.newEnemy(enemyBrute, 2, near))
	g.enemies = append(g.enemies, g.newEnemy(enemyBrute, 2, far))

	// Ride out the fuse
	for i := 0; i < 70; i++ {
		g.Step(idle())
	}

	if len(g.plants) != 0 {
		t.Error("bomb should consume itself")
	}
	brutesLeft := len(g.enemies)
	if brutesLeft != 1 {
		t.Errorf("enemies left = %d, want only the far one", brutesLeft)
	}
}

func TestMineArmsBeforeDetonating(t *testing.T) {
	g := quietGame(t)
	p := place(g, plantMine, 2, 8)
	g.enemies = append(g.enemies, g.newEnemy(enemyWalker, 2, g.cellCenterX(8)))

	g.Step(idle())
	if p.dead {
		t.Fatal("mine detonated before arming")
	}

	// Walker chews the unarmed mine; give it hp to survive the arm time
	g.plants[0].hp = 1000
	for i := 0; i < 60*9 && len(g.enemies) > 0; i++ {
		g.Step(idle())
	}
	if len(g.enemies) != 0 {
		t.Error("armed mine never detonated on contact")
	}
}

func TestWinAfterFinalWaveCleared(t *testing.T) {
	g := quietGame(t)
	g.director.finalSpawned = true

	res := g.Step(idle())
	if !res.State.Won {
		t.Fatal("expected a win with the final wave cleared")
	}
	if !hasCue(res, core.CueWin) {
		t.Error("expected win cue")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionPause))

	before := g.director.time
	for i := 0; i < 60; i++ {
		g.Step(idle())
	}
	if g.director.time != before {
		t.Error("director advanced while paused")
	}
}

func TestRestartResetsEverything(t *testing.T) {
	g := newTestGame(t)
	g.sunCount = 0
	g.gameOver = true
	place(g, plantWall, 0, 0)

	res := g.Step(press(core.ActionRestart))

	if res.State.GameOver {
		t.Error("restart should clear the loss")
	}
	if g.sunCount != g.cfg.Sun.Starting {
		t.Errorf("sun = %d after restart, want %d", g.sunCount, g.cfg.Sun.Starting)
	}
	if len(g.plants) != 0 {
		t.Error("plants survived the restart")
	}
	if len(g.mowers) != g.cfg.Grid.Rows {
		t.Errorf("mowers = %d, want one per row", len(g.mowers))
	}
}
