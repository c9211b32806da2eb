// Package lawn implements a lane-defense game: plants hold a 5x9 lawn
// against waves of shells marching in from the right. Placement is
// cursor-driven, the economy runs on collected sun, and each lane keeps a
// single one-shot mower as its last line of defense.
package lawn

import (
	"math/rand"

	"github.com/vradchenko/puff-arcade/internal/config"
	"github.com/vradchenko/puff-arcade/internal/core"
	"github.com/vradchenko/puff-arcade/internal/registry"
)

func init() {
	registry.Register("lawn", func() registry.Game { return New() })
}

// World geometry in world units, matching a 1000x600 virtual screen.
const (
	worldWidth  = 1000.0
	worldHeight = 600.0
	lawnLeft    = 100.0
	lawnTop     = 100.0
)

// seedCard is one entry on the build bar: a plant kind plus its recharge
// timer. Placing a plant starts the recharge.
type seedCard struct {
	kind     plantKind
	recharge float64
}

// Game is the authoritative lawn state.
type Game struct {
	cfg     *config.LawnConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	dt      float64

	score    int
	sunCount int
	paused   bool
	gameOver bool
	won      bool

	cursorRow, cursorCol int
	cards                []seedCard
	selected             int

	grid    [][]int // Plant index per cell, -1 when empty
	plants  []plant
	enemies []enemy
	peas    []pea
	suns    []sun
	mowers  []mower

	director director
	skySunIn float64

	cues []core.Cue
}

// New creates an unstarted game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "lawn" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Lawn Defense" }

var configPath string

// SetConfigPath overrides the embedded defaults with a YAML config file.
// Must be called before the game is created.
func SetConfigPath(path string) {
	configPath = path
}

// Reset implements registry.Game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadLawn(configPath)
	if err != nil {
		loaded = config.DefaultLawnConfig()
	}
	g.cfg = &loaded
	g.runtime = cfg
	g.dt = cfg.Dt()
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.score = 0
	g.sunCount = g.cfg.Sun.Starting
	g.paused = false
	g.gameOver = false
	g.won = false
	g.cues = g.cues[:0]

	g.cursorRow = g.cfg.Grid.Rows / 2
	g.cursorCol = 0
	g.selected = 0
	g.cards = g.cards[:0]
	for k := plantKind(0); k < plantKindCount; k++ {
		g.cards = append(g.cards, seedCard{kind: k})
	}

	g.grid = make([][]int, g.cfg.Grid.Rows)
	for r := range g.grid {
		g.grid[r] = make([]int, g.cfg.Grid.Cols)
		for c := range g.grid[r] {
			g.grid[r][c] = -1
		}
	}
	g.plants = g.plants[:0]
	g.enemies = g.enemies[:0]
	g.peas = g.peas[:0]
	g.suns = g.suns[:0]

	g.resetMowers()
	g.resetDirector()
	g.skySunIn = g.cfg.Sun.SkyInterval
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

func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Cues: g.cues}
	g.cues = nil
	return res
}

// Step implements registry.Game. One call advances exactly one fixed tick:
// input, director, plants, suns, peas, enemies, mowers, collision, prune,
// then the end conditions.
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

	g.handleInput(in)
	g.collectSuns()

	g.updateDirector()
	g.tickSkySun()
	g.updatePlants()
	g.updateSuns()
	g.updatePeas()
	g.updateEnemies()
	g.updateMowers()
	g.resolvePeaHits()

	lost := g.checkLeftEdge()

	g.prunePlants()
	g.pruneEnemies()
	g.prunePeas()
	g.pruneSuns()

	if lost {
		g.gameOver = true
		g.cue(core.CueLose)
	} else if g.director.finalSpawned && !g.anyEnemyAlive() {
		g.won = true
		g.cue(core.CueWin)
	}

	return g.result()
}

// handleInput moves the cursor, cycles the seed bar, and resolves placement
// and digging.
func (g *Game) handleInput(in core.Snapshot) {
	if in.JustPressed(core.ActionUp) && g.cursorRow > 0 {
		g.cursorRow--
	}
	if in.JustPressed(core.ActionDown) && g.cursorRow < g.cfg.Grid.Rows-1 {
		g.cursorRow++
	}
	if in.JustPressed(core.ActionMoveLeft) && g.cursorCol > 0 {
		g.cursorCol--
	}
	if in.JustPressed(core.ActionMoveRight) && g.cursorCol < g.cfg.Grid.Cols-1 {
		g.cursorCol++
	}

	if in.JustPressed(core.ActionCycle) {
		g.selected = (g.selected + 1) % len(g.cards)
	}

	for i := range g.cards {
		if g.cards[i].recharge > 0 {
			g.cards[i].recharge -= g.dt
		}
	}

	if in.JustPressed(core.ActionConfirm) || in.JustPressed(core.ActionInhale) {
		g.tryPlace(g.cursorRow, g.cursorCol)
	}
	if in.JustPressed(core.ActionDrop) {
		g.digUp(g.cursorRow, g.cursorCol)
	}
}

// tryPlace plants the selected card at the cell if it is empty, affordable,
// and the card has recharged.
func (g *Game) tryPlace(row, col int) bool {
	card := &g.cards[g.selected]
	def := plantStats[card.kind]
	if g.grid[row][col] >= 0 || card.recharge > 0 || g.sunCount < def.cost {
		return false
	}
	g.plants = append(g.plants, g.newPlant(card.kind, row, col))
	g.grid[row][col] = len(g.plants) - 1
	g.sunCount -= def.cost
	card.recharge = def.cooldown
	g.cue(core.CuePlant)
	return true
}

// digUp removes the plant at the cell. No refund.
func (g *Game) digUp(row, col int) {
	idx := g.grid[row][col]
	if idx < 0 {
		return
	}
	g.plants[idx].dead = true
	g.grid[row][col] = -1
}

func (g *Game) tickSkySun() {
	g.skySunIn -= g.dt
	if g.skySunIn <= 0 {
		g.skySunIn = g.cfg.Sun.SkyInterval
		g.spawnSkySun()
	}
}

// Geometry helpers: the lawn occupies [lawnLeft, lawnLeft+cols*tile) by
// [lawnTop, lawnTop+rows*tile) in world units.

func (g *Game) lawnWidth() float64 {
	return float64(g.cfg.Grid.Cols) * g.cfg.Grid.TileSize
}

func (g *Game) cellLeftX(col int) float64 {
	return lawnLeft + float64(col)*g.cfg.Grid.TileSize
}

func (g *Game) cellRightX(col int) float64 {
	return g.cellLeftX(col) + g.cfg.Grid.TileSize
}

func (g *Game) cellCenterX(col int) float64 {
	return g.cellLeftX(col) + g.cfg.Grid.TileSize/2
}

func (g *Game) rowCenterY(row int) float64 {
	return lawnTop + float64(row)*g.cfg.Grid.TileSize + g.cfg.Grid.TileSize/2
}

// colAt maps a world x to a column index, or -1 outside the lawn.
func (g *Game) colAt(x float64) int {
	if x < lawnLeft {
		return -1
	}
	col := int((x - lawnLeft) / g.cfg.Grid.TileSize)
	if col >= g.cfg.Grid.Cols {
		return -1
	}
	return col
}
