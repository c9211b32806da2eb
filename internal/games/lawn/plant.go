package lawn

import (
	"github.com/vradchenko/puff-arcade/internal/core"
)

// plantKind discriminates the placeable defenders. Stats live in plantStats;
// per-kind behavior in updatePlants.
type plantKind int

const (
	plantSunflower plantKind = iota // Generates sun on a random timer
	plantShooter                    // Fires peas down the lane
	plantFrost                      // Fires slowing peas
	plantWall                       // High-hp blocker
	plantBomb                       // Fused area blast, consumes itself
	plantMine                       // Arms over time, detonates on contact
	plantKindCount
)

// plantDef is the static stat block for one plant kind. Cooldown gates the
// seed card, not the plant itself.
type plantDef struct {
	name     string
	cost     int
	hp       float64
	cooldown float64
	glyph    rune
	color    core.Color
}

var plantStats = [plantKindCount]plantDef{
	plantSunflower: {"Sunflower", 50, 7, 5.0, 'Y', core.ColorBrightYellow},
	plantShooter:   {"Shooter", 100, 10, 4.5, 'G', core.ColorBrightGreen},
	plantFrost:     {"Frost", 175, 10, 6.0, 'B', core.ColorBrightCyan},
	plantWall:      {"Wall", 50, 60, 8.0, 'W', core.ColorYellow},
	plantBomb:      {"Bomb", 150, 5, 12.0, 'O', core.ColorBrightRed},
	plantMine:      {"Mine", 25, 5, 9.0, 'M', core.ColorMagenta},
}

const (
	shooterFireRate = 1.2 // Shots per second
	frostFireRate   = 0.9
	peaDamage       = 1.0
	peaSpeed        = 300.0
	frostSlowFactor = 0.45
	frostSlowTime   = 3.0

	sunflowerMinRate = 6.5
	sunflowerMaxRate = 8.5

	bombFuse    = 1.0
	bombRadius  = 100.0
	mineArmTime = 8.0
	mineRadius  = 70.0
	blastDamage = 999.0
)

// plant is one placed defender occupying a grid cell.
type plant struct {
	kind plantKind
	row  int
	col  int
	hp   float64
	dead bool

	shootTimer float64 // Shooter and frost
	sunTimer   float64 // Sunflower
	fuse       float64 // Bomb
	armTimer   float64 // Mine
	armed      bool
}

func (g *Game) newPlant(kind plantKind, row, col int) plant {
	p := plant{kind: kind, row: row, col: col, hp: plantStats[kind].hp}
	switch kind {
	case plantSunflower:
		p.sunTimer = sunflowerMinRate + g.rng.Float64()*(sunflowerMaxRate-sunflowerMinRate)
	case plantBomb:
		p.fuse = bombFuse
	case plantMine:
		p.armTimer = mineArmTime
	}
	return p
}

func (g *Game) damagePlant(p *plant, amount float64) {
	if p.dead {
		return
	}
	p.hp -= amount
	if p.hp <= 0 {
		p.hp = 0
		p.dead = true
	}
}

// updatePlants runs one tick of every live plant. Shooters fire only when
// their lane has a live enemy; bombs and mines queue area blasts that are
// applied in the same tick by detonate.
func (g *Game) updatePlants() {
	for i := range g.plants {
		p := &g.plants[i]
		if p.dead {
			continue
		}
		switch p.kind {
		case plantSunflower:
			p.sunTimer -= g.dt
			if p.sunTimer <= 0 {
				p.sunTimer = sunflowerMinRate + g.rng.Float64()*(sunflowerMaxRate-sunflowerMinRate)
				g.spawnSun(g.cellCenterX(p.col), g.rowCenterY(p.row), p.row, p.col, false)
			}

		case plantShooter:
			p.shootTimer += g.dt
			if g.laneHasEnemy(p.row) && p.shootTimer >= 1.0/shooterFireRate {
				p.shootTimer = 0
				g.peas = append(g.peas, pea{
					row: p.row, x: g.cellCenterX(p.col) + 20,
					damage: peaDamage, speed: peaSpeed,
				})
				g.cue(core.CueShoot)
			}

		case plantFrost:
			p.shootTimer += g.dt
			if g.laneHasEnemy(p.row) && p.shootTimer >= 1.0/frostFireRate {
				p.shootTimer = 0
				g.peas = append(g.peas, pea{
					row: p.row, x: g.cellCenterX(p.col) + 20,
					damage: peaDamage, speed: peaSpeed,
					slowFactor: frostSlowFactor, slowDuration: frostSlowTime,
				})
				g.cue(core.CueShoot)
			}

		case plantBomb:
			p.fuse -= g.dt
			if p.fuse <= 0 {
				g.detonate(g.cellCenterX(p.col), g.rowCenterY(p.row), bombRadius)
				p.dead = true
			}

		case plantMine:
			if !p.armed {
				p.armTimer -= g.dt
				if p.armTimer <= 0 {
					p.armed = true
				}
				break
			}
			for j := range g.enemies {
				e := &g.enemies[j]
				if e.dead || e.row != p.row {
					continue
				}
				if e.x-enemyHalfW <= g.cellRightX(p.col) && e.x+enemyHalfW >= g.cellLeftX(p.col) {
					g.detonate(g.cellCenterX(p.col), g.rowCenterY(p.row), mineRadius)
					p.dead = true
					break
				}
			}
		}
	}
}

// detonate deals blast damage to every enemy within radius of the center,
// across all lanes.
func (g *Game) detonate(cx, cy, radius float64) {
	for i := range g.enemies {
		e := &g.enemies[i]
		if e.dead {
			continue
		}
		dx := e.x - cx
		dy := g.rowCenterY(e.row) - cy
		if dx*dx+dy*dy <= radius*radius {
			g.damageEnemy(e, blastDamage)
		}
	}
	g.cue(core.CueBoom)
}

// prunePlants compacts the plant list and clears grid references to the dead.
func (g *Game) prunePlants() {
	live := g.plants[:0]
	for i := range g.plants {
		p := g.plants[i]
		if p.dead {
			if g.grid[p.row][p.col] == i {
				g.grid[p.row][p.col] = -1
			}
			continue
		}
		live = append(live, p)
	}
	g.plants = live
	// Indices shifted; rebuild the grid.
	for r := range g.grid {
		for c := range g.grid[r] {
			g.grid[r][c] = -1
		}
	}
	for i := range g.plants {
		g.grid[g.plants[i].row][g.plants[i].col] = i
	}
}
