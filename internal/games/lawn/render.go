package lawn

import (
	"fmt"

	"github.com/vradchenko/puff-arcade/internal/core"
)

func (g *Game) scaleX() float64 { return worldWidth / float64(g.runtime.ScreenW) }
func (g *Game) scaleY() float64 { return worldHeight / float64(g.runtime.ScreenH) }

func (g *Game) toScreen(wx, wy float64) (int, int) {
	return int(wx / g.scaleX()), int(wy / g.scaleY())
}

// Render implements registry.Game. Draw order: lawn tiles, cursor, mowers,
// plants, suns, peas, enemies, HUD.
func (g *Game) Render(dst *core.Screen) {
	for r := 0; r < g.cfg.Grid.Rows; r++ {
		for c := 0; c < g.cfg.Grid.Cols; c++ {
			g.renderCell(dst, r, c)
		}
	}

	for i := range g.mowers {
		m := &g.mowers[i]
		if m.gone {
			continue
		}
		sx, sy := g.toScreen(m.x, g.rowCenterY(m.row))
		dst.SetColor(sx, sy, 'D', core.ColorBrightWhite)
	}

	for i := range g.plants {
		p := &g.plants[i]
		if p.dead {
			continue
		}
		def := plantStats[p.kind]
		sx, sy := g.toScreen(g.cellCenterX(p.col), g.rowCenterY(p.row))
		glyph := def.glyph
		if p.kind == plantMine && p.armed {
			glyph = '*'
		}
		dst.SetColor(sx, sy, glyph, def.color)
	}

	for i := range g.suns {
		s := &g.suns[i]
		if s.dead {
			continue
		}
		sx, sy := g.toScreen(s.x, s.y)
		dst.SetColor(sx, sy, '☼', core.ColorBrightYellow)
	}

	for i := range g.peas {
		pr := &g.peas[i]
		if pr.dead {
			continue
		}
		sx, sy := g.toScreen(pr.x, g.rowCenterY(pr.row))
		color := core.ColorBrightGreen
		if pr.slowFactor > 0 {
			color = core.ColorBrightCyan
		}
		dst.SetColor(sx, sy, '-', color)
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if e.dead {
			continue
		}
		def := enemyStats[e.kind]
		sx, sy := g.toScreen(e.x, g.rowCenterY(e.row))
		color := def.color
		if e.slowTimer > 0 {
			color = core.ColorBrightCyan
		}
		dst.SetColor(sx, sy, def.glyph, color)
	}

	g.renderHUD(dst)
}

// renderCell draws the tile border corners and the cursor highlight.
func (g *Game) renderCell(dst *core.Screen, row, col int) {
	x0, y0 := g.toScreen(g.cellLeftX(col), lawnTop+float64(row)*g.cfg.Grid.TileSize)
	x1, y1 := g.toScreen(g.cellRightX(col), lawnTop+float64(row+1)*g.cfg.Grid.TileSize)

	if row == g.cursorRow && col == g.cursorCol {
		for y := y0; y <= y1; y++ {
			dst.SetColor(x0, y, '|', core.ColorBrightWhite)
			dst.SetColor(x1, y, '|', core.ColorBrightWhite)
		}
		for x := x0; x <= x1; x++ {
			dst.SetColor(x, y0, '-', core.ColorBrightWhite)
			dst.SetColor(x, y1, '-', core.ColorBrightWhite)
		}
		return
	}
	dst.SetColor(x0, y0, '.', core.ColorGreen)
	dst.SetColor(x1, y0, '.', core.ColorGreen)
	dst.SetColor(x0, y1, '.', core.ColorGreen)
	dst.SetColor(x1, y1, '.', core.ColorGreen)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Sun %d", g.sunCount), core.ColorBrightYellow)
	dst.DrawText(1, 1, fmt.Sprintf("Score %d  Wave %d", g.score, g.director.waveNumber))

	// Seed bar: the selected card is bracketed, recharging cards dimmed.
	x := 14
	for i, card := range g.cards {
		def := plantStats[card.kind]
		label := fmt.Sprintf("%c%d", def.glyph, def.cost)
		color := def.color
		if card.recharge > 0 || g.sunCount < def.cost {
			color = core.ColorGray
		}
		if i == g.selected {
			dst.DrawText(x, 0, "[")
			dst.DrawTextColor(x+1, 0, label, color)
			dst.DrawText(x+1+len(label), 0, "]")
		} else {
			dst.DrawTextColor(x+1, 0, label, color)
		}
		x += len(label) + 3
	}

	if g.director.finalSpawned {
		dst.DrawTextColor(1, 2, "FINAL WAVE!", core.ColorBrightRed)
	}
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
	if g.gameOver {
		dst.DrawTextCentered(dst.Height()/2, "THE SHELLS GOT THROUGH  [r] restart")
	}
	if g.won {
		dst.DrawTextCentered(dst.Height()/2, "LAWN DEFENDED!  [r] restart")
	}
}
