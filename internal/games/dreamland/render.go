package dreamland

import (
	"fmt"

	"github.com/vradchenko/puff-arcade/internal/core"
)

// viewWorldWidth is the horizontal span of the camera in world units.
// Terminal cells are roughly twice as tall as wide, so the horizontal scale
// is half the vertical one.
func (g *Game) viewWorldWidth() float64 {
	return g.unitPerCellX() * float64(g.runtime.ScreenW)
}

func (g *Game) unitPerCellX() float64 {
	return g.unitPerCellY() * 0.5
}

func (g *Game) unitPerCellY() float64 {
	h := g.cfg.World.ViewHeight
	if h <= 0 {
		h = 450
	}
	return h / float64(g.runtime.ScreenH)
}

// worldToScreen projects a world point into cell coordinates. The second
// return is false when the point is off screen.
func (g *Game) worldToScreen(wx, wy float64) (int, int, bool) {
	sx := int((wx - g.camX) / g.unitPerCellX())
	sy := int(wy / g.unitPerCellY())
	if sx < 0 || sx >= g.runtime.ScreenW || sy < 0 || sy >= g.runtime.ScreenH {
		return 0, 0, false
	}
	return sx, sy, true
}

// Render implements registry.Game. Draw order is background to foreground:
// floor, particles, projectiles, enemies, boss, player, HUD.
func (g *Game) Render(dst *core.Screen) {
	floorRow := int(g.cfg.World.FloorY / g.unitPerCellY())
	for x := 0; x < dst.Width(); x++ {
		for y := floorRow + 1; y < dst.Height(); y++ {
			dst.SetColor(x, y, '#', core.ColorGreen)
		}
		dst.SetColor(x, floorRow, '=', core.ColorBrightGreen)
	}

	for i := range g.particles {
		pt := &g.particles[i]
		if sx, sy, ok := g.worldToScreen(pt.x, pt.y); ok {
			dst.SetColor(sx, sy, '.', pt.color)
		}
	}

	for i := range g.projectiles {
		pr := &g.projectiles[i]
		if pr.dead {
			continue
		}
		if sx, sy, ok := g.worldToScreen(pr.x, pr.y); ok {
			r := 'o'
			color := pr.ability.Color()
			if !pr.fromPlayer {
				r = '*'
			}
			dst.SetColor(sx, sy, r, color)
		}
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if e.dead {
			continue
		}
		if sx, sy, ok := g.worldToScreen(e.x, e.y-15); ok {
			dst.SetColor(sx, sy, enemyGlyph(e.kind), enemyColor(e.kind))
		}
	}

	if b := g.boss; b != nil && b.hp > 0 {
		g.renderBoss(dst, b)
	}

	g.renderPlayer(dst)
	g.renderHUD(dst)
}

func enemyGlyph(k enemyKind) rune {
	switch k {
	case enemyWalker:
		return 'w'
	case enemyFlame:
		return 'f'
	case enemyFrost:
		return 'I'
	case enemySpark:
		return 's'
	case enemyKnight:
		return 'K'
	default:
		return '?'
	}
}

func enemyColor(k enemyKind) core.Color {
	switch k {
	case enemyFlame:
		return core.ColorOrange
	case enemyFrost:
		return core.ColorBrightCyan
	case enemySpark:
		return core.ColorBrightYellow
	case enemyKnight:
		return core.ColorBrightWhite
	default:
		return core.ColorYellow
	}
}

// renderBoss draws the boss body as a filled block scaled to its hit box.
func (g *Game) renderBoss(dst *core.Screen, b *boss) {
	box := b.box()
	x0 := int((box.X - g.camX) / g.unitPerCellX())
	y0 := int(box.Y / g.unitPerCellY())
	x1 := int((box.X + box.W - g.camX) / g.unitPerCellX())
	y1 := int((box.Y + box.H) / g.unitPerCellY())

	color := core.ColorBrightRed
	if b.phase == 2 {
		color = core.ColorBrightMagenta
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
				dst.SetColor(x, y, '@', color)
			}
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	p := &g.player
	sx, sy, ok := g.worldToScreen(p.x, p.y-g.cfg.Player.HalfExtent)
	if !ok {
		return
	}
	// Invulnerability blink: hide on alternating short intervals.
	if p.invuln > 0 && int(p.invuln*10)%2 == 0 {
		return
	}
	body := '('
	mouth := ')'
	if p.inhaling {
		body = '<'
		mouth = '>'
	}
	color := core.ColorPink
	if p.ability != AbilityNone {
		color = p.ability.Color()
	}
	dst.SetColor(sx, sy, body, color)
	if sx+1 < dst.Width() {
		dst.SetColor(sx+1, sy, mouth, color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hearts := ""
	for i := 0; i < g.cfg.Player.MaxHP; i++ {
		if i < g.player.hp {
			hearts += "♥"
		} else {
			hearts += "♡"
		}
	}
	dst.DrawTextColor(1, 0, hearts, core.ColorBrightRed)
	dst.DrawText(1, 1, fmt.Sprintf("Score %d  Lives %d", g.score, g.lives))
	dst.DrawText(1, 2, levels[g.level].name)
	if g.player.ability != AbilityNone {
		dst.DrawTextColor(1, 3, g.player.ability.String(), g.player.ability.Color())
	} else if g.player.hasEnemy {
		dst.DrawText(1, 3, "FULL")
	}

	if b := g.boss; b != nil && b.hp > 0 {
		label := b.kind.String()
		barW := 20
		filled := b.hp * barW / b.maxHP
		bar := ""
		for i := 0; i < barW; i++ {
			if i < filled {
				bar += "█"
			} else {
				bar += "░"
			}
		}
		x := dst.Width() - barW - len(label) - 3
		if x < 0 {
			x = 0
		}
		dst.DrawText(x, 0, label)
		dst.DrawTextColor(x+len(label)+1, 0, bar, core.ColorBrightRed)
	}

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
	if g.gameOver {
		dst.DrawTextCentered(dst.Height()/2, "GAME OVER  [r] restart")
	}
	if g.won {
		dst.DrawTextCentered(dst.Height()/2, "YOU WIN!  [r] restart")
	}
}
