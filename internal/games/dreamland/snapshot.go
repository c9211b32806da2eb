package dreamland

// snapshot is a compact view of the authoritative state, comparable with ==.
// Used by determinism tests: two games with the same seed and input script
// must produce identical snapshots tick for tick.
type snapshot struct {
	PlayerX, PlayerY float64
	VX, VY           float64
	HP, Lives        int
	Score            int
	Level            int
	Ability          Ability
	Enemies          int
	Projectiles      int
	BossHP           int
}

func (g *Game) snapshot() snapshot {
	s := snapshot{
		PlayerX:     g.player.x,
		PlayerY:     g.player.y,
		VX:          g.player.vx,
		VY:          g.player.vy,
		HP:          g.player.hp,
		Lives:       g.lives,
		Score:       g.score,
		Level:       g.level,
		Ability:     g.player.ability,
		Enemies:     len(g.enemies),
		Projectiles: len(g.projectiles),
	}
	if g.boss != nil {
		s.BossHP = g.boss.hp
	}
	return s
}
