package dreamland

// levelDef is a static level layout: display name, enemy placements along the
// world x axis, and the boss waiting at the right end.
type levelDef struct {
	name    string
	enemies []enemyPlacement
	boss    bossKind
}

type enemyPlacement struct {
	kind enemyKind
	x    float64
}

// levels is the fixed campaign. Placements are in world units; the boss arena
// begins past the last placement.
var levels = []levelDef{
	{
		name: "Green Greens",
		enemies: []enemyPlacement{
			{enemyWalker, 400}, {enemyWalker, 700}, {enemyFlame, 1000},
			{enemyWalker, 1400}, {enemyFrost, 1700}, {enemyWalker, 2100},
			{enemySpark, 2400}, {enemyWalker, 2800},
		},
		boss: bossWoods,
	},
	{
		name: "Castle Lololo",
		enemies: []enemyPlacement{
			{enemyWalker, 350}, {enemyFlame, 650}, {enemyKnight, 950},
			{enemyWalker, 1250}, {enemySpark, 1550}, {enemyFrost, 1850},
			{enemyWalker, 2150}, {enemyFlame, 2450}, {enemyKnight, 2750},
		},
		boss: bossKing,
	},
	{
		name: "Float Islands",
		enemies: []enemyPlacement{
			{enemySpark, 300}, {enemyWalker, 600}, {enemyFrost, 900},
			{enemyKnight, 1200}, {enemyFlame, 1500}, {enemySpark, 1800},
			{enemyWalker, 2100}, {enemyKnight, 2400}, {enemyFlame, 2700},
		},
		boss: bossKnight,
	},
	{
		name: "Bubbly Clouds",
		enemies: []enemyPlacement{
			{enemyFlame, 400}, {enemySpark, 700}, {enemyKnight, 1000},
			{enemyFrost, 1300}, {enemyFlame, 1600}, {enemySpark, 1900},
			{enemyKnight, 2200}, {enemyFlame, 2500}, {enemySpark, 2800},
		},
		boss: bossWizard,
	},
	{
		name: "Mt. Dedede",
		enemies: []enemyPlacement{
			{enemyKnight, 350}, {enemyFlame, 600}, {enemySpark, 850},
			{enemyKnight, 1100}, {enemyFrost, 1350}, {enemyFlame, 1600},
			{enemySpark, 1850}, {enemyKnight, 2100}, {enemyFlame, 2350},
			{enemySpark, 2600},
		},
		boss: bossJester,
	},
	{
		name: "Hyper Zone",
		enemies: []enemyPlacement{
			{enemyKnight, 300}, {enemyKnight, 550}, {enemyFlame, 800},
			{enemySpark, 1050}, {enemyFlame, 1300}, {enemyKnight, 1550},
			{enemySpark, 1800}, {enemyFlame, 2050}, {enemyKnight, 2300},
			{enemySpark, 2550}, {enemyFlame, 2800},
		},
		boss: bossDarkEye,
	},
}

// loadLevel resets the entity collections to a level's layout. The player
// keeps score and lives across levels but respawns at the left edge.
func (g *Game) loadLevel(index int) {
	def := &levels[index]
	g.level = index
	g.enemies = g.enemies[:0]
	g.projectiles = g.projectiles[:0]
	g.pendingProjectiles = g.pendingProjectiles[:0]
	g.particles = g.particles[:0]
	for _, pl := range def.enemies {
		g.enemies = append(g.enemies, g.newEnemy(pl.kind, pl.x))
	}
	b := g.newBoss(def.boss)
	g.boss = &b

	ability := g.player.ability
	g.resetPlayer()
	g.player.ability = ability
}
