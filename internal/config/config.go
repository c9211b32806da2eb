// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// DreamlandConfig contains all configuration for the Dreamland platformer.
type DreamlandConfig struct {
	World   DreamlandWorld   `yaml:"world"`
	Physics DreamlandPhysics `yaml:"physics"`
	Player  DreamlandPlayer  `yaml:"player"`
	Combat  DreamlandCombat  `yaml:"combat"`
}

// DreamlandWorld defines the side-scrolling world dimensions in world units.
type DreamlandWorld struct {
	LevelLength float64 `yaml:"level_length"`
	FloorY      float64 `yaml:"floor_y"`
	ViewHeight  float64 `yaml:"view_height"`
}

// DreamlandPhysics defines player movement integration parameters.
type DreamlandPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	FallMultiplier float64 `yaml:"fall_multiplier"` // Extra gravity while falling
	RiseMultiplier float64 `yaml:"rise_multiplier"` // Extra gravity rising without jump held
	JumpVelocity   float64 `yaml:"jump_velocity"`   // Negative = upward
	MaxSpeed       float64 `yaml:"max_speed"`
	Accel          float64 `yaml:"accel"`
	Friction       float64 `yaml:"friction"` // Per-second decay factor when no direction held
}

// DreamlandPlayer defines player resource and inhale parameters.
type DreamlandPlayer struct {
	MaxHP         int     `yaml:"max_hp"`
	Lives         int     `yaml:"lives"`
	HurtInvuln    float64 `yaml:"hurt_invuln"`    // Invulnerability window after taking a hit
	AbilityCD     float64 `yaml:"ability_cd"`     // Cooldown between ability uses
	InhaleRange   float64 `yaml:"inhale_range"`   // Pull radius while inhaling
	SwallowRange  float64 `yaml:"swallow_range"`  // Capture radius
	InhalePull    float64 `yaml:"inhale_pull"`    // Pull speed toward the player
	HalfExtent    float64 `yaml:"half_extent"`    // Half the player AABB edge
	ScreenXOffset float64 `yaml:"screen_x_offset"`
}

// DreamlandCombat defines scoring and boss gating values.
type DreamlandCombat struct {
	BossHitCD      float64 `yaml:"boss_hit_cd"`      // Minimum time between boss damage events
	ScoreCapture   int     `yaml:"score_capture"`    // Swallowing an enemy
	ScoreKill      int     `yaml:"score_kill"`       // Projectile kill
	ScoreBossTouch int     `yaml:"score_boss_touch"` // Contact trade with the boss
	ScoreBossHit   int     `yaml:"score_boss_hit"`   // Projectile hit on the boss
	ScoreBossKill  int     `yaml:"score_boss_kill"`  // Boss defeated
}

// LawnConfig contains all configuration for the Lawn tower-defense game.
type LawnConfig struct {
	Grid  LawnGrid  `yaml:"grid"`
	Waves LawnWaves `yaml:"waves"`
	Sun   LawnSun   `yaml:"sun"`
	Mower LawnMower `yaml:"mower"`
}

// LawnGrid defines the defended lawn in world units.
type LawnGrid struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	TileSize float64 `yaml:"tile_size"`
}

// LawnWaves defines the timed wave spawner.
type LawnWaves struct {
	Duration       float64 `yaml:"duration"`         // Time to full difficulty and final wave
	FirstSpawn     float64 `yaml:"first_spawn"`      // Delay before the first enemy
	BaseInterval   float64 `yaml:"base_interval"`    // Spawn interval at zero difficulty
	MinInterval    float64 `yaml:"min_interval"`     // Spawn interval floor
	IntervalScale  float64 `yaml:"interval_scale"`   // Interval reduction at full difficulty
	BaseWaveCap    int     `yaml:"base_wave_cap"`    // Enemies in wave 1
	WaveCapStep    int     `yaml:"wave_cap_step"`    // Cap increase per wave
	MaxWaveCap     int     `yaml:"max_wave_cap"`     // Hard cap on enemies per wave
	WaveBreather   float64 `yaml:"wave_breather"`    // Pause after a wave clears
	FinalWaveCount int     `yaml:"final_wave_count"` // Saturation wave size
}

// LawnSun defines the sun economy.
type LawnSun struct {
	Starting    int     `yaml:"starting"`
	SunValue    int     `yaml:"sun_value"`
	SkyInterval float64 `yaml:"sky_interval"`
}

// LawnMower defines the one-shot lane mowers.
type LawnMower struct {
	Speed float64 `yaml:"speed"`
}
