package config

import (
	_ "embed"
)

//go:embed defaults/dreamland.yaml
var defaultDreamlandYAML []byte

//go:embed defaults/lawn.yaml
var defaultLawnYAML []byte

// DefaultDreamlandConfig returns the default Dreamland configuration.
func DefaultDreamlandConfig() DreamlandConfig {
	return DreamlandConfig{
		World: DreamlandWorld{
			LevelLength: 3600,
			FloorY:      400,
			ViewHeight:  500,
		},
		Physics: DreamlandPhysics{
			Gravity:        1500,
			FallMultiplier: 1.5,
			RiseMultiplier: 2.5,
			JumpVelocity:   -480,
			MaxSpeed:       200,
			Accel:          1400,
			Friction:       7.0,
		},
		Player: DreamlandPlayer{
			MaxHP:         6,
			Lives:         3,
			HurtInvuln:    1.5,
			AbilityCD:     0.5,
			InhaleRange:   120,
			SwallowRange:  30,
			InhalePull:    300,
			HalfExtent:    22,
			ScreenXOffset: 100,
		},
		Combat: DreamlandCombat{
			BossHitCD:      0.5,
			ScoreCapture:   100,
			ScoreKill:      200,
			ScoreBossTouch: 500,
			ScoreBossHit:   100,
			ScoreBossKill:  5000,
		},
	}
}

// DefaultLawnConfig returns the default Lawn configuration.
func DefaultLawnConfig() LawnConfig {
	return LawnConfig{
		Grid: LawnGrid{
			Rows:     5,
			Cols:     9,
			TileSize: 80,
		},
		Waves: LawnWaves{
			Duration:       120,
			FirstSpawn:     2.0,
			BaseInterval:   2.0,
			MinInterval:    0.8,
			IntervalScale:  1.2,
			BaseWaveCap:    10,
			WaveCapStep:    5,
			MaxWaveCap:     30,
			WaveBreather:   5.0,
			FinalWaveCount: 14,
		},
		Sun: LawnSun{
			Starting:    50,
			SunValue:    25,
			SkyInterval: 8.0,
		},
		Mower: LawnMower{
			Speed: 420,
		},
	}
}
