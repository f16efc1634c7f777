package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the hardcoded reference configuration.
// Values mirror defaults/starfall.yaml.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		Player: PlayerConfig{
			MaxHealth:    100,
			HeartReward:  10,
			BoostReward:  1,
			InitialBoost: 3,
		},
		Combat: CombatConfig{
			FireResolveMs:     200,
			FireRecoverMs:     500,
			BoostStaggerMs:    50,
			AutoAimPeriodMs:   750,
			EnemyDamage:       5,
			EnemyTravelMs:     1000,
			EnemyBasePeriodMs: 2500,
			EnemyStepMs:       50,
			EnemyMinPeriodMs:  700,
		},
		Phases: PhaseConfig{
			LeapMinMs:  1500,
			LeapMaxMs:  2000,
			GenerateMs: 500,
		},
		Projection: ProjectionConfig{
			MinScale:     100,
			MaxScale:     2000,
			InitialScale: 600,
			ZoomStep:     50,
			DriftPerTick: 0.015,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultStarfallYAML
}
