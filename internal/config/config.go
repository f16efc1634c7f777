// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for the starfall platform.
package config

// StarfallConfig contains all tunable gameplay parameters.
// The defaults reproduce the reference gameplay exactly; presets adjust a
// small subset (see ApplyStarfallPreset).
type StarfallConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Combat     CombatConfig     `yaml:"combat"`
	Phases     PhaseConfig      `yaml:"phases"`
	Projection ProjectionConfig `yaml:"projection"`
}

// PlayerConfig defines player resource parameters.
type PlayerConfig struct {
	MaxHealth    int `yaml:"max_health"`    // Health ceiling and restart value
	HeartReward  int `yaml:"heart_reward"`  // Health restored per heart star
	BoostReward  int `yaml:"boost_reward"`  // Charges granted per boost star
	InitialBoost int `yaml:"initial_boost"` // Ultra boost charges at game start
}

// CombatConfig defines fire timing and enemy behavior.
// All durations are wall-clock milliseconds; the simulation converts them
// to ticks at the configured tick rate.
type CombatConfig struct {
	FireResolveMs     int `yaml:"fire_resolve_ms"`      // Laser travel before destruction
	FireRecoverMs     int `yaml:"fire_recover_ms"`      // Full firing phase duration
	BoostStaggerMs    int `yaml:"boost_stagger_ms"`     // Delay between boost destructions
	AutoAimPeriodMs   int `yaml:"auto_aim_period_ms"`   // Auto-aim fire cadence
	EnemyDamage       int `yaml:"enemy_damage"`         // Health lost per enemy hit
	EnemyTravelMs     int `yaml:"enemy_travel_ms"`      // Enemy shot flight time
	EnemyBasePeriodMs int `yaml:"enemy_base_period_ms"` // Cadence at zero hostiles
	EnemyStepMs       int `yaml:"enemy_step_ms"`        // Cadence reduction per hostile
	EnemyMinPeriodMs  int `yaml:"enemy_min_period_ms"`  // Cadence floor
}

// PhaseConfig defines phase transition timing.
type PhaseConfig struct {
	LeapMinMs  int `yaml:"leap_min_ms"`  // Minimum leap duration
	LeapMaxMs  int `yaml:"leap_max_ms"`  // Maximum leap duration
	GenerateMs int `yaml:"generate_ms"`  // Hold in generating before idle
}

// ProjectionConfig defines the starfield projection parameters.
type ProjectionConfig struct {
	MinScale     float64 `yaml:"min_scale"`      // Zoom-out limit (virtual px)
	MaxScale     float64 `yaml:"max_scale"`      // Zoom-in limit (virtual px)
	InitialScale float64 `yaml:"initial_scale"`  // Starting radius (virtual px)
	ZoomStep     float64 `yaml:"zoom_step"`      // Scale change per zoom action
	DriftPerTick float64 `yaml:"drift_per_tick"` // Ambient rotation, degrees/tick at 60 Hz
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}

// ApplyStarfallPreset adjusts enemy aggression for a difficulty preset.
// The mk2 ship tier remains the primary difficulty knob; presets only scale
// return-fire pressure. Fixed (and normal) keep the reference values.
func ApplyStarfallPreset(cfg *StarfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Combat.EnemyDamage = 3
		cfg.Combat.EnemyBasePeriodMs = 3200
		cfg.Player.InitialBoost = 5
	case DifficultyHard:
		cfg.Combat.EnemyDamage = 8
		cfg.Combat.EnemyBasePeriodMs = 2000
		cfg.Player.InitialBoost = 1
	}
}
