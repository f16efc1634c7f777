package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := LoadStarfall("")
	if err != nil {
		t.Fatalf("LoadStarfall() failed: %v", err)
	}

	def := DefaultStarfallConfig()
	if cfg.Combat != def.Combat {
		t.Errorf("embedded combat config %+v differs from hardcoded %+v", cfg.Combat, def.Combat)
	}
	if cfg.Player != def.Player {
		t.Errorf("embedded player config %+v differs from hardcoded %+v", cfg.Player, def.Player)
	}
	if cfg.Phases != def.Phases {
		t.Errorf("embedded phase config %+v differs from hardcoded %+v", cfg.Phases, def.Phases)
	}
	if cfg.Projection != def.Projection {
		t.Errorf("embedded projection config %+v differs from hardcoded %+v", cfg.Projection, def.Projection)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("combat:\n  enemy_damage: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing custom config: %v", err)
	}

	cfg, err := LoadStarfall(path)
	if err != nil {
		t.Fatalf("LoadStarfall() failed: %v", err)
	}
	if cfg.Combat.EnemyDamage != 9 {
		t.Errorf("EnemyDamage = %d, expected 9 from custom config", cfg.Combat.EnemyDamage)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := LoadStarfall(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadStarfall() with a missing explicit path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultStarfallConfig()
	ApplyStarfallPreset(&cfg, DifficultyHard)

	if cfg.Combat.EnemyDamage != 8 {
		t.Errorf("hard preset EnemyDamage = %d, expected 8", cfg.Combat.EnemyDamage)
	}
	if cfg.Player.InitialBoost != 1 {
		t.Errorf("hard preset InitialBoost = %d, expected 1", cfg.Player.InitialBoost)
	}

	// Fixed preset keeps reference values
	cfg = DefaultStarfallConfig()
	ApplyStarfallPreset(&cfg, DifficultyFixed)
	if cfg.Combat.EnemyDamage != 5 {
		t.Errorf("fixed preset EnemyDamage = %d, expected 5", cfg.Combat.EnemyDamage)
	}

	if ParsePreset("bogus") != "" {
		t.Error("ParsePreset should map unknown strings to empty preset")
	}
}
