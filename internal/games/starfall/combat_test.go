package starfall

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

func TestDestroyScoring(t *testing.T) {
	tests := []struct {
		name   string
		class  ShipClass
		tier   Tier
		points int
	}{
		{"fighter", ClassFighter, TierBase, 10},
		{"fighter mk2", ClassFighter, TierMk2, 20},
		{"interceptor", ClassInterceptor, TierBase, 15},
		{"cruiser mk2", ClassCruiser, TierMk2, 50},
		{"bomber", ClassBomber, TierBase, 50},
		{"dreadnought", ClassDreadnought, TierBase, 100},
		{"dreadnought mk2", ClassDreadnought, TierMk2, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			advanceToIdle(t, g)

			ship := Object{ID: "target", Kind: KindShip, Class: tt.class, Tier: tt.tier, Size: 10}
			g.objects = []Object{ship}
			before := g.player.Score

			g.destroy(ship, g.proj.Center())

			if got := g.player.Score - before; got != tt.points {
				t.Errorf("destroying a %s scored %d, expected %d", tt.name, got, tt.points)
			}
			if len(g.objects) != 0 {
				t.Error("destroyed ship should be removed from the field")
			}
		})
	}
}

func TestDestroyUpdatesHighScore(t *testing.T) {
	g := newTestGame(t, 1)
	advanceToIdle(t, g)
	g.player.HighScore = 15

	ship := Object{ID: "target", Kind: KindShip, Class: ClassCruiser, Size: 12}
	g.objects = []Object{ship}
	g.destroy(ship, g.proj.Center())

	if g.player.HighScore != 25 {
		t.Errorf("HighScore = %d after beating it, expected 25", g.player.HighScore)
	}
}

func TestHeartClampsHealth(t *testing.T) {
	g := newTestGame(t, 1)
	advanceToIdle(t, g)

	heart := Object{ID: "h", Kind: KindHeart, Size: 6}
	g.objects = []Object{heart}
	g.player.Health = 95
	g.destroy(heart, g.proj.Center())
	if g.player.Health != 100 {
		t.Errorf("Health = %d after heart at 95, expected clamp to 100", g.player.Health)
	}

	heart2 := Object{ID: "h2", Kind: KindHeart, Size: 6}
	g.objects = []Object{heart2}
	g.player.Health = 50
	g.destroy(heart2, g.proj.Center())
	if g.player.Health != 60 {
		t.Errorf("Health = %d after heart at 50, expected 60", g.player.Health)
	}
}

func TestBoostStarGrantsCharge(t *testing.T) {
	g := newTestGame(t, 1)
	advanceToIdle(t, g)

	star := Object{ID: "b", Kind: KindBoost, Size: 6}
	g.objects = []Object{star}
	before := g.player.Boost
	g.destroy(star, g.proj.Center())
	if g.player.Boost != before+1 {
		t.Errorf("Boost = %d after boost star, expected %d", g.player.Boost, before+1)
	}
	if g.player.Score != 0 {
		t.Error("boost stars should not score")
	}
}

func TestFireResolvesAndRecovers(t *testing.T) {
	g := newTestGame(t, 7)
	advanceToIdle(t, g)
	g.objects = []Object{
		{ID: "hostile-1", Kind: KindShip, Class: ClassFighter, Size: 10, Lon: 2, Lat: 1},
		{ID: "rock-1", Kind: KindAsteroid, Size: 5, Lon: -20, Lat: 5},
	}

	g.fireOnTarget("hostile-1")
	if g.Phase() != PhaseFiring {
		t.Fatalf("phase = %v after firing, expected Firing", g.Phase())
	}

	// 200ms at 60 ticks/s: the shot lands on tick 12.
	stepN(g, 12)
	if g.find("hostile-1") != nil {
		t.Error("target should be destroyed once the shot lands")
	}
	if g.player.Score != 10 {
		t.Errorf("Score = %d after the kill, expected 10", g.player.Score)
	}
	if g.Phase() != PhaseFiring {
		t.Error("firing phase should hold through the recovery window")
	}

	// Recovery ends at 500ms, but with no hostiles left in a populated
	// galaxy the game chains straight into a leap.
	stepN(g, 18)
	if g.Phase() != PhaseLeaping {
		t.Errorf("phase = %v after recovery with a cleared field, expected Leaping", g.Phase())
	}
}

func TestFireRequiresIdleAndVisible(t *testing.T) {
	g := newTestGame(t, 7)
	advanceToIdle(t, g)
	g.objects = []Object{
		{ID: "front", Kind: KindShip, Class: ClassFighter, Size: 10, Lon: 0, Lat: 0},
		{ID: "behind", Kind: KindShip, Class: ClassFighter, Size: 10, Lon: 180, Lat: 0},
	}

	g.fireOnTarget("behind")
	if g.Phase() != PhaseIdle {
		t.Error("firing at a back-hemisphere target should be rejected")
	}

	g.fireOnTarget("front")
	if g.Phase() != PhaseFiring {
		t.Fatal("firing at a visible target should start a shot")
	}

	// A second shot while one is in flight is ignored.
	g.fireOnTarget("behind")
	pendingFires := 0
	for _, ev := range g.pending {
		if ev.kind == evResolveFire {
			pendingFires++
		}
	}
	if pendingFires != 1 {
		t.Errorf("%d shots in flight, expected 1", pendingFires)
	}
}

func TestUltraBoost(t *testing.T) {
	g := newTestGame(t, 9)
	advanceToIdle(t, g)
	g.objects = []Object{
		{ID: "v1", Kind: KindShip, Class: ClassFighter, Size: 10, Lon: 0, Lat: 0},
		{ID: "v2", Kind: KindShip, Class: ClassFighter, Size: 10, Lon: 10, Lat: 5},
		{ID: "v3", Kind: KindShip, Class: ClassFighter, Size: 10, Lon: -10, Lat: -5},
		{ID: "hidden", Kind: KindShip, Class: ClassFighter, Size: 10, Lon: 180, Lat: 0},
	}
	g.player.Boost = 2

	in := core.NewInputFrame()
	in.Set(core.ActionBoost)
	g.Step(in)

	if g.Phase() != PhaseFiring {
		t.Fatalf("phase = %v after boost, expected Firing", g.Phase())
	}
	if g.player.Boost != 1 {
		t.Errorf("Boost = %d after firing, expected 1 charge left", g.player.Boost)
	}

	// Recovery: 500ms plus 50ms per destroyed hostile.
	stepN(g, g.cfg.TickRate)
	if g.player.Score != 30 {
		t.Errorf("Score = %d after boosting 3 fighters, expected 30", g.player.Score)
	}
	if g.find("hidden") == nil {
		t.Error("back-hemisphere hostile should survive the boost")
	}
	if g.Phase() != PhaseIdle {
		t.Errorf("phase = %v after boost recovery, expected Idle", g.Phase())
	}
}

func TestUltraBoostNeedsCharges(t *testing.T) {
	g := newTestGame(t, 9)
	advanceToIdle(t, g)
	g.player.Boost = 0

	in := core.NewInputFrame()
	in.Set(core.ActionBoost)
	g.Step(in)

	if g.Phase() == PhaseFiring {
		t.Error("boost without charges should be a no-op")
	}
}

func TestEnemyHitSuppression(t *testing.T) {
	tests := []struct {
		phase  Phase
		health int
	}{
		{PhaseLeaping, 100},    // Voided mid-leap
		{PhaseGenerating, 100}, // Voided during regeneration
		{PhaseIdle, 95},
		{PhaseFiring, 95},
		{PhasePaused, 95},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			g := newTestGame(t, 3)
			advanceToIdle(t, g)
			g.phase = tt.phase
			g.applyEnemyHit("ship-0")
			if g.player.Health != tt.health {
				t.Errorf("Health = %d after a hit in %v, expected %d",
					g.player.Health, tt.phase, tt.health)
			}
		})
	}
}

func TestEnemyHitsEndTheRun(t *testing.T) {
	g := newTestGame(t, 3)
	advanceToIdle(t, g)

	// 20 hits at 5 damage drain exactly 100 health.
	for i := 0; i < 20; i++ {
		if g.Phase() == PhaseGameOver {
			t.Fatalf("run ended early after %d hits", i)
		}
		g.applyEnemyHit("ship-0")
	}

	if g.player.Health != 0 {
		t.Errorf("Health = %d after 20 hits, expected 0", g.player.Health)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %v at zero health, expected GameOver", g.Phase())
	}

	// Further hits are no-ops.
	g.applyEnemyHit("ship-0")
	if g.player.Health != 0 {
		t.Error("hits after game over should not underflow health")
	}
}

func TestEnemyPeriodScalesWithHostiles(t *testing.T) {
	g := newTestGame(t, 3)
	advanceToIdle(t, g)

	setShips := func(n int) {
		g.objects = nil
		for i := 0; i < n; i++ {
			g.objects = append(g.objects, Object{ID: string(rune('a' + i)), Kind: KindShip, Size: 10})
		}
	}

	setShips(0)
	if got := g.enemyPeriodMs(); got != 2500 {
		t.Errorf("period with no hostiles = %d, expected 2500", got)
	}
	setShips(10)
	if got := g.enemyPeriodMs(); got != 2000 {
		t.Errorf("period with 10 hostiles = %d, expected 2000", got)
	}
	// 40 hostiles would push below the floor.
	setShips(40)
	if got := g.enemyPeriodMs(); got != 700 {
		t.Errorf("period with 40 hostiles = %d, expected floor 700", got)
	}
}

func TestEnemyFireArmsAndShoots(t *testing.T) {
	g := newTestGame(t, 5)
	advanceToIdle(t, g)
	g.objects = []Object{{ID: "shooter", Kind: KindShip, Class: ClassCruiser, Size: 12, Lon: 5, Lat: 5}}
	g.enemyCooldown = 2

	stepN(g, 2)
	if !hasPending(g, evEnemyHit) {
		t.Fatal("enemy shot should be in flight once the cadence expires")
	}

	// The hit lands after 1000ms of travel.
	stepN(g, g.cfg.TickRate)
	if g.player.Health != 95 {
		t.Errorf("Health = %d after the shot lands, expected 95", g.player.Health)
	}
}

func TestZenModeNeverReturnsFire(t *testing.T) {
	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})
	advanceToIdle(t, g)
	g.objects = []Object{{ID: "shooter", Kind: KindShip, Class: ClassCruiser, Size: 12, Lon: 5, Lat: 5}}
	g.enemyCooldown = 2

	stepN(g, 10)
	if hasPending(g, evEnemyHit) {
		t.Error("zen hostiles should never fire")
	}
	if g.player.Health != 100 {
		t.Errorf("Health = %d in zen mode, expected untouched 100", g.player.Health)
	}
}

func TestAutoAimFiresAtNearestHostile(t *testing.T) {
	g := newTestGame(t, 11)
	advanceToIdle(t, g)
	g.objects = []Object{
		// Lower latitude sits closer to the bottom-center cannon.
		{ID: "near", Kind: KindShip, Class: ClassFighter, Size: 10, Lon: 0, Lat: -30},
		{ID: "far", Kind: KindShip, Class: ClassFighter, Size: 10, Lon: 0, Lat: 60},
	}

	in := core.NewInputFrame()
	in.Set(core.ActionAutoAim)
	g.Step(in)
	if !g.Snapshot().AutoAim {
		t.Fatal("auto-aim toggle should enable")
	}

	// One full cadence: 750ms arms plus counts down.
	stepN(g, g.cfg.TickRate)
	if g.find("near") != nil {
		t.Error("auto-aim should have destroyed the nearest hostile")
	}
	if g.find("far") == nil {
		t.Error("auto-aim should only fire at one target per cycle")
	}
}
