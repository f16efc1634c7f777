package starfall

import (
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/events"
)

// clickRadiusPx is the hit slop around small targets, in virtual pixels.
// One terminal cell maps to roughly 20x50 virtual pixels, so targets need
// a generous halo to be clickable at all.
const clickRadiusPx = 40.0

// fireOnTarget starts a player shot at the given entity. Only valid from
// Idle and only against a currently visible target.
func (g *Game) fireOnTarget(id string) {
	if g.phase != PhaseIdle {
		return
	}
	o := g.find(id)
	if o == nil {
		return
	}
	pt, ok := g.proj.Project(o.Lon, o.Lat)
	if !ok || !g.proj.Visible(pt) {
		return
	}

	g.phase = PhaseFiring
	g.effects.addLaser(g.playerPos(), pt, g.laserColor(), false, g.tick+g.ticksFor(laserLifeMs))
	g.bus.Publish(events.PlayerFired{TargetID: id})
	g.schedule(g.params.Combat.FireResolveMs, evResolveFire, id)
	g.schedule(g.params.Combat.FireRecoverMs, evReturnIdle, "")
}

// resolvePlayerFire lands a shot that was fired FireResolveMs ago.
// A target that no longer exists, or that rotated onto the back hemisphere
// while the shot traveled, makes the shot a silent miss.
func (g *Game) resolvePlayerFire(id string) {
	if g.phase != PhaseFiring {
		return
	}
	o := g.find(id)
	if o == nil {
		return
	}
	pt, ok := g.proj.Project(o.Lon, o.Lat)
	if !ok {
		return
	}
	g.destroy(*o, pt)
}

// finishFiring returns to Idle after the firing recovery window and runs
// the auto-leap check, so clearing the last hostile chains straight into a
// leap.
func (g *Game) finishFiring() {
	if g.phase != PhaseFiring {
		return
	}
	g.phase = PhaseIdle
	g.checkAutoLeap()
}

// fireUltraBoost consumes a charge and destroys every currently visible
// hostile in a staggered sequence. The charge is spent even when nothing is
// in view.
func (g *Game) fireUltraBoost() {
	if g.phase != PhaseIdle || g.player.Boost <= 0 {
		return
	}

	var targets []string
	for i := range g.objects {
		o := &g.objects[i]
		if o.Kind != KindShip {
			continue
		}
		pt, ok := g.proj.Project(o.Lon, o.Lat)
		if ok && g.proj.Visible(pt) {
			targets = append(targets, o.ID)
		}
	}

	g.player.Boost--
	g.phase = PhaseFiring
	stagger := g.params.Combat.BoostStaggerMs
	for i, id := range targets {
		g.schedule(stagger*(i+1), evBoostBlast, id)
	}
	g.schedule(g.params.Combat.FireRecoverMs+stagger*len(targets), evReturnIdle, "")
	g.bus.Publish(events.BoostFired{Destroyed: len(targets)})
}

// resolveBoostBlast lands one staggered boost destruction. Same miss rules
// as a regular shot.
func (g *Game) resolveBoostBlast(id string) {
	if g.phase != PhaseFiring {
		return
	}
	o := g.find(id)
	if o == nil {
		return
	}
	pt, ok := g.proj.Project(o.Lon, o.Lat)
	if !ok {
		return
	}
	g.destroy(*o, pt)
}

// destroy removes a target and applies its reward: score for ships, health
// for hearts, charges for boost stars. Stars and asteroids just explode.
func (g *Game) destroy(o Object, at core.Vec2) {
	g.removeObject(o.ID)

	pts := o.Points()
	switch o.Kind {
	case KindShip:
		g.player.Score += pts
		if g.player.Score > g.player.HighScore {
			g.player.HighScore = g.player.Score
		}
	case KindHeart:
		g.player.Health = core.Min(g.player.Health+g.params.Player.HeartReward, g.params.Player.MaxHealth)
	case KindBoost:
		g.player.Boost += g.params.Player.BoostReward
	}

	g.effects.addExplosion(g.rng, at, o.BlastRadius(), g.tick, g.ticksFor(explosionLifeMs))
	g.bus.Publish(events.TargetDestroyed{ID: o.ID, Kind: o.Kind.String(), Points: pts})

	if o.Kind == KindShip && g.shipCount() == 0 {
		g.bus.Publish(events.LevelCleared{Level: g.player.Level})
	}
}

// stepAutoAim runs the auto-aim cadence while idle. When the countdown
// expires it fires at the visible hostile nearest to the player's cannon.
func (g *Game) stepAutoAim() {
	if !g.autoAim {
		g.aimCooldown = 0
		return
	}
	if g.aimCooldown == 0 {
		g.aimCooldown = g.ticksFor(g.params.Combat.AutoAimPeriodMs)
		return
	}
	g.aimCooldown--
	if g.aimCooldown > 0 {
		return
	}

	best := ""
	bestDist := 0.0
	origin := g.playerPos()
	for i := range g.objects {
		o := &g.objects[i]
		if o.Kind != KindShip {
			continue
		}
		pt, ok := g.proj.Project(o.Lon, o.Lat)
		if !ok || !g.proj.Visible(pt) {
			continue
		}
		d := origin.Dist(pt)
		if best == "" || d < bestDist {
			best = o.ID
			bestDist = d
		}
	}
	if best != "" {
		g.fireOnTarget(best)
	}
}

// enemyPeriodMs returns the current return-fire cadence: faster with more
// hostiles alive, never below the configured floor.
func (g *Game) enemyPeriodMs() int {
	period := g.params.Combat.EnemyBasePeriodMs - g.params.Combat.EnemyStepMs*g.shipCount()
	return core.Max(period, g.params.Combat.EnemyMinPeriodMs)
}

// stepEnemyFire runs the return-fire cadence. It only advances while idle,
// so pauses and leaps freeze the countdown without dropping it.
func (g *Game) stepEnemyFire() {
	if g.enemyCooldown == 0 {
		g.enemyCooldown = g.ticksFor(g.enemyPeriodMs())
		return
	}
	g.enemyCooldown--
	if g.enemyCooldown > 0 {
		return
	}
	g.fireEnemyShot()
}

// fireEnemyShot picks a random visible hostile to shoot at the player.
// The hit lands after the travel delay; with no hostile in view the volley
// is skipped and the cadence re-arms.
func (g *Game) fireEnemyShot() {
	var visible []*Object
	for i := range g.objects {
		o := &g.objects[i]
		if o.Kind != KindShip {
			continue
		}
		pt, ok := g.proj.Project(o.Lon, o.Lat)
		if ok && g.proj.Visible(pt) {
			visible = append(visible, o)
		}
	}
	if len(visible) == 0 {
		return
	}

	shooter := visible[g.rng.Intn(len(visible))]
	pt, _ := g.proj.Project(shooter.Lon, shooter.Lat)
	g.effects.addLaser(pt, g.playerPos(), core.ColorRed, true, g.tick+g.ticksFor(g.params.Combat.EnemyTravelMs))
	g.bus.Publish(events.EnemyFired{ShipID: shooter.ID})
	g.schedule(g.params.Combat.EnemyTravelMs, evEnemyHit, shooter.ID)
}

// applyEnemyHit lands an enemy shot that finished its travel time.
// A leap or regeneration that started while the shot was in flight voids
// the hit; pausing does not.
func (g *Game) applyEnemyHit(shipID string) {
	switch g.phase {
	case PhaseLeaping, PhaseGenerating, PhaseGameOver:
		return
	}

	dmg := g.params.Combat.EnemyDamage
	g.player.Health = core.Max(g.player.Health-dmg, 0)
	g.bus.Publish(events.PlayerHit{Damage: dmg, Health: g.player.Health})

	if g.player.Health == 0 {
		g.enterGameOver()
	}
}

// handleClick resolves a pointer click in screen cells to the nearest
// visible target and fires at it.
func (g *Game) handleClick(cellX, cellY int) {
	pt, ok := g.cellToVirtual(cellX, cellY)
	if !ok {
		return
	}

	best := ""
	bestDist := 0.0
	for i := range g.objects {
		o := &g.objects[i]
		opt, vis := g.proj.Project(o.Lon, o.Lat)
		if !vis || !g.proj.Visible(opt) {
			continue
		}
		d := pt.Dist(opt)
		if d > o.Size+clickRadiusPx {
			continue
		}
		if best == "" || d < bestDist {
			best = o.ID
			bestDist = d
		}
	}
	if best != "" {
		g.fireOnTarget(best)
	}
}
