// Package events carries named gameplay cues from the simulation core to
// optional consumers (audio, localization, logging). The core publishes
// cues fire-and-forget; it works identically with zero subscribers.
package events

// Cue is the union of all gameplay cues. The unexported marker method keeps
// the set closed: new cue types force a compile-time update of consumers
// that switch over them.
type Cue interface {
	cue()
}

// EnemyFired is published when an enemy ship fires at the player.
type EnemyFired struct {
	ShipID string
}

func (EnemyFired) cue() {}

// PlayerFired is published when the player fires at a target.
type PlayerFired struct {
	TargetID string
}

func (PlayerFired) cue() {}

// TargetDestroyed is published after a target is removed from the field.
type TargetDestroyed struct {
	ID     string
	Kind   string
	Points int
}

func (TargetDestroyed) cue() {}

// PlayerHit is published when enemy fire damages the player.
type PlayerHit struct {
	Damage int
	Health int
}

func (PlayerHit) cue() {}

// BoostFired is published when the ultra boost destroys visible hostiles.
type BoostFired struct {
	Destroyed int
}

func (BoostFired) cue() {}

// LevelCleared is published when the last hostile on a level is destroyed.
type LevelCleared struct {
	Level int
}

func (LevelCleared) cue() {}

// LeapStarted is published when the ship begins a leap to a new galaxy.
type LeapStarted struct {
	LevelUp bool
}

func (LeapStarted) cue() {}

// GalaxyEntered is published when a new galaxy has been generated.
type GalaxyEntered struct {
	Name  string
	Level int
}

func (GalaxyEntered) cue() {}

// GameOver is published when the player's health reaches zero.
type GameOver struct {
	Score int
}

func (GameOver) cue() {}

// Bus delivers cues to subscribers in subscription order.
// A nil *Bus is valid and drops everything, so the simulation can publish
// unconditionally.
type Bus struct {
	subs []func(Cue)
}

// NewBus creates an empty cue bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe adds a cue handler. Handlers run synchronously on the
// simulation goroutine and must not block.
func (b *Bus) Subscribe(fn func(Cue)) {
	if b == nil || fn == nil {
		return
	}
	b.subs = append(b.subs, fn)
}

// Publish delivers a cue to all subscribers.
func (b *Bus) Publish(c Cue) {
	if b == nil {
		return
	}
	for _, fn := range b.subs {
		fn(c)
	}
}
