package starfall

// eventKind identifies what a scheduled event does when it fires.
type eventKind int

const (
	evResolveFire  eventKind = iota // Player shot reaches its target
	evReturnIdle                    // Firing phase ends
	evBoostBlast                    // One staggered boost destruction
	evEnemyHit                      // Enemy shot reaches the player
	evLeapDone                      // Leap travel completes
	evGenerateDone                  // Generation hold completes
)

// scheduledEvent is a one-shot timer measured in simulation ticks.
// Handlers re-validate the current phase when the event fires, so a phase
// change between arming and firing downgrades the event instead of
// corrupting state. The arming phase is recorded for the snapshot.
type scheduledEvent struct {
	due    uint64
	kind   eventKind
	armed  Phase
	target string // Entity ID for fire events, empty otherwise
}

// ticksFor converts wall-clock milliseconds to simulation ticks at the
// configured tick rate, never rounding below one tick.
func (g *Game) ticksFor(ms int) uint64 {
	t := uint64(ms * g.cfg.TickRate / 1000)
	if t < 1 {
		t = 1
	}
	return t
}

// schedule arms a one-shot event delayMs from now.
func (g *Game) schedule(delayMs int, kind eventKind, target string) {
	g.pending = append(g.pending, scheduledEvent{
		due:    g.tick + g.ticksFor(delayMs),
		kind:   kind,
		armed:  g.phase,
		target: target,
	})
}

// runDue fires all events that have come due. Pending one-shots keep
// running through every phase, including Paused: a shot already in flight
// still resolves. The handlers decide what the event means in the current
// phase.
//
// Due events are collected before dispatching because handlers may arm new
// events (a full clear chains straight into a leap).
func (g *Game) runDue() {
	if len(g.pending) == 0 {
		return
	}

	var due []scheduledEvent
	n := 0
	for _, ev := range g.pending {
		if ev.due > g.tick {
			g.pending[n] = ev
			n++
			continue
		}
		due = append(due, ev)
	}
	g.pending = g.pending[:n]

	for _, ev := range due {
		g.dispatch(ev)
	}
}

// dispatch routes a due event to its handler.
func (g *Game) dispatch(ev scheduledEvent) {
	switch ev.kind {
	case evResolveFire:
		g.resolvePlayerFire(ev.target)
	case evReturnIdle:
		g.finishFiring()
	case evBoostBlast:
		g.resolveBoostBlast(ev.target)
	case evEnemyHit:
		g.applyEnemyHit(ev.target)
	case evLeapDone:
		g.finishLeap()
	case evGenerateDone:
		g.finishGenerating()
	}
}

// clearPending drops all armed events. Used on restart.
func (g *Game) clearPending() {
	g.pending = g.pending[:0]
}
