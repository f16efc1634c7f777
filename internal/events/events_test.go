package events

import "testing"

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe(func(c Cue) {
		switch c.(type) {
		case EnemyFired:
			got = append(got, "enemy")
		case GameOver:
			got = append(got, "over")
		}
	})
	bus.Subscribe(func(c Cue) {
		got = append(got, "second")
	})

	bus.Publish(EnemyFired{ShipID: "ship-1"})
	bus.Publish(GameOver{Score: 10})

	want := []string{"enemy", "second", "over", "second"}
	if len(got) != len(want) {
		t.Fatalf("delivered %d cues, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cue %d = %q, expected %q", i, got[i], want[i])
		}
	}
}

func TestNilBusIsSafe(t *testing.T) {
	var bus *Bus
	bus.Publish(LevelCleared{Level: 1}) // Must not panic
	bus.Subscribe(func(Cue) {})         // Must not panic
}
