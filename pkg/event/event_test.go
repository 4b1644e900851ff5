package event

import (
	"testing"

	"github.com/opd-ai/go-thrust/pkg/physics"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewEventBus()

	received := 0
	bus.Subscribe(PodAttached, func(e Event) {
		received++
		if e.GetType() != PodAttached {
			t.Errorf("handler saw type %s, want %s", e.GetType(), PodAttached)
		}
	})
	bus.Subscribe(PodAttached, func(Event) { received++ })

	bus.Publish(NewPodEvent(PodAttached, nil,
		physics.Vector2D{X: 1, Y: 2}, physics.Vector2D{X: 3, Y: 4}))

	if received != 2 {
		t.Errorf("event reached %d handlers, want 2", received)
	}
}

func TestBus_UnrelatedTypesDoNotFire(t *testing.T) {
	bus := NewEventBus()

	fired := false
	bus.Subscribe(PodDetached, func(Event) { fired = true })

	bus.Publish(&BaseEvent{EventType: MotionReset})

	if fired {
		t.Errorf("handler fired for an unsubscribed event type")
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	// Must not panic.
	bus.Publish(NewLevelEvent(nil, 0, 3))
}

func TestPodEvent_CarriesPositions(t *testing.T) {
	ev := NewPodEvent(PodDetached, "engine",
		physics.Vector2D{X: 7, Y: 8}, physics.Vector2D{X: 9, Y: 10})

	if ev.GetType() != PodDetached {
		t.Errorf("type = %s, want %s", ev.GetType(), PodDetached)
	}
	if ev.GetSource() != "engine" {
		t.Errorf("source = %v, want engine", ev.GetSource())
	}
	if ev.ShipPos.X != 7 || ev.PodPos.Y != 10 {
		t.Errorf("positions not preserved: ship (%f,%f), pod (%f,%f)",
			ev.ShipPos.X, ev.ShipPos.Y, ev.PodPos.X, ev.PodPos.Y)
	}
}

func TestLevelEvent_CarriesLevels(t *testing.T) {
	ev := NewLevelEvent(nil, 2, 5)
	if ev.OldLevel != 2 || ev.NewLevel != 5 {
		t.Errorf("levels = %d->%d, want 2->5", ev.OldLevel, ev.NewLevel)
	}
	if ev.GetType() != LevelChanged {
		t.Errorf("type = %s, want %s", ev.GetType(), LevelChanged)
	}
}
