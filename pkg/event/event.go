// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-thrust/pkg/physics"
)

// Type represents the type of event
type Type string

// Common event types
const (
	PodAttached  Type = "pod_attached"
	PodDetached  Type = "pod_detached"
	LevelChanged Type = "level_changed"
	MotionReset  Type = "motion_reset"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// PodEvent carries the derived body positions at the moment a pod was
// captured or released.
type PodEvent struct {
	BaseEvent
	ShipPos physics.Vector2D
	PodPos  physics.Vector2D
}

// NewPodEvent creates a new pod attach/detach event
func NewPodEvent(eventType Type, source interface{}, shipPos, podPos physics.Vector2D) *PodEvent {
	return &PodEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ShipPos: shipPos,
		PodPos:  podPos,
	}
}

// LevelEvent reports a gravity-level change
type LevelEvent struct {
	BaseEvent
	OldLevel int
	NewLevel int
}

// NewLevelEvent creates a new level change event
func NewLevelEvent(source interface{}, oldLevel, newLevel int) *LevelEvent {
	return &LevelEvent{
		BaseEvent: BaseEvent{
			EventType: LevelChanged,
			Source:    source,
		},
		OldLevel: oldLevel,
		NewLevel: newLevel,
	}
}
