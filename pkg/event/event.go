// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	RocketLanded    Type = "rocket_landed"
	RocketTookOff   Type = "rocket_took_off"
	RocketCrashed   Type = "rocket_crashed"
	RocketDestroyed Type = "rocket_destroyed"
	RocketRefueled  Type = "rocket_refueled"
	EnemySpawned    Type = "enemy_spawned"
	EnemyDestroyed  Type = "enemy_destroyed"
	ProjectileFired Type = "projectile_fired"
	GameStarted     Type = "game_started"
	GameEnded       Type = "game_ended"
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

// Subscription identifies a registered handler and carries the
// function that removes it from the bus.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type and returns
// a cancellable subscription.
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})
	b.mu.Unlock()

	return &Subscription{
		ID: id,
		Cancel: func() {
			b.unsubscribe(eventType, id)
		},
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs, ok := b.handlers[event.GetType()]
	handlers := make([]Handler, len(regs))
	for i, r := range regs {
		handlers[i] = r.handler
	}
	b.mu.RUnlock()

	if !ok {
		return
	}

	// Call each handler outside the lock
	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// RocketEvent carries rocket lifecycle transitions. BodyID names the
// celestial involved for landings, takeoffs, and crashes; it is zero
// for the rest.
type RocketEvent struct {
	BaseEvent
	RocketID uint64
	BodyID   uint64
	Damage   float64
}

// NewRocketEvent creates a new rocket event
func NewRocketEvent(eventType Type, source interface{}, rocketID, bodyID uint64, damage float64) *RocketEvent {
	return &RocketEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		RocketID: rocketID,
		BodyID:   bodyID,
		Damage:   damage,
	}
}

// EnemyEvent contains information about enemy lifecycle events
type EnemyEvent struct {
	BaseEvent
	EnemyID uint64
}

// NewEnemyEvent creates a new enemy event
func NewEnemyEvent(eventType Type, source interface{}, enemyID uint64) *EnemyEvent {
	return &EnemyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EnemyID: enemyID,
	}
}

// ProjectileEvent contains information about a fired projectile
type ProjectileEvent struct {
	BaseEvent
	ProjectileID uint64
	OwnerID      uint64
	Hostile      bool
}

// NewProjectileEvent creates a new projectile event
func NewProjectileEvent(source interface{}, projectileID, ownerID uint64, hostile bool) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: ProjectileFired,
			Source:    source,
		},
		ProjectileID: projectileID,
		OwnerID:      ownerID,
		Hostile:      hostile,
	}
}

// GameEvent marks session boundaries
type GameEvent struct {
	BaseEvent
	Reason string
}

// NewGameEvent creates a new game event
func NewGameEvent(eventType Type, source interface{}, reason string) *GameEvent {
	return &GameEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Reason: reason,
	}
}
