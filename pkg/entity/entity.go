// pkg/entity/entity.go
package entity

import (
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	GetBody() *physics.Body
	Render(r Renderer)
}

// BaseEntity contains common functionality for all entities. The
// embedded physics.Body is the single source of truth for position,
// velocity, mass, and radius; the simulation mutates it directly.
type BaseEntity struct {
	ID       ID
	Body     physics.Body
	Rotation float64
	Name     string
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Body.Position
}

// GetBody returns the entity's point mass for the physics pipeline.
func (e *BaseEntity) GetBody() *physics.Body {
	return &e.Body
}

// Render is a no-op at the base; concrete entity types dispatch to the
// renderer method that knows how to draw them.
func (e *BaseEntity) Render(r Renderer) {
}

func (rk *Rocket) Render(r Renderer) {
	r.RenderRocket(rk)
}

func (c *Celestial) Render(r Renderer) {
	r.RenderCelestial(c)
}

func (en *Enemy) Render(r Renderer) {
	r.RenderEnemy(en)
}

func (p *Projectile) Render(r Renderer) {
	r.RenderProjectile(p)
}

// GenerateID generates a unique ID for entities.
// In a real implementation, this would use a more robust approach
var nextID ID = 1

func GenerateID() ID {
	id := nextID
	nextID++
	return id
}
