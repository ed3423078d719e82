// pkg/entity/celestial.go
package entity

import (
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// BodyClass defines the kind of celestial body
type BodyClass int

const (
	Star BodyClass = iota
	Planet
	Asteroid
	Station
	BlackHole
)

// Biome describes a planet's surface flavor. It decides landability
// and the local takeoff cost factor, nothing else in the physics.
type Biome int

const (
	BiomeNone Biome = iota
	BiomeDesert
	BiomeIce
	BiomeForest
)

// Celestial represents a star, planet, asteroid, station, or black
// hole in the system. Gravity participation and landability are baked
// into the embedded body's capability flags at construction: stars,
// planets, and black holes exert gravity, everything else only
// receives it; only planets with a surface biome accept a landing.
type Celestial struct {
	BaseEntity
	Class BodyClass
	Biome Biome

	// TakeoffCostFactor scales the rocket's takeoff fuel cost on this
	// surface. Meaningful only for landable planets.
	TakeoffCostFactor float64
}

// NewCelestial creates a body of the given class at rest.
func NewCelestial(id ID, name string, class BodyClass, position physics.Vector2D, mass, radius float64) *Celestial {
	c := &Celestial{
		BaseEntity: BaseEntity{
			ID:   id,
			Name: name,
			Body: physics.Body{
				Position: position,
				Mass:     mass,
				Radius:   radius,
			},
			Active: true,
		},
		Class:             class,
		TakeoffCostFactor: 1.0,
	}

	switch class {
	case Star, Planet, BlackHole:
		c.Body.ExertsGravity = true
	}

	return c
}

// NewPlanet creates a planet with the given biome and orbital velocity.
func NewPlanet(id ID, name string, position, velocity physics.Vector2D, mass, radius float64, biome Biome) *Celestial {
	p := NewCelestial(id, name, Planet, position, mass, radius)
	p.Body.Velocity = velocity
	p.Biome = biome
	if biome != BiomeNone {
		p.Body.Landable = true
	}

	switch biome {
	case BiomeDesert:
		p.TakeoffCostFactor = 0.7
	case BiomeIce:
		p.TakeoffCostFactor = 1.2
	case BiomeForest:
		p.TakeoffCostFactor = 1.0
	}

	return p
}

// GravitySource reports whether this body pulls on others.
func (c *Celestial) GravitySource() bool {
	return c.Body.ExertsGravity
}

// Landable reports whether the rocket can touch down here.
func (c *Celestial) Landable() bool {
	return c.Body.Landable
}
