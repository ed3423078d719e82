// pkg/engine/state.go
package engine

import (
	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// GameState is a render-ready snapshot of the session. Everything is
// copied by value; renderers read it without touching the entity lock.
type GameState struct {
	Tick        uint64
	SimTime     float64
	Status      GameStatus
	Rocket      RocketState
	Celestials  map[entity.ID]CelestialState
	Enemies     map[entity.ID]EnemyState
	Projectiles map[entity.ID]ProjectileState
}

// RocketState represents a snapshot of the player craft
type RocketState struct {
	ID              entity.ID
	Position        physics.Vector2D
	Velocity        physics.Vector2D
	Rotation        float64
	Fuel            float64
	Health          float64
	Shield          float64
	Thrusting       bool
	Landed          bool
	LandedOn        entity.ID
	TakeoffProgress float64
	Trajectory      []physics.Vector2D
	Active          bool
}

// CelestialState represents a snapshot of a celestial body
type CelestialState struct {
	ID       entity.ID
	Name     string
	Class    entity.BodyClass
	Biome    entity.Biome
	Position physics.Vector2D
	Radius   float64
	Landable bool
}

// EnemyState represents a snapshot of an enemy ship
type EnemyState struct {
	ID       entity.ID
	Position physics.Vector2D
	Rotation float64
	Health   float64
}

// ProjectileState represents a snapshot of a projectile
type ProjectileState struct {
	ID       entity.ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Hostile  bool
}

// GetGameState returns a snapshot of the current game state
func (g *Game) GetGameState() *GameState {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	state := &GameState{
		Tick:        g.CurrentTick,
		SimTime:     g.SimTime,
		Status:      g.Status,
		Rocket:      g.rocketState(),
		Celestials:  make(map[entity.ID]CelestialState, len(g.Celestials)),
		Enemies:     make(map[entity.ID]EnemyState, len(g.Enemies)),
		Projectiles: make(map[entity.ID]ProjectileState, len(g.Projectiles)),
	}

	for id, c := range g.Celestials {
		state.Celestials[id] = CelestialState{
			ID:       id,
			Name:     c.Name,
			Class:    c.Class,
			Biome:    c.Biome,
			Position: c.Body.Position,
			Radius:   c.Body.Radius,
			Landable: c.Landable(),
		}
	}
	for id, en := range g.Enemies {
		if !en.Active {
			continue
		}
		state.Enemies[id] = EnemyState{
			ID:       id,
			Position: en.Body.Position,
			Rotation: en.Rotation,
			Health:   en.Health,
		}
	}
	for id, p := range g.Projectiles {
		if !p.Active {
			continue
		}
		state.Projectiles[id] = ProjectileState{
			ID:       id,
			Position: p.Body.Position,
			Velocity: p.Body.Velocity,
			Hostile:  p.Hostile,
		}
	}

	return state
}

func (g *Game) rocketState() RocketState {
	rk := g.Rocket
	rs := RocketState{
		ID:              rk.ID,
		Position:        rk.Body.Position,
		Velocity:        rk.Body.Velocity,
		Rotation:        rk.Rotation,
		Fuel:            rk.Fuel,
		Health:          rk.Health,
		Shield:          rk.Shield,
		Thrusting:       rk.Thrusting,
		Landed:          rk.Landed(),
		TakeoffProgress: rk.Landing.Progress(),
		Active:          rk.Active,
	}
	if len(rk.Trajectory) > 0 {
		rs.Trajectory = make([]physics.Vector2D, len(rk.Trajectory))
		copy(rs.Trajectory, rk.Trajectory)
	}
	if rk.Landed() {
		for id, c := range g.Celestials {
			if rk.Landing.LandedOn(&c.Body) {
				rs.LandedOn = id
				break
			}
		}
	}
	return rs
}
