// pkg/engine/snapshot.go
package engine

import (
	"errors"

	"github.com/stardrift/go-stardrift/pkg/entity"
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// PhysicsSnapshot is a deep copy of the simulation's physical state:
// every celestial body plus the rocket's body, fuel, and landing
// attachment. Restoring one rewinds the physics exactly, without any
// shared pointers into the live state, so what-if rollouts cannot
// corrupt the running game.
type PhysicsSnapshot struct {
	Tick    uint64
	SimTime float64

	Rocket     physics.Body
	Rotation   float64
	Fuel       float64
	Health     float64
	Shield     float64
	LandedOn   entity.ID // zero while flying
	Celestials map[entity.ID]physics.Body
}

// Snapshot deep-copies the current physics state.
func (g *Game) Snapshot() *PhysicsSnapshot {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	snap := &PhysicsSnapshot{
		Tick:       g.CurrentTick,
		SimTime:    g.SimTime,
		Rocket:     g.Rocket.Body,
		Rotation:   g.Rocket.Rotation,
		Fuel:       g.Rocket.Fuel,
		Health:     g.Rocket.Health,
		Shield:     g.Rocket.Shield,
		Celestials: make(map[entity.ID]physics.Body, len(g.Celestials)),
	}

	for id, c := range g.Celestials {
		snap.Celestials[id] = c.Body
		if g.Rocket.Landing.LandedOn(&c.Body) {
			snap.LandedOn = id
		}
	}

	return snap
}

// Restore rewinds the physics to a snapshot taken from this game. The
// landing attachment is re-linked by celestial ID, never by pointer,
// so a snapshot survives any amount of simulation in between.
func (g *Game) Restore(snap *PhysicsSnapshot) error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	for id := range snap.Celestials {
		if _, ok := g.Celestials[id]; !ok {
			return errors.New("snapshot references unknown celestial")
		}
	}

	for id, body := range snap.Celestials {
		g.Celestials[id].Body = body
	}

	g.Rocket.Body = snap.Rocket
	g.Rocket.Rotation = snap.Rotation
	g.Rocket.Fuel = snap.Fuel
	g.Rocket.Health = snap.Health
	g.Rocket.Shield = snap.Shield
	g.Rocket.Active = snap.Health > 0
	g.Rocket.Trajectory = nil

	g.Rocket.Landing.Parent = nil
	if snap.LandedOn != 0 {
		c, ok := g.Celestials[snap.LandedOn]
		if !ok {
			return errors.New("snapshot references unknown landing parent")
		}
		g.Rocket.Landing.Land(&g.Rocket.Body, &c.Body)
		g.Rocket.Landing.Pin(&g.Rocket.Body)
	}

	g.CurrentTick = snap.Tick
	g.SimTime = snap.SimTime
	return nil
}
