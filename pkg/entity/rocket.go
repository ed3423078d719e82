// pkg/entity/rocket.go
package entity

import (
	"github.com/stardrift/go-stardrift/pkg/physics"
)

// RocketStats contains the base statistics for the player craft.
type RocketStats struct {
	Mass                float64
	Radius              float64
	Thrust              float64
	TurnRate            float64
	BrakeFactor         float64
	MaxFuel             float64
	FuelConsumptionRate float64
	MaxHealth           float64
	MaxShield           float64
}

// DefaultRocketStats returns the reference rocket tuning.
func DefaultRocketStats() RocketStats {
	return RocketStats{
		Mass:                100,
		Radius:              10,
		Thrust:              500,
		TurnRate:            3.0,
		BrakeFactor:         1.5,
		MaxFuel:             1000,
		FuelConsumptionRate: 0.5,
		MaxHealth:           100,
		MaxShield:           50,
	}
}

// Rocket represents the player's craft. It is a gravity test particle:
// every star and planet pulls on it, it pulls on nothing.
type Rocket struct {
	BaseEntity
	Stats   RocketStats
	Fuel    float64
	Health  float64
	Shield  float64
	Landing physics.LandingState

	// Trajectory holds the latest predicted flight path for display.
	// Regenerated wholesale on a throttle, read-only to consumers.
	Trajectory []physics.Vector2D

	Thrusting bool
}

// NewRocket creates the player craft at the given position.
func NewRocket(id ID, position physics.Vector2D, stats RocketStats, landing physics.LandingState) *Rocket {
	return &Rocket{
		BaseEntity: BaseEntity{
			ID:   id,
			Name: "Rocket",
			Body: physics.Body{
				Position: position,
				Mass:     stats.Mass,
				Radius:   stats.Radius,
			},
			Active: true,
		},
		Stats:   stats,
		Fuel:    stats.MaxFuel,
		Health:  stats.MaxHealth,
		Shield:  stats.MaxShield,
		Landing: landing,
	}
}

// ApplyControls converts one tick of input into heading changes and
// forces. Thrust is gated on fuel and consumes it at the configured
// rate. Runs before integration; while landed the takeoff sequence in
// the landing state is the only control that matters.
func (rk *Rocket) ApplyControls(intent physics.ControlIntent, dt float64) {
	rk.Rotation = physics.ApplyRotation(rk.Rotation, rk.Stats.TurnRate, dt, intent)

	rk.Thrusting = false
	if intent.Thrust && rk.Fuel > 0 {
		if physics.ApplyThrust(&rk.Body, rk.Rotation, rk.Stats.Thrust, intent) {
			rk.Thrusting = true
			rk.Fuel -= rk.Stats.FuelConsumptionRate
			if rk.Fuel < 0 {
				rk.Fuel = 0
			}
		}
	}

	physics.ApplyBrake(&rk.Body, rk.Stats.BrakeFactor, dt, intent)
}

// TakeDamage applies damage to the rocket, shield first, then health.
// Returns true when the rocket is destroyed.
func (rk *Rocket) TakeDamage(amount float64) bool {
	if rk.Shield > 0 {
		absorbed := rk.Shield
		if absorbed > amount {
			absorbed = amount
		}
		rk.Shield -= absorbed
		amount -= absorbed
	}
	if amount > 0 {
		rk.Health -= amount
	}
	return rk.Health <= 0
}

// Refuel fills the tank back to capacity.
func (rk *Rocket) Refuel() {
	rk.Fuel = rk.Stats.MaxFuel
}

// Landed reports whether the rocket is pinned to a planet surface.
func (rk *Rocket) Landed() bool {
	return rk.Landing.Landed()
}
