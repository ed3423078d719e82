// pkg/entity/rocket_test.go
package entity

import (
	"math"
	"testing"

	"github.com/stardrift/go-stardrift/pkg/physics"
)

func newTestRocket() *Rocket {
	return NewRocket(GenerateID(), physics.Vector2D{}, DefaultRocketStats(), physics.LandingState{
		TakeoffDuration:         2.0,
		TakeoffFuelCost:         100,
		TakeoffThrustMultiplier: 5.0,
	})
}

func TestRocket_ApplyControls_Rotation(t *testing.T) {
	rk := newTestRocket()

	rk.ApplyControls(physics.ControlIntent{RotateCW: true}, 0.1)
	if math.Abs(rk.Rotation-0.3) > 1e-9 {
		t.Errorf("rotation = %v, expected 0.3", rk.Rotation)
	}

	rk.ApplyControls(physics.ControlIntent{RotateCCW: true}, 0.1)
	if math.Abs(rk.Rotation) > 1e-9 {
		t.Errorf("rotation = %v, expected 0", rk.Rotation)
	}
}

func TestRocket_ApplyControls_ThrustConsumesFuel(t *testing.T) {
	rk := newTestRocket()
	startFuel := rk.Fuel

	rk.ApplyControls(physics.ControlIntent{Thrust: true}, 0.1)
	rk.Body.Integrate(0.1)

	if !rk.Thrusting {
		t.Error("thrust intent ignored")
	}
	if rk.Fuel != startFuel-rk.Stats.FuelConsumptionRate {
		t.Errorf("fuel = %v, expected %v", rk.Fuel, startFuel-rk.Stats.FuelConsumptionRate)
	}
	// thrust/mass*dt = 500/100*0.1 along +X at heading 0.
	if math.Abs(rk.Body.Velocity.X-0.5) > 1e-9 {
		t.Errorf("velocity = %v, expected 0.5", rk.Body.Velocity.X)
	}
}

func TestRocket_ApplyControls_EmptyTankGatesThrust(t *testing.T) {
	rk := newTestRocket()
	rk.Fuel = 0

	rk.ApplyControls(physics.ControlIntent{Thrust: true}, 0.1)
	rk.Body.Integrate(0.1)

	if rk.Thrusting {
		t.Error("thrusting with an empty tank")
	}
	if rk.Body.Velocity.Length() != 0 {
		t.Errorf("velocity = %v, expected rest", rk.Body.Velocity)
	}
	if rk.Fuel != 0 {
		t.Errorf("fuel went negative: %v", rk.Fuel)
	}
}

func TestRocket_TakeDamage_ShieldAbsorbsFirst(t *testing.T) {
	tests := []struct {
		name          string
		shield        float64
		health        float64
		damage        float64
		wantShield    float64
		wantHealth    float64
		wantDestroyed bool
	}{
		{
			name:   "shield_soaks_everything",
			shield: 50, health: 100, damage: 30,
			wantShield: 20, wantHealth: 100,
		},
		{
			name:   "overflow_hits_hull",
			shield: 20, health: 100, damage: 50,
			wantShield: 0, wantHealth: 70,
		},
		{
			name:   "lethal",
			shield: 0, health: 40, damage: 50,
			wantShield: 0, wantHealth: -10, wantDestroyed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rk := newTestRocket()
			rk.Shield = tt.shield
			rk.Health = tt.health

			destroyed := rk.TakeDamage(tt.damage)
			if destroyed != tt.wantDestroyed {
				t.Errorf("destroyed = %v, expected %v", destroyed, tt.wantDestroyed)
			}
			if rk.Shield != tt.wantShield {
				t.Errorf("shield = %v, expected %v", rk.Shield, tt.wantShield)
			}
			if rk.Health != tt.wantHealth {
				t.Errorf("health = %v, expected %v", rk.Health, tt.wantHealth)
			}
		})
	}
}

func TestRocket_IsTestParticle(t *testing.T) {
	rk := newTestRocket()
	if rk.Body.ExertsGravity {
		t.Error("rocket must never exert gravity")
	}
}
