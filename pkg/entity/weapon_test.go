// pkg/entity/weapon_test.go
package entity

import (
	"math"
	"testing"

	"github.com/stardrift/go-stardrift/pkg/physics"
)

func TestWeapon_CooldownGatesFiring(t *testing.T) {
	w := NewBlaster()
	owner := GenerateID()

	first := w.Fire(owner, physics.Vector2D{}, physics.Vector2D{}, 0, false)
	if first == nil {
		t.Fatal("ready weapon refused to fire")
	}

	if again := w.Fire(owner, physics.Vector2D{}, physics.Vector2D{}, 0, false); again != nil {
		t.Error("weapon fired while cooling down")
	}

	// Tick past the cooldown in fixed steps.
	for i := 0; i < 4; i++ {
		w.TickCooldown(0.1)
	}
	if again := w.Fire(owner, physics.Vector2D{}, physics.Vector2D{}, 0, false); again == nil {
		t.Error("weapon still cold after cooldown elapsed")
	}
}

func TestWeapon_Fire_InheritsBaseVelocity(t *testing.T) {
	w := NewBlaster()
	base := physics.Vector2D{X: 40, Y: -20}

	p := w.Fire(GenerateID(), physics.Vector2D{}, base, 0, false)
	if p == nil {
		t.Fatal("fire returned nil")
	}

	want := base.Add(physics.FromAngle(0, w.Speed))
	if math.Abs(p.Body.Velocity.X-want.X) > 1e-9 || math.Abs(p.Body.Velocity.Y-want.Y) > 1e-9 {
		t.Errorf("projectile velocity = %v, expected %v", p.Body.Velocity, want)
	}
	if p.Body.Mass != 0 {
		t.Errorf("projectile mass = %v, expected massless", p.Body.Mass)
	}
	if p.Body.ExertsGravity {
		t.Error("projectile must never exert gravity")
	}
}

func TestProjectile_ExpiresPastRange(t *testing.T) {
	w := NewBlaster()
	p := w.Fire(GenerateID(), physics.Vector2D{}, physics.Vector2D{}, 0, false)

	// 800 u/s over 2000 range: expires on the ~25th 0.1s step.
	steps := 0
	for p.Active && steps < 100 {
		p.Update(0.1)
		steps++
	}
	if p.Active {
		t.Fatal("projectile never expired")
	}
	if p.DistanceTraveled < p.Range {
		t.Errorf("expired early at %v of %v", p.DistanceTraveled, p.Range)
	}
}
