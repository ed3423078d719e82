// pkg/physics/contact_test.go
package physics

import (
	"math"
	"testing"
)

func newTestResolver() *ContactResolver {
	return NewContactResolver(30, 50, 0.3)
}

func newTestLandingState() *LandingState {
	return &LandingState{
		TakeoffDuration:         2.0,
		TakeoffFuelCost:         100,
		TakeoffThrustMultiplier: 5.0,
	}
}

func TestContactResolver_SoftLanding(t *testing.T) {
	planet := &Body{Position: Vector2D{}, Velocity: Vector2D{X: 2}, Mass: 1e6, Radius: 50, ExertsGravity: true, Landable: true}
	craft := &Body{Position: Vector2D{X: 52}, Velocity: Vector2D{X: -5}, Mass: 100, Radius: 4}
	state := newTestLandingState()

	outcome, damage := newTestResolver().Resolve(craft, state, planet)

	if outcome != ContactLanded {
		t.Fatalf("outcome = %v, expected ContactLanded", outcome)
	}
	if damage != 0 {
		t.Errorf("soft landing emitted damage %v", damage)
	}
	if !state.LandedOn(planet) {
		t.Error("landing state not pinned to planet")
	}
	if craft.Velocity != planet.Velocity {
		t.Errorf("craft velocity = %v, expected parent velocity %v", craft.Velocity, planet.Velocity)
	}
	wantDist := planet.Radius + craft.Radius
	if got := craft.Position.Distance(planet.Position); math.Abs(got-wantDist) > 1e-9 {
		t.Errorf("craft surface distance = %v, expected %v", got, wantDist)
	}
}

func TestContactResolver_HardCollisionBounces(t *testing.T) {
	planet := &Body{Position: Vector2D{}, Mass: 1e6, Radius: 50, ExertsGravity: true, Landable: true}
	craft := &Body{Position: Vector2D{X: 52}, Velocity: Vector2D{X: -100}, Mass: 100, Radius: 4}
	state := newTestLandingState()

	resolver := newTestResolver()
	outcome, damage := resolver.Resolve(craft, state, planet)

	if outcome != ContactBounced {
		t.Fatalf("outcome = %v, expected ContactBounced", outcome)
	}
	if damage != 50 {
		t.Errorf("damage = %v, expected flat 50", damage)
	}
	if state.Landed() {
		t.Error("hard collision must not set landed state")
	}
	if craft.Velocity.X <= 0 {
		t.Errorf("velocity not reflected outward: %v", craft.Velocity)
	}
	// Damping applied: post-bounce speed strictly below the elastic
	// reflection speed.
	if got := craft.Speed(); got >= 100 {
		t.Errorf("post-bounce speed %v not damped below elastic 100", got)
	}
	if math.Abs(craft.Speed()-30) > 1e-9 {
		t.Errorf("post-bounce speed = %v, expected 100*0.3", craft.Speed())
	}
}

func TestContactResolver_DamageOncePerCollisionEvent(t *testing.T) {
	planet := &Body{Position: Vector2D{}, Mass: 1e6, Radius: 50, Landable: true}
	craft := &Body{Position: Vector2D{X: 40}, Velocity: Vector2D{X: -100}, Mass: 100, Radius: 4}
	state := newTestLandingState()
	resolver := newTestResolver()

	_, first := resolver.Resolve(craft, state, planet)
	if first != 50 {
		t.Fatalf("first overlap damage = %v, expected 50", first)
	}

	// Still overlapping on the next tick: no double-counting.
	craft.Velocity = Vector2D{X: -100}
	_, second := resolver.Resolve(craft, state, planet)
	if second != 0 {
		t.Errorf("second overlapping tick damage = %v, expected 0", second)
	}

	// After separating, a fresh collision counts again.
	craft.Position = Vector2D{X: 200}
	if outcome, _ := resolver.Resolve(craft, state, planet); outcome != ContactNone {
		t.Fatal("separated craft still in contact")
	}
	craft.Position = Vector2D{X: 40}
	craft.Velocity = Vector2D{X: -100}
	_, third := resolver.Resolve(craft, state, planet)
	if third != 50 {
		t.Errorf("new collision event damage = %v, expected 50", third)
	}
}

func TestContactResolver_NonLandableAlwaysBounces(t *testing.T) {
	station := &Body{Position: Vector2D{}, Mass: 1e4, Radius: 30, Landable: false}
	craft := &Body{Position: Vector2D{X: 31}, Velocity: Vector2D{X: -1}, Mass: 100, Radius: 4}
	state := newTestLandingState()

	// Relative speed is far below the crash threshold, but stations
	// never accept a landing.
	outcome, damage := newTestResolver().Resolve(craft, state, station)
	if outcome != ContactBounced {
		t.Fatalf("outcome = %v, expected ContactBounced", outcome)
	}
	if damage != 50 {
		t.Errorf("damage = %v, expected 50", damage)
	}
	if state.Landed() {
		t.Error("landed on a non-landable body")
	}
}

func TestContactResolver_ZeroVelocityContactKeepsFinitePosition(t *testing.T) {
	// Craft dead-center in the planet with zero velocity: the default
	// normal must keep every coordinate finite.
	planet := &Body{Position: Vector2D{X: 10, Y: 10}, Mass: 1e6, Radius: 50, Landable: false}
	craft := &Body{Position: Vector2D{X: 10, Y: 10}, Mass: 100, Radius: 4}
	state := newTestLandingState()

	newTestResolver().Resolve(craft, state, planet)

	for _, v := range []float64{craft.Position.X, craft.Position.Y, craft.Velocity.X, craft.Velocity.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite craft state after degenerate contact: pos=%v vel=%v", craft.Position, craft.Velocity)
		}
	}
}

func TestContactResolver_NoContactBeyondCombinedRadii(t *testing.T) {
	planet := &Body{Position: Vector2D{}, Mass: 1e6, Radius: 50, Landable: true}
	craft := &Body{Position: Vector2D{X: 60}, Velocity: Vector2D{X: -5}, Mass: 100, Radius: 4}
	state := newTestLandingState()

	outcome, damage := newTestResolver().Resolve(craft, state, planet)
	if outcome != ContactNone || damage != 0 {
		t.Errorf("Resolve() = (%v, %v), expected no contact", outcome, damage)
	}
}
