// pkg/physics/body.go
package physics

// Body is a point mass participating in the gravity and collision
// simulation. Capability flags are data, not types: whether a body
// pulls on others or accepts a soft landing is decided at construction
// time by the world generator, never by inspecting the concrete entity.
type Body struct {
	Position Vector2D
	Velocity Vector2D
	Mass     float64
	Radius   float64

	// ExertsGravity marks the body as a gravity source. Stars and
	// planets exert gravity; the player craft, asteroids, stations,
	// and projectiles only ever receive it.
	ExertsGravity bool

	// Landable marks a body whose surface supports a soft landing.
	// Contact with anything else is always a bounce.
	Landable bool

	// force accumulates applied forces for the current tick, in force
	// units. Division by mass happens once, at integration.
	force Vector2D
}

// ApplyForce adds f to the body's per-tick force accumulator.
// Inputs must be finite; the simulation has no NaN recovery past
// this point.
func (b *Body) ApplyForce(f Vector2D) {
	b.force = b.force.Add(f)
}

// Integrate advances the body by one explicit-Euler step: velocity
// from accumulated force, then position from velocity, then the
// accumulator is cleared. Massless bodies never self-accelerate.
func (b *Body) Integrate(dt float64) {
	if b.Mass > 0 {
		b.Velocity = b.Velocity.Add(b.force.Scale(dt / b.Mass))
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.force = Vector2D{}
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return b.Velocity.Length()
}

// RelativeSpeed returns the speed of b relative to other.
func (b *Body) RelativeSpeed(other *Body) float64 {
	return b.Velocity.Sub(other.Velocity).Length()
}

// Overlaps reports whether the two bodies' circles intersect.
func (b *Body) Overlaps(other *Body) bool {
	return b.Position.Distance(other.Position) < b.Radius+other.Radius
}
