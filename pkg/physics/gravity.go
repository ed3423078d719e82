// pkg/physics/gravity.go
package physics

import "math"

// DefaultMinDistanceSq is the squared-distance floor below which a
// pair exerts no gravity. Interpenetrating bodies pull on each other
// not at all rather than explosively.
const DefaultMinDistanceSq = 1.0

// GravityField computes pairwise Newtonian attraction among a set of
// bodies. Gravity sources attract each other with full mutual force
// accumulation; every other body is treated as a test particle that
// receives force from each source but exerts none back.
type GravityField struct {
	G             float64
	MinDistanceSq float64
}

// NewGravityField creates a gravity field with the given gravitational
// constant and the default minimum-separation guard.
func NewGravityField(g float64) *GravityField {
	return &GravityField{
		G:             g,
		MinDistanceSq: DefaultMinDistanceSq,
	}
}

// Apply accumulates one tick's worth of gravitational force onto every
// body in the slice. Forces are only accumulated; callers integrate
// afterwards.
func (f *GravityField) Apply(bodies []*Body) {
	f.applyMutual(bodies)
	f.applyTestParticles(bodies)
}

// applyMutual runs the symmetric N-body pass over gravity sources.
// Newton's third law holds here: each pair gets equal and opposite
// forces.
func (f *GravityField) applyMutual(bodies []*Body) {
	for i, a := range bodies {
		if !a.ExertsGravity {
			continue
		}
		for _, b := range bodies[i+1:] {
			if !b.ExertsGravity {
				continue
			}
			force, ok := f.forceBetween(a, b)
			if !ok {
				continue
			}
			a.ApplyForce(force)
			b.ApplyForce(force.Scale(-1))
		}
	}
}

// applyTestParticles pulls every non-source body toward each source
// without a reaction force. The player craft orbits the system; the
// system never feels the player craft.
func (f *GravityField) applyTestParticles(bodies []*Body) {
	for _, p := range bodies {
		if p.ExertsGravity {
			continue
		}
		for _, s := range bodies {
			if !s.ExertsGravity {
				continue
			}
			force, ok := f.forceBetween(p, s)
			if !ok {
				continue
			}
			p.ApplyForce(force)
		}
	}
}

// forceBetween returns the force on a directed toward b, or ok=false
// when the pair is inside the minimum-separation guard.
func (f *GravityField) forceBetween(a, b *Body) (Vector2D, bool) {
	delta := b.Position.Sub(a.Position)
	distSq := delta.LengthSquared()
	if distSq <= f.MinDistanceSq {
		return Vector2D{}, false
	}
	dist := math.Sqrt(distSq)
	magnitude := f.G * a.Mass * b.Mass / distSq
	return delta.Scale(magnitude / dist), true
}
