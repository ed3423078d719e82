// pkg/physics/contact.go
package physics

// ContactOutcome classifies the result of a surface contact check.
type ContactOutcome int

const (
	ContactNone ContactOutcome = iota
	ContactLanded
	ContactBounced
)

// ContactResolver decides collision and landing outcomes between a
// moving craft and the massive bodies it can touch. Contact below the
// crash threshold against a landable surface becomes a soft landing;
// everything else reflects the craft with damped velocity and a flat
// damage penalty.
type ContactResolver struct {
	// CrashThreshold is the relative speed separating a soft landing
	// from a destructive collision.
	CrashThreshold float64

	// CrashDamage is the flat penalty emitted on a hard collision,
	// independent of impact speed.
	CrashDamage float64

	// BounceDamping scales the reflected velocity to keep a crashed
	// craft from bouncing forever.
	BounceDamping float64

	// overlapping latches bodies the craft is still inside after a
	// bounce so damage lands once per collision event, not once per
	// tick of continued overlap.
	overlapping map[*Body]bool
}

// NewContactResolver creates a resolver with the given tunables.
func NewContactResolver(crashThreshold, crashDamage, bounceDamping float64) *ContactResolver {
	return &ContactResolver{
		CrashThreshold: crashThreshold,
		CrashDamage:    crashDamage,
		BounceDamping:  bounceDamping,
		overlapping:    make(map[*Body]bool),
	}
}

// Resolve checks the craft against one candidate body and applies the
// landing or bounce response. The returned damage is nonzero only on
// the first tick of a hard collision; the caller routes it to whatever
// health system exists outside the core.
func (r *ContactResolver) Resolve(craft *Body, state *LandingState, body *Body) (ContactOutcome, float64) {
	dist := craft.Position.Distance(body.Position)
	if dist >= craft.Radius+body.Radius {
		delete(r.overlapping, body)
		return ContactNone, 0
	}
	if state.LandedOn(body) {
		return ContactNone, 0
	}

	if body.Landable && craft.RelativeSpeed(body) <= r.CrashThreshold {
		r.land(craft, state, body)
		return ContactLanded, 0
	}
	return r.bounce(craft, body)
}

// land zeroes relative velocity and reseats the craft exactly on the
// surface along the center line.
func (r *ContactResolver) land(craft *Body, state *LandingState, body *Body) {
	state.Land(craft, body)
	state.Pin(craft)
	delete(r.overlapping, body)
}

// bounce reflects the craft's velocity about the outward collision
// normal and damps it. The post-bounce speed is strictly below the
// elastic-reflection speed.
func (r *ContactResolver) bounce(craft *Body, body *Body) (ContactOutcome, float64) {
	normal := craft.Position.Sub(body.Position).NormalizeOr(Vector2D{X: 1})
	craft.Velocity = craft.Velocity.Reflect(normal).Scale(r.BounceDamping)

	if r.overlapping[body] {
		return ContactBounced, 0
	}
	r.overlapping[body] = true
	return ContactBounced, r.CrashDamage
}
