// pkg/physics/landing.go
package physics

// LandingState tracks whether a body is slaved to a parent body's
// surface instead of being independently integrated. Only the player
// craft carries one in practice.
type LandingState struct {
	// Parent is the body currently landed on, nil while flying. The
	// parent's lifecycle is independent of the lander's.
	Parent *Body

	TakingOff    bool
	TakeoffTimer float64

	// Tunables, fixed at construction.
	TakeoffDuration         float64
	TakeoffFuelCost         float64
	TakeoffThrustMultiplier float64

	// direction is the outward surface normal captured at touchdown.
	// The landing angle is preserved across ticks, not recomputed from
	// scratch, so a craft stays put on its landing spot.
	direction Vector2D
}

// Landed reports whether the state is currently pinned to a parent.
func (ls *LandingState) Landed() bool {
	return ls.Parent != nil
}

// LandedOn reports whether the state is pinned to the given body.
func (ls *LandingState) LandedOn(body *Body) bool {
	return ls.Parent == body
}

// Land pins the state to parent, capturing the outward normal from the
// craft's current position. A craft dead-center inside the parent gets
// a +X normal rather than NaN.
func (ls *LandingState) Land(craft, parent *Body) {
	ls.Parent = parent
	ls.TakingOff = false
	ls.TakeoffTimer = 0
	ls.direction = craft.Position.Sub(parent.Position).NormalizeOr(Vector2D{X: 1})
}

// Pin repositions the craft onto the parent's surface along the
// preserved landing direction and matches the parent's velocity. Must
// run before integration each tick; a pinned craft is never integrated.
func (ls *LandingState) Pin(craft *Body) {
	if ls.Parent == nil {
		return
	}
	offset := ls.direction.Scale(ls.Parent.Radius + craft.Radius)
	craft.Position = ls.Parent.Position.Add(offset)
	craft.Velocity = ls.Parent.Velocity
}

// UpdateTakeoff advances the hold-to-launch sequence. held is the
// takeoff input for this tick, fuel the craft's current reserve, and
// thrust its engine force. Releasing the input before the hold
// completes resets the timer with no partial credit. The timer keeps
// counting while fuel is short; launch stays gated until the tank
// covers the cost.
//
// On launch the craft leaves the surface with an impulse along the
// outward normal on top of the parent's velocity, the parent is
// cleared, and launched is true exactly once. Callers deduct
// TakeoffFuelCost when launched.
func (ls *LandingState) UpdateTakeoff(craft *Body, held bool, dt, fuel, thrust float64) (launched bool) {
	if ls.Parent == nil {
		return false
	}
	if !held {
		ls.TakingOff = false
		ls.TakeoffTimer = 0
		return false
	}

	ls.TakingOff = true
	ls.TakeoffTimer += dt
	if ls.TakeoffTimer < ls.TakeoffDuration || fuel < ls.TakeoffFuelCost {
		return false
	}

	impulse := ls.TakeoffThrustMultiplier * thrust
	if craft.Mass > 0 {
		impulse /= craft.Mass
	}
	craft.Velocity = ls.Parent.Velocity.Add(ls.direction.Scale(impulse))

	ls.Parent = nil
	ls.TakingOff = false
	ls.TakeoffTimer = 0
	return true
}

// Progress returns the hold completion in [0, 1] for HUD display.
func (ls *LandingState) Progress() float64 {
	if ls.TakeoffDuration <= 0 {
		return 0
	}
	p := ls.TakeoffTimer / ls.TakeoffDuration
	if p > 1 {
		p = 1
	}
	return p
}
