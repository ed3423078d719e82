// pkg/physics/movement.go
package physics

// ControlIntent carries one tick of player (or AI) control input into
// the physics core. The input layer fills it; the core converts it to
// forces and heading changes.
type ControlIntent struct {
	Thrust      bool
	RotateCW    bool
	RotateCCW   bool
	Brake       bool
	TakeoffHold bool
}

// ApplyThrust converts a thrust intent into a force along the heading.
// Returns true if thrust was applied, so the caller can consume fuel.
func ApplyThrust(body *Body, heading, thrust float64, intent ControlIntent) bool {
	if !intent.Thrust {
		return false
	}
	body.ApplyForce(FromAngle(heading, thrust))
	return true
}

// ApplyRotation returns the heading after one tick of rotation input.
func ApplyRotation(heading, turnRate, dt float64, intent ControlIntent) float64 {
	if intent.RotateCW {
		heading += turnRate * dt
	}
	if intent.RotateCCW {
		heading -= turnRate * dt
	}
	return heading
}

// ApplyBrake bleeds off velocity when the brake intent is held.
func ApplyBrake(body *Body, factor, dt float64, intent ControlIntent) {
	if !intent.Brake {
		return
	}
	scale := 1.0 - factor*dt
	if scale < 0 {
		scale = 0
	}
	body.Velocity = body.Velocity.Scale(scale)
}
