// pkg/physics/trajectory.go
package physics

import "math"

// TrajectoryPredictor forward-simulates a body's future path under
// gravity for flight-path display. Prediction runs on scratch copies
// of position and velocity; the live body is never mutated, and the
// output is a pure function of the current state.
//
// The predicted path is cosmetic. The live simulation diverges from it
// as soon as other bodies move or the player thrusts.
type TrajectoryPredictor struct {
	G             float64
	Steps         int
	StepDt        float64
	MinDistanceSq float64
}

// NewTrajectoryPredictor creates a predictor. The step interval is
// deliberately coarser than the live tick, trading accuracy for a
// longer visible horizon.
func NewTrajectoryPredictor(g float64, steps int, stepDt float64) *TrajectoryPredictor {
	return &TrajectoryPredictor{
		G:             g,
		Steps:         steps,
		StepDt:        stepDt,
		MinDistanceSq: DefaultMinDistanceSq,
	}
}

// Predict returns the body's next Steps positions under gravity from
// the given sources, regenerated wholesale on every call. Callers pass
// planet-class bodies only; ignoring the star and debris keeps the
// preview cheap and matches the in-game display.
func (p *TrajectoryPredictor) Predict(body *Body, sources []*Body) []Vector2D {
	pos := body.Position
	vel := body.Velocity

	points := make([]Vector2D, 0, p.Steps)
	for i := 0; i < p.Steps; i++ {
		var total Vector2D
		for _, src := range sources {
			delta := src.Position.Sub(pos)
			distSq := delta.LengthSquared()
			if distSq <= p.MinDistanceSq {
				continue
			}
			dist := math.Sqrt(distSq)
			magnitude := p.G * body.Mass * src.Mass / distSq
			total = total.Add(delta.Scale(magnitude / dist))
		}
		if body.Mass > 0 {
			vel = vel.Add(total.Scale(p.StepDt / body.Mass))
		}
		pos = pos.Add(vel.Scale(p.StepDt))
		points = append(points, pos)
	}
	return points
}
