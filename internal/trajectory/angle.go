package trajectory

import (
	"fmt"
	"math"
)

const sameAngleTolDeg = 1e-4

// MaxRange returns the flat-ground range at 45° for launch speed v0.
func (s Solver) MaxRange(v0 float64) float64 {
	return v0 * v0 / s.Gravity
}

// SolveAngle finds the launch angles that carry a projectile at v0 (m/s)
// to a target distance (m). h0 and hTarget are the launch and target
// heights.
//
// Candidate angles come from the flat-ground relation sin(2θ) = d·g/v0²,
// which yields θ and 90°−θ. Each candidate inside [MinAngleDeg, MaxAngleDeg]
// is re-solved against the real height difference, so Distance reflects
// where the projectile actually lands. An empty result is not an error.
func (s Solver) SolveAngle(v0, distance, h0, hTarget float64) ([]AngleSolution, error) {
	if v0 <= 0 || math.IsNaN(v0) {
		return nil, fmt.Errorf("%w: %g m/s", ErrInvalidVelocity, v0)
	}

	maxRange := s.MaxRange(v0)
	if distance > maxRange {
		return nil, &RangeError{V0: v0, Distance: distance, MaxRange: maxRange}
	}

	// Clamp to guard asin against rounding just above 1.
	sin2 := math.Min(distance*s.Gravity/(v0*v0), 1.0)

	theta1 := 0.5 * math.Asin(sin2) * 180.0 / math.Pi
	theta2 := 90 - theta1

	// At maximum range both candidates collapse onto 45°. asin is steep
	// near 1, so compare with a tolerance rather than exactly.
	candidates := []float64{theta1, theta2}
	if math.Abs(theta2-theta1) < sameAngleTolDeg {
		candidates = []float64{45}
	}

	var out []AngleSolution
	for _, theta := range candidates {
		// Written so that NaN fails the window.
		if !(theta >= MinAngleDeg && theta <= MaxAngleDeg) {
			continue
		}

		rad := theta * math.Pi / 180.0
		t, err := s.flightTime(v0*math.Sin(rad), hTarget-h0)
		if err != nil {
			continue
		}

		kind := HighAngle
		if theta < 45 {
			kind = LowAngle
		}

		out = append(out, AngleSolution{
			AngleDeg:   theta,
			FlightTime: t,
			Distance:   v0 * math.Cos(rad) * t,
			Kind:       kind,
		})
	}

	return out, nil
}
