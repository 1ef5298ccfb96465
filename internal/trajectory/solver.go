// Package trajectory solves projectile motion under constant gravity
// with no drag.
package trajectory

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Solver evaluates the closed-form kinematics equations.
type Solver struct {
	Gravity float64 // m/s², must be positive
	Step    float64 // sample interval, seconds
}

// New returns a Solver using standard gravity and the default sample step.
func New() Solver {
	return Solver{Gravity: Gravity, Step: DefaultStep}
}

// Result holds the outcome of a basic trajectory solve. Values are not
// rounded.
type Result struct {
	V0         float64
	AngleDeg   float64
	H0         float64
	FlightTime float64 // seconds
	MaxHeight  float64 // meters above ground
	Distance   float64 // meters

	gravity float64
	step    float64
}

// Solve computes flight time, peak height and landing distance for a
// projectile launched at v0 (m/s) and angleDeg from height h0 (m).
func (s Solver) Solve(v0, angleDeg, h0 float64) (Result, error) {
	if v0 < 0 || math.IsNaN(v0) {
		return Result{}, fmt.Errorf("%w: %g m/s", ErrInvalidVelocity, v0)
	}

	rad := angleDeg * math.Pi / 180.0
	sinA := math.Sin(rad)
	cosA := math.Cos(rad)

	t, err := s.flightTime(v0*sinA, -h0)
	if err != nil {
		return Result{}, err
	}

	// Time to apex, then height at apex.
	tUp := v0 * sinA / s.Gravity
	hMax := v0*sinA*tUp - 0.5*s.Gravity*tUp*tUp + h0

	return Result{
		V0:         v0,
		AngleDeg:   angleDeg,
		H0:         h0,
		FlightTime: t,
		MaxHeight:  hMax,
		Distance:   v0 * cosA * t,
		gravity:    s.Gravity,
		step:       s.Step,
	}, nil
}

// flightTime returns the larger root of ½g·t² − vy·t + c = 0, where c is
// the target height minus the launch height.
func (s Solver) flightTime(vy, c float64) (float64, error) {
	a := 0.5 * s.Gravity
	b := -vy

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, ErrUnreachable
	}

	sq := math.Sqrt(disc)
	t1 := (-b + sq) / (2 * a)
	t2 := (-b - sq) / (2 * a)
	return math.Max(t1, t2), nil
}

// At returns the projectile position t seconds after launch.
func (r Result) At(t float64) Sample {
	rad := r.AngleDeg * math.Pi / 180.0
	return Sample{
		T: t,
		X: r.V0 * math.Cos(rad) * t,
		Y: r.V0*math.Sin(rad)*t - 0.5*r.gravity*t*t + r.H0,
	}
}

// Trajectory returns the samples from launch to landing at the solver's
// step. Samples below ground are skipped. The sequence is computed on
// each iteration and may be ranged over any number of times.
func (r Result) Trajectory() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		if r.step <= 0 {
			return
		}
		for i := 0; ; i++ {
			t := float64(i) * r.step
			if t > r.FlightTime {
				return
			}
			p := r.At(t)
			if p.Y < 0 {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Points collects Trajectory into a slice.
func (r Result) Points() []Sample {
	return slices.Collect(r.Trajectory())
}
