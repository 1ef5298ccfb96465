package trajectory

import (
	"errors"
	"fmt"
)

// Gravity is standard gravitational acceleration (m/s²).
const Gravity = 9.81

// DefaultStep is the time between trajectory samples.
const DefaultStep = 0.1

// Angle solutions outside this window are not reported (degrees, inclusive).
const (
	MinAngleDeg = 1.0
	MaxAngleDeg = 89.0
)

var (
	// ErrUnreachable means the height equation has no real root.
	ErrUnreachable = errors.New("cannot reach target")
	// ErrInvalidVelocity means the launch speed is outside the solver's domain.
	ErrInvalidVelocity = errors.New("invalid launch velocity")
)

// RangeError is returned when a target lies beyond the flat-ground
// maximum range for the launch speed.
type RangeError struct {
	V0       float64 // m/s
	Distance float64 // requested, meters
	MaxRange float64 // v0²/g, meters
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("distance %.1f m too far: max range at %g m/s is about %.1f m", e.Distance, e.V0, e.MaxRange)
}

// Sample is a single point of a trajectory.
type Sample struct {
	T float64 // seconds since launch
	X float64 // horizontal distance, meters
	Y float64 // height above ground, meters
}

// Kind classifies an angle solution.
type Kind int

const (
	LowAngle Kind = iota
	HighAngle
)

func (k Kind) String() string {
	switch k {
	case LowAngle:
		return "low-angle precise"
	case HighAngle:
		return "high-angle arcing"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// AngleSolution is one firing solution for a fixed target distance.
type AngleSolution struct {
	AngleDeg   float64
	FlightTime float64 // seconds
	Distance   float64 // meters, re-solved at AngleDeg
	Kind       Kind
}
