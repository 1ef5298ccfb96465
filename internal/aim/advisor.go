// Package aim turns a configured launch speed into a hold-over for a
// target distance.
//
// The advisor assumes one fixed draw angle and scales the projectile's
// height at the target by a fixed factor. Neither value comes from the
// ballistic model; they are tuning constants kept on Advisor so they can
// be adjusted without touching the formulas.
package aim

import (
	"errors"
	"fmt"
	"math"

	"github.com/star/slingshot/internal/trajectory"
)

const (
	// DefaultAngleDeg is the assumed launch angle.
	DefaultAngleDeg = 45.0
	// DefaultFactor scales the trajectory height into an aim offset.
	DefaultFactor = 0.4
)

// ErrInvalidVelocity is returned for a non-positive launch speed.
var ErrInvalidVelocity = errors.New("launch velocity must be positive")

// Advisor computes aim offsets.
type Advisor struct {
	AngleDeg float64
	Factor   float64
	Gravity  float64
}

// NewAdvisor returns an Advisor with the default angle, factor and gravity.
func NewAdvisor() Advisor {
	return Advisor{
		AngleDeg: DefaultAngleDeg,
		Factor:   DefaultFactor,
		Gravity:  trajectory.Gravity,
	}
}

// Advice is the outcome of a single aim computation.
type Advice struct {
	V0             float64
	Distance       float64
	AngleDeg       float64
	TravelTime     float64 // time to cover Distance horizontally, seconds
	MaxHeight      float64 // apex of the fixed-angle shot, meters
	HeightAtTarget float64 // y at TravelTime, meters; may be negative
	OffsetM        float64
	OffsetCM       float64 // OffsetM in whole centimeters
}

// Advise returns the aim offset for a target distance meters away.
//
// TravelTime is not the landing time of the shot; it is the time the
// horizontal velocity component needs to cover distance, used only to
// read the height of the arc at the target. When the arc has already
// dropped below the launch height there, the apex is used instead.
func (a Advisor) Advise(v0, distance float64) (Advice, error) {
	if v0 <= 0 || math.IsNaN(v0) {
		return Advice{}, fmt.Errorf("%w: %g m/s", ErrInvalidVelocity, v0)
	}

	rad := a.AngleDeg * math.Pi / 180.0
	vx := v0 * math.Cos(rad)
	vy := v0 * math.Sin(rad)

	t := distance / vx

	tUp := vy / a.Gravity
	hMax := vy*tUp - 0.5*a.Gravity*tUp*tUp

	y := vy*t - 0.5*a.Gravity*t*t

	offset := a.Factor * hMax
	if y > 0 {
		offset = a.Factor * y
	}

	return Advice{
		V0:             v0,
		Distance:       distance,
		AngleDeg:       a.AngleDeg,
		TravelTime:     t,
		MaxHeight:      hMax,
		HeightAtTarget: y,
		OffsetM:        offset,
		OffsetCM:       math.Round(offset * 100),
	}, nil
}
