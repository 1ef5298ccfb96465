// Package aimconfig persists the user's slingshot setup between runs.
package aimconfig

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/star/slingshot/internal/ammo"
	"github.com/star/slingshot/internal/energy"
)

// DefaultV0 is the launch speed assumed when none was measured (m/s).
const DefaultV0 = 50.0

// ErrInvalidVelocity is returned by Configure for a launch speed that is
// not a positive finite number.
var ErrInvalidVelocity = errors.New("velocity must be a positive number")

// Record is the persisted configuration.
type Record struct {
	Ammo      string    `json:"ammo"`
	Bands     int       `json:"bands"`
	V0        float64   `json:"v0"`
	Energy    float64   `json:"energy"` // joules, from the ammo mass and V0
	Timestamp Timestamp `json:"timestamp"`
}

// Configure builds a Record. Callers without a measured speed pass
// DefaultV0. Unknown ammo names are kept as given but use the table's
// default mass for Energy.
func Configure(table *ammo.Table, name string, bands int, v0 float64, now time.Time) (Record, error) {
	if !(v0 > 0) || math.IsInf(v0, 0) {
		return Record{}, fmt.Errorf("%w: %g m/s", ErrInvalidVelocity, v0)
	}

	p := table.Resolve(name)

	return Record{
		Ammo:      name,
		Bands:     bands,
		V0:        v0,
		Energy:    round2(energy.Kinetic(p.MassKg(), v0)),
		Timestamp: Timestamp{Time: now},
	}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
