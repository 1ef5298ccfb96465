// Package energy estimates launch energy and speed from the number of
// elastic bands.
//
// The model is linear in band count. Real latex does not store energy
// linearly, so treat the numbers as a starting point before chronographing.
package energy

import (
	"math"

	"github.com/star/slingshot/internal/ammo"
)

const (
	// JoulesPerBand is the assumed energy delivered by a single band.
	JoulesPerBand = 0.3
	// FPSPerMS converts m/s to feet per second for display.
	FPSPerMS = 3.28
)

// Estimate is the result of an energy estimate.
type Estimate struct {
	Ammo      string  // name as requested
	MassGrams float64 // mass of the resolved profile
	Bands     int
	EnergyJ   float64
	V0        float64 // m/s
	FPS       float64
}

// Compute estimates the stored energy for bands and the resulting launch
// speed for the named ammo. Unknown names use the table's default profile.
func Compute(table *ammo.Table, name string, bands int) Estimate {
	p := table.Resolve(name)

	e := JoulesPerBand * float64(bands)
	v0 := Velocity(e, p.MassKg())

	return Estimate{
		Ammo:      name,
		MassGrams: p.MassGrams,
		Bands:     bands,
		EnergyJ:   e,
		V0:        v0,
		FPS:       v0 * FPSPerMS,
	}
}

// Velocity returns sqrt(2E/m), or 0 when either argument is not positive.
func Velocity(energyJ, massKg float64) float64 {
	if massKg <= 0 || energyJ <= 0 {
		return 0
	}
	return math.Sqrt(2 * energyJ / massKg)
}

// Kinetic returns ½·m·v².
func Kinetic(massKg, v0 float64) float64 {
	return 0.5 * massKg * v0 * v0
}
