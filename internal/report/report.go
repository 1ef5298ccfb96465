// Package report formats calculator results for the terminal.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/star/slingshot/internal/aim"
	"github.com/star/slingshot/internal/aimconfig"
	"github.com/star/slingshot/internal/ammo"
	"github.com/star/slingshot/internal/energy"
	"github.com/star/slingshot/internal/trajectory"
)

const rule = "  ─────────────"

// Banner prints a boxed title line.
func Banner(w io.Writer, title string) {
	bar := strings.Repeat("=", 50)
	fmt.Fprintf(w, "%s\n%s\n%s\n", bar, title, bar)
}

// Basic prints the summary of a trajectory solve.
func Basic(w io.Writer, r trajectory.Result) {
	fmt.Fprintf(w, "\nResult:\n")
	fmt.Fprintf(w, "  Velocity:      %g m/s\n", r.V0)
	fmt.Fprintf(w, "  Angle:         %g°\n", r.AngleDeg)
	fmt.Fprintf(w, "  Launch height: %g m\n", r.H0)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Flight time:   %.2f s\n", r.FlightTime)
	fmt.Fprintf(w, "  Max height:    %.2f m\n", r.MaxHeight)
	fmt.Fprintf(w, "  Distance:      %.2f m\n", r.Distance)
}

// Samples prints the sampled trajectory as a table.
func Samples(w io.Writer, r trajectory.Result) {
	fmt.Fprintf(w, "\n  %6s  %8s  %8s\n", "t (s)", "x (m)", "y (m)")
	for p := range r.Trajectory() {
		fmt.Fprintf(w, "  %6.1f  %8.2f  %8.2f\n", p.T, p.X, p.Y)
	}
}

// Angles prints firing solutions.
func Angles(w io.Writer, sols []trajectory.AngleSolution) {
	if len(sols) == 0 {
		fmt.Fprintf(w, "\nNo launch angle between %g° and %g° reaches the target.\n",
			trajectory.MinAngleDeg, trajectory.MaxAngleDeg)
		return
	}
	fmt.Fprintf(w, "\nRecommended launch angles:\n")
	for _, s := range sols {
		fmt.Fprintf(w, "  %.2f° (%s) - flight time %.2fs, lands at %.2f m\n",
			s.AngleDeg, s.Kind, s.FlightTime, s.Distance)
	}
}

// Energy prints an energy estimate.
func Energy(w io.Writer, e energy.Estimate) {
	fmt.Fprintf(w, "\nEnergy estimate:\n")
	fmt.Fprintf(w, "  Ammo:     %s\n", e.Ammo)
	fmt.Fprintf(w, "  Mass:     %g g\n", e.MassGrams)
	fmt.Fprintf(w, "  Bands:    %d\n", e.Bands)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Energy:   %.2f J\n", e.EnergyJ)
	fmt.Fprintf(w, "  Velocity: %.1f m/s\n", e.V0)
	fmt.Fprintf(w, "  Speed:    %.1f FPS\n", e.FPS)
}

// AmmoList prints the ammo table in order.
func AmmoList(w io.Writer, t *ammo.Table) {
	fmt.Fprintf(w, "\nSupported ammo:\n")
	def := t.Default().Name
	for _, p := range t.Profiles() {
		mark := ""
		if p.Name == def {
			mark = " (default)"
		}
		if p.DiameterM > 0 {
			mm := math.Round(p.DiameterM*1e4) / 10
			fmt.Fprintf(w, "  %s: %g g, %g mm%s\n", p.Name, p.MassGrams, mm, mark)
		} else {
			fmt.Fprintf(w, "  %s: %g g%s\n", p.Name, p.MassGrams, mark)
		}
	}
}

// ConfigSummary prints the saved configuration, or a notice when there
// is none.
func ConfigSummary(w io.Writer, rec *aimconfig.Record) {
	if rec == nil {
		fmt.Fprintf(w, "\nNot configured.\n")
		return
	}
	fmt.Fprintf(w, "\nCurrent configuration:\n")
	fmt.Fprintf(w, "   Ammo:     %s\n", rec.Ammo)
	fmt.Fprintf(w, "   Bands:    %d\n", rec.Bands)
	fmt.Fprintf(w, "   Velocity: %g m/s\n", rec.V0)
	fmt.Fprintf(w, "   Energy:   %g J\n", rec.Energy)
}

// Saved prints the confirmation after a configure.
func Saved(w io.Writer, rec aimconfig.Record, path, prog string) {
	fmt.Fprintf(w, "\nConfiguration saved to %s\n", path)
	fmt.Fprintf(w, "   Ammo:     %s\n", rec.Ammo)
	fmt.Fprintf(w, "   Bands:    %d\n", rec.Bands)
	fmt.Fprintf(w, "   Velocity: %g m/s\n", rec.V0)
	fmt.Fprintf(w, "   Energy:   %g J\n", rec.Energy)
	fmt.Fprintf(w, "\nNext: %s calc <distance>\n", prog)
}

// Advice prints an aim recommendation.
func Advice(w io.Writer, a aim.Advice) {
	fmt.Fprintf(w, "\nTarget at %g m:\n", a.Distance)
	fmt.Fprintf(w, "   Velocity: %g m/s\n", a.V0)
	fmt.Fprintf(w, "   Angle:    %g°\n", a.AngleDeg)
	fmt.Fprintf(w, "   Flight:   %.2fs\n", a.TravelTime)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "   Aim about %.0fcm above the target\n", a.OffsetCM)
}
