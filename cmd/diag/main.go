package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/star/slingshot/internal/trajectory"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	v0 := 50.0
	if len(os.Args) > 1 {
		v, err := strconv.ParseFloat(os.Args[1], 64)
		if err != nil || v <= 0 {
			fmt.Println("ERROR: v0 must be a positive number:", os.Args[1])
			os.Exit(1)
		}
		v0 = v
	}

	s := trajectory.New()
	fmt.Printf("Range table for v0 = %g m/s (max range %.2f m)\n\n", v0, s.MaxRange(v0))
	fmt.Printf("  %5s  %8s  %8s  %9s  %7s\n", "angle", "time s", "peak m", "range m", "samples")

	worst := 0.0
	for angle := 5.0; angle <= 85; angle += 5 {
		res, err := s.Solve(v0, angle, 0)
		if err != nil {
			fmt.Printf("  %5.0f  ERROR %v\n", angle, err)
			continue
		}
		fmt.Printf("  %5.0f  %8.2f  %8.2f  %9.2f  %7d\n",
			angle, res.FlightTime, res.MaxHeight, res.Distance, len(res.Points()))

		// Feed the landing distance back through the angle solver; one of
		// the solutions must be the angle we started from.
		// At 45° rounding can put the distance a hair past max range.
		d := math.Min(res.Distance, s.MaxRange(v0))
		sols, err := s.SolveAngle(v0, d, 0, 0)
		if err != nil {
			logger.Error("angle solver rejected reachable distance", "angle_deg", angle, "distance", d, "error", err)
			continue
		}
		best := math.Inf(1)
		for _, sol := range sols {
			best = math.Min(best, math.Abs(sol.AngleDeg-angle))
		}
		worst = math.Max(worst, best)
	}

	fmt.Printf("\nWorst angle round-trip error: %.2e deg\n", worst)
	if worst > 1e-6 {
		logger.Warn("angle round-trip error above tolerance", "worst_deg", worst)
		os.Exit(1)
	}
}
