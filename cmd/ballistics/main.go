package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/star/slingshot/internal/ammo"
	"github.com/star/slingshot/internal/cli"
	"github.com/star/slingshot/internal/config"
	"github.com/star/slingshot/internal/energy"
	"github.com/star/slingshot/internal/metrics"
	"github.com/star/slingshot/internal/report"
	"github.com/star/slingshot/internal/trajectory"
)

const tool = "ballistics"

const usage = `
Usage: ballistics <command> <args...>

Commands:
  basic <v0> <angle> [h0]
    Flight time, peak height and landing distance.
    Example: basic 50 45 0

  angle <v0> <distance> [h0] [h_target]
    Launch angles that reach a target.
    Example: angle 60 20 0 0

  energy <ammo> <bands>
    Estimate energy and launch speed.
    Example: energy "8mm钢珠" 18

  plot <v0> <angle> [h0]
    Sampled trajectory with a side-view plot.

  ammo
    List supported ammo.
`

type app struct {
	out    io.Writer
	logger *slog.Logger
	table  *ammo.Table
	solver trajectory.Solver
	width  int
}

func main() {
	envErr := config.LoadDotEnv()
	logger := config.NewLogger()
	config.LogDotEnv(logger, envErr)
	cfg := config.Load(logger)

	a := &app{
		out:    os.Stdout,
		logger: logger,
		table:  cfg.AmmoTable(logger),
		solver: trajectory.New(),
		width:  report.Width(os.Stdout),
	}

	err := a.run(os.Args[1:])

	if cfg.MetricsFile != "" {
		if merr := metrics.WriteTextfile(cfg.MetricsFile); merr != nil {
			logger.Warn("failed to write metrics", "path", cfg.MetricsFile, "error", merr)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if cli.IsArgError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func (a *app) run(args []string) error {
	report.Banner(a.out, "Slingshot ballistics calculator")

	if len(args) == 0 {
		metrics.ObserveCommand(tool, "usage")
		fmt.Fprint(a.out, usage)
		return nil
	}

	cmd := args[0]
	metrics.ObserveCommand(tool, cmd)
	a.logger.Debug("running command", "command", cmd, "args", args[1:])

	switch {
	case cmd == "basic" && len(args) >= 3:
		return a.basic(args, false)
	case cmd == "plot" && len(args) >= 3:
		return a.basic(args, true)
	case cmd == "angle" && len(args) >= 3:
		return a.angle(args)
	case cmd == "energy" && len(args) >= 3:
		return a.energy(args)
	case cmd == "ammo":
		report.AmmoList(a.out, a.table)
		return nil
	default:
		metrics.ObserveError(tool, cmd, "usage")
		fmt.Fprintf(a.out, "\nUnknown command or missing arguments: %s\n", cmd)
		return nil
	}
}

func (a *app) basic(args []string, plot bool) error {
	v0, err := cli.Float(args, 1, "v0")
	if err != nil {
		return err
	}
	angle, err := cli.Float(args, 2, "angle")
	if err != nil {
		return err
	}
	h0, err := cli.OptFloat(args, 3, "h0", 0)
	if err != nil {
		return err
	}

	res, err := a.solver.Solve(v0, angle, h0)
	if err != nil {
		a.domainError(args[0], err)
		return nil
	}

	a.logger.Info("trajectory solved",
		"v0", v0,
		"angle_deg", angle,
		"h0", h0,
		"flight_time", res.FlightTime,
		"distance", res.Distance,
	)

	report.Basic(a.out, res)
	if plot {
		report.Samples(a.out, res)
		report.Plot(a.out, res, a.width)
	}
	return nil
}

func (a *app) angle(args []string) error {
	v0, err := cli.Float(args, 1, "v0")
	if err != nil {
		return err
	}
	distance, err := cli.Float(args, 2, "distance")
	if err != nil {
		return err
	}
	h0, err := cli.OptFloat(args, 3, "h0", 0)
	if err != nil {
		return err
	}
	hTarget, err := cli.OptFloat(args, 4, "h_target", 0)
	if err != nil {
		return err
	}

	sols, err := a.solver.SolveAngle(v0, distance, h0, hTarget)
	if err != nil {
		a.domainError(args[0], err)
		return nil
	}

	a.logger.Info("angles solved", "v0", v0, "distance", distance, "solutions", len(sols))
	report.Angles(a.out, sols)
	return nil
}

func (a *app) energy(args []string) error {
	bands, err := cli.Int(args, 2, "bands")
	if err != nil {
		return err
	}

	name := args[1]
	if _, ok := a.table.Lookup(name); !ok {
		a.logger.Warn("unknown ammo, using default profile", "ammo", name, "default", a.table.Default().Name)
	}

	report.Energy(a.out, energy.Compute(a.table, name, bands))
	return nil
}

// domainError reports a calculation that has no answer. These are user
// facing outcomes, not process failures.
func (a *app) domainError(cmd string, err error) {
	kind := "other"
	var rerr *trajectory.RangeError
	switch {
	case errors.As(err, &rerr):
		kind = "range"
	case errors.Is(err, trajectory.ErrUnreachable):
		kind = "unreachable"
	case errors.Is(err, trajectory.ErrInvalidVelocity):
		kind = "velocity"
	}

	metrics.ObserveError(tool, cmd, kind)
	a.logger.Info("calculation has no solution", "command", cmd, "kind", kind, "error", err)
	fmt.Fprintf(a.out, "\nError: %v\n", err)
}
