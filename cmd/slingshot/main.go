package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/star/slingshot/internal/aim"
	"github.com/star/slingshot/internal/aimconfig"
	"github.com/star/slingshot/internal/ammo"
	"github.com/star/slingshot/internal/cli"
	"github.com/star/slingshot/internal/config"
	"github.com/star/slingshot/internal/metrics"
	"github.com/star/slingshot/internal/report"
)

const tool = "slingshot"

type app struct {
	out     io.Writer
	logger  *slog.Logger
	prog    string
	table   *ammo.Table
	store   *aimconfig.Store
	advisor aim.Advisor
	now     func() time.Time
}

func main() {
	envErr := config.LoadDotEnv()
	logger := config.NewLogger()
	config.LogDotEnv(logger, envErr)
	cfg := config.Load(logger)

	a := &app{
		out:     os.Stdout,
		logger:  logger,
		prog:    filepath.Base(os.Args[0]),
		table:   cfg.AmmoTable(logger),
		store:   aimconfig.NewStore(cfg.ConfigPath),
		advisor: aim.NewAdvisor(),
		now:     time.Now,
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
	report.Banner(a.out, "Slingshot aim calculator")

	if len(args) == 0 {
		metrics.ObserveCommand(tool, "usage")
		a.summary()
		a.usage()
		fmt.Fprintf(a.out, "\nTell me a distance and I will work out the aim point.\n")
		return nil
	}

	cmd := args[0]
	metrics.ObserveCommand(tool, cmd)
	a.logger.Debug("running command", "command", cmd, "args", args[1:], "config_path", a.store.Path())

	switch {
	case cmd == "config" && len(args) >= 3:
		return a.configure(args)
	case cmd == "calc" && len(args) >= 2:
		return a.calc(args)
	case cmd == "ammo":
		report.AmmoList(a.out, a.table)
		return nil
	default:
		metrics.ObserveError(tool, cmd, "usage")
		a.summary()
		a.usage()
		fmt.Fprintf(a.out, "\nUnknown command or missing arguments: %s\n", cmd)
		return nil
	}
}

func (a *app) usage() {
	fmt.Fprintf(a.out, "\nUsage:\n")
	fmt.Fprintf(a.out, "   %s config <ammo> <bands> [measured_v0]  (v0 defaults to %g m/s)\n", a.prog, aimconfig.DefaultV0)
	fmt.Fprintf(a.out, "   %s calc <distance>\n", a.prog)
	fmt.Fprintf(a.out, "   %s ammo  (list ammo types)\n", a.prog)
}

// summary prints the saved configuration. A file that cannot be read is
// reported but does not stop the command.
func (a *app) summary() {
	rec, err := a.store.Load()
	if err != nil {
		a.logger.Warn("cannot read config", "path", a.store.Path(), "error", err)
		fmt.Fprintf(a.out, "\nConfiguration unreadable: %v\n", err)
		return
	}
	report.ConfigSummary(a.out, rec)
}

func (a *app) configure(args []string) error {
	name := args[1]
	bands, err := cli.Int(args, 2, "bands")
	if err != nil {
		return err
	}
	v0, err := cli.OptFloat(args, 3, "measured_v0", aimconfig.DefaultV0)
	if err != nil {
		return err
	}

	if _, ok := a.table.Lookup(name); !ok {
		a.logger.Warn("unknown ammo, energy uses default mass", "ammo", name, "default", a.table.Default().Name)
	}

	rec, err := aimconfig.Configure(a.table, name, bands, v0, a.now())
	if err != nil {
		metrics.ObserveError(tool, args[0], "velocity")
		fmt.Fprintf(a.out, "\nError: %v (configuration not saved)\n", err)
		return nil
	}
	if err := a.store.Save(rec); err != nil {
		metrics.ObserveError(tool, args[0], "io")
		return err
	}

	a.logger.Info("config saved",
		"config_path", a.store.Path(),
		"ammo", rec.Ammo,
		"bands", rec.Bands,
		"v0", rec.V0,
		"energy", rec.Energy,
	)

	report.Saved(a.out, rec, a.store.Path(), a.prog)
	return nil
}

func (a *app) calc(args []string) error {
	rec, err := a.store.MustLoad()
	if errors.Is(err, aimconfig.ErrNotConfigured) {
		metrics.ObserveError(tool, args[0], "not_configured")
		fmt.Fprintf(a.out, "\nNot configured. Run first: %s config <ammo> <bands> [v0]\n", a.prog)
		return nil
	}
	if err != nil {
		metrics.ObserveError(tool, args[0], "config")
		return err
	}

	distance, err := cli.Float(args, 1, "distance")
	if err != nil {
		return err
	}

	adv, err := a.advisor.Advise(rec.V0, distance)
	if err != nil {
		metrics.ObserveError(tool, args[0], "velocity")
		fmt.Fprintf(a.out, "\nError: %v (check the configured velocity)\n", err)
		return nil
	}

	metrics.SetAimOffset(adv.OffsetCM)
	a.logger.Info("aim computed",
		"v0", adv.V0,
		"distance", adv.Distance,
		"height_at_target", adv.HeightAtTarget,
		"offset_cm", adv.OffsetCM,
	)

	report.Advice(a.out, adv)
	fmt.Fprintf(a.out, "\nAt %g m, aim %.0fcm above the target.\n", distance, adv.OffsetCM)
	return nil
}
