// Package metrics records per-invocation counters for the command-line
// tools. The tools do not serve HTTP, so metrics are written to a file in
// the Prometheus text format for node_exporter's textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var registry = prometheus.NewRegistry()

var (
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slingshot_commands_total",
			Help: "Total number of commands run.",
		},
		[]string{"tool", "command"},
	)

	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slingshot_command_errors_total",
			Help: "Total number of commands that ended in an error.",
		},
		[]string{"tool", "command", "kind"},
	)

	aimOffsetCM = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "slingshot_aim_offset_centimeters",
		Help: "Most recent recommended aim offset.",
	})

	lastRunSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "slingshot_last_run_timestamp_seconds",
		Help: "Unix time of the most recent command.",
	})
)

func init() {
	registry.MustRegister(commandsTotal)
	registry.MustRegister(errorsTotal)
	registry.MustRegister(aimOffsetCM)
	registry.MustRegister(lastRunSeconds)
}

// Known command labels. Anything else is recorded as "other" to keep the
// label set bounded.
var knownCommands = map[string]bool{
	"basic":  true,
	"angle":  true,
	"energy": true,
	"ammo":   true,
	"plot":   true,
	"config": true,
	"calc":   true,
	"usage":  true,
}

func normalizeCommand(cmd string) string {
	if knownCommands[cmd] {
		return cmd
	}
	return "other"
}

// ObserveCommand counts one run of command by tool.
func ObserveCommand(tool, command string) {
	commandsTotal.WithLabelValues(tool, normalizeCommand(command)).Inc()
	lastRunSeconds.Set(float64(time.Now().Unix()))
}

// ObserveError counts a failed command. kind is a short category such as
// "range" or "unreachable".
func ObserveError(tool, command, kind string) {
	errorsTotal.WithLabelValues(tool, normalizeCommand(command), kind).Inc()
}

// SetAimOffset records the latest aim recommendation.
func SetAimOffset(cm float64) {
	aimOffsetCM.Set(cm)
}

// WriteTextfile writes all metrics to path atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
