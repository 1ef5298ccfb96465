package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/star/slingshot/internal/trajectory"
)

// DefaultWidth is used when output is not a terminal.
const DefaultWidth = 72

const (
	minWidth   = 20
	maxWidth   = 160
	plotHeight = 12
)

// Width returns the usable column count of f, or DefaultWidth when f is
// not a terminal.
func Width(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Plot draws a side view of the trajectory, width columns wide. The
// vertical axis spans ground level to the apex; samples below ground are
// never drawn.
func Plot(w io.Writer, r trajectory.Result, width int) {
	width = min(max(width, minWidth), maxWidth)
	cols := width - 2 // left axis and margin

	top := math.Max(r.MaxHeight, 0)
	right := r.Distance
	if top <= 0 || right <= 0 {
		fmt.Fprintf(w, "\n(nothing to plot)\n")
		return
	}

	grid := make([][]byte, plotHeight)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", cols))
	}

	for p := range r.Trajectory() {
		c := int(math.Round(p.X / right * float64(cols-1)))
		row := plotHeight - 1 - int(math.Round(p.Y/top*float64(plotHeight-1)))
		if c < 0 || c >= cols || row < 0 || row >= plotHeight {
			continue
		}
		grid[row][c] = '*'
	}

	fmt.Fprintf(w, "\n%.2f m\n", top)
	for _, line := range grid {
		fmt.Fprintf(w, "|%s\n", strings.TrimRight(string(line), " "))
	}
	fmt.Fprintf(w, "+%s\n", strings.Repeat("-", cols))
	fmt.Fprintf(w, "0%*s\n", cols, fmt.Sprintf("%.2f m", right))
}
