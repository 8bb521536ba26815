// Package report renders simulation results as terminal text.
package report

import (
	"fmt"
	"strings"

	"montyhall/internal/game"
	"montyhall/internal/sim"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Options controls report presentation. The zero value renders plain
// uncolored text without the distribution table.
type Options struct {
	Color        bool
	Distribution bool
}

// colorize wraps s in the given ANSI color when enabled.
func colorize(s, color string, enabled bool) string {
	if !enabled {
		return s
	}
	return color + s + ColorReset
}

// ratio renders a win count against the trial total, e.g. "667/1000 (66.70%)".
// A zero total renders as 0.00% rather than dividing by zero.
func ratio(wins, total int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(wins) / float64(total) * 100
	}
	return fmt.Sprintf("%d/%d (%.2f%%)", wins, total, pct)
}

// Render formats the final report for a single simulation run: the
// trial count used, both win counts, and both win percentages.
func Render(res sim.Result, opts Options) string {
	var sb strings.Builder

	total := res.Tally.Trials()

	sb.WriteString(colorize("Monty Hall simulation", ColorCyan, opts.Color) + "\n")
	sb.WriteString(colorize(fmt.Sprintf("run %s  seed %d", res.RunID, res.Seed), ColorGray, opts.Color) + "\n\n")

	sb.WriteString(fmt.Sprintf("trials: %d\n", total))
	sb.WriteString(fmt.Sprintf("switch: %s\n", colorize(ratio(res.Tally.SwitchWins, total), ColorGreen, opts.Color)))
	sb.WriteString(fmt.Sprintf("keep:   %s\n", colorize(ratio(res.Tally.KeepWins, total), ColorYellow, opts.Color)))

	if opts.Distribution {
		sb.WriteString("\n")
		writeDistribution(&sb, res.Distribution)
	}

	sb.WriteString(colorize(fmt.Sprintf("\nelapsed: %s", res.Elapsed), ColorGray, opts.Color) + "\n")

	return sb.String()
}

// RenderSeries formats a convergence table for a series of runs,
// one row per trial count.
func RenderSeries(results []sim.Result, opts Options) string {
	var sb strings.Builder

	sb.WriteString(colorize("Monty Hall convergence", ColorCyan, opts.Color) + "\n")
	if len(results) > 0 {
		sb.WriteString(colorize(fmt.Sprintf("seed %d", results[0].Seed), ColorGray, opts.Color) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%10s  %-26s %-26s\n", "trials", "switch", "keep"))
	for _, res := range results {
		total := res.Tally.Trials()
		// Pad before coloring so escape codes do not skew the columns.
		switchCell := fmt.Sprintf("%-26s", ratio(res.Tally.SwitchWins, total))
		keepCell := fmt.Sprintf("%-26s", ratio(res.Tally.KeepWins, total))
		sb.WriteString(fmt.Sprintf("%10d  %s %s\n",
			total,
			colorize(switchCell, ColorGreen, opts.Color),
			colorize(keepCell, ColorYellow, opts.Color)))
	}

	return sb.String()
}

// writeDistribution lays out the per-door counts of the prize and pick
// draws observed during a run.
func writeDistribution(sb *strings.Builder, d sim.Distribution) {
	sb.WriteString("draw distribution:\n")
	sb.WriteString(fmt.Sprintf("%-8s %8s %8s\n", "", "prize", "chosen"))
	for _, door := range game.AllDoors {
		sb.WriteString(fmt.Sprintf("%-8s %8d %8d\n", door, d.Prize[door], d.Chosen[door]))
	}
}
