package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"montyhall/internal/config"
	"montyhall/internal/report"
	"montyhall/internal/sim"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	trials := flag.Int("trials", -1, "Number of rounds to simulate (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Random seed (0 to use config default, which seeds from the clock)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	logFormat := flag.String("log-format", "", "Log format (console, json) (empty to use config default)")
	prompt := flag.Bool("prompt", false, "Read the trial count from the console")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors in the report")
	distribution := flag.Bool("distribution", false, "Include the per-door draw distribution in the report")
	sweep := flag.String("sweep", "", "Comma-separated trial counts to run as a convergence series")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *seed == 0 {
		*seed = cfg.Sim.Seed
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if *logFormat == "" {
		*logFormat = cfg.Logging.Format
	}

	// Setup logging
	setupLogging(*logLevel, *logFormat)

	if path := config.ConfigFilePath(); path != "" {
		log.Debug().Str("config_file", path).Msg("Using config file")
	}

	opts := report.Options{
		Color:        cfg.Report.Color && !*noColor,
		Distribution: cfg.Report.Distribution || *distribution,
	}

	runner := sim.NewRunner(sim.RunnerConfig{
		Seed:          *seed,
		ProgressEvery: cfg.Sim.ProgressEvery,
		Logger:        log.Logger,
	})

	if *sweep != "" {
		counts, err := parseSweep(*sweep)
		if err != nil {
			log.Fatal().Err(err).Str("sweep", *sweep).Msg("Invalid sweep counts")
		}
		results := runner.RunSeries(counts)
		fmt.Print(report.RenderSeries(results, opts))
		return
	}

	numTrials := resolveTrials(*trials, *prompt, os.Stdin, cfg.Sim.Trials)
	result := runner.Run(numTrials)
	fmt.Print(report.Render(result, opts))
}

// resolveTrials picks the trial count from the flag, the console
// prompt, or the configured default, in that order. Invalid input
// falls back to the default with a warning rather than aborting.
func resolveTrials(flagTrials int, prompt bool, in io.Reader, defaultTrials int) int {
	if flagTrials > 0 {
		return flagTrials
	}
	if flagTrials != -1 {
		log.Warn().
			Int("trials", flagTrials).
			Int("default", defaultTrials).
			Msg("Trial count must be positive, using default")
		return defaultTrials
	}
	if prompt {
		return promptTrials(in, defaultTrials)
	}
	return defaultTrials
}

// promptTrials reads a trial count from in. An empty line or anything
// that does not parse as a positive integer falls back to the default
// with a warning.
func promptTrials(in io.Reader, defaultTrials int) int {
	fmt.Fprintf(os.Stderr, "Number of rounds to simulate [%d]: ", defaultTrials)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		log.Warn().
			Int("default", defaultTrials).
			Msg("Could not read trial count, using default")
		return defaultTrials
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultTrials
	}

	n, err := strconv.Atoi(line)
	if err != nil || n <= 0 {
		log.Warn().
			Str("input", line).
			Int("default", defaultTrials).
			Msg("Trial count must be a positive integer, using default")
		return defaultTrials
	}
	return n
}

// parseSweep parses a comma-separated list of positive trial counts.
func parseSweep(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid trial count %q: %w", p, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("trial count must be positive, got %d", n)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	// Logs go to stderr so the report on stdout stays pipeable
	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
