package sim

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"montyhall/internal/game"
)

// RunnerConfig holds configuration for a simulation runner.
type RunnerConfig struct {
	Seed          int64 // 0 seeds from the clock
	ProgressEvery int   // log progress every N trials; 0 disables
	Logger        zerolog.Logger
}

// Runner drives instrumented trial runs off a single seeded random
// stream, logging run lifecycle and tagging every run with an ID.
type Runner struct {
	cfg    RunnerConfig
	seed   int64
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewRunner creates a runner. A zero cfg.Seed is replaced with a
// clock-derived seed so separate invocations produce fresh streams.
func NewRunner(cfg RunnerConfig) *Runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Runner{
		cfg:    cfg,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		logger: cfg.Logger.With().Str("component", "runner").Logger(),
	}
}

// Seed returns the seed the runner's random stream was built from.
func (r *Runner) Seed() int64 { return r.seed }

// Distribution counts how often each door came up in the two uniform
// draws of every round. Each map totals the trial count of its run.
type Distribution struct {
	Prize  map[game.Door]int
	Chosen map[game.Door]int
}

func newDistribution() Distribution {
	return Distribution{
		Prize:  make(map[game.Door]int, len(game.AllDoors)),
		Chosen: make(map[game.Door]int, len(game.AllDoors)),
	}
}

func (d Distribution) record(o game.Outcome) {
	d.Prize[o.Prize]++
	d.Chosen[o.Chosen]++
}

// Result is the full record of one instrumented run.
type Result struct {
	RunID        string
	Seed         int64
	Tally        Tally
	Distribution Distribution
	Elapsed      time.Duration
}

// Run executes trials rounds on the runner's stream and returns the
// instrumented result. Negative counts behave as zero, matching
// RunTrials.
func (r *Runner) Run(trials int) Result {
	runID := uuid.New().String()
	logger := r.logger.With().Str("run_id", runID).Logger()

	logger.Info().
		Int64("seed", r.seed).
		Int("trials", trials).
		Msg("Starting simulation run")

	start := time.Now()
	var tally Tally
	dist := newDistribution()

	for i := 0; i < trials; i++ {
		o := game.SimulateRound(r.rng)
		tally = tally.Record(o)
		dist.record(o)

		if r.cfg.ProgressEvery > 0 && (i+1)%r.cfg.ProgressEvery == 0 {
			logger.Debug().
				Int("completed", i+1).
				Int("switch_wins", tally.SwitchWins).
				Int("keep_wins", tally.KeepWins).
				Msg("Simulation progress")
		}
	}
	elapsed := time.Since(start)

	logger.Info().
		Int("trials", tally.Trials()).
		Int("switch_wins", tally.SwitchWins).
		Int("keep_wins", tally.KeepWins).
		Dur("elapsed", elapsed).
		Msg("Simulation run complete")

	return Result{
		RunID:        runID,
		Seed:         r.seed,
		Tally:        tally,
		Distribution: dist,
		Elapsed:      elapsed,
	}
}

// RunSeries executes one run per requested count, reusing the runner's
// random stream, so a whole series reproduces from a single seed.
func (r *Runner) RunSeries(counts []int) []Result {
	results := make([]Result, 0, len(counts))
	for _, n := range counts {
		results = append(results, r.Run(n))
	}
	return results
}
