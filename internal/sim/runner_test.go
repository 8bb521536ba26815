package sim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montyhall/internal/game"
	"montyhall/internal/testutil"
)

func newTestRunner(seed int64) *Runner {
	return NewRunner(RunnerConfig{Seed: seed, Logger: testutil.NopLogger()})
}

func TestNewRunner(t *testing.T) {
	t.Run("UsesConfiguredSeed", func(t *testing.T) {
		r := newTestRunner(42)
		assert.Equal(t, int64(42), r.Seed())
	})

	t.Run("ZeroSeedFallsBackToClock", func(t *testing.T) {
		r := NewRunner(RunnerConfig{Logger: testutil.NopLogger()})
		assert.NotEqual(t, int64(0), r.Seed(), "A zero seed must be replaced with a clock seed")
	})
}

func TestRunner_Run(t *testing.T) {
	t.Run("TallyAndDistributionCoverEveryTrial", func(t *testing.T) {
		const trials = 9000
		r := newTestRunner(42)

		res := r.Run(trials)

		assert.Equal(t, trials, res.Tally.Trials(), "Every trial lands in exactly one counter")
		assert.Equal(t, int64(42), res.Seed)
		assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))

		_, err := uuid.Parse(res.RunID)
		assert.NoError(t, err, "RunID should be a well-formed UUID")

		prizeTotal, chosenTotal := 0, 0
		for _, d := range game.AllDoors {
			prizeTotal += res.Distribution.Prize[d]
			chosenTotal += res.Distribution.Chosen[d]
		}
		assert.Equal(t, trials, prizeTotal, "Prize draws must total the trial count")
		assert.Equal(t, trials, chosenTotal, "Chosen draws must total the trial count")
	})

	t.Run("DrawsStayNearUniform", func(t *testing.T) {
		const trials = 90000
		res := newTestRunner(42).Run(trials)

		for _, d := range game.AllDoors {
			prizeShare := float64(res.Distribution.Prize[d]) / float64(trials)
			chosenShare := float64(res.Distribution.Chosen[d]) / float64(trials)
			assert.InDelta(t, 1.0/3.0, prizeShare, 0.01, "Prize draws for %s drifted from uniform", d)
			assert.InDelta(t, 1.0/3.0, chosenShare, 0.01, "Chosen draws for %s drifted from uniform", d)
		}
	})

	t.Run("EmptyRun", func(t *testing.T) {
		res := newTestRunner(42).Run(0)

		assert.Equal(t, Tally{}, res.Tally)
		assert.NotEmpty(t, res.RunID, "Even an empty run is tagged with an ID")
		for _, d := range game.AllDoors {
			assert.Zero(t, res.Distribution.Prize[d])
			assert.Zero(t, res.Distribution.Chosen[d])
		}
	})

	t.Run("DeterministicForASeed", func(t *testing.T) {
		a := newTestRunner(12345).Run(5000)
		b := newTestRunner(12345).Run(5000)

		assert.Equal(t, a.Tally, b.Tally, "Identical seeds must yield identical tallies")
		assert.Equal(t, a.Distribution, b.Distribution, "Identical seeds must yield identical distributions")
		assert.NotEqual(t, a.RunID, b.RunID, "Run IDs are unique per run")
	})

	t.Run("MatchesBareRunTrials", func(t *testing.T) {
		// The instrumented loop must tally exactly like the bare one.
		res := newTestRunner(99).Run(2000)
		bare := RunTrials(2000, testutil.NewTestRNG(99))
		assert.Equal(t, bare, res.Tally)
	})
}

func TestRunner_ProgressLogging(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(RunnerConfig{
		Seed:          42,
		ProgressEvery: 40,
		Logger:        zerolog.New(&buf),
	})

	r.Run(100)

	out := buf.String()
	assert.Contains(t, out, "Starting simulation run")
	assert.Contains(t, out, "Simulation run complete")
	assert.Equal(t, 2, strings.Count(out, "Simulation progress"),
		"Progress should be logged at trials 40 and 80")
}

func TestRunner_RunSeries(t *testing.T) {
	r := newTestRunner(42)
	counts := []int{100, 1000}

	results := r.RunSeries(counts)

	require.Len(t, results, len(counts))
	for i, res := range results {
		assert.Equal(t, counts[i], res.Tally.Trials(), "Series entry %d has the wrong trial count", i)
		assert.Equal(t, int64(42), res.Seed, "Every series entry reports the runner's seed")
	}
	assert.NotEqual(t, results[0].RunID, results[1].RunID, "Each series run gets its own ID")

	// The series consumes one continuous stream: rebuilding the runner
	// with the same seed reproduces it run for run.
	again := newTestRunner(42).RunSeries(counts)
	for i := range results {
		assert.Equal(t, results[i].Tally, again[i].Tally, "Series entry %d must reproduce from the seed", i)
	}
}
