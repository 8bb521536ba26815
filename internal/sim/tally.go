// Package sim aggregates simulated rounds into win tallies for the
// switching and keeping strategies.
package sim

import "montyhall/internal/game"

// Tally holds the cumulative win counts of a trial run.
//
// Exactly one of the two counters increments per simulated round: the
// host never opens the prize door, so the prize is always behind
// either the kept pick or the switch destination. A tally built from
// n rounds therefore always satisfies SwitchWins+KeepWins == n.
type Tally struct {
	SwitchWins int
	KeepWins   int
}

// Record returns a copy of t with the counter won by o incremented.
// The tally is threaded through the trial loop as a value rather than
// mutated in place.
func (t Tally) Record(o game.Outcome) Tally {
	switch {
	case o.SwitchWins():
		t.SwitchWins++
	case o.KeepWins():
		t.KeepWins++
	}
	return t
}

// Trials returns the number of rounds recorded.
func (t Tally) Trials() int { return t.SwitchWins + t.KeepWins }

// SwitchPct returns the switching win percentage, 0 for an empty tally.
func (t Tally) SwitchPct() float64 {
	if t.Trials() == 0 {
		return 0
	}
	return float64(t.SwitchWins) / float64(t.Trials()) * 100
}

// KeepPct returns the keeping win percentage, 0 for an empty tally.
func (t Tally) KeepPct() float64 {
	if t.Trials() == 0 {
		return 0
	}
	return float64(t.KeepWins) / float64(t.Trials()) * 100
}

// RunTrials simulates trials independent rounds against src and
// returns the final tally. A negative count behaves as zero. The loop
// is iterative and keeps no per-round state, so arbitrarily large
// counts run in constant additional space.
func RunTrials(trials int, src game.Source) Tally {
	var t Tally
	for i := 0; i < trials; i++ {
		t = t.Record(game.SimulateRound(src))
	}
	return t
}
