package game

import "fmt"

// Door identifies one of the three positions a round is played over.
// Doors carry no ordering semantics; equality is the only meaningful
// operation on them.
type Door int

const (
	Door1 Door = iota + 1
	Door2
	Door3
)

// AllDoors is the fixed three-door universe, in display order.
// Callers must treat it as read-only.
var AllDoors = []Door{Door1, Door2, Door3}

// String returns the display name, e.g. "door 2".
func (d Door) String() string {
	return fmt.Sprintf("door %d", int(d))
}

// Source provides the uniform randomness for door draws. *math/rand.Rand
// satisfies it; tests substitute scripted implementations.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Outcome records a single simulated round.
//
// Switched is always distinct from Chosen, and Prize is always one of
// the two: the host never opens the prize door, so after the reveal the
// prize sits behind either the kept pick or the switch destination.
type Outcome struct {
	Prize    Door // where the prize actually is
	Chosen   Door // the player's initial pick
	Switched Door // where the player lands after switching
}

// SwitchWins reports whether the switching strategy wins this round.
func (o Outcome) SwitchWins() bool { return o.Switched == o.Prize }

// KeepWins reports whether keeping the initial pick wins this round.
func (o Outcome) KeepWins() bool { return o.Chosen == o.Prize }
