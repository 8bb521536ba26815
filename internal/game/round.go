package game

// Draw returns one element of candidates selected uniformly at random.
//
// It panics when candidates is empty: every caller in the round
// algorithm guarantees a non-empty set, so hitting the panic means an
// implementation bug rather than a runtime condition.
func Draw(candidates []Door, src Source) Door {
	if len(candidates) == 0 {
		panic("game: Draw called with no candidates")
	}
	return candidates[src.Intn(len(candidates))]
}

// remaining returns the doors of AllDoors that are not in exclude.
func remaining(exclude ...Door) []Door {
	out := make([]Door, 0, len(AllDoors))
	for _, d := range AllDoors {
		if !contains(exclude, d) {
			out = append(out, d)
		}
	}
	return out
}

func contains(doors []Door, d Door) bool {
	for _, x := range doors {
		if x == d {
			return true
		}
	}
	return false
}

// SimulateRound plays one full round and returns its outcome.
//
// The prize and the player's pick are two independent uniform draws
// over all three doors; the second draw is never conditioned on the
// first. The host then opens a door that is neither the prize nor the
// pick. When the pick already sits on the prize two doors qualify and
// the host chooses between them uniformly; otherwise exactly one door
// qualifies. The switch destination is the one door left closed
// besides the pick.
//
// Exactly three draws are consumed from src per round (prize, pick,
// reveal); the switch destination is derived, never drawn.
func SimulateRound(src Source) Outcome {
	prize := Draw(AllDoors, src)
	chosen := Draw(AllDoors, src)

	opened := Draw(remaining(prize, chosen), src)
	switched := remaining(chosen, opened)[0]

	return Outcome{Prize: prize, Chosen: chosen, Switched: switched}
}
