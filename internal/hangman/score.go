package hangman

// Score is the cumulative tally across rounds.
type Score struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Record returns the score after a round outcome.
func (sc Score) Record(o Outcome) Score {
	switch o {
	case OutcomeWon:
		sc.Wins++
	case OutcomeLost:
		sc.Losses++
	}
	return sc
}

// Valid reports whether both counters are non-negative.
func (sc Score) Valid() bool {
	return sc.Wins >= 0 && sc.Losses >= 0
}

// Clone returns a deep copy of the state.
func (st State) Clone() State {
	st.Session = st.Session.Clone()
	return st
}
