package hangman

import (
	"sort"
	"strings"
)

// Session is a single round of hangman.
type Session struct {
	// RoundID identifies the round. Events tagged with an older ID are stale.
	RoundID string

	// Word is the lowercase target. Empty while Awaiting.
	Word string

	// Awaiting is true until the vocabulary source has answered.
	Awaiting bool

	// Fallback is true when Word is FallbackWord because the fetch failed.
	Fallback bool

	// Guessed holds every a–z letter tried this round.
	Guessed map[rune]struct{}

	Errors    int
	Status    Status
	TimeMode  TimeMode
	TimeValue int
	Language  Language
}

// NewSession returns a reset round waiting for its word.
func NewSession(roundID string, lang Language, mode TimeMode) Session {
	return Session{
		RoundID:   roundID,
		Awaiting:  true,
		Guessed:   make(map[rune]struct{}),
		Status:    StatusPlaying,
		TimeMode:  mode,
		TimeValue: mode.StartTime(),
		Language:  lang,
	}
}

// SetWord installs the round's word. An empty word installs FallbackWord.
// It only has an effect while Awaiting, so the word is set once per round.
func (s *Session) SetWord(word string, fallback bool) {
	if !s.Awaiting {
		return
	}
	word = NormalizeWord(word)
	if word == "" || len(requiredLetters(word)) == 0 {
		word, fallback = FallbackWord, true
	}
	s.Word = word
	s.Fallback = fallback
	s.Awaiting = false
}

// Playable reports whether guesses and ticks currently apply.
func (s *Session) Playable() bool {
	return s.Status == StatusPlaying && !s.Awaiting
}

// HasGuessed reports whether letter was already tried.
func (s *Session) HasGuessed(letter rune) bool {
	_, ok := s.Guessed[letter]
	return ok
}

// Guess applies one letter. It returns the terminal transition it caused,
// if any. Repeated letters, non a–z input, and guesses outside a playable
// round are ignored.
func (s *Session) Guess(letter rune) Outcome {
	if !s.Playable() || letter < 'a' || letter > 'z' || s.HasGuessed(letter) {
		return OutcomeNone
	}
	s.Guessed[letter] = struct{}{}

	if _, hit := requiredLetters(s.Word)[letter]; !hit {
		return s.miss()
	}

	if s.Solved() {
		s.Status = StatusWon
		return OutcomeWon
	}
	return OutcomeNone
}

// miss records a wrong guess. The countdown penalty and the error cap can
// both end the round on the same guess; only one loss is reported.
func (s *Session) miss() Outcome {
	s.Errors++
	lost := false

	if s.TimeMode == TimeModeCountdown {
		s.TimeValue -= CountdownPenalty
		if s.TimeValue <= 0 {
			s.TimeValue = 0
			lost = true
		}
	}
	if s.Errors >= MaxErrors {
		s.Errors = MaxErrors
		lost = true
	}

	if lost {
		s.Status = StatusLost
		return OutcomeLost
	}
	return OutcomeNone
}

// Tick advances the round clock by one second.
func (s *Session) Tick() Outcome {
	if !s.Playable() {
		return OutcomeNone
	}
	if !s.TimeMode.CountsDown() {
		s.TimeValue++
		return OutcomeNone
	}
	if s.TimeValue <= 1 {
		s.TimeValue = 0
		s.Status = StatusLost
		return OutcomeLost
	}
	s.TimeValue--
	return OutcomeNone
}

// Solved reports whether every letter of the word has been guessed.
func (s *Session) Solved() bool {
	if s.Word == "" {
		return false
	}
	for r := range requiredLetters(s.Word) {
		if !s.HasGuessed(r) {
			return false
		}
	}
	return true
}

// Revealed reports whether the character at a word position is shown.
func (s *Session) Revealed(r rune) bool {
	if s.Status.Terminal() {
		return true
	}
	k, ok := foldLetter(r)
	if !ok {
		return true
	}
	return s.HasGuessed(k)
}

// Mask renders the word with unrevealed letters as placeholder.
// Revealed letters are upper-cased.
func (s *Session) Mask(placeholder string) []string {
	out := make([]string, 0, len(s.Word))
	for _, r := range s.Word {
		if s.Revealed(r) {
			out = append(out, strings.ToUpper(string(r)))
		} else {
			out = append(out, placeholder)
		}
	}
	return out
}

// GuessedLetters returns the tried letters in alphabetical order.
func (s *Session) GuessedLetters() []string {
	out := make([]string, 0, len(s.Guessed))
	for r := range s.Guessed {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// Missed reports whether letter was tried and is not in the word.
func (s *Session) Missed(letter rune) bool {
	if !s.HasGuessed(letter) {
		return false
	}
	_, hit := requiredLetters(s.Word)[letter]
	return !hit
}

// Clone returns a deep copy.
func (s Session) Clone() Session {
	guessed := make(map[rune]struct{}, len(s.Guessed))
	for r := range s.Guessed {
		guessed[r] = struct{}{}
	}
	s.Guessed = guessed
	return s
}
