package hangman

import "fmt"

const (
	// MaxErrors is the number of wrong guesses that ends a round.
	MaxErrors = 6

	// InitialTime is the starting clock, in seconds, for Speed and Countdown.
	InitialTime = 60

	// CountdownPenalty is the number of seconds a wrong guess costs in Countdown.
	CountdownPenalty = 10

	// FallbackWord is played when the vocabulary source fails.
	FallbackWord = "error"
)

// Status is the lifecycle of a round.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether the round is over.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// TimeMode selects how the round clock behaves.
type TimeMode string

const (
	TimeModeNormal    TimeMode = "normal"    // elapsed time, never ends the round
	TimeModeSpeed     TimeMode = "speed"     // countdown from InitialTime
	TimeModeCountdown TimeMode = "countdown" // countdown with a penalty per miss
)

// TimeModes lists the modes in display order.
var TimeModes = []TimeMode{TimeModeNormal, TimeModeSpeed, TimeModeCountdown}

// CountsDown reports whether the clock runs towards zero.
func (m TimeMode) CountsDown() bool {
	return m == TimeModeSpeed || m == TimeModeCountdown
}

// StartTime returns the clock value a fresh round begins with.
func (m TimeMode) StartTime() int {
	if m.CountsDown() {
		return InitialTime
	}
	return 0
}

// Next returns the mode after m, wrapping around.
func (m TimeMode) Next() TimeMode {
	for i, tm := range TimeModes {
		if tm == m {
			return TimeModes[(i+1)%len(TimeModes)]
		}
	}
	return TimeModeNormal
}

// ParseTimeMode converts a string to a TimeMode.
func ParseTimeMode(s string) (TimeMode, error) {
	for _, tm := range TimeModes {
		if string(tm) == s {
			return tm, nil
		}
	}
	return "", fmt.Errorf("unknown time mode %q (want normal, speed or countdown)", s)
}

// Language selects the word source and display strings.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageItalian Language = "it"
	LanguageSpanish Language = "es"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LanguageEnglish, LanguageItalian, LanguageSpanish}

// Next returns the language after l, wrapping around.
func (l Language) Next() Language {
	for i, lang := range Languages {
		if lang == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return LanguageEnglish
}

// ParseLanguage converts a language code to a Language.
func ParseLanguage(s string) (Language, error) {
	for _, lang := range Languages {
		if string(lang) == s {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unknown language %q (want en, it or es)", s)
}

// Outcome is the terminal transition produced by a single event, if any.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// State is the whole application state: the live round plus the
// preferences and score that outlive it.
type State struct {
	Session  Session
	Score    Score
	Language Language
	TimeMode TimeMode
}
