// Package i18n holds the user-facing text for every supported language.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/abhisek/hangman/internal/hangman"
)

// Strings is the text table for one language.
type Strings struct {
	Title        string
	GuessPrompt  string
	Restart      string
	ClearScore   string
	Language     string
	WinMessage   string
	LoseMessage  string
	Score        string
	Wins         string
	Losses       string
	TimeLeft     string
	ElapsedTime  string
	TimeMode     string
	Seconds      string
	Loading      string
	FallbackNote string
	Play         string
	Quit         string
	Back         string
}

var table = map[hangman.Language]Strings{
	hangman.LanguageEnglish: {
		Title:        "Hangman Game",
		GuessPrompt:  "Guess a letter:",
		Restart:      "Restart Game",
		ClearScore:   "Clear Score",
		Language:     "Language",
		WinMessage:   "Congratulations, you've won!",
		LoseMessage:  "Game over! The word was",
		Score:        "Score",
		Wins:         "Wins",
		Losses:       "Losses",
		TimeLeft:     "Time Left",
		ElapsedTime:  "Elapsed Time",
		TimeMode:     "Time Mode",
		Seconds:      "sec",
		Loading:      "Fetching a word...",
		FallbackNote: "Word service unavailable, playing an offline word.",
		Play:         "Play",
		Quit:         "Quit",
		Back:         "Back",
	},
	hangman.LanguageItalian: {
		Title:        "Gioco dell'Impiccato",
		GuessPrompt:  "Indovina una lettera:",
		Restart:      "Ricomincia il gioco",
		ClearScore:   "Pulisci Punteggio",
		Language:     "Lingua",
		WinMessage:   "Congratulazioni, hai vinto!",
		LoseMessage:  "Hai perso! La parola era",
		Score:        "Punteggio",
		Wins:         "Vittorie",
		Losses:       "Sconfitte",
		TimeLeft:     "Tempo Rimanente",
		ElapsedTime:  "Tempo Trascorso",
		TimeMode:     "Modalità Tempo",
		Seconds:      "sec",
		Loading:      "Cerco una parola...",
		FallbackNote: "Servizio parole non disponibile, si gioca con una parola di riserva.",
		Play:         "Gioca",
		Quit:         "Esci",
		Back:         "Indietro",
	},
	hangman.LanguageSpanish: {
		Title:        "Juego del Ahorcado",
		GuessPrompt:  "Adivina una letra:",
		Restart:      "Reiniciar Juego",
		ClearScore:   "Borrar Puntuación",
		Language:     "Idioma",
		WinMessage:   "¡Felicidades, has ganado!",
		LoseMessage:  "¡Juego terminado! La palabra era",
		Score:        "Puntuación",
		Wins:         "Victorias",
		Losses:       "Derrotas",
		TimeLeft:     "Tiempo Restante",
		ElapsedTime:  "Tiempo Transcurrido",
		TimeMode:     "Modo de Tiempo",
		Seconds:      "seg",
		Loading:      "Buscando una palabra...",
		FallbackNote: "Servicio de palabras no disponible, se juega con una palabra de reserva.",
		Play:         "Jugar",
		Quit:         "Salir",
		Back:         "Volver",
	},
}

// For returns the text table for lang, falling back to English.
func For(lang hangman.Language) Strings {
	if s, ok := table[lang]; ok {
		return s
	}
	return table[hangman.LanguageEnglish]
}

// LanguageName is the native display name of lang.
func LanguageName(lang hangman.Language) string {
	switch lang {
	case hangman.LanguageItalian:
		return "Italiano"
	case hangman.LanguageSpanish:
		return "Español"
	default:
		return "English"
	}
}

// TimeModeName is the display name of mode.
func TimeModeName(mode hangman.TimeMode) string {
	switch mode {
	case hangman.TimeModeSpeed:
		return "Speed Hangman"
	case hangman.TimeModeCountdown:
		return "Countdown Mode"
	default:
		return "Normal"
	}
}

// TimerLabel returns the clock caption for mode.
func (s Strings) TimerLabel(mode hangman.TimeMode) string {
	if mode.CountsDown() {
		return s.TimeLeft
	}
	return s.ElapsedTime
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Italian,
	language.Spanish,
})

var matched = []hangman.Language{
	hangman.LanguageEnglish,
	hangman.LanguageItalian,
	hangman.LanguageSpanish,
}

// Detect maps a POSIX locale such as "it_IT.UTF-8" or a BCP 47 tag to the
// closest supported language. Unknown or empty locales yield English.
func Detect(locale string) hangman.Language {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return hangman.LanguageEnglish
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return hangman.LanguageEnglish
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return hangman.LanguageEnglish
	}
	return matched[idx]
}

// DetectEnv applies Detect to the first of LC_ALL, LC_MESSAGES and LANG
// that is set.
func DetectEnv() hangman.Language {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return Detect(v)
		}
	}
	return hangman.LanguageEnglish
}
