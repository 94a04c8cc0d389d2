package hangman

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeGuess returns the lowercase a–z letter in input, or false when
// input is not exactly one alphabetic character.
func NormalizeGuess(input string) (rune, bool) {
	rs := []rune(input)
	if len(rs) != 1 {
		return 0, false
	}
	r := unicode.ToLower(rs[0])
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return r, true
}

// foldLetter maps a word character to the a–z key used for matching.
// Accented letters fold to their base letter. Anything that does not fold
// to a–z returns false and is shown without being guessed.
func foldLetter(r rune) (rune, bool) {
	r = unicode.ToLower(r)
	if r >= 'a' && r <= 'z' {
		return r, true
	}
	if !unicode.IsLetter(r) {
		return 0, false
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, string(r))
	if err != nil {
		return 0, false
	}
	fr := []rune(folded)
	if len(fr) != 1 || fr[0] < 'a' || fr[0] > 'z' {
		return 0, false
	}
	return fr[0], true
}

// NormalizeWord lowercases and trims a word from a vocabulary source.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// requiredLetters returns the distinct a–z keys a word needs to be solved.
func requiredLetters(word string) map[rune]struct{} {
	need := make(map[rune]struct{})
	for _, r := range word {
		if k, ok := foldLetter(r); ok {
			need[k] = struct{}{}
		}
	}
	return need
}
