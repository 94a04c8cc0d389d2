// Package scene draws the hangman gallows as text.
package scene

import (
	"strings"

	"github.com/abhisek/hangman/internal/hangman"
)

// Part is one body part of the hanged figure.
type Part int

const (
	Head Part = iota
	Body
	LeftArm
	RightArm
	LeftLeg
	RightLeg
)

// Parts lists the body parts in the order errors reveal them.
var Parts = []Part{Head, Body, LeftArm, RightArm, LeftLeg, RightLeg}

func (p Part) String() string {
	switch p {
	case Head:
		return "head"
	case Body:
		return "body"
	case LeftArm:
		return "left arm"
	case RightArm:
		return "right arm"
	case LeftLeg:
		return "left leg"
	case RightLeg:
		return "right leg"
	}
	return "unknown"
}

// VisibleParts returns the parts shown after errors wrong guesses.
func VisibleParts(errors int) []Part {
	n := min(max(errors, 0), hangman.MaxErrors, len(Parts))
	return Parts[:n]
}

// Render draws the gallows with the parts for errors wrong guesses.
// Every frame has the same dimensions.
func Render(errors int) string {
	shown := make(map[Part]bool, len(Parts))
	for _, p := range VisibleParts(errors) {
		shown[p] = true
	}
	pick := func(p Part, glyph string) string {
		if shown[p] {
			return glyph
		}
		return " "
	}

	lines := []string{
		"  +---+",
		"  |   |",
		"  " + pick(Head, "O") + "   |",
		" " + pick(LeftArm, "/") + pick(Body, "|") + pick(RightArm, "\\") + "  |",
		" " + pick(LeftLeg, "/") + " " + pick(RightLeg, "\\") + "  |",
		"      |",
		"=========",
	}
	return strings.Join(lines, "\n")
}
