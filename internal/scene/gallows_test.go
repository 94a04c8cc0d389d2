package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleParts(t *testing.T) {
	tests := []struct {
		errors int
		want   int
	}{
		{-1, 0}, {0, 0}, {1, 1}, {3, 3}, {6, 6}, {9, 6},
	}
	for _, tt := range tests {
		assert.Len(t, VisibleParts(tt.errors), tt.want, "errors=%d", tt.errors)
	}
	assert.Equal(t, []Part{Head, Body}, VisibleParts(2))
}

func TestRender_Empty(t *testing.T) {
	out := Render(0)
	assert.NotContains(t, out, "O")
	assert.Contains(t, out, "+---+")
	assert.Contains(t, out, "=========")
}

func TestRender_Full(t *testing.T) {
	want := strings.Join([]string{
		"  +---+",
		"  |   |",
		"  O   |",
		" /|\\  |",
		" / \\  |",
		"      |",
		"=========",
	}, "\n")
	assert.Equal(t, want, Render(6))
}

func TestRender_Progressive(t *testing.T) {
	assert.Contains(t, Render(1), "  O   |")
	assert.Equal(t, "  |   |", strings.Split(Render(2), "\n")[3])
	assert.Equal(t, "      |", strings.Split(Render(1), "\n")[3])
	assert.Contains(t, Render(3), " /|   |")
	assert.Contains(t, Render(5), " /    |")
}

func TestRender_StableShape(t *testing.T) {
	base := strings.Split(Render(0), "\n")
	for e := 1; e <= 6; e++ {
		lines := strings.Split(Render(e), "\n")
		assert.Len(t, lines, len(base))
		for i := range lines {
			assert.Equal(t, len(base[i]), len(lines[i]), "errors=%d line=%d", e, i)
		}
	}
}

func TestPartString(t *testing.T) {
	assert.Equal(t, "head", Head.String())
	assert.Equal(t, "right leg", RightLeg.String())
}
