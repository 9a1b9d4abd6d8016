package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rubik "github.com/SeamusWaldron/rubik_engine"
)

func TestPlain_Solved(t *testing.T) {
	lines := strings.Split(strings.TrimRight(Plain(rubik.NewCube()), "\n"), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "      U U U", lines[0])
	assert.Equal(t, "L L L F F F R R R B B B", lines[4])
	assert.Equal(t, "      D D D", lines[8])
}

func TestPlain_AfterR(t *testing.T) {
	c := rubik.NewCube()
	c.Apply(rubik.R)

	lines := strings.Split(strings.TrimRight(Plain(c), "\n"), "\n")
	require.Len(t, lines, 9)

	// U's right column now shows F, B's left column shows U
	assert.Equal(t, "      U U F", lines[0])
	assert.Equal(t, "L L L F F D R R R U B B", lines[3])
}

func TestNet_Shape(t *testing.T) {
	c := rubik.NewCube()
	c.Apply(rubik.TPerm...)

	out := Net(c)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 9)
	assert.NotContains(t, out, "??")
}

func TestNet_WithoutColors(t *testing.T) {
	profile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(profile) })

	c := rubik.NewCube()
	c.Apply(rubik.R)

	out := Net(c)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "          U  U  F ", lines[0])

	stickers := strings.Join(strings.Fields(out), "")
	assert.Len(t, stickers, 54)
	assert.Equal(t, c.Facelets()[:9], strings.Join(strings.Fields(strings.Join(lines[:3], " ")), ""))
	for _, r := range stickers {
		assert.Contains(t, "URFDLB", string(r))
	}
}

func TestMoveLine(t *testing.T) {
	moves := []rubik.Move{rubik.R, rubik.UPrime, rubik.F2}

	line := MoveLine(moves, 1)
	assert.Contains(t, line, "R")
	assert.Contains(t, line, "[U']")
	assert.Contains(t, line, "F2")

	assert.NotContains(t, MoveLine(moves, -1), "[")
	assert.Empty(t, MoveLine(nil, -1))
}
