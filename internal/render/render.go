// Package render draws cubes and move lists for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	rubik "github.com/SeamusWaldron/rubik_engine"
)

// Sticker colors.
var palette = map[rubik.Color]lipgloss.Color{
	rubik.White:  lipgloss.Color("#FFFFFF"),
	rubik.Yellow: lipgloss.Color("#FFD500"),
	rubik.Orange: lipgloss.Color("#FF5800"),
	rubik.Red:    lipgloss.Color("#C41E3A"),
	rubik.Green:  lipgloss.Color("#009E60"),
	rubik.Blue:   lipgloss.Color("#0051BA"),
}

// Styles
var (
	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// Net layout: each row lists the face drawn in each of four columns, or
// -1 for blank space.
var netRows = [3][4]rubik.Face{
	{-1, rubik.FaceU, -1, -1},
	{rubik.FaceL, rubik.FaceF, rubik.FaceR, rubik.FaceB},
	{-1, rubik.FaceD, -1, -1},
}

// cellFunc renders one facelet.
type cellFunc func(rubik.Color) string

// letter returns the identity of the face whose home color is c.
func letter(c rubik.Color) string {
	for face, home := range rubik.ColorTable() {
		if home == c {
			return rubik.Face(face).String()
		}
	}
	return "?"
}

// Net draws the cube as a colored unfolded net. Every sticker carries its
// face letter, so the net stays readable when the terminal has no colors.
func Net(c *rubik.Cube) string {
	styles := make(map[rubik.Color]lipgloss.Style, len(palette))
	for color, bg := range palette {
		styles[color] = lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("0"))
	}
	return draw(c, func(color rubik.Color) string {
		style, ok := styles[color]
		if !ok {
			return " ? "
		}
		return style.Render(" " + letter(color) + " ")
	}, "", strings.Repeat(" ", 9))
}

// Plain draws the net without styling, writing each facelet as the
// letter of the face whose home color it shows.
func Plain(c *rubik.Cube) string {
	return draw(c, letter, " ", strings.Repeat(" ", 5))
}

// draw lays out the net. Cells and faces are joined by sep; blank fills
// an empty face position. Lines end after their last face.
func draw(c *rubik.Cube, cell cellFunc, sep, blank string) string {
	grids := c.Grids()

	var sb strings.Builder
	for _, band := range netRows {
		last := len(band) - 1
		for last >= 0 && band[last] < 0 {
			last--
		}
		for row := 0; row < 3; row++ {
			faces := make([]string, 0, last+1)
			for _, face := range band[:last+1] {
				if face < 0 {
					faces = append(faces, blank)
					continue
				}
				cells := make([]string, 3)
				for col := 0; col < 3; col++ {
					cells[col] = cell(grids[face][row][col])
				}
				faces = append(faces, strings.Join(cells, sep))
			}
			sb.WriteString(strings.Join(faces, sep))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// MoveLine formats moves on one line. Moves before current are marked
// done and the move at current is highlighted; pass -1 when none has
// been applied yet.
func MoveLine(moves []rubik.Move, current int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		switch {
		case i < current:
			parts[i] = doneStyle.Render(m.Notation())
		case i == current:
			parts[i] = currentStyle.Render("[" + m.Notation() + "]")
		default:
			parts[i] = moveStyle.Render(m.Notation())
		}
	}
	return strings.Join(parts, " ")
}
