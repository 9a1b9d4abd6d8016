package rubik

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Orange Color = 2 // Left face when solved
	Red    Color = 3 // Right face when solved
	Green  Color = 4 // Front face when solved
	Blue   Color = 5 // Back face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Face identifies one of the six faces. The constant order is the
// canonical serialization order.
type Face int

const (
	FaceU Face = 0 // Up
	FaceR Face = 1 // Right
	FaceF Face = 2 // Front
	FaceD Face = 3 // Down
	FaceL Face = 4 // Left
	FaceB Face = 5 // Back
)

// Faces lists every face in canonical serialization order.
var Faces = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceU && f <= FaceB
}

// ParseFace maps an identity letter to its face. Only upper-case
// letters are accepted.
func ParseFace(b byte) (Face, bool) {
	switch b {
	case 'U':
		return FaceU, true
	case 'R':
		return FaceR, true
	case 'F':
		return FaceF, true
	case 'D':
		return FaceD, true
	case 'L':
		return FaceL, true
	case 'B':
		return FaceB, true
	default:
		return 0, false
	}
}

// HomeColor returns the color a face shows when the cube is solved.
func HomeColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceR:
		return Red
	case FaceF:
		return Green
	case FaceD:
		return Yellow
	case FaceL:
		return Orange
	case FaceB:
		return Blue
	default:
		return White
	}
}

// FaceOf returns the face whose home color is c.
func FaceOf(c Color) (Face, bool) {
	switch c {
	case White:
		return FaceU, true
	case Red:
		return FaceR, true
	case Green:
		return FaceF, true
	case Yellow:
		return FaceD, true
	case Orange:
		return FaceL, true
	case Blue:
		return FaceB, true
	default:
		return 0, false
	}
}

// ColorTable returns the color of every face in canonical order.
// Renderers use it to map facelets back to face identities.
func ColorTable() [6]Color {
	var t [6]Color
	for _, f := range Faces {
		t[f] = HomeColor(f)
	}
	return t
}

// Grid is one face's 3x3 facelets in row-major order.
//
// Rows and columns are as seen looking straight at the face with the
// standard net orientation: U has B above it, D has F above it, and the
// four side faces have U above them.
type Grid [3][3]Color

// fill sets every facelet of the grid to c.
func (g *Grid) fill(c Color) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g[i][j] = c
		}
	}
}

// Cube represents a 3x3 Rubik's cube as six facelet grids indexed by Face.
//
// The zero value is not solved; use NewCube. Facelets only change through
// the move methods, which permute cells and never create or destroy a
// color, so each color appears exactly 9 times.
type Cube struct {
	faces [6]Grid
}

// NewCube creates a solved cube: White up, Green front.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset restores the solved state.
func (c *Cube) Reset() {
	for _, f := range Faces {
		c.faces[f].fill(HomeColor(f))
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes hold identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	return c.faces == other.faces
}

// Face returns a copy of one face's grid.
func (c *Cube) Face(f Face) Grid {
	return c.faces[f]
}

// Grids returns a copy of all six grids indexed by Face.
func (c *Cube) Grids() [6]Grid {
	return c.faces
}

// At returns a single facelet.
func (c *Cube) At(f Face, row, col int) Color {
	return c.faces[f][row][col]
}

// ColorCounts tallies how many facelets carry each color.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, 6)
	for _, g := range c.faces {
		for _, row := range g {
			for _, cell := range row {
				counts[cell]++
			}
		}
	}
	return counts
}

// IsSolved returns true if every facelet matches its face's home color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		home := HomeColor(f)
		for _, row := range c.faces[f] {
			for _, cell := range row {
				if cell != home {
					return false
				}
			}
		}
	}
	return true
}

// Facelets returns the 54-character canonical serialization handed to
// solvers: faces in U R F D L B order, each read row-major, each facelet
// written as the identity letter of the face whose home color it shows.
func (c *Cube) Facelets() string {
	var sb strings.Builder
	sb.Grow(54)
	for _, f := range Faces {
		for _, row := range c.faces[f] {
			for _, cell := range row {
				face, ok := FaceOf(cell)
				if !ok {
					sb.WriteByte('?')
					continue
				}
				sb.WriteString(face.String())
			}
		}
	}
	return sb.String()
}

// ParseFacelets builds a cube from a canonical serialization. Only the
// length and alphabet are checked; whether the state is reachable by
// turning a real cube is left to the solver.
func ParseFacelets(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("%w: length %d, want 54", ErrInvalidFacelets, len(s))
	}
	c := &Cube{}
	for i := 0; i < len(s); i++ {
		face, ok := ParseFace(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidFacelets, s[i], i)
		}
		cell := i % 9
		c.faces[Faces[i/9]][cell/3][cell%3] = HomeColor(face)
	}
	return c, nil
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	var sb strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.faces[FaceU][row][col].String() + " ")
		}
		sb.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				sb.WriteString(c.faces[face][row][col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.faces[FaceD][row][col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v Facelets: %s", c.IsSolved(), c.Facelets())
}
