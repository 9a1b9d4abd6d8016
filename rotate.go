package rubik

// strip addresses three facelets of one face that border a turning face:
// a full row or column, optionally walked in reverse index order.
type strip struct {
	face     Face
	row      bool // true: a row, false: a column
	index    int
	reversed bool
}

// cell returns the grid coordinates of the strip's i-th facelet.
func (s strip) cell(i int) (int, int) {
	if s.reversed {
		i = 2 - i
	}
	if s.row {
		return s.index, i
	}
	return i, s.index
}

func row(f Face, i int) strip    { return strip{face: f, row: true, index: i} }
func col(f Face, i int) strip    { return strip{face: f, index: i} }
func revRow(f Face, i int) strip { return strip{face: f, row: true, index: i, reversed: true} }
func revCol(f Face, i int) strip { return strip{face: f, index: i, reversed: true} }

// boundaries lists, for each face, the four neighbor strips touched by a
// clockwise quarter turn. The facelets of strip k move to strip k+1, and
// strip 3 wraps to strip 0, keeping the i-th cell aligned with the i-th
// cell of the next strip.
var boundaries = [6][4]strip{
	FaceU: {row(FaceF, 0), row(FaceL, 0), row(FaceB, 0), row(FaceR, 0)},
	FaceR: {col(FaceU, 2), revCol(FaceB, 0), col(FaceD, 2), col(FaceF, 2)},
	FaceF: {row(FaceU, 2), col(FaceR, 0), revRow(FaceD, 0), revCol(FaceL, 2)},
	FaceD: {row(FaceF, 2), row(FaceR, 2), row(FaceB, 2), row(FaceL, 2)},
	FaceL: {col(FaceU, 0), col(FaceF, 0), col(FaceD, 0), revCol(FaceB, 2)},
	FaceB: {row(FaceU, 0), revCol(FaceL, 0), revRow(FaceD, 2), col(FaceR, 2)},
}

// rotateGrid rotates a grid 90 degrees clockwise in place: cell (i, j)
// moves to (j, 2-i).
func rotateGrid(g *Grid) {
	src := *g
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g[j][2-i] = src[i][j]
		}
	}
}

// cycleStrips shifts the facelets of four strips one position forward.
func (c *Cube) cycleStrips(s [4]strip) {
	// Save the last strip, it is overwritten first
	var saved [3]Color
	for i := 0; i < 3; i++ {
		r, k := s[3].cell(i)
		saved[i] = c.faces[s[3].face][r][k]
	}

	for n := 3; n > 0; n-- {
		dst, src := s[n], s[n-1]
		for i := 0; i < 3; i++ {
			dr, dk := dst.cell(i)
			sr, sk := src.cell(i)
			c.faces[dst.face][dr][dk] = c.faces[src.face][sr][sk]
		}
	}

	for i := 0; i < 3; i++ {
		r, k := s[0].cell(i)
		c.faces[s[0].face][r][k] = saved[i]
	}
}

// quarterTurn turns one face 90 degrees clockwise. Both the face's own
// rotation and the boundary cycle finish before it returns.
func (c *Cube) quarterTurn(f Face) {
	rotateGrid(&c.faces[f])
	c.cycleStrips(boundaries[f])
}

// Apply applies moves in order. Every move is realized as Turn clockwise
// quarter turns. Moves naming an invalid face are ignored; ParseMove never
// produces them.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		if !m.Face.Valid() {
			continue
		}
		for i := 0; i < m.Turn.Quarters(); i++ {
			c.quarterTurn(m.Face)
		}
	}
}

// ApplyMove applies a single move, reporting a move whose face is not one
// of the six.
func (c *Cube) ApplyMove(m Move) error {
	if !m.Face.Valid() {
		return ErrUnrecognizedFace
	}
	c.Apply(m)
	return nil
}

// ApplyNotation parses a whitespace-separated move sequence and applies
// every recognized token. Unrecognized tokens are skipped, the rest of the
// sequence still runs, and the skipped tokens are returned as a joined
// error of *TokenError values.
func (c *Cube) ApplyNotation(seq string) error {
	moves, err := ParseMoves(seq)
	c.Apply(moves...)
	return err
}
