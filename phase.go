package rubik

// Phase represents progress through the layer-by-layer method with white
// on U and green on F. Phases are ordered, so they compare with < and >.
type Phase int

const (
	// PhaseScrambled indicates no layer-by-layer milestone is complete.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the four U edges show white and their
	// side facelets match the adjacent centers.
	PhaseWhiteCross

	// PhaseFirstLayer indicates the whole U layer is complete.
	PhaseFirstLayer

	// PhaseSecondLayer indicates the middle layer edges are in place.
	PhaseSecondLayer

	// PhaseYellowCross indicates the four D edges show yellow. They may
	// not be in their final positions yet.
	PhaseYellowCross

	// PhaseYellowCorners indicates every D corner sits in its home slot,
	// possibly twisted.
	PhaseYellowCorners

	// PhaseYellowOriented indicates the D corners are twisted correctly.
	PhaseYellowOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowCorners:
		return "yellow_corners"
	case PhaseYellowOriented:
		return "yellow_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowCorners:
		return "Yellow Corners Positioned"
	case PhaseYellowOriented:
		return "Yellow Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// sideFaces are the four faces around the U-D axis.
var sideFaces = [4]Face{FaceF, FaceR, FaceB, FaceL}

// facelet addresses one cell of one face.
type facelet struct {
	face     Face
	row, col int
}

// uEdges pairs each U edge with the side facelet it borders.
var uEdges = [4][2]facelet{
	{{FaceU, 0, 1}, {FaceB, 0, 1}},
	{{FaceU, 1, 0}, {FaceL, 0, 1}},
	{{FaceU, 1, 2}, {FaceR, 0, 1}},
	{{FaceU, 2, 1}, {FaceF, 0, 1}},
}

// dCorners lists the facelets of each D corner slot.
var dCorners = [4][3]facelet{
	{{FaceF, 2, 2}, {FaceR, 2, 0}, {FaceD, 0, 2}},
	{{FaceR, 2, 2}, {FaceB, 2, 0}, {FaceD, 2, 2}},
	{{FaceB, 2, 2}, {FaceL, 2, 0}, {FaceD, 2, 0}},
	{{FaceL, 2, 2}, {FaceF, 2, 0}, {FaceD, 0, 0}},
}

func (c *Cube) at(f facelet) Color {
	return c.faces[f.face][f.row][f.col]
}

// home reports whether a facelet shows its face's home color.
func (c *Cube) home(f facelet) bool {
	return c.at(f) == HomeColor(f.face)
}

// IsWhiteCrossComplete checks the four U edges.
func (c *Cube) IsWhiteCrossComplete() bool {
	for _, e := range uEdges {
		if !c.home(e[0]) || !c.home(e[1]) {
			return false
		}
	}
	return true
}

// IsFirstLayerComplete checks the cross plus the four U corners.
func (c *Cube) IsFirstLayerComplete() bool {
	if !c.IsWhiteCrossComplete() {
		return false
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !c.home(facelet{FaceU, i, j}) {
				return false
			}
		}
	}
	for _, f := range sideFaces {
		if !c.home(facelet{f, 0, 0}) || !c.home(facelet{f, 0, 2}) {
			return false
		}
	}
	return true
}

// IsSecondLayerComplete checks the first layer plus the middle edges.
func (c *Cube) IsSecondLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}
	for _, f := range sideFaces {
		if !c.home(facelet{f, 1, 0}) || !c.home(facelet{f, 1, 2}) {
			return false
		}
	}
	return true
}

// IsYellowCrossComplete checks that the D edges show yellow.
func (c *Cube) IsYellowCrossComplete() bool {
	if !c.IsSecondLayerComplete() {
		return false
	}
	for _, f := range []facelet{{FaceD, 0, 1}, {FaceD, 1, 0}, {FaceD, 1, 2}, {FaceD, 2, 1}} {
		if !c.home(f) {
			return false
		}
	}
	return true
}

// AreYellowCornersPositioned checks that each D corner slot holds the
// right piece, ignoring twist.
func (c *Cube) AreYellowCornersPositioned() bool {
	if !c.IsYellowCrossComplete() {
		return false
	}
	for _, slot := range dCorners {
		var want, got [3]Color
		for i, f := range slot {
			want[i] = HomeColor(f.face)
			got[i] = c.at(f)
		}
		if !sameColors(want, got) {
			return false
		}
	}
	return true
}

// AreYellowCornersOriented checks that every D corner is in place and
// twisted correctly.
func (c *Cube) AreYellowCornersOriented() bool {
	if !c.AreYellowCornersPositioned() {
		return false
	}
	for _, slot := range dCorners {
		for _, f := range slot {
			if !c.home(f) {
				return false
			}
		}
	}
	return true
}

// sameColors reports whether a and b hold the same colors in any order.
func sameColors(a, b [3]Color) bool {
	var count [6]int
	for i := range a {
		if a[i] > Blue || b[i] > Blue {
			return false
		}
		count[a[i]]++
		count[b[i]]--
	}
	for _, n := range count {
		if n != 0 {
			return false
		}
	}
	return true
}

// Phase returns the furthest layer-by-layer milestone the cube has
// reached.
func (c *Cube) Phase() Phase {
	switch {
	case c.IsSolved():
		return PhaseSolved
	case c.AreYellowCornersOriented():
		return PhaseYellowOriented
	case c.AreYellowCornersPositioned():
		return PhaseYellowCorners
	case c.IsYellowCrossComplete():
		return PhaseYellowCross
	case c.IsSecondLayerComplete():
		return PhaseSecondLayer
	case c.IsFirstLayerComplete():
		return PhaseFirstLayer
	case c.IsWhiteCrossComplete():
		return PhaseWhiteCross
	default:
		return PhaseScrambled
	}
}
