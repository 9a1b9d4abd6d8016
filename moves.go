package rubik

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}     // clockwise
	LPrime = Move{Face: FaceL, Turn: CCW}    // counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double} // 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}     // clockwise
	DPrime = Move{Face: FaceD, Turn: CCW}    // counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double} // 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}     // clockwise
	FPrime = Move{Face: FaceF, Turn: CCW}    // counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double} // 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}     // clockwise
	BPrime = Move{Face: FaceB, Turn: CCW}    // counter-clockwise
	B2     = Move{Face: FaceB, Turn: Double} // 180
)

// AllMoves lists the 18 face turns: every face with each modifier.
var AllMoves = []Move{
	U, UPrime, U2, D, DPrime, D2,
	L, LPrime, L2, R, RPrime, R2,
	F, FPrime, F2, B, BPrime, B2,
}

// SexyMove is R U R' U'. Six repetitions return the cube to its start.
var SexyMove = []Move{R, U, RPrime, UPrime}

// TPerm algorithm. Two applications return the cube to its start.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
