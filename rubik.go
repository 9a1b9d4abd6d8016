// Package rubik models a 3x3x3 Rubik's cube at the facelet level.
//
// # Features
//
//   - Six 3x3 facelet grids kept consistent under any move sequence
//   - Standard move notation: R, R', R2 and so on
//   - Solved-state detection and layer-by-layer phase detection
//   - Canonical 54-character serialization for two-phase solvers
//   - Random scrambles with no immediately repeated face
//   - Sessions that notify observers after every move
//
// # Quick Start
//
//	cube := rubik.NewCube()
//
//	// Apply moves using predefined constants
//	cube.Apply(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    // Unrecognized tokens were skipped; the others were applied.
//	    log.Println(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println("Facelets:", cube.Facelets())
//
// # Sessions
//
// A Session owns a cube and emits an Event after each move:
//
//	s := rubik.NewSession(rubik.WithObserver(func(ev rubik.Event) {
//	    fmt.Println(ev.Index, ev.Move, ev.Solved)
//	}))
//	s.Scramble()
//
// # Notation
//
// A token's first character names the face (U, D, L, R, F, B). A second
// character ' turns counter-clockwise and 2 turns twice; any other second
// character is read as a plain clockwise turn. Tokens naming an unknown
// face are skipped and reported as *TokenError values.
package rubik
