package rubik

import "testing"

func TestPhase(t *testing.T) {
	tests := []struct {
		moves string
		want  Phase
	}{
		{"", PhaseSolved},
		{"R", PhaseScrambled},
		{"U", PhaseScrambled},
		{"D", PhaseYellowCross},
		{"D2", PhaseYellowCross},
	}

	for _, tt := range tests {
		c := NewCube()
		if err := c.ApplyNotation(tt.moves); err != nil {
			t.Fatalf("%q: %v", tt.moves, err)
		}
		if got := c.Phase(); got != tt.want {
			t.Errorf("%q: phase = %s, want %s", tt.moves, got, tt.want)
			t.Log(c.String())
		}
	}
}

func TestPhase_Ordered(t *testing.T) {
	if !(PhaseScrambled < PhaseWhiteCross && PhaseYellowOriented < PhaseSolved) {
		t.Error("phases should be ordered")
	}
	if PhaseSecondLayer.DisplayName() != "Second Layer" {
		t.Errorf("unexpected display name %q", PhaseSecondLayer.DisplayName())
	}
}

func TestPhase_DTurnKeepsUpperLayers(t *testing.T) {
	c := NewCube()
	c.Apply(D)
	if !c.IsSecondLayerComplete() {
		t.Error("D turn should keep the first two layers")
	}
	if c.AreYellowCornersPositioned() {
		t.Error("D turn moves every D corner out of its slot")
	}
}
