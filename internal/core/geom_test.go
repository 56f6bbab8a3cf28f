package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestGhostColorCycles(t *testing.T) {
	if GhostColor(0) == GhostColor(1) {
		t.Error("neighbouring ghosts should differ in color")
	}
	if GhostColor(0) != GhostColor(2) {
		t.Errorf("GhostColor(2) = %v, expected %v", GhostColor(2), GhostColor(0))
	}
	if GhostColor(-1) != GhostColor(1) {
		t.Error("negative IDs should not panic and map like positive ones")
	}
}
