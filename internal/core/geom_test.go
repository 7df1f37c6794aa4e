package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 2, 2),
			b:        NewBox(1, 1, 2, 2),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 2, 2),
			b:        NewBox(5, 0, 2, 2),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 2, 2),
			b:        NewBox(0, 5, 2, 2),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(0, 0, 2, 2),
			b:        NewBox(2, 0, 2, 2),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(1, 1, 1, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(10, 10, 4, 2)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"center", 10, 10, true},
		{"left edge (inclusive)", 8, 10, true},
		{"top-right corner (inclusive)", 12, 11, true},
		{"outside left", 7.9, 10, false},
		{"outside above", 10, 11.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 4)

	if b.Left() != -5 || b.Right() != 15 {
		t.Errorf("Left/Right = %v/%v, expected -5/15", b.Left(), b.Right())
	}
	if b.Low() != 8 || b.High() != 12 {
		t.Errorf("Low/High = %v/%v, expected 8/12", b.Low(), b.High())
	}
}

func TestVec2(t *testing.T) {
	v := V(1, 2).Add(V(3, 4)).Scale(0.5)
	if v.X != 2 || v.Y != 3 {
		t.Errorf("V(1,2)+V(3,4) scaled by 0.5 = %+v, expected {2 3}", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{math.NaN(), 0.0, 10.0, 0.0},
		{math.Inf(1), 0.0, 0.05, 0.05},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the absolute value")
	}
}
