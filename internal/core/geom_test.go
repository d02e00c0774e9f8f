package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "identical boxes",
			a:        Box{X: 3, Y: 4, W: 30, H: 20},
			b:        Box{X: 3, Y: 4, W: 30, H: 20},
			expected: true,
		},
		{
			name:     "touching right edge",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 0, Y: 10, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching corner",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 10, Y: 10, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained box",
			a:        Box{X: 0, Y: 0, W: 40, H: 40},
			b:        Box{X: 10, Y: 10, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "far apart",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 100, Y: 100, W: 10, H: 10},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxContainsStrict(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 80, H: 80}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 50, 50, true},
		{"left border", 10, 50, false},
		{"right border", 90, 50, false},
		{"top border", 50, 10, false},
		{"just inside corner", 10.5, 10.5, true},
		{"outside", 5, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.ContainsStrict(tc.x, tc.y); got != tc.expected {
				t.Errorf("ContainsStrict(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxOutside(t *testing.T) {
	bounds := Size{W: 600, H: 400}

	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"spawned above top edge", Box{X: 100, Y: -40, W: 40, H: 40}, false},
		{"inside", Box{X: 100, Y: 100, W: 40, H: 40}, false},
		{"resting on bottom edge", Box{X: 100, Y: 400, W: 40, H: 40}, false},
		{"past bottom edge", Box{X: 100, Y: 400.5, W: 40, H: 40}, true},
		{"past left edge", Box{X: -41, Y: 100, W: 40, H: 40}, true},
		{"past right edge", Box{X: 601, Y: 100, W: 40, H: 40}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.b.Outside(bounds); got != tc.expected {
				t.Errorf("Outside() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
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
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{585, 0.0, 570.0, 570.0},
		{math.NaN(), 0.0, 10.0, 0.0},
		{math.Inf(1), 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestVecOps(t *testing.T) {
	v := Vec{X: 1, Y: 2}.Add(Vec{X: 3, Y: 4}).Scale(0.5)
	if v.X != 2 || v.Y != 3 {
		t.Errorf("Add/Scale = %+v, expected {2 3}", v)
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"inside", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 4), NewRect(2, 3, 4, 4)},
		{"touching", NewRect(0, 0, 10, 10), NewRect(10, 0, 5, 5), Rect{}},
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(5, 5, 2, 2), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}
