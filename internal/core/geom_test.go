package core

import (
	"math"
	"testing"
)

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec2
		ra       float64
		b        Vec2
		rb       float64
		expected bool
	}{
		{"same center", Vec2{0, 0}, 5, Vec2{0, 0}, 5, true},
		{"overlapping", Vec2{0, 0}, 10, Vec2{15, 0}, 10, true},
		{"touching (no overlap)", Vec2{0, 0}, 10, Vec2{20, 0}, 10, false},
		{"far apart", Vec2{0, 0}, 10, Vec2{100, 100}, 10, false},
		{"diagonal overlap", Vec2{0, 0}, 10, Vec2{10, 10}, 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(tc.a, tc.ra, tc.b, tc.rb); got != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", got, tc.expected)
			}
			// Symmetry
			if got := CirclesOverlap(tc.b, tc.rb, tc.a, tc.ra); got != tc.expected {
				t.Errorf("CirclesOverlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPointInCircle(t *testing.T) {
	c := Vec2{X: 50, Y: 50}
	if !PointInCircle(Vec2{X: 55, Y: 50}, c, 10) {
		t.Error("point 5px from center should be inside radius 10")
	}
	if PointInCircle(Vec2{X: 60, Y: 50}, c, 10) {
		t.Error("point exactly on the rim should be outside")
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(-math.Pi/2, 7)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y+7) > 1e-9 {
		t.Errorf("FromAngle(-Pi/2, 7) = %+v, expected (0, -7)", v)
	}
	if math.Abs(v.Len()-7) > 1e-9 {
		t.Errorf("Len() = %f, expected 7", v.Len())
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{0, math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, 0, -math.Pi / 2},
		{-3, 3, 6 - 2*math.Pi},
		{3, -3, 2*math.Pi - 6},
	}

	for _, tc := range tests {
		if got := AngleDiff(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("AngleDiff(%f, %f) = %f, expected %f", tc.a, tc.b, got, tc.expected)
		}
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

func TestClampFAndLerp(t *testing.T) {
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF(15.5, 0, 10) = %f, expected 10", got)
	}
	if got := ClampF(-1, 0, 10); got != 0 {
		t.Errorf("ClampF(-1, 0, 10) = %f, expected 0", got)
	}
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(2, 4, 0.5) = %f, expected 3", got)
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
		t.Error("Abs should return the magnitude")
	}
}
