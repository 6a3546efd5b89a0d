package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
		ok   bool
	}{
		{
			name: "corner overlap",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(5, 5, 5, 5),
			ok:   true,
		},
		{
			name: "thin horizontal slice",
			a:    NewRect(0, 0, 20, 10),
			b:    NewRect(5, 8, 10, 10),
			want: NewRect(5, 8, 10, 2),
			ok:   true,
		},
		{
			name: "contained",
			a:    NewRect(0, 0, 20, 20),
			b:    NewRect(5, 5, 5, 5),
			want: NewRect(5, 5, 5, 5),
			ok:   true,
		},
		{
			name: "adjacent edges",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			ok:   false,
		},
		{
			name: "disjoint",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(50, 50, 10, 10),
			ok:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Overlap(tc.b)
			if ok != tc.ok {
				t.Fatalf("Overlap() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("Overlap() = %+v, expected %+v", got, tc.want)
			}
			// Overlap is symmetric
			rev, okRev := tc.b.Overlap(tc.a)
			if okRev != tc.ok || (ok && rev != tc.want) {
				t.Errorf("Overlap() (reversed) = %+v %v", rev, okRev)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
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
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if r.CenterX() != 15 {
		t.Errorf("CenterX() = %v, expected 15", r.CenterX())
	}
	if r.CenterY() != 17.5 {
		t.Errorf("CenterY() = %v, expected 17.5", r.CenterY())
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
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if MinF(2.5, 1.5) != 1.5 {
		t.Error("MinF(2.5, 1.5) should be 1.5")
	}
	if MaxF(2.5, 1.5) != 2.5 {
		t.Error("MaxF(2.5, 1.5) should be 2.5")
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
	if AbsF(-2.5) != 2.5 || AbsF(2.5) != 2.5 {
		t.Error("AbsF should return the magnitude")
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{300, 260, 0.25, 290},
	}

	for _, tc := range tests {
		result := Lerp(tc.a, tc.b, tc.t)
		if result != tc.expected {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, result, tc.expected)
		}
	}
}
