package core

import (
	"math"
	"testing"
)

func vecsAlmostEqual(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Expected sum (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Expected difference (-3,7,-3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Expected scaled (2,4,6), got %v", got)
	}
	if got := a.Divide(2); got != NewVec3(0.5, 1, 1.5) {
		t.Errorf("Expected divided (0.5,1,1.5), got %v", got)
	}
	if got := a.Dot(b); got != 12.0 {
		t.Errorf("Expected dot 12, got %f", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Expected negated (-1,-2,-3), got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Expected x cross y = z, got %v", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("Expected y cross x = -z, got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalize()

	if math.Abs(n.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
	if !vecsAlmostEqual(n, NewVec3(0.6, 0, 0.8), 1e-9) {
		t.Errorf("Expected (0.6,0,0.8), got %v", n)
	}
}

func TestVec3_Rotations(t *testing.T) {
	tests := []struct {
		name     string
		rotate   func(Vec3, float64) Vec3
		input    Vec3
		angle    float64
		expected Vec3
	}{
		{
			name:     "quarter turn around x",
			rotate:   Vec3.RotateX,
			input:    NewVec3(0, 1, 0),
			angle:    math.Pi / 2,
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "quarter turn around y",
			rotate:   Vec3.RotateY,
			input:    NewVec3(0, 0, 1),
			angle:    math.Pi / 2,
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "quarter turn around z",
			rotate:   Vec3.RotateZ,
			input:    NewVec3(1, 0, 0),
			angle:    math.Pi / 2,
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "full turn is identity",
			rotate:   Vec3.RotateX,
			input:    NewVec3(1, 2, 3),
			angle:    2 * math.Pi,
			expected: NewVec3(1, 2, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rotate(tt.input, tt.angle)
			if !vecsAlmostEqual(got, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_AlignmentMatrix(t *testing.T) {
	tests := []struct {
		name   string
		from   Vec3
		target Vec3
	}{
		{"x onto y", NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"arbitrary onto up", NewVec3(1, 2, 3), NewVec3(0, 1, 0)},
		{"already aligned", NewVec3(0, 1, 0), NewVec3(0, 2, 0)},
		{"unnormalized inputs", NewVec3(0, 0, 5), NewVec3(3, 3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.from.AlignmentMatrix(tt.target)
			got := m.Apply(tt.from.Normalize())
			if !vecsAlmostEqual(got, tt.target.Normalize(), 1e-9) {
				t.Errorf("Expected alignment onto %v, got %v", tt.target.Normalize(), got)
			}
		})
	}
}

func TestVec3_AlignmentMatrix_Antiparallel(t *testing.T) {
	// Antiparallel directions degenerate in Rodrigues' formula; the
	// alignment falls back to the identity matrix.
	m := NewVec3(0, 1, 0).AlignmentMatrix(NewVec3(0, -1, 0))

	if m != IdentityMatrix() {
		t.Errorf("Expected identity matrix for antiparallel vectors, got %v", m)
	}
}

func TestMatrix3_Apply(t *testing.T) {
	m := Matrix3{
		{0, -1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}
	got := m.Apply(NewVec3(1, 0, 0))
	if !vecsAlmostEqual(got, NewVec3(0, 1, 0), 1e-9) {
		t.Errorf("Expected (0,1,0), got %v", got)
	}
}
