package core

import (
	"math"
	"testing"
)

func TestNewRayFromPoints_NormalizesDirection(t *testing.T) {
	ray := NewRayFromPoints(NewVec3(0, 0, 0), NewVec3(0, 0, 10))

	if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
	}
	if !vecsAlmostEqual(ray.Direction, NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected direction (0,0,1), got %v", ray.Direction)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 1, 0))

	got := ray.At(2.5)
	if !vecsAlmostEqual(got, NewVec3(1, 4.5, 3), 1e-9) {
		t.Errorf("Expected (1,4.5,3), got %v", got)
	}
}

func TestRay_Advance(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))

	advanced := ray.Advance(0.25)
	if !vecsAlmostEqual(advanced.Anchor, NewVec3(0.25, 0, 0), 1e-9) {
		t.Errorf("Expected anchor (0.25,0,0), got %v", advanced.Anchor)
	}
	if advanced.Direction != ray.Direction {
		t.Errorf("Expected direction unchanged, got %v", advanced.Direction)
	}
}
