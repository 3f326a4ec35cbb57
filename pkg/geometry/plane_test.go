package geometry

import (
	"math"
	"testing"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 0), ObjectParameters{})

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "straight down onto the plane",
			ray:       core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)),
			expectHit: true,
			expectedT: 5.0,
		},
		{
			name:      "parallel ray misses",
			ray:       core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "plane behind the anchor",
			ray:       core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0)),
			expectHit: false,
		},
		{
			name:      "oblique hit",
			ray:       core.NewRayFromPoints(core.NewVec3(0, 3, 0), core.NewVec3(4, 0, 0)),
			expectHit: true,
			expectedT: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := plane.Intersect(tt.ray)
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t (t=%f)", tt.expectHit, hit, got)
			}
			if hit && math.Abs(got-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, got)
			}
		})
	}
}

func TestPlane_NormalizesNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 10, 0), core.NewVec3(0, 0, 0), ObjectParameters{})

	if math.Abs(plane.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", plane.Normal.Length())
	}
}
