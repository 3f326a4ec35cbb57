package geometry

import (
	"math"
	"testing"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

func TestTriangle_Intersect(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		ObjectParameters{},
	)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "hit inside the triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -5), core.NewVec3(0, 0, 1)),
			expectHit: true,
			expectedT: 5.0,
		},
		{
			name:      "hit on a vertex",
			ray:       core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)),
			expectHit: true,
			expectedT: 5.0,
		},
		{
			name:      "plane hit outside the triangle",
			ray:       core.NewRay(core.NewVec3(0.9, 0.9, -5), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
		{
			name:      "plane hit past an edge",
			ray:       core.NewRay(core.NewVec3(-0.1, 0.5, -5), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
		{
			name:      "parallel ray misses",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -5), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "triangle behind the anchor",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 5), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := triangle.Intersect(tt.ray)
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t (t=%f)", tt.expectHit, hit, got)
			}
			if hit && math.Abs(got-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, got)
			}
		})
	}
}

func TestTriangle_NormalFromWinding(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		ObjectParameters{},
	)

	normal := triangle.NormalAt(core.NewVec3(0.25, 0.25, 0))
	if !vecsAlmostEqual(normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1) from counter-clockwise winding, got %v", normal)
	}
}
