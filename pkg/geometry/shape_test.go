package geometry

import (
	"testing"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

func TestColorAt_Checkerboard(t *testing.T) {
	params, err := NewObjectParameters(core.White, 1, 1, 1, 10, 0, 0, 1.0)
	if err != nil {
		t.Fatalf("NewObjectParameters failed: %v", err)
	}
	plane := NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 0), params)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Color
	}{
		{"even tile keeps base color", core.NewVec3(0.5, 0.5, 0), core.White},
		{"odd tile is black", core.NewVec3(1.5, 0.5, 0), core.Black},
		{"stepping both axes keeps parity", core.NewVec3(1.5, 1.5, 0), core.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorAt(plane, tt.point); got != tt.expected {
				t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, got)
			}
		})
	}
}

func TestColorAt_DisabledCheckerboard(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 0), testParams(t))

	if got := ColorAt(plane, core.NewVec3(1.5, 0.5, 0)); got != core.White {
		t.Errorf("Expected base color with checkerboard disabled, got %v", got)
	}
}
