package geometry

import (
	"math"
	"testing"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

func testParams(t *testing.T) ObjectParameters {
	t.Helper()
	params, err := NewObjectParameters(core.White, 1, 1, 1, 10, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewObjectParameters failed: %v", err)
	}
	return params
}

func TestNewObjectParameters_DerivesOpacity(t *testing.T) {
	params, err := NewObjectParameters(core.White, 0.1, 0.5, 0.5, 10, 0.3, 0.2, 0)
	if err != nil {
		t.Fatalf("NewObjectParameters failed: %v", err)
	}

	if math.Abs(params.Opacity-0.5) > 1e-9 {
		t.Errorf("Expected opacity 0.5 for reflection=0.3 transparency=0.2, got %f", params.Opacity)
	}
}

func TestNewObjectParameters_RejectsOverUnitySplit(t *testing.T) {
	if _, err := NewObjectParameters(core.White, 1, 1, 1, 10, 0.7, 0.5, 0); err == nil {
		t.Error("Expected error for reflection+transparency > 1, got none")
	}
}

func TestNewObjectParameters_Clamping(t *testing.T) {
	params, err := NewObjectParameters(core.White, 1.5, -0.2, 2.0, 0.5, 0, 0, -3)
	if err != nil {
		t.Fatalf("NewObjectParameters failed: %v", err)
	}

	if params.Ka != 1.0 {
		t.Errorf("Expected Ka clamped to 1, got %f", params.Ka)
	}
	if params.Kd != 0.0 {
		t.Errorf("Expected Kd clamped to 0, got %f", params.Kd)
	}
	if params.Ks != 1.0 {
		t.Errorf("Expected Ks clamped to 1, got %f", params.Ks)
	}
	if params.Kn != 1.0 {
		t.Errorf("Expected Kn floored at 1, got %f", params.Kn)
	}
	if params.Checkerboard != 0.0 {
		t.Errorf("Expected checkerboard floored at 0, got %f", params.Checkerboard)
	}
}
