package scene

import (
	"github.com/afonseca/go-whitted-raytracer/pkg/core"
	"github.com/afonseca/go-whitted-raytracer/pkg/geometry"
)

// Scene contains everything needed to resolve a ray's color: the primitives,
// the point lights, the ambient term and the background color. It is built
// once before rendering and read-only afterwards.
//
// Object order matters only for tie-breaking: when two primitives intersect
// a ray at the same minimal t, the first one in the list wins. Light order
// is irrelevant since light contributions are summed.
type Scene struct {
	Objects      []geometry.Shape
	Lights       []Light
	Ambient      float64
	AmbientColor core.Color
	Background   core.Color
}

// Light is a point light with distance attenuation
type Light struct {
	Position  core.Vec3
	Intensity float64
	C1        float64 // constant attenuation coefficient
	C2        float64 // linear attenuation coefficient
	C3        float64 // quadratic attenuation coefficient
	Color     core.Color
}

// Attenuation returns the light's falloff factor at the given distance,
// 1/(c1 + c2·d + c3·d²), capped at 1
func (l *Light) Attenuation(distance float64) float64 {
	return min(1.0/(l.C1+l.C2*distance+l.C3*distance*distance), 1.0)
}

// LVec returns the unit vector from a surface point toward the light
func (l *Light) LVec(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}

// Observer is the camera position together with the rectangular projection
// plane primary rays are cast through
type Observer struct {
	Camera core.Vec3
	MinP   core.Vec3 // minimum corner of the projection plane
	MaxP   core.Vec3 // maximum corner of the projection plane
}
