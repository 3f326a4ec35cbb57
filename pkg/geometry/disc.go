package geometry

import (
	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

// Disc represents a flat circular disc
type Disc struct {
	Normal core.Vec3 // unit normal
	Center core.Vec3
	Radius float64
	params ObjectParameters
}

// NewDisc creates a new disc. The normal is normalized.
func NewDisc(normal, center core.Vec3, radius float64, params ObjectParameters) *Disc {
	return &Disc{
		Normal: normal.Normalize(),
		Center: center,
		Radius: radius,
		params: params,
	}
}

// Intersect tests the ray against the disc's plane, then checks the hit
// point lies within the radius
func (d *Disc) Intersect(ray core.Ray) (float64, bool) {
	t, ok := planeIntersect(ray, d.Normal, d.Center)
	if !ok {
		return 0, false
	}

	if ray.At(t).Subtract(d.Center).Length() > d.Radius {
		return 0, false
	}
	return t, true
}

// NormalAt returns the disc normal
func (d *Disc) NormalAt(core.Vec3) core.Vec3 {
	return d.Normal
}

// SurfaceCoords projects a surface point onto two in-plane axes through the
// disc center
func (d *Disc) SurfaceCoords(point core.Vec3) (u, v float64) {
	xAxis, yAxis := planeAxes(d.Normal)
	planeVec := point.Subtract(d.Center)
	return planeVec.Dot(xAxis), planeVec.Dot(yAxis)
}

// Params returns the material parameters of the disc
func (d *Disc) Params() *ObjectParameters {
	return &d.params
}
