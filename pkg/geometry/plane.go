package geometry

import (
	"math"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by an anchor point and a normal
type Plane struct {
	Normal core.Vec3 // unit normal
	Anchor core.Vec3 // a point on the plane
	params ObjectParameters
}

// NewPlane creates a new plane. The normal is normalized.
func NewPlane(normal, anchor core.Vec3, params ObjectParameters) *Plane {
	return &Plane{
		Normal: normal.Normalize(),
		Anchor: anchor,
		params: params,
	}
}

// Intersect tests the ray against the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	return planeIntersect(ray, p.Normal, p.Anchor)
}

// planeIntersect solves (anchor - ray.Anchor)·n / (dir·n) = t, rejecting
// near-parallel rays and intersections behind the ray anchor. Shared by
// Plane, Disc and Triangle.
func planeIntersect(ray core.Ray, normal, anchor core.Vec3) (float64, bool) {
	denominator := normal.Dot(ray.Direction)
	if math.Abs(denominator) < core.Tolerance {
		return 0, false
	}

	t := anchor.Subtract(ray.Anchor).Dot(normal) / denominator
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane normal
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// SurfaceCoords projects a surface point onto two in-plane axes
func (p *Plane) SurfaceCoords(point core.Vec3) (u, v float64) {
	xAxis, yAxis := planeAxes(p.Normal)
	planeVec := point.Subtract(p.Anchor)
	return planeVec.Dot(xAxis), planeVec.Dot(yAxis)
}

// planeAxes builds two axes spanning the plane with the given normal
func planeAxes(normal core.Vec3) (xAxis, yAxis core.Vec3) {
	xAxis = normal.Cross(core.NewVec3(0, 0, 1))
	if xAxis.Length() == 0 {
		xAxis = normal.Cross(core.NewVec3(0, 1, 0))
	}
	yAxis = normal.Cross(xAxis)
	return xAxis, yAxis
}

// Params returns the material parameters of the plane
func (p *Plane) Params() *ObjectParameters {
	return &p.params
}
