package geometry

import (
	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	A, B, C core.Vec3
	normal  core.Vec3 // cached unit normal
	params  ObjectParameters
}

// NewTriangle creates a new triangle from three vertices. The normal is
// derived from the edge cross product, so the winding order of the vertices
// picks which side it faces.
func NewTriangle(a, b, c core.Vec3, params ObjectParameters) *Triangle {
	normal := b.Subtract(a).Cross(c.Subtract(a)).Normalize()
	return &Triangle{A: a, B: b, C: c, normal: normal, params: params}
}

// Intersect tests the ray against the triangle's plane and classifies the
// hit point with barycentric coordinates
func (tr *Triangle) Intersect(ray core.Ray) (float64, bool) {
	t, ok := planeIntersect(ray, tr.normal, tr.A)
	if !ok {
		return 0, false
	}

	point := ray.At(t)

	// Cramer's-rule ratios for the barycentric weights of the hit point
	e0 := tr.B.Subtract(tr.A)
	e1 := tr.C.Subtract(tr.A)
	e2 := point.Subtract(tr.A)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	denominator := d00*d11 - d01*d01
	v := (d11*d20 - d01*d21) / denominator
	w := (d00*d21 - d01*d20) / denominator
	u := 1.0 - v - w

	if u < 0 || u > 1 || v < 0 || v > 1 || w < 0 || w > 1 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the triangle normal
func (tr *Triangle) NormalAt(core.Vec3) core.Vec3 {
	return tr.normal
}

// SurfaceCoords projects a surface point onto two axes spanning the
// triangle's plane
func (tr *Triangle) SurfaceCoords(point core.Vec3) (u, v float64) {
	xAxis, yAxis := planeAxes(tr.normal)
	planeVec := point.Subtract(tr.A)
	return planeVec.Dot(xAxis), planeVec.Dot(yAxis)
}

// Params returns the material parameters of the triangle
func (tr *Triangle) Params() *ObjectParameters {
	return &tr.params
}
