package geometry

import (
	"math"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	params ObjectParameters
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, params ObjectParameters) *Sphere {
	return &Sphere{Center: center, Radius: radius, params: params}
}

// Intersect solves |anchor + t·dir - center|² = r² for the nearest forward t.
// With a unit direction this reduces to t² + b·t + c = 0.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	oc := ray.Anchor.Subtract(s.Center)

	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	// A negative discriminant turns into NaN here, which fails every
	// comparison below and falls through to a miss.
	discriminant := math.Sqrt(b*b - 4.0*c)

	t1 := (-b - discriminant) / 2.0
	t2 := (-b + discriminant) / 2.0

	if t1 > 0 {
		return t1, true
	}
	if t2 > 0 {
		// The near root is behind the anchor, so the ray starts inside
		// the sphere: report the exit point.
		return t2, true
	}
	return 0, false
}

// NormalAt returns the unit normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Divide(s.Radius)
}

// SurfaceCoords maps a surface point to spherical texture coordinates
func (s *Sphere) SurfaceCoords(point core.Vec3) (u, v float64) {
	sp := point.Subtract(s.Center)
	u = (1.0 + math.Atan2(sp.Z, sp.X)/math.Pi) * 0.5
	v = math.Acos(sp.Y/s.Radius) / math.Pi
	return u, v
}

// Params returns the material parameters of the sphere
func (s *Sphere) Params() *ObjectParameters {
	return &s.params
}
