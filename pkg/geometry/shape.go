package geometry

import (
	"math"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

// Shape is the interface every primitive implements.
//
// Intersect returns the smallest strictly-positive ray parameter t at which
// the ray meets the surface, or false when there is no forward intersection.
// NormalAt and SurfaceCoords are only called with points on the surface.
type Shape interface {
	Intersect(ray core.Ray) (float64, bool)
	NormalAt(point core.Vec3) core.Vec3
	SurfaceCoords(point core.Vec3) (u, v float64)
	Params() *ObjectParameters
}

// ColorAt returns the base color of a shape at a surface point, applying the
// procedural checkerboard pattern when the shape has one configured.
func ColorAt(s Shape, point core.Vec3) core.Color {
	size := s.Params().Checkerboard
	if size <= 0 {
		return s.Params().Color
	}

	u, v := s.SurfaceCoords(point)
	if (int64(math.Floor(u/size))+int64(math.Floor(v/size)))%2 == 0 {
		return s.Params().Color
	}
	return core.Black
}
