package geometry

import (
	"math"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

// localUp is the canonical axis oriented primitives are reduced to: the ray
// is transformed into a frame where the primitive's axis is the Y axis.
var localUp = core.NewVec3(0, 1, 0)

// Cylinder represents a finite open cylinder around an axis ray
type Cylinder struct {
	Axis   core.Ray // anchor is the base, direction is the unit axis
	Radius float64
	Length float64
	params ObjectParameters

	// Cached rotations between world space and the axis-aligned local frame
	rot    core.Matrix3
	invRot core.Matrix3
}

// NewCylinder creates a new cylinder from a base anchor, an axis direction,
// a radius and a length along the axis
func NewCylinder(anchor, direction core.Vec3, radius, length float64, params ObjectParameters) *Cylinder {
	dir := direction.Normalize()
	rot := dir.AlignmentMatrix(localUp)
	return &Cylinder{
		Axis:   core.NewRay(anchor, dir),
		Radius: radius,
		Length: length,
		params: params,
		rot:    rot,
		invRot: rot.Transpose(),
	}
}

// toLocal transforms a world-space ray into the cylinder's local frame
func (c *Cylinder) toLocal(ray core.Ray) core.Ray {
	return core.Ray{
		Anchor:    c.rot.Apply(ray.Anchor.Subtract(c.Axis.Anchor)),
		Direction: c.rot.Apply(ray.Direction),
	}
}

// Intersect solves the lateral-surface quadratic x² + z² = r² in the local
// frame, keeping the nearer root whose axial projection lies within
// [0, Length] and falling back to the farther root
func (c *Cylinder) Intersect(ray core.Ray) (float64, bool) {
	local := c.toLocal(ray)
	d, a := local.Direction, local.Anchor

	qa := d.X*d.X + d.Z*d.Z
	if qa < core.Tolerance {
		// Ray runs along the axis: no lateral intersection
		return 0, false
	}
	qb := 2.0 * (a.X*d.X + a.Z*d.Z)
	qc := a.X*a.X + a.Z*a.Z - c.Radius*c.Radius

	discriminant := math.Sqrt(qb*qb - 4.0*qa*qc)

	for _, t := range []float64{(-qb - discriminant) / (2.0 * qa), (-qb + discriminant) / (2.0 * qa)} {
		if t <= 0 {
			continue
		}
		if axial := local.At(t).Y; axial >= 0 && axial <= c.Length {
			return t, true
		}
	}
	return 0, false
}

// NormalAt returns the outward unit normal at a point on the lateral surface
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	p := c.rot.Apply(point.Subtract(c.Axis.Anchor))
	localNormal := core.NewVec3(p.X, 0, p.Z).Divide(c.Radius)
	return c.invRot.Apply(localNormal)
}

// SurfaceCoords unrolls the lateral surface: u is the arc length around the
// axis, v the axial distance from the base
func (c *Cylinder) SurfaceCoords(point core.Vec3) (u, v float64) {
	p := c.rot.Apply(point.Subtract(c.Axis.Anchor))
	return math.Atan2(p.Z, p.X) * c.Radius, p.Y
}

// Params returns the material parameters of the cylinder
func (c *Cylinder) Params() *ObjectParameters {
	return &c.params
}
