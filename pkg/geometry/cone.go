package geometry

import (
	"fmt"
	"math"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

// Cone represents a finite open cone with its apex at the axis anchor,
// opening along the axis direction. The cross-section radius grows linearly
// with axial distance at a rate of K2/K1.
type Cone struct {
	Axis   core.Ray // anchor is the apex, direction is the unit axis
	K1     float64
	K2     float64
	Length float64
	params ObjectParameters

	slope  float64 // K2 / K1
	rot    core.Matrix3
	invRot core.Matrix3
}

// NewCone creates a new cone from an apex anchor, an axis direction, the two
// slope coefficients and a length along the axis. K1 must be nonzero.
func NewCone(anchor, direction core.Vec3, k1, k2, length float64, params ObjectParameters) (*Cone, error) {
	if k1 == 0 {
		return nil, fmt.Errorf("cone coefficient k1 must be nonzero")
	}

	dir := direction.Normalize()
	rot := dir.AlignmentMatrix(localUp)
	return &Cone{
		Axis:   core.NewRay(anchor, dir),
		K1:     k1,
		K2:     k2,
		Length: length,
		params: params,
		slope:  k2 / k1,
		rot:    rot,
		invRot: rot.Transpose(),
	}, nil
}

// toLocal transforms a world-space ray into the cone's local frame
func (c *Cone) toLocal(ray core.Ray) core.Ray {
	return core.Ray{
		Anchor:    c.rot.Apply(ray.Anchor.Subtract(c.Axis.Anchor)),
		Direction: c.rot.Apply(ray.Direction),
	}
}

// Intersect solves the lateral-surface quadratic x² + z² = (slope·y)² in the
// local frame, keeping the nearer root whose axial projection lies within
// [0, Length] and falling back to the farther root
func (c *Cone) Intersect(ray core.Ray) (float64, bool) {
	local := c.toLocal(ray)
	d, a := local.Direction, local.Anchor
	m2 := c.slope * c.slope

	qa := d.X*d.X + d.Z*d.Z - m2*d.Y*d.Y
	if math.Abs(qa) < core.Tolerance {
		// Ray parallel to the cone's slant surface
		return 0, false
	}
	qb := 2.0 * (a.X*d.X + a.Z*d.Z - m2*a.Y*d.Y)
	qc := a.X*a.X + a.Z*a.Z - m2*a.Y*a.Y

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

// NormalAt returns the outward unit normal at a point on the lateral
// surface, from the gradient of x² + z² - (slope·y)²
func (c *Cone) NormalAt(point core.Vec3) core.Vec3 {
	p := c.rot.Apply(point.Subtract(c.Axis.Anchor))
	localNormal := core.NewVec3(p.X, -c.slope*c.slope*p.Y, p.Z).Normalize()
	return c.invRot.Apply(localNormal)
}

// SurfaceCoords unrolls the lateral surface: u is the arc length around the
// axis at the point's own cross-section radius, v the axial distance from
// the apex
func (c *Cone) SurfaceCoords(point core.Vec3) (u, v float64) {
	p := c.rot.Apply(point.Subtract(c.Axis.Anchor))
	return math.Atan2(p.Z, p.X) * c.slope * p.Y, p.Y
}

// Params returns the material parameters of the cone
func (c *Cone) Params() *ObjectParameters {
	return &c.params
}
