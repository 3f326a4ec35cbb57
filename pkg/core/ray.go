package core

// Ray represents a ray with an anchor point and a unit-length direction
type Ray struct {
	Anchor    Vec3
	Direction Vec3
}

// NewRay creates a ray from an anchor and a direction that is already unit length
func NewRay(anchor, direction Vec3) Ray {
	return Ray{Anchor: anchor, Direction: direction}
}

// NewRayFromPoints creates a ray anchored at from, pointing toward to.
// The direction is normalized, so the two points must not coincide.
func NewRayFromPoints(from, to Vec3) Ray {
	return Ray{Anchor: from, Direction: to.Subtract(from).Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Anchor.Add(r.Direction.Multiply(t))
}

// Advance returns a copy of the ray with the anchor moved by offset along
// its own direction. Secondary rays are advanced by a small tolerance so
// they do not immediately re-intersect the surface they start on.
func (r Ray) Advance(offset float64) Ray {
	return Ray{Anchor: r.At(offset), Direction: r.Direction}
}
