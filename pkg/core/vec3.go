package core

import "math"

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided component-wise by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// The caller must guarantee a nonzero length; a zero vector yields NaNs,
// which downstream intersection code treats as a miss.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// RotateX rotates the vector around the X axis. The angle is in radians.
func (v Vec3) RotateX(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates the vector around the Y axis. The angle is in radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ rotates the vector around the Z axis. The angle is in radians.
func (v Vec3) RotateZ(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// AlignmentMatrix returns the rotation matrix that maps v onto target,
// built with Rodrigues' rotation formula. Both inputs are normalized first.
// When the vectors are antiparallel the denominator 1+cos degenerates, so
// the identity matrix is returned instead.
func (v Vec3) AlignmentMatrix(target Vec3) Matrix3 {
	a := v.Normalize()
	b := target.Normalize()

	c := a.Dot(b)
	if math.Abs(c+1.0) < Tolerance {
		return IdentityMatrix()
	}

	w := a.Cross(b)

	skew := Matrix3{
		{0, -w.Z, w.Y},
		{w.Z, 0, -w.X},
		{-w.Y, w.X, 0},
	}

	skew2 := Matrix3{
		{-w.Y*w.Y - w.Z*w.Z, w.X * w.Y, w.X * w.Z},
		{w.X * w.Y, -w.X*w.X - w.Z*w.Z, w.Y * w.Z},
		{w.X * w.Z, w.Y * w.Z, -w.X*w.X - w.Y*w.Y},
	}

	return IdentityMatrix().Add(skew).Add(skew2.Scale(1.0 / (1.0 + c)))
}
