package core

// Matrix3 is a 3x3 matrix in row-major order
type Matrix3 [3][3]float64

// IdentityMatrix returns the 3x3 identity matrix
func IdentityMatrix() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Add returns the element-wise sum of two matrices
func (m Matrix3) Add(other Matrix3) Matrix3 {
	var result Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[i][j] + other[i][j]
		}
	}
	return result
}

// Scale returns the matrix with every element multiplied by k
func (m Matrix3) Scale(k float64) Matrix3 {
	var result Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[i][j] * k
		}
	}
	return result
}

// Transpose returns the transposed matrix. For the rotation matrices used
// here this is also the inverse.
func (m Matrix3) Transpose() Matrix3 {
	var result Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[j][i]
		}
	}
	return result
}

// Apply returns the matrix-vector product m·v
func (m Matrix3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
