package vectors

import "math"

// Mat3 is a 3×3 matrix in row-major order, used as a rotation operator on
// Vec3. Matrices are values: every operation returns a new matrix.
//
// The rotation constructors follow the astronomical convention of rotating
// the coordinate frame, not the vector. RotateX(e) applied to an equatorial
// position therefore yields the ecliptic one when e is the obliquity.
type Mat3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1.0, 0.0, 0.0},
		{0.0, 1.0, 0.0},
		{0.0, 0.0, 1.0},
	}
}

// RotateX returns the frame rotation by angle radians about the X axis.
func RotateX(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{1.0, 0.0, 0.0},
		{0.0, c, s},
		{0.0, -s, c},
	}
}

// RotateY returns the frame rotation by angle radians about the Y axis.
func RotateY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{c, 0.0, -s},
		{0.0, 1.0, 0.0},
		{s, 0.0, c},
	}
}

// RotateZ returns the frame rotation by angle radians about the Z axis.
func RotateZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{c, s, 0.0},
		{-s, c, 0.0},
		{0.0, 0.0, 1.0},
	}
}

// Mul returns the matrix product m · o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulVec applies m to v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transposed matrix. For the rotations built here
// this is the inverse rotation.
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}
