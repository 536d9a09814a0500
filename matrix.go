package geom

import (
	"fmt"
	"math"
)

// Matrix3 describes a planar transform as a 3×3 homogeneous matrix in
// row-major order.
//
// Points transform as row vectors: p' = [x y 1] · M. Row i therefore holds
// the image of the i-th basis vector and row 2 holds the translation. With
// this convention A.Mul(B) applies A first: p·(A·B) == (p·A)·B.
type Matrix3 [9]float64

// Identity3 is the identity transform.
var Identity3 = Matrix3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Translation2 creates a transform representing translation.
func Translation2(v Vec2) Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		v.X, v.Y, 1,
	}
}

// Scaling2 creates a transform representing non-uniform scaling with
// different scale values for x and y.
func Scaling2(x, y float64) Matrix3 {
	return Matrix3{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Rotation2 creates a transform representing rotation about the origin.
//
// The convention for rotation is that a positive angle rotates a positive X
// direction into positive Y. The angle th is expressed in radians.
func Rotation2(th float64) Matrix3 {
	sin, cos := math.Sincos(th)
	return Matrix3{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
}

// Mul returns the product m·o. Because points multiply from the left, the
// product applies m first, then o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var out Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3+0]*o[0*3+c] + m[r*3+1]*o[1*3+c] + m[r*3+2]*o[2*3+c]
		}
	}
	return out
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant computes the determinant.
func (m Matrix3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse computes the inverse transform. It fails with
// [ErrDegenerateInput] if the matrix is singular.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if zeroWithin(det, LengthAccuracy*LengthAccuracy) {
		return Matrix3{}, fmt.Errorf("%w: matrix is singular, determinant %g", ErrDegenerateInput, det)
	}
	invDet := 1 / det
	return Matrix3{
		invDet * (m[4]*m[8] - m[5]*m[7]),
		invDet * (m[2]*m[7] - m[1]*m[8]),
		invDet * (m[1]*m[5] - m[2]*m[4]),
		invDet * (m[5]*m[6] - m[3]*m[8]),
		invDet * (m[0]*m[8] - m[2]*m[6]),
		invDet * (m[2]*m[3] - m[0]*m[5]),
		invDet * (m[3]*m[7] - m[4]*m[6]),
		invDet * (m[1]*m[6] - m[0]*m[7]),
		invDet * (m[0]*m[4] - m[1]*m[3]),
	}, nil
}

// ApplyPoint2 transforms the point pt, treating it as the row vector
// [x, y, 1].
func (m Matrix3) ApplyPoint2(pt Point2) Point2 {
	return Point2{
		X: pt.X*m[0] + pt.Y*m[3] + m[6],
		Y: pt.X*m[1] + pt.Y*m[4] + m[7],
	}
}

// ApplyVec2 transforms the vector v, treating it as the row vector
// [x, y, 0]. Translation does not affect vectors.
func (m Matrix3) ApplyVec2(v Vec2) Vec2 {
	return Vec2{
		X: v.X*m[0] + v.Y*m[3],
		Y: v.X*m[1] + v.Y*m[4],
	}
}

// Matrix4 describes a spatial transform as a 4×4 homogeneous matrix in
// row-major order.
//
// Points transform as row vectors: p' = [x y z 1] · M. Row i therefore
// holds the image of the i-th basis vector and row 3 holds the translation.
// With this convention A.Mul(B) applies A first: p·(A·B) == (p·A)·B.
type Matrix4 [16]float64

// Identity4 is the identity transform.
var Identity4 = Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Translation3 creates a transform representing translation.
func Translation3(v Vec3) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// Scaling3 creates a transform representing non-uniform scaling with
// different scale values for x, y and z.
func Scaling3(x, y, z float64) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationAbout creates a transform representing a rotation of th radians
// about an axis through the origin, following the right-hand rule.
func RotationAbout(axis UnitVec3, th float64) Matrix4 {
	// The rows of a row-vector matrix are the images of the basis vectors.
	rx := V3(1, 0, 0).Rotate(axis, th)
	ry := V3(0, 1, 0).Rotate(axis, th)
	rz := V3(0, 0, 1).Rotate(axis, th)
	return Matrix4{
		rx.X, rx.Y, rx.Z, 0,
		ry.X, ry.Y, ry.Z, 0,
		rz.X, rz.Y, rz.Z, 0,
		0, 0, 0, 1,
	}
}

// RotationAboutPoint creates a transform representing a rotation of th
// radians about an axis through center.
func RotationAboutPoint(axis UnitVec3, th float64, center Point3) Matrix4 {
	c := center.Sub(Point3{})
	return Translation3(c.Negate()).Mul(RotationAbout(axis, th)).Mul(Translation3(c))
}

// Mul returns the product m·o. Because points multiply from the left, the
// product applies m first, then o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4+0]*o[0*4+c] + m[r*4+1]*o[1*4+c] +
				m[r*4+2]*o[2*4+c] + m[r*4+3]*o[3*4+c]
		}
	}
	return out
}

// Transpose returns the transposed matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Determinant computes the determinant.
func (m Matrix4) Determinant() float64 {
	s, c := m.subdeterminants()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// subdeterminants computes the 2×2 minors of the top and bottom half of the
// matrix, from which both the determinant and the adjugate follow.
func (m Matrix4) subdeterminants() (s, c [6]float64) {
	s[0] = m[0]*m[5] - m[4]*m[1]
	s[1] = m[0]*m[6] - m[4]*m[2]
	s[2] = m[0]*m[7] - m[4]*m[3]
	s[3] = m[1]*m[6] - m[5]*m[2]
	s[4] = m[1]*m[7] - m[5]*m[3]
	s[5] = m[2]*m[7] - m[6]*m[3]

	c[5] = m[10]*m[15] - m[14]*m[11]
	c[4] = m[9]*m[15] - m[13]*m[11]
	c[3] = m[9]*m[14] - m[13]*m[10]
	c[2] = m[8]*m[15] - m[12]*m[11]
	c[1] = m[8]*m[14] - m[12]*m[10]
	c[0] = m[8]*m[13] - m[12]*m[9]
	return s, c
}

// Inverse computes the inverse transform. It fails with
// [ErrDegenerateInput] if the matrix is singular.
func (m Matrix4) Inverse() (Matrix4, error) {
	s, c := m.subdeterminants()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if zeroWithin(det, LengthAccuracy*LengthAccuracy) {
		return Matrix4{}, fmt.Errorf("%w: matrix is singular, determinant %g", ErrDegenerateInput, det)
	}
	invDet := 1 / det
	return Matrix4{
		invDet * (m[5]*c[5] - m[6]*c[4] + m[7]*c[3]),
		invDet * (-m[1]*c[5] + m[2]*c[4] - m[3]*c[3]),
		invDet * (m[13]*s[5] - m[14]*s[4] + m[15]*s[3]),
		invDet * (-m[9]*s[5] + m[10]*s[4] - m[11]*s[3]),
		invDet * (-m[4]*c[5] + m[6]*c[2] - m[7]*c[1]),
		invDet * (m[0]*c[5] - m[2]*c[2] + m[3]*c[1]),
		invDet * (-m[12]*s[5] + m[14]*s[2] - m[15]*s[1]),
		invDet * (m[8]*s[5] - m[10]*s[2] + m[11]*s[1]),
		invDet * (m[4]*c[4] - m[5]*c[2] + m[7]*c[0]),
		invDet * (-m[0]*c[4] + m[1]*c[2] - m[3]*c[0]),
		invDet * (m[12]*s[4] - m[13]*s[2] + m[15]*s[0]),
		invDet * (-m[8]*s[4] + m[9]*s[2] - m[11]*s[0]),
		invDet * (-m[4]*c[3] + m[5]*c[1] - m[6]*c[0]),
		invDet * (m[0]*c[3] - m[1]*c[1] + m[2]*c[0]),
		invDet * (-m[12]*s[3] + m[13]*s[1] - m[14]*s[0]),
		invDet * (m[8]*s[3] - m[9]*s[1] + m[10]*s[0]),
	}, nil
}

// ApplyPoint3 transforms the point pt, treating it as the row vector
// [x, y, z, 1].
func (m Matrix4) ApplyPoint3(pt Point3) Point3 {
	return Point3{
		X: pt.X*m[0] + pt.Y*m[4] + pt.Z*m[8] + m[12],
		Y: pt.X*m[1] + pt.Y*m[5] + pt.Z*m[9] + m[13],
		Z: pt.X*m[2] + pt.Y*m[6] + pt.Z*m[10] + m[14],
	}
}

// ApplyVec3 transforms the vector v, treating it as the row vector
// [x, y, z, 0]. Translation does not affect vectors.
func (m Matrix4) ApplyVec3(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10],
	}
}

// Translation returns the translation component of the transform.
func (m Matrix4) Translation() Vec3 {
	return Vec3{X: m[12], Y: m[13], Z: m[14]}
}
